package posenet

import "fmt"

// planNotFoundError signals a missing plan file at construction time.
type planNotFoundError struct{ path string }

func (e planNotFoundError) Error() string { return "engine plan not found: " + e.path }

// ErrPlanNotFound constructs a planNotFoundError for the given path.
func ErrPlanNotFound(path string) error { return planNotFoundError{path: path} }

// IsPlanNotFound reports whether err indicates a missing plan file.
func IsPlanNotFound(err error) bool {
	_, ok := err.(planNotFoundError)
	return ok
}

// planReadError signals that the plan file could not be read in full.
type planReadError struct {
	path string
	err  error
}

func (e planReadError) Error() string {
	return fmt.Sprintf("could not load engine plan %s: %v", e.path, e.err)
}

func (e planReadError) Unwrap() error { return e.err }

// ErrPlanRead constructs a planReadError.
func ErrPlanRead(path string, err error) error { return planReadError{path: path, err: err} }

// IsPlanRead reports whether err indicates a failed or short plan read.
func IsPlanRead(err error) bool {
	_, ok := err.(planReadError)
	return ok
}

// bindingCountError signals an engine structurally incompatible with the
// single-input/single-output contract.
type bindingCountError struct{ got int }

func (e bindingCountError) Error() string {
	return fmt.Sprintf("the engine must have exactly %d bindings (one input and one output), got %d", numBindings, e.got)
}

// ErrBindingCount constructs a bindingCountError.
func ErrBindingCount(got int) error { return bindingCountError{got: got} }

// IsBindingCount reports whether err indicates a binding-count mismatch.
func IsBindingCount(err error) bool {
	_, ok := err.(bindingCountError)
	return ok
}

// unknownBindingError signals that a fixed tensor name did not resolve to a
// binding slot.
type unknownBindingError struct{ name string }

func (e unknownBindingError) Error() string { return "engine has no binding named " + e.name }

// ErrUnknownBinding constructs an unknownBindingError.
func ErrUnknownBinding(name string) error { return unknownBindingError{name: name} }

// IsUnknownBinding reports whether err indicates an unresolved tensor name.
func IsUnknownBinding(err error) bool {
	_, ok := err.(unknownBindingError)
	return ok
}

// invalidInputError signals a malformed input tensor. The instance stays
// usable for subsequent well-formed calls.
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

// ErrInvalidInput constructs an invalidInputError.
func ErrInvalidInput(msg string) error { return invalidInputError{msg: msg} }

// IsInvalidInput reports whether err indicates a malformed input tensor.
func IsInvalidInput(err error) bool {
	_, ok := err.(invalidInputError)
	return ok
}

// executionError signals that the runtime reported a failed forward pass.
type executionError struct{ err error }

func (e executionError) Error() string { return fmt.Sprintf("inference execution failed: %v", e.err) }

func (e executionError) Unwrap() error { return e.err }

// ErrExecutionFailed constructs an executionError.
func ErrExecutionFailed(err error) error { return executionError{err: err} }

// IsExecutionFailed reports whether err indicates a failed forward pass.
func IsExecutionFailed(err error) bool {
	_, ok := err.(executionError)
	return ok
}

// notInitializedError signals a call outside the ready state.
type notInitializedError struct {
	op    string
	state State
}

func (e notInitializedError) Error() string {
	return fmt.Sprintf("%s requires an initialized net (state: %s)", e.op, e.state)
}

// ErrNotInitialized constructs a notInitializedError.
func ErrNotInitialized(op string, state State) error {
	return notInitializedError{op: op, state: state}
}

// IsNotInitialized reports whether err indicates a lifecycle ordering violation.
func IsNotInitialized(err error) bool {
	_, ok := err.(notInitializedError)
	return ok
}
