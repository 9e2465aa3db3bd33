package nvrt

// runtimeUnavailableError signals that no vendor runtime binding was built
// into this binary, so initialization must fail fast instead of mocking
// inference.
type runtimeUnavailableError struct{ msg string }

func (e runtimeUnavailableError) Error() string { return e.msg }

// ErrRuntimeUnavailable constructs a runtimeUnavailableError.
func ErrRuntimeUnavailable(msg string) error { return runtimeUnavailableError{msg: msg} }

// IsRuntimeUnavailable reports whether err indicates a missing runtime binding.
func IsRuntimeUnavailable(err error) bool {
	_, ok := err.(runtimeUnavailableError)
	return ok
}

// outOfMemoryError signals a failed device allocation.
type outOfMemoryError struct {
	size int
	msg  string
}

func (e outOfMemoryError) Error() string { return e.msg }

// ErrOutOfMemory constructs an outOfMemoryError for a failed allocation of
// size bytes.
func ErrOutOfMemory(size int, msg string) error { return outOfMemoryError{size: size, msg: msg} }

// IsOutOfMemory reports whether err indicates device memory exhaustion.
func IsOutOfMemory(err error) bool {
	_, ok := err.(outOfMemoryError)
	return ok
}

// deviceError carries an asynchronous device status reported after a batch
// of free calls or a failed transfer.
type deviceError struct{ msg string }

func (e deviceError) Error() string { return e.msg }

// ErrDevice constructs a deviceError.
func ErrDevice(msg string) error { return deviceError{msg: msg} }

// IsDevice reports whether err is a device-level error.
func IsDevice(err error) bool {
	_, ok := err.(deviceError)
	return ok
}
