package posenet

import (
	"fmt"
	"time"

	"rtpose/pkg/tensor"
)

// Forward runs exactly one synchronous forward pass: validate the input,
// transfer it into the input device buffer, execute with batch size 1.
// The result is available through OutputBlob immediately on return; there
// is no separate wait step.
//
// Validation failures leave the instance usable; device and execution
// failures are fatal for the call and surface immediately, with no retry.
//
// The recorded input shape is bookkeeping only: the device buffers are
// fixed-size, so any shape passing the flat volume check is accepted
// without reallocation or strict shape enforcement.
func (n *Net) Forward(in *tensor.Tensor) error {
	n.mu.RLock()
	state := n.state
	n.mu.RUnlock()
	if state != StateReady {
		return ErrNotInitialized("Forward", state)
	}

	if err := validateInput(in); err != nil {
		forwardTotal.WithLabelValues("invalid_input").Inc()
		return err
	}

	n.mu.Lock()
	if !equalDims(n.lastInputDims, in.Dims()) {
		n.lastInputDims = in.Dims()
	}
	n.mu.Unlock()

	start := time.Now()
	if err := n.alloc.CopyToDevice(n.bufs.ptr(n.inputIndex), in.Data()); err != nil {
		n.setErr(err)
		forwardTotal.WithLabelValues("transfer_error").Inc()
		return err
	}
	transferBytes.Add(float64(in.Volume() * floatBytes))

	if err := n.exec.Execute(1, n.bufs.bindings()); err != nil {
		err = ErrExecutionFailed(err)
		n.setErr(err)
		forwardTotal.WithLabelValues("execution_error").Inc()
		return err
	}

	forwardDuration.Observe(time.Since(start).Seconds())
	forwardTotal.WithLabelValues("ok").Inc()
	n.mu.Lock()
	n.forwardCount++
	n.mu.Unlock()
	return nil
}

// validateInput applies the fixed shape constraints in order, each with its
// own diagnostic.
func validateInput(in *tensor.Tensor) error {
	if in.Empty() {
		return ErrInvalidInput("the input tensor cannot be empty")
	}
	if in.NumDims() != 4 || in.Dim(1) != inputChannels {
		return ErrInvalidInput(fmt.Sprintf(
			"the input tensor must have 4 dimensions [batch size, %d (RGB), height, width], got %v",
			inputChannels, in.Dims()))
	}
	if total := in.Volume(); total != inputVolume {
		// Report both sides so shape mismatches upstream are debuggable.
		return ErrInvalidInput(fmt.Sprintf(
			"dimension conflict [total size = %d] vs total size = %d [batch size = %d, channel (RGB) = %d, height = %d, width = %d]",
			inputVolume, total, in.Dim(0), in.Dim(1), in.Dim(2), in.Dim(3)))
	}
	return nil
}

func equalDims(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
