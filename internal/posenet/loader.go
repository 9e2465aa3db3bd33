package posenet

import (
	"fmt"
	"io"
	"os"

	"rtpose/pkg/tensor"
)

// readPlan loads the serialized plan in full: size via seek-to-end, rewind,
// then a single full read. A short read is an error.
func readPlan(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrPlanRead(path, err)
	}
	defer f.Close()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, ErrPlanRead(path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, ErrPlanRead(path, err)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, ErrPlanRead(path, fmt.Errorf("short read: %w", err))
	}
	return buf, nil
}

// InitOnThread deserializes the plan into an engine, derives the execution
// context, resolves the binding slots and allocates the device buffer pair.
// It must be called on the goroutine that will issue Forward calls.
//
// Any failure is non-recoverable for this instance: partial resources are
// released and the net stays unusable.
func (n *Net) InitOnThread() error {
	n.mu.Lock()
	if n.state != StateConstructed {
		state := n.state
		n.mu.Unlock()
		return ErrNotInitialized("InitOnThread", state)
	}
	n.mu.Unlock()

	if err := n.initialize(); err != nil {
		n.setErr(err)
		initTotal.WithLabelValues("error").Inc()
		return err
	}
	initTotal.WithLabelValues("ok").Inc()
	return nil
}

func (n *Net) initialize() error {
	plan, err := readPlan(n.cfg.PlanPath)
	if err != nil {
		return err
	}

	runtime, err := n.openRuntime(n.cfg.GPUID, n.sink)
	if err != nil {
		return err
	}
	engine, err := runtime.Deserialize(plan)
	if err != nil {
		runtime.Destroy()
		return err
	}
	exec, err := engine.NewContext()
	if err != nil {
		engine.Destroy()
		runtime.Destroy()
		return err
	}

	cleanup := func() {
		exec.Destroy()
		engine.Destroy()
		runtime.Destroy()
	}

	// The engine must expose exactly one input and one output; anything
	// else is structurally incompatible. Checked before any allocation.
	if got := engine.NumBindings(); got != numBindings {
		cleanup()
		return ErrBindingCount(got)
	}

	inputIndex := engine.BindingIndex(inputBindingName)
	if inputIndex < 0 {
		cleanup()
		return ErrUnknownBinding(inputBindingName)
	}
	outputIndex := engine.BindingIndex(n.cfg.OutputName)
	if outputIndex < 0 {
		cleanup()
		return ErrUnknownBinding(n.cfg.OutputName)
	}

	alloc, err := n.openAllocator(n.cfg.GPUID)
	if err != nil {
		cleanup()
		return err
	}
	bufs := newBufferPair(alloc)
	if err := bufs.allocate(inputIndex, inputVolume*floatBytes); err != nil {
		cleanup()
		return err
	}
	if err := bufs.allocate(outputIndex, outputVolume*floatBytes); err != nil {
		// Release the input buffer allocated above before bailing out.
		if ferr := bufs.releaseAll(); ferr != nil {
			n.log.Error().Err(ferr).Msg("release after failed allocation")
		}
		cleanup()
		return err
	}

	// The blob shares the output device allocation; results land in it
	// with no intervening copy.
	blob := tensor.NewBlob(uintptr(bufs.ptr(outputIndex)), 1, outputChannels, outputHeight, outputWidth)

	n.mu.Lock()
	n.runtime = runtime
	n.engine = engine
	n.exec = exec
	n.alloc = alloc
	n.bufs = bufs
	n.inputIndex = inputIndex
	n.outputIndex = outputIndex
	n.outputBlob = blob
	n.state = StateReady
	n.lastErr = ""
	n.mu.Unlock()

	n.log.Info().
		Str("plan", n.cfg.PlanPath).
		Int("gpu", n.cfg.GPUID).
		Int("input_index", inputIndex).
		Int("output_index", outputIndex).
		Msg("engine initialized")
	return nil
}
