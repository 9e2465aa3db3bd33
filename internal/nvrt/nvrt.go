// Package nvrt abstracts the vendor inference runtime (engine
// deserialization, execution contexts) and device memory so the core can be
// exercised without GPU hardware. Concrete bindings register themselves via
// RegisterRuntime; device memory is provided by a cudart-backed Allocator
// when built with the 'cuda' tag and refused otherwise.
package nvrt

import "sync"

// DevicePtr is a raw device-memory address. The zero value means
// "no allocation".
type DevicePtr uintptr

// Runtime deserializes plans into engines. One runtime per net instance.
type Runtime interface {
	// Deserialize turns a serialized plan into a runnable engine.
	Deserialize(plan []byte) (Engine, error)
	// Destroy releases the runtime. Engines derived from it must be
	// destroyed first.
	Destroy()
}

// Engine is a deserialized execution graph with a fixed binding table.
type Engine interface {
	// NumBindings returns the number of input/output slots.
	NumBindings() int
	// BindingIndex resolves a tensor name to its slot index, -1 if unknown.
	BindingIndex(name string) int
	// NewContext derives an execution context from the engine.
	NewContext() (Context, error)
	Destroy()
}

// Context performs synchronous forward executions against bound device
// buffers. Contexts are commonly thread-affine; callers must create and use
// a context from a single OS thread.
type Context interface {
	// Execute runs one synchronous forward pass. bindings is indexed by
	// binding slot.
	Execute(batch int, bindings []DevicePtr) error
	Destroy()
}

// Allocator manages device memory for tensor bindings.
type Allocator interface {
	// Malloc reserves size bytes of device memory.
	Malloc(size int) (DevicePtr, error)
	// Free releases an allocation. Free reports nothing per call; callers
	// batch frees and check Err afterwards, mirroring the device API's
	// deferred status discipline.
	Free(p DevicePtr)
	// CopyToDevice transfers src to device memory at dst, blocking until
	// the transfer completes.
	CopyToDevice(dst DevicePtr, src []float32) error
	// Err returns the first device error recorded since the last call,
	// clearing it.
	Err() error
}

// Built reports whether real device support was compiled into this binary.
func Built() bool { return cudaBuilt }

// RuntimeFactory produces a runtime bound to a diagnostics sink for the
// given device index.
type RuntimeFactory func(gpuID int, sink Sink) (Runtime, error)

var (
	factoryMu sync.RWMutex
	factory   RuntimeFactory
)

// RegisterRuntime installs the vendor runtime binding. Last registration
// wins; typically called from an init function in the binding package.
func RegisterRuntime(f RuntimeFactory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory = f
}

// OpenRuntime constructs a runtime from the registered binding. Fails with
// a runtime-unavailable error when no binding was built in.
func OpenRuntime(gpuID int, sink Sink) (Runtime, error) {
	factoryMu.RLock()
	f := factory
	factoryMu.RUnlock()
	if f == nil {
		return nil, ErrRuntimeUnavailable("no inference runtime built in (missing 'cuda' build tag or vendor binding)")
	}
	return f(gpuID, sink)
}
