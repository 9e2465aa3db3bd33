package posenet

import "rtpose/internal/nvrt"

// bufferPair owns the two device allocations backing the input and output
// binding slots. Allocated once at initialization, never resized, released
// exactly once at teardown.
type bufferPair struct {
	alloc nvrt.Allocator
	ptrs  [numBindings]nvrt.DevicePtr
}

func newBufferPair(alloc nvrt.Allocator) *bufferPair {
	return &bufferPair{alloc: alloc}
}

// allocate reserves size bytes for the given binding slot.
func (b *bufferPair) allocate(slot, size int) error {
	p, err := b.alloc.Malloc(size)
	if err != nil {
		return err
	}
	b.ptrs[slot] = p
	return nil
}

// ptr returns the device address bound to slot.
func (b *bufferPair) ptr(slot int) nvrt.DevicePtr {
	return b.ptrs[slot]
}

// bindings returns the slot-indexed device addresses for execution.
func (b *bufferPair) bindings() []nvrt.DevicePtr {
	out := b.ptrs
	return out[:]
}

// releaseAll frees both buffers back to back, then performs a single device
// status check: the device reports free errors asynchronously, so checking
// per call would miss them. Callers must not release twice; freed slots are
// zeroed so a second call is a no-op on the device.
func (b *bufferPair) releaseAll() error {
	for i := range b.ptrs {
		if b.ptrs[i] != 0 {
			b.alloc.Free(b.ptrs[i])
			b.ptrs[i] = 0
		}
	}
	return b.alloc.Err()
}
