package tensor

// Blob is a borrowed, non-owning view over a device-memory allocation,
// kept shape-compatible with generic blob abstractions used by downstream
// pipelines. The memory it points at belongs to the net instance that
// produced it; the view must not outlive that instance.
type Blob struct {
	dims   []int
	devPtr uintptr
}

// NewBlob wraps an existing device allocation. Callers other than the
// owning net have no business constructing blobs.
func NewBlob(devPtr uintptr, dims ...int) *Blob {
	return &Blob{dims: append([]int(nil), dims...), devPtr: devPtr}
}

// Dims returns a copy of the blob's dimension sizes.
func (b *Blob) Dims() []int {
	return append([]int(nil), b.dims...)
}

// Volume returns the total number of elements.
func (b *Blob) Volume() int {
	if len(b.dims) == 0 {
		return 0
	}
	n := 1
	for _, d := range b.dims {
		n *= d
	}
	return n
}

// DevicePtr returns the raw device address backing the blob. No host copy
// is made; callers needing host access must transfer explicitly.
func (b *Blob) DevicePtr() uintptr { return b.devPtr }
