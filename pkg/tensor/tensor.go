package tensor

import "fmt"

// Tensor is a host-resident, row-major float32 array with explicit
// dimensions. The inference core borrows it for the duration of one
// forward pass and never retains a reference.
type Tensor struct {
	dims []int
	data []float32
}

// New allocates a zero-filled tensor with the given dimensions.
func New(dims ...int) *Tensor {
	n := 1
	for _, d := range dims {
		n *= d
	}
	if len(dims) == 0 {
		n = 0
	}
	return &Tensor{dims: append([]int(nil), dims...), data: make([]float32, n)}
}

// FromData wraps an existing flat buffer. The buffer length must match the
// product of dims.
func FromData(data []float32, dims ...int) (*Tensor, error) {
	n := 1
	for _, d := range dims {
		n *= d
	}
	if len(dims) == 0 || n != len(data) {
		return nil, fmt.Errorf("tensor: data length %d does not match dims %v", len(data), dims)
	}
	return &Tensor{dims: append([]int(nil), dims...), data: data}, nil
}

// Empty reports whether the tensor holds no elements.
func (t *Tensor) Empty() bool {
	return t == nil || len(t.data) == 0
}

// NumDims returns the number of dimensions.
func (t *Tensor) NumDims() int { return len(t.dims) }

// Dim returns the size of dimension i, or 0 if out of range.
func (t *Tensor) Dim(i int) int {
	if i < 0 || i >= len(t.dims) {
		return 0
	}
	return t.dims[i]
}

// Dims returns a copy of the dimension sizes.
func (t *Tensor) Dims() []int {
	return append([]int(nil), t.dims...)
}

// Volume returns the total number of elements.
func (t *Tensor) Volume() int {
	if len(t.dims) == 0 {
		return 0
	}
	n := 1
	for _, d := range t.dims {
		n *= d
	}
	return n
}

// Data exposes the flat backing slice.
func (t *Tensor) Data() []float32 { return t.data }
