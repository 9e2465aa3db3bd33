//go:build !cuda

package nvrt

// This file provides a no-CGO stub for the device allocator. It is compiled
// when the 'cuda' build tag is NOT set, keeping default builds and CI
// CGO-free. The real allocator lives in cuda.go (tagged 'cuda').

// cudaBuilt indicates whether real device support was compiled in.
var cudaBuilt = false

// OpenAllocator fails fast: device memory is not available in this build.
// No mocked allocations in production binaries; tests inject their own
// Allocator implementations.
func OpenAllocator(gpuID int) (Allocator, error) {
	return nil, ErrRuntimeUnavailable("device support not built (missing 'cuda' build tag)")
}
