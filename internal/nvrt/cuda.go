//go:build cuda

package nvrt

/*
#cgo LDFLAGS: -lcudart
#include <cuda_runtime_api.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// cudaBuilt indicates this binary was compiled with real device support.
var cudaBuilt = true

// cudaAllocator backs the Allocator interface with the CUDA runtime API.
// One allocator per net instance; it pins the device index at open time.
type cudaAllocator struct {
	gpuID int
}

// OpenAllocator selects the device and returns a cudart-backed allocator.
func OpenAllocator(gpuID int) (Allocator, error) {
	if rc := C.cudaSetDevice(C.int(gpuID)); rc != C.cudaSuccess {
		return nil, ErrDevice(fmt.Sprintf("cudaSetDevice(%d): %s", gpuID, C.GoString(C.cudaGetErrorString(rc))))
	}
	return &cudaAllocator{gpuID: gpuID}, nil
}

func (a *cudaAllocator) Malloc(size int) (DevicePtr, error) {
	var p unsafe.Pointer
	rc := C.cudaMalloc(&p, C.size_t(size))
	if rc == C.cudaErrorMemoryAllocation {
		return 0, ErrOutOfMemory(size, fmt.Sprintf("cudaMalloc(%d bytes): out of device memory", size))
	}
	if rc != C.cudaSuccess {
		return 0, ErrDevice(fmt.Sprintf("cudaMalloc(%d bytes): %s", size, C.GoString(C.cudaGetErrorString(rc))))
	}
	return DevicePtr(uintptr(p)), nil
}

func (a *cudaAllocator) Free(p DevicePtr) {
	if p == 0 {
		return
	}
	// Status intentionally unchecked here; Err() picks up the sticky error
	// after the caller has batched its frees.
	C.cudaFree(unsafe.Pointer(uintptr(p)))
}

func (a *cudaAllocator) CopyToDevice(dst DevicePtr, src []float32) error {
	if len(src) == 0 {
		return nil
	}
	n := C.size_t(len(src) * 4)
	rc := C.cudaMemcpy(unsafe.Pointer(uintptr(dst)), unsafe.Pointer(&src[0]), n, C.cudaMemcpyHostToDevice)
	if rc != C.cudaSuccess {
		return ErrDevice(fmt.Sprintf("cudaMemcpy host->device (%d bytes): %s", int(n), C.GoString(C.cudaGetErrorString(rc))))
	}
	return nil
}

func (a *cudaAllocator) Err() error {
	rc := C.cudaGetLastError()
	if rc != C.cudaSuccess {
		return ErrDevice(fmt.Sprintf("device error: %s", C.GoString(C.cudaGetErrorString(rc))))
	}
	return nil
}
