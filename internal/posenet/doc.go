// Package posenet manages the lifecycle of a compiled pose-estimation
// engine on a GPU: plan loading, tensor binding, device buffers and
// synchronous forward passes. It is structured into small files by concern:
//
//   - net.go: Net type, construction, process-wide one-time log install,
//     output blob access, teardown.
//   - config.go: NetConfig, package defaults, fixed shape constants.
//   - errors.go: error types and predicates (IsPlanNotFound, IsInvalidInput, ...).
//   - loader.go: plan read, engine deserialization, binding resolution,
//     buffer allocation (InitOnThread).
//   - buffers.go: device buffer pair with batched release check.
//   - executor.go: input validation and the forward pass.
//   - metrics.go: Prometheus instruments.
//   - status.go: Ready/Status/SanityCheck projections.
//
// The vendor runtime is abstracted behind rtpose/internal/nvrt; default
// builds carry a fail-fast stub, real device support comes in with the
// 'cuda' build tag. Tests inject fakes through the package-level seams on
// Net.
//
// Thread affinity: InitOnThread, Forward and Close belong on one goroutine,
// locked to its OS thread when a real runtime is bound. Construction may
// happen on a different goroutine. One Net serves one caller at a time;
// run one Net per worker for parallel inference.
package posenet
