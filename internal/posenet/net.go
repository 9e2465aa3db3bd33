package posenet

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"rtpose/internal/common/fsutil"
	"rtpose/internal/nvrt"
	"rtpose/pkg/tensor"
)

// State represents the lifecycle state of a Net.
type State string

const (
	StateConstructed State = "constructed"
	StateReady       State = "ready"
	StateClosed      State = "closed"
)

// Process-wide one-time logging install, shared across all Net instances.
// Guarded by a mutex with a double-checked read so concurrent construction
// never installs twice. Resettable for tests.
var (
	logMu          sync.Mutex
	logInitialized atomic.Bool

	// installProcessLogging is the actual one-time effect; a package var so
	// tests can substitute a counter.
	installProcessLogging = func(l zerolog.Logger) {
		zerolog.DefaultContextLogger = &l
	}
)

func initProcessLoggingOnce(l zerolog.Logger) {
	if logInitialized.Load() {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	if logInitialized.Load() {
		return
	}
	installProcessLogging(l)
	logInitialized.Store(true)
}

// ResetProcessLoggingForTest clears the one-time flag so tests can exercise
// the initialization path again.
func ResetProcessLoggingForTest() {
	logMu.Lock()
	defer logMu.Unlock()
	logInitialized.Store(false)
}

// Net runs synchronous forward passes of a fixed-shape pose network on one
// GPU. Lifecycle: New -> InitOnThread -> Forward* -> Close.
//
// GPU execution contexts are thread-affine: InitOnThread and every Forward
// must run on the same goroutine, ideally one locked to its OS thread with
// runtime.LockOSThread. Construction may happen elsewhere (e.g. a factory
// goroutine). Forward is not safe for concurrent use; callers needing
// parallelism run one Net per worker. Ready and Status are safe to call
// from any goroutine.
type Net struct {
	mu   sync.RWMutex
	cfg  NetConfig
	log  zerolog.Logger
	sink nvrt.Sink

	state   State
	lastErr string

	runtime nvrt.Runtime
	engine  nvrt.Engine
	exec    nvrt.Context
	alloc   nvrt.Allocator
	bufs    *bufferPair

	inputIndex  int
	outputIndex int
	outputBlob  *tensor.Blob

	// Shape of the last accepted input, bookkeeping only (see Forward).
	lastInputDims []int
	forwardCount  uint64

	// Seams for tests; default to the real bindings.
	openRuntime   func(gpuID int, sink nvrt.Sink) (nvrt.Runtime, error)
	openAllocator func(gpuID int) (nvrt.Allocator, error)
}

// New constructs a Net. It validates that the plan file exists and, unless
// logging is disabled, performs the process-wide one-time log install. No
// device resources are touched until InitOnThread.
func New(cfg NetConfig, log zerolog.Logger) (*Net, error) {
	cfg = cfg.withDefaults()
	if !fsutil.PathExists(cfg.PlanPath) {
		return nil, ErrPlanNotFound(cfg.PlanPath)
	}
	var sink nvrt.Sink = nvrt.NopSink{}
	if !cfg.DisableLogging {
		initProcessLoggingOnce(log)
		sink = nvrt.ZerologSink{L: log}
	}
	return &Net{
		cfg:           cfg,
		log:           log,
		sink:          sink,
		state:         StateConstructed,
		openRuntime:   nvrt.OpenRuntime,
		openAllocator: nvrt.OpenAllocator,
	}, nil
}

// OutputBlob returns the zero-copy view over the output device buffer, or
// nil when the net has not been initialized. The nil return is deliberately
// soft: the compatibility path is optional and the cause is logged instead
// of propagated. The blob becomes invalid once the net is closed.
func (n *Net) OutputBlob() *tensor.Blob {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.outputBlob == nil {
		n.log.Warn().Str("state", string(n.state)).Msg("output blob requested before initialization")
	}
	return n.outputBlob
}

// Close releases the device buffers and destroys the execution context,
// engine and runtime, in that order. Safe after a failed or partial
// initialization; closing twice is a no-op. Must run on the same goroutine
// as InitOnThread when a real runtime is bound.
func (n *Net) Close() error {
	n.mu.Lock()
	if n.state == StateClosed {
		n.mu.Unlock()
		return nil
	}
	n.state = StateClosed
	bufs, exec, engine, runtime := n.bufs, n.exec, n.engine, n.runtime
	n.bufs, n.exec, n.engine, n.runtime, n.alloc = nil, nil, nil, nil, nil
	n.outputBlob = nil
	n.mu.Unlock()

	var err error
	if bufs != nil {
		err = bufs.releaseAll()
	}
	if exec != nil {
		exec.Destroy()
	}
	if engine != nil {
		engine.Destroy()
	}
	if runtime != nil {
		runtime.Destroy()
	}
	if err != nil {
		n.setErr(err)
	}
	return err
}

func (n *Net) setErr(err error) {
	n.mu.Lock()
	n.lastErr = err.Error()
	n.mu.Unlock()
}
