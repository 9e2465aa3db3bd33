package posenet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"rtpose/internal/nvrt"
	"rtpose/pkg/tensor"
)

// Fakes for the vendor runtime, with counters so tests can assert on
// resource pairing and execution counts.

type fakeContext struct {
	execCount    int
	execErr      error
	lastBatch    int
	lastBindings []nvrt.DevicePtr
	destroyed    bool
}

func (c *fakeContext) Execute(batch int, bindings []nvrt.DevicePtr) error {
	c.execCount++
	c.lastBatch = batch
	c.lastBindings = append([]nvrt.DevicePtr(nil), bindings...)
	return c.execErr
}

func (c *fakeContext) Destroy() { c.destroyed = true }

type fakeEngine struct {
	bindings  int
	names     map[string]int
	ctx       *fakeContext
	ctxErr    error
	destroyed bool
}

func (e *fakeEngine) NumBindings() int { return e.bindings }

func (e *fakeEngine) BindingIndex(name string) int {
	if i, ok := e.names[name]; ok {
		return i
	}
	return -1
}

func (e *fakeEngine) NewContext() (nvrt.Context, error) {
	if e.ctxErr != nil {
		return nil, e.ctxErr
	}
	return e.ctx, nil
}

func (e *fakeEngine) Destroy() { e.destroyed = true }

type fakeRuntime struct {
	engine         *fakeEngine
	deserializeErr error
	gotPlan        []byte
	destroyed      bool
}

func (r *fakeRuntime) Deserialize(plan []byte) (nvrt.Engine, error) {
	r.gotPlan = append([]byte(nil), plan...)
	if r.deserializeErr != nil {
		return nil, r.deserializeErr
	}
	return r.engine, nil
}

func (r *fakeRuntime) Destroy() { r.destroyed = true }

type fakeAllocator struct {
	allocs       int
	frees        int
	failAlloc    int // fail the Nth Malloc (1-based), 0 = never
	copies       int
	copiedFloats int
	copyErr      error
	checkErr     error
	next         uintptr
}

func (a *fakeAllocator) Malloc(size int) (nvrt.DevicePtr, error) {
	a.allocs++
	if a.failAlloc == a.allocs {
		return 0, nvrt.ErrOutOfMemory(size, "fake: out of device memory")
	}
	a.next += 0x1000
	return nvrt.DevicePtr(a.next), nil
}

func (a *fakeAllocator) Free(p nvrt.DevicePtr) {
	if p != 0 {
		a.frees++
	}
}

func (a *fakeAllocator) CopyToDevice(dst nvrt.DevicePtr, src []float32) error {
	if a.copyErr != nil {
		return a.copyErr
	}
	a.copies++
	a.copiedFloats += len(src)
	return nil
}

func (a *fakeAllocator) Err() error {
	err := a.checkErr
	a.checkErr = nil
	return err
}

type testEnv struct {
	rt    *fakeRuntime
	eng   *fakeEngine
	ctx   *fakeContext
	alloc *fakeAllocator
	net   *Net
	plan  []byte
}

// writePlanFile creates a dummy serialized plan on disk.
func writePlanFile(t *testing.T, dir string) (string, []byte) {
	t.Helper()
	content := bytes.Repeat([]byte("plan"), 256)
	p := filepath.Join(dir, "pose.plan")
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	return p, content
}

// newTestNet builds a Net wired to fakes. mutate can adjust the config,
// wire can adjust the fakes, both before construction.
func newTestNet(t *testing.T, mutate func(*NetConfig), wire func(*testEnv)) *testEnv {
	t.Helper()
	plan, content := writePlanFile(t, t.TempDir())

	env := &testEnv{ctx: &fakeContext{}, alloc: &fakeAllocator{}, plan: content}
	env.eng = &fakeEngine{
		bindings: numBindings,
		names:    map[string]int{inputBindingName: 0, DefaultOutputName: 1},
		ctx:      env.ctx,
	}
	env.rt = &fakeRuntime{engine: env.eng}
	if wire != nil {
		wire(env)
	}

	cfg := NetConfig{PlanPath: plan, DisableLogging: true}
	if mutate != nil {
		mutate(&cfg)
	}
	n, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("new net: %v", err)
	}
	n.openRuntime = func(int, nvrt.Sink) (nvrt.Runtime, error) { return env.rt, nil }
	n.openAllocator = func(int) (nvrt.Allocator, error) { return env.alloc, nil }
	env.net = n
	return env
}

func errDeviceForTest() error { return nvrt.ErrDevice("fake: async free failed") }

// validInput returns a zero-filled tensor of the fixed input shape.
func validInput() *tensor.Tensor {
	return tensor.New(1, inputChannels, inputHeight, inputWidth)
}
