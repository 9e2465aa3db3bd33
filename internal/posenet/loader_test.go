package posenet

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestReadPlanReturnsFullContent(t *testing.T) {
	plan, content := writePlanFile(t, t.TempDir())
	got, err := readPlan(plan)
	if err != nil {
		t.Fatalf("read plan: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("plan content mismatch: %d bytes vs %d", len(got), len(content))
	}
}

func TestReadPlanMissingFile(t *testing.T) {
	_, err := readPlan(filepath.Join(t.TempDir(), "gone.plan"))
	if err == nil || !IsPlanRead(err) {
		t.Fatalf("expected plan read error, got %v", err)
	}
}

func TestInitPassesPlanBytesToRuntime(t *testing.T) {
	env := newTestNet(t, nil, nil)
	if err := env.net.InitOnThread(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !bytes.Equal(env.rt.gotPlan, env.plan) {
		t.Fatalf("runtime did not receive the plan bytes read from disk")
	}
}

func TestInitBindingCountMismatch(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5} {
		env := newTestNet(t, nil, func(e *testEnv) { e.eng.bindings = n })
		err := env.net.InitOnThread()
		if err == nil || !IsBindingCount(err) {
			t.Fatalf("bindings=%d: expected binding count error, got %v", n, err)
		}
		if env.alloc.allocs != 0 {
			t.Fatalf("bindings=%d: expected no buffer allocation, got %d", n, env.alloc.allocs)
		}
		if !env.ctx.destroyed || !env.eng.destroyed || !env.rt.destroyed {
			t.Fatalf("bindings=%d: expected partial resources released", n)
		}
		if env.net.Ready() {
			t.Fatalf("bindings=%d: instance must stay unusable", n)
		}
	}
}

func TestInitUnknownOutputBinding(t *testing.T) {
	env := newTestNet(t, func(cfg *NetConfig) { cfg.OutputName = "bogus" }, nil)
	err := env.net.InitOnThread()
	if err == nil || !IsUnknownBinding(err) {
		t.Fatalf("expected unknown binding error, got %v", err)
	}
	if env.alloc.allocs != 0 {
		t.Fatalf("expected no allocation when name resolution fails")
	}
}

func TestInitCustomOutputName(t *testing.T) {
	env := newTestNet(
		t,
		func(cfg *NetConfig) { cfg.OutputName = "part_maps" },
		func(e *testEnv) { e.eng.names = map[string]int{inputBindingName: 1, "part_maps": 0} },
	)
	if err := env.net.InitOnThread(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if env.net.inputIndex != 1 || env.net.outputIndex != 0 {
		t.Fatalf("expected slots resolved by name, got input=%d output=%d", env.net.inputIndex, env.net.outputIndex)
	}
	if blob := env.net.OutputBlob(); blob == nil || blob.DevicePtr() != uintptr(env.net.bufs.ptr(0)) {
		t.Fatalf("expected blob mapped to the resolved output slot")
	}
}

func TestInitAllocationFailureReleasesFirstBuffer(t *testing.T) {
	env := newTestNet(t, nil, func(e *testEnv) { e.alloc.failAlloc = 2 })
	err := env.net.InitOnThread()
	if err == nil {
		t.Fatalf("expected allocation failure")
	}
	if env.alloc.allocs != 2 {
		t.Fatalf("expected 2 allocation attempts, got %d", env.alloc.allocs)
	}
	if env.alloc.frees != 1 {
		t.Fatalf("expected the first buffer released, got %d frees", env.alloc.frees)
	}
	if !env.ctx.destroyed || !env.eng.destroyed || !env.rt.destroyed {
		t.Fatalf("expected runtime objects released on failure")
	}
}

func TestInitDeserializeFailure(t *testing.T) {
	wantErr := errors.New("corrupt plan")
	env := newTestNet(t, nil, func(e *testEnv) { e.rt.deserializeErr = wantErr })
	err := env.net.InitOnThread()
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected deserialize error, got %v", err)
	}
	if !env.rt.destroyed {
		t.Fatalf("expected runtime destroyed after failed deserialize")
	}
	if st := env.net.Status(); st.Err == "" {
		t.Fatalf("expected last error recorded in status")
	}
}

func TestInitTwiceRejected(t *testing.T) {
	env := newTestNet(t, nil, nil)
	if err := env.net.InitOnThread(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := env.net.InitOnThread(); err == nil || !IsNotInitialized(err) {
		t.Fatalf("expected state error on double init, got %v", err)
	}
}
