package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestPathExists(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "pose.plan")
	if PathExists(p) {
		t.Fatalf("expected missing path to not exist")
	}
	if err := os.WriteFile(p, []byte("plan"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !PathExists(p) {
		t.Fatalf("expected path to exist")
	}
}

func TestExpandHome(t *testing.T) {
	// Pin HOME so the test is deterministic.
	origHome, hadHome := os.LookupEnv("HOME")
	t.Cleanup(func() {
		if hadHome {
			_ = os.Setenv("HOME", origHome)
		} else {
			_ = os.Unsetenv("HOME")
		}
	})
	if runtime.GOOS == "windows" {
		t.Skip("HOME-based expansion not exercised on windows")
	}
	home := t.TempDir()
	_ = os.Setenv("HOME", home)

	if got, err := ExpandHome("/opt/plans"); err != nil || got != "/opt/plans" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome("~"); err != nil || got != home {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome("~/plans/pose.plan"); err != nil || got != filepath.Join(home, "plans/pose.plan") {
		t.Fatalf("got %q err=%v", got, err)
	}
}
