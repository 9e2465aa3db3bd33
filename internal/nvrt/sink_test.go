package nvrt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSeverityString(t *testing.T) {
	cases := []struct {
		sev  Severity
		want string
	}{
		{SeverityInternalError, "INTERNAL_ERROR"},
		{SeverityError, "ERROR"},
		{SeverityWarning, "WARNING"},
		{SeverityInfo, "INFO"},
		{SeverityUnknown, "UNKNOWN"},
		{Severity(99), "UNKNOWN"},
	}
	for _, c := range cases {
		if got := c.sev.String(); got != c.want {
			t.Fatalf("severity %d: expected %q got %q", c.sev, c.want, got)
		}
	}
}

func TestZerologSinkRoutesSeverity(t *testing.T) {
	var buf bytes.Buffer
	sink := ZerologSink{L: zerolog.New(&buf)}

	sink.Log(SeverityError, "engine said no")
	sink.Log(SeverityInfo, "engine said hello")

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "engine said no") {
		t.Fatalf("expected error line in output, got %q", out)
	}
	if !strings.Contains(out, `"level":"info"`) || !strings.Contains(out, "engine said hello") {
		t.Fatalf("expected info line in output, got %q", out)
	}
	if !strings.Contains(out, `"severity":"ERROR"`) {
		t.Fatalf("expected severity tag in output, got %q", out)
	}
}

func TestOpenRuntimeWithoutBinding(t *testing.T) {
	// Ensure no binding is registered for this test.
	factoryMu.Lock()
	saved := factory
	factory = nil
	factoryMu.Unlock()
	defer func() {
		factoryMu.Lock()
		factory = saved
		factoryMu.Unlock()
	}()

	_, err := OpenRuntime(0, NopSink{})
	if err == nil || !IsRuntimeUnavailable(err) {
		t.Fatalf("expected runtime unavailable error, got %v", err)
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsOutOfMemory(ErrOutOfMemory(128, "oom")) {
		t.Fatalf("expected IsOutOfMemory true")
	}
	if !IsDevice(ErrDevice("boom")) {
		t.Fatalf("expected IsDevice true")
	}
	if IsDevice(ErrOutOfMemory(1, "oom")) || IsOutOfMemory(ErrDevice("boom")) {
		t.Fatalf("predicates must not cross-match")
	}
}
