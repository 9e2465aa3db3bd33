package nvrt

import "github.com/rs/zerolog"

// Severity mirrors the runtime's log severities.
type Severity int

const (
	SeverityInternalError Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
	SeverityUnknown
)

// String returns the severity tag used as the line prefix.
func (s Severity) String() string {
	switch s {
	case SeverityInternalError:
		return "INTERNAL_ERROR"
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// Sink receives severity-tagged messages from the inference runtime.
// Implementations must never fail and must not block the runtime.
type Sink interface {
	Log(sev Severity, msg string)
}

// ZerologSink routes runtime diagnostics onto a zerolog logger.
type ZerologSink struct {
	L zerolog.Logger
}

func (z ZerologSink) Log(sev Severity, msg string) {
	var ev *zerolog.Event
	switch sev {
	case SeverityInternalError, SeverityError:
		ev = z.L.Error()
	case SeverityWarning:
		ev = z.L.Warn()
	case SeverityInfo:
		ev = z.L.Info()
	default:
		ev = z.L.Debug()
	}
	ev.Str("severity", sev.String()).Msg(msg)
}

// NopSink discards all runtime diagnostics.
type NopSink struct{}

func (NopSink) Log(Severity, string) {}
