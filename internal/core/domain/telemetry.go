package domain

import (
	"strings"
	"time"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a level name such as "debug" to a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return LogLevelDebug
	case "warn", "WARN", "warning":
		return LogLevelWarn
	case "error", "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Step is one build or test execution replayed from the run journal.
type Step struct {
	// Name is the recorded vertex name, such as "build simd" or "run simd".
	Name      string
	Started   time.Time
	Completed time.Time
	// Cached is set when the build was skipped because the binary was fresh.
	Cached   bool
	Canceled bool
	// Error is the failure message, empty when the step succeeded.
	Error string
	// Output is the captured compiler or test output, stdout and stderr interleaved.
	Output []byte
}

// Target returns the target name of the step, without its phase prefix.
func (s Step) Target() string {
	if _, name, ok := strings.Cut(s.Name, " "); ok {
		return name
	}
	return s.Name
}

// Phase returns "build" or "run".
func (s Step) Phase() string {
	phase, _, _ := strings.Cut(s.Name, " ")
	return phase
}

// Duration returns the wall time of the step, zero when it never completed.
func (s Step) Duration() time.Duration {
	if s.Started.IsZero() || s.Completed.IsZero() {
		return 0
	}
	return s.Completed.Sub(s.Started)
}
