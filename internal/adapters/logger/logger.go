// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// LevelEnv names the environment variable selecting the log level.
const LevelEnv = "RIG_LOG_LEVEL"

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	out    io.Writer
	level  slog.Level
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr at the level named by RIG_LOG_LEVEL.
func New() *Logger {
	level := slog.Level(domain.ParseLogLevel(os.Getenv(LevelEnv)))
	return &Logger{
		logger: newSlog(os.Stderr, level),
		out:    os.Stderr,
		level:  level,
	}
}

func newSlog(w io.Writer, level slog.Level) *slog.Logger {
	// Text handler on stderr keeps stdout free for test output.
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.logger = newSlog(w, l.level)
}

// SetLevel changes the minimum level that is written.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = slog.Level(level)
	l.logger = newSlog(l.out, l.level)
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with the metadata attached through zerr.With.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", errorAttrs(err)...)
}

func errorAttrs(err error) []any {
	attrs := []any{slog.String("error", errString(err))}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return attrs
	}
	meta := zErr.Metadata()
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		attrs = append(attrs, slog.Any(key, meta[key]))
	}
	return attrs
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
