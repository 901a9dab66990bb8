package logger_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/logger"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestNew_WritesToStderr(t *testing.T) {
	t.Setenv(logger.LevelEnv, "")

	output := captureStderr(t, func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("some message")
		lg.Debug("hidden detail")
	})

	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")
	assert.NotContains(t, output, "hidden detail")
}

func TestNew_DebugLevelFromEnvironment(t *testing.T) {
	t.Setenv(logger.LevelEnv, "debug")

	output := captureStderr(t, func() {
		logger.New().Debug("exec: odin build")
	})

	assert.Contains(t, output, "DEBUG")
	assert.Contains(t, output, "exec: odin build")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "some warning")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "permission denied")
}

func TestLogger_Error_IncludesMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	err := zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "missing test source"), "target", "simd")
	lg.Error(err)

	assert.Contains(t, buf.String(), "target=simd")
	assert.Contains(t, buf.String(), "missing test source")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.SetLevel(domain.LogLevelWarn)
	lg.Info("quiet")
	lg.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
