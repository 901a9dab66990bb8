package telemetry_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/telemetry"
	"go.trai.ch/rig/internal/adapters/telemetry/progrock"
	"go.trai.ch/rig/internal/core/domain"
)

func TestNew_SelectsImplementation(t *testing.T) {
	assert.IsType(t, telemetry.Disabled{}, telemetry.New(true))
	assert.IsType(t, &progrock.Journal{}, telemetry.New(false))
}

func TestDisabled_RecordsNothingButReplays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	enabled, err := telemetry.New(false).Open(path)
	require.NoError(t, err)
	enabled.Record("run a").Complete(nil)
	require.NoError(t, enabled.Close())

	disabled := telemetry.New(true)
	tel, err := disabled.Open(path)
	require.NoError(t, err)
	assert.IsType(t, &telemetry.NoOp{}, tel)
	tel.Record("run b").Complete(nil)
	require.NoError(t, tel.Close())

	steps, err := disabled.Replay(path)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "run a", steps[0].Name)
}

func TestNoOp_DiscardsEverything(t *testing.T) {
	tel := telemetry.NewNoOp()
	v := tel.Record("build a")

	assert.Equal(t, io.Discard, v.Stdout())
	assert.Equal(t, io.Discard, v.Stderr())
	v.Log(domain.LogLevelInfo, "ignored")
	v.Cached()
	v.Complete(nil)
	require.NoError(t, tel.Close())
}
