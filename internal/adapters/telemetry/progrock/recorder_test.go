package progrock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/telemetry/progrock"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestJournal_ReplaysBuildAndRunVertices(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".rig", "journal.jsonl")
	journal := progrock.NewJournal()

	recorder, err := journal.Open(path)
	require.NoError(t, err)

	build := recorder.Record("build simd")
	_, err = build.Stdout().Write([]byte("compiling\n"))
	require.NoError(t, err)
	build.Log(domain.LogLevelDebug, "binary missing")
	build.Complete(nil)

	cached := recorder.Record("build strings")
	cached.Cached()
	cached.Complete(nil)

	run := recorder.Record("run simd")
	_, err = run.Stderr().Write([]byte("assertion failed\n"))
	require.NoError(t, err)
	run.Log(domain.LogLevelError, "exit code 1")
	run.Complete(zerr.New("test failed"))

	require.NoError(t, recorder.Close())

	steps, err := journal.Replay(path)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, "build simd", steps[0].Name)
	assert.Equal(t, "compiling\n[DEBUG] binary missing\n", string(steps[0].Output))
	assert.Empty(t, steps[0].Error)
	assert.False(t, steps[0].Completed.IsZero())

	assert.Equal(t, "build strings", steps[1].Name)
	assert.True(t, steps[1].Cached)

	assert.Equal(t, "run simd", steps[2].Name)
	assert.Equal(t, "simd", steps[2].Target())
	assert.Equal(t, "test failed", steps[2].Error)
	assert.Equal(t, "assertion failed\n[ERROR] exit code 1\n", string(steps[2].Output))
}

func TestJournal_OpenReplacesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	journal := progrock.NewJournal()

	first, err := journal.Open(path)
	require.NoError(t, err)
	first.Record("run old").Complete(nil)
	require.NoError(t, first.Close())

	second, err := journal.Open(path)
	require.NoError(t, err)
	second.Record("run new").Complete(nil)
	require.NoError(t, second.Close())

	steps, err := journal.Replay(path)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "run new", steps[0].Name)
}

func TestJournal_ReplayMissing(t *testing.T) {
	_, err := progrock.NewJournal().Replay(filepath.Join(t.TempDir(), "journal.jsonl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoJournal)
}

func TestJournal_ReplayToleratesTruncatedTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	journal := progrock.NewJournal()

	recorder, err := journal.Open(path)
	require.NoError(t, err)
	recorder.Record("run a").Complete(nil)
	require.NoError(t, recorder.Close())

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(`{"vertexes":[{"id":"x","na`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	steps, err := journal.Replay(path)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "run a", steps[0].Name)
}

func TestJournal_ReplayRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("not json\n"), 0o600))

	_, err := progrock.NewJournal().Replay(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode journal")
}
