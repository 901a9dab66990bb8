package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/cmd/rig/commands"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/build"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	cli    *commands.CLI
	stdout *bytes.Buffer
	stderr *bytes.Buffer

	loader   *mocks.MockConfigLoader
	opener   *mocks.MockStoreOpener
	store    *mocks.MockBuildInfoStore
	finder   *mocks.MockTestFinder
	fs       *mocks.MockFileSystem
	reporter *mocks.MockReporter
	journal  *mocks.MockJournal
	vertex   *mocks.MockVertex
	logger   *mocks.MockLogger
}

func newHarness(t *testing.T, args ...string) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		loader:   mocks.NewMockConfigLoader(ctrl),
		opener:   mocks.NewMockStoreOpener(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		finder:   mocks.NewMockTestFinder(ctrl),
		fs:       mocks.NewMockFileSystem(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		journal:  mocks.NewMockJournal(ctrl),
		vertex:   mocks.NewMockVertex(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	telemetry := mocks.NewMockTelemetry(ctrl)
	h.journal.EXPECT().Open(gomock.Any()).Return(telemetry, nil).AnyTimes()
	telemetry.EXPECT().Record(gomock.Any()).Return(h.vertex).AnyTimes()
	telemetry.EXPECT().Close().Return(nil).AnyTimes()
	h.vertex.EXPECT().Cached().AnyTimes()
	h.vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	a := app.New(h.loader, h.opener, h.finder, h.fs, mocks.NewMockExecutor(ctrl),
		mocks.NewMockHasher(ctrl), h.reporter, h.journal, h.logger)

	h.cli = commands.New(a)
	h.cli.SetOutput(h.stdout, h.stderr)
	h.cli.SetArgs(args)
	return h
}

func (h *harness) execute() error {
	return h.cli.Execute(context.Background())
}

// expectWorkspace loads a configuration rooted at root without dependency trees
// and opens its ledger.
func (h *harness) expectWorkspace(root string) *domain.Config {
	cfg := domain.DefaultConfig(root)
	cfg.LibraryDir = ""
	cfg.UtilityDir = ""

	h.loader.EXPECT().Load(filepath.Join(root, domain.DefaultConfigFile)).Return(cfg, nil)
	h.opener.EXPECT().Open(gomock.Any()).Return(h.store, nil)
	h.store.EXPECT().Close().Return(nil)
	return cfg
}

func TestRoot_BuildOnlyWithTargets(t *testing.T) {
	root := t.TempDir()
	h := newHarness(t, "--dir", root, "-c", "./a.odin")
	cfg := h.expectWorkspace(root)

	target := cfg.Target("a")
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.fs.EXPECT().Stat(target.Source).Return(domain.FileInfo{Exists: true, ModTime: old}, nil).AnyTimes()
	h.fs.EXPECT().Stat(target.Binary).Return(domain.FileInfo{Exists: true, ModTime: old.Add(time.Minute)}, nil)
	h.fs.EXPECT().EnsureDir(cfg.BinPath()).Return(nil)

	h.reporter.EXPECT().OnPlan([]domain.Target{target}, domain.RunOptions{
		Targets:   []string{"./a.odin"},
		BuildOnly: true,
	})
	h.reporter.EXPECT().OnBuildComplete(target, gomock.Any())
	h.reporter.EXPECT().OnSummary(gomock.Any())

	require.NoError(t, h.execute())
}

func TestRun_ForceFlag(t *testing.T) {
	root := t.TempDir()
	h := newHarness(t, "--dir", root, "run", "-f", "version")
	cfg := h.expectWorkspace(root)

	target := cfg.Target("version")
	h.fs.EXPECT().Stat(target.Source).Return(domain.FileInfo{Exists: true}, nil)

	var opts domain.RunOptions
	h.reporter.EXPECT().OnPlan(gomock.Any(), gomock.Any()).Do(func(_ []domain.Target, o domain.RunOptions) {
		opts = o
	})
	h.fs.EXPECT().EnsureDir(cfg.BinPath()).Return(errors.New("read-only file system"))

	err := h.execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only file system")
	assert.Equal(t, domain.RunOptions{Targets: []string{"version"}, Force: true}, opts)
}

func TestRoot_ExplicitConfigNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	h := newHarness(t, "--config", path, "status")

	h.loader.EXPECT().Load(path).Return(nil, domain.ErrConfigNotFound)

	err := h.execute()
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestStatus(t *testing.T) {
	root := t.TempDir()
	h := newHarness(t, "--dir", root, "status")

	cfg := domain.DefaultConfig(root)
	cfg.LibraryDir = ""
	cfg.UtilityDir = ""
	h.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	h.fs.EXPECT().Stat(filepath.Join(root, domain.DefaultLedgerPath)).Return(domain.FileInfo{}, nil)

	h.finder.EXPECT().FindTests(gomock.Any()).Return(nil, nil)
	h.reporter.EXPECT().OnStatus(gomock.Len(0))

	require.NoError(t, h.execute())
}

func TestLog(t *testing.T) {
	root := t.TempDir()
	h := newHarness(t, "--dir", root, "log", "b.odin")

	h.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(root), nil)
	h.journal.EXPECT().Replay(filepath.Join(root, ".rig", domain.JournalFile)).Return([]domain.Step{
		{Name: "build a"},
		{Name: "build b"},
		{Name: "run b"},
	}, nil)
	h.reporter.EXPECT().OnSteps([]domain.Step{{Name: "build b"}, {Name: "run b"}})

	require.NoError(t, h.execute())
}

func TestLog_NoJournal(t *testing.T) {
	root := t.TempDir()
	h := newHarness(t, "--dir", root, "log")

	h.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(root), nil)
	h.journal.EXPECT().Replay(gomock.Any()).Return(nil, domain.ErrNoJournal)

	assert.ErrorIs(t, h.execute(), domain.ErrNoJournal)
}

func TestClean(t *testing.T) {
	root := t.TempDir()
	h := newHarness(t, "--dir", root, "clean")

	h.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(root), nil)
	h.fs.EXPECT().RemoveAll(gomock.Any()).Return(nil).Times(3)
	h.logger.EXPECT().Info(gomock.Any()).Times(3)

	require.NoError(t, h.execute())
}

func TestClean_RejectsArguments(t *testing.T) {
	h := newHarness(t, "clean", "a")

	err := h.execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Contains(t, h.stderr.String(), "Usage:")
}

func TestRoot_HelpIsUsageError(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"run", "--help"}} {
		h := newHarness(t, args...)

		err := h.execute()
		require.ErrorIs(t, err, domain.ErrUsage, "args %v", args)
		assert.Contains(t, h.stdout.String(), "Usage:")
	}
}

func TestRoot_UnknownFlag(t *testing.T) {
	h := newHarness(t, "--bogus")

	err := h.execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsage)
	assert.Contains(t, h.stderr.String(), "unknown flag: --bogus")
	assert.Contains(t, h.stderr.String(), "Usage:")
}

func TestVersion(t *testing.T) {
	h := newHarness(t, "version")

	require.NoError(t, h.execute())
	assert.Equal(t, build.Info()+"\n", h.stdout.String())
}

func TestVersionFlag(t *testing.T) {
	h := newHarness(t, "--version")

	require.NoError(t, h.execute())
	assert.Equal(t, build.Info()+"\n", h.stdout.String())
}
