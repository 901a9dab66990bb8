// Package app implements the application layer for rig.
package app

import (
	"context"
	"errors"
	"path/filepath"
	"slices"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.StoreOpener
	finder       ports.TestFinder
	fs           ports.FileSystem
	executor     ports.Executor
	hasher       ports.Hasher
	reporter     ports.Reporter
	journal      ports.Journal
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.StoreOpener,
	finder ports.TestFinder,
	fs ports.FileSystem,
	executor ports.Executor,
	hasher ports.Hasher,
	reporter ports.Reporter,
	journal ports.Journal,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		finder:       finder,
		fs:           fs,
		executor:     executor,
		hasher:       hasher,
		reporter:     reporter,
		journal:      journal,
		logger:       logger,
	}
}

// Workspace locates the test tree of an invocation.
type Workspace struct {
	// Dir is the test root searched for rig.yaml. Empty means the working directory.
	Dir string
	// ConfigPath overrides the configuration file. Its directory becomes the root.
	ConfigPath string
}

// Run builds the stale targets and runs their test binaries.
// The steps of the run are journaled for a later Log.
func (a *App) Run(ctx context.Context, ws Workspace, opts domain.RunOptions) error {
	cfg, err := a.loadConfig(ws)
	if err != nil {
		return err
	}

	telemetry := a.openJournal(cfg)
	defer func() {
		if cerr := telemetry.Close(); cerr != nil {
			a.logger.Warn("failed to close journal: " + cerr.Error())
		}
	}()

	store := a.openStore(cfg)
	defer a.closeStore(store)

	_, err = a.orchestrator(cfg, store, telemetry).Run(ctx, opts)
	return err
}

// Status reports the staleness and recorded history of the targets.
// It never writes to the test tree: a missing ledger means no history.
func (a *App) Status(ctx context.Context, ws Workspace, targets []string) error {
	cfg, err := a.loadConfig(ws)
	if err != nil {
		return err
	}

	store := a.openStoreReadOnly(cfg)
	defer a.closeStore(store)

	_, err = a.orchestrator(cfg, store, discardTelemetry{}).Status(ctx, targets)
	return err
}

// Log replays the steps of the last run, limited to the given targets when any are named.
func (a *App) Log(_ context.Context, ws Workspace, targets []string) error {
	cfg, err := a.loadConfig(ws)
	if err != nil {
		return err
	}

	steps, err := a.journal.Replay(cfg.JournalPath())
	if err != nil {
		return err
	}

	if len(targets) > 0 {
		names := make([]string, len(targets))
		for i, t := range targets {
			names[i] = domain.NormalizeTargetName(t, cfg.Extension)
		}
		steps = slices.DeleteFunc(steps, func(s domain.Step) bool {
			return !slices.Contains(names, s.Target())
		})
	}

	a.reporter.OnSteps(steps)
	return nil
}

// Clean removes the bin directory, the ledger and the run journal.
func (a *App) Clean(_ context.Context, ws Workspace) error {
	cfg, err := a.loadConfig(ws)
	if err != nil {
		return err
	}

	bin := cfg.BinPath()
	if bin == cfg.Root {
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "refusing to remove the test root"), "path", bin)
	}

	for _, path := range []string{bin, cfg.Path(cfg.LedgerPath), cfg.JournalPath()} {
		if err := a.fs.RemoveAll(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to clean"), "path", path)
		}
		a.logger.Info("removed " + path)
	}
	return nil
}

// loadConfig reads the configuration of the workspace. A missing default
// rig.yaml yields the built-in defaults; a missing explicit file is an error.
func (a *App) loadConfig(ws Workspace) (*domain.Config, error) {
	dir := ws.Dir
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve test directory"), "path", dir)
	}

	path := ws.ConfigPath
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, domain.DefaultConfigFile)
	}

	cfg, err := a.configLoader.Load(path)
	if err == nil {
		return cfg, nil
	}
	if explicit || !errors.Is(err, domain.ErrConfigNotFound) {
		return nil, err
	}

	a.logger.Debug("no " + domain.DefaultConfigFile + " in " + root + ", using defaults")
	cfg = domain.DefaultConfig(root)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openJournal starts recording the run. A journal that cannot be created
// only costs the replay, so the run goes ahead without one.
func (a *App) openJournal(cfg *domain.Config) ports.Telemetry {
	telemetry, err := a.journal.Open(cfg.JournalPath())
	if err != nil {
		a.logger.Warn("journal unavailable, steps will not be recorded: " + err.Error())
		return discardTelemetry{}
	}
	return telemetry
}

// openStore opens the ledger for writing. Without it every target is
// treated as unrecorded and nothing is remembered.
func (a *App) openStore(cfg *domain.Config) ports.BuildInfoStore {
	store, err := a.opener.Open(cfg.Path(cfg.LedgerPath))
	if err != nil {
		a.logger.Warn("ledger unavailable, history will not be recorded: " + err.Error())
		return discardStore{}
	}
	return store
}

// openStoreReadOnly opens an existing ledger without creating one.
func (a *App) openStoreReadOnly(cfg *domain.Config) ports.BuildInfoStore {
	path := cfg.Path(cfg.LedgerPath)
	info, err := a.fs.Stat(path)
	if err != nil {
		a.logger.Warn("ledger unavailable: " + err.Error())
		return discardStore{}
	}
	if !info.Exists {
		a.logger.Debug("no ledger at " + path)
		return discardStore{}
	}

	store, err := a.opener.OpenReadOnly(path)
	if err != nil {
		a.logger.Warn("ledger unavailable: " + err.Error())
		return discardStore{}
	}
	return store
}

func (a *App) closeStore(store ports.BuildInfoStore) {
	if err := store.Close(); err != nil {
		a.logger.Warn("failed to close ledger: " + err.Error())
	}
}

func (a *App) orchestrator(
	cfg *domain.Config,
	store ports.BuildInfoStore,
	telemetry ports.Telemetry,
) *orchestrator.Orchestrator {
	return orchestrator.New(cfg, orchestrator.Deps{
		Finder:    a.finder,
		FS:        a.fs,
		Executor:  a.executor,
		Hasher:    a.hasher,
		Store:     store,
		Reporter:  a.reporter,
		Telemetry: telemetry,
		Logger:    a.logger,
	})
}
