// Package orchestrator implements the build-then-run pipeline over test targets.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the ports an Orchestrator drives.
type Deps struct {
	Finder    ports.TestFinder
	FS        ports.FileSystem
	Executor  ports.Executor
	Hasher    ports.Hasher
	Store     ports.BuildInfoStore
	Reporter  ports.Reporter
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// Orchestrator discovers targets, rebuilds the stale ones and runs their binaries.
// It is strictly sequential: one compiler or test process at a time, in target order.
type Orchestrator struct {
	cfg *domain.Config
	Deps
}

// New creates an Orchestrator for one configuration.
func New(cfg *domain.Config, deps Deps) *Orchestrator {
	return &Orchestrator{cfg: cfg, Deps: deps}
}

// dependencyTimes are the newest modification times of the trees every target depends on.
type dependencyTimes struct {
	library time.Time
	utility time.Time
	inputs  time.Time
}

// Run executes the pipeline: discovery, source validation, bin directory setup,
// build pass, run pass and summary.
//
// A compiler failure stops the run at once with ErrBuildFailed. Failing test
// binaries are counted and reported together as ErrTestsFailed after every
// target has run.
func (o *Orchestrator) Run(ctx context.Context, opts domain.RunOptions) (domain.Summary, error) {
	targets, err := o.Targets(opts.Targets)
	if err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{Targets: names(targets), BuildOnly: opts.BuildOnly}

	if err := o.validateSources(targets); err != nil {
		return summary, err
	}

	o.Reporter.OnPlan(targets, opts)

	if err := o.FS.EnsureDir(o.cfg.BinPath()); err != nil {
		return summary, err
	}

	deps, err := o.dependencyTimes()
	if err != nil {
		return summary, err
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return summary, zerr.Wrap(err, "run cancelled")
		}
		res, err := o.build(ctx, target, deps, opts.Force)
		summary.Builds = append(summary.Builds, res)
		if err != nil {
			return summary, err
		}
	}

	if !opts.BuildOnly {
		for _, target := range targets {
			if err := ctx.Err(); err != nil {
				return summary, zerr.Wrap(err, "run cancelled")
			}
			res, err := o.run(ctx, target)
			if err != nil {
				return summary, err
			}
			summary.Runs = append(summary.Runs, res)
		}
	}

	o.Reporter.OnSummary(summary)

	if failures := summary.Failures(); failures > 0 {
		msg := fmt.Sprintf("%d of %d tests failed", failures, len(summary.Runs))
		return summary, zerr.With(zerr.Wrap(domain.ErrTestsFailed, msg), "failures", failures)
	}
	return summary, nil
}

// Status evaluates staleness for the targets without building or running anything,
// and reports it together with the last recorded build and run.
func (o *Orchestrator) Status(ctx context.Context, requested []string) ([]domain.TargetStatus, error) {
	targets, err := o.Targets(requested)
	if err != nil {
		return nil, err
	}
	if err := o.validateSources(targets); err != nil {
		return nil, err
	}

	deps, err := o.dependencyTimes()
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.TargetStatus, 0, len(targets))
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "status cancelled")
		}

		ts, _, err := o.timestamps(target, deps)
		if err != nil {
			return nil, err
		}

		status := domain.TargetStatus{Target: target, Reason: ts.Staleness(false)}
		if status.LastBuild, err = o.Store.GetBuild(target.Name); err != nil {
			o.Logger.Warn("failed to read build record of " + target.Name + ": " + err.Error())
		}
		if status.LastRun, err = o.Store.GetRun(target.Name); err != nil {
			o.Logger.Warn("failed to read run record of " + target.Name + ": " + err.Error())
		}
		statuses = append(statuses, status)
	}

	o.Reporter.OnStatus(statuses)
	return statuses, nil
}

// Targets resolves the requested names into targets. With no names every
// discovered test source is used, in discovery order. Explicit names keep the
// given order; duplicates are dropped.
func (o *Orchestrator) Targets(requested []string) ([]domain.Target, error) {
	if len(requested) == 0 {
		found, err := o.Finder.FindTests(o.cfg)
		if err != nil {
			return nil, err
		}
		requested = found
	}

	seen := make(map[string]struct{}, len(requested))
	targets := make([]domain.Target, 0, len(requested))
	for _, raw := range requested {
		name := domain.NormalizeTargetName(raw, o.cfg.Extension)
		if err := domain.ValidateTargetName(name); err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		targets = append(targets, o.cfg.Target(name))
	}
	return targets, nil
}

// validateSources fails on the first target whose source file does not exist.
func (o *Orchestrator) validateSources(targets []domain.Target) error {
	for _, target := range targets {
		info, err := o.FS.Stat(target.Source)
		if err != nil {
			return err
		}
		if !info.Exists {
			err := zerr.Wrap(domain.ErrSourceNotFound, fmt.Sprintf("%s does not exist in %s", filepath.Base(target.Source), filepath.Dir(target.Source)))
			return zerr.With(err, "target", target.Name)
		}
	}
	return nil
}

func (o *Orchestrator) dependencyTimes() (dependencyTimes, error) {
	var deps dependencyTimes
	var err error

	if dir := o.cfg.Path(o.cfg.LibraryDir); dir != "" {
		if deps.library, err = o.FS.LatestModTime(dir, o.cfg.Extension); err != nil {
			return deps, err
		}
	}
	if dir := o.cfg.Path(o.cfg.UtilityDir); dir != "" {
		if deps.utility, err = o.FS.LatestModTime(dir, o.cfg.Extension); err != nil {
			return deps, err
		}
	}
	for _, input := range o.cfg.ExtraInputs {
		latest, err := o.FS.LatestModTime(o.cfg.Path(input), "")
		if err != nil {
			return deps, err
		}
		if latest.After(deps.inputs) {
			deps.inputs = latest
		}
	}
	return deps, nil
}

func (o *Orchestrator) timestamps(target domain.Target, deps dependencyTimes) (domain.Timestamps, domain.FileInfo, error) {
	src, err := o.FS.Stat(target.Source)
	if err != nil {
		return domain.Timestamps{}, domain.FileInfo{}, err
	}
	bin, err := o.FS.Stat(target.Binary)
	if err != nil {
		return domain.Timestamps{}, domain.FileInfo{}, err
	}
	return domain.Timestamps{
		Source:    src.ModTime,
		Library:   deps.library,
		Utility:   deps.utility,
		Inputs:    deps.inputs,
		Binary:    bin.ModTime,
		HasBinary: bin.Exists,
	}, bin, nil
}

func (o *Orchestrator) build(ctx context.Context, target domain.Target, deps dependencyTimes, force bool) (domain.Result, error) {
	res := domain.Result{Target: target.Name}

	ts, bin, err := o.timestamps(target, deps)
	if err != nil {
		return res, err
	}

	vertex := o.Telemetry.Record("build " + target.Name)

	res.Reason = ts.Staleness(force)
	if !res.Reason.Stale() {
		o.Logger.Debug(target.Name + " is up to date")
		res.Outcome = domain.OutcomeUpToDate
		res.Size = bin.Size
		vertex.Cached()
		vertex.Complete(nil)
		o.Reporter.OnBuildComplete(target, res)
		return res, nil
	}

	o.Reporter.OnBuildStart(target, res.Reason)
	vertex.Log(domain.LogLevelInfo, "rebuilding: "+string(res.Reason))

	if dir := filepath.Dir(target.Binary); dir != o.cfg.BinPath() {
		if err := o.FS.EnsureDir(dir); err != nil {
			vertex.Complete(err)
			return res, err
		}
	}

	argv := o.cfg.CompileCommand(target)
	start := time.Now()
	code, execErr := o.Executor.Execute(ctx,
		domain.Invocation{Argv: argv, Dir: o.cfg.Root},
		io.MultiWriter(o.Reporter.Stdout(), vertex.Stdout()),
		io.MultiWriter(o.Reporter.Stderr(), vertex.Stderr()),
	)
	res.Duration = time.Since(start)
	res.ExitCode = code

	if execErr != nil && ctx.Err() != nil {
		vertex.Complete(execErr)
		return res, zerr.Wrap(ctx.Err(), "build cancelled")
	}

	if execErr != nil || code != 0 {
		res.Outcome = domain.OutcomeBuildFailed
		res.Err = execErr
		failure := zerr.With(zerr.With(zerr.Wrap(domain.ErrBuildFailed, "compiler failed"), "target", target.Name), "exit_code", code)
		vertex.Complete(failure)
		o.Reporter.OnBuildComplete(target, res)
		return res, failure
	}

	res.Outcome = domain.OutcomeBuilt
	if info, err := o.FS.Stat(target.Binary); err == nil && info.Exists {
		res.Size = info.Size
		o.recordBuild(target, res, argv)
	} else {
		o.Logger.Warn("compiler succeeded but produced no binary for " + target.Name)
	}

	vertex.Complete(nil)
	o.Reporter.OnBuildComplete(target, res)
	return res, nil
}

func (o *Orchestrator) run(ctx context.Context, target domain.Target) (domain.Result, error) {
	res := domain.Result{Target: target.Name}

	o.Reporter.OnRunStart(target)
	vertex := o.Telemetry.Record("run " + target.Name)

	argv := o.cfg.RunCommand(target)
	start := time.Now()
	code, execErr := o.Executor.Execute(ctx,
		domain.Invocation{Argv: argv, Dir: o.cfg.Root, Env: o.cfg.Runner.Env},
		io.MultiWriter(o.Reporter.Stdout(), vertex.Stdout()),
		io.MultiWriter(o.Reporter.Stderr(), vertex.Stderr()),
	)
	res.Duration = time.Since(start)
	res.ExitCode = code

	if execErr != nil && ctx.Err() != nil {
		vertex.Complete(execErr)
		return res, zerr.Wrap(ctx.Err(), "run cancelled")
	}

	if execErr == nil && code == 0 {
		res.Outcome = domain.OutcomePassed
		vertex.Complete(nil)
	} else {
		res.Outcome = domain.OutcomeFailed
		res.Err = execErr
		vertex.Complete(zerr.With(zerr.New("test failed"), "exit_code", code))
	}

	o.Reporter.OnRunComplete(target, res)
	o.recordRun(target, res, argv[1:])
	return res, nil
}

// recordBuild writes the ledger entry of a successful build. Ledger problems are logged, never fatal.
func (o *Orchestrator) recordBuild(target domain.Target, res domain.Result, argv []string) {
	hash, err := o.Hasher.ComputeFileHash(target.Binary)
	if err != nil {
		o.Logger.Warn("failed to hash binary of " + target.Name + ": " + err.Error())
		return
	}
	err = o.Store.PutBuild(domain.BuildInfo{
		Target:     target.Name,
		BinaryHash: fmt.Sprintf("%016x", hash),
		Size:       res.Size,
		Command:    argv,
		BuiltAt:    time.Now(),
		Duration:   res.Duration,
	})
	if err != nil {
		o.Logger.Warn("failed to record build of " + target.Name + ": " + err.Error())
	}
}

func (o *Orchestrator) recordRun(target domain.Target, res domain.Result, args []string) {
	err := o.Store.PutRun(domain.RunInfo{
		Target:   target.Name,
		Passed:   res.Outcome == domain.OutcomePassed,
		ExitCode: res.ExitCode,
		Args:     args,
		RanAt:    time.Now(),
		Duration: res.Duration,
	})
	if err != nil {
		o.Logger.Warn("failed to record run of " + target.Name + ": " + err.Error())
	}
}

func names(targets []domain.Target) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.Name
	}
	return out
}
