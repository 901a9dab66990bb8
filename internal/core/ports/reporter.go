package ports

import (
	"io"

	"go.trai.ch/rig/internal/core/domain"
)

// Reporter presents the progress of a run on the console.
// Calls arrive in phase order: plan, builds, runs, summary.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnPlan is called once the target list is known, before anything is built.
	OnPlan(targets []domain.Target, opts domain.RunOptions)

	// OnBuildStart is called before the compiler is invoked for a stale target.
	OnBuildStart(target domain.Target, reason domain.StaleReason)

	// OnBuildComplete is called after every build decision, including skipped
	// (up-to-date) and failed builds.
	OnBuildComplete(target domain.Target, res domain.Result)

	// OnRunStart is called before a test binary is executed.
	OnRunStart(target domain.Target)

	// OnRunComplete is called after a test binary exited.
	OnRunComplete(target domain.Target, res domain.Result)

	// OnSummary is called once at the end of a run that was not aborted.
	OnSummary(summary domain.Summary)

	// OnStatus prints the status table of the given targets.
	OnStatus(statuses []domain.TargetStatus)

	// OnSteps prints the steps replayed from the journal of the last run.
	OnSteps(steps []domain.Step)

	// Stdout and Stderr receive the raw output of the compiler and test binaries.
	Stdout() io.Writer
	Stderr() io.Writer
}
