package domain

import "time"

// Outcome is the result of one phase for one target.
type Outcome string

const (
	// OutcomeBuilt indicates the compiler produced a fresh binary.
	OutcomeBuilt Outcome = "built"
	// OutcomeUpToDate indicates the build was skipped because the binary was fresh.
	OutcomeUpToDate Outcome = "up-to-date"
	// OutcomeBuildFailed indicates the compiler failed. It is terminal for the whole run.
	OutcomeBuildFailed Outcome = "build-failed"
	// OutcomePassed indicates the test binary exited with code zero.
	OutcomePassed Outcome = "passed"
	// OutcomeFailed indicates the test binary exited nonzero or could not be started.
	OutcomeFailed Outcome = "failed"
)

// Result records what happened to a target in a single phase.
type Result struct {
	Target   string
	Outcome  Outcome
	Reason   StaleReason
	ExitCode int
	Duration time.Duration
	// Size is the binary size after a successful build.
	Size int64
	// Err holds launch errors; a plain nonzero exit leaves it nil.
	Err error
}

// RunOptions are the per-invocation choices parsed from the command line.
type RunOptions struct {
	Targets   []string
	Force     bool
	BuildOnly bool
}

// Summary aggregates the results of a run in target order.
type Summary struct {
	Targets   []string
	Builds    []Result
	Runs      []Result
	BuildOnly bool
}

// Built returns the number of targets that were compiled.
func (s Summary) Built() int {
	n := 0
	for _, r := range s.Builds {
		if r.Outcome == OutcomeBuilt {
			n++
		}
	}
	return n
}

// Failed returns the run results whose binary exited nonzero.
func (s Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Runs {
		if r.Outcome == OutcomeFailed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Failures returns the number of failed test binaries.
func (s Summary) Failures() int {
	return len(s.Failed())
}

// OK reports overall success.
func (s Summary) OK() bool {
	return s.Failures() == 0
}
