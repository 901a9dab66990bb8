package console_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/rig/internal/adapters/console"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestReporter renders without escape codes so output can be compared byte for byte.
func newTestReporter(t *testing.T) (*console.Reporter, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return console.NewWithProfile(buf, buf, termenv.Ascii), buf
}

func targets(names ...string) []domain.Target {
	out := make([]domain.Target, 0, len(names))
	for _, name := range names {
		out = append(out, domain.Target{Name: name, Source: name + ".odin", Binary: "bin/" + name})
	}
	return out
}

func TestReporter_Run(t *testing.T) {
	tests := []struct {
		name       string
		goldenName string
		play       func(r *console.Reporter)
	}{
		{
			name:       "mixed results",
			goldenName: "run_mixed",
			play: func(r *console.Reporter) {
				ts := targets("a", "b")
				r.OnPlan(ts, domain.RunOptions{})
				r.OnBuildStart(ts[0], domain.ReasonMissingBinary)
				r.OnBuildComplete(ts[0], domain.Result{Target: "a", Outcome: domain.OutcomeBuilt, Duration: 1500 * time.Millisecond, Size: 2048})
				r.OnBuildComplete(ts[1], domain.Result{Target: "b", Outcome: domain.OutcomeUpToDate})
				r.OnRunStart(ts[0])
				r.OnRunComplete(ts[0], domain.Result{Target: "a", Outcome: domain.OutcomePassed})
				r.OnRunStart(ts[1])
				r.OnRunComplete(ts[1], domain.Result{Target: "b", Outcome: domain.OutcomeFailed, ExitCode: 3})
				r.OnSummary(domain.Summary{
					Targets: []string{"a", "b"},
					Runs: []domain.Result{
						{Target: "a", Outcome: domain.OutcomePassed},
						{Target: "b", Outcome: domain.OutcomeFailed, ExitCode: 3},
					},
				})
			},
		},
		{
			name:       "all passed",
			goldenName: "run_passed",
			play: func(r *console.Reporter) {
				ts := targets("a", "b")
				r.OnPlan(ts, domain.RunOptions{})
				for _, tg := range ts {
					r.OnBuildComplete(tg, domain.Result{Target: tg.Name, Outcome: domain.OutcomeUpToDate})
				}
				for _, tg := range ts {
					r.OnRunStart(tg)
					r.OnRunComplete(tg, domain.Result{Target: tg.Name, Outcome: domain.OutcomePassed})
				}
				r.OnSummary(domain.Summary{
					Targets: []string{"a", "b"},
					Runs: []domain.Result{
						{Target: "a", Outcome: domain.OutcomePassed},
						{Target: "b", Outcome: domain.OutcomePassed},
					},
				})
			},
		},
		{
			name:       "build failure",
			goldenName: "build_failed",
			play: func(r *console.Reporter) {
				ts := targets("a")
				r.OnPlan(ts, domain.RunOptions{Force: true})
				r.OnBuildStart(ts[0], domain.ReasonForced)
				r.OnBuildComplete(ts[0], domain.Result{Target: "a", Outcome: domain.OutcomeBuildFailed, ExitCode: 1})
			},
		},
		{
			name:       "build only",
			goldenName: "build_only",
			play: func(r *console.Reporter) {
				ts := targets("a", "b")
				r.OnPlan(ts, domain.RunOptions{BuildOnly: true})
				r.OnBuildStart(ts[0], domain.ReasonSourceChanged)
				r.OnBuildComplete(ts[0], domain.Result{Target: "a", Outcome: domain.OutcomeBuilt, Duration: 250 * time.Millisecond})
				r.OnBuildComplete(ts[1], domain.Result{Target: "b", Outcome: domain.OutcomeUpToDate})
				r.OnSummary(domain.Summary{
					Targets:   []string{"a", "b"},
					BuildOnly: true,
					Builds: []domain.Result{
						{Target: "a", Outcome: domain.OutcomeBuilt},
						{Target: "b", Outcome: domain.OutcomeUpToDate},
					},
				})
			},
		},
		{
			name:       "no tests",
			goldenName: "run_empty",
			play: func(r *console.Reporter) {
				r.OnPlan(nil, domain.RunOptions{})
				r.OnSummary(domain.Summary{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newTestReporter(t)
			tt.play(r)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestReporter_OnStatus(t *testing.T) {
	now := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	r, buf := newTestReporter(t)
	r.SetClock(func() time.Time { return now })

	r.OnStatus([]domain.TargetStatus{
		{
			Target:    domain.Target{Name: "a"},
			LastBuild: &domain.BuildInfo{Target: "a", Size: 2048, BuiltAt: now.Add(-2 * time.Hour)},
			LastRun:   &domain.RunInfo{Target: "a", Passed: true, RanAt: now.Add(-time.Hour)},
		},
		{
			Target:  domain.Target{Name: "core/strings"},
			Reason:  domain.ReasonSourceChanged,
			LastRun: &domain.RunInfo{Target: "core/strings", ExitCode: 1, RanAt: now.Add(-72 * time.Hour)},
		},
	})

	g := goldie.New(t)
	g.Assert(t, "status", buf.Bytes())
}

func TestReporter_OnSteps(t *testing.T) {
	start := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	r, buf := newTestReporter(t)

	r.OnSteps([]domain.Step{
		{Name: "build a", Started: start, Completed: start.Add(1500 * time.Millisecond), Output: []byte("compiling a\n")},
		{Name: "build b", Started: start, Completed: start, Cached: true},
		{Name: "run a", Started: start, Completed: start.Add(250 * time.Millisecond), Output: []byte("ok\n")},
		{Name: "run b", Started: start, Completed: start.Add(2 * time.Second), Error: "test failed", Output: []byte("assertion failed")},
		{Name: "run c", Started: start, Completed: start.Add(time.Second), Canceled: true},
		{Name: "run my test", Started: start},
	})

	g := goldie.New(t)
	g.Assert(t, "log", buf.Bytes())
}

func TestReporter_OnStepsEmpty(t *testing.T) {
	r, buf := newTestReporter(t)

	r.OnSteps(nil)

	assert.Equal(t, "No steps recorded.\n", buf.String())
}

func TestReporter_LaunchErrors(t *testing.T) {
	r, buf := newTestReporter(t)
	ts := targets("a")

	r.OnBuildComplete(ts[0], domain.Result{Target: "a", Outcome: domain.OutcomeBuildFailed, ExitCode: -1, Err: zerr.New("odin: not found")})
	r.OnRunComplete(ts[0], domain.Result{Target: "a", Outcome: domain.OutcomeFailed, ExitCode: -1, Err: zerr.New("permission denied")})

	assert.Contains(t, buf.String(), "Build failed.")
	assert.Contains(t, buf.String(), "odin: not found")
	assert.Contains(t, buf.String(), "a failed: permission denied")
}

func TestReporter_Streams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := console.NewWithProfile(&stdout, &stderr, termenv.Ascii)

	assert.Same(t, &stdout, r.Stdout())
	assert.Same(t, &stderr, r.Stderr())
}

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, console.ColorProfile(&bytes.Buffer{}))
}

func TestColorProfile_NotATerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.Ascii, console.ColorProfile(&bytes.Buffer{}))
}
