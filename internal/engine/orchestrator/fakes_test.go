package orchestrator_test

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
)

// recordingReporter turns reporter callbacks into comparable event strings.
type recordingReporter struct {
	events *[]string
}

func (r *recordingReporter) add(format string, args ...any) {
	*r.events = append(*r.events, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) OnPlan(targets []domain.Target, _ domain.RunOptions) {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	r.add("plan %s", strings.Join(names, ","))
}

func (r *recordingReporter) OnBuildStart(t domain.Target, reason domain.StaleReason) {
	r.add("build-start %s (%s)", t.Name, reason)
}

func (r *recordingReporter) OnBuildComplete(t domain.Target, res domain.Result) {
	r.add("build-complete %s %s", t.Name, res.Outcome)
}

func (r *recordingReporter) OnRunStart(t domain.Target) {
	r.add("run-start %s", t.Name)
}

func (r *recordingReporter) OnRunComplete(t domain.Target, res domain.Result) {
	r.add("run-complete %s %s", t.Name, res.Outcome)
}

func (r *recordingReporter) OnSummary(s domain.Summary) {
	r.add("summary %d/%d", s.Failures(), len(s.Runs))
}

func (r *recordingReporter) OnStatus(statuses []domain.TargetStatus) {
	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = st.Target.Name
	}
	r.add("status %s", strings.Join(names, ","))
}

func (r *recordingReporter) OnSteps(steps []domain.Step) {
	r.add("steps %d", len(steps))
}

func (r *recordingReporter) Stdout() io.Writer { return io.Discard }
func (r *recordingReporter) Stderr() io.Writer { return io.Discard }

type fakeHasher struct{}

func (fakeHasher) ComputeFileHash(string) (uint64, error) { return 42, nil }

type nopTelemetry struct{}

func (nopTelemetry) Record(string) ports.Vertex { return nopVertex{} }
func (nopTelemetry) Close() error               { return nil }

type nopVertex struct{}

func (nopVertex) Stdout() io.Writer           { return io.Discard }
func (nopVertex) Stderr() io.Writer           { return io.Discard }
func (nopVertex) Log(domain.LogLevel, string) {}
func (nopVertex) Complete(error)              {}
func (nopVertex) Cached()                     {}
