// Package console implements the colored terminal reporter.
package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter. Progress goes to stdout alongside the
// output of the compiler and test binaries.
type Reporter struct {
	stdout io.Writer
	stderr io.Writer
	styles styles
	now    func() time.Time

	runStarted bool
}

// New creates a Reporter on the process streams, detecting color support on stdout.
func New() *Reporter {
	return NewWithProfile(os.Stdout, os.Stderr, ColorProfile(os.Stdout))
}

// NewWithProfile creates a Reporter writing to the given streams with a fixed color profile.
func NewWithProfile(stdout, stderr io.Writer, profile termenv.Profile) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	renderer := lipgloss.NewRenderer(stdout, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return &Reporter{
		stdout: stdout,
		stderr: stderr,
		styles: newStyles(renderer),
		now:    time.Now,
	}
}

// SetClock replaces the clock used for relative times in the status table.
func (r *Reporter) SetClock(now func() time.Time) {
	r.now = now
}

// Stdout returns the stream receiving compiler and test output.
func (r *Reporter) Stdout() io.Writer { return r.stdout }

// Stderr returns the stream receiving compiler and test diagnostics.
func (r *Reporter) Stderr() io.Writer { return r.stderr }

// OnPlan announces an empty plan; a non-empty one is reported step by step.
func (r *Reporter) OnPlan(targets []domain.Target, _ domain.RunOptions) {
	r.runStarted = false
	if len(targets) == 0 {
		r.line(r.styles.faint, "No tests found.")
	}
}

// OnBuildStart prints the build banner with the reason for the rebuild.
func (r *Reporter) OnBuildStart(target domain.Target, reason domain.StaleReason) {
	r.line(r.styles.heading, fmt.Sprintf("Building %s... (%s)", target.Name, reason))
}

// OnBuildComplete prints the outcome of a build decision.
func (r *Reporter) OnBuildComplete(target domain.Target, res domain.Result) {
	switch res.Outcome {
	case domain.OutcomeBuilt:
		r.line(r.styles.faint, fmt.Sprintf("  %s built in %s, %s",
			Check, formatDuration(res.Duration), humanize.Bytes(uint64(max(res.Size, 0)))))
	case domain.OutcomeUpToDate:
		r.line(r.styles.faint, target.Name+" is up to date")
	case domain.OutcomeBuildFailed:
		r.line(r.styles.failure, "Build failed.")
		if res.Err != nil {
			r.line(r.styles.failure, "  "+res.Err.Error())
		}
	}
}

// OnRunStart prints the framed run banner.
func (r *Reporter) OnRunStart(target domain.Target) {
	if !r.runStarted {
		r.runStarted = true
		r.blank()
	}
	r.line(r.styles.banner, Separator)
	r.line(r.styles.banner, fmt.Sprintf("Running %s...", target.Name))
}

// OnRunComplete prints the verdict of a test binary and closes its frame.
func (r *Reporter) OnRunComplete(target domain.Target, res domain.Result) {
	style := r.styles.success
	verdict := target.Name + " passed"
	if res.Outcome != domain.OutcomePassed {
		style = r.styles.failure
		verdict = fmt.Sprintf("%s failed (exit code %d)", target.Name, res.ExitCode)
		if res.Err != nil {
			verdict = fmt.Sprintf("%s failed: %v", target.Name, res.Err)
		}
	}
	r.line(style, verdict)
	r.line(style, Separator)
	r.blank()
}

// OnSummary prints the aggregate result of the run.
func (r *Reporter) OnSummary(summary domain.Summary) {
	total := len(summary.Targets)
	if total == 0 {
		return
	}

	if summary.BuildOnly {
		r.line(r.styles.success, fmt.Sprintf("Built %d of %d %s, %d up to date.",
			summary.Built(), total, plural(total, "test"), len(summary.Builds)-summary.Built()))
		return
	}

	if summary.OK() {
		r.line(r.styles.success, fmt.Sprintf("%s All %d %s passed!", Check, total, plural(total, "test")))
		return
	}

	failed := summary.Failed()
	r.line(r.styles.failure, fmt.Sprintf("%s %d of %d %s failed:", Cross, len(failed), len(summary.Runs), plural(len(summary.Runs), "test")))
	for _, res := range failed {
		r.line(r.styles.failure, "  - "+res.Target)
	}
}

// OnStatus prints one row per target: staleness, last build and last run.
func (r *Reporter) OnStatus(statuses []domain.TargetStatus) {
	if len(statuses) == 0 {
		r.line(r.styles.faint, "No tests found.")
		return
	}

	header := []string{"TARGET", "STATE", "LAST BUILD", "LAST RUN"}
	rows := make([][]string, 0, len(statuses))
	for _, st := range statuses {
		rows = append(rows, []string{st.Target.Name, r.stateCell(st), r.buildCell(st.LastBuild), r.runCell(st.LastRun)})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	r.line(r.styles.heading, formatRow(header, widths))
	for i, row := range rows {
		style := r.styles.success
		if statuses[i].Reason.Stale() {
			style = r.styles.stale
		}
		r.line(style, formatRow(row, widths))
	}
}

// OnSteps replays the journaled steps of the last run, each verdict followed by its output.
func (r *Reporter) OnSteps(steps []domain.Step) {
	if len(steps) == 0 {
		r.line(r.styles.faint, "No steps recorded.")
		return
	}

	for _, step := range steps {
		style, verdict := r.stepVerdict(step)
		r.line(style, verdict)
		if len(step.Output) == 0 {
			continue
		}
		_, _ = r.stdout.Write(step.Output)
		if !bytes.HasSuffix(step.Output, []byte("\n")) {
			r.blank()
		}
	}
}

func (r *Reporter) stepVerdict(step domain.Step) (lipgloss.Style, string) {
	switch {
	case step.Cached:
		return r.styles.faint, "- " + step.Name + " (up to date)"
	case step.Canceled:
		return r.styles.failure, Cross + " " + step.Name + " (cancelled)"
	case step.Completed.IsZero():
		return r.styles.stale, "? " + step.Name + " (did not finish)"
	case step.Error != "":
		return r.styles.failure, fmt.Sprintf("%s %s (%s): %s", Cross, step.Name, formatDuration(step.Duration()), step.Error)
	default:
		return r.styles.success, fmt.Sprintf("%s %s (%s)", Check, step.Name, formatDuration(step.Duration()))
	}
}

func (r *Reporter) stateCell(st domain.TargetStatus) string {
	if st.Reason.Stale() {
		return "stale: " + string(st.Reason)
	}
	return "up to date"
}

func (r *Reporter) buildCell(info *domain.BuildInfo) string {
	if info == nil {
		return "never"
	}
	return fmt.Sprintf("%s, %s", humanize.Bytes(uint64(max(info.Size, 0))), humanize.RelTime(info.BuiltAt, r.now(), "ago", "from now"))
}

func (r *Reporter) runCell(info *domain.RunInfo) string {
	if info == nil {
		return "never"
	}
	when := humanize.RelTime(info.RanAt, r.now(), "ago", "from now")
	if info.Passed {
		return "passed " + when
	}
	return fmt.Sprintf("failed (exit code %d) %s", info.ExitCode, when)
}

// formatRow pads every cell but the last to its column width.
func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
	}
	return b.String()
}

func (r *Reporter) line(style lipgloss.Style, text string) {
	_, _ = fmt.Fprintln(r.stdout, style.Render(text))
}

func (r *Reporter) blank() {
	_, _ = fmt.Fprintln(r.stdout)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
