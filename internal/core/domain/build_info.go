package domain

import "time"

// BuildInfo represents the last successful build of a target.
type BuildInfo struct {
	Target     string        `json:"target,omitzero"`
	BinaryHash string        `json:"binary_hash,omitzero"`
	Size       int64         `json:"size,omitzero"`
	Command    []string      `json:"command,omitempty"`
	BuiltAt    time.Time     `json:"built_at,omitzero"`
	Duration   time.Duration `json:"duration,omitzero"`
}

// RunInfo represents the last execution of a target's test binary.
type RunInfo struct {
	Target   string        `json:"target,omitzero"`
	Passed   bool          `json:"passed"`
	ExitCode int           `json:"exit_code"`
	Args     []string      `json:"args,omitempty"`
	RanAt    time.Time     `json:"ran_at,omitzero"`
	Duration time.Duration `json:"duration,omitzero"`
}

// TargetStatus combines the current staleness of a target with its recorded history.
type TargetStatus struct {
	Target    Target
	Reason    StaleReason
	LastBuild *BuildInfo
	LastRun   *RunInfo
}
