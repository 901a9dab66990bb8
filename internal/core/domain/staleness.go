package domain

import "time"

// StaleReason explains why a target binary has to be rebuilt.
// The zero value means the binary is up to date.
type StaleReason string

const (
	// ReasonFresh indicates the binary is newer than every dependency.
	ReasonFresh StaleReason = ""
	// ReasonForced indicates a rebuild was requested regardless of timestamps.
	ReasonForced StaleReason = "forced"
	// ReasonMissingBinary indicates no binary has been built yet.
	ReasonMissingBinary StaleReason = "binary missing"
	// ReasonSourceChanged indicates the target's own source is newer than the binary.
	ReasonSourceChanged StaleReason = "source changed"
	// ReasonLibraryChanged indicates a file in the library tree is newer than the binary.
	ReasonLibraryChanged StaleReason = "library changed"
	// ReasonUtilityChanged indicates a file in the utility tree is newer than the binary.
	ReasonUtilityChanged StaleReason = "utility changed"
	// ReasonInputsChanged indicates one of the extra configured inputs is newer than the binary.
	ReasonInputsChanged StaleReason = "inputs changed"
)

// Stale reports whether the reason requires a rebuild.
func (r StaleReason) Stale() bool {
	return r != ReasonFresh
}

// Timestamps holds every modification time a staleness decision depends on.
// Zero times mean "absent" and never make a binary stale on their own.
type Timestamps struct {
	Source  time.Time
	Library time.Time
	Utility time.Time
	Inputs  time.Time

	Binary    time.Time
	HasBinary bool
}

// Staleness decides whether the binary must be rebuilt and why.
// Checks are ordered so the most specific cause is reported first.
func (ts Timestamps) Staleness(force bool) StaleReason {
	switch {
	case force:
		return ReasonForced
	case !ts.HasBinary:
		return ReasonMissingBinary
	case ts.Source.After(ts.Binary):
		return ReasonSourceChanged
	case ts.Library.After(ts.Binary):
		return ReasonLibraryChanged
	case ts.Utility.After(ts.Binary):
		return ReasonUtilityChanged
	case ts.Inputs.After(ts.Binary):
		return ReasonInputsChanged
	default:
		return ReasonFresh
	}
}

// FileInfo is the subset of file metadata the orchestrator relies on.
type FileInfo struct {
	Exists  bool
	ModTime time.Time
	Size    int64
}
