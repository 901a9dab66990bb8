package domain

import "go.trai.ch/zerr"

var (
	// ErrUsage is returned when the command line cannot be parsed or help was requested.
	// The usage text has already been printed when this error surfaces.
	ErrUsage = zerr.New("invalid usage")

	// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidTargetName is returned when a target name cannot map to a source file.
	ErrInvalidTargetName = zerr.New("invalid target name")

	// ErrSourceNotFound is returned when a requested target has no source file.
	ErrSourceNotFound = zerr.New("test source does not exist")

	// ErrBuildFailed is returned when the compiler rejects a target. It aborts the whole run.
	ErrBuildFailed = zerr.New("build failed")

	// ErrNoJournal is returned when no run has been journaled in the test tree yet.
	ErrNoJournal = zerr.New("no run journal")

	// ErrTestsFailed is returned at the end of a run when one or more test binaries exited nonzero.
	ErrTestsFailed = zerr.New("tests failed")
)
