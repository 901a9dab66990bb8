package ports

import (
	"io"

	"go.trai.ch/rig/internal/core/domain"
)

// Telemetry records the units of work of a run (one vertex per build or test execution).
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(name string) Vertex
	// Close flushes and closes the recording session.
	Close() error
}

// Journal persists the telemetry of a run so that a later invocation can replay it.
type Journal interface {
	// Open starts a recording session at path, replacing the previous one.
	Open(path string) (Telemetry, error)
	// Replay returns the steps recorded at path in the order they started.
	// It returns domain.ErrNoJournal if nothing was recorded there.
	Replay(path string) ([]domain.Step, error)
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout and Stderr capture the output streams of the work.
	Stdout() io.Writer
	Stderr() io.Writer
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as skipped because its result was already up to date.
	Cached()
}
