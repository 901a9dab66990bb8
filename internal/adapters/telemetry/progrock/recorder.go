// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/rig/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex, one per build or run step.
// Step names are unique within a run, so the name digest identifies the vertex.
func (r *Recorder) Record(name string) ports.Vertex {
	v := r.rec.Vertex(digest.FromString(name), name)
	return &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}
