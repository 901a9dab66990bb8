package progrock

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vito/progrock"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Journal = (*Journal)(nil)

// Journal records runs as progrock status updates, one JSON object per line.
type Journal struct{}

// NewJournal creates a new Journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Open truncates the journal at path and records the run into it.
func (j *Journal) Open(path string) (ports.Telemetry, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create journal directory"), "path", path)
	}
	w, err := progrock.CreateJournal(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create journal"), "path", path)
	}
	return NewRecorder(w), nil
}

// Replay folds the status updates at path into one step per vertex.
// A journal cut short by an interrupted run yields the steps recorded so far.
func (j *Journal) Replay(path string) ([]domain.Step, error) {
	f, err := os.Open(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoJournal, "no run has been recorded"), "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open journal"), "path", path)
	}
	defer func() { _ = f.Close() }()

	var (
		order []string
		steps = map[string]*domain.Step{}
	)
	dec := json.NewDecoder(f)
	for {
		var update progrock.StatusUpdate
		if err := dec.Decode(&update); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to decode journal"), "path", path)
		}

		for _, v := range update.GetVertexes() {
			step, ok := steps[v.GetId()]
			if !ok {
				step = &domain.Step{}
				steps[v.GetId()] = step
				order = append(order, v.GetId())
			}
			applyVertex(step, v)
		}
		for _, l := range update.GetLogs() {
			if step, ok := steps[l.GetVertex()]; ok {
				step.Output = append(step.Output, l.GetData()...)
			}
		}
	}

	out := make([]domain.Step, 0, len(order))
	for _, id := range order {
		out = append(out, *steps[id])
	}
	return out, nil
}

func applyVertex(step *domain.Step, v *progrock.Vertex) {
	step.Name = v.GetName()
	if v.Started != nil {
		step.Started = v.GetStarted().AsTime()
	}
	if v.Completed != nil {
		step.Completed = v.GetCompleted().AsTime()
	}
	step.Cached = v.GetCached()
	step.Canceled = v.GetCanceled()
	step.Error = v.GetError()
}
