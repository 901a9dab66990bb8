package app

import (
	"io"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
)

var (
	_ ports.BuildInfoStore = discardStore{}
	_ ports.Telemetry      = discardTelemetry{}
)

// discardStore stands in for a ledger that could not be opened.
// Nothing is remembered, so every target looks unrecorded.
type discardStore struct{}

func (discardStore) GetBuild(string) (*domain.BuildInfo, error) { return nil, nil }
func (discardStore) PutBuild(domain.BuildInfo) error            { return nil }
func (discardStore) GetRun(string) (*domain.RunInfo, error)     { return nil, nil }
func (discardStore) PutRun(domain.RunInfo) error                { return nil }
func (discardStore) Close() error                               { return nil }

// discardTelemetry stands in for a journal that is disabled or could not be opened.
type discardTelemetry struct{}

func (discardTelemetry) Record(string) ports.Vertex { return discardVertex{} }
func (discardTelemetry) Close() error               { return nil }

type discardVertex struct{}

func (discardVertex) Stdout() io.Writer           { return io.Discard }
func (discardVertex) Stderr() io.Writer           { return io.Discard }
func (discardVertex) Log(domain.LogLevel, string) {}
func (discardVertex) Complete(error)              {}
func (discardVertex) Cached()                     {}
