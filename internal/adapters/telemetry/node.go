package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/telemetry/progrock"
	"go.trai.ch/rig/internal/core/ports"
)

// DisableEnv turns step recording off when set to a non-empty value.
const DisableEnv = "RIG_NO_TELEMETRY"

// NodeID is the unique identifier for the Telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Journal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Journal, error) {
			return New(os.Getenv(DisableEnv) != ""), nil
		},
	})
}

// New returns the progrock journal, or one that records nothing when disabled.
func New(disabled bool) ports.Journal {
	journal := progrock.NewJournal()
	if disabled {
		return Disabled{Journal: journal}
	}
	return journal
}

// Disabled records nothing but still replays journals written by earlier runs.
type Disabled struct {
	ports.Journal
}

// Open returns a no-op telemetry and leaves the journal at path untouched.
func (Disabled) Open(_ string) (ports.Telemetry, error) {
	return NewNoOp(), nil
}
