package ledger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the ledger opener Graft node.
const NodeID graft.ID = "adapter.ledger"

func init() {
	graft.Register(graft.Node[ports.StoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
