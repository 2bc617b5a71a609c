package keys

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/core/ports"
)

// NodeID is the unique identifier for the key factory Graft node.
const NodeID graft.ID = "engine.keys"

func init() {
	graft.Register(graft.Node[ports.KeyFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.KeyFactory, error) {
			return New(), nil
		},
	})
}
