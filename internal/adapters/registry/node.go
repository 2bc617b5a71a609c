package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weft/internal/core/ports"
)

const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.TypeResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TypeResolver, error) {
			return New(), nil
		},
	})
}
