package fs

import (
	"context"

	"github.com/concord-tools/concord/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the path resolver Graft node.
const NodeID graft.ID = "adapter.paths"

func init() {
	graft.Register(graft.Node[ports.Paths]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Paths, error) {
			return NewResolver(), nil
		},
	})
}
