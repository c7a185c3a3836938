package manifest

import (
	"context"

	"github.com/concord-tools/concord/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the manifest source Graft node.
const NodeID graft.ID = "adapter.manifest_source"

func init() {
	graft.Register(graft.Node[ports.ManifestSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestSource, error) {
			return NewReader(), nil
		},
	})
}
