package checker

import (
	"context"

	"github.com/concord-tools/concord/internal/adapters/fs"
	"github.com/concord-tools/concord/internal/adapters/manifest"
	"github.com/concord-tools/concord/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the checker Graft node.
const NodeID graft.ID = "engine.checker"

func init() {
	graft.Register(graft.Node[*Checker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			manifest.NodeID,
		},
		Run: func(ctx context.Context) (*Checker, error) {
			paths, err := graft.Dep[ports.Paths](ctx)
			if err != nil {
				return nil, err
			}

			manifests, err := graft.Dep[ports.ManifestSource](ctx)
			if err != nil {
				return nil, err
			}

			return New(paths, manifests), nil
		},
	})
}
