package config

import (
	"context"

	"github.com/concord-tools/concord/internal/adapters/logger"
	"github.com/concord-tools/concord/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the workspace loader Graft node.
const NodeID graft.ID = "adapter.workspace_loader"

func init() {
	graft.Register(graft.Node[ports.WorkspaceLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.WorkspaceLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
