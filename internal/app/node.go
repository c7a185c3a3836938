package app

import (
	"context"

	"github.com/concord-tools/concord/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/concord-tools/concord/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/concord-tools/concord/internal/core/ports"
	"github.com/concord-tools/concord/internal/engine/checker"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			checker.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.WorkspaceLoader](ctx)
			if err != nil {
				return nil, err
			}

			chk, err := graft.Dep[*checker.Checker](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, chk, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			checker.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.WorkspaceLoader](ctx)
	if err != nil {
		return nil, err
	}

	chk, err := graft.Dep[*checker.Checker](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     application,
		Logger:  log,
		Loader:  loader,
		Checker: chk,
	}, nil
}
