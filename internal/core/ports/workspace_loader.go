package ports

import "github.com/concord-tools/concord/internal/core/domain"

// WorkspaceLoader discovers the workspace configuration and enumerates the
// package directories to scan.
//
//go:generate mockgen -source=workspace_loader.go -destination=mocks/mock_workspace_loader.go -package=mocks
type WorkspaceLoader interface {
	// Load walks up from cwd to find concord.yaml and returns the resolved
	// workspace: absolute root, primary root, vendor allow-list, and the
	// package directories in stable lexicographic order.
	Load(cwd string) (*domain.Workspace, error)
}
