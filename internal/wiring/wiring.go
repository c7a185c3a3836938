// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/concord-tools/concord/internal/adapters/config"
	_ "github.com/concord-tools/concord/internal/adapters/fs"
	_ "github.com/concord-tools/concord/internal/adapters/logger"
	_ "github.com/concord-tools/concord/internal/adapters/manifest"
	// Register app and engine nodes.
	_ "github.com/concord-tools/concord/internal/app"
	_ "github.com/concord-tools/concord/internal/engine/checker"
)
