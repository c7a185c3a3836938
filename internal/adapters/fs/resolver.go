// Package fs implements lexical path resolution for the checker.
package fs

import (
	"path/filepath"
	"strings"
)

// Resolver implements ports.Paths with pure lexical operations.
//
// Targets are compared textually by the ledger, so everything funnels through
// filepath.Clean to give each path a single canonical spelling. Symlinks are
// deliberately not resolved: the checker verifies what manifests say, not
// what the filesystem aliases them to.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Absolute resolves path relative to base into a cleaned absolute path.
// base must already be absolute; absolute paths are cleaned and returned
// unchanged otherwise.
func (r *Resolver) Absolute(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// Contains reports whether path lies within root (or equals it).
// Both paths are cleaned before comparison; the check respects path
// component boundaries, so /ws/app does not contain /ws/app-extras.
func (r *Resolver) Contains(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
