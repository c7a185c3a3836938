package ports

// Paths normalizes and joins filesystem paths and tests path containment.
// It is purely lexical: no filesystem access, no symlink resolution.
//
//go:generate mockgen -source=paths.go -destination=mocks/mock_paths.go -package=mocks
type Paths interface {
	// Absolute resolves path relative to base into a cleaned absolute path.
	// Absolute paths are cleaned and returned as-is.
	Absolute(base, path string) string

	// Contains reports whether path lies within root (or equals it).
	Contains(root, path string) bool
}
