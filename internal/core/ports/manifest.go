package ports

import "github.com/concord-tools/concord/internal/core/domain"

// ManifestSource supplies the manifests of a single package directory: the
// raw text of its resolution manifest and the parsed key/value tree of its
// canonical manifest. Either may be absent.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestSource interface {
	// Load reads the manifests present in dir. Absent manifests leave the
	// corresponding field nil; a directory with neither manifest yields a
	// DirManifests with both fields nil, not an error.
	Load(dir string) (*domain.DirManifests, error)
}
