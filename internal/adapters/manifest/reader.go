// Package manifest implements the manifest source for package directories.
package manifest

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/concord-tools/concord/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Reader implements ports.ManifestSource over a FileSystem.
//
// It reads a directory's resolution manifest as raw text and its canonical
// manifest as a parsed key/value tree. Interpretation of either document is
// left to the checker; the reader only handles I/O and YAML decoding.
type Reader struct {
	fs FileSystem
}

// NewReader creates a Reader backed by the operating system filesystem.
func NewReader() *Reader {
	return &Reader{fs: NewOSFS()}
}

// NewReaderWithFS creates a Reader backed by the given filesystem.
func NewReaderWithFS(fsys FileSystem) *Reader {
	return &Reader{fs: fsys}
}

// Load reads the manifests present in dir. A directory without manifests
// yields a DirManifests with both fields nil.
func (r *Reader) Load(dir string) (*domain.DirManifests, error) {
	out := &domain.DirManifests{Dir: dir}

	resPath := filepath.Join(dir, domain.ResolutionManifestName)
	data, err := r.fs.ReadFile(resPath)
	switch {
	case err == nil:
		out.Resolution = &domain.ResolutionManifest{
			Path: resPath,
			Text: string(data),
		}
	case !errors.Is(err, fs.ErrNotExist):
		wrapped := zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
		return nil, zerr.With(wrapped, "path", resPath)
	}

	canPath := filepath.Join(dir, domain.CanonicalManifestName)
	data, err = r.fs.ReadFile(canPath)
	switch {
	case err == nil:
		var doc map[string]any
		if parseErr := yaml.Unmarshal(data, &doc); parseErr != nil {
			wrapped := zerr.Wrap(parseErr, domain.ErrManifestParseFailed.Error())
			return nil, zerr.With(wrapped, "path", canPath)
		}
		out.Canonical = &domain.CanonicalManifest{
			Path: canPath,
			Raw:  data,
			Doc:  doc,
		}
	case !errors.Is(err, fs.ErrNotExist):
		wrapped := zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
		return nil, zerr.With(wrapped, "path", canPath)
	}

	return out, nil
}
