package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/concord-tools/concord/internal/adapters/manifest"
	"github.com/concord-tools/concord/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestReader_Load_BothManifests(t *testing.T) {
	dir := t.TempDir()
	resPath := createFile(t, dir, domain.ResolutionManifestName, "foo:../foo/lib\n")
	canPath := createFile(t, dir, domain.CanonicalManifestName, "name: mypkg\nversion: \"1.0.0\"\n")

	reader := manifest.NewReader()
	dm, err := reader.Load(dir)
	require.NoError(t, err)

	require.NotNil(t, dm.Resolution)
	assert.Equal(t, resPath, dm.Resolution.Path)
	assert.Equal(t, "foo:../foo/lib\n", dm.Resolution.Text)

	require.NotNil(t, dm.Canonical)
	assert.Equal(t, canPath, dm.Canonical.Path)
	assert.Equal(t, "mypkg", dm.Canonical.Doc["name"])
}

func TestReader_Load_MissingManifestsAreNil(t *testing.T) {
	dir := t.TempDir()

	reader := manifest.NewReader()
	dm, err := reader.Load(dir)
	require.NoError(t, err)

	assert.Nil(t, dm.Resolution)
	assert.Nil(t, dm.Canonical)
	assert.Equal(t, dir, dm.Dir)
}

func TestReader_Load_NonStringNameIsPreserved(t *testing.T) {
	// Interpretation of the name field belongs to the checker; the reader
	// only parses the document.
	dir := t.TempDir()
	createFile(t, dir, domain.CanonicalManifestName, "name: 123\n")

	reader := manifest.NewReader()
	dm, err := reader.Load(dir)
	require.NoError(t, err)

	require.NotNil(t, dm.Canonical)
	_, isString := dm.Canonical.Doc["name"].(string)
	assert.False(t, isString)
}

func TestReader_Load_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, domain.CanonicalManifestName, "name: [unclosed\n")

	reader := manifest.NewReader()
	_, err := reader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

type failingFS struct{}

func (failingFS) ReadFile(string) ([]byte, error) {
	return nil, errors.New("disk exploded")
}

func TestReader_Load_ReadFailure(t *testing.T) {
	reader := manifest.NewReaderWithFS(failingFS{})
	_, err := reader.Load("/ws/pkg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrManifestReadFailed.Error())
}
