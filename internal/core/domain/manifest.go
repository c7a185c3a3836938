package domain

// ResolutionManifest is the raw content of a directory's resolution manifest:
// newline-delimited name:path mappings.
type ResolutionManifest struct {
	// Path is the absolute path of the manifest file.
	Path string

	// Text is the full file content.
	Text string
}

// CanonicalManifest is a directory's parsed canonical manifest.
type CanonicalManifest struct {
	// Path is the absolute path of the manifest file.
	Path string

	// Raw is the unparsed file content, used for workspace fingerprinting.
	Raw []byte

	// Doc is the parsed key/value tree. The checker requires a string value
	// under the "name" key.
	Doc map[string]any
}

// DirManifests bundles the manifests found in one package directory.
// Either field may be nil when the corresponding file is absent.
type DirManifests struct {
	Dir        string
	Resolution *ResolutionManifest
	Canonical  *CanonicalManifest
}
