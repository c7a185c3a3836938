package domain

const (
	// ConfigFileName is the name of the workspace configuration file.
	ConfigFileName = "concord.yaml"

	// CanonicalManifestName is the name of the manifest in which a package
	// declares its own identity.
	CanonicalManifestName = "package.yaml"

	// ResolutionManifestName is the name of the per-directory file recording
	// where each dependency was resolved to.
	ResolutionManifestName = ".resolutions"

	// LibDirName is the conventional subdirectory holding a package's
	// library code. A package's canonical target is <dir>/lib.
	LibDirName = "lib"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
