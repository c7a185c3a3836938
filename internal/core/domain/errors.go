package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedManifest is returned when a canonical manifest is missing a
	// string 'name' field. The whole run aborts before any conflict
	// computation, since a corrupt manifest invalidates conflict semantics.
	ErrMalformedManifest = zerr.New("canonical manifest is missing a string 'name' field")

	// ErrDuplicateCanonical is returned when two directories both declare
	// themselves the canonical owner of the same package name.
	ErrDuplicateCanonical = zerr.New("package declared canonical in more than one directory")

	// ErrDependencyConflict is returned when one or more packages resolve to
	// two or more distinct targets after a full workspace scan.
	ErrDependencyConflict = zerr.New("workspace has conflicting dependency resolutions")

	// ErrNotResolvable is returned when a single target is requested for a
	// package that is conflicted or was never recorded.
	ErrNotResolvable = zerr.New("package does not have exactly one resolution target")

	// ErrManifestReadFailed is returned when a manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a canonical manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse canonical manifest")

	// ErrConfigNotFound is returned when no concord.yaml can be found walking
	// up from the working directory.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoPackageDirs is returned when the configured package globs match
	// no directories at all.
	ErrNoPackageDirs = zerr.New("no package directories matched the configured globs")
)
