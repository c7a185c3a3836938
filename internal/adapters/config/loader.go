// Package config provides the workspace configuration loader for concord.
package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/concord-tools/concord/internal/core/domain"
	"github.com/concord-tools/concord/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.WorkspaceLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger, backed by the
// operating system filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// NewLoaderWithFS creates a new Loader with the given logger and filesystem.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load walks up from cwd to find concord.yaml and returns the resolved
// workspace: absolute root and primary root, vendor allow-list, and package
// directories in lexicographic order. That ordering is the discovery-order
// contract the checker's report determinism rests on.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.readAndUnmarshal(configPath, &cfg); err != nil {
		return nil, err
	}

	root := resolveRoot(configPath, cfg.Root)
	primary := root
	if cfg.PrimaryRoot != "" {
		primary = resolvePath(root, cfg.PrimaryRoot)
	}

	dirs, err := l.resolvePackageDirs(root, cfg.Packages)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, zerr.With(domain.ErrNoPackageDirs, "config", configPath)
	}

	return &domain.Workspace{
		Root:        root,
		PrimaryRoot: primary,
		Dirs:        dirs,
		Vendored:    cfg.Vendored,
	}, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := l.FS.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) resolvePackageDirs(root string, patterns []string) ([]string, error) {
	// A map deduplicates paths when multiple globs match the same directory.
	matched := make(map[string]struct{})

	for _, pattern := range patterns {
		// Join with root to match against absolute paths
		absPattern := filepath.Join(root, pattern)

		matches, err := l.FS.Glob(absPattern)
		if err != nil {
			return nil, zerr.Wrap(err, "glob pattern failed: "+pattern)
		}

		for _, match := range matches {
			matched[match] = struct{}{}
		}
	}

	// Sort for determinism: map iteration order is random, and the resulting
	// order is the scan order the checker reports in.
	sorted := make([]string, 0, len(matched))
	for p := range matched {
		sorted = append(sorted, p)
	}
	slices.Sort(sorted)

	// Glob returns files too; keep directories only.
	dirs := make([]string, 0, len(sorted))
	for _, p := range sorted {
		isDir, err := l.FS.IsDir(p)
		if err != nil {
			return nil, err
		}
		if !isDir {
			relPath, _ := filepath.Rel(root, p)
			l.Logger.Warn(fmt.Sprintf("package glob matched non-directory %s, skipping", relPath))
			continue
		}
		dirs = append(dirs, p)
	}

	return dirs, nil
}

func (l *Loader) readAndUnmarshal(configPath string, target *Config) error {
	configFile, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}
