package config

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts filesystem operations for testability.
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Glob returns matches for the given pattern.
	Glob(pattern string) ([]string, error)
	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)
}

// OSFS implements FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is validated by caller
	return os.ReadFile(path)
}

// Glob returns matches for the given pattern.
func (o *OSFS) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// IsDir checks if the path is a directory.
func (o *OSFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
