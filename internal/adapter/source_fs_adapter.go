// Package adapter contains filesystem and output adapters for the countroo CLI.
package adapter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "countroo.dev/pkg/countroo/internal/model"
)

// DefaultProjectMarkers are the files whose presence identifies a project root.
var DefaultProjectMarkers = []string{"go.mod", "Cargo.toml"}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// counting logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root depth-first. A symlinked root is resolved first;
	// symlinks below it are reported, not followed.
	Walk(root m.Path, fn fs.WalkDirFunc) error

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Open opens a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FindProjectRoot walks up from startDir looking for any of the markers.
	// The boolean is false when the filesystem root is reached without a match.
	FindProjectRoot(startDir m.Path, markers ...string) (m.Path, bool)

	// WorkingDir returns the process working directory.
	WorkingDir() (m.Path, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the counter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn fs.WalkDirFunc) error {
	start := string(root)

	if info, err := os.Lstat(start); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(start)
		if err != nil {
			return fn(start, nil, err)
		}

		start = resolved
	}

	return filepath.WalkDir(start, fn)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Open opens the file at path read-only.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path comes from the walk of a user-selected project
	return os.Open(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FindProjectRoot searches for a project marker walking up the directory tree.
func (a *LocalSourceFSAdapter) FindProjectRoot(startDir m.Path, markers ...string) (m.Path, bool) {
	if len(markers) == 0 {
		markers = DefaultProjectMarkers
	}

	dir, err := filepath.Abs(string(startDir))
	if err != nil {
		return "", false
	}

	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir), true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// WorkingDir returns the current working directory.
func (a *LocalSourceFSAdapter) WorkingDir() (m.Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return m.Path(wd), nil
}
