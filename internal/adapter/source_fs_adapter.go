// Package adapter contains infrastructure adapters for the dirdoc CLI.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/dirdoc/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a tree. It intentionally hides direct `os`
// access so the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses the tree rooted at root in lexical order, one directory
	// level at a time. Symbolic links are reported but never followed.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.WalkDir. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, d fs.DirEntry, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root. WalkDir reads each directory
// sorted by name, which keeps the output reproducible between runs.
//
// A root that is itself a symlink is resolved and walked, but paths are
// still reported under root. Links below the root are not followed.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	start := string(root)

	info, err := os.Lstat(start)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return filepath.WalkDir(start, fs.WalkDirFunc(fn))
	}

	target, err := filepath.EvalSymlinks(start)
	if err != nil {
		return fn(start, nil, err)
	}

	return filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		rel, relErr := filepath.Rel(target, path)
		if relErr != nil {
			return relErr
		}

		if rel == "." {
			return fn(start, d, err)
		}

		return fn(filepath.Join(start, rel), d, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected files is the point of the tool
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
