package domain

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/gobwas/glob"
	m "github.com/mouse-blink/dirdoc/internal/model"
)

// PathFilter decides which walked entries become document candidates.
type PathFilter struct {
	extensions m.ExtensionSet
	excludes   []glob.Glob
}

// NewPathFilter compiles the exclude patterns once. Patterns use '/' as the
// separator, so "*" stays inside one path segment and "**" crosses them.
func NewPathFilter(extensions m.ExtensionSet, excludes []string) (*PathFilter, error) {
	compiled := make([]glob.Glob, 0, len(excludes))

	for _, pattern := range excludes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, g)
	}

	return &PathFilter{extensions: extensions, excludes: compiled}, nil
}

// Match reports whether d is a regular file with a selected extension.
// Directories, symlinks and other special files never match.
func (f *PathFilter) Match(d fs.DirEntry) bool {
	if d == nil || !d.Type().IsRegular() {
		return false
	}

	return f.extensions.Contains(FileExtension(d.Name()))
}

// Excluded reports whether the slash-separated relative path matches any
// exclude pattern.
func (f *PathFilter) Excluded(rel string) bool {
	for _, g := range f.excludes {
		if g.Match(rel) {
			return true
		}
	}

	return false
}

// FileExtension returns the text after the last dot of name. Names without a
// dot and dotfiles such as ".bashrc" have no extension.
func FileExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}

	return name[i+1:]
}
