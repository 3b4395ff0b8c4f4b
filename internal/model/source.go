package model

import (
	"path/filepath"
	"slices"
	"strings"
)

// Path represents a file system path.
type Path string

// Slash returns the path with forward slashes regardless of platform.
func (p Path) Slash() string {
	return filepath.ToSlash(string(p))
}

// ExtensionSet holds the normalized extensions selected for inclusion.
// It is built once from the command line and never mutated afterwards.
type ExtensionSet map[string]struct{}

// NormalizeExtension lower-cases an extension and strips its leading dots,
// so ".RS", "rs" and "Rs" all become "rs".
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(ext), "."))
}

// ParseExtensions builds an ExtensionSet. Each value may itself hold a
// comma-separated list.
func ParseExtensions(values []string) ExtensionSet {
	set := make(ExtensionSet, len(values))

	for _, value := range values {
		parts := strings.Split(value, ",")
		for _, part := range parts {
			// "rs," lists one extension; a lone "" selects extensionless files.
			if len(parts) > 1 && strings.TrimSpace(part) == "" {
				continue
			}

			set[NormalizeExtension(part)] = struct{}{}
		}
	}

	return set
}

// Contains reports whether the normalized form of ext is in the set.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[NormalizeExtension(ext)]
	return ok
}

// Sorted returns the members in lexical order.
func (s ExtensionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, ext)
	}

	slices.Sort(out)

	return out
}

// FileEntry is a candidate discovered by the walker.
type FileEntry struct {
	// Path is the location on disk, joined onto the scan root as given.
	Path Path
	// Rel is the slash-separated path relative to the scan root; it is the
	// text shown in the document heading.
	Rel string
	// Size in bytes at discovery time.
	Size int64
}
