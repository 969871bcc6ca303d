// Copyright © 2024 The tracehook authors

package hooks

import (
	"os"
	"path/filepath"
	"strings"
)

// Location is the displayable form of a frame's source path.
type Location struct {
	// Display is the shortened text to print.
	Display string
	// Real is the canonical absolute path for editor links. Empty for
	// non-clickable locations.
	Real string
	// Clickable reports whether the location refers to a real file
	// eligible for an editor-open link.
	Clickable bool
}

// Shortener strips known installation-root prefixes from source paths
// so displayed paths are relative and meaningful to the user. Synthetic
// marker paths like "<stdin>" pass through unchanged and are never
// clickable.
type Shortener struct {
	roots []string
}

// NewShortener returns a shortener trying each root prefix in order.
// Each root should carry a trailing path separator.
func NewShortener(roots []string) *Shortener {
	return &Shortener{roots: roots}
}

// DetectRoots computes the two removable root prefixes for the running
// process: the app-group directory derived from the home directory
// (stepping out of a home directory named after the host app) and the
// install directory two levels above the executable. Both are computed
// once at install time.
func DetectRoots(appName string) []string {
	sep := string(os.PathSeparator)
	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		group := home
		if filepath.Base(group) == appName {
			group = filepath.Dir(group)
		}
		roots = append(roots, group+sep)
	}
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Dir(filepath.Dir(exe))+sep)
	}
	return roots
}

// Shorten returns the display form of path. Shortening is idempotent:
// an already-shortened (relative) path matches no absolute root prefix
// and comes back unchanged.
func (s *Shortener) Shorten(path string) Location {
	if isSynthetic(path) {
		return Location{Display: path}
	}
	display := path
	for _, root := range s.roots {
		if strings.HasPrefix(path, root) {
			display = path[len(root):]
			break
		}
	}
	return Location{Display: display, Real: realPath(path), Clickable: true}
}

// isSynthetic reports whether path is a marker like "<stdin>" standing
// in for code with no backing file.
func isSynthetic(path string) bool {
	return strings.HasPrefix(path, "<") && strings.HasSuffix(path, ">")
}

// realPath resolves symlinks and relative components to a canonical
// absolute path, falling back to the input when resolution fails (the
// file may no longer exist; the display text is still useful).
func realPath(path string) string {
	p := path
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return p
}
