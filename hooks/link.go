// Copyright © 2024 The tracehook authors

package hooks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scheme selects the URL scheme variant of the host app's link handler.
type Scheme string

const (
	// SchemePythonista3 is registered by the Pythonista 3 build.
	SchemePythonista3 Scheme = "pythonista3"
	// SchemePythonista is registered by older builds.
	SchemePythonista Scheme = "pythonista"
)

// DetectScheme picks the link scheme by inspecting the running
// executable's base name, the identifying property the host exposes.
func DetectScheme(appName string) Scheme {
	exe, err := os.Executable()
	if err != nil {
		return SchemePythonista
	}
	if filepath.Base(exe) == appName {
		return SchemePythonista3
	}
	return SchemePythonista
}

// Linker builds editor deep-link action references. Activating a link
// opens the file in a new editor tab and annotates the failing line.
type Linker struct {
	scheme Scheme
}

// NewLinker returns a linker emitting URLs for scheme.
func NewLinker(scheme Scheme) *Linker {
	return &Linker{scheme: scheme}
}

// Open returns the action reference for opening path at line. The exec
// payload percent-encodes every literal space; "=" is pre-encoded so
// the host does not parse it as a query delimiter. Only call this for
// clickable locations.
func (l *Linker) Open(path string, line int) string {
	payload := fmt.Sprintf(
		"import editor; editor.open_file('%s', new_tab %%3D True); editor.annotate_line(%d)",
		path, line)
	return string(l.scheme) + "://?exec=" + strings.ReplaceAll(payload, " ", "%20")
}
