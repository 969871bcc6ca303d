// Copyright © 2024 The tracehook authors

package console

import (
	"io"
	"os"
)

// ColorMode controls when color escape sequences are emitted.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect based on terminal and NO_COLOR
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

// ParseColorMode maps the conventional "auto"/"always"/"never" flag
// values to a ColorMode. Unrecognized values fall back to ColorAuto.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

// enabled reports whether the mode permits color on w.
func (m ColorMode) enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default: // ColorAuto
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTerminal(fileFromWriter(w))
	}
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// fileFromWriter attempts to extract an *os.File from a writer for
// terminal detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
