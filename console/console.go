// Copyright © 2024 The tracehook authors

// Package console defines the colored output sink written to by the
// display and exception hooks, together with a terminal implementation.
// The sink models the host console contract: a single "current color"
// that applies to all subsequent text, plain text emission, and link
// emission for clickable file references.
package console

import "github.com/tracehook/tracehook/theme"

// Sink receives colored hook output. The current color is global
// mutable state for the duration of one hook call; callers must restore
// it to a neutral default before yielding control to the host.
type Sink interface {
	// SetColor sets the color applied to subsequent Write calls.
	SetColor(c theme.RGB) error
	// Write emits text in the current color.
	Write(s string) error
	// WriteLink emits text that activates ref when selected. Sinks
	// without link support render the text alone.
	WriteLink(text, ref string) error
	// Reset restores the sink's neutral default color.
	Reset() error
}
