// Copyright © 2024 The tracehook authors

// Package hooktest provides helpers for testing hook output: a sink
// that records the exact operation sequence, a theme provider with
// known colors, and an io.Writer that forwards lines to testing logs.
package hooktest

import (
	"fmt"
	"strings"

	"github.com/tracehook/tracehook/console"
	"github.com/tracehook/tracehook/theme"
)

// Op is one recorded sink operation.
type Op struct {
	Kind  string // "color", "write", "link", "reset"
	Text  string // written text or link display text
	Ref   string // link action reference
	Color theme.RGB
}

// RecordSink records every sink operation so tests can assert on the
// exact interleaving of color changes, text, and links.
type RecordSink struct {
	Ops []Op

	// FailColor, when non-nil, is returned from SetColor to simulate a
	// broken sink.
	FailColor error
}

var _ console.Sink = (*RecordSink)(nil)

func (s *RecordSink) SetColor(c theme.RGB) error {
	if s.FailColor != nil {
		return s.FailColor
	}
	s.Ops = append(s.Ops, Op{Kind: "color", Color: c})
	return nil
}

func (s *RecordSink) Write(text string) error {
	s.Ops = append(s.Ops, Op{Kind: "write", Text: text})
	return nil
}

func (s *RecordSink) WriteLink(text, ref string) error {
	s.Ops = append(s.Ops, Op{Kind: "link", Text: text, Ref: ref})
	return nil
}

func (s *RecordSink) Reset() error {
	s.Ops = append(s.Ops, Op{Kind: "reset"})
	return nil
}

// Text returns all written and linked text concatenated, ignoring color
// operations. Useful for asserting on the logical output contract.
func (s *RecordSink) Text() string {
	var b strings.Builder
	for _, op := range s.Ops {
		if op.Kind == "write" || op.Kind == "link" {
			b.WriteString(op.Text)
		}
	}
	return b.String()
}

// Script renders the recorded operations one per line for readable
// failure messages and golden comparisons.
func (s *RecordSink) Script() string {
	var b strings.Builder
	for _, op := range s.Ops {
		switch op.Kind {
		case "color":
			fmt.Fprintf(&b, "color %.2f %.2f %.2f\n", op.Color.R, op.Color.G, op.Color.B)
		case "write":
			fmt.Fprintf(&b, "write %q\n", op.Text)
		case "link":
			fmt.Fprintf(&b, "link %q -> %s\n", op.Text, op.Ref)
		case "reset":
			b.WriteString("reset\n")
		}
	}
	return b.String()
}

// LastColor returns the color most recently set, or false if none was.
func (s *RecordSink) LastColor() (theme.RGB, bool) {
	for i := len(s.Ops) - 1; i >= 0; i-- {
		if s.Ops[i].Kind == "color" {
			return s.Ops[i].Color, true
		}
	}
	return theme.RGB{}, false
}
