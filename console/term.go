// Copyright © 2024 The tracehook authors

package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/tracehook/tracehook/theme"
)

// Term is a Sink writing ANSI truecolor sequences and OSC 8 hyperlinks
// to an io.Writer. With colors disabled (ColorNever, NO_COLOR, or a
// non-terminal writer under ColorAuto) all escape sequences are dropped
// and links degrade to their display text.
type Term struct {
	w       io.Writer
	colored bool
}

var _ Sink = (*Term)(nil)

// NewTerm returns a terminal sink for w honoring mode.
func NewTerm(w io.Writer, mode ColorMode) *Term {
	return &Term{w: w, colored: mode.enabled(w)}
}

func (t *Term) SetColor(c theme.RGB) error {
	if !t.colored {
		return nil
	}
	seq := termenv.RGBColor(hexSpec(c)).Sequence(false)
	_, err := fmt.Fprintf(t.w, "%s%sm", termenv.CSI, seq)
	return err
}

func (t *Term) Write(s string) error {
	_, err := io.WriteString(t.w, s)
	return err
}

func (t *Term) WriteLink(text, ref string) error {
	if !t.colored {
		return t.Write(text)
	}
	return t.Write(termenv.Hyperlink(ref, text))
}

func (t *Term) Reset() error {
	if !t.colored {
		return nil
	}
	_, err := io.WriteString(t.w, termenv.CSI+termenv.ResetSeq+"m")
	return err
}

// hexSpec renders c in the "#rrggbb" form termenv colors are built from.
func hexSpec(c theme.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int(v*255 + 0.5)
}
