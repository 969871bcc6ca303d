// Copyright © 2024 The tracehook authors

package hooks

import (
	"github.com/tracehook/tracehook/console"
	"github.com/tracehook/tracehook/theme"
)

// sinkWriter sequences colored sink operations, capturing the first
// error and short-circuiting the rest. This keeps the token-by-token
// rendering code free of per-call error checks.
type sinkWriter struct {
	sink console.Sink
	pal  *Palette
	err  error
}

func (w *sinkWriter) color(c theme.RGB) {
	if w.err != nil {
		return
	}
	w.err = w.sink.SetColor(c)
}

// token sets the current color to the palette resolution of tok. A
// failed theme lookup sticks as the writer error.
func (w *sinkWriter) token(tok Token) {
	if w.err != nil {
		return
	}
	c, err := w.pal.Resolve(tok)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.sink.SetColor(c)
}

func (w *sinkWriter) print(s string) {
	if w.err != nil {
		return
	}
	w.err = w.sink.Write(s)
}

func (w *sinkWriter) link(text, ref string) {
	if w.err != nil {
		return
	}
	w.err = w.sink.WriteLink(text, ref)
}
