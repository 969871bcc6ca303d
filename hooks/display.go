// Copyright © 2024 The tracehook authors

package hooks

import (
	"fmt"
	"strconv"

	"github.com/tracehook/tracehook/console"
	"github.com/tracehook/tracehook/theme"
)

// outMarkerColor is the fixed green of the "Out[n]" history marker.
var outMarkerColor = theme.RGB{R: 0, G: 0.5, B: 0}

// Representer lets host values control the literal form printed for
// them by the display hook.
type Representer interface {
	Repr() string
}

// DisplayHook intercepts every non-suppressed expression result,
// records it into the history, and prints an indexed, colorized
// representation:
//
//	Out[3] = 'spam'
type DisplayHook struct {
	sink    console.Sink
	pal     *Palette
	hist    *History
	showNil bool
}

// OnResult handles one evaluated expression result. A nil value is the
// no-result sentinel: by default it is neither recorded nor displayed.
// Under the show-nil option it is treated like any other value.
//
// Errors (failed theme lookup, failed sink write) are returned, never
// swallowed; the host-facing adapter surfaces them so a representation
// problem cannot silently eat output.
func (h *DisplayHook) OnResult(v any) error {
	if v == nil && !h.showNil {
		return nil
	}
	idx := h.hist.Append(v)
	w := &sinkWriter{sink: h.sink, pal: h.pal}
	w.color(outMarkerColor)
	w.print("Out[" + strconv.Itoa(idx) + "]")
	w.token(TokenText)
	w.print(" = ")
	w.token(TokenSelection)
	w.print(repr(v) + "\n")
	w.token(TokenText)
	return w.err
}

// History exposes the hook's result history.
func (h *DisplayHook) History() *History {
	return h.hist
}

// repr renders the literal representation of v: Representer values
// choose their own form, strings are quoted, and everything else uses
// its natural print form.
func repr(v any) string {
	switch x := v.(type) {
	case Representer:
		return x.Repr()
	case string:
		return strconv.Quote(x)
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%v", x)
	}
}
