// Copyright © 2024 The tracehook authors

package hooks

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/tracehook/tracehook/console"
	"github.com/tracehook/tracehook/theme"
)

// chainColor is the fixed red of chain-transition sentences and the
// syntax-error underline, matching the host's default traceback marks.
var chainColor = theme.RGB{R: 0.75, G: 0, B: 0}

// combiningLowLine visually points at the failure column when prefixed
// to the underlined half of a syntax error's source line.
const combiningLowLine = "̲"

const sourceUnavailable = "# Source code unavailable"

// DefaultMaxChainDepth bounds cause/context recursion. The host never
// produces chains anywhere near this deep; the bound exists so a
// pathological or cyclic chain cannot recurse without end.
const DefaultMaxChainDepth = 100

// Formatter renders exception chains as colorized tracebacks
// equivalent to the interpreter's default format, with shortened
// clickable paths and per-token theme colors.
type Formatter struct {
	sink     console.Sink
	pal      *Palette
	short    *Shortener
	link     *Linker
	maxDepth int
}

// NewFormatter returns a formatter writing to sink. short and link
// control path display; maxDepth <= 0 selects DefaultMaxChainDepth.
func NewFormatter(sink console.Sink, pal *Palette, short *Shortener, link *Linker, maxDepth int) *Formatter {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxChainDepth
	}
	return &Formatter{sink: sink, pal: pal, short: short, link: link, maxDepth: maxDepth}
}

// Format renders exc and its cause/context chain, root cause first.
// The caller is responsible for restoring the sink color afterward;
// ExceptionHook.OnException wraps Format with that guarantee.
func (f *Formatter) Format(exc *Exception) error {
	return f.format(exc, 1)
}

func (f *Formatter) format(exc *Exception, depth int) error {
	w := &sinkWriter{sink: f.sink, pal: f.pal}
	if prior, sentence := exc.chained(); prior != nil {
		if depth < f.maxDepth {
			if err := f.format(prior, depth+1); err != nil {
				return err
			}
		} else {
			w.color(chainColor)
			w.print(fmt.Sprintf("... earlier exceptions omitted: chain exceeds %d links ...\n", f.maxDepth))
		}
		// The transition sentence is framed by blank lines on both
		// sides, exactly as the default presentation prints it.
		w.color(chainColor)
		w.print("\n" + sentence + "\n\n")
	}
	f.renderOne(w, exc)
	return w.err
}

// renderOne renders a single chain node: header, frames, the syntax
// special case, and the summary line.
func (f *Formatter) renderOne(w *sinkWriter, exc *Exception) {
	w.token(TokenError)
	w.print("Traceback (most recent call last):\n")

	for _, fr := range exc.Frames {
		w.token(TokenError)
		w.print("\tFile ")
		f.location(w, fr.File, fr.Line)
		w.token(TokenError)
		w.print(", line ")
		w.token(TokenLineNo)
		w.print(strconv.Itoa(fr.Line))
		w.token(TokenError)
		w.print(", in ")
		w.token(TokenFuncName)
		w.print(fr.Func)
		w.token(TokenError)
		w.print(":\n")
		text := fr.Text
		if text == "" {
			text = sourceUnavailable
		}
		w.print("\t\t" + text + "\n\n")
	}

	if exc.Syntax != nil {
		f.renderSyntax(w, exc.Syntax)
	}

	w.token(TokenFilename)
	w.print(exc.Module)
	w.token(TokenError)
	w.print(".")
	w.token(TokenFuncName)
	w.print(exc.Type)
	if exc.Message != "" {
		w.token(TokenError)
		w.print(": " + exc.Message)
	}
	w.print("\n")
}

// renderSyntax prints the parse error's own location line, then the
// offending source line split at the reported column: everything up to
// the column in the error color, the remainder underline-marked in the
// fixed red.
func (f *Formatter) renderSyntax(w *sinkWriter, syn *SyntaxInfo) {
	w.token(TokenError)
	w.print("\tFile ")
	f.location(w, syn.File, syn.Line)
	w.token(TokenError)
	w.print(", line ")
	w.token(TokenLineNo)
	w.print(strconv.Itoa(syn.Line))
	w.token(TokenError)
	w.print(":\n")

	if syn.Text == "" {
		w.print("\t\t" + sourceUnavailable + "\n")
		return
	}
	head, tail := splitAtColumn(syn.Text, syn.Offset)
	w.print("\t\t" + head)
	w.color(chainColor)
	w.print(combiningLowLine + strings.TrimRight(tail, " \t\r\n") + "\n")
}

// location prints a source path in the filename color, as a link when
// the path is a real file and as plain text for synthetic markers.
func (f *Formatter) location(w *sinkWriter, path string, line int) {
	w.token(TokenFilename)
	loc := f.short.Shorten(path)
	if !loc.Clickable {
		w.print(loc.Display)
		return
	}
	w.link(loc.Display, f.link.Open(loc.Real, line))
}

// splitAtColumn splits text at the 1-based rune column col, clamping
// out-of-range columns to the ends of the line.
func splitAtColumn(text string, col int) (head, tail string) {
	runes := []rune(text)
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	return string(runes[:col]), string(runes[col:])
}

// ExceptionHook is the host-facing uncaught-exception entry point. It
// never lets a formatting failure escape past the hook boundary, and
// it always restores the default text color before returning.
type ExceptionHook struct {
	f *Formatter
}

// OnException renders exc. Any error or panic raised while formatting
// is reported through the sink as a raw, uncolored traceback of the
// formatting failure itself; the hook then returns normally. The sink
// color is unconditionally restored afterward.
func (h *ExceptionHook) OnException(exc *Exception) {
	defer h.restoreColor()
	defer func() {
		if r := recover(); r != nil {
			h.reportFailure(fmt.Sprintf("panic: %v", r), debug.Stack())
		}
	}()
	if err := h.f.Format(exc); err != nil {
		h.reportFailure(err.Error(), nil)
	}
}

// Formatter exposes the underlying formatter, for callers that want
// errors propagated instead of reported.
func (h *ExceptionHook) Formatter() *Formatter {
	return h.f
}

// restoreColor puts the sink back to the default text color, falling
// back to the sink's neutral reset when the theme itself is broken.
func (h *ExceptionHook) restoreColor() {
	if c, err := h.f.pal.Resolve(TokenText); err == nil {
		_ = h.f.sink.SetColor(c) //nolint:errcheck // best-effort cleanup
		return
	}
	_ = h.f.sink.Reset() //nolint:errcheck // best-effort cleanup
}

// reportFailure emits the formatting failure uncolored. Writes are
// best-effort: if the sink itself is failing there is nowhere left to
// report to.
func (h *ExceptionHook) reportFailure(msg string, stack []byte) {
	report := "exception formatting failed: " + msg + "\n"
	if len(stack) > 0 {
		report += string(stack)
	}
	_ = h.f.sink.Reset()       //nolint:errcheck // best-effort reporting
	_ = h.f.sink.Write(report) //nolint:errcheck // best-effort reporting
}
