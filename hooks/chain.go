// Copyright © 2024 The tracehook authors

package hooks

// Frame is one stack level of an exception's traceback, outermost call
// first in a Frames slice. Text is the stripped source line, or empty
// when no source is known.
type Frame struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Func string `json:"func"`
	Text string `json:"text,omitempty"`
}

// SyntaxInfo carries the extra location a parse error records about
// itself, separate from the frame stack. Offset is the 1-based column
// (in runes) at which the error was reported.
type SyntaxInfo struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
	Text   string `json:"text,omitempty"`
}

// Exception is one node of an exception chain, built by an adapter
// from the host's native exception representation so the formatter
// only ever sees this uniform shape. Nodes are transient, owned for
// the duration of one hook invocation.
//
// Syntax discriminates the two failure kinds: nil for a general
// failure, non-nil for a parse failure whose own location and source
// text get an extra rendering pass. In both kinds Message is the text
// of the summary line.
type Exception struct {
	Module  string      `json:"module"`
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	Frames  []Frame     `json:"frames,omitempty"`
	Syntax  *SyntaxInfo `json:"syntax,omitempty"`

	// Cause is the exception this one was explicitly raised from.
	// When set, Context is ignored for traversal.
	Cause *Exception `json:"cause,omitempty"`
	// Context is the exception being handled when this one occurred.
	Context *Exception `json:"context,omitempty"`
	// SuppressContext hides Context during traversal when no Cause is
	// set.
	SuppressContext bool `json:"suppress_context,omitempty"`
}

// chained returns the prior exception to render before this one and
// the transition sentence linking the two, or nil when the chain ends
// here.
func (e *Exception) chained() (*Exception, string) {
	if e.Cause != nil {
		return e.Cause, causeSentence
	}
	if e.Context != nil && !e.SuppressContext {
		return e.Context, contextSentence
	}
	return nil, ""
}

const (
	causeSentence   = "The above exception was the direct cause of the following exception:"
	contextSentence = "During handling of the above exception, another exception occurred:"
)
