// Copyright © 2024 The tracehook authors

// Package hooks implements the two interactive console extension
// points: a display hook that records results into an indexed history
// and prints them in theme colors, and an exception hook that renders
// chained-exception tracebacks with per-token colors, shortened source
// paths, and editor deep-links.
package hooks

import (
	"fmt"

	"github.com/tracehook/tracehook/theme"
)

// Token classifies a colored output segment.
type Token int

const (
	// TokenError is the base error color applied to traceback scaffolding.
	TokenError Token = iota
	// TokenText is the console's default text color.
	TokenText
	// TokenSelection is the selection tint used for result values.
	TokenSelection
	// TokenFilename colors file paths in frame lines.
	TokenFilename
	// TokenLineNo colors line numbers in frame lines.
	TokenLineNo
	// TokenFuncName colors function names in frame lines.
	TokenFuncName
)

// scope returns the syntax-highlighting scope a blended token draws
// from, or "" for tokens resolved from direct theme keys.
func (t Token) scope() string {
	switch t {
	case TokenFilename:
		return "default"
	case TokenLineNo:
		return "number"
	case TokenFuncName:
		return "function"
	}
	return ""
}

// Palette resolves tokens against the current theme. Filename, line
// number, and function name tokens blend their scope color with the
// error color so the traceback reads as error output while the fields
// stay distinguishable.
type Palette struct {
	theme theme.Provider
}

// NewPalette returns a palette reading from th at resolve time.
func NewPalette(th theme.Provider) *Palette {
	return &Palette{theme: th}
}

// Resolve returns the color for tok. A missing theme key or scope is a
// configuration inconsistency and is returned as an error, never
// papered over with a default.
func (p *Palette) Resolve(tok Token) (theme.RGB, error) {
	errColor, err := p.theme.Color("error_text")
	if err != nil {
		return theme.RGB{}, err
	}
	switch tok {
	case TokenError:
		return errColor, nil
	case TokenText:
		return p.theme.Color("default_text")
	case TokenSelection:
		return p.theme.Color("text_selection_tint")
	case TokenFilename, TokenLineNo, TokenFuncName:
		scoped, err := p.theme.ScopeColor(tok.scope())
		if err != nil {
			return theme.RGB{}, err
		}
		return blend(scoped, errColor), nil
	}
	return theme.RGB{}, fmt.Errorf("unknown palette token %d", tok)
}

// blend returns the per-channel arithmetic mean of a and b, each
// channel rounded to two decimals.
func blend(a, b theme.RGB) theme.RGB {
	return theme.RGB{
		R: theme.Round((a.R + b.R) / 2),
		G: theme.Round((a.G + b.G) / 2),
		B: theme.Round((a.B + b.B) / 2),
	}
}
