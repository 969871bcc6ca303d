// Copyright © 2024 The tracehook authors

// Package theme defines the color theme contract consumed by the hook
// formatters. A theme maps semantic keys ("error_text", "default_text",
// "text_selection_tint") and syntax-highlighting scopes ("default",
// "number", "function") to RGB colors. Themes are queried at formatting
// time so that a theme change in the host takes effect on the next
// hook invocation without re-installation.
package theme

import (
	"errors"
	"fmt"
)

// RGB is a color with each channel in the range 0.0 to 1.0.
type RGB struct {
	R float64
	G float64
	B float64
}

// ErrMissing is wrapped by provider errors for absent keys or scopes.
// A missing key is a theme configuration inconsistency and callers must
// surface it rather than substitute a default color.
var ErrMissing = errors.New("missing theme entry")

// Provider resolves theme colors. Implementations must not cache theme
// state across calls on behalf of the caller.
type Provider interface {
	// Color returns the color for a direct semantic key.
	Color(key string) (RGB, error)
	// ScopeColor returns the color for a syntax-highlighting scope.
	ScopeColor(scope string) (RGB, error)
}

// Dict is a map-backed Provider.
type Dict struct {
	Colors map[string]RGB
	Scopes map[string]RGB
}

var _ Provider = (*Dict)(nil)

func (d *Dict) Color(key string) (RGB, error) {
	c, ok := d.Colors[key]
	if !ok {
		return RGB{}, fmt.Errorf("%w: color %q", ErrMissing, key)
	}
	return c, nil
}

func (d *Dict) ScopeColor(scope string) (RGB, error) {
	c, ok := d.Scopes[scope]
	if !ok {
		return RGB{}, fmt.Errorf("%w: scope %q", ErrMissing, scope)
	}
	return c, nil
}

// Default returns a built-in dark theme used by the CLI when no theme
// file is configured.
func Default() *Dict {
	return &Dict{
		Colors: map[string]RGB{
			"error_text":          {R: 0.86, G: 0.19, B: 0.18},
			"default_text":        {R: 0.85, G: 0.85, B: 0.85},
			"text_selection_tint": {R: 0.27, G: 0.51, B: 0.71},
		},
		Scopes: map[string]RGB{
			"default":  {R: 0.85, G: 0.85, B: 0.85},
			"number":   {R: 0.83, G: 0.6, B: 0.25},
			"function": {R: 0.4, G: 0.72, B: 0.89},
		},
	}
}
