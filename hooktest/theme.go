// Copyright © 2024 The tracehook authors

package hooktest

import "github.com/tracehook/tracehook/theme"

// Theme returns a Dict with simple channel values chosen so blended
// colors in tests are exact two-decimal fractions.
func Theme() *theme.Dict {
	return &theme.Dict{
		Colors: map[string]theme.RGB{
			"error_text":          {R: 1, G: 0, B: 0},
			"default_text":        {R: 0.9, G: 0.9, B: 0.9},
			"text_selection_tint": {R: 0.2, G: 0.4, B: 0.6},
		},
		Scopes: map[string]theme.RGB{
			"default":  {R: 0.5, G: 0.5, B: 0.5},
			"number":   {R: 0, G: 1, B: 0},
			"function": {R: 0, G: 0, B: 1},
		},
	}
}
