// Copyright © 2024 The tracehook authors

package theme

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a theme file (YAML, JSON, or TOML, selected by extension)
// into a Dict. The file holds hex color specifications under two
// top-level tables:
//
//	colors:
//	  error_text: "#dc302e"
//	  default_text: "#d9d9d9"
//	  text_selection_tint: "#4583b5"
//	scopes:
//	  default: "#d9d9d9"
//	  number: "#d49a40"
//	  function: "#66b8e3"
func Load(path string) (*Dict, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	colors, err := parseTable(v.GetStringMapString("colors"))
	if err != nil {
		return nil, fmt.Errorf("theme colors: %w", err)
	}
	scopes, err := parseTable(v.GetStringMapString("scopes"))
	if err != nil {
		return nil, fmt.Errorf("theme scopes: %w", err)
	}
	return &Dict{Colors: colors, Scopes: scopes}, nil
}

func parseTable(raw map[string]string) (map[string]RGB, error) {
	m := make(map[string]RGB, len(raw))
	for key, spec := range raw {
		c, err := ParseHex(spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		m[key] = c
	}
	return m, nil
}
