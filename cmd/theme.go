// Copyright © 2024 The tracehook authors

package cmd

import (
	"fmt"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/tracehook/tracehook/hooks"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the resolved color palette for the active theme",
	Long: `Theme prints every output token with a swatch in its resolved color.
Blended tokens (filename, line number, function name) show the
per-channel mean of their syntax scope color and the error color,
which is what the traceback renderer actually emits.

Theme files are YAML/JSON/TOML with hex colors:
  colors:
    error_text: "#dc302e"
    default_text: "#d9d9d9"
    text_selection_tint: "#4583b5"
  scopes:
    default: "#d9d9d9"
    number: "#d49a40"
    function: "#66b8e3"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := loadTheme()
		if err != nil {
			return err
		}
		pal := hooks.NewPalette(th)
		sink := newSink()

		for _, row := range paletteRows {
			c, err := pal.Resolve(row.tok)
			if err != nil {
				return err
			}
			if err := sink.SetColor(c); err != nil {
				return err
			}
			if err := sink.Write(fmt.Sprintf("██ %-14s (%.2f, %.2f, %.2f)\n", row.name, c.R, c.G, c.B)); err != nil {
				return err
			}
			if err := sink.Reset(); err != nil {
				return err
			}
			desc := indent.String(wordwrap.String(row.desc, 56), 3)
			if err := sink.Write(desc + "\n"); err != nil {
				return err
			}
		}
		return nil
	},
}

var paletteRows = []struct {
	tok  hooks.Token
	name string
	desc string
}{
	{hooks.TokenError, "error", "Base error color for traceback scaffolding: the header, punctuation, source lines, and summary message."},
	{hooks.TokenText, "text", "Default console text color, restored after every hook invocation."},
	{hooks.TokenSelection, "selection", "Selection tint applied to the literal representation of displayed results."},
	{hooks.TokenFilename, "filename", "File paths in frame lines; the default syntax scope blended with the error color."},
	{hooks.TokenLineNo, "line-number", "Line numbers in frame lines; the number scope blended with the error color."},
	{hooks.TokenFuncName, "function-name", "Function names in frame lines; the function scope blended with the error color."},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
