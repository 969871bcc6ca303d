// Copyright © 2024 The tracehook authors

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracehook/tracehook/hooks"
)

var (
	renderRoots  []string
	renderScheme string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <trace.json>",
	Short: "Render a captured exception chain as a colorized traceback",
	Long: `Render reads a JSON exception chain captured by a host adapter and
renders it exactly as the exception hook would inside the console:
root cause first, transition sentences between chain links, one frame
block per stack level, and a final summary line.

Example:
  tracehook render crash.json
  tracehook render --roots "$HOME/" --color always crash.json

With --roots the detected home and install prefixes are replaced, which
makes output reproducible across machines.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var exc hooks.Exception
		if err := json.Unmarshal(data, &exc); err != nil {
			return fmt.Errorf("parse trace: %w", err)
		}

		th, err := loadTheme()
		if err != nil {
			return err
		}
		opts := []hooks.Option{}
		if len(renderRoots) > 0 {
			opts = append(opts, hooks.WithRoots(renderRoots...))
		}
		if renderScheme != "" {
			opts = append(opts, hooks.WithScheme(hooks.Scheme(renderScheme)))
		}
		_, except := hooks.Install(newSink(), th, opts...)
		except.OnException(&exc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringSliceVar(&renderRoots, "roots", nil, "path prefixes to strip from displayed file names")
	renderCmd.Flags().StringVar(&renderScheme, "scheme", "", "editor link scheme (default: detect from executable)")
}
