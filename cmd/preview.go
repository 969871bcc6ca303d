// Copyright © 2024 The tracehook authors

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ergochat/readline"
	"github.com/spf13/cobra"

	"github.com/tracehook/tracehook/hooks"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively preview display-hook output for the active theme",
	Long: `Preview starts a small read-display loop. Each entered literal is fed
to the display hook as if it were an evaluated expression result, so
you can watch history indices and theme colors without a host console.

Literals: integers, floats, quoted strings, true/false, and nil (the
no-result sentinel, suppressed unless --show-nil is given). Anything
else displays as a bare string. Enter :boom to render a sample chained
traceback, or Ctrl-D to exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showNil, err := cmd.Flags().GetBool("show-nil")
		if err != nil {
			return err
		}
		return runPreview(showNil)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().Bool("show-nil", false, "display and record the nil sentinel like any other value")
}

func runPreview(showNil bool) error {
	th, err := loadTheme()
	if err != nil {
		return err
	}
	opts := []hooks.Option{}
	if showNil {
		opts = append(opts, hooks.WithShowNil())
	}
	display, except := hooks.Install(newSink(), th, opts...)

	histFile := historyPath()
	ensureHistoryFilePermissions(histFile)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            ">>> ",
		HistoryFile:       histFile,
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if string(line) == ":boom" {
			except.OnException(sampleChain())
			continue
		}
		if err := display.OnResult(parseLiteral(string(line))); err != nil {
			fmt.Fprintln(os.Stderr, "display error:", err) //nolint:errcheck // best-effort error display
		}
	}
}

// parseLiteral interprets a preview input line as a result value.
func parseLiteral(s string) any {
	switch s {
	case "nil":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') {
		if unq, err := strconv.Unquote(`"` + s[1:len(s)-1] + `"`); err == nil {
			return unq
		}
	}
	return s
}

// sampleChain is the :boom demo: a lookup error raised during handling
// of a conversion error, exercising the context transition sentence.
func sampleChain() *hooks.Exception {
	return &hooks.Exception{
		Module:  "builtins",
		Type:    "KeyError",
		Message: "'retries'",
		Frames: []hooks.Frame{
			{File: "<stdin>", Line: 3, Func: "<module>"},
			{File: "config.py", Line: 41, Func: "load", Text: "return defaults[name]"},
		},
		Context: &hooks.Exception{
			Module:  "builtins",
			Type:    "ValueError",
			Message: "invalid literal for int() with base 10: 'many'",
			Frames: []hooks.Frame{
				{File: "config.py", Line: 39, Func: "load", Text: "return int(raw[name])"},
			},
		},
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tracehook_history")
}

// ensureHistoryFilePermissions keeps the readline history private: the
// file is created with mode 0600, and an existing file with a wider
// mode is tightened.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600)
	if err != nil {
		return
	}
	defer f.Close() //nolint:errcheck // read-only handle
	info, err := f.Stat()
	if err != nil {
		return
	}
	if info.Mode().Perm() != 0600 {
		_ = os.Chmod(path, 0600) //nolint:errcheck // best-effort tightening
	}
}
