// Copyright © 2024 The tracehook authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tracehook/tracehook/console"
	"github.com/tracehook/tracehook/theme"
)

var (
	cfgFile   string
	themeFile string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tracehook",
	Short: "tracehook — themed console hooks for interactive sessions",
	Long: `tracehook renders interactive console output the way a themed host
console does: expression results carry Out[n] history markers, and
uncaught exceptions render as colorized tracebacks with shortened,
clickable source paths and correct chained-exception ordering.

Getting started:
  tracehook render trace.json   Render a captured exception chain
  tracehook preview             Interactive display-hook preview
  tracehook theme               Show the resolved color palette

Trace files are JSON exception chains as produced by a host adapter:
  {"module": "builtins", "type": "ValueError", "message": "bad",
   "frames": [{"file": "<stdin>", "line": 1, "func": "<module>"}],
   "cause": {...}}

Themes map semantic keys and syntax scopes to hex colors; see
tracehook theme --help for the file format.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tracehook.yaml)")
	rootCmd.PersistentFlags().StringVar(&themeFile, "theme", "", "theme file (hex colors; default is a built-in dark theme)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".tracehook" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".tracehook")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetString("theme") != "" && themeFile == "" {
			themeFile = viper.GetString("theme")
		}
	}
}

// loadTheme resolves the active theme: the --theme flag (or "theme"
// config key) if set, the built-in dark theme otherwise.
func loadTheme() (theme.Provider, error) {
	if themeFile == "" {
		return theme.Default(), nil
	}
	return theme.Load(themeFile)
}

// newSink builds the stdout sink honoring the --color flag.
func newSink() *console.Term {
	return console.NewTerm(os.Stdout, console.ParseColorMode(colorFlag))
}
