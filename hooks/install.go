// Copyright © 2024 The tracehook authors

package hooks

import (
	"github.com/tracehook/tracehook/console"
	"github.com/tracehook/tracehook/theme"
)

// DefaultAppName is the executable base name identifying the host
// variant with the newer link scheme.
const DefaultAppName = "Pythonista3"

type config struct {
	showNil  bool
	roots    []string
	scheme   Scheme
	hist     *History
	maxDepth int
	appName  string
}

func newConfig(opts ...Option) *config {
	config := &config{appName: DefaultAppName}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Option configures Install.
type Option func(*config)

// WithShowNil makes the display hook record and display the nil
// no-result sentinel like any other value.
func WithShowNil() Option {
	return func(c *config) {
		c.showNil = true
	}
}

// WithRoots overrides the detected removable path prefixes.
func WithRoots(roots ...string) Option {
	return func(c *config) {
		c.roots = roots
	}
}

// WithScheme overrides host link-scheme detection.
func WithScheme(scheme Scheme) Option {
	return func(c *config) {
		c.scheme = scheme
	}
}

// WithHistory substitutes the result history, for tests or for hosts
// that expose the history to other code paths.
func WithHistory(h *History) Option {
	return func(c *config) {
		c.hist = h
	}
}

// WithMaxChainDepth bounds cause/context recursion.
func WithMaxChainDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithAppName overrides the host app name used for root and scheme
// detection.
func WithAppName(name string) Option {
	return func(c *config) {
		c.appName = name
	}
}

// Install wires up the two hook objects against a sink and a theme.
// Environment-derived state (removable roots, link scheme) is computed
// once here and used for the lifetime of the process; theme colors are
// resolved on every hook invocation. The host registers the returned
// hooks as its display and uncaught-exception callbacks.
func Install(sink console.Sink, th theme.Provider, opts ...Option) (*DisplayHook, *ExceptionHook) {
	cfg := newConfig(opts...)
	if cfg.roots == nil {
		cfg.roots = DetectRoots(cfg.appName)
	}
	if cfg.scheme == "" {
		cfg.scheme = DetectScheme(cfg.appName)
	}
	if cfg.hist == nil {
		cfg.hist = NewHistory()
	}

	pal := NewPalette(th)
	display := &DisplayHook{
		sink:    sink,
		pal:     pal,
		hist:    cfg.hist,
		showNil: cfg.showNil,
	}
	except := &ExceptionHook{
		f: NewFormatter(sink, pal, NewShortener(cfg.roots), NewLinker(cfg.scheme), cfg.maxDepth),
	}
	return display, except
}
