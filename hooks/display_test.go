// Copyright © 2024 The tracehook authors

package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracehook/tracehook/hooktest"
	"github.com/tracehook/tracehook/theme"
)

func newTestDisplay(t *testing.T, opts ...Option) (*DisplayHook, *hooktest.RecordSink) {
	t.Helper()
	sink := &hooktest.RecordSink{}
	display, _ := Install(sink, hooktest.Theme(), opts...)
	return display, sink
}

func TestOnResultOutput(t *testing.T) {
	display, sink := newTestDisplay(t)

	require.NoError(t, display.OnResult(2))
	assert.Equal(t, "Out[0] = 2\n", sink.Text())

	// Marker, " = ", and value each carry their own color, and the
	// default text color is restored at the end.
	var colors []theme.RGB
	for _, op := range sink.Ops {
		if op.Kind == "color" {
			colors = append(colors, op.Color)
		}
	}
	require.Len(t, colors, 4)
	assert.Equal(t, theme.RGB{R: 0, G: 0.5, B: 0}, colors[0], "history marker color")
	assert.Equal(t, theme.RGB{R: 0.9, G: 0.9, B: 0.9}, colors[1], "default text for the = separator")
	assert.Equal(t, theme.RGB{R: 0.2, G: 0.4, B: 0.6}, colors[2], "selection tint for the value")
	assert.Equal(t, theme.RGB{R: 0.9, G: 0.9, B: 0.9}, colors[3], "default text restored")
}

func TestOnResultIndicesIncrement(t *testing.T) {
	display, sink := newTestDisplay(t)

	require.NoError(t, display.OnResult(2))
	require.NoError(t, display.OnResult("spam"))
	require.NoError(t, display.OnResult(3.5))

	got := sink.Text()
	assert.Contains(t, got, "Out[0] = 2\n")
	assert.Contains(t, got, `Out[1] = "spam"`)
	assert.Contains(t, got, "Out[2] = 3.5\n")

	h := display.History()
	require.Equal(t, 3, h.Len())
	v, ok := h.At(1)
	require.True(t, ok)
	assert.Equal(t, "spam", v)
	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, 3.5, last)
}

func TestOnResultNilSuppressed(t *testing.T) {
	display, sink := newTestDisplay(t)

	require.NoError(t, display.OnResult(1))
	require.NoError(t, display.OnResult(nil))

	assert.Equal(t, 1, display.History().Len(), "nil sentinel must not be recorded")
	last, ok := display.History().Last()
	require.True(t, ok)
	assert.Equal(t, 1, last, "nil sentinel must not move the last value")
	assert.NotContains(t, sink.Text(), "Out[1]")
}

func TestOnResultShowNil(t *testing.T) {
	display, sink := newTestDisplay(t, WithShowNil())

	require.NoError(t, display.OnResult(nil))

	assert.Equal(t, 1, display.History().Len())
	assert.Contains(t, sink.Text(), "Out[0] = nil\n")
	last, ok := display.History().Last()
	require.True(t, ok)
	assert.Nil(t, last)
}

type fancy struct{}

func (fancy) Repr() string { return "<fancy object>" }

func TestOnResultRepresenter(t *testing.T) {
	display, sink := newTestDisplay(t)

	require.NoError(t, display.OnResult(fancy{}))
	assert.Contains(t, sink.Text(), "Out[0] = <fancy object>\n")
}

func TestOnResultThemeFailureVisible(t *testing.T) {
	sink := &hooktest.RecordSink{}
	broken := &theme.Dict{Colors: map[string]theme.RGB{"error_text": {R: 1}}}
	display, _ := Install(sink, broken)

	err := display.OnResult(2)
	assert.Error(t, err, "a failed theme lookup must surface, never be swallowed")
}

func TestOnResultInjectedHistory(t *testing.T) {
	hist := NewHistory()
	hist.Append("pre-existing")
	sink := &hooktest.RecordSink{}
	display, _ := Install(sink, hooktest.Theme(), WithHistory(hist))

	require.NoError(t, display.OnResult(2))
	assert.Contains(t, sink.Text(), "Out[1] = 2\n", "indices continue from the injected history")
}
