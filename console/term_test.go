// Copyright © 2024 The tracehook authors

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tracehook/tracehook/theme"
)

func TestTermColored(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf, ColorAlways)

	if err := term.SetColor(theme.RGB{R: 1, G: 0, B: 0}); err != nil {
		t.Fatal(err)
	}
	if err := term.Write("boom"); err != nil {
		t.Fatal(err)
	}
	if err := term.Reset(); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "\x1b[38;2;255;0;0m")
	assertContains(t, got, "boom")
	assertContains(t, got, "\x1b[0m")
}

func TestTermChannelScaling(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf, ColorAlways)

	// 0.5 scales to 128, and out-of-range channels clamp.
	if err := term.SetColor(theme.RGB{R: 0.5, G: -1, B: 2}); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "38;2;128;0;255")
}

func TestTermColorNever(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf, ColorNever)

	if err := term.SetColor(theme.RGB{R: 1, G: 0, B: 0}); err != nil {
		t.Fatal(err)
	}
	if err := term.Write("plain"); err != nil {
		t.Fatal(err)
	}
	if err := term.Reset(); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "plain" {
		t.Errorf("expected bare text, got %q", got)
	}
}

func TestTermAutoNonTerminal(t *testing.T) {
	// A bytes.Buffer is not a terminal, so ColorAuto must disable color.
	var buf bytes.Buffer
	term := NewTerm(&buf, ColorAuto)

	if err := term.SetColor(theme.RGB{R: 1, G: 0, B: 0}); err != nil {
		t.Fatal(err)
	}
	if err := term.Write("x"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "x" {
		t.Errorf("expected bare text, got %q", got)
	}
}

func TestTermHyperlink(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf, ColorAlways)

	if err := term.WriteLink("script.py", "pythonista3://?exec=x"); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	assertContains(t, got, "script.py")
	assertContains(t, got, "pythonista3://?exec=x")
	assertContains(t, got, "\x1b]8;") // OSC 8 wrapper
}

func TestTermHyperlinkDegrades(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf, ColorNever)

	if err := term.WriteLink("script.py", "pythonista3://?exec=x"); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "script.py" {
		t.Errorf("expected display text only, got %q", got)
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"auto", ColorAuto},
		{"always", ColorAlways},
		{"never", ColorNever},
		{"bogus", ColorAuto},
		{"", ColorAuto},
	}
	for _, tt := range tests {
		if got := ParseColorMode(tt.in); got != tt.want {
			t.Errorf("ParseColorMode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output does not contain %q:\n%s", want, got)
	}
}
