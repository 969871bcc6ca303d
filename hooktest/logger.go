// Copyright © 2024 The tracehook authors

package hooktest

import (
	"io"
	"strings"
	"testing"
)

// Logger is an io.Writer that forwards each complete output line to
// t.Log, so hook output shows up interleaved with test logs. Call
// Flush at the end of the test to emit any trailing partial line.
type Logger struct {
	t    testing.TB
	tail strings.Builder
}

var _ io.Writer = (*Logger)(nil)

func NewLogger(t testing.TB) *Logger {
	return &Logger{t: t}
}

func (log *Logger) Write(b []byte) (int, error) {
	log.tail.Write(b)
	for {
		s := log.tail.String()
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			return len(b), nil
		}
		log.t.Log(s[:i])
		log.tail.Reset()
		log.tail.WriteString(s[i+1:])
	}
}

func (log *Logger) Flush() {
	if log.tail.Len() == 0 {
		return
	}
	log.t.Log(log.tail.String())
	log.tail.Reset()
}
