package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger creates a test logger that captures output
type TestLogger struct {
	*zerolog.Logger
	Buffer *bytes.Buffer
}

// NewTestLogger creates a new test logger that captures output
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	buf := &bytes.Buffer{}
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := zerolog.New(buf).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Logger()

	t.Cleanup(func() {
		zerolog.SetGlobalLevel(oldLevel)
	})

	return &TestLogger{
		Logger: &logger,
		Buffer: buf,
	}
}

// Contains reports whether the captured output contains the substring.
func (l *TestLogger) Contains(s string) bool {
	return strings.Contains(l.Buffer.String(), s)
}

// Lines returns the captured output split into lines.
func (l *TestLogger) Lines() []string {
	out := strings.TrimSpace(l.Buffer.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
