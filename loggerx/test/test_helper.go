package loggerxtest

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/clinia/clamp/loggerx"
)

func NewTestLogger(t testing.TB) *loggerx.Logger {
	t.Helper()
	return &loggerx.Logger{Logger: slog.New(slog.DiscardHandler)}
}

// NewTestLoggerWithJSONBuffer logs every level, including debug, as JSON lines.
func NewTestLoggerWithJSONBuffer(t testing.TB) (*loggerx.Logger, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	l, err := loggerx.New(buf, loggerx.Config{Level: "debug", Format: loggerx.FormatJSON})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return l, buf
}
