package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{" warn ", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"none", LogLevelNone},
		{"off", LogLevelNone},
		{"", LogLevelInfo},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), "input %q", tt.in)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LogLevelWarn)

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line", "enum", "Color")
	l.Error("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "enum=Color")
	assert.Contains(t, out, "error line")
}

func TestNew_NoneSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LogLevelNone)
	l.Error("should not appear")
	assert.Empty(t, buf.String())
}

func TestLogTag(t *testing.T) {
	SetLogTag("GO")
	defer SetLogTag("")

	assert.Equal(t, "GO", GetLogTag())

	var buf bytes.Buffer
	New(&buf, LogLevelInfo).Info("tagged")
	assert.Contains(t, buf.String(), "tag=GO")
}

func TestNewDefaultLogger(t *testing.T) {
	l := NewDefaultLogger()
	assert.NotNil(t, l)

	// must not panic
	l.Debug("test debug")
	l.Info("test info")
	l.Warn("test warn")
	l.Error("test error")
	Discard().Error("dropped")
}
