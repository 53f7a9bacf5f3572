// Package logger provides the leveled logger used across enumgen.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LogLevel defines the logging verbosity
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelNone  LogLevel = "none"
)

// ParseLogLevel maps a string to a LogLevel, defaulting to info
func ParseLogLevel(s string) LogLevel {
	switch LogLevel(strings.ToLower(strings.TrimSpace(s))) {
	case LogLevelDebug:
		return LogLevelDebug
	case LogLevelWarn, "warning":
		return LogLevelWarn
	case LogLevelError:
		return LogLevelError
	case LogLevelNone, "off":
		return LogLevelNone
	default:
		return LogLevelInfo
	}
}

// noneLevel is above every slog level so nothing is emitted
const noneLevel = slog.Level(100)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	case LogLevelNone:
		return noneLevel
	default:
		return slog.LevelInfo
	}
}

// Logger is the logging surface the rest of the module depends on
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	tagMu sync.RWMutex
	tag   string
)

// SetLogTag sets the tag attached to every record written by loggers from this package
func SetLogTag(t string) {
	tagMu.Lock()
	tag = t
	tagMu.Unlock()
}

// GetLogTag returns the current log tag
func GetLogTag() string {
	tagMu.RLock()
	defer tagMu.RUnlock()
	return tag
}

type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) with() *slog.Logger {
	if t := GetLogTag(); t != "" {
		return s.l.With("tag", t)
	}
	return s.l
}

func (s *slogLogger) Debug(msg string, args ...any) { s.with().Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.with().Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.with().Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.with().Error(msg, args...) }

// New returns a text logger writing to w at level
func New(w io.Writer, level LogLevel) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	return &slogLogger{l: slog.New(h)}
}

// NewDefaultLogger returns a logger backed by the slog default logger
func NewDefaultLogger() Logger {
	return &slogLogger{l: slog.Default()}
}

// Discard returns a logger that drops every record
func Discard() Logger {
	return New(io.Discard, LogLevelNone)
}

// SetupLogger installs a stderr text handler at level as the slog default
func SetupLogger(level LogLevel) {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.slogLevel()})
	slog.SetDefault(slog.New(h))
}
