// Package logging provides leveled, component-scoped logging.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvVar names the environment variable that selects the log level.
const EnvVar = "RAVANA_LOG"

// Level represents the severity level of a log message.
type Level int

const (
	// LevelTrace is for per-keystroke tracing.
	LevelTrace Level = iota
	// LevelDebug is for detailed debugging information.
	LevelDebug
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level %q (must be trace, debug, info, warn or error)", s)
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Config configures the shared logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
}

// Logger writes leveled messages with attached fields.
type Logger struct {
	entry *logrus.Entry
}

// base is shared by every Logger so Configure applies everywhere.
var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000",
	})
	return l
}

// Configure sets the level and output of the shared logger.
func Configure(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	base.SetOutput(cfg.Output)
	base.SetLevel(cfg.Level.logrus())
}

// LevelFromEnv returns the level named by RAVANA_LOG, or fallback when the
// variable is unset or invalid.
func LevelFromEnv(fallback Level) Level {
	v, ok := os.LookupEnv(EnvVar)
	if !ok {
		return fallback
	}
	l, err := ParseLevel(v)
	if err != nil {
		return fallback
	}
	return l
}

// Get returns the application logger.
func Get() *Logger {
	return &Logger{entry: logrus.NewEntry(base)}
}

// Component returns a logger tagged with a component name.
func Component(name string) *Logger {
	return Get().WithComponent(name)
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// WithError returns a new logger with the error field set.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{entry: l.entry.WithError(err)}
}

// Trace logs a trace message.
func (l *Logger) Trace(msg string, args ...any) {
	l.entry.Tracef(msg, args...)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.entry.Debugf(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.entry.Infof(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.entry.Warnf(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.entry.Errorf(msg, args...)
}

// Null returns a logger that discards all output.
func Null() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{entry: logrus.NewEntry(l)}
}
