package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// StdOutLogger implements the Logger interface using charmbracelet/log
type StdOutLogger struct {
	logger *log.Logger
}

// NewStdOutLogger creates a new StdOutLogger that writes messages at info
// level and above
func NewStdOutLogger() *StdOutLogger {
	return NewStdOutLoggerWithOptions(os.Stdout, log.InfoLevel)
}

// NewStdOutLoggerWithOptions creates a new StdOutLogger writing to w at the
// given level
func NewStdOutLoggerWithOptions(w io.Writer, level log.Level) *StdOutLogger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "configdata",
	})

	return &StdOutLogger{logger: logger}
}

// ParseLevel converts a level name such as "debug" into a log.Level, unknown
// names return the info level
func ParseLevel(level string) log.Level {
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}

	return l
}

var _ Logger = (*StdOutLogger)(nil)

func (l *StdOutLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

func (l *StdOutLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

func (l *StdOutLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

func (l *StdOutLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
}

func (l *StdOutLogger) With(args ...interface{}) Logger {
	return &StdOutLogger{logger: l.logger.With(args...)}
}
