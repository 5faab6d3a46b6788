package logger

// Logger defines the interface for logging
type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// With returns a child logger that adds the given key value pairs to
	// every message
	With(args ...interface{}) Logger
}

// NopLogger discards every message
type NopLogger struct{}

var _ Logger = NopLogger{}

func (NopLogger) Info(msg string, args ...interface{})  {}
func (NopLogger) Debug(msg string, args ...interface{}) {}
func (NopLogger) Warn(msg string, args ...interface{})  {}
func (NopLogger) Error(msg string, args ...interface{}) {}

func (n NopLogger) With(args ...interface{}) Logger {
	return n
}
