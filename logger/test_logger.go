package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestLogger implements the Logger interface and buffers logs until the test
// fails, successful tests produce no log output
type TestLogger struct {
	t      testing.TB
	fields []interface{}
	sink   *logSink
}

// Entry is a single buffered log message
type Entry struct {
	Level     string
	Message   string
	Args      []interface{}
	Timestamp time.Time
}

type logSink struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTestLogger creates a new TestLogger that will output logs only on test failure
func NewTestLogger(t testing.TB) *TestLogger {
	logger := &TestLogger{
		t:    t,
		sink: &logSink{},
	}

	t.Cleanup(func() {
		logger.flushIfFailed()
	})

	return logger
}

var _ Logger = (*TestLogger)(nil)

func (l *TestLogger) Info(msg string, args ...interface{}) {
	l.addEntry("INFO", msg, args)
}

func (l *TestLogger) Debug(msg string, args ...interface{}) {
	l.addEntry("DEBUG", msg, args)
}

func (l *TestLogger) Warn(msg string, args ...interface{}) {
	l.addEntry("WARN", msg, args)
}

func (l *TestLogger) Error(msg string, args ...interface{}) {
	l.addEntry("ERROR", msg, args)
}

// With returns a child logger sharing the same buffer
func (l *TestLogger) With(args ...interface{}) Logger {
	fields := append(append([]interface{}{}, l.fields...), args...)

	return &TestLogger{t: l.t, fields: fields, sink: l.sink}
}

// Entries returns a copy of the buffered messages
func (l *TestLogger) Entries() []Entry {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	return append([]Entry{}, l.sink.entries...)
}

// Messages returns the buffered messages for the given level
func (l *TestLogger) Messages(level string) []string {
	msgs := []string{}
	for _, e := range l.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}

	return msgs
}

func (l *TestLogger) addEntry(level, msg string, args []interface{}) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	l.sink.entries = append(l.sink.entries, Entry{
		Level:     level,
		Message:   msg,
		Args:      append(append([]interface{}{}, l.fields...), args...),
		Timestamp: time.Now(),
	})
}

func (l *TestLogger) flushIfFailed() {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if l.t.Failed() {
		l.t.Log("=== Buffered Logs (test failed) ===")
		for _, entry := range l.sink.entries {
			l.t.Log(formatEntry(entry))
		}
		l.t.Log("=== End Buffered Logs ===")
	}

	l.sink.entries = l.sink.entries[:0]
}

func formatEntry(entry Entry) string {
	timestamp := entry.Timestamp.Format("15:04:05.000")
	msg := fmt.Sprintf("[%s] [%s] %s", timestamp, entry.Level, entry.Message)

	// format args as key value pairs like charmbracelet/log
	var parts []string
	for i := 0; i < len(entry.Args); i += 2 {
		if i+1 < len(entry.Args) {
			parts = append(parts, fmt.Sprintf("%v=%v", entry.Args[i], entry.Args[i+1]))
		} else {
			parts = append(parts, fmt.Sprintf("%v", entry.Args[i]))
		}
	}

	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	return msg
}
