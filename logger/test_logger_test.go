package logger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTestLoggerBuffersEntries(t *testing.T) {
	logger := NewTestLogger(t)

	logger.Info("Message with pairs", "key1", "value1", "key2", "value2")
	logger.Debug("Message with odd args", "key1", "value1", "single")
	logger.Warn("Message with no args")
	logger.Error("Message with mixed types", "string", "text", "number", 42)

	entries := logger.Entries()
	require.Len(t, entries, 4)
	require.Equal(t, "Message with pairs", entries[0].Message)
	require.Len(t, entries[0].Args, 4)
	require.Equal(t, []string{"Message with no args"}, logger.Messages("WARN"))
}

func TestTestLoggerWithAddsFieldsAndSharesBuffer(t *testing.T) {
	logger := NewTestLogger(t)

	child := logger.With("location", "classpath:/config/")
	child.Debug("skipping missing resource", "resource", "application.hcl")

	entries := logger.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, []interface{}{"location", "classpath:/config/", "resource", "application.hcl"}, entries[0].Args)
}

func TestTestLoggerIsSafeForConcurrentUse(t *testing.T) {
	logger := NewTestLogger(t)

	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("Concurrent message", "goroutine", id)
		}(i)
	}

	wg.Wait()

	require.Len(t, logger.Entries(), 10)
}

func TestFormatEntryFormatsArgs(t *testing.T) {
	e := Entry{
		Level:     "INFO",
		Message:   "resolved",
		Args:      []interface{}{"count", 2, "dangling"},
		Timestamp: time.Date(2024, 1, 1, 10, 11, 12, 0, time.UTC),
	}

	require.Equal(t, "[10:11:12.000] [INFO] resolved count=2 dangling", formatEntry(e))
}
