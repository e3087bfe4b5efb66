package common

import (
	"context"
	"sync"
)

// OperationLogger provides logging functionality for machine operations
type OperationLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger OperationLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) OperationLogger {
	if logger, ok := ctx.Value(loggerKey).(OperationLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
	// Do nothing
}

// LogEntry is a single recorded log line
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// MemoryLogger records log entries in memory for assertions in tests
type MemoryLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewMemoryLogger creates an empty in-memory logger
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

// Log records the entry
func (l *MemoryLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// Entries returns a copy of the recorded entries
func (l *MemoryLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
