package logger

import (
	"github.com/skylar-games/case-opener/internal/domain/port/core"
)

// NoopLogger implements the Logger port without doing anything. Used by
// tests and when logging is disabled.
type NoopLogger struct{}

// NewNoopLogger creates a no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{}
}

// Debug does nothing
func (l *NoopLogger) Debug(message string, fields map[string]any) {}

// Info does nothing
func (l *NoopLogger) Info(message string, fields map[string]any) {}

// Warn does nothing
func (l *NoopLogger) Warn(message string, fields map[string]any) {}

// Error does nothing
func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush does nothing
func (l *NoopLogger) Flush() error {
	return nil
}
