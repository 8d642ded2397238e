package interfaces

// Logger defines the interface for logging throughout the library.
// The core never imports a logging package directly; adapters live in
// infrastructure/logger.
//
// Example usage:
//
//	logger.Debug("Feed fetched", map[string]interface{}{
//		"url":   "https://example.com/feed.xml",
//		"bytes": 18234,
//	})
//
//	logger.Warn("Cache write failed", map[string]interface{}{
//		"key":   "feed:https://example.com/feed.xml",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warnings indicate failures the library recovered from.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards every message. It is used when no logger is configured.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
