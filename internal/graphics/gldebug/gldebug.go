// Package gldebug forwards OpenGL debug messages to a structured logger.
package gldebug

import (
	"context"
	"log/slog"
)

// Message is one driver report, with enums already turned into names.
type Message struct {
	Source   string
	Type     string
	Severity string
	ID       uint32
	Text     string
	// set for DEBUG_TYPE_ERROR reports
	Error bool
}

// Level is the log level a message is reported at: errors at error level,
// everything else at debug.
func (m Message) Level() slog.Level {
	if m.Error {
		return slog.LevelError
	}
	return slog.LevelDebug
}

// Log writes m to logger.
func Log(logger *slog.Logger, m Message) {
	logger.Log(context.Background(), m.Level(), "opengl debug message",
		"source", m.Source,
		"type", m.Type,
		"severity", m.Severity,
		"id", m.ID,
		"message", m.Text)
}
