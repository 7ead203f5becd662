package gldebug

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"error", Message{Type: "error", Severity: "high", Error: true, Text: "invalid enum"}, "level=ERROR"},
		{"performance", Message{Type: "performance", Severity: "medium", Text: "buffer moved"}, "level=DEBUG"},
		{"notification", Message{Type: "other", Severity: "notification", Text: "buffer info"}, "level=DEBUG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			Log(logger, tt.msg)
			out := buf.String()
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, tt.msg.Text)
			assert.Contains(t, out, "severity="+tt.msg.Severity)
		})
	}
}

func TestDebugMessagesHiddenAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Log(logger, Message{Type: "other", Text: "quiet"})
	assert.Empty(t, buf.String())

	Log(logger, Message{Type: "error", Error: true, Text: "loud"})
	assert.Contains(t, buf.String(), "loud")
}
