package graphics

import (
	"log/slog"
	"unsafe"

	"mini-scene/internal/graphics/gldebug"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// EnableDebugOutput turns on synchronous debug output for the current
// context and forwards every message to logger. Needs a 4.3 context.
func EnableDebugOutput(logger *slog.Logger) {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		gldebug.Log(logger, gldebug.Message{
			Source:   debugSource(source),
			Type:     debugType(gltype),
			Severity: debugSeverity(severity),
			ID:       id,
			Text:     message,
			Error:    gltype == gl.DEBUG_TYPE_ERROR,
		})
	}, nil)
}

func debugSource(s uint32) string {
	switch s {
	case gl.DEBUG_SOURCE_API:
		return "api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window system"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	}
	return "other"
}

func debugType(t uint32) string {
	switch t {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined behavior"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_MARKER:
		return "marker"
	}
	return "other"
}

func debugSeverity(s uint32) string {
	switch s {
	case gl.DEBUG_SEVERITY_HIGH:
		return "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "medium"
	case gl.DEBUG_SEVERITY_LOW:
		return "low"
	}
	return "notification"
}
