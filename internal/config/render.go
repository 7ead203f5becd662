package config

import "sync"

// RenderSettings holds render configuration that input can toggle at
// runtime from the render goroutine while other goroutines read it.
type RenderSettings struct {
	mu        sync.RWMutex
	wireframe bool
}

var globalRenderSettings = &RenderSettings{}

// IsWireframeMode reports whether polygons are drawn as lines.
func IsWireframeMode() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

// SetWireframeMode sets the polygon mode.
func SetWireframeMode(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = enabled
}

// ToggleWireframeMode flips the polygon mode and returns the new value.
func ToggleWireframeMode() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = !globalRenderSettings.wireframe
	return globalRenderSettings.wireframe
}
