package main

import (
	"sync/atomic"

	"mini-scene/internal/config"
	"mini-scene/internal/graphics/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(cfg config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)

	return glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
}

// windowPresenter swaps the window's buffers at the end of a frame.
type windowPresenter struct {
	window *glfw.Window
}

func (p windowPresenter) Present() {
	p.window.SwapBuffers()
}

// framebufferSize hands resize events from the main thread to the render
// goroutine. Zero means no change is pending.
type framebufferSize struct {
	packed atomic.Uint64
}

func (s *framebufferSize) Set(width, height int) {
	s.packed.Store(uint64(uint32(width))<<32 | uint64(uint32(height)))
}

func (s *framebufferSize) take() (int, int, bool) {
	v := s.packed.Swap(0)
	if v == 0 {
		return 0, 0, false
	}
	return int(v >> 32), int(uint32(v)), true
}

// resizingRenderer applies pending framebuffer sizes before each frame.
type resizingRenderer struct {
	*renderer.Renderer
	size *framebufferSize
}

func (r resizingRenderer) BeginFrame(elapsed float32) {
	if w, h, ok := r.size.take(); ok {
		r.SetViewport(w, h)
	}
	r.Renderer.BeginFrame(elapsed)
}
