package main

import (
	"mini-scene/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var defaultBindings = map[glfw.Key]input.Action{
	glfw.KeyW:     input.ActionMoveUp,
	glfw.KeyS:     input.ActionMoveDown,
	glfw.KeyA:     input.ActionMoveLeft,
	glfw.KeyD:     input.ActionMoveRight,
	glfw.KeyQ:     input.ActionMoveForward,
	glfw.KeyE:     input.ActionMoveBackward,
	glfw.KeyUp:    input.ActionPitchUp,
	glfw.KeyDown:  input.ActionPitchDown,
	glfw.KeyLeft:  input.ActionYawLeft,
	glfw.KeyRight: input.ActionYawRight,
	glfw.KeyR:     input.ActionResetCamera,
	glfw.KeyF:     input.ActionToggleWireframe,
	glfw.KeyF12:   input.ActionCapture,
}

func bindDefaultKeys(m *input.Manager) {
	for key, action := range defaultBindings {
		m.BindKey(input.Key(key), action)
	}
}

// installCallbacks routes window events into the input manager. Runs on
// the main thread; the callbacks fire from glfw.WaitEvents.
func installCallbacks(window *glfw.Window, m *input.Manager, size *framebufferSize) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			if key == glfw.KeyEscape {
				w.SetShouldClose(true)
				return
			}
			m.HandleKeyEvent(input.Key(key), true)
		case glfw.Release:
			m.HandleKeyEvent(input.Key(key), false)
		}
	})

	first := true
	var lastX, lastY float64
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if first {
			lastX, lastY = xpos, ypos
			first = false
			return
		}
		m.HandleMouseMove(float32(xpos-lastX), float32(ypos-lastY))
		lastX, lastY = xpos, ypos
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		size.Set(width, height)
	})
}
