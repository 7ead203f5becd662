package input

import (
	"slices"
	"sync"
)

// Key identifies a physical key. The window layer passes its own key codes
// through unchanged.
type Key int

// Action represents a logical action, not a physical key
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBackward
	ActionPitchUp
	ActionPitchDown
	ActionYawLeft
	ActionYawRight
	ActionResetCamera
	ActionCapture
	ActionToggleWireframe
	ActionCount // Sentinel value for array sizing
)

// Manager tracks the keys currently held and the mouse movement since the
// last snapshot. The event goroutine writes to it; the render goroutine
// reads it with TrySnapshot once per frame.
type Manager struct {
	mu sync.Mutex

	keyToActions map[Key][]Action

	// pressed keys in the order they went down
	pressed []Key

	// set on press, cleared by the next successful snapshot
	justPressed [ActionCount]bool

	mouseDX, mouseDY float32
}

// NewManager creates a Manager without bindings.
func NewManager() *Manager {
	return &Manager{
		keyToActions: make(map[Key][]Action),
		pressed:      make([]Key, 0, 10),
	}
}

// BindKey binds a physical key to a logical action.
// Several keys may share an action and one key may drive several actions.
func (m *Manager) BindKey(key Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// HandleKeyEvent records a press or release. Pressing a held key again and
// releasing a key that is not held are both no-ops.
func (m *Manager) HandleKeyEvent(key Key, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.Index(m.pressed, key)
	switch {
	case pressed && i < 0:
		m.pressed = append(m.pressed, key)
		for _, act := range m.keyToActions[key] {
			m.justPressed[act] = true
		}
	case !pressed && i >= 0:
		m.pressed = slices.Delete(m.pressed, i, i+1)
	}
}

// HandleMouseMove accumulates relative mouse movement.
func (m *Manager) HandleMouseMove(dx, dy float32) {
	m.mu.Lock()
	m.mouseDX += dx
	m.mouseDY += dy
	m.mu.Unlock()
}

// Snapshot is the input state handed to one frame.
type Snapshot struct {
	// Held lists the actions of every held key, in key press order.
	Held []Action
	// JustPressed lists actions whose key went down since the last snapshot.
	JustPressed []Action
	// Mouse movement accumulated since the last snapshot.
	MouseDX, MouseDY float32
}

// TrySnapshot copies the input state without blocking. The mouse delta and
// the just-pressed flags are reset. If the event goroutine holds the lock
// it returns false and the frame proceeds without input.
func (m *Manager) TrySnapshot() (Snapshot, bool) {
	if !m.mu.TryLock() {
		return Snapshot{}, false
	}
	defer m.mu.Unlock()

	var s Snapshot
	for _, key := range m.pressed {
		s.Held = append(s.Held, m.keyToActions[key]...)
	}
	for act, on := range m.justPressed {
		if on {
			s.JustPressed = append(s.JustPressed, Action(act))
			m.justPressed[act] = false
		}
	}
	s.MouseDX, s.MouseDY = m.mouseDX, m.mouseDY
	m.mouseDX, m.mouseDY = 0, 0
	return s, true
}

// Has reports whether action is in the list.
func Has(actions []Action, action Action) bool {
	return slices.Contains(actions, action)
}
