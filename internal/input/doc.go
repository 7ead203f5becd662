// Package input holds the state shared between the window event goroutine
// and the render goroutine: the set of held keys, the accumulated mouse
// delta, and the key to action bindings.
package input
