// Package animation drives scene nodes from elapsed time through a
// declarative table instead of per-node code in the frame loop.
package animation

import (
	"mini-scene/internal/scene"
)

// Func updates a node from the seconds elapsed since the loop started.
type Func func(n *scene.Node, elapsed float32)

// Track binds an animation function to one node.
type Track struct {
	Node    scene.NodeID
	Animate Func
}

// Table is evaluated in order every frame, so later tracks on the same node
// win for the fields they both write.
type Table []Track

// Add appends a track and returns the table for chaining.
func (t Table) Add(id scene.NodeID, fn Func) Table {
	return append(t, Track{Node: id, Animate: fn})
}

// Apply runs every track against the graph. Tracks for unknown nodes are
// skipped.
func (t Table) Apply(g *scene.Graph, elapsed float32) {
	for _, tr := range t {
		if n := g.Node(tr.Node); n != nil && tr.Animate != nil {
			tr.Animate(n, elapsed)
		}
	}
}

// Axis selects a component of a node's rotation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Spin sets the rotation about axis to elapsed*rate radians.
func Spin(axis Axis, rate float32) Func {
	return func(n *scene.Node, elapsed float32) {
		n.Rotation[axis] = elapsed * rate
	}
}

// FollowHeading moves a node along SimpleHeading, shifted by offset seconds.
func FollowHeading(offset float32) Func {
	return func(n *scene.Node, elapsed float32) {
		h := SimpleHeading(elapsed + offset)
		n.Position[0] = h.X
		n.Position[2] = h.Z
		n.Rotation[2] = h.Roll
		n.Rotation[1] = h.Yaw
		n.Rotation[0] = h.Pitch
	}
}
