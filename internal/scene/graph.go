// Package scene implements the scene graph: an arena of transformable nodes,
// some bound to GPU geometry, plus the per-frame transform and draw passes.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrUnknownNode     = errors.New("scene: unknown node")
	ErrAlreadyAttached = errors.New("scene: node already has a parent")
	ErrCycle           = errors.New("scene: attachment would create a cycle")
)

// NodeID is a stable handle into a Graph. Handles are never reused.
type NodeID int32

// NoParent is the parent handle of a node that is not attached.
const NoParent NodeID = -1

// Geometry is an uploaded vertex array plus the number of indices to draw.
type Geometry struct {
	VAO        uint32
	IndexCount int32
}

// Bound reports whether the geometry refers to an actual vertex array with
// at least one index. A VAO with no indices is skipped too; mesh.Validate
// already rejects empty meshes, so no uploaded part is ever lost this way.
func (g Geometry) Bound() bool {
	return g.VAO != 0 && g.IndexCount > 0
}

// Node holds the local transform parameters of a scene node.
// Position, Rotation and Scale may be changed freely between frames;
// World is written by Propagate and should be treated as read-only.
type Node struct {
	Position       mgl32.Vec3
	Rotation       mgl32.Vec3 // Euler angles in radians, applied Z, Y, X
	Scale          mgl32.Vec3
	ReferencePoint mgl32.Vec3

	World mgl32.Mat4

	geometry Geometry
	parent   NodeID
	children []NodeID
}

// Geometry returns the geometry bound at creation.
func (n *Node) Geometry() Geometry {
	return n.geometry
}

// Graph owns every node. Parents reference their children by handle.
type Graph struct {
	nodes []Node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// Create adds an unattached group node with an identity transform.
func (g *Graph) Create() NodeID {
	return g.CreateWithGeometry(Geometry{})
}

// CreateWithGeometry adds an unattached node drawing the given geometry.
func (g *Graph) CreateWithGeometry(geom Geometry) NodeID {
	g.nodes = append(g.nodes, Node{
		Scale:    mgl32.Vec3{1, 1, 1},
		World:    mgl32.Ident4(),
		geometry: geom,
		parent:   NoParent,
	})
	return NodeID(len(g.nodes) - 1)
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Contains reports whether id refers to a node of this graph.
func (g *Graph) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the node for id, or nil if the handle is unknown.
func (g *Graph) Node(id NodeID) *Node {
	if !g.Contains(id) {
		return nil
	}
	return &g.nodes[id]
}

// Parent returns the parent of id, or NoParent.
func (g *Graph) Parent(id NodeID) NodeID {
	if !g.Contains(id) {
		return NoParent
	}
	return g.nodes[id].parent
}

// Children returns the ordered child handles of id.
// The returned slice must not be modified.
func (g *Graph) Children(id NodeID) []NodeID {
	if !g.Contains(id) {
		return nil
	}
	return g.nodes[id].children
}

// AddChild attaches child to parent. A node can be attached exactly once,
// and never below itself.
func (g *Graph) AddChild(parent, child NodeID) error {
	if !g.Contains(parent) {
		return fmt.Errorf("add child to %d: %w", parent, ErrUnknownNode)
	}
	if !g.Contains(child) {
		return fmt.Errorf("add child %d: %w", child, ErrUnknownNode)
	}
	if g.nodes[child].parent != NoParent {
		return fmt.Errorf("add child %d to %d: %w", child, parent, ErrAlreadyAttached)
	}
	for p := parent; p != NoParent; p = g.nodes[p].parent {
		if p == child {
			return fmt.Errorf("add child %d to %d: %w", child, parent, ErrCycle)
		}
	}

	g.nodes[child].parent = parent
	g.nodes[parent].children = append(g.nodes[parent].children, child)
	return nil
}

// MustAddChild is AddChild for static scene assembly; it panics on error.
func (g *Graph) MustAddChild(parent, child NodeID) {
	if err := g.AddChild(parent, child); err != nil {
		panic(err)
	}
}

// Walk visits id and its subtree depth first, parents before children.
func (g *Graph) Walk(id NodeID, fn func(id NodeID, n *Node)) {
	if !g.Contains(id) {
		return
	}
	fn(id, &g.nodes[id])
	for _, c := range g.nodes[id].children {
		g.Walk(c, fn)
	}
}
