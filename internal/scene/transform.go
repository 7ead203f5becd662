package scene

import "github.com/go-gl/mathgl/mgl32"

// LocalMatrix composes the node's transform relative to its parent:
//
//	T(position) * T(pivot) * Rz * Ry * Rx * S(scale) * T(-pivot)
//
// Points are scaled and rotated about the reference point, then moved by
// the node's position.
func LocalMatrix(n *Node) mgl32.Mat4 {
	ref := n.ReferencePoint
	m := mgl32.Translate3D(-ref.X(), -ref.Y(), -ref.Z())
	m = mgl32.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z()).Mul4(m)
	m = mgl32.HomogRotate3DX(n.Rotation.X()).Mul4(m)
	m = mgl32.HomogRotate3DY(n.Rotation.Y()).Mul4(m)
	m = mgl32.HomogRotate3DZ(n.Rotation.Z()).Mul4(m)
	m = mgl32.Translate3D(ref.X(), ref.Y(), ref.Z()).Mul4(m)
	m = mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z()).Mul4(m)
	return m
}

// Propagate recomputes World for id and its whole subtree. The frame loop
// calls it from the root with mgl32.Ident4() before any draw, so world
// matrices never include the camera.
func (g *Graph) Propagate(id NodeID, parentWorld mgl32.Mat4) {
	if !g.Contains(id) {
		return
	}
	n := &g.nodes[id]
	n.World = parentWorld.Mul4(LocalMatrix(n))
	for _, c := range n.children {
		g.Propagate(c, n.World)
	}
}
