package scene

import "github.com/go-gl/mathgl/mgl32"

// Drawer submits one piece of geometry with its model and mvp matrices.
type Drawer interface {
	DrawGeometry(geom Geometry, model, mvp mgl32.Mat4)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(geom Geometry, model, mvp mgl32.Mat4)

func (f DrawerFunc) DrawGeometry(geom Geometry, model, mvp mgl32.Mat4) {
	f(geom, model, mvp)
}

// Draw issues a draw call for every node in the subtree of id that has
// bound geometry and returns how many were issued. Group nodes draw
// nothing but their children are still visited. World matrices must be
// current, see Propagate.
func (g *Graph) Draw(id NodeID, viewProjection mgl32.Mat4, d Drawer) int {
	calls := 0
	g.Walk(id, func(_ NodeID, n *Node) {
		if n.geometry.Bound() {
			d.DrawGeometry(n.geometry, n.World, viewProjection.Mul4(n.World))
			calls++
		}
	})
	return calls
}
