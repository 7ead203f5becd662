package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// makeWideGraph builds a root with fanout children per node, depth levels
// deep, every node animated away from identity.
func makeWideGraph(fanout, depth int) (*Graph, NodeID) {
	g := New()
	root := g.Create()
	level := []NodeID{root}
	for d := 0; d < depth; d++ {
		var next []NodeID
		for _, parent := range level {
			for i := 0; i < fanout; i++ {
				id := g.CreateWithGeometry(Geometry{VAO: uint32(g.Len()), IndexCount: 36})
				n := g.Node(id)
				n.Position = mgl32.Vec3{float32(i), 1, 0}
				n.Rotation = mgl32.Vec3{0.1, 0.2, 0.3}
				n.ReferencePoint = mgl32.Vec3{0, 0.5, 0}
				g.MustAddChild(parent, id)
				next = append(next, id)
			}
		}
		level = next
	}
	return g, root
}

func BenchmarkPropagate(b *testing.B) {
	g, root := makeWideGraph(4, 5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Propagate(root, mgl32.Ident4())
	}
}

func BenchmarkDraw(b *testing.B) {
	g, root := makeWideGraph(4, 5)
	g.Propagate(root, mgl32.Ident4())
	vp := mgl32.Perspective(mgl32.DegToRad(90), 16.0/9.0, 1, 1000)
	d := DrawerFunc(func(Geometry, mgl32.Mat4, mgl32.Mat4) {})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Draw(root, vp, d)
	}
}
