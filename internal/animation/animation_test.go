package animation

import (
	"math"
	"testing"

	"mini-scene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSpin(t *testing.T) {
	g := scene.New()
	tail, rotor := g.Create(), g.Create()

	table := Table{}.
		Add(tail, Spin(AxisX, 5)).
		Add(rotor, Spin(AxisY, 5))
	table.Apply(g, 2)

	assert.Equal(t, mgl32.Vec3{10, 0, 0}, g.Node(tail).Rotation)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, g.Node(rotor).Rotation)
}

func TestApplySkipsUnknownNodes(t *testing.T) {
	g := scene.New()
	id := g.Create()
	table := Table{{Node: 42, Animate: Spin(AxisZ, 1)}, {Node: id}}
	assert.NotPanics(t, func() { table.Apply(g, 1) })
	assert.Equal(t, mgl32.Vec3{}, g.Node(id).Rotation)
}

func TestLaterTracksWin(t *testing.T) {
	g := scene.New()
	id := g.Create()
	Table{}.Add(id, Spin(AxisY, 1)).Add(id, Spin(AxisY, 3)).Apply(g, 1)
	assert.Equal(t, float32(3), g.Node(id).Rotation.Y())
}

func TestSimpleHeadingAtZero(t *testing.T) {
	h := SimpleHeading(0)

	dx := 15 * math.Sin(2*0.05*0.8)
	dz := 45*math.Cos(0.05*0.8) - 45
	assert.InDelta(t, 0, h.X, 1e-6)
	assert.InDelta(t, 45, h.Z, 1e-5)
	assert.InDelta(t, 0.5, h.Roll, 1e-6)
	assert.InDelta(t, -0.175*math.Hypot(dx, dz), h.Pitch, 1e-6)
	assert.InDelta(t, math.Pi+math.Atan2(dx, dz), h.Yaw, 1e-5)
}

func TestSimpleHeadingIsPeriodic(t *testing.T) {
	period := float32(2 * math.Pi / 0.8)
	a, b := SimpleHeading(1.3), SimpleHeading(1.3+period)
	assert.InDelta(t, a.X, b.X, 1e-3)
	assert.InDelta(t, a.Z, b.Z, 1e-3)
	assert.InDelta(t, a.Roll, b.Roll, 1e-4)
}

func TestFollowHeading(t *testing.T) {
	g := scene.New()
	body := g.Create()
	g.Node(body).Position[1] = 7

	Table{}.Add(body, FollowHeading(0.75)).Apply(g, 2)

	h := SimpleHeading(2.75)
	n := g.Node(body)
	assert.Equal(t, mgl32.Vec3{h.X, 7, h.Z}, n.Position)
	assert.Equal(t, mgl32.Vec3{h.Pitch, h.Yaw, h.Roll}, n.Rotation)
}
