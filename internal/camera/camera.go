// Package camera provides the free-fly view transform and the projection
// used to build the view-projection matrix each frame.
package camera

import (
	"mini-scene/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection handles the perspective matrix
type Projection struct {
	FOV    float32 // vertical, radians
	Aspect float32
	Near   float32
	Far    float32
}

func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(p.FOV, p.Aspect, p.Near, p.Far)
}

// FreeFly accumulates keyboard driven moves into a single view transform.
// Every step is premultiplied, so moves are along the current view axes.
type FreeFly struct {
	Transform mgl32.Mat4

	// units per second
	MoveSpeed float32
	// radians per frame, not scaled by frame time
	TurnStep float32
}

// NewFreeFly creates a camera at identity.
func NewFreeFly(moveSpeed, turnStep float32) *FreeFly {
	return &FreeFly{
		Transform: mgl32.Ident4(),
		MoveSpeed: moveSpeed,
		TurnStep:  turnStep,
	}
}

// Apply performs one action for a frame lasting dt seconds. Actions the
// camera does not know are ignored.
func (c *FreeFly) Apply(action input.Action, dt float32) {
	d := c.MoveSpeed * dt
	switch action {
	case input.ActionMoveUp:
		c.translate(0, -d, 0)
	case input.ActionMoveDown:
		c.translate(0, d, 0)
	case input.ActionMoveLeft:
		c.translate(d, 0, 0)
	case input.ActionMoveRight:
		c.translate(-d, 0, 0)
	case input.ActionMoveForward:
		c.translate(0, 0, d)
	case input.ActionMoveBackward:
		c.translate(0, 0, -d)
	case input.ActionPitchUp:
		c.rotate(mgl32.Vec3{-1, 0, 0})
	case input.ActionPitchDown:
		c.rotate(mgl32.Vec3{1, 0, 0})
	case input.ActionYawLeft:
		c.rotate(mgl32.Vec3{0, -1, 0})
	case input.ActionYawRight:
		c.rotate(mgl32.Vec3{0, 1, 0})
	case input.ActionResetCamera:
		c.Reset()
	}
}

// Look receives the mouse movement of a frame. Mouse look is not wired up;
// the delta is only consumed.
func (c *FreeFly) Look(dx, dy float32) {}

// Reset returns the camera to identity.
func (c *FreeFly) Reset() {
	c.Transform = mgl32.Ident4()
}

// ViewProjection returns proj * Transform * offset.
func (c *FreeFly) ViewProjection(proj mgl32.Mat4, offset mgl32.Vec3) mgl32.Mat4 {
	return proj.Mul4(c.Transform).Mul4(mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()))
}

func (c *FreeFly) translate(x, y, z float32) {
	c.Transform = mgl32.Translate3D(x, y, z).Mul4(c.Transform)
}

func (c *FreeFly) rotate(axis mgl32.Vec3) {
	c.Transform = mgl32.HomogRotate3D(c.TurnStep, axis).Mul4(c.Transform)
}
