package animation

import "math"

// Heading is a position on the ground plane plus an attitude.
type Heading struct {
	X, Z             float32
	Roll, Pitch, Yaw float32
}

const (
	headingStep  = 0.05
	pathSize     = 15.0
	circuitSpeed = 0.8
)

// SimpleHeading returns a point on a figure-eight circuit at time t. The
// attitude is derived from a short look-ahead along the path: the nose
// points along the direction of travel and dips with speed.
func SimpleHeading(t float32) Heading {
	tt := float64(t)

	x := pathSize * math.Sin(2*tt*circuitSpeed)
	xNext := pathSize * math.Sin(2*(tt+headingStep)*circuitSpeed)
	z := 3 * pathSize * math.Cos(tt*circuitSpeed)
	zNext := 3 * pathSize * math.Cos((tt+headingStep)*circuitSpeed)

	dx, dz := xNext-x, zNext-z

	return Heading{
		X:     float32(x),
		Z:     float32(z),
		Roll:  float32(math.Cos(tt*circuitSpeed) * 0.5),
		Pitch: float32(-0.175 * math.Hypot(dx, dz)),
		Yaw:   float32(math.Pi + math.Atan2(dx, dz)),
	}
}
