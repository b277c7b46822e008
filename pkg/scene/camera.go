package scene

import (
	"math"

	"github.com/taigrr/starvoyage/pkg/math3d"
)

// Camera orbits the craft at a fixed angular offset. Angles are kept in
// degrees to match the input granularity; conversion happens once in
// ViewMatrix.
type Camera struct {
	Yaw      float64 // Degrees around the craft
	Pitch    float64 // Degrees of elevation
	Distance float64

	MinDistance float64
	MaxDistance float64
}

// NewCamera returns a camera positioned behind and slightly above the
// craft at a comfortable third-person distance.
func NewCamera() *Camera {
	return &Camera{
		Yaw:         62.0,
		Pitch:       10.0,
		Distance:    5.0,
		MinDistance: 1.5,
		MaxDistance: 8.0,
	}
}

// ViewMatrix computes the look-at view matrix for a camera orbiting
// target. shipYaw is the extra swing from lateral craft movement, in
// degrees; it combines with the camera's own yaw so the view leads the
// turn.
func (c *Camera) ViewMatrix(target math3d.Vec3, shipYaw float64) math3d.Mat4 {
	combinedYaw := (c.Yaw + shipYaw) * math.Pi / 180.0
	pitch := c.Pitch * math.Pi / 180.0

	eye := math3d.V3(
		target.X+c.Distance*math.Cos(combinedYaw)*math.Cos(pitch),
		target.Y+c.Distance*math.Sin(pitch),
		target.Z+c.Distance*math.Sin(combinedYaw)*math.Cos(pitch),
	)
	return math3d.LookAt(eye, target, math3d.Up())
}

// Rotate adjusts yaw and pitch from a pointer drag, clamping pitch
// short of the poles to keep the look-at basis well defined.
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.Yaw += deltaX * 0.3
	c.Pitch -= deltaY * 0.3
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Zoom moves the camera along its view ray. Positive delta zooms in.
// Distance is clamped so the craft stays fully visible at minimum zoom.
func (c *Camera) Zoom(delta float64) {
	c.Distance -= delta * 0.5
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
