package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/starvoyage/pkg/math3d"
)

// tiltAxis animates one tilt angle toward a decaying target using a
// critically damped spring, so banking eases in and settles without
// overshoot when the key is released.
type tiltAxis struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
}

func newTiltAxis(fps int) tiltAxis {
	// Frequency 4.0, damping 1.0 = critically damped (no overshoot)
	return tiltAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *tiltAxis) update() {
	a.position, a.velocity = a.spring.Update(a.position, a.velocity, a.target)
	// Targets drift back to neutral so the craft levels out on its own.
	a.target *= 0.9
}

// Craft is the player-controlled ship. Movement is axis-aligned in the
// orbital plane; each move nudges a tilt target so the hull banks into
// the motion, and lateral moves also swing the follow camera.
type Craft struct {
	Position math3d.Vec3
	Speed    float64

	tiltX     tiltAxis // Roll, radians
	tiltZ     tiltAxis // Pitch, radians
	cameraYaw tiltAxis // Extra camera swing, degrees
}

// NewCraft creates a craft at the given position with spring animation
// tuned for the given frame rate.
func NewCraft(position math3d.Vec3, fps int) *Craft {
	return &Craft{
		Position:  position,
		Speed:     0.15,
		tiltX:     newTiltAxis(fps),
		tiltZ:     newTiltAxis(fps),
		cameraYaw: newTiltAxis(fps),
	}
}

func (c *Craft) MoveForward() {
	c.Position.Z -= c.Speed
	c.tiltZ.target = -0.15
}

func (c *Craft) MoveBackward() {
	c.Position.Z += c.Speed
	c.tiltZ.target = 0.1
}

func (c *Craft) MoveLeft() {
	c.Position.X -= c.Speed
	c.tiltX.target = -0.2
	c.cameraYaw.target = -15.0
}

func (c *Craft) MoveRight() {
	c.Position.X += c.Speed
	c.tiltX.target = 0.2
	c.cameraYaw.target = 15.0
}

// UpdateAnimation advances the tilt springs one frame. Call once per
// frame after input handling.
func (c *Craft) UpdateAnimation() {
	c.tiltX.update()
	c.tiltZ.update()
	c.cameraYaw.update()
}

// CameraYaw returns the extra camera swing angle in degrees induced by
// lateral movement.
func (c *Craft) CameraYaw() float64 {
	return c.cameraYaw.position
}

// Rotation returns the craft's current orientation in radians: a fixed
// quarter-turn heading plus the animated pitch and roll tilts.
func (c *Craft) Rotation() math3d.Vec3 {
	return math3d.V3(c.tiltZ.position, math.Pi/2, c.tiltX.position)
}

// ModelMatrix returns the craft's model matrix at its display scale.
func (c *Craft) ModelMatrix() math3d.Mat4 {
	const craftScale = 0.3
	return modelMatrix(c.Position, craftScale, c.Rotation())
}
