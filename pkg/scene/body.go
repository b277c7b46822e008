// Package scene assembles the solar system: orbiting bodies, the player
// craft, the follow camera, and per-frame rendering order.
package scene

import (
	"math"

	"github.com/taigrr/starvoyage/pkg/math3d"
	"github.com/taigrr/starvoyage/pkg/render"
)

// Body is one celestial body on a circular orbit in the y≈0 plane. The
// sun is a Body with OrbitRadius 0.
type Body struct {
	Name     string
	Material render.Material
	Scale    float64

	OrbitRadius float64
	OrbitSpeed  float64 // Radians per time unit
	OrbitPhase  float64 // Radians, offset along the orbit
	YOffset     float64 // Vertical displacement of the orbital plane
	SpinSpeed   float64 // Radians per time unit around local Y
	Retrograde  bool    // Mirrors the orbit across the YZ plane
}

// Position returns the body's world-space center at the given time.
func (b Body) Position(time float64) math3d.Vec3 {
	if b.OrbitRadius == 0 {
		return math3d.V3(0, b.YOffset, 0)
	}

	angle := time*b.OrbitSpeed + b.OrbitPhase
	x := math.Cos(angle) * b.OrbitRadius
	if b.Retrograde {
		x = -x
	}
	return math3d.V3(x, b.YOffset, math.Sin(angle)*b.OrbitRadius)
}

// ModelMatrix returns translation * rotation * scale for the body at
// the given time. Only the Y spin animates.
func (b Body) ModelMatrix(time float64) math3d.Mat4 {
	return modelMatrix(b.Position(time), b.Scale, math3d.V3(0, time*b.SpinSpeed, 0))
}

// modelMatrix composes T * (Rz * Ry * Rx) * S from a translation, a
// uniform scale, and per-axis rotation angles in radians.
func modelMatrix(translation math3d.Vec3, scale float64, rotation math3d.Vec3) math3d.Mat4 {
	rot := math3d.RotateZ(rotation.Z).
		Mul(math3d.RotateY(rotation.Y)).
		Mul(math3d.RotateX(rotation.X))
	return math3d.Translate(translation).
		Mul(rot).
		Mul(math3d.ScaleUniform(scale))
}

// SolarSystem returns the nine bodies of the demo system, sun first.
// Orbit radii are deliberately non-monotonic with speed so pairs of
// planets drift in and out of conjunction.
func SolarSystem() []Body {
	return []Body{
		{Name: "sun", Material: render.MaterialStar, Scale: 5.0},
		{Name: "rocky", Material: render.MaterialRocky, Scale: 0.8,
			OrbitRadius: 8.0, OrbitSpeed: 0.3, SpinSpeed: 0.5},
		{Name: "gas", Material: render.MaterialGasGiant, Scale: 1.2,
			OrbitRadius: 12.0, OrbitSpeed: 0.15, YOffset: 0.5, SpinSpeed: 0.3, Retrograde: true},
		{Name: "ice", Material: render.MaterialIce, Scale: 0.7,
			OrbitRadius: 10.0, OrbitSpeed: 0.25, OrbitPhase: math.Pi * 0.5, YOffset: -0.3, SpinSpeed: 0.4},
		{Name: "desert", Material: render.MaterialDesert, Scale: 3.0,
			OrbitRadius: 32.0, OrbitSpeed: 0.35, OrbitPhase: math.Pi, YOffset: 0.2, SpinSpeed: 0.6},
		{Name: "volcanic", Material: render.MaterialVolcanic, Scale: 4.5,
			OrbitRadius: 70.0, OrbitSpeed: 0.4, OrbitPhase: math.Pi * 1.5, YOffset: -0.5, SpinSpeed: 0.7},
		{Name: "ocean", Material: render.MaterialOcean, Scale: 3.8,
			OrbitRadius: 45.0, OrbitSpeed: 0.28, OrbitPhase: math.Pi * 0.25, YOffset: 1.0, SpinSpeed: 0.45},
		{Name: "purple", Material: render.MaterialAlienPurple, Scale: 4.2,
			OrbitRadius: 55.0, OrbitSpeed: 0.2, OrbitPhase: math.Pi * 0.75, YOffset: -1.2, SpinSpeed: 0.55},
		{Name: "ringed", Material: render.MaterialRinged, Scale: 5.0,
			OrbitRadius: 65.0, OrbitSpeed: 0.18, OrbitPhase: math.Pi * 1.25, YOffset: 0.8, SpinSpeed: 0.35},
	}
}
