// Package noise provides deterministic value noise and fractal Brownian
// motion for procedural surface shading. The functions are pure: the same
// input always produces the bit-identical output, which the shader tests
// rely on. The hash is intentionally non-cryptographic.
package noise

import (
	"math"

	"github.com/taigrr/starvoyage/pkg/math3d"
)

// hashVec is the classic irrational-coefficient direction used to
// scatter lattice points before hashing.
var hashVec = math3d.V3(12.9898, 78.233, 45.5432)

// hash maps a lattice point to a pseudo-random value in (-1, 1).
func hash(p math3d.Vec3) float64 {
	s := math.Sin(p.Dot(hashVec)) * 43758.5453
	return s - math.Trunc(s)
}

// Value3 returns deterministic value noise in [-1, 1] for a 3D point:
// a smoothstep-weighted trilinear blend of the hash values at the eight
// corners of the point's integer lattice cell.
func Value3(p math3d.Vec3) float64 {
	i := p.Floor()
	f := p.Sub(i)

	// Smoothstep weights per axis.
	ux := f.X * f.X * (3 - 2*f.X)
	uy := f.Y * f.Y * (3 - 2*f.Y)
	uz := f.Z * f.Z * (3 - 2*f.Z)

	c000 := hash(i)
	c100 := hash(i.Add(math3d.V3(1, 0, 0)))
	c010 := hash(i.Add(math3d.V3(0, 1, 0)))
	c110 := hash(i.Add(math3d.V3(1, 1, 0)))
	c001 := hash(i.Add(math3d.V3(0, 0, 1)))
	c101 := hash(i.Add(math3d.V3(1, 0, 1)))
	c011 := hash(i.Add(math3d.V3(0, 1, 1)))
	c111 := hash(i.Add(math3d.V3(1, 1, 1)))

	return lerp(
		lerp(lerp(c000, c100, ux), lerp(c010, c110, ux), uy),
		lerp(lerp(c001, c101, ux), lerp(c011, c111, ux), uy),
		uz,
	)
}

// FBM sums octaves of Value3 at frequency growing by lacunarity and
// amplitude decaying by persistence, normalized by the total amplitude
// so the result stays within the range of Value3. Non-positive octave
// counts return 0.
func FBM(p math3d.Vec3, octaves int, persistence, lacunarity float64) float64 {
	if octaves <= 0 {
		return 0
	}

	var total, maxValue float64
	frequency := 1.0
	amplitude := 1.0

	for range octaves {
		total += Value3(p.Scale(frequency)) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxValue
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
