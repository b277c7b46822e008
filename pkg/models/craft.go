package models

import (
	"math"

	"github.com/taigrr/starvoyage/pkg/math3d"
	"github.com/taigrr/starvoyage/pkg/render"
)

// NewCraft builds a simple arrowhead craft used when no GLB model is
// supplied: a flattened pyramid pointing down -Z with a short tail fin.
func NewCraft() *Mesh {
	mesh := NewMesh("craft")

	nose := math3d.V3(0, 0, -1)
	tailL := math3d.V3(-0.6, 0, 0.6)
	tailR := math3d.V3(0.6, 0, 0.6)
	top := math3d.V3(0, 0.3, 0.4)
	bottom := math3d.V3(0, -0.15, 0.4)
	fin := math3d.V3(0, 0.55, 0.75)

	points := []math3d.Vec3{nose, tailL, tailR, top, bottom, fin}
	for _, p := range points {
		mesh.Vertices = append(mesh.Vertices, render.Vertex{Position: p})
	}

	var hullCenter math3d.Vec3
	for _, p := range points {
		hullCenter = hullCenter.Add(p)
	}
	hullCenter = hullCenter.Scale(1.0 / float64(len(points)))

	faces := [][3]uint32{
		{0, 3, 1}, // top left
		{0, 2, 3}, // top right
		{0, 1, 4}, // bottom left
		{0, 4, 2}, // bottom right
		{1, 3, 4}, // rear left
		{3, 2, 4}, // rear right
		{3, 5, 1}, // fin left
		{3, 2, 5}, // fin right
	}
	// The hull is convex, so a face is wound outward exactly when its
	// normal points away from the hull center.
	for _, f := range faces {
		a := points[f[0]]
		b := points[f[1]]
		c := points[f[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		toFace := a.Add(b).Add(c).Scale(1.0 / 3.0).Sub(hullCenter)
		if normal.Dot(toFace) < 0 {
			f[1], f[2] = f[2], f[1]
		}
		mesh.Indices = append(mesh.Indices, f[0], f[1], f[2])
	}

	mesh.CalculateSmoothNormals()
	mesh.CalculateBounds()
	return mesh
}

// ScaleToFit uniformly rescales the mesh so its largest dimension
// equals size. A degenerate (zero-extent) mesh is left untouched.
func (m *Mesh) ScaleToFit(size float64) {
	extent := m.BoundsMax.Sub(m.BoundsMin)
	largest := math.Max(extent.X, math.Max(extent.Y, extent.Z))
	if largest <= 0 {
		return
	}

	factor := size / largest
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Scale(factor)
	}
	m.CalculateBounds()
}
