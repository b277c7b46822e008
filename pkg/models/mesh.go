// Package models provides mesh construction and loading: a procedural
// UV sphere used for every celestial body, and a GLB loader for the
// player craft.
package models

import (
	"math"

	"github.com/taigrr/starvoyage/pkg/math3d"
	"github.com/taigrr/starvoyage/pkg/render"
)

// Mesh is an indexed triangle list ready for the render pipeline.
// Indices come in groups of three; each group is one counter-clockwise
// front-facing triangle.
type Mesh struct {
	Name     string
	Vertices []render.Vertex
	Indices  []uint32

	// Axis-aligned bounds in model space, set by CalculateBounds.
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// CalculateBounds recomputes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin = math3d.Vec3{}
		m.BoundsMax = math3d.Vec3{}
		return
	}

	min := m.Vertices[0].Position
	max := min
	for _, v := range m.Vertices[1:] {
		min = min.Min(v.Position)
		max = max.Max(v.Position)
	}
	m.BoundsMin = min
	m.BoundsMax = max
}

// CalculateSmoothNormals computes per-vertex normals by accumulating
// area-weighted face normals and normalizing. Used when a loaded mesh
// carries no normals of its own.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Vec3{}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i1, i2, i3 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a := m.Vertices[i1].Position
		b := m.Vertices[i2].Position
		c := m.Vertices[i3].Position

		// Cross product length carries the area weight.
		faceNormal := b.Sub(a).Cross(c.Sub(a))
		m.Vertices[i1].Normal = m.Vertices[i1].Normal.Add(faceNormal)
		m.Vertices[i2].Normal = m.Vertices[i2].Normal.Add(faceNormal)
		m.Vertices[i3].Normal = m.Vertices[i3].Normal.Add(faceNormal)
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// NewUVSphere builds a unit sphere from latitude/longitude segments.
// Positions double as outward unit normals, which is exactly what the
// surface shaders sample. Winding is corrected per triangle so every
// face is counter-clockwise when viewed from outside the sphere.
func NewUVSphere(segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	mesh := NewMesh("uvsphere")

	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		sinPhi, cosPhi := math.Sincos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			sinTheta, cosTheta := math.Sincos(theta)

			p := math3d.V3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			mesh.Vertices = append(mesh.Vertices, render.Vertex{
				Position: p,
				Normal:   p,
				UV: math3d.V2(
					float64(seg)/float64(segments),
					float64(ring)/float64(rings),
				),
			})
		}
	}

	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			i0 := uint32(ring)*stride + uint32(seg)
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1

			mesh.addOutwardTriangle(i0, i2, i1)
			mesh.addOutwardTriangle(i1, i2, i3)
		}
	}

	mesh.CalculateBounds()
	return mesh
}

// addOutwardTriangle appends triangle (a, b, c), swapping two indices
// if its face normal points into the sphere rather than out of it.
func (m *Mesh) addOutwardTriangle(a, b, c uint32) {
	pa := m.Vertices[a].Position
	pb := m.Vertices[b].Position
	pc := m.Vertices[c].Position

	normal := pb.Sub(pa).Cross(pc.Sub(pa))
	centroid := pa.Add(pb).Add(pc).Scale(1.0 / 3.0)
	if normal.Dot(centroid) < 0 {
		b, c = c, b
	}
	m.Indices = append(m.Indices, a, b, c)
}
