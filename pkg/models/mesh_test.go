package models

import (
	"math"
	"testing"

	"github.com/taigrr/starvoyage/pkg/math3d"
)

func TestNewUVSphereCounts(t *testing.T) {
	tests := []struct {
		segments, rings int
	}{
		{8, 4},
		{32, 16},
		{3, 2},
	}
	for _, tc := range tests {
		m := NewUVSphere(tc.segments, tc.rings)

		wantVerts := (tc.segments + 1) * (tc.rings + 1)
		if len(m.Vertices) != wantVerts {
			t.Errorf("sphere(%d, %d): %d vertices, want %d",
				tc.segments, tc.rings, len(m.Vertices), wantVerts)
		}

		wantTris := tc.segments * tc.rings * 2
		if m.TriangleCount() != wantTris {
			t.Errorf("sphere(%d, %d): %d triangles, want %d",
				tc.segments, tc.rings, m.TriangleCount(), wantTris)
		}
	}
}

func TestNewUVSphereUnitRadius(t *testing.T) {
	m := NewUVSphere(16, 8)
	for i, v := range m.Vertices {
		if math.Abs(v.Position.Len()-1) > 1e-9 {
			t.Fatalf("vertex %d at radius %v, want 1", i, v.Position.Len())
		}
		if math.Abs(v.Normal.Len()-1) > 1e-9 {
			t.Fatalf("vertex %d normal length %v, want 1", i, v.Normal.Len())
		}
		if v.Normal != v.Position {
			t.Fatalf("vertex %d normal %v != position %v", i, v.Normal, v.Position)
		}
	}
}

func TestNewUVSphereWindingOutward(t *testing.T) {
	m := NewUVSphere(16, 8)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Position
		b := m.Vertices[m.Indices[i+1]].Position
		c := m.Vertices[m.Indices[i+2]].Position

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Len() == 0 {
			// Pole triangles can be degenerate; skip them.
			continue
		}
		centroid := a.Add(b).Add(c).Scale(1.0 / 3.0)
		if normal.Dot(centroid) < 0 {
			t.Fatalf("triangle %d wound inward", i/3)
		}
	}
}

func TestNewUVSphereClampsDegenerateArgs(t *testing.T) {
	m := NewUVSphere(1, 0)
	if len(m.Vertices) == 0 || m.TriangleCount() == 0 {
		t.Error("degenerate arguments produced an empty sphere")
	}
}

func TestNewUVSphereIndicesInRange(t *testing.T) {
	m := NewUVSphere(12, 6)
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(m.Vertices))
		}
	}
}

func TestNewCraftValid(t *testing.T) {
	m := NewCraft()
	if m.TriangleCount() < 4 {
		t.Fatalf("craft has %d triangles, want at least 4", m.TriangleCount())
	}

	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}

	for i, v := range m.Vertices {
		if math.Abs(v.Normal.Len()-1) > 1e-9 {
			t.Errorf("vertex %d normal length %v, want 1", i, v.Normal.Len())
		}
	}
}

func TestNewCraftWindingOutward(t *testing.T) {
	m := NewCraft()

	var center math3d.Vec3
	for _, v := range m.Vertices {
		center = center.Add(v.Position)
	}
	center = center.Scale(1.0 / float64(len(m.Vertices)))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Position
		b := m.Vertices[m.Indices[i+1]].Position
		c := m.Vertices[m.Indices[i+2]].Position

		normal := b.Sub(a).Cross(c.Sub(a))
		toFace := a.Add(b).Add(c).Scale(1.0 / 3.0).Sub(center)
		if normal.Dot(toFace) < 0 {
			t.Fatalf("craft triangle %d wound inward", i/3)
		}
	}
}

func TestScaleToFit(t *testing.T) {
	m := NewUVSphere(8, 4) // extent 2 on every axis
	m.ScaleToFit(5.0)

	extent := m.BoundsMax.Sub(m.BoundsMin)
	largest := math.Max(extent.X, math.Max(extent.Y, extent.Z))
	if math.Abs(largest-5.0) > 1e-9 {
		t.Errorf("largest extent after ScaleToFit = %v, want 5", largest)
	}
}

func TestCalculateBounds(t *testing.T) {
	m := NewUVSphere(16, 8)
	for _, f := range []float64{
		m.BoundsMin.X, m.BoundsMin.Y, m.BoundsMin.Z,
		m.BoundsMax.X, m.BoundsMax.Y, m.BoundsMax.Z,
	} {
		if math.Abs(f) > 1.0+1e-9 {
			t.Errorf("bound %v outside unit sphere", f)
		}
	}
	if m.BoundsMax.Y < 0.99 || m.BoundsMin.Y > -0.99 {
		t.Errorf("poles missing from bounds: %v .. %v", m.BoundsMin, m.BoundsMax)
	}
}

func TestCalculateSmoothNormalsUnit(t *testing.T) {
	m := NewUVSphere(12, 6)
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Position.Scale(0) // wipe
	}
	m.CalculateSmoothNormals()

	zeroed := 0
	for _, v := range m.Vertices {
		l := v.Normal.Len()
		if l == 0 {
			// Duplicated seam vertices may not belong to any face.
			zeroed++
			continue
		}
		if math.Abs(l-1) > 1e-9 {
			t.Fatalf("normal length %v, want 1", l)
		}
	}
	if zeroed > len(m.Vertices)/2 {
		t.Errorf("%d of %d normals zero after recompute", zeroed, len(m.Vertices))
	}
}
