package math3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != V3(3, 3, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); got != V3(-3, 6, -3) {
		t.Errorf("Cross = %v", got)
	}
	if got := V3(3, 4, 0).Len(); got != 5 {
		t.Errorf("Len = %v", got)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}

	n := V3(0, 0, 7).Normalize()
	if !vecNear(n, V3(0, 0, 1), epsilon) {
		t.Errorf("Normalize = %v", n)
	}
}

func TestVec3ClampNaN(t *testing.T) {
	v := Vec3{math.NaN(), 2.0, -1.0}
	got := v.Clamp(0, 1)
	if got != V3(0, 1, 0) {
		t.Errorf("Clamp with NaN = %v, want (0, 1, 0)", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
		t.Error("Clamp let a NaN through")
	}
}

func TestMat4Identity(t *testing.T) {
	v := V3(1.5, -2.5, 3.5)
	got := Identity().MulPoint(v)
	if !vecNear(got, v, epsilon) {
		t.Errorf("Identity.MulPoint(%v) = %v", v, got)
	}
}

func TestMat4TranslateScaleCompose(t *testing.T) {
	// T * S applies scale first, then translation.
	m := Translate(V3(10, 0, 0)).Mul(ScaleUniform(2))
	got := m.MulPoint(V3(1, 1, 1))
	if !vecNear(got, V3(12, 2, 2), epsilon) {
		t.Errorf("T*S point = %v, want (12, 2, 2)", got)
	}
}

func TestMat4RotateY(t *testing.T) {
	// Quarter turn around Y takes +X to -Z.
	got := RotateY(math.Pi / 2).MulDir(V3(1, 0, 0))
	if !vecNear(got, V3(0, 0, -1), epsilon) {
		t.Errorf("RotateY(90°) * +X = %v, want (0, 0, -1)", got)
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := V3(3, 4, 5)
	view := LookAt(eye, V3(0, 0, 0), Up())
	got := view.MulPoint(eye)
	if !vecNear(got, Vec3{}, 1e-9) {
		t.Errorf("view * eye = %v, want origin", got)
	}
}

func TestLookAtTargetOnNegativeZ(t *testing.T) {
	// Points in front of the camera land on the view-space -Z axis.
	eye := V3(0, 0, 5)
	view := LookAt(eye, V3(0, 0, 0), Up())
	got := view.MulPoint(V3(0, 0, 0))
	if !vecNear(got, V3(0, 0, -5), 1e-9) {
		t.Errorf("view * target = %v, want (0, 0, -5)", got)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(math.Pi/4, 4.0/3.0, 0.1, 100)

	tests := []struct {
		name  string
		z     float64
		wantZ float64
	}{
		{"near plane", -0.1, -1},
		{"far plane", -100, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clip := proj.MulVec4(V4(0, 0, tc.z, 1))
			ndc := clip.PerspectiveDivide()
			if math.Abs(ndc.Z-tc.wantZ) > 1e-6 {
				t.Errorf("ndc.Z = %v, want %v", ndc.Z, tc.wantZ)
			}
		})
	}
}

func TestPerspectiveWEqualsViewDepth(t *testing.T) {
	proj := Perspective(math.Pi/3, 1, 0.1, 100)
	clip := proj.MulVec4(V4(1, 2, -7, 1))
	if math.Abs(clip.W-7) > epsilon {
		t.Errorf("clip.W = %v, want 7", clip.W)
	}
}

func TestViewportMapsCorners(t *testing.T) {
	vp := Viewport(800, 600)

	center := vp.MulPoint(V3(0, 0, 0))
	if !vecNear(center, V3(400, 300, 0), epsilon) {
		t.Errorf("center = %v, want (400, 300, 0)", center)
	}

	// NDC (+1, +1) is the top-right corner because Y flips.
	topRight := vp.MulPoint(V3(1, 1, 0))
	if !vecNear(topRight, V3(800, 0, 0), epsilon) {
		t.Errorf("top right = %v, want (800, 0, 0)", topRight)
	}
}

func TestMat3InverseRoundTrip(t *testing.T) {
	m := Mat3{
		2, 0, 0,
		1, 3, 0,
		0, -1, 4,
	}
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("invertible matrix reported singular")
	}

	v := V3(1, 2, 3)
	got := inv.MulVec3(m.MulVec3(v))
	if !vecNear(got, v, 1e-9) {
		t.Errorf("inv(m)*m*v = %v, want %v", got, v)
	}
}

func TestMat3InverseSingular(t *testing.T) {
	var m Mat3 // all zeros
	inv, ok := m.Inverse()
	if ok {
		t.Error("singular matrix reported invertible")
	}
	if inv != Identity3() {
		t.Errorf("singular fallback = %v, want identity", inv)
	}
}

func TestMat4MulAssociatesWithVector(t *testing.T) {
	a := RotateX(0.3)
	b := Translate(V3(1, 2, 3))
	v := V4(4, 5, 6, 1)

	left := a.Mul(b).MulVec4(v)
	right := a.MulVec4(b.MulVec4(v))

	if math.Abs(left.X-right.X) > epsilon ||
		math.Abs(left.Y-right.Y) > epsilon ||
		math.Abs(left.Z-right.Z) > epsilon ||
		math.Abs(left.W-right.W) > epsilon {
		t.Errorf("(a*b)*v = %v, a*(b*v) = %v", left, right)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := RotateY(0.5)
	m2 := Translate(V3(1, 2, 3))
	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := RotateY(0.5).Mul(Translate(V3(1, 2, 3)))
	v := V4(1, 2, 3, 1)
	for b.Loop() {
		_ = m.MulVec4(v)
	}
}
