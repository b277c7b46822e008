package render

import (
	"math"
	"testing"

	"github.com/taigrr/starvoyage/pkg/math3d"
)

// clipVertex builds a vertex with a preset clip-space position, as if
// TransformVertex had already run.
func clipVertex(clip Vec4, pos Vec3) Vertex {
	return Vertex{Position: pos, Clip: clip}
}

func TestEdgeFunction(t *testing.T) {
	a := math3d.V2(0, 0)
	b := math3d.V2(4, 0)

	tests := []struct {
		name string
		c    Vec2
		sign float64
	}{
		{"left of edge", math3d.V2(2, -2), 1},
		{"right of edge", math3d.V2(2, 2), -1},
		{"on edge", math3d.V2(2, 0), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := edgeFunction(a, b, tc.c)
			switch {
			case tc.sign > 0 && got <= 0:
				t.Errorf("edgeFunction = %v, want positive", got)
			case tc.sign < 0 && got >= 0:
				t.Errorf("edgeFunction = %v, want negative", got)
			case tc.sign == 0 && got != 0:
				t.Errorf("edgeFunction = %v, want zero", got)
			}
		})
	}
}

func TestRasterizeTriangleScreenMapping(t *testing.T) {
	// NDC (0,0), (1,0), (0,1) at depth -1 on an 800x600 target covers
	// the triangle (400,300) (800,300) (400,0) in screen space.
	v1 := clipVertex(math3d.V4(0, 0, -1, 1), math3d.V3(1, 2, 3))
	v2 := clipVertex(math3d.V4(1, 0, -1, 1), math3d.V3(1, 2, 3))
	v3 := clipVertex(math3d.V4(0, 1, -1, 1), math3d.V3(1, 2, 3))

	frags := RasterizeTriangle(v1, v2, v3, 800, 600, nil)
	if len(frags) == 0 {
		t.Fatal("no fragments for a visible triangle")
	}

	// Half of a 400x300 rectangle, give or take edge pixels.
	if len(frags) < 55000 || len(frags) > 65000 {
		t.Errorf("fragment count = %d, want about 60000", len(frags))
	}

	for _, f := range frags {
		if f.X < 399 || f.X > 799 || f.Y < 0 || f.Y > 300 {
			t.Fatalf("fragment (%d, %d) outside expected screen region", f.X, f.Y)
		}
		if math.Abs(f.Depth-(-1)) > 1e-6 {
			t.Fatalf("fragment depth = %v, want -1", f.Depth)
		}
	}
}

func TestRasterizeTriangleBackfaceCulled(t *testing.T) {
	v1 := clipVertex(math3d.V4(0, 0, -1, 1), Vec3{})
	v2 := clipVertex(math3d.V4(1, 0, -1, 1), Vec3{})
	v3 := clipVertex(math3d.V4(0, 1, -1, 1), Vec3{})

	// Reversed winding flips the sign of the screen-space area.
	frags := RasterizeTriangle(v1, v3, v2, 800, 600, nil)
	if len(frags) != 0 {
		t.Errorf("back-facing triangle produced %d fragments, want 0", len(frags))
	}
}

func TestRasterizeTriangleDegenerate(t *testing.T) {
	v := clipVertex(math3d.V4(0.25, 0.25, -0.5, 1), Vec3{})
	frags := RasterizeTriangle(v, v, v, 800, 600, nil)
	if len(frags) != 0 {
		t.Errorf("degenerate triangle produced %d fragments, want 0", len(frags))
	}
}

func TestRasterizeTriangleTinyW(t *testing.T) {
	v1 := clipVertex(math3d.V4(0, 0, -1, 1e-8), Vec3{})
	v2 := clipVertex(math3d.V4(1, 0, -1, 1), Vec3{})
	v3 := clipVertex(math3d.V4(0, 1, -1, 1), Vec3{})

	frags := RasterizeTriangle(v1, v2, v3, 800, 600, nil)
	if len(frags) != 0 {
		t.Errorf("near-zero w produced %d fragments, want 0", len(frags))
	}
}

func TestRasterizeTriangleNegativeW(t *testing.T) {
	// One vertex behind the camera plane (w = -1), two in front. The
	// divide guard checks |w|, so the triangle still rasterizes from
	// the mirrored projection of the behind vertex instead of being
	// dropped whole.
	v1 := clipVertex(math3d.V4(-0.2, -0.2, 0, -1), Vec3{})
	v2 := clipVertex(math3d.V4(0.6, 0, 0, 1), Vec3{})
	v3 := clipVertex(math3d.V4(0, 0.6, 0, 1), Vec3{})

	frags := RasterizeTriangle(v1, v2, v3, 800, 600, nil)
	if len(frags) == 0 {
		t.Fatal("triangle straddling the camera plane produced no fragments")
	}
}

func TestRasterizePerspectiveCorrectConstantAttribute(t *testing.T) {
	// Same NDC triangle as the screen-mapping test, but with distinct w
	// per vertex so the 1/w correction actually has to work. A surface
	// attribute equal at all three vertices must interpolate to itself
	// at every covered pixel.
	attr := math3d.V3(7, 8, 9)
	v1 := clipVertex(math3d.V4(0, 0, -1, 1), attr)
	v2 := clipVertex(math3d.V4(4, 0, -4, 4), attr)
	v3 := clipVertex(math3d.V4(0, 2, -2, 2), attr)

	frags := RasterizeTriangle(v1, v2, v3, 800, 600, nil)
	if len(frags) == 0 {
		t.Fatal("no fragments")
	}

	for _, f := range frags {
		if math.Abs(f.Position.X-attr.X) > 1e-6 ||
			math.Abs(f.Position.Y-attr.Y) > 1e-6 ||
			math.Abs(f.Position.Z-attr.Z) > 1e-6 {
			t.Fatalf("fragment position = %v, want %v", f.Position, attr)
		}
	}
}

// fullTriangle returns a screen-filling front-facing triangle at the
// given constant NDC depth.
func fullTriangle(z float64) (v1, v2, v3 Vertex) {
	v1 = clipVertex(math3d.V4(-3, -3, z, 1), Vec3{})
	v2 = clipVertex(math3d.V4(3, -3, z, 1), Vec3{})
	v3 = clipVertex(math3d.V4(0, 3, z, 1), Vec3{})
	return
}

func TestDepthOrderingBothDrawOrders(t *testing.T) {
	const (
		red  = 0xFF0000
		blue = 0x0000FF
	)

	drawAt := func(fb *Framebuffer, z float64, color uint32) {
		v1, v2, v3 := fullTriangle(z)
		frags := RasterizeTriangle(v1, v2, v3, fb.Width, fb.Height, nil)
		fb.SetCurrentColor(color)
		for _, f := range frags {
			fb.Point(f.X, f.Y, f.Depth)
		}
	}

	t.Run("far then near", func(t *testing.T) {
		fb := NewFramebuffer(100, 100)
		drawAt(fb, 0.5, red)
		drawAt(fb, -0.5, blue)
		if got := fb.PixelAt(50, 50); got != blue {
			t.Errorf("pixel = %06x, want near triangle %06x", got, blue)
		}
	})

	t.Run("near then far", func(t *testing.T) {
		fb := NewFramebuffer(100, 100)
		drawAt(fb, -0.5, blue)
		drawAt(fb, 0.5, red)
		if got := fb.PixelAt(50, 50); got != blue {
			t.Errorf("pixel = %06x, want near triangle %06x", got, blue)
		}
	})
}

func TestCullTriangle(t *testing.T) {
	inside := math3d.V4(0, 0, 0, 1)
	farRight := math3d.V4(10, 0, 0, 1)
	behind := math3d.V4(0, 0, -2, 1)

	tests := []struct {
		name    string
		a, b, c Vec4
		want    bool
	}{
		{"fully visible", inside, inside, inside, false},
		{"all beyond x bound", farRight, farRight, farRight, true},
		{"all behind near plane", behind, behind, behind, true},
		{"straddling", farRight, inside, farRight, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cullTriangle(tc.a, tc.b, tc.c); got != tc.want {
				t.Errorf("cullTriangle = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRenderModelShadesPixels(t *testing.T) {
	fb := NewFramebuffer(200, 200)

	vertices := []Vertex{
		{Position: math3d.V3(-0.5, -0.5, -0.5)},
		{Position: math3d.V3(0.5, -0.5, -0.5)},
		{Position: math3d.V3(0, 0.5, -0.5)},
	}
	indices := []uint32{0, 1, 2}

	u := Uniforms{
		Model:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: math3d.Identity(),
		Viewport:   math3d.Viewport(200, 200),
		Material:   MaterialCraftHull,
	}
	RenderModel(fb, vertices, indices, u)

	// Center pixel should be the craft's flat hull gray.
	want := PackColor(Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	if got := fb.PixelAt(100, 100); got != want {
		t.Errorf("center pixel = %06x, want %06x", got, want)
	}
	if math.IsInf(fb.DepthAt(100, 100), 1) {
		t.Error("center depth untouched after draw")
	}
}

func TestProjectPoint(t *testing.T) {
	proj := math3d.Perspective(math.Pi/4, 1, 0.1, 100)
	view := math3d.Identity()

	t.Run("center of view", func(t *testing.T) {
		x, y, depth, ok := ProjectPoint(math3d.V3(0, 0, -5), view, proj, 400, 400)
		if !ok {
			t.Fatal("visible point rejected")
		}
		if x != 200 || y != 200 {
			t.Errorf("screen = (%d, %d), want (200, 200)", x, y)
		}
		if depth < -1 || depth > 1 {
			t.Errorf("depth = %v, outside NDC range", depth)
		}
	})

	t.Run("behind camera", func(t *testing.T) {
		if _, _, _, ok := ProjectPoint(math3d.V3(0, 0, 5), view, proj, 400, 400); ok {
			t.Error("point behind camera accepted")
		}
	})
}

func BenchmarkRasterizeTriangle(b *testing.B) {
	v1 := clipVertex(math3d.V4(-0.5, -0.5, -0.5, 1), math3d.V3(0, 0, 1))
	v2 := clipVertex(math3d.V4(0.5, -0.5, -0.5, 1), math3d.V3(1, 0, 0))
	v3 := clipVertex(math3d.V4(0, 0.5, -0.5, 1), math3d.V3(0, 1, 0))

	frags := make([]Fragment, 0, 8192)
	for b.Loop() {
		frags = RasterizeTriangle(v1, v2, v3, 800, 600, frags[:0])
	}
	_ = frags
}
