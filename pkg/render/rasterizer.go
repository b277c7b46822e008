package render

import (
	"math"

	"github.com/taigrr/starvoyage/pkg/math3d"
)

// Fragment is one covered pixel produced by rasterizing a triangle:
// integer screen coordinates, an interpolated depth for the z test, and
// the perspective-correct model-space surface position for shading.
type Fragment struct {
	X, Y     int
	Depth    float64
	Position Vec3
}

const (
	// wEpsilon guards the perspective divide; vertices this close to
	// the camera plane produce no fragments.
	wEpsilon = 1e-6
	// areaEpsilon rejects degenerate (zero-area) triangles.
	areaEpsilon = 1e-6
)

// edgeFunction returns twice the signed area of triangle abc. Positive
// when c lies to the left of the directed edge a->b in screen space.
func edgeFunction(a, b, c Vec2) float64 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

// ndcToScreen maps normalized device coordinates to pixel coordinates,
// flipping Y so that +Y in NDC is up on screen.
func ndcToScreen(ndc Vec3, width, height int) Vec2 {
	return math3d.V2(
		(ndc.X*0.5+0.5)*float64(width),
		(1.0-(ndc.Y*0.5+0.5))*float64(height),
	)
}

// outsideFrustum reports whether a clip-space vertex fails the coarse
// visibility test. The X/Y bounds are widened to 1.5*|w| so triangles
// straddling the screen edge survive without true clipping.
func outsideFrustum(clip Vec4) bool {
	aw := math.Abs(clip.W)
	return math.Abs(clip.X) > 1.5*aw ||
		math.Abs(clip.Y) > 1.5*aw ||
		clip.Z < -clip.W ||
		clip.Z > clip.W
}

// cullTriangle reports whether all three clip-space vertices are
// outside the widened frustum. Conservative: a triangle is skipped only
// when every vertex fails.
func cullTriangle(a, b, c Vec4) bool {
	return outsideFrustum(a) && outsideFrustum(b) && outsideFrustum(c)
}

// RasterizeTriangle converts one transformed triangle into fragments,
// appending to frags and returning the extended slice. Vertices must
// carry clip-space positions from TransformVertex. Triangles with a
// vertex too near the camera plane, degenerate, or wound clockwise on
// screen produce nothing. A negative w is a valid divisor: a triangle
// straddling the camera plane still rasterizes from its mirrored NDC
// projection rather than disappearing outright.
//
// Attributes are interpolated with perspective correction: barycentric
// weights are divided by each vertex's clip w and renormalized. Depth
// is the plain screen-space barycentric blend of NDC z, matching what
// the depth buffer stores.
func RasterizeTriangle(v1, v2, v3 Vertex, width, height int, frags []Fragment) []Fragment {
	if math.Abs(v1.Clip.W) < wEpsilon || math.Abs(v2.Clip.W) < wEpsilon || math.Abs(v3.Clip.W) < wEpsilon {
		return frags
	}

	ndc1 := v1.Clip.PerspectiveDivide()
	ndc2 := v2.Clip.PerspectiveDivide()
	ndc3 := v3.Clip.PerspectiveDivide()

	a := ndcToScreen(ndc1, width, height)
	b := ndcToScreen(ndc2, width, height)
	c := ndcToScreen(ndc3, width, height)

	area := edgeFunction(a, b, c)
	if math.Abs(area) < areaEpsilon {
		return frags
	}
	if area < 0 {
		// Back-facing.
		return frags
	}

	minX := int(math.Max(0, math.Floor(min3(a.X, b.X, c.X))))
	minY := int(math.Max(0, math.Floor(min3(a.Y, b.Y, c.Y))))
	maxX := int(math.Min(float64(width-1), math.Ceil(max3(a.X, b.X, c.X))))
	maxY := int(math.Min(float64(height-1), math.Ceil(max3(a.Y, b.Y, c.Y))))

	invArea := 1.0 / area
	invW1 := 1.0 / v1.Clip.W
	invW2 := 1.0 / v2.Clip.W
	invW3 := 1.0 / v3.Clip.W

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math3d.V2(float64(x)+0.5, float64(y)+0.5)

			w1 := edgeFunction(b, c, p)
			w2 := edgeFunction(c, a, p)
			w3 := edgeFunction(a, b, p)
			if w1 < 0 || w2 < 0 || w3 < 0 {
				continue
			}

			w1 *= invArea
			w2 *= invArea
			w3 *= invArea

			depth := w1*ndc1.Z + w2*ndc2.Z + w3*ndc3.Z

			pw1 := w1 * invW1
			pw2 := w2 * invW2
			pw3 := w3 * invW3
			norm := 1.0 / (pw1 + pw2 + pw3)

			pos := v1.Position.Scale(pw1).
				Add(v2.Position.Scale(pw2)).
				Add(v3.Position.Scale(pw3)).
				Scale(norm)

			frags = append(frags, Fragment{X: x, Y: y, Depth: depth, Position: pos})
		}
	}

	return frags
}

// RenderModel runs the full pipeline for an indexed triangle list:
// vertex transform, coarse cull, rasterization, shading, and depth-
// tested writes into the framebuffer.
func RenderModel(fb *Framebuffer, vertices []Vertex, indices []uint32, u Uniforms) {
	if len(indices) < 3 {
		return
	}

	transformed := make([]Vertex, len(vertices))
	for i, v := range vertices {
		transformed[i] = TransformVertex(v, u)
	}

	frags := make([]Fragment, 0, 256)
	for i := 0; i+2 < len(indices); i += 3 {
		v1 := transformed[indices[i]]
		v2 := transformed[indices[i+1]]
		v3 := transformed[indices[i+2]]

		if cullTriangle(v1.Clip, v2.Clip, v3.Clip) {
			continue
		}

		frags = RasterizeTriangle(v1, v2, v3, fb.Width, fb.Height, frags[:0])
		for _, f := range frags {
			color := Shade(u.Material, f.Position, u.Time)
			fb.SetCurrentColor(PackColor(color))
			fb.Point(f.X, f.Y, f.Depth)
		}
	}
}

// ProjectPoint maps a world-space point through view and projection to
// integer screen coordinates plus an NDC depth for the z test. ok is
// false when the point is behind the camera or lands off screen.
func ProjectPoint(p Vec3, view, projection Mat4, width, height int) (x, y int, depth float64, ok bool) {
	clip := projection.Mul(view).MulVec4(math3d.V4FromV3(p, 1))
	if clip.W < wEpsilon {
		return 0, 0, 0, false
	}

	ndc := clip.PerspectiveDivide()
	s := ndcToScreen(ndc, width, height)
	x, y = int(s.X), int(s.Y)
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, 0, false
	}
	return x, y, ndc.Z, true
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
