package scene

import (
	"math"

	"github.com/taigrr/starvoyage/pkg/math3d"
	"github.com/taigrr/starvoyage/pkg/models"
	"github.com/taigrr/starvoyage/pkg/render"
)

const (
	fovY      = 45.0 * math.Pi / 180.0
	nearPlane = 0.1
	farPlane  = 100.0

	sphereSegments = 32
	sphereRings    = 16
)

// Scene owns everything drawn each frame: the solar system, the player
// craft, the camera, and the shared sphere mesh every body reuses.
type Scene struct {
	Bodies []Body
	Craft  *Craft
	Camera *Camera

	Sphere    *models.Mesh
	CraftMesh *models.Mesh

	Projection math3d.Mat4
	Viewport   math3d.Mat4

	ShowOrbits bool
}

// New builds a scene for a framebuffer of the given pixel dimensions.
// craftMesh may come from a GLB file or models.NewCraft; the scene does
// not care which.
func New(width, height, fps int, craftMesh *models.Mesh) *Scene {
	aspect := float64(width) / float64(height)
	return &Scene{
		Bodies:     SolarSystem(),
		Craft:      NewCraft(math3d.V3(6.0, 4.0, 9.0), fps),
		Camera:     NewCamera(),
		Sphere:     models.NewUVSphere(sphereSegments, sphereRings),
		CraftMesh:  craftMesh,
		Projection: math3d.Perspective(fovY, aspect, nearPlane, farPlane),
		Viewport:   math3d.Viewport(float64(width), float64(height)),
	}
}

// Resize recomputes the projection and viewport for new framebuffer
// dimensions. Scene state (orbits, craft, camera) is unaffected.
func (s *Scene) Resize(width, height int) {
	aspect := float64(width) / float64(height)
	s.Projection = math3d.Perspective(fovY, aspect, nearPlane, farPlane)
	s.Viewport = math3d.Viewport(float64(width), float64(height))
}

// Render draws one frame into fb: background starfield, optional orbit
// paths, every body, and the craft last so it never loses a depth tie
// against a planet it is touching.
func (s *Scene) Render(fb *render.Framebuffer, time float64) {
	fb.Clear()
	render.DrawStarfield(fb, time)

	view := s.Camera.ViewMatrix(s.Craft.Position, s.Craft.CameraYaw())

	if s.ShowOrbits {
		s.drawOrbitPaths(fb, view)
	}

	u := render.Uniforms{
		View:       view,
		Projection: s.Projection,
		Viewport:   s.Viewport,
		Time:       time,
	}

	for _, b := range s.Bodies {
		u.Model = b.ModelMatrix(time)
		u.Material = b.Material
		render.RenderModel(fb, s.Sphere.Vertices, s.Sphere.Indices, u)
	}

	u.Model = s.Craft.ModelMatrix()
	u.Material = render.MaterialCraftHull
	render.RenderModel(fb, s.CraftMesh.Vertices, s.CraftMesh.Indices, u)
}

const orbitPathSegments = 96

// drawOrbitPaths traces each body's orbit as a dim depth-tested circle
// of line segments, so paths hide correctly behind planets.
func (s *Scene) drawOrbitPaths(fb *render.Framebuffer, view math3d.Mat4) {
	fb.SetCurrentColor(render.PackRGB(60, 60, 80))

	for _, b := range s.Bodies {
		if b.OrbitRadius == 0 {
			continue
		}

		prevX, prevY, prevD := 0, 0, 0.0
		prevOK := false
		for i := 0; i <= orbitPathSegments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(orbitPathSegments)
			x := math.Cos(angle) * b.OrbitRadius
			if b.Retrograde {
				x = -x
			}
			p := math3d.V3(x, b.YOffset, math.Sin(angle)*b.OrbitRadius)

			sx, sy, depth, ok := render.ProjectPoint(p, view, s.Projection, fb.Width, fb.Height)
			if ok && prevOK {
				fb.DrawLine(prevX, prevY, sx, sy, math.Max(depth, prevD))
			}
			prevX, prevY, prevD, prevOK = sx, sy, depth, ok
		}
	}
}
