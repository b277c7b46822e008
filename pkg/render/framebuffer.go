// Package render implements the software rendering pipeline: vertex
// transformation, triangle rasterization with perspective-correct
// interpolation and depth testing, and procedural surface shading.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// PackRGB packs 8-bit channels into a 0xRRGGBB pixel value.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a 0xRRGGBB pixel value into 8-bit channels.
func UnpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// PackColor converts a float RGB color to a 0xRRGGBB pixel value,
// clamping each channel to [0, 255]. Shader outputs may exceed 1.0
// (overbright star core); the clamp happens here.
func PackColor(c Vec3) uint32 {
	r := uint32(math.Max(0, math.Min(255, c.X*255)))
	g := uint32(math.Max(0, math.Min(255, c.Y*255)))
	b := uint32(math.Max(0, math.Min(255, c.Z*255)))
	return r<<16 | g<<8 | b
}

// Framebuffer is the raster target: a packed-RGB color buffer with a
// parallel per-pixel depth buffer and a current-draw-color register.
// Dimensions are fixed at construction; the frame loop owns the buffer
// exclusively and hands it to the display sink between frames.
type Framebuffer struct {
	Width  int
	Height int
	Color  []uint32  // Row-major 0xRRGGBB pixels
	Depth  []float64 // Row-major depth, +Inf = empty

	Background uint32
	current    uint32
}

// NewFramebuffer allocates a cleared framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]uint32, width*height),
		Depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

// Clear resets every pixel to the background color and every depth cell
// to +Inf. Call once per frame before drawing.
func (fb *Framebuffer) Clear() {
	for i := range fb.Color {
		fb.Color[i] = fb.Background
		fb.Depth[i] = math.Inf(1)
	}
}

// SetCurrentColor sets the color register consulted by Point.
func (fb *Framebuffer) SetCurrentColor(c uint32) {
	fb.current = c
}

// Point writes the current color at (x, y) if depth is strictly nearer
// than the stored value. Equal depth does not overwrite, so exact ties
// are draw-order stable (first writer wins). Coordinates must already
// be in bounds; out-of-range coordinates are a caller bug and panic.
func (fb *Framebuffer) Point(x, y int, depth float64) {
	idx := y*fb.Width + x
	if depth < fb.Depth[idx] {
		fb.Color[idx] = fb.current
		fb.Depth[idx] = depth
	}
}

// PixelAt returns the packed color at (x, y), or the background color
// for out-of-bounds coordinates.
func (fb *Framebuffer) PixelAt(x, y int) uint32 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return fb.Background
	}
	return fb.Color[y*fb.Width+x]
}

// DepthAt returns the depth at (x, y), or +Inf for out-of-bounds
// coordinates.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// DrawLine draws a depth-tested line from (x0, y0) to (x1, y1) using
// Bresenham's algorithm with the current color. Out-of-bounds segments
// are skipped, so endpoints may lie offscreen.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, depth float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 >= 0 && x0 < fb.Width && y0 >= 0 && y0 < fb.Height {
			fb.Point(x0, y0, depth)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := UnpackRGB(fb.Color[y*fb.Width+x])
			img.SetRGBA(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
