package render

import "math"

const (
	starCount       = 800
	galaxyCount     = 5
	galaxyArmPoints = 100
)

// fract keeps the fractional part of x, preserving sign. The star
// placement below folds it into [0, 1) with math.Abs so every star
// lands on screen instead of half the hash range being wasted.
func fract(x float64) float64 {
	return x - math.Trunc(x)
}

// DrawStarfield paints the deep-space background: 800 fixed stars of
// varying brightness plus five slowly rotating spiral galaxies. Stars
// are written at depth 0 so geometry in front of the camera (negative
// NDC z) always covers them. Call after Clear and before any models.
func DrawStarfield(fb *Framebuffer, time float64) {
	w := float64(fb.Width)
	h := float64(fb.Height)

	for i := 0; i < starCount; i++ {
		seed := float64(i) * 12.9898
		x := int(math.Abs(fract(math.Sin(seed)*43758.5453)) * w)
		y := int(math.Abs(fract(math.Cos(seed*1.234)*43758.5453)) * h)
		if x >= fb.Width || y >= fb.Height {
			continue
		}

		b := uint8((math.Sin(seed*2.345)*0.5 + 0.5) * 255.0)
		fb.SetCurrentColor(PackRGB(b, b, b))
		fb.Point(x, y, 0.0)
	}

	for i := 0; i < galaxyCount; i++ {
		seed := float64(i) * 7.321
		cx := int(math.Abs(fract(math.Sin(seed)*43758.5453)) * w)
		cy := int(math.Abs(fract(math.Cos(seed*3.456)*43758.5453)) * h)
		rotation := time*0.1 + seed

		for j := 0; j < galaxyArmPoints; j++ {
			angle := float64(j)*0.3 + rotation
			radius := math.Sqrt(float64(j)*0.5) * 3.0
			x := cx + int(math.Cos(angle)*radius)
			y := cy + int(math.Sin(angle)*radius)
			if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
				continue
			}

			intensity := (1.0 - float64(j)/float64(galaxyArmPoints)) * 150.0
			fb.SetCurrentColor(PackRGB(
				uint8(intensity*0.8),
				uint8(intensity*0.6),
				uint8(intensity*1.0),
			))
			fb.Point(x, y, 0.0)
		}
	}
}
