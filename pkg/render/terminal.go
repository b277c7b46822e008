package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row covers two framebuffer rows using the ▀
// upper-half-block glyph with fg=top pixel and bg=bottom pixel, so the
// framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: packedToColor(fb.PixelAt(col, topY)),
					Bg: packedToColor(fb.PixelAt(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// packedToColor converts a 0xRRGGBB pixel to Go's color.Color interface.
func packedToColor(c uint32) color.Color {
	r, g, b := UnpackRGB(c)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
