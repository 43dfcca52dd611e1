package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw paints the framebuffer onto scr inside area with upper half blocks:
// the foreground is the even pixel row, the background the odd one.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top := (row - area.Min.Y) * 2
		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(x, top)),
					Bg: rgbaToColor(fb.GetPixel(x, top+1)),
				},
			})
		}
	}
}

// rgbaToColor maps transparent pixels to the terminal default.
func rgbaToColor(c Color) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// StatusLine writes text into one terminal row, padding the rest of the
// row with blanks.
type StatusLine struct {
	Text string
	Fg   Color
	Bg   Color
}

// Draw implements uv.Drawable.
func (s StatusLine) Draw(scr uv.Screen, area uv.Rectangle) {
	style := uv.Style{Fg: rgbaToColor(s.Fg), Bg: rgbaToColor(s.Bg)}
	runes := []rune(s.Text)
	for col := area.Min.X; col < area.Max.X; col++ {
		content := " "
		if i := col - area.Min.X; i < len(runes) {
			content = string(runes[i])
		}
		scr.SetCell(col, area.Min.Y, &uv.Cell{Content: content, Width: 1, Style: style})
	}
}
