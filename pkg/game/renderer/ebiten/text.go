package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawColoredText draws text with its top-left corner at (x, y)
func drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.RGBA {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	// RGBA returns values in 0-65535 range, convert to 0-255
	r8 := uint8(r >> 8)
	g8 := uint8(g >> 8)
	b8 := uint8(b >> 8)
	a8 := uint8(a >> 8)

	// Apply alpha to both RGB and alpha channel for proper fade from black
	// This ensures colors fade to transparent black, not transparent bright colors
	newR := uint8(float64(r8) * alpha)
	newG := uint8(float64(g8) * alpha)
	newB := uint8(float64(b8) * alpha)
	newAlpha := uint8(float64(a8) * alpha)

	return color.RGBA{newR, newG, newB, newAlpha}
}

// getTextWidthWithFace returns the width of a string in pixels using the given font face.
func getTextWidthWithFace(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}
