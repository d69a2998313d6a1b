package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"darkvale/pkg/engine/video"
)

// screenSurface draws the shared scene onto the Ebiten screen.
// Coordinates are already in standard resolution since Layout fixes the logical size.
type screenSurface struct {
	e      *EbitenRenderer
	screen *ebiten.Image
}

// FillRect fills a rectangle, faded by alpha
func (s *screenSurface) FillRect(x, y, w, h float64, c color.RGBA, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), applyAlpha(c, alpha), false)
}

// DrawText draws a text with a one pixel drop shadow when the style asks for it
func (s *screenSurface) DrawText(str string, x, y float64, style video.TextStyle, alpha float64) {
	if alpha <= 0 || str == "" {
		return
	}
	face := s.e.getFontFace(style.Font, style.Size)
	if style.Shadow {
		drawColoredText(s.screen, str, x+1, y+1, applyAlpha(colorShadow, alpha*0.8), face)
	}
	drawColoredText(s.screen, str, x, y, applyAlpha(style.Color, alpha), face)
}

// DrawImage outlines the image bounds; sprite sheets are not loaded yet
func (s *screenSurface) DrawImage(img *video.Image, x, y float64, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	vector.StrokeRect(s.screen, float32(x), float32(y), float32(img.Width), float32(img.Height), 1, applyAlpha(colorImageOutline, alpha), false)
}
