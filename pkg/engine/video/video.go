// Package video holds the backend-neutral drawing primitives shared by map mode and the renderers.
package video

import "image/color"

// Standard coordinate system resolution. All screen coordinates handed to a Canvas use it;
// backends scale to the real window size.
const (
	StandardResWidth  = 1024
	StandardResHeight = 768
)

// Named colors used by indicators and the GUI
var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Red    = color.RGBA{255, 60, 60, 255}
	Green  = color.RGBA{80, 255, 120, 255}
	Yellow = color.RGBA{255, 230, 90, 255}
	Gray   = color.RGBA{150, 150, 170, 255}
)

// Image is a handle to an image owned by the backend. Core code only needs its name and size.
type Image struct {
	Name   string
	Width  float64
	Height float64
}

// NewImage creates an image handle
func NewImage(name string, width, height float64) *Image {
	return &Image{Name: name, Width: width, Height: height}
}

// TextStyle describes how a text visual is rendered
type TextStyle struct {
	Font   string // font family name, backends fall back to their default face
	Size   float64
	Color  color.RGBA
	Shadow bool
}

// NewTextStyle creates a shadowed text style
func NewTextStyle(font string, size float64, c color.RGBA) TextStyle {
	return TextStyle{Font: font, Size: size, Color: c, Shadow: true}
}

// Canvas is the draw context passed explicitly into every Draw call.
// x and y are in standard resolution pixels; alpha is in [0,1].
type Canvas interface {
	DrawText(text string, x, y float64, style TextStyle, alpha float64)
	DrawImage(img *Image, x, y float64, alpha float64)
}

// Surface is a Canvas that can also fill rectangles. Map screens are composed on it.
type Surface interface {
	Canvas
	FillRect(x, y, w, h float64, c color.RGBA, alpha float64)
}
