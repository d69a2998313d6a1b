package video

import "image/color"

// DrawOp is one call recorded by a Recorder
type DrawOp struct {
	Text  string // empty for images and rectangles
	Image *Image
	X, Y  float64
	Alpha float64
	Style TextStyle

	// W, H and Color are set for rectangles
	W, H  float64
	Color color.RGBA
}

// Recorder is a Canvas that keeps every draw call instead of rendering it.
// The terminal backend replays it as text and tests inspect it.
type Recorder struct {
	Ops []DrawOp
}

// DrawText records a text draw
func (r *Recorder) DrawText(text string, x, y float64, style TextStyle, alpha float64) {
	r.Ops = append(r.Ops, DrawOp{Text: text, X: x, Y: y, Alpha: alpha, Style: style})
}

// DrawImage records an image draw
func (r *Recorder) DrawImage(img *Image, x, y float64, alpha float64) {
	r.Ops = append(r.Ops, DrawOp{Image: img, X: x, Y: y, Alpha: alpha})
}

// FillRect records a rectangle fill
func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA, alpha float64) {
	r.Ops = append(r.Ops, DrawOp{X: x, Y: y, W: w, H: h, Color: c, Alpha: alpha})
}

// Texts returns the recorded texts in draw order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Text != "" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops the recorded calls
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
