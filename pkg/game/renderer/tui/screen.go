package tui

import (
	"image/color"
	"math"
	"strings"

	gcolor "github.com/gookit/color"

	"darkvale/pkg/engine/video"
)

// cell is one character of the terminal screen
type cell struct {
	ch rune
	fg color.RGBA
	bg color.RGBA
}

// Screen is a character grid holding a rasterized frame
type Screen struct {
	Cols, Rows int
	cells      []cell
}

// Rasterize replays recorded draw calls onto a cols x rows character grid.
// Rectangles color cell backgrounds, texts write one rune per cell.
func Rasterize(ops []video.DrawOp, cols, rows int) *Screen {
	s := &Screen{Cols: cols, Rows: rows, cells: make([]cell, cols*rows)}
	for i := range s.cells {
		s.cells[i] = cell{ch: ' ', fg: video.White, bg: video.Black}
	}
	if cols <= 0 || rows <= 0 {
		return s
	}

	cw := float64(video.StandardResWidth) / float64(cols)
	ch := float64(video.StandardResHeight) / float64(rows)
	for _, op := range ops {
		switch {
		case op.W > 0:
			s.fillRect(op, cw, ch)
		case op.Text != "":
			s.drawText(op, cw, ch)
		case op.Image != nil:
			s.drawImage(op, cw, ch)
		}
	}
	return s
}

func (s *Screen) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.Cols || row >= s.Rows {
		return nil
	}
	return &s.cells[row*s.Cols+col]
}

func (s *Screen) fillRect(op video.DrawOp, cw, ch float64) {
	alpha := op.Alpha * float64(op.Color.A) / 255
	if alpha <= 0 {
		return
	}
	col0, col1 := int(op.X/cw), int(math.Ceil((op.X+op.W)/cw))
	row0, row1 := int(op.Y/ch), int(math.Ceil((op.Y+op.H)/ch))
	for row := max(row0, 0); row < min(row1, s.Rows); row++ {
		for col := max(col0, 0); col < min(col1, s.Cols); col++ {
			c := s.at(col, row)
			c.bg = blend(c.bg, op.Color, alpha)
			c.fg = blend(c.fg, op.Color, alpha)
		}
	}
}

func (s *Screen) drawText(op video.DrawOp, cw, ch float64) {
	if op.Alpha <= 0 {
		return
	}
	size := op.Style.Size
	if size <= 0 {
		size = 16
	}
	col := int(op.X / cw)
	row := int((op.Y + size/2) / ch)
	for _, r := range op.Text {
		if c := s.at(col, row); c != nil {
			c.ch = r
			c.fg = blend(c.bg, op.Style.Color, op.Alpha)
		}
		col++
	}
}

// drawImage marks the image corner with the first letter of its name
func (s *Screen) drawImage(op video.DrawOp, cw, ch float64) {
	if op.Alpha <= 0 || op.Image.Name == "" {
		return
	}
	if c := s.at(int(op.X/cw), int(op.Y/ch)); c != nil {
		c.ch = []rune(op.Image.Name)[0]
		c.fg = video.White
	}
}

// blend mixes c over dst
func blend(dst, c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return color.RGBA{c.R, c.G, c.B, 255}
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-alpha) + float64(b)*alpha + 0.5)
	}
	return color.RGBA{mix(dst.R, c.R), mix(dst.G, c.G), mix(dst.B, c.B), 255}
}

// Text returns the characters of a row without colors
func (s *Screen) Text(row int) string {
	if row < 0 || row >= s.Rows {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells[row*s.Cols : (row+1)*s.Cols] {
		b.WriteRune(c.ch)
	}
	return b.String()
}

// Background returns the background color of a cell
func (s *Screen) Background(col, row int) color.RGBA {
	if c := s.at(col, row); c != nil {
		return c.bg
	}
	return color.RGBA{}
}

// Render returns the screen as text. colored adds 24-bit color escapes, one per run of equal colors.
// Lines end with "\r\n" so the output is also correct on a raw terminal.
func (s *Screen) Render(colored bool) string {
	var b strings.Builder
	for row := 0; row < s.Rows; row++ {
		if !colored {
			b.WriteString(s.Text(row))
			b.WriteString("\r\n")
			continue
		}
		line := s.cells[row*s.Cols : (row+1)*s.Cols]
		start := 0
		for i := 1; i <= len(line); i++ {
			if i < len(line) && line[i].fg == line[start].fg && line[i].bg == line[start].bg {
				continue
			}
			var run strings.Builder
			for _, c := range line[start:i] {
				run.WriteRune(c.ch)
			}
			style := gcolor.NewRGBStyle(rgb(line[start].fg), rgb(line[start].bg))
			b.WriteString(style.Sprint(run.String()))
			start = i
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

func rgb(c color.RGBA) gcolor.RGBColor {
	return gcolor.RGB(c.R, c.G, c.B)
}
