// Package terminal reads the size of the output terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitAspect returns the largest cols x rows inside width x height that keeps the shape
// of a screenW x screenH screen, with character cells twice as tall as they are wide.
func FitAspect(width, height, screenW, screenH int) (cols, rows int) {
	if width <= 0 || height <= 0 || screenW <= 0 || screenH <= 0 {
		return 0, 0
	}
	cols = width
	rows = cols * screenH / (screenW * 2)
	if rows > height {
		rows = height
		cols = rows * screenW * 2 / screenH
	}
	return cols, rows
}
