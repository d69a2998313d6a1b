package world

import (
	"math"
)

// Grid is the collision grid of a map
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions in grid units
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// NewGridFromRows builds a grid from text rows where '#' or '1' marks a blocked grid unit
func NewGridFromRows(rows []string) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := NewGrid(len(rows), cols)
	for row, r := range rows {
		for col, ch := range r {
			if ch == '#' || ch == '1' {
				g.SetBlocked(row, col, true)
			}
		}
	}
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(row, col)
		}
	}
}

// Rows returns the number of grid units on the y axis
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of grid units on the x axis
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// SetBlocked marks a cell as blocked or free. Returns false if out of bounds.
func (g *Grid) SetBlocked(row, col int, blocked bool) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Blocked = blocked
	return true
}

// IsBlocked returns true for blocked cells. Everything outside the grid is blocked.
func (g *Grid) IsBlocked(row, col int) bool {
	cell := g.GetCell(row, col)
	return cell == nil || cell.Blocked
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Box is a collision rectangle in grid units
type Box struct {
	Left, Top, Right, Bottom float64
}

// SpriteBox returns the collision box of a sprite standing at (x, y): x is the horizontal
// center and y the bottom of the box.
func SpriteBox(x, y, halfWidth, height float64) Box {
	return Box{Left: x - halfWidth, Top: y - height, Right: x + halfWidth, Bottom: y}
}

// cellRange returns the inclusive cell range covered by a box
func (b Box) cellRange() (row0, col0, row1, col1 int) {
	const eps = 1e-6
	return int(math.Floor(b.Top)), int(math.Floor(b.Left)),
		int(math.Floor(b.Bottom - eps)), int(math.Floor(b.Right - eps))
}

// BoxCollides returns true if the box overlaps a blocked cell, a cell occupied by another
// object, or leaves the grid. objectID is ignored among occupants; pass -1 to check all.
func (g *Grid) BoxCollides(b Box, objectID int) bool {
	if b.Left < 0 || b.Top < 0 || b.Right > float64(g.cols) || b.Bottom > float64(g.rows) {
		return true
	}
	row0, col0, row1, col1 := b.cellRange()
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if !g.GetCell(row, col).IsFreeFor(objectID) {
				return true
			}
		}
	}
	return false
}

// Occupy records objectID in every cell covered by the box
func (g *Grid) Occupy(b Box, objectID int) {
	g.forBox(b, func(c *Cell) { c.Occupants.Put(objectID) })
}

// Vacate removes objectID from every cell covered by the box
func (g *Grid) Vacate(b Box, objectID int) {
	g.forBox(b, func(c *Cell) { c.Occupants.Remove(objectID) })
}

func (g *Grid) forBox(b Box, fn func(c *Cell)) {
	row0, col0, row1, col1 := b.cellRange()
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if cell := g.GetCell(row, col); cell != nil {
				fn(cell)
			}
		}
	}
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}
	if g.rows%2 != 0 || g.cols%2 != 0 {
		return "Grid dimensions must be whole tiles (even grid units)"
	}
	return ""
}
