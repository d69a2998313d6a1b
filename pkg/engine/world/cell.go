// Package world provides the collision grid map sprites move on.
// Positions are in grid units; one map tile spans two grid units on each axis.
package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Cell is one collision grid unit
type Cell struct {
	Row int
	Col int

	// Blocked cells cannot be entered by sprites with collision enabled
	Blocked bool

	// Occupants holds the ids of the objects whose collision box covers this cell
	Occupants mapset.Set[int]
}

// NewCell creates a new free cell at the given position
func NewCell(row, col int) *Cell {
	return &Cell{
		Row:       row,
		Col:       col,
		Occupants: mapset.New[int](),
	}
}

// IsFree returns true when nothing blocks the cell
func (c *Cell) IsFree() bool {
	return c != nil && !c.Blocked && c.Occupants.Size() == 0
}

// IsFreeFor returns true when the cell is only occupied by the given object, if at all
func (c *Cell) IsFreeFor(objectID int) bool {
	if c == nil || c.Blocked {
		return false
	}
	free := true
	c.Occupants.Each(func(id int) {
		if id != objectID {
			free = false
		}
	})
	return free
}
