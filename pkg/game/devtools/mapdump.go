// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"darkvale/pkg/engine/world"
	"darkvale/pkg/game/mapmode"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a collision cell
func cellSymbol(cell *world.Cell) rune {
	switch {
	case cell == nil:
		return ' '
	case cell.Blocked:
		return '#'
	case cell.Occupants.Size() > 0:
		return 'o'
	default:
		return '.'
	}
}

// WriteMap writes the frame, the object list and the collision grid of a map.
// The camera sprite's feet are drawn as '@'.
func WriteMap(w io.Writer, m *mapmode.MapMode) error {
	grid := m.Objects().Grid()
	f := m.Frame()
	cam := m.Camera()
	camRow, camCol := int(cam.Y)-1, int(cam.X)

	var b strings.Builder
	fmt.Fprintf(&b, "Map: %s\n", m.Name())
	fmt.Fprintf(&b, "Grid: %dx%d\n", grid.Cols(), grid.Rows())
	fmt.Fprintf(&b, "Camera: (%.2f, %.2f)\n", cam.X, cam.Y)
	fmt.Fprintf(&b, "Frame: start (%d, %d) offset (%.2f, %.2f) draw %dx%d pinned x=%t y=%t\n",
		f.TileXStart, f.TileYStart, f.TileXOffset, f.TileYOffset, f.NumDrawXAxis, f.NumDrawYAxis, f.XPinned, f.YPinned)
	fmt.Fprintf(&b, "Edges: left %.2f right %.2f top %.2f bottom %.2f\n\n",
		f.Edges.Left, f.Edges.Right, f.Edges.Top, f.Edges.Bottom)

	var objects []*mapmode.Object
	for _, layer := range m.Objects().Layers() {
		for _, o := range layer {
			objects = append(objects, o.Base())
		}
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].ID < objects[j].ID })
	b.WriteString("Objects:\n")
	for _, o := range objects {
		fmt.Fprintf(&b, "  %4d %-10s (%.2f, %.2f) %s\n", o.ID, o.Kind, o.X, o.Y, o.Name)
	}

	b.WriteString("\nLegend: # blocked, o occupied, . free, @ camera\n")
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			if row == camRow && col == camCol {
				b.WriteRune('@')
				continue
			}
			b.WriteRune(cellSymbol(grid.GetCell(row, col)))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DumpMap writes the map dump to map.txt in dir and returns its path
func DumpMap(m *mapmode.MapMode, dir string) (string, error) {
	path := filepath.Join(dir, mapDumpFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteMap(f, m); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
