package generator

import (
	"math/rand"
	"strings"

	"darkvale/pkg/game/config"
)

// Tile indices of the generated ground layer
const (
	tileStone  = 2
	tileRoad   = 4
	tilePlanks = 5
)

// Object counts on a generated map
const (
	maxWalkers  = 6
	walkerSpeed = 90
)

type tile struct {
	row, col int
}

// tileGrid is the open or closed state of every tile while a map is carved.
// The outer ring of tiles always stays closed.
type tileGrid struct {
	cols, rows int
	open       []bool
	corridor   []bool
}

func newTileGrid(cols, rows int) *tileGrid {
	return &tileGrid{
		cols:     cols,
		rows:     rows,
		open:     make([]bool, cols*rows),
		corridor: make([]bool, cols*rows),
	}
}

// IsPlayablePosition returns true for tiles inside the outer ring
func (g *tileGrid) IsPlayablePosition(row, col int) bool {
	return row > 0 && col > 0 && row < g.rows-1 && col < g.cols-1
}

func (g *tileGrid) isOpen(row, col int) bool {
	return g.IsPlayablePosition(row, col) && g.open[row*g.cols+col]
}

// carve opens a tile. A corridor never overwrites a room.
func (g *tileGrid) carve(row, col int, corridor bool) {
	if !g.IsPlayablePosition(row, col) {
		return
	}
	i := row*g.cols + col
	if corridor && g.open[i] {
		return
	}
	g.open[i] = true
	g.corridor[i] = corridor
}

// furthest uses BFS to find the open tile with the longest path from start.
// Room tiles are preferred over corridor tiles at equal distance.
func (g *tileGrid) furthest(start tile) tile {
	dist := map[tile]int{start: 0}
	queue := []tile{start}
	best, bestDist := start, -1

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		d := dist[current]

		if d > bestDist || (d == bestDist && !g.corridor[current.row*g.cols+current.col] && g.corridor[best.row*g.cols+best.col]) {
			best, bestDist = current, d
		}

		for _, n := range []tile{{current.row - 1, current.col}, {current.row, current.col + 1}, {current.row + 1, current.col}, {current.row, current.col - 1}} {
			if _, seen := dist[n]; seen || !g.isOpen(n.row, n.col) {
				continue
			}
			dist[n] = d + 1
			queue = append(queue, n)
		}
	}
	return best
}

// mapData turns the carved tiles into a map: every closed tile blocks its 2x2 grid cells
func (g *tileGrid) mapData(name, subname string) *config.MapData {
	md := &config.MapData{
		Name:    name,
		Subname: subname,
		TilesX:  g.cols,
		TilesY:  g.rows,
		Minimap: true,
	}

	ground := make([][]int, g.rows)
	for row := 0; row < g.rows; row++ {
		var line strings.Builder
		ground[row] = make([]int, g.cols)
		for col := 0; col < g.cols; col++ {
			switch {
			case !g.isOpen(row, col):
				ground[row][col] = tileStone
				line.WriteString("##")
			case g.corridor[row*g.cols+col]:
				ground[row][col] = tileRoad
				line.WriteString("..")
			default:
				ground[row][col] = tilePlanks
				line.WriteString("..")
			}
		}
		md.Collision = append(md.Collision, line.String(), line.String())
	}
	md.Layers = []config.LayerData{{Name: "ground", Type: "ground", Rows: ground}}
	return md
}

// feet returns the grid position that puts an object's feet inside a tile
func feet(t tile) (x, y float64) {
	return float64(t.col*2 + 1), float64(t.row*2) + 1.5
}

// populate places the hero and the save point on start, a treasure on the tile furthest
// from it and walkers on the given spots
func populate(md *config.MapData, g *tileGrid, rng *rand.Rand, start tile, spots []tile) {
	used := map[tile]bool{start: true}
	id := 1
	add := func(t tile, o config.ObjectData) {
		o.ID = id
		o.X, o.Y = feet(t)
		md.Objects = append(md.Objects, o)
		used[t] = true
		id++
	}

	add(start, config.ObjectData{Kind: "sprite", Name: "hero", Speed: 110})
	md.Camera.Sprite = 1

	for _, n := range []tile{{start.row, start.col + 1}, {start.row, start.col - 1}, {start.row - 1, start.col}} {
		if g.isOpen(n.row, n.col) {
			add(n, config.ObjectData{Kind: "save", Name: "save point"})
			break
		}
	}

	if far := g.furthest(start); !used[far] {
		add(far, config.ObjectData{Kind: "treasure", Name: "chest", Items: []config.ItemData{
			{ID: 1, Name: "ITEM_BREAD", Count: 1 + rng.Intn(3)},
			{ID: 2, Name: "ITEM_KEY", Count: 1},
		}})
	}

	directions := []string{"north", "south", "east", "west"}
	walkers := 0
	for _, t := range spots {
		if walkers == maxWalkers {
			break
		}
		if used[t] || !g.isOpen(t.row, t.col) {
			continue
		}
		add(t, config.ObjectData{Kind: "sprite", Name: "walker", Direction: directions[rng.Intn(len(directions))], Speed: walkerSpeed})
		walkers++
	}
}
