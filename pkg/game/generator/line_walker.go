package generator

import (
	"math/rand"

	"darkvale/pkg/game/config"
)

// LineWalkerGenerator generates maps by walking lines in random directions
// with branching probability
type LineWalkerGenerator struct{}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Line walker tuning, in tiles
const (
	branchProbability = 0.4
	minLineLength     = 3
	maxLineLength     = 8
	extraLines        = 4
)

// lineDeltas are the row and column steps north, east, south and west
var lineDeltas = []tile{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// walker carves two tiles wide lines so sprites fit in every passage
type walker struct {
	rng   *rand.Rand
	grid  *tileGrid
	spots []tile
}

// Generate creates a map of branching passages starting in the center
func (g *LineWalkerGenerator) Generate(rng *rand.Rand, tilesX, tilesY int) *config.MapData {
	w := &walker{rng: rng, grid: newTileGrid(tilesX, tilesY)}

	start := tile{tilesY / 2, tilesX / 2}
	w.carveBlock(start)

	// Main lines in all four directions
	for _, d := range lineDeltas {
		w.buildLine(start, d, branchProbability)
	}

	// Extra lines from random positions near the center
	for i := 0; i < extraLines; i++ {
		from := tile{start.row + rng.Intn(5) - 2, start.col + rng.Intn(5) - 2}
		if w.grid.isOpen(from.row, from.col) {
			w.buildLine(from, w.randomDirection(), branchProbability)
		}
	}

	md := w.grid.mapData("Generated Vale", g.Name())
	populate(md, w.grid, rng, start, w.spots)
	return md
}

func (w *walker) randomDirection() tile {
	return lineDeltas[w.rng.Intn(len(lineDeltas))]
}

// carveBlock opens the 2x2 tiles whose top left corner is t
func (w *walker) carveBlock(t tile) {
	for dr := 0; dr < 2; dr++ {
		for dc := 0; dc < 2; dc++ {
			w.grid.carve(t.row+dr, t.col+dc, false)
		}
	}
}

// buildLine walks from t in direction d, sometimes branching off in a random direction.
// The line stops before it would leave the playable area; its last tile becomes a walker spot.
func (w *walker) buildLine(t, d tile, branch float64) {
	length := minLineLength + w.rng.Intn(maxLineLength-minLineLength+1)

	for step := 0; step < length; step++ {
		next := tile{t.row + d.row, t.col + d.col}
		if !w.grid.IsPlayablePosition(next.row, next.col) || !w.grid.IsPlayablePosition(next.row+1, next.col+1) {
			break
		}
		if w.rng.Float64() < branch {
			w.buildLine(t, w.randomDirection(), branch-0.1)
		}
		t = next
		w.carveBlock(t)
	}
	w.spots = append(w.spots, t)
}
