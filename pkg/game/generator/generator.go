// Package generator builds random maps: walled rooms and corridors with a hero, a save point,
// a treasure at the far end and a few walkers.
package generator

import (
	"fmt"
	"math/rand"
	"slices"

	"darkvale/pkg/game/config"
)

// RandomMapName is the -map value that builds a random map
const RandomMapName = "random"

// Default random map size in tiles
const (
	DefaultTilesX = 60
	DefaultTilesY = 40
)

// MapGenerator is an interface for map generation algorithms
type MapGenerator interface {
	Generate(rng *rand.Rand, tilesX, tilesY int) *config.MapData
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{}
	BSP        = &BSPGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator MapGenerator = BSP

var generators = map[string]MapGenerator{
	"bsp":    BSP,
	"walker": LineWalker,
}

// ByName returns a generator by its flag name: bsp or walker
func ByName(name string) (MapGenerator, error) {
	if g, ok := generators[name]; ok {
		return g, nil
	}
	names := make([]string, 0, len(generators))
	for n := range generators {
		names = append(names, n)
	}
	slices.Sort(names)
	return nil, fmt.Errorf("unknown map generator %q (want one of %v)", name, names)
}
