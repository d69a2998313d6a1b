package mapmode

// LayerType tells whether a tile layer is drawn under or over the objects
type LayerType int

const (
	GroundLayer LayerType = iota
	SkyLayer
)

// NoTile marks an empty tile slot
const NoTile = -1

// TileLayer is a grid of tile indices
type TileLayer struct {
	Name  string
	Type  LayerType
	Tiles [][]int
}

// TileAt returns the tile index at a tile position, or NoTile
func (l *TileLayer) TileAt(x, y int) int {
	if y < 0 || y >= len(l.Tiles) || x < 0 || x >= len(l.Tiles[y]) {
		return NoTile
	}
	return l.Tiles[y][x]
}

// TileSupervisor holds the tile layers and the shared tile animation clock
type TileSupervisor struct {
	tilesX int
	tilesY int
	layers []*TileLayer

	// animation advances a frame every AnimationFrameTime milliseconds
	animationTime int
}

// AnimationFrameTime is the display time of one animated tile frame
const AnimationFrameTime = 200

// NewTileSupervisor creates an empty tile set of the given size in tiles
func NewTileSupervisor(tilesX, tilesY int) *TileSupervisor {
	return &TileSupervisor{tilesX: tilesX, tilesY: tilesY}
}

// AddLayer appends a layer. Layers draw in the order they were added.
func (ts *TileSupervisor) AddLayer(l *TileLayer) {
	if l == nil {
		return
	}
	ts.layers = append(ts.layers, l)
}

// TilesX returns the map width in tiles
func (ts *TileSupervisor) TilesX() int {
	return ts.tilesX
}

// TilesY returns the map height in tiles
func (ts *TileSupervisor) TilesY() int {
	return ts.tilesY
}

// Layers returns the layers of a given type in draw order
func (ts *TileSupervisor) Layers(t LayerType) []*TileLayer {
	var out []*TileLayer
	for _, l := range ts.layers {
		if l.Type == t {
			out = append(out, l)
		}
	}
	return out
}

// Update advances the tile animations
func (ts *TileSupervisor) Update(elapsedMs int) {
	ts.animationTime += elapsedMs
}

// AnimationFrame returns the current frame of a tile animation with n frames
func (ts *TileSupervisor) AnimationFrame(n int) int {
	if n <= 1 {
		return 0
	}
	return (ts.animationTime / AnimationFrameTime) % n
}

// VisibleTiles calls fn for every tile of the layer inside the frame's draw window,
// with the tile's screen position in grid units.
func (ts *TileSupervisor) VisibleTiles(l *TileLayer, f Frame, fn func(tile int, gx, gy float64)) {
	for row := 0; row < f.NumDrawYAxis; row++ {
		for col := 0; col < f.NumDrawXAxis; col++ {
			tile := l.TileAt(f.TileXStart+col, f.TileYStart+row)
			if tile == NoTile {
				continue
			}
			gx := f.TileXOffset + float64(col*2) - 1
			gy := f.TileYOffset + float64(row*2) - 2
			fn(tile, gx, gy)
		}
	}
}
