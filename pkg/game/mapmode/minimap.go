package mapmode

import (
	"darkvale/pkg/engine/world"
)

// Minimap layout in standard resolution pixels
const (
	MinimapPosX = 775.0
	MinimapPosY = 545.0

	MinimapBoxXLength = 10.0
	MinimapBoxYLength = 7.5

	MinimapDefaultOpacity = 0.75
	MinimapOverlapOpacity = 0.45
)

// Location marker frames by camera facing
const (
	MarkerNorth = 0
	MarkerWest  = 1
	MarkerSouth = 2
	MarkerEast  = 3
)

// Minimap tracks the camera on a scaled picture of the collision grid.
// Drawing the picture itself is left to the renderer.
type Minimap struct {
	gridWidth  int
	gridHeight int

	xHalfLen float64
	yHalfLen float64

	PositionX, PositionY float64
	CenterX, CenterY     float64
	Opacity              float64
	AlphaScale           float64
	MarkerFrame          int
}

// NewMinimap creates a minimap for a collision grid of the given size in grid units
func NewMinimap(gridWidth, gridHeight int) *Minimap {
	return &Minimap{
		gridWidth:   gridWidth,
		gridHeight:  gridHeight,
		xHalfLen:    1.75 * TilesOnXAxis * MinimapBoxXLength,
		yHalfLen:    1.75 * TilesOnYAxis * MinimapBoxYLength,
		Opacity:     MinimapDefaultOpacity,
		AlphaScale:  1,
		MarkerFrame: MarkerSouth,
	}
}

// HalfLengths returns the half size of the shown area in minimap pixels
func (m *Minimap) HalfLengths() (x, y float64) {
	return m.xHalfLen, m.yHalfLen
}

// DrawOpacity is the opacity the minimap is drawn with, never above the map GUI alpha
func (m *Minimap) DrawOpacity() float64 {
	return min(m.Opacity, m.AlphaScale)
}

// Update follows the camera. The view is locked so it never rolls over the map edge.
func (m *Minimap) Update(camera *VirtualSprite, f Frame, alphaScale float64) {
	if camera == nil {
		return
	}

	m.AlphaScale = alphaScale
	m.PositionX = camera.X
	m.PositionY = camera.Y
	m.CenterX = MinimapBoxXLength * m.PositionX
	m.CenterY = MinimapBoxYLength * m.PositionY

	if f.ScreenXCoordinate(m.PositionX) >= MinimapPosX && f.ScreenYCoordinate(m.PositionY) >= MinimapPosY {
		m.Opacity = MinimapOverlapOpacity
	} else {
		m.Opacity = MinimapDefaultOpacity
	}

	width := float64(m.gridWidth) * MinimapBoxXLength
	height := float64(m.gridHeight) * MinimapBoxYLength
	if m.CenterX-m.xHalfLen < 0 {
		m.CenterX = m.xHalfLen
	}
	if m.CenterX+m.xHalfLen > width {
		m.CenterX = width - m.xHalfLen
	}
	if m.CenterY-m.yHalfLen < 0 {
		m.CenterY = m.yHalfLen
	}
	if m.CenterY+m.yHalfLen > height {
		m.CenterY = height - m.yHalfLen
	}

	switch camera.Direction().Facing() {
	case world.North:
		m.MarkerFrame = MarkerNorth
	case world.West:
		m.MarkerFrame = MarkerWest
	case world.South:
		m.MarkerFrame = MarkerSouth
	case world.East:
		m.MarkerFrame = MarkerEast
	}
}
