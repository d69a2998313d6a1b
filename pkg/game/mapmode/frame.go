package mapmode

import (
	"math"

	"darkvale/pkg/engine/timer"
	"darkvale/pkg/engine/video"
)

// Screen geometry in map grid units. A tile covers 2x2 grid units.
const (
	ScreenGridXLength     = 64.0
	ScreenGridYLength     = 48.0
	HalfScreenGridXLength = ScreenGridXLength / 2
	HalfScreenGridYLength = ScreenGridYLength / 2

	TilesOnXAxis     = 32
	TilesOnYAxis     = 24
	HalfTilesOnXAxis = TilesOnXAxis / 2
	HalfTilesOnYAxis = TilesOnYAxis / 2

	// PixelLength is the size of one standard resolution pixel in grid units
	PixelLength = 0.04
)

// ScreenEdges are the map coordinates of the visible area
type ScreenEdges struct {
	Top, Bottom, Left, Right float64
}

// Frame describes which tiles are drawn this tick and where
type Frame struct {
	TileXStart  int
	TileYStart  int
	TileXOffset float64
	TileYOffset float64

	NumDrawXAxis int
	NumDrawYAxis int

	Edges ScreenEdges

	// XPinned and YPinned are set when the camera is held against a map boundary on that axis
	XPinned bool
	YPinned bool

	ParallaxX float64
	ParallaxY float64
}

// FrameInput holds everything the frame is derived from
type FrameInput struct {
	CameraX, CameraY float64

	// DeltaX and DeltaY are the offset of the camera transition start from the camera
	DeltaX, DeltaY float64
	Timer          *timer.SystemTimer

	TilesX, TilesY int
	ElapsedMs      int
}

// floorToMultiple rounds v down to a multiple of m
func floorToMultiple(v, m float64) float64 {
	return math.Floor(v/m) * m
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// ComputeFrame derives the frame from the camera position. It keeps the drawn tile window
// inside the map, pinning the view against the edges when the camera gets close to them.
func ComputeFrame(in FrameInput) Frame {
	var f Frame

	camX, camY := in.CameraX, in.CameraY
	transition := in.Timer != nil && in.Timer.IsRunning()
	if transition {
		left := 1.0 - in.Timer.PercentComplete()
		camX += left * in.DeltaX
		camY += left * in.DeltaY
	}

	curX := int(math.Floor(camX))
	curY := int(math.Floor(camY))
	offX := floorToMultiple(camX-float64(curX), PixelLength)
	offY := floorToMultiple(camY-float64(curY), PixelLength)

	f.TileXOffset = 1.0 - offX
	if curX%2 != 0 {
		f.TileXOffset -= 1.0
	}
	f.TileYOffset = 2.0 - offY
	if curY%2 != 0 {
		f.TileYOffset -= 1.0
	}

	f.TileXStart = floorDiv2(curX) - HalfTilesOnXAxis
	f.TileYStart = floorDiv2(curY) - HalfTilesOnYAxis

	f.Edges = ScreenEdges{
		Top:    camY - HalfScreenGridYLength,
		Bottom: camY + HalfScreenGridYLength,
		Left:   camX - HalfScreenGridXLength,
		Right:  camX + HalfScreenGridXLength,
	}

	if f.TileXStart < 0 {
		f.TileXStart = 0
		f.TileXOffset = 1.0
		f.Edges.Left = 0
		f.Edges.Right = ScreenGridXLength
		f.XPinned = true
	} else if f.TileXStart+TilesOnXAxis >= in.TilesX {
		f.TileXStart = max(in.TilesX-TilesOnXAxis, 0)
		f.TileXOffset = 1.0
		f.Edges.Right = float64(in.TilesX * 2)
		f.Edges.Left = f.Edges.Right - ScreenGridXLength
		f.XPinned = true
	}

	if f.TileYStart < 0 {
		f.TileYStart = 0
		f.TileYOffset = 2.0
		f.Edges.Top = 0
		f.Edges.Bottom = ScreenGridYLength
		f.YPinned = true
	} else if f.TileYStart+TilesOnYAxis >= in.TilesY {
		f.TileYStart = max(in.TilesY-TilesOnYAxis, 0)
		f.TileYOffset = 2.0
		f.Edges.Bottom = float64(in.TilesY * 2)
		f.Edges.Top = f.Edges.Bottom - ScreenGridYLength
		f.YPinned = true
	}

	if inRange(f.TileXOffset, 0.999, 1.001) {
		f.NumDrawXAxis = TilesOnXAxis
	} else {
		f.NumDrawXAxis = TilesOnXAxis + 1
	}
	if inRange(f.TileYOffset, 1.999, 2.001) {
		f.NumDrawYAxis = TilesOnYAxis
	} else {
		f.NumDrawYAxis = TilesOnYAxis + 1
	}
	f.NumDrawXAxis = max(min(f.NumDrawXAxis, in.TilesX-f.TileXStart), 0)
	f.NumDrawYAxis = max(min(f.NumDrawYAxis, in.TilesY-f.TileYStart), 0)

	if transition && in.Timer.Duration() > 0 {
		duration := float64(in.Timer.Duration())
		elapsed := float64(in.ElapsedMs)
		if !f.XPinned {
			f.ParallaxX = in.DeltaX * elapsed / duration / ScreenGridXLength * video.StandardResWidth
		}
		if !f.YPinned {
			f.ParallaxY = in.DeltaY * elapsed / duration / ScreenGridYLength * video.StandardResHeight
		}
	}

	return f
}

func floorDiv2(v int) int {
	if v < 0 {
		return (v - 1) / 2
	}
	return v / 2
}

// ScreenXCoordinate converts a map x coordinate to standard resolution pixels
func (f Frame) ScreenXCoordinate(x float64) float64 {
	return (x - f.Edges.Left) * video.StandardResWidth / ScreenGridXLength
}

// ScreenYCoordinate converts a map y coordinate to standard resolution pixels
func (f Frame) ScreenYCoordinate(y float64) float64 {
	return (y - f.Edges.Top) * video.StandardResHeight / ScreenGridYLength
}
