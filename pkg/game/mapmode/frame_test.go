package mapmode

import (
	"math"
	"testing"

	"darkvale/pkg/engine/timer"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func frameAt(x, y float64, tilesX, tilesY int) Frame {
	return ComputeFrame(FrameInput{CameraX: x, CameraY: y, TilesX: tilesX, TilesY: tilesY})
}

func TestComputeFrameCentered(t *testing.T) {
	f := frameAt(64, 48, 100, 100)

	if f.TileXStart != 16 || f.TileYStart != 12 {
		t.Errorf("tile start = (%d, %d), want (16, 12)", f.TileXStart, f.TileYStart)
	}
	if !approx(f.TileXOffset, 1) || !approx(f.TileYOffset, 2) {
		t.Errorf("tile offset = (%v, %v), want (1, 2)", f.TileXOffset, f.TileYOffset)
	}
	if f.NumDrawXAxis != TilesOnXAxis || f.NumDrawYAxis != TilesOnYAxis {
		t.Errorf("draw count = (%d, %d), want (%d, %d)", f.NumDrawXAxis, f.NumDrawYAxis, TilesOnXAxis, TilesOnYAxis)
	}
	want := ScreenEdges{Top: 24, Bottom: 72, Left: 32, Right: 96}
	if f.Edges != want {
		t.Errorf("edges = %+v, want %+v", f.Edges, want)
	}
	if f.XPinned || f.YPinned {
		t.Error("centered camera should not be pinned")
	}
}

func TestComputeFrameOddPositionWithFraction(t *testing.T) {
	f := frameAt(65.5, 49.5, 100, 100)

	// 0.5 floors to 0.48 on the pixel grid; odd positions shift by one grid unit
	if !approx(f.TileXOffset, -0.48) {
		t.Errorf("TileXOffset = %v, want -0.48", f.TileXOffset)
	}
	if !approx(f.TileYOffset, 0.52) {
		t.Errorf("TileYOffset = %v, want 0.52", f.TileYOffset)
	}
	if f.TileXStart != 16 || f.TileYStart != 12 {
		t.Errorf("tile start = (%d, %d), want (16, 12)", f.TileXStart, f.TileYStart)
	}
	if f.NumDrawXAxis != TilesOnXAxis+1 || f.NumDrawYAxis != TilesOnYAxis+1 {
		t.Errorf("draw count = (%d, %d), want one extra tile per axis", f.NumDrawXAxis, f.NumDrawYAxis)
	}
	if !approx(f.Edges.Left, 33.5) || !approx(f.Edges.Top, 25.5) {
		t.Errorf("edges = %+v, want left 33.5 top 25.5", f.Edges)
	}
}

func TestComputeFrameClampLow(t *testing.T) {
	f := frameAt(10.3, 10.7, 100, 100)

	if f.TileXStart != 0 || f.TileYStart != 0 {
		t.Errorf("tile start = (%d, %d), want (0, 0)", f.TileXStart, f.TileYStart)
	}
	if f.TileXOffset != 1 || f.TileYOffset != 2 {
		t.Errorf("tile offset = (%v, %v), want (1, 2)", f.TileXOffset, f.TileYOffset)
	}
	want := ScreenEdges{Top: 0, Bottom: ScreenGridYLength, Left: 0, Right: ScreenGridXLength}
	if f.Edges != want {
		t.Errorf("edges = %+v, want %+v", f.Edges, want)
	}
	if !f.XPinned || !f.YPinned {
		t.Error("camera near the top left corner should be pinned on both axes")
	}
	if f.NumDrawXAxis != TilesOnXAxis || f.NumDrawYAxis != TilesOnYAxis {
		t.Errorf("draw count = (%d, %d), want aligned counts", f.NumDrawXAxis, f.NumDrawYAxis)
	}
}

func TestComputeFrameClampHigh(t *testing.T) {
	f := frameAt(195, 195, 100, 100)

	if f.TileXStart != 100-TilesOnXAxis || f.TileYStart != 100-TilesOnYAxis {
		t.Errorf("tile start = (%d, %d), want (%d, %d)", f.TileXStart, f.TileYStart, 100-TilesOnXAxis, 100-TilesOnYAxis)
	}
	want := ScreenEdges{Top: 152, Bottom: 200, Left: 136, Right: 200}
	if f.Edges != want {
		t.Errorf("edges = %+v, want %+v", f.Edges, want)
	}
	if !f.XPinned || !f.YPinned {
		t.Error("camera near the bottom right corner should be pinned on both axes")
	}
}

func TestComputeFrameHighBoundary(t *testing.T) {
	tests := []struct {
		x      float64
		pinned bool
		start  int
	}{
		{166, false, 67},
		{168, true, 68},
	}
	for _, tt := range tests {
		f := frameAt(tt.x, 100, 100, 100)
		if f.XPinned != tt.pinned || f.TileXStart != tt.start {
			t.Errorf("frameAt(%v) pinned = %v start = %d, want %v and %d", tt.x, f.XPinned, f.TileXStart, tt.pinned, tt.start)
		}
	}
}

func TestComputeFrameSmallMap(t *testing.T) {
	f := frameAt(20, 10, 20, 10)

	if f.TileXStart != 0 || f.TileYStart != 0 {
		t.Errorf("tile start = (%d, %d), want (0, 0)", f.TileXStart, f.TileYStart)
	}
	if f.NumDrawXAxis != 20 || f.NumDrawYAxis != 10 {
		t.Errorf("draw count = (%d, %d), want (20, 10)", f.NumDrawXAxis, f.NumDrawYAxis)
	}
}

func TestComputeFrameStaysInsideMap(t *testing.T) {
	const tilesX, tilesY = 60, 45
	for x := 0.0; x <= tilesX*2; x += 0.37 {
		for y := 0.0; y <= tilesY*2; y += 0.53 {
			f := frameAt(x, y, tilesX, tilesY)
			if f.TileXStart < 0 || f.TileXStart+f.NumDrawXAxis > tilesX {
				t.Fatalf("frameAt(%v, %v) x window [%d, %d) leaves the map", x, y, f.TileXStart, f.TileXStart+f.NumDrawXAxis)
			}
			if f.TileYStart < 0 || f.TileYStart+f.NumDrawYAxis > tilesY {
				t.Fatalf("frameAt(%v, %v) y window [%d, %d) leaves the map", x, y, f.TileYStart, f.TileYStart+f.NumDrawYAxis)
			}
		}
	}
}

func TestComputeFrameTransition(t *testing.T) {
	tm := timer.New(1000, 0)
	tm.Run()
	tm.Update(250)

	f := ComputeFrame(FrameInput{
		CameraX:   64,
		CameraY:   48,
		DeltaX:    10,
		Timer:     tm,
		TilesX:    100,
		TilesY:    100,
		ElapsedMs: 16,
	})

	// Three quarters of the delta are still ahead of the camera
	if !approx(f.Edges.Left, 71.5-HalfScreenGridXLength) {
		t.Errorf("Edges.Left = %v, want %v", f.Edges.Left, 71.5-HalfScreenGridXLength)
	}
	if !approx(f.ParallaxX, 2.56) {
		t.Errorf("ParallaxX = %v, want 2.56", f.ParallaxX)
	}
	if f.ParallaxY != 0 {
		t.Errorf("ParallaxY = %v, want 0", f.ParallaxY)
	}
}

func TestComputeFrameNoParallaxWhenPinned(t *testing.T) {
	tm := timer.New(1000, 0)
	tm.Run()

	f := ComputeFrame(FrameInput{
		CameraX:   10,
		CameraY:   48,
		DeltaX:    10,
		DeltaY:    10,
		Timer:     tm,
		TilesX:    100,
		TilesY:    100,
		ElapsedMs: 16,
	})
	if !f.XPinned || f.ParallaxX != 0 {
		t.Errorf("pinned x axis: XPinned = %v ParallaxX = %v, want true and 0", f.XPinned, f.ParallaxX)
	}
	if f.ParallaxY == 0 {
		t.Error("free y axis should get parallax")
	}
}

func TestComputeFrameFinishedTimerIgnored(t *testing.T) {
	tm := timer.New(100, 0)
	tm.Run()
	tm.Update(100)

	f := ComputeFrame(FrameInput{CameraX: 64, CameraY: 48, DeltaX: 10, Timer: tm, TilesX: 100, TilesY: 100, ElapsedMs: 16})
	if f.Edges.Left != 32 || f.ParallaxX != 0 {
		t.Errorf("finished transition moved the frame: left = %v parallax = %v", f.Edges.Left, f.ParallaxX)
	}
}

func TestScreenCoordinates(t *testing.T) {
	f := frameAt(64, 48, 100, 100)
	if got := f.ScreenXCoordinate(64); got != 512 {
		t.Errorf("ScreenXCoordinate(64) = %v, want 512", got)
	}
	if got := f.ScreenYCoordinate(48); got != 384 {
		t.Errorf("ScreenYCoordinate(48) = %v, want 384", got)
	}
	if got := f.ScreenXCoordinate(32); got != 0 {
		t.Errorf("ScreenXCoordinate(32) = %v, want 0", got)
	}
}
