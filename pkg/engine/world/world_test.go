package world

import "testing"

func TestResolveDiagonal(t *testing.T) {
	tests := []struct {
		current Direction
		request Direction
		want    Direction
	}{
		{North, MovingNorthWest, NorthWestNorth},
		{West, MovingNorthWest, NorthWestWest},
		{East, MovingNorthWest, NorthWestNorth},
		{South, MovingNorthWest, NorthWestWest},
		{South, MovingSouthWest, SouthWestSouth},
		{North, MovingSouthWest, SouthWestWest},
		{West, MovingNorthEast, NorthEastNorth},
		{South, MovingNorthEast, NorthEastEast},
		{West, MovingSouthEast, SouthEastSouth},
		{North, MovingSouthEast, SouthEastEast},
		{NorthWestNorth, East, East},
	}

	for _, tt := range tests {
		if got := tt.current.Resolve(tt.request); got != tt.want {
			t.Errorf("%v.Resolve(%v) = %v (%d), want %d", tt.current, tt.request, got, got, tt.want)
		}
	}
}

func TestFacing(t *testing.T) {
	tests := map[Direction]Direction{
		NorthWestNorth: North,
		NorthWestWest:  West,
		SouthEastEast:  East,
		SouthWestSouth: South,
		East:           East,
	}
	for d, want := range tests {
		if got := d.Facing(); got != want {
			t.Errorf("%d.Facing() = %v, want %v", d, got, want)
		}
	}
}

func TestDelta(t *testing.T) {
	dx, dy := North.Delta()
	if dx != 0 || dy != -1 {
		t.Errorf("North.Delta() = (%v, %v), want (0, -1)", dx, dy)
	}
	dx, dy = SouthEastSouth.Delta()
	if dx <= 0 || dy <= 0 {
		t.Errorf("SouthEastSouth.Delta() = (%v, %v), want both positive", dx, dy)
	}
}

func TestGridFromRows(t *testing.T) {
	g := NewGridFromRows([]string{
		"####",
		"#..#",
		"#..#",
		"####",
	})
	if g.Rows() != 4 || g.Cols() != 4 {
		t.Fatalf("grid size = %dx%d, want 4x4", g.Rows(), g.Cols())
	}
	if !g.IsBlocked(0, 0) || g.IsBlocked(1, 1) {
		t.Errorf("IsBlocked(0,0) = %v, IsBlocked(1,1) = %v, want true and false", g.IsBlocked(0, 0), g.IsBlocked(1, 1))
	}
	if !g.IsBlocked(-1, 2) || !g.IsBlocked(2, 9) {
		t.Error("out of bounds positions should be blocked")
	}
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want empty", msg)
	}
}

func TestBoxCollides(t *testing.T) {
	g := NewGridFromRows([]string{
		"######",
		"#....#",
		"#....#",
		"#....#",
		"######",
	})

	free := SpriteBox(3, 4, 1, 2)
	if g.BoxCollides(free, 1) {
		t.Errorf("BoxCollides(%+v) = true, want false", free)
	}

	wall := SpriteBox(1.5, 4, 1, 2)
	if !g.BoxCollides(wall, 1) {
		t.Errorf("BoxCollides(%+v) = false, want true", wall)
	}

	outside := SpriteBox(-1, 2, 1, 1)
	if !g.BoxCollides(outside, 1) {
		t.Error("a box leaving the grid should collide")
	}
}

func TestOccupancy(t *testing.T) {
	g := NewGrid(6, 6)
	box := SpriteBox(3, 3, 1, 1)

	g.Occupy(box, 7)
	if g.BoxCollides(box, 7) {
		t.Error("an object should not collide with itself")
	}
	if !g.BoxCollides(box, 8) {
		t.Error("another object should collide with an occupied box")
	}
	if !g.GetCell(2, 2).IsFreeFor(7) || g.GetCell(2, 2).IsFree() {
		t.Error("occupied cell reported wrong freedom")
	}

	g.Vacate(box, 7)
	if g.BoxCollides(box, 8) {
		t.Error("vacated box still collides")
	}
}

func TestValidateOddDimensions(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Validate() == "" {
		t.Error("Validate() on a 3x4 grid should fail")
	}
}
