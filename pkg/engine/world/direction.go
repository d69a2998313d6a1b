package world

// Direction is the facing of a map sprite. Diagonal directions remember which lateral way the
// sprite faces, so an animation can keep showing the north or west frame while moving north-west.
type Direction uint16

// Direction constants
const (
	North Direction = 1 << iota
	South
	West
	East
	NorthWestNorth
	NorthWestWest
	NorthEastNorth
	NorthEastEast
	SouthWestSouth
	SouthWestWest
	SouthEastSouth
	SouthEastEast
)

// Movement requests that SetDirection resolves into one of the diagonal facings
const (
	MovingNorthWest = NorthWestNorth | NorthWestWest
	MovingNorthEast = NorthEastNorth | NorthEastEast
	MovingSouthWest = SouthWestSouth | SouthWestWest
	MovingSouthEast = SouthEastSouth | SouthEastEast
)

// Facing groups
const (
	FacingNorth = North | NorthWestNorth | NorthEastNorth
	FacingSouth = South | SouthWestSouth | SouthEastSouth
	FacingWest  = West | NorthWestWest | SouthWestWest
	FacingEast  = East | NorthEastEast | SouthEastEast

	lateral = North | South | West | East
)

// AllDirections returns all the concrete facings for iteration
func AllDirections() []Direction {
	return []Direction{
		North, South, West, East,
		NorthWestNorth, NorthWestWest, NorthEastNorth, NorthEastEast,
		SouthWestSouth, SouthWestWest, SouthEastSouth, SouthEastEast,
	}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	case NorthWestNorth, NorthWestWest, MovingNorthWest:
		return "NorthWest"
	case NorthEastNorth, NorthEastEast, MovingNorthEast:
		return "NorthEast"
	case SouthWestSouth, SouthWestWest, MovingSouthWest:
		return "SouthWest"
	case SouthEastSouth, SouthEastEast, MovingSouthEast:
		return "SouthEast"
	default:
		return "Unknown"
	}
}

// IsLateral returns true for the four straight directions
func (d Direction) IsLateral() bool {
	return d&lateral != 0
}

// Resolve returns the facing a sprite currently facing d should take when asked to move in request.
// Lateral requests are taken as is; diagonal requests keep the current lateral facing when it matches.
func (d Direction) Resolve(request Direction) Direction {
	switch {
	case request&lateral != 0:
		return request
	case request&MovingNorthWest != 0:
		if d&(FacingNorth|FacingEast) != 0 {
			return NorthWestNorth
		}
		return NorthWestWest
	case request&MovingSouthWest != 0:
		if d&(FacingSouth|FacingEast) != 0 {
			return SouthWestSouth
		}
		return SouthWestWest
	case request&MovingNorthEast != 0:
		if d&(FacingNorth|FacingWest) != 0 {
			return NorthEastNorth
		}
		return NorthEastEast
	case request&MovingSouthEast != 0:
		if d&(FacingSouth|FacingWest) != 0 {
			return SouthEastSouth
		}
		return SouthEastEast
	default:
		return d
	}
}

// Facing returns the lateral direction the sprite is shown facing
func (d Direction) Facing() Direction {
	switch {
	case d&FacingNorth != 0:
		return North
	case d&FacingSouth != 0:
		return South
	case d&FacingWest != 0:
		return West
	case d&FacingEast != 0:
		return East
	default:
		return South
	}
}

// Delta returns the unit movement for this direction in grid units (y grows southward)
func (d Direction) Delta() (dx, dy float64) {
	const diag = 0.7071067811865476
	switch {
	case d == North:
		return 0, -1
	case d == South:
		return 0, 1
	case d == West:
		return -1, 0
	case d == East:
		return 1, 0
	case d&MovingNorthWest != 0:
		return -diag, -diag
	case d&MovingNorthEast != 0:
		return diag, -diag
	case d&MovingSouthWest != 0:
		return -diag, diag
	case d&MovingSouthEast != 0:
		return diag, diag
	default:
		return 0, 0
	}
}
