package mapmode

import (
	"darkvale/pkg/engine/world"
)

// Sprite speeds in milliseconds per grid unit
const (
	VerySlowSpeed = 225.0
	SlowSpeed     = 190.0
	NormalSpeed   = 150.0
	FastSpeed     = 110.0
	VeryFastSpeed = 75.0
)

// VirtualSprite is an object that can walk around the collision grid. The camera is always one.
type VirtualSprite struct {
	Object

	direction world.Direction
	speed     float64

	// Moving is set by whoever controls the sprite; the sprite walks on its next update
	Moving  bool
	Running bool

	movedPosition bool

	// DialogueID names the dialogue started when the player talks to this sprite
	DialogueID string
}

// NewVirtualSprite creates a sprite facing south at normal speed
func NewVirtualSprite(id int, x, y float64) *VirtualSprite {
	return &VirtualSprite{
		Object: Object{
			ID:        id,
			Kind:      KindSprite,
			X:         x,
			Y:         y,
			HalfWidth: 1,
			Height:    2,
			Visible:   true,
			Collides:  true,
		},
		direction: world.South,
		speed:     NormalSpeed,
	}
}

// NewVirtualFocus creates the invisible sprite the camera can be moved onto
func NewVirtualFocus(id int) *VirtualSprite {
	s := NewVirtualSprite(id, 0, 0)
	s.Kind = KindVirtual
	s.Visible = false
	s.Collides = false
	return s
}

// Direction returns the sprite facing
func (s *VirtualSprite) Direction() world.Direction {
	return s.direction
}

// SetDirection resolves a movement request against the current facing
func (s *VirtualSprite) SetDirection(request world.Direction) {
	s.direction = s.direction.Resolve(request)
}

// SetSpeed sets the walking speed in milliseconds per grid unit
func (s *VirtualSprite) SetSpeed(ms float64) {
	if ms <= 0 {
		return
	}
	s.speed = ms
}

// Speed returns the walking speed in milliseconds per grid unit
func (s *VirtualSprite) Speed() float64 {
	return s.speed
}

// HasMoved returns true if the last update changed the sprite position
func (s *VirtualSprite) HasMoved() bool {
	return s.movedPosition
}

// SetPosition teleports the sprite
func (s *VirtualSprite) SetPosition(x, y float64) {
	s.vacate()
	s.X, s.Y = x, y
	s.occupy()
}

// Base implements MapObject
func (s *VirtualSprite) Base() *Object {
	return &s.Object
}

// Update walks the sprite when it is moving. Running doubles the distance.
// A blocked diagonal step slides along the free axis.
func (s *VirtualSprite) Update(elapsedMs int) {
	s.movedPosition = false
	if !s.Moving || elapsedMs <= 0 {
		return
	}

	distance := float64(elapsedMs) / s.speed
	if s.Running {
		distance *= 2
	}
	dx, dy := s.direction.Delta()
	dx *= distance
	dy *= distance

	switch {
	case s.canMoveTo(s.X+dx, s.Y+dy):
		s.moveTo(s.X+dx, s.Y+dy)
	case dx != 0 && s.canMoveTo(s.X+dx, s.Y):
		s.moveTo(s.X+dx, s.Y)
	case dy != 0 && s.canMoveTo(s.X, s.Y+dy):
		s.moveTo(s.X, s.Y+dy)
	}
}

func (s *VirtualSprite) canMoveTo(x, y float64) bool {
	if s.grid == nil || !s.Collides {
		return true
	}
	return !s.grid.BoxCollides(world.SpriteBox(x, y, s.HalfWidth, s.Height), s.ID)
}

func (s *VirtualSprite) moveTo(x, y float64) {
	s.vacate()
	s.X, s.Y = x, y
	s.occupy()
	s.movedPosition = true
}
