package mapmode

import (
	"math"
	"sort"

	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/world"
	"darkvale/pkg/game/global"
)

// ObjectKind tells the explore loop how the player can interact with an object
type ObjectKind int

const (
	KindPhysical ObjectKind = iota
	KindSprite
	KindVirtual
	KindTreasure
	KindSavePoint
)

// String returns the string representation of an object kind
func (k ObjectKind) String() string {
	switch k {
	case KindPhysical:
		return "physical"
	case KindSprite:
		return "sprite"
	case KindVirtual:
		return "virtual"
	case KindTreasure:
		return "treasure"
	case KindSavePoint:
		return "save point"
	default:
		return "unknown"
	}
}

// InteractionRange is how far in front of the camera objects can be interacted with, in grid units
const InteractionRange = 3.0

// Object is the data every map object shares. Positions are in grid units: X is the
// horizontal center and Y the bottom of the collision box.
type Object struct {
	ID        int
	Kind      ObjectKind
	Name      string
	X, Y      float64
	HalfWidth float64
	Height    float64
	Visible   bool
	Collides  bool
	Image     string

	// TalkEvent is started when the player interacts with a physical object
	TalkEvent string

	grid *world.Grid
}

// MapObject is anything the object supervisor can hold
type MapObject interface {
	Base() *Object
	Update(elapsedMs int)
}

// NewPhysicalObject creates a static object
func NewPhysicalObject(id int, x, y, halfWidth, height float64) *Object {
	return &Object{
		ID:        id,
		Kind:      KindPhysical,
		X:         x,
		Y:         y,
		HalfWidth: halfWidth,
		Height:    height,
		Visible:   true,
		Collides:  true,
	}
}

// Base implements MapObject
func (o *Object) Base() *Object {
	return o
}

// Update implements MapObject. Static objects have nothing to do.
func (o *Object) Update(elapsedMs int) {}

// Box returns the collision box of the object
func (o *Object) Box() world.Box {
	return world.SpriteBox(o.X, o.Y, o.HalfWidth, o.Height)
}

func (o *Object) occupy() {
	if o.grid != nil && o.Collides {
		o.grid.Occupy(o.Box(), o.ID)
	}
}

func (o *Object) vacate() {
	if o.grid != nil && o.Collides {
		o.grid.Vacate(o.Box(), o.ID)
	}
}

// TreasureObject is a chest holding items
type TreasureObject struct {
	Object
	Items []*global.Item
}

// NewTreasureObject creates a closed treasure
func NewTreasureObject(id int, x, y float64, items ...*global.Item) *TreasureObject {
	t := &TreasureObject{Object: *NewPhysicalObject(id, x, y, 1, 2), Items: items}
	t.Kind = KindTreasure
	return t
}

// Base implements MapObject
func (t *TreasureObject) Base() *Object {
	return &t.Object
}

// NewSavePoint creates a save point. Save points are flat and never collide.
func NewSavePoint(id int, x, y float64) *Object {
	o := NewPhysicalObject(id, x, y, 2, 2)
	o.Kind = KindSavePoint
	o.Collides = false
	return o
}

// ObjectSupervisor owns the map objects by draw layer
type ObjectSupervisor struct {
	flatGround []MapObject
	ground     []MapObject
	pass       []MapObject
	sky        []MapObject
	savePoints []MapObject
	all        map[int]MapObject

	grid *world.Grid
}

// NewObjectSupervisor creates a supervisor over a collision grid
func NewObjectSupervisor(grid *world.Grid) *ObjectSupervisor {
	return &ObjectSupervisor{
		all:  make(map[int]MapObject),
		grid: grid,
	}
}

// Grid returns the collision grid
func (objs *ObjectSupervisor) Grid() *world.Grid {
	return objs.grid
}

// GridWidth returns the collision grid width in grid units
func (objs *ObjectSupervisor) GridWidth() int {
	return objs.grid.Cols()
}

// GridHeight returns the collision grid height in grid units
func (objs *ObjectSupervisor) GridHeight() int {
	return objs.grid.Rows()
}

func (objs *ObjectSupervisor) register(obj MapObject, layer *[]MapObject) bool {
	if obj == nil || isNilObject(obj) {
		logging.Debugf("MapMode", "Couldn't add nil object.")
		return false
	}
	base := obj.Base()
	if _, exists := objs.all[base.ID]; exists {
		logging.Warnf("MapMode", "object id %d is already used, replacing it", base.ID)
		objs.remove(base.ID)
	}
	base.grid = objs.grid
	base.occupy()
	*layer = append(*layer, obj)
	objs.all[base.ID] = obj
	return true
}

// isNilObject catches typed nil pointers wrapped in the interface
func isNilObject(obj MapObject) bool {
	switch o := obj.(type) {
	case *Object:
		return o == nil
	case *VirtualSprite:
		return o == nil
	case *TreasureObject:
		return o == nil
	}
	return false
}

func (objs *ObjectSupervisor) remove(id int) {
	for _, layer := range []*[]MapObject{&objs.flatGround, &objs.ground, &objs.pass, &objs.sky, &objs.savePoints} {
		for i, o := range *layer {
			if o.Base().ID == id {
				o.Base().vacate()
				*layer = append((*layer)[:i], (*layer)[i+1:]...)
				break
			}
		}
	}
	delete(objs.all, id)
}

// AddFlatGroundObject adds an object drawn right over the ground tiles
func (objs *ObjectSupervisor) AddFlatGroundObject(obj MapObject) bool {
	return objs.register(obj, &objs.flatGround)
}

// AddGroundObject adds an object to the y-sorted ground layer
func (objs *ObjectSupervisor) AddGroundObject(obj MapObject) bool {
	return objs.register(obj, &objs.ground)
}

// AddPassObject adds an object drawn between the two ground passes
func (objs *ObjectSupervisor) AddPassObject(obj MapObject) bool {
	return objs.register(obj, &objs.pass)
}

// AddSkyObject adds an object drawn over the sky tiles
func (objs *ObjectSupervisor) AddSkyObject(obj MapObject) bool {
	return objs.register(obj, &objs.sky)
}

// AddSavePoint adds a save point, drawn before every other object
func (objs *ObjectSupervisor) AddSavePoint(obj MapObject) bool {
	return objs.register(obj, &objs.savePoints)
}

// GetObject returns an object by id, or nil
func (objs *ObjectSupervisor) GetObject(id int) MapObject {
	return objs.all[id]
}

// Len returns the number of objects on the map
func (objs *ObjectSupervisor) Len() int {
	return len(objs.all)
}

// Update updates every object, layer by layer
func (objs *ObjectSupervisor) Update(elapsedMs int) {
	for _, layer := range [][]MapObject{objs.savePoints, objs.flatGround, objs.ground, objs.pass, objs.sky} {
		for _, o := range layer {
			o.Update(elapsedMs)
		}
	}
}

// SortObjects orders the ground and sky layers by bottom position so lower objects draw last
func (objs *ObjectSupervisor) SortObjects() {
	byY := func(layer []MapObject) {
		sort.SliceStable(layer, func(i, j int) bool {
			return layer[i].Base().Y < layer[j].Base().Y
		})
	}
	byY(objs.ground)
	byY(objs.pass)
	byY(objs.sky)
}

// Layers returns the objects in draw order: save points, flat ground, ground, pass, sky
func (objs *ObjectSupervisor) Layers() [][]MapObject {
	return [][]MapObject{objs.savePoints, objs.flatGround, objs.ground, objs.pass, objs.sky}
}

// searchPoint is the point in front of a sprite where interactions are looked for
func searchPoint(s *VirtualSprite) (x, y float64) {
	x, y = s.X, s.Y-s.Height/2
	switch s.Direction().Facing() {
	case world.North:
		y -= s.Height/2 + InteractionRange/2
	case world.South:
		y += s.Height/2 + InteractionRange/2
	case world.West:
		x -= s.HalfWidth + InteractionRange/2
	case world.East:
		x += s.HalfWidth + InteractionRange/2
	}
	return x, y
}

// FindNearestInteractionObject returns the closest interactable object in front of the sprite, or nil.
// Save points are found when the sprite stands on them.
func (objs *ObjectSupervisor) FindNearestInteractionObject(s *VirtualSprite) MapObject {
	if s == nil {
		return nil
	}

	px, py := searchPoint(s)
	var nearest MapObject
	best := math.MaxFloat64
	for _, o := range objs.all {
		b := o.Base()
		if b.ID == s.ID || !interactable(o) {
			continue
		}

		var d float64
		if b.Kind == KindSavePoint {
			if !boxContains(b.Box(), s.X, s.Y-0.01) {
				continue
			}
			d = distance(s.X, s.Y, b.X, b.Y)
		} else {
			cx, cy := b.X, b.Y-b.Height/2
			d = distance(px, py, cx, cy)
			if d > InteractionRange+math.Max(b.HalfWidth, b.Height/2) {
				continue
			}
		}
		if d < best || (d == best && nearest != nil && b.ID < nearest.Base().ID) {
			best = d
			nearest = o
		}
	}
	return nearest
}

func interactable(o MapObject) bool {
	b := o.Base()
	switch b.Kind {
	case KindPhysical:
		return b.TalkEvent != ""
	case KindSprite:
		s, ok := o.(*VirtualSprite)
		return ok && s.DialogueID != ""
	case KindTreasure, KindSavePoint:
		return true
	}
	return false
}

func boxContains(b world.Box, x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
