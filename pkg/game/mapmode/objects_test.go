package mapmode

import (
	"strings"
	"testing"

	"darkvale/pkg/engine/world"
)

func TestAddNilObject(t *testing.T) {
	buf := captureLog(t)
	objs := NewObjectSupervisor(world.NewGrid(10, 10))

	var sprite *VirtualSprite
	if objs.AddGroundObject(nil) || objs.AddSkyObject(sprite) {
		t.Error("adding a nil object should fail")
	}
	if objs.Len() != 0 {
		t.Errorf("Len() = %d, want 0", objs.Len())
	}
	if strings.Count(buf.String(), "Couldn't add nil object.") != 2 {
		t.Errorf("log = %q, want two nil object warnings", buf.String())
	}
}

func TestAddObjectRegistersById(t *testing.T) {
	objs := NewObjectSupervisor(world.NewGrid(20, 20))
	rock := NewPhysicalObject(7, 5, 5, 1, 2)
	objs.AddPassObject(rock)

	if objs.GetObject(7) != rock {
		t.Error("GetObject(7) did not return the added object")
	}
	if !objs.Grid().BoxCollides(world.SpriteBox(5, 5, 1, 1), 99) {
		t.Error("a colliding object should occupy the grid")
	}
}

func TestAddObjectReplacesDuplicateId(t *testing.T) {
	captureLog(t)
	objs := NewObjectSupervisor(world.NewGrid(20, 20))
	objs.AddGroundObject(NewPhysicalObject(1, 5, 5, 1, 2))
	objs.AddSkyObject(NewPhysicalObject(1, 15, 15, 1, 2))

	if objs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", objs.Len())
	}
	if objs.Grid().BoxCollides(world.SpriteBox(5, 5, 1, 2), 99) {
		t.Error("the replaced object still occupies the grid")
	}
	layers := objs.Layers()
	if len(layers[2]) != 0 || len(layers[4]) != 1 {
		t.Errorf("ground = %d sky = %d objects, want 0 and 1", len(layers[2]), len(layers[4]))
	}
}

func TestSortObjects(t *testing.T) {
	objs := NewObjectSupervisor(world.NewGrid(40, 40))
	objs.AddGroundObject(NewPhysicalObject(1, 5, 30, 1, 2))
	objs.AddGroundObject(NewPhysicalObject(2, 10, 10, 1, 2))
	objs.AddGroundObject(NewPhysicalObject(3, 15, 20, 1, 2))

	objs.SortObjects()
	ground := objs.Layers()[2]
	want := []int{2, 3, 1}
	for i, id := range want {
		if ground[i].Base().ID != id {
			t.Errorf("ground[%d] = %d, want %d", i, ground[i].Base().ID, id)
		}
	}
}

func TestFindNearestInteractionObject(t *testing.T) {
	objs := NewObjectSupervisor(world.NewGrid(40, 40))
	hero := NewVirtualSprite(1, 20, 20)
	objs.AddGroundObject(hero)

	near := NewPhysicalObject(2, 20, 24, 1, 2)
	near.TalkEvent = "near"
	far := NewPhysicalObject(3, 20, 26, 1, 2)
	far.TalkEvent = "far"
	mute := NewPhysicalObject(4, 20, 23, 1, 1)
	behind := NewPhysicalObject(5, 20, 16, 1, 2)
	behind.TalkEvent = "behind"
	for _, o := range []*Object{near, far, mute, behind} {
		objs.AddGroundObject(o)
	}

	if got := objs.FindNearestInteractionObject(hero); got != near {
		t.Errorf("facing south: nearest = %v, want object 2", got)
	}

	hero.SetDirection(world.North)
	if got := objs.FindNearestInteractionObject(hero); got != behind {
		t.Errorf("facing north: nearest = %v, want object 5", got)
	}

	hero.SetDirection(world.East)
	if got := objs.FindNearestInteractionObject(hero); got != nil {
		t.Errorf("facing east: nearest = %v, want nil", got)
	}
}

func TestVirtualSpriteSlidesAlongWalls(t *testing.T) {
	grid := world.NewGrid(20, 20)
	for col := 0; col < 20; col++ {
		grid.SetBlocked(5, col, true)
	}
	objs := NewObjectSupervisor(grid)
	s := NewVirtualSprite(1, 10, 8)
	objs.AddGroundObject(s)

	s.SetDirection(world.MovingNorthWest)
	s.Moving = true
	s.Update(150)

	if !s.HasMoved() {
		t.Fatal("HasMoved() = false, want a slide west")
	}
	if s.Y != 8 || !approx(s.X, 10-0.7071067811865476) {
		t.Errorf("sprite at (%v, %v), want slid west only", s.X, s.Y)
	}
}

func TestVirtualSpriteBlockedByObject(t *testing.T) {
	objs := NewObjectSupervisor(world.NewGrid(20, 20))
	s := NewVirtualSprite(1, 10, 10)
	objs.AddGroundObject(s)
	objs.AddGroundObject(NewPhysicalObject(2, 12.5, 10, 1, 2))

	s.SetDirection(world.East)
	s.Moving = true
	s.Update(150)
	if s.HasMoved() || s.X != 10 {
		t.Errorf("sprite walked into an object: X = %v", s.X)
	}

	s.SetDirection(world.West)
	s.Update(150)
	if !s.HasMoved() || s.X != 9 {
		t.Errorf("sprite X = %v, want 9", s.X)
	}
}
