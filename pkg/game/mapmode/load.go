package mapmode

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/world"
	"darkvale/pkg/game/config"
	"darkvale/pkg/game/global"
)

var directionNames = map[string]world.Direction{
	"":      world.South,
	"north": world.North,
	"south": world.South,
	"west":  world.West,
	"east":  world.East,
}

// Load builds a map from its description. Names and subnames are translated.
func Load(md *config.MapData, media *global.Media, rng *rand.Rand, prefs Preferences) *MapMode {
	var name, subname string
	if md.Name != "" {
		name = gotext.Get(md.Name)
	}
	if md.Subname != "" {
		subname = gotext.Get(md.Subname)
	}

	m := New(Config{
		Name:             name,
		Subname:          subname,
		Grid:             world.NewGridFromRows(md.CollisionRows()),
		TilesX:           md.TilesX,
		TilesY:           md.TilesY,
		Media:            media,
		Rand:             rng,
		Prefs:            prefs,
		ShowMinimap:      md.Minimap,
		UnlimitedStamina: md.UnlimitedStamina,
		RunningDisabled:  md.RunningDisabled,
	})

	for _, l := range md.Layers {
		t := GroundLayer
		if l.Type == "sky" {
			t = SkyLayer
		}
		m.tiles.AddLayer(&TileLayer{Name: l.Name, Type: t, Tiles: md.LayerTiles(l)})
	}

	for _, e := range md.Events {
		m.events.RegisterEvent(&Event{Name: e.Name, Duration: e.Duration, Text: e.Text, Next: e.Next})
	}
	for _, d := range md.Dialogues {
		lines := make([]DialogueLine, 0, len(d.Lines))
		for _, l := range d.Lines {
			lines = append(lines, DialogueLine{Speaker: l.Speaker, Text: l.Text})
		}
		m.dialogue.RegisterDialogue(&Dialogue{ID: d.ID, Lines: lines})
	}

	for _, od := range md.Objects {
		obj := buildObject(od)
		if obj == nil {
			continue
		}
		m.addToLayer(od.Layer, od.Kind, obj)
	}

	if md.Camera.Sprite != 0 {
		if s, ok := m.objects.GetObject(md.Camera.Sprite).(*VirtualSprite); ok {
			m.SetCamera(s, 0)
		} else {
			logging.Warnf("MapMode", "camera sprite %d is not a sprite, using the virtual focus", md.Camera.Sprite)
		}
	}
	if m.IsCameraOnVirtualFocus() {
		m.MoveVirtualFocus(md.Camera.Start.X, md.Camera.Start.Y)
	}

	m.updateFrame(0)
	return m
}

func (m *MapMode) addToLayer(layer, kind string, obj MapObject) {
	if kind == "save" {
		m.objects.AddSavePoint(obj)
		return
	}
	switch layer {
	case "flat":
		m.objects.AddFlatGroundObject(obj)
	case "pass":
		m.objects.AddPassObject(obj)
	case "sky":
		m.objects.AddSkyObject(obj)
	default:
		m.objects.AddGroundObject(obj)
	}
}

func buildObject(od config.ObjectData) MapObject {
	halfWidth, height := od.HalfWidth, od.Height
	if halfWidth <= 0 {
		halfWidth = 1
	}
	if height <= 0 {
		height = 2
	}

	switch od.Kind {
	case "physical":
		o := NewPhysicalObject(od.ID, od.X, od.Y, halfWidth, height)
		o.Name = od.Name
		o.Image = od.Image
		o.TalkEvent = od.TalkEvent
		return o

	case "sprite":
		s := NewVirtualSprite(od.ID, od.X, od.Y)
		s.Name = od.Name
		s.Image = od.Image
		s.HalfWidth = halfWidth
		s.Height = height
		s.DialogueID = od.Dialogue
		if od.Speed > 0 {
			s.SetSpeed(od.Speed)
		}
		if d, ok := directionNames[od.Direction]; ok {
			s.direction = d
		}
		return s

	case "treasure":
		items := make([]*global.Item, 0, len(od.Items))
		for _, it := range od.Items {
			count := it.Count
			if count <= 0 {
				count = 1
			}
			items = append(items, global.NewItem(it.ID, it.Name, count))
		}
		t := NewTreasureObject(od.ID, od.X, od.Y, items...)
		t.Name = od.Name
		t.Image = od.Image
		return t

	case "save":
		o := NewSavePoint(od.ID, od.X, od.Y)
		o.Name = od.Name
		return o
	}

	logging.Warnf("MapMode", "object %d has unknown kind %q", od.ID, od.Kind)
	return nil
}
