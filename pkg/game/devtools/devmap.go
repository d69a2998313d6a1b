package devtools

import (
	"darkvale/pkg/game/config"
)

// DevMapName is the -map value that loads the developer testing map
const DevMapName = "dev"

// Developer map layout, in grid units
const (
	devTiles   = 25 // tiles per side
	devSpacing = 6  // horizontal distance between objects of a row
	devMargin  = 4
)

// DevMapData builds a 25x25 tile developer testing map.
// Every object kind is placed in its own row with room to walk between them,
// and the first tile row shows every tile index.
func DevMapData() *config.MapData {
	grass := 0
	size := devTiles * 2

	md := &config.MapData{
		Name:    "Developer Map",
		Subname: "All objects",
		TilesX:  devTiles,
		TilesY:  devTiles,
		Walls: []config.Rect{
			{X: 0, Y: 0, W: size, H: 1},
			{X: 0, Y: size - 1, W: size, H: 1},
			{X: 0, Y: 0, W: 1, H: size},
			{X: size - 1, Y: 0, W: 1, H: size},
			// A short wall to test sliding along corners
			{X: 20, Y: 40, W: 8, H: 2},
		},
		Minimap: true,
	}

	palette := make([]int, 9)
	for i := range palette {
		palette[i] = i
	}
	md.Layers = []config.LayerData{
		{Name: "ground", Type: "ground", Fill: &grass, Rows: [][]int{palette}},
		{Name: "canopy", Type: "sky", Rows: [][]int{nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, {8, 8, 8}}},
	}

	md.Events = []config.EventData{
		{Name: "dev_sign", Duration: 2000, Text: "EVENT_SIGN", Next: "dev_echo"},
		{Name: "dev_echo", Duration: 1500, Text: "EVENT_WELL_ECHO"},
	}
	md.Dialogues = []config.DialogueData{
		{ID: "dev_talk", Lines: []config.LineData{
			{Speaker: "SPEAKER_MILLER", Text: "DIALOGUE_MILLER_1"},
			{Speaker: "SPEAKER_HERO", Text: "DIALOGUE_HERO_1"},
		}},
	}

	id := 1
	md.Objects = append(md.Objects, config.ObjectData{ID: id, Kind: "sprite", Name: "hero", X: float64(size / 2), Y: float64(size - devMargin), Speed: 110})
	md.Camera.Sprite = id

	row := func(y float64, objs ...config.ObjectData) {
		for i, o := range objs {
			id++
			o.ID = id
			o.X = float64(devMargin + i*devSpacing)
			o.Y = y
			md.Objects = append(md.Objects, o)
		}
	}
	row(8,
		config.ObjectData{Kind: "sprite", Name: "walker", Direction: "south"},
		config.ObjectData{Kind: "sprite", Name: "talker", Direction: "west", Dialogue: "dev_talk"},
		config.ObjectData{Kind: "sprite", Name: "runner", Speed: 250},
	)
	row(16,
		config.ObjectData{Kind: "physical", Name: "sign", TalkEvent: "dev_sign"},
		config.ObjectData{Kind: "physical", Name: "rug", Layer: "flat"},
		config.ObjectData{Kind: "physical", Name: "fence", Layer: "pass"},
		config.ObjectData{Kind: "physical", Name: "branch", Layer: "sky"},
	)
	row(24,
		config.ObjectData{Kind: "treasure", Name: "chest", Items: []config.ItemData{{ID: 1, Name: "ITEM_BREAD", Count: 3}}},
		config.ObjectData{Kind: "treasure", Name: "chest", Items: []config.ItemData{{ID: 2, Name: "ITEM_POTION"}, {ID: 3, Name: "ITEM_KEY"}}},
	)
	row(32,
		config.ObjectData{Kind: "save", Name: "save point"},
	)
	return md
}
