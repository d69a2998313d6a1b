package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Position is a point in grid units
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is a blocked area of the collision grid in grid units
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// LayerData is a tile layer. Fill is used for every tile Rows leaves unset.
type LayerData struct {
	Name string  `yaml:"name"`
	Type string  `yaml:"type"` // ground or sky
	Fill *int    `yaml:"fill,omitempty"`
	Rows [][]int `yaml:"rows,omitempty"`
}

// ItemData is an item found in a treasure
type ItemData struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ObjectData describes a map object
type ObjectData struct {
	ID        int        `yaml:"id"`
	Kind      string     `yaml:"kind"`  // physical, sprite, treasure or save
	Layer     string     `yaml:"layer"` // flat, ground, pass or sky; ground when empty
	Name      string     `yaml:"name"`
	Image     string     `yaml:"image"`
	X         float64    `yaml:"x"`
	Y         float64    `yaml:"y"`
	HalfWidth float64    `yaml:"half_width"`
	Height    float64    `yaml:"height"`
	TalkEvent string     `yaml:"talk_event"`
	Dialogue  string     `yaml:"dialogue"`
	Direction string     `yaml:"direction"`
	Speed     float64    `yaml:"speed"`
	Items     []ItemData `yaml:"items"`
}

// EventData describes a timed map event
type EventData struct {
	Name     string `yaml:"name"`
	Duration int    `yaml:"duration"`
	Text     string `yaml:"text"`
	Next     string `yaml:"next"`
}

// LineData is one dialogue line
type LineData struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
}

// DialogueData describes a dialogue
type DialogueData struct {
	ID    string     `yaml:"id"`
	Lines []LineData `yaml:"lines"`
}

// CameraData tells where the camera starts: on a sprite, or on the virtual focus at Start
type CameraData struct {
	Sprite int      `yaml:"sprite"`
	Start  Position `yaml:"start"`
}

// MapData is a whole map description
type MapData struct {
	Name    string `yaml:"name"`
	Subname string `yaml:"subname"`
	TilesX  int    `yaml:"tiles_x"`
	TilesY  int    `yaml:"tiles_y"`

	// Collision rows in grid units ('#' or '1' blocked); empty means an open map
	Collision []string `yaml:"collision"`
	Walls     []Rect   `yaml:"walls"`

	Layers    []LayerData    `yaml:"layers"`
	Objects   []ObjectData   `yaml:"objects"`
	Events    []EventData    `yaml:"events"`
	Dialogues []DialogueData `yaml:"dialogues"`
	Camera    CameraData     `yaml:"camera"`

	Minimap          bool `yaml:"minimap"`
	UnlimitedStamina bool `yaml:"unlimited_stamina"`
	RunningDisabled  bool `yaml:"running_disabled"`
}

// LoadMapData reads and validates a map file
func LoadMapData(path string) (*MapData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	md, err := ParseMapData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return md, nil
}

// ParseMapData decodes and validates a map description
func ParseMapData(data []byte) (*MapData, error) {
	var md MapData
	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("failed to parse map data: %w", err)
	}
	if err := md.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}
	return &md, nil
}

var (
	validObjectKinds = map[string]bool{"physical": true, "sprite": true, "treasure": true, "save": true}
	validLayers      = map[string]bool{"": true, "flat": true, "ground": true, "pass": true, "sky": true}
)

// Validate checks the map description for inconsistencies
func (md *MapData) Validate() error {
	var errs []error

	if md.TilesX <= 0 || md.TilesY <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d tiles must be positive", md.TilesX, md.TilesY))
	}
	gridW, gridH := md.GridWidth(), md.GridHeight()

	if len(md.Collision) > 0 {
		if len(md.Collision) != gridH {
			errs = append(errs, fmt.Errorf("collision has %d rows, want %d", len(md.Collision), gridH))
		}
		for i, row := range md.Collision {
			if len(row) != gridW {
				errs = append(errs, fmt.Errorf("collision row %d has %d columns, want %d", i, len(row), gridW))
			}
		}
	}

	for i, l := range md.Layers {
		if l.Type != "ground" && l.Type != "sky" {
			errs = append(errs, fmt.Errorf("layer %d (%s): unknown type %q", i, l.Name, l.Type))
		}
		if len(l.Rows) > md.TilesY {
			errs = append(errs, fmt.Errorf("layer %d (%s): %d rows for %d tiles", i, l.Name, len(l.Rows), md.TilesY))
		}
	}

	ids := make(map[int]bool)
	for _, o := range md.Objects {
		if ids[o.ID] {
			errs = append(errs, fmt.Errorf("object id %d is used twice", o.ID))
		}
		ids[o.ID] = true
		if !validObjectKinds[o.Kind] {
			errs = append(errs, fmt.Errorf("object %d: unknown kind %q", o.ID, o.Kind))
		}
		if !validLayers[o.Layer] {
			errs = append(errs, fmt.Errorf("object %d: unknown layer %q", o.ID, o.Layer))
		}
		if o.X < 0 || o.Y < 0 || o.X > float64(gridW) || o.Y > float64(gridH) {
			errs = append(errs, fmt.Errorf("object %d at (%v, %v) is outside the map", o.ID, o.X, o.Y))
		}
	}

	events := make(map[string]bool)
	for _, e := range md.Events {
		if e.Name == "" {
			errs = append(errs, errors.New("event without a name"))
		}
		events[e.Name] = true
	}
	for _, e := range md.Events {
		if e.Next != "" && !events[e.Next] {
			errs = append(errs, fmt.Errorf("event %s: unknown next event %q", e.Name, e.Next))
		}
	}
	dialogues := make(map[string]bool)
	for _, d := range md.Dialogues {
		dialogues[d.ID] = true
	}
	for _, o := range md.Objects {
		if o.TalkEvent != "" && !events[o.TalkEvent] {
			errs = append(errs, fmt.Errorf("object %d: unknown talk event %q", o.ID, o.TalkEvent))
		}
		if o.Dialogue != "" && !dialogues[o.Dialogue] {
			errs = append(errs, fmt.Errorf("object %d: unknown dialogue %q", o.ID, o.Dialogue))
		}
	}

	if md.Camera.Sprite != 0 && !ids[md.Camera.Sprite] {
		errs = append(errs, fmt.Errorf("camera sprite %d does not exist", md.Camera.Sprite))
	}

	return errors.Join(errs...)
}

// GridWidth returns the collision grid width in grid units
func (md *MapData) GridWidth() int {
	return md.TilesX * 2
}

// GridHeight returns the collision grid height in grid units
func (md *MapData) GridHeight() int {
	return md.TilesY * 2
}

// CollisionRows returns the collision grid as text rows with the walls drawn in
func (md *MapData) CollisionRows() []string {
	gridW, gridH := md.GridWidth(), md.GridHeight()
	rows := make([][]byte, gridH)
	for y := range rows {
		if y < len(md.Collision) {
			rows[y] = []byte(md.Collision[y])
		} else {
			rows[y] = []byte(strings.Repeat(".", gridW))
		}
	}
	for _, w := range md.Walls {
		for y := max(w.Y, 0); y < min(w.Y+w.H, gridH); y++ {
			for x := max(w.X, 0); x < min(w.X+w.W, len(rows[y])); x++ {
				rows[y][x] = '#'
			}
		}
	}

	out := make([]string, gridH)
	for y, r := range rows {
		out[y] = string(r)
	}
	return out
}

// LayerTiles expands a layer to a full TilesY x TilesX grid. Unset tiles are -1 unless Fill is given.
func (md *MapData) LayerTiles(l LayerData) [][]int {
	fill := -1
	if l.Fill != nil {
		fill = *l.Fill
	}
	tiles := make([][]int, md.TilesY)
	for y := range tiles {
		tiles[y] = make([]int, md.TilesX)
		for x := range tiles[y] {
			tiles[y][x] = fill
			if y < len(l.Rows) && x < len(l.Rows[y]) {
				tiles[y][x] = l.Rows[y][x]
			}
		}
	}
	return tiles
}
