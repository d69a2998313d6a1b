package renderer

import (
	"image/color"
	"io"
	"math/rand"
	"os"
	"slices"
	"strings"
	"testing"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/video"
	"darkvale/pkg/game/config"
	"darkvale/pkg/game/global"
	"darkvale/pkg/game/mapmode"
	"darkvale/pkg/game/state"
)

const sceneMap = `
name: MAP_TEST
tiles_x: 50
tiles_y: 40
walls:
  - {x: 44, y: 30, w: 4, h: 2}
layers:
  - {name: water, type: ground, fill: 3}
objects:
  - {id: 1, kind: sprite, x: 50, y: 40}
  - {id: 2, kind: sprite, x: 56, y: 40, dialogue: hello}
dialogues:
  - id: hello
    lines:
      - {speaker: SPEAKER, text: LINE_ONE}
camera:
  sprite: 1
minimap: true
`

func newSceneMap(t *testing.T) *mapmode.MapMode {
	t.Helper()
	logging.SetOutput(io.Discard)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	md, err := config.ParseMapData([]byte(sceneMap))
	if err != nil {
		t.Fatalf("ParseMapData() error: %v", err)
	}
	m := mapmode.Load(md, global.NewMedia(), rand.New(rand.NewSource(1)), nil)
	m.Update(16, input.NewState())
	return m
}

func countColor(r *video.Recorder, c color.RGBA) int {
	n := 0
	for _, op := range r.Ops {
		if op.W > 0 && op.Color == c {
			n++
		}
	}
	return n
}

func TestDrawMapTiles(t *testing.T) {
	m := newSceneMap(t)
	var r video.Recorder
	DrawMap(&r, m)

	if got := countColor(&r, TileColor(3)); got != mapmode.TilesOnXAxis*mapmode.TilesOnYAxis {
		t.Errorf("drew %d water tiles, want %d", got, mapmode.TilesOnXAxis*mapmode.TilesOnYAxis)
	}
	if r.Ops[0].W != video.StandardResWidth || r.Ops[0].Color != ColorBackground {
		t.Errorf("first op = %+v, want the background", r.Ops[0])
	}
}

func TestDrawMapObjects(t *testing.T) {
	m := newSceneMap(t)
	var r video.Recorder
	DrawMap(&r, m)

	if got := countColor(&r, ColorCamera); got != 1 {
		t.Errorf("drew %d camera sprites, want 1", got)
	}
	if got := countColor(&r, ColorSprite); got != 1 {
		t.Errorf("drew %d other sprites, want 1", got)
	}
	for _, op := range r.Ops {
		if op.Color == ColorCamera {
			// box left 49 and top 38 against screen edges 18 and 16
			if op.X != 31*PixelsPerGridX || op.Y != 22*PixelsPerGridY {
				t.Errorf("camera sprite drawn at (%v, %v), want (%v, %v)", op.X, op.Y, 31*PixelsPerGridX, 22*PixelsPerGridY)
			}
		}
	}
}

func TestDrawMapMinimap(t *testing.T) {
	m := newSceneMap(t)
	var r video.Recorder
	DrawMap(&r, m)

	if countColor(&r, ColorMarker) != 1 {
		t.Error("minimap marker was not drawn")
	}
	if countColor(&r, ColorWall) == 0 {
		t.Error("minimap walls were not drawn")
	}

	m.Update(16, func() *input.State {
		s := input.NewState()
		s.Press(input.ActionMinimap)
		return s
	}())
	r.Reset()
	DrawMap(&r, m)
	if countColor(&r, ColorMarker) != 0 {
		t.Error("minimap drawn after toggling it off")
	}
}

func TestDrawMapDialogue(t *testing.T) {
	m := newSceneMap(t)
	if !m.Dialogue().BeginDialogue("hello") {
		t.Fatal("BeginDialogue() = false")
	}
	var r video.Recorder
	DrawMap(&r, m)

	texts := r.Texts()
	if !slices.Contains(texts, "SPEAKER") || !slices.Contains(texts, "LINE_ONE") {
		t.Errorf("Texts() = %q, want speaker and line", texts)
	}
}

func TestDrawMapDebugAndIndicators(t *testing.T) {
	m := newSceneMap(t)
	m.SetDebugInfo(true)
	m.Indicators().AddMissIndicator(500, 400)
	m.Update(16, input.NewState())
	m.Update(100, input.NewState())

	var r video.Recorder
	DrawMap(&r, m)

	texts := r.Texts()
	if !slices.Contains(texts, "MISS") {
		t.Errorf("Texts() = %q, want the miss indicator", texts)
	}
	found := false
	for _, text := range texts {
		if strings.HasPrefix(text, "Camera position:") {
			found = true
		}
	}
	if !found {
		t.Errorf("Texts() = %q, want the camera position", texts)
	}
	if countColor(&r, ColorBlocked) != 8 {
		t.Errorf("debug grid drew %d blocked cells, want 8", countColor(&r, ColorBlocked))
	}
}

func TestDrawSessionPaused(t *testing.T) {
	sess := state.NewSession(newSceneMap(t), "test", nil)
	sess.AddMessage("hello there")
	pause := input.NewState()
	pause.Press(input.ActionPause)
	sess.Tick(16, pause)

	var r video.Recorder
	DrawSession(&r, sess)
	texts := r.Texts()
	if !slices.Contains(texts, "PAUSED") || !slices.Contains(texts, "hello there") {
		t.Errorf("Texts() = %q, want the pause overlay and the message", texts)
	}
}

func TestDrawSessionMenu(t *testing.T) {
	sess := state.NewSession(newSceneMap(t), "test", nil)
	menuPress := input.NewState()
	menuPress.Press(input.ActionMenu)
	sess.Tick(16, menuPress)
	if sess.Menu() == nil {
		t.Fatal("Menu() = nil after the menu request")
	}

	var r video.Recorder
	DrawSession(&r, sess)
	texts := r.Texts()
	for _, want := range []string{"MENU_TITLE", "> MENU_RESUME", "  MENU_QUIT"} {
		if !slices.Contains(texts, want) {
			t.Errorf("Texts() = %q, want %q", texts, want)
		}
	}
}
