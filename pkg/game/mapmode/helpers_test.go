package mapmode

import (
	"bytes"
	"log"
	"math/rand"
	"os"
	"testing"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/world"
	"darkvale/pkg/game/global"
)

// captureLog redirects log output to a buffer for the duration of the test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetFlags(0)
	logging.SetOutput(&buf)
	logging.SetColor(false)
	t.Cleanup(func() {
		log.SetFlags(flags)
		logging.SetOutput(os.Stderr)
		logging.SetColor(true)
	})
	return &buf
}

// newTestMap builds a 50x40 tile map with the camera on a sprite standing at (50, 40)
func newTestMap(t *testing.T) (*MapMode, *VirtualSprite) {
	t.Helper()
	m := New(Config{
		Name:        "Test Map",
		Grid:        world.NewGrid(80, 100),
		TilesX:      50,
		TilesY:      40,
		Media:       global.NewMedia(),
		Rand:        rand.New(rand.NewSource(1)),
		ShowMinimap: true,
	})
	hero := NewVirtualSprite(1, 50, 40)
	if !m.Objects().AddGroundObject(hero) {
		t.Fatal("AddGroundObject(hero) = false")
	}
	m.SetCamera(hero, 0)
	return m, hero
}

// press returns an input state with the given actions pressed this tick
func press(actions ...input.Action) *input.State {
	s := input.NewState()
	for _, a := range actions {
		s.Press(a)
	}
	return s
}

// hold returns an input state with the given actions held down
func hold(actions ...input.Action) *input.State {
	s := input.NewState()
	for _, a := range actions {
		s.Hold(a)
	}
	return s
}
