package ebiten

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/timer"
	"darkvale/pkg/engine/video"
	"darkvale/pkg/game/config"
	"darkvale/pkg/game/renderer"
	"darkvale/pkg/game/state"
)

// New creates a new Ebiten renderer. nil preferences use config.Current().
func New(prefs *config.Preferences) *EbitenRenderer {
	if prefs == nil {
		prefs = config.Current()
	}
	return &EbitenRenderer{
		in:    input.NewState(),
		prefs: prefs,
		now:   time.Now,
		zoom:  prefs.Zoom(),
		faces: make(map[faceKey]*text.GoTextFace),
	}
}

// Init loads the fonts and sets up the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.applyZoom()
	return nil
}

// Run starts the Ebiten game loop and returns once the player quits or closes the window
func (e *EbitenRenderer) Run(sess *state.Session) error {
	e.sess = sess
	e.seenMessages = sess.MessagesAdded()
	e.clock = timer.NewClockWithSource(e.now)
	e.clock.SetMaxDelta(maxFrameDelta)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run the game loop: %w", err)
	}
	return nil
}

// Draw renders the session to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	if e.sess == nil {
		return
	}
	renderer.DrawSession(&screenSurface{e: e, screen: screen}, e.sess)
	e.drawCallouts(screen)
}

// Layout returns the game's logical screen size (Ebiten interface).
// Everything is drawn in standard resolution and scaled to the window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return video.StandardResWidth, video.StandardResHeight
}
