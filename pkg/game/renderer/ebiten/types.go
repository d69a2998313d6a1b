package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/timer"
	"darkvale/pkg/game/config"
	"darkvale/pkg/game/state"
)

// Callout is a floating notice shown when a message reaches the session log
type Callout struct {
	Message   string
	Color     color.Color
	ExpiresAt int64 // Unix milliseconds when the callout expires (0 = never)
	CreatedAt int64 // Unix milliseconds when the callout was created (for animations)
}

// faceKey identifies a cached font face
type faceKey struct {
	family string
	size   float64
}

// EbitenRenderer is the windowed backend. It implements ebiten.Game.
type EbitenRenderer struct {
	sess  *state.Session
	clock *timer.Clock
	in    *input.State
	prefs *config.Preferences
	now   func() time.Time

	zoom               float64
	windowOpenedLogged bool

	gamepads []ebiten.GamepadID

	monoFontSource     *text.GoTextFaceSource
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource
	faces              map[faceKey]*text.GoTextFace

	callouts     []Callout
	seenMessages int
}
