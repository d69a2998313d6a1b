package ebiten

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/video"
	"darkvale/pkg/game/config"
	"darkvale/pkg/game/devtools"
)

type keyCode struct {
	key  ebiten.Key
	code string
}

// keyCodes maps keyboard keys to binding codes. Letters are polled separately as "a" to "z".
var keyCodes = []keyCode{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyKPEnter, "enter"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyShift, "shift"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyTab, "tab"},
	{ebiten.KeyF9, "f9"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyNumpadAdd, "numpad_add"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "numpad_subtract"},
}

type padButton struct {
	button ebiten.GamepadButton
	code   string
}

// padButtons are tuned for common XInput-style controllers on Linux;
// mappings may vary between devices/platforms.
var padButtons = []padButton{
	{ebiten.GamepadButton11, "gamepad_dpad_up"},
	{ebiten.GamepadButton12, "gamepad_dpad_right"},
	{ebiten.GamepadButton13, "gamepad_dpad_down"},
	{ebiten.GamepadButton14, "gamepad_dpad_left"},
	{ebiten.GamepadButton0, "gamepad_a"},
	{ebiten.GamepadButton1, "gamepad_b"},
	{ebiten.GamepadButton7, "gamepad_start"},
	{ebiten.GamepadButton6, "gamepad_back"},
}

// Update handles input and runs one session tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.pollInput()
	e.handleZoom()
	e.handleDevKeys()

	e.sess.Tick(e.clock.Tick(), e.in)
	e.watchMessages()
	e.expireCallouts()

	if e.sess.Done() {
		return ebiten.Termination
	}
	return nil
}

// pollInput rebuilds the input state from the keys and buttons down this frame
func (e *EbitenRenderer) pollInput() {
	e.in.Reset()
	for _, k := range keyCodes {
		e.pollKey(k.key, k.code)
	}
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		e.pollKey(k, string(rune('a'+int(k-ebiten.KeyA))))
	}
	e.pollGamepads()
}

func (e *EbitenRenderer) pollKey(key ebiten.Key, code string) {
	ev := input.RawInput{Device: input.DeviceKeyboard, Code: code}
	switch {
	case inpututil.IsKeyJustPressed(key):
		e.in.PressCode(ev)
	case ebiten.IsKeyPressed(key):
		e.in.HoldCode(ev)
	}
}

// pollGamepads adds the connected controllers to the input state
func (e *EbitenRenderer) pollGamepads() {
	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	for _, id := range e.gamepads {
		for _, b := range padButtons {
			ev := input.RawInput{Device: input.DeviceGamepad, Code: b.code}
			switch {
			case inpututil.IsGamepadButtonJustPressed(id, b.button):
				e.in.PressCode(ev)
			case ebiten.IsGamepadButtonPressed(id, b.button):
				e.in.HoldCode(ev)
			}
		}

		// Axes: 0 = X (left = -1, right = +1), 1 = Y (up = -1, down = +1)
		for _, code := range stickCodes(ebiten.GamepadAxisValue(id, 0), ebiten.GamepadAxisValue(id, 1)) {
			e.in.HoldCode(input.RawInput{Device: input.DeviceGamepad, Code: code})
		}
	}
}

// stickCodes returns the d-pad codes matching a left stick position
func stickCodes(x, y float64) []string {
	const deadZone = 0.5 // Threshold to avoid drift
	var codes []string
	switch {
	case x < -deadZone:
		codes = append(codes, "gamepad_dpad_left")
	case x > deadZone:
		codes = append(codes, "gamepad_dpad_right")
	}
	switch {
	case y < -deadZone:
		codes = append(codes, "gamepad_dpad_up")
	case y > deadZone:
		codes = append(codes, "gamepad_dpad_down")
	}
	return codes
}

// handleZoom handles =/- for the window scale and 0 to reset it
func (e *EbitenRenderer) handleZoom() {
	switch {
	case e.in.Pressed(input.ActionZoomIn):
		e.setZoom(e.zoom + zoomStep)
	case e.in.Pressed(input.ActionZoomOut):
		e.setZoom(e.zoom - zoomStep)
	case inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		e.setZoom(config.DefaultZoom)
	}
}

func (e *EbitenRenderer) setZoom(zoom float64) {
	e.saveZoomPreference(zoom)
	e.zoom = e.prefs.Zoom()
	e.applyZoom()
}

// saveZoomPreference saves the window scale to preferences
func (e *EbitenRenderer) saveZoomPreference(zoom float64) {
	if err := e.prefs.SetZoom(zoom); err != nil {
		// Not critical, the new scale still applies to this run
		fmt.Fprintf(os.Stderr, "Warning: could not save preferences: %v\n", err)
	}
}

func (e *EbitenRenderer) applyZoom() {
	ebiten.SetWindowSize(windowSize(e.zoom))
}

// windowSize returns the window size for a scale of the standard resolution
func windowSize(zoom float64) (int, int) {
	return int(video.StandardResWidth * zoom), int(video.StandardResHeight * zoom)
}

// handleDevKeys runs the developer dumps: F8 writes the collision map, F12 a screenshot
func (e *EbitenRenderer) handleDevKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		if path, err := devtools.DumpMap(e.sess.Map, "."); err != nil {
			e.AddCallout(err.Error(), ColorCalloutWarning, calloutDuration)
		} else {
			e.AddCallout("Map written to "+path, ColorCalloutSuccess, calloutDuration)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if path, err := devtools.SaveScreenshotHTML(e.sess, "."); err != nil {
			e.AddCallout(err.Error(), ColorCalloutWarning, calloutDuration)
		} else {
			e.AddCallout("Screenshot written to "+path, ColorCalloutSuccess, calloutDuration)
		}
	}
}
