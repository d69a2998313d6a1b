// Package input maps device codes to map-mode actions and keeps the per-tick input state.
package input

import (
	"sort"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high-level intent in map mode.
type Action int

const (
	ActionNone Action = iota

	// Movement (held)
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Confirm talks, opens and advances dialogue; Cancel is held to run
	ActionConfirm
	ActionCancel

	// Meta / UI
	ActionMenu
	ActionPause
	ActionQuit
	ActionMinimap
	ActionDebugGrid
	ActionZoomIn
	ActionZoomOut
)

// RawInput is a single code emitted by a device (e.g. "KeyW", "arrow_up", "gamepad_a").
type RawInput struct {
	Device Device
	Code   string
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionUp,
	"w":           ActionUp,
	"k":           ActionUp,
	"arrow_down":  ActionDown,
	"s":           ActionDown,
	"j":           ActionDown,
	"arrow_left":  ActionLeft,
	"a":           ActionLeft,
	"h":           ActionLeft,
	"arrow_right": ActionRight,
	"d":           ActionRight,
	"l":           ActionRight,

	"enter": ActionConfirm,
	"space": ActionConfirm,
	"e":     ActionConfirm,
	"shift": ActionCancel,
	"x":     ActionCancel,

	"escape": ActionMenu,
	"tab":    ActionMenu,
	"p":      ActionPause,
	"q":      ActionQuit,
	"m":      ActionMinimap,
	"f9":     ActionDebugGrid,

	// Zoom (fixed bindings)
	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionUp,
	"gamepad_dpad_down":  ActionDown,
	"gamepad_dpad_left":  ActionLeft,
	"gamepad_dpad_right": ActionRight,
	"gamepad_a":          ActionConfirm,
	"gamepad_b":          ActionCancel,
	"gamepad_start":      ActionMenu,
	"gamepad_back":       ActionMinimap,
}

// reserved codes cannot be rebound away from their action
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"enter":       true,
	"gamepad_a":   true,
}

// MapToAction applies the current bindings to a raw input
func MapToAction(ev RawInput) Action {
	if act, ok := bindings[ev.Code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionMenu:
		return "Menu"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionMinimap:
		return "Minimap"
	case ActionDebugGrid:
		return "Debug Grid"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
