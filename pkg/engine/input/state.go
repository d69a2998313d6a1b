package input

import (
	"github.com/zyedidia/generic/mapset"
)

// State is the input seen by one tick: actions held down and actions pressed this tick.
type State struct {
	held    mapset.Set[Action]
	pressed mapset.Set[Action]
	codes   []string
}

// NewState creates an empty input state
func NewState() *State {
	return &State{
		held:    mapset.New[Action](),
		pressed: mapset.New[Action](),
	}
}

// Press records a new press. A pressed action is also held.
func (s *State) Press(a Action) {
	if a == ActionNone {
		return
	}
	s.pressed.Put(a)
	s.held.Put(a)
}

// Hold records an action held down without a new press
func (s *State) Hold(a Action) {
	if a == ActionNone {
		return
	}
	s.held.Put(a)
}

// Release records an action no longer held
func (s *State) Release(a Action) {
	s.held.Remove(a)
}

// PressCode maps a raw code and presses the bound action.
// The code is remembered even when nothing is bound to it.
func (s *State) PressCode(ev RawInput) Action {
	if ev.Code != "" {
		s.codes = append(s.codes, ev.Code)
	}
	a := MapToAction(ev)
	s.Press(a)
	return a
}

// HoldCode maps a raw code and holds the bound action
func (s *State) HoldCode(ev RawInput) Action {
	a := MapToAction(ev)
	s.Hold(a)
	return a
}

// EndTick forgets this tick's presses; held actions stay until released
func (s *State) EndTick() {
	s.pressed.Clear()
	s.codes = s.codes[:0]
}

// Reset forgets everything
func (s *State) Reset() {
	s.pressed.Clear()
	s.held.Clear()
	s.codes = s.codes[:0]
}

// Pressed returns true if the action was pressed this tick
func (s *State) Pressed(a Action) bool {
	return s.pressed.Has(a)
}

// Held returns true if the action is held down
func (s *State) Held(a Action) bool {
	return s.held.Has(a)
}

// AnyDirectionHeld returns true while any movement action is held
func (s *State) AnyDirectionHeld() bool {
	return s.Held(ActionUp) || s.Held(ActionDown) || s.Held(ActionLeft) || s.Held(ActionRight)
}

// PressedCodes returns the raw codes pressed this tick, in order
func (s *State) PressedCodes() []string {
	return s.codes
}
