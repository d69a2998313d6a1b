package mapmode

import (
	"github.com/zyedidia/generic/stack"

	"darkvale/pkg/engine/logging"
)

// State is what the map mode is currently busy with
type State int

const (
	StateInvalid State = iota
	StateExplore
	StateScene
	StateDialogue
	StateTreasure
)

// String returns the string representation of a map state
func (s State) String() string {
	switch s {
	case StateInvalid:
		return "invalid"
	case StateExplore:
		return "explore"
	case StateScene:
		return "scene"
	case StateDialogue:
		return "dialogue"
	case StateTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// StateStack holds the map states. The top is the current state and the stack is never left empty.
type StateStack struct {
	s *stack.Stack[State]
}

// NewStateStack creates a stack holding only StateInvalid
func NewStateStack() *StateStack {
	ss := &StateStack{}
	ss.Reset()
	return ss
}

// Reset drops every state and re-seeds StateInvalid
func (ss *StateStack) Reset() {
	ss.s = stack.New[State]()
	ss.s.Push(StateInvalid)
}

// Push makes a new state current
func (ss *StateStack) Push(s State) {
	ss.s.Push(s)
}

// Pop drops the current state
func (ss *StateStack) Pop() {
	ss.s.Pop()
	if ss.s.Size() == 0 {
		logging.Debugf("MapMode", "stack was empty after operation, reseting state stack")
		ss.s.Push(StateInvalid)
	}
}

// Current returns the top state
func (ss *StateStack) Current() State {
	if ss.s.Size() == 0 {
		logging.Debugf("MapMode", "stack was empty, reseting state stack")
		ss.s.Push(StateInvalid)
	}
	return ss.s.Peek()
}

// Size returns the number of stacked states, sentinel included
func (ss *StateStack) Size() int {
	return ss.s.Size()
}
