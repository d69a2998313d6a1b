package mapmode

import (
	"github.com/leonelquinteros/gotext"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/timer"
)

// DialogueLine is one line of a dialogue. Text is a translation key.
type DialogueLine struct {
	Speaker string
	Text    string
}

// Dialogue is a list of lines read one after the other
type Dialogue struct {
	ID    string
	Lines []DialogueLine
}

// Dialogue icon animation: the icon over talkative sprites bobs up and down
const (
	DialogueIconPeriod    = 1200
	DialogueIconAmplitude = 0.25
)

// DialogueSupervisor runs one dialogue at a time. While it runs the map is in StateDialogue.
type DialogueSupervisor struct {
	dialogues map[string]*Dialogue
	current   *Dialogue
	line      int
	states    *StateStack

	icon *timer.SystemTimer
}

// NewDialogueSupervisor creates a supervisor pushing dialogue states on the given stack
func NewDialogueSupervisor(states *StateStack) *DialogueSupervisor {
	icon := timer.New(DialogueIconPeriod, timer.Infinite)
	icon.Run()
	return &DialogueSupervisor{
		dialogues: make(map[string]*Dialogue),
		states:    states,
		icon:      icon,
	}
}

// RegisterDialogue makes a dialogue available by id
func (ds *DialogueSupervisor) RegisterDialogue(d *Dialogue) {
	if d == nil || d.ID == "" {
		logging.Warnf("MapMode", "Couldn't register a dialogue without an id")
		return
	}
	ds.dialogues[d.ID] = d
}

// HasDialogue returns true if the dialogue is registered
func (ds *DialogueSupervisor) HasDialogue(id string) bool {
	_, ok := ds.dialogues[id]
	return ok
}

// BeginDialogue starts a registered dialogue and puts the map in StateDialogue
func (ds *DialogueSupervisor) BeginDialogue(id string) bool {
	if ds.current != nil {
		logging.Debugf("MapMode", "dialogue %q requested while %q is running", id, ds.current.ID)
		return false
	}
	d, ok := ds.dialogues[id]
	if !ok || len(d.Lines) == 0 {
		logging.Warnf("MapMode", "no dialogue named %q", id)
		return false
	}
	ds.current = d
	ds.line = 0
	ds.states.Push(StateDialogue)
	return true
}

// IsActive returns true while a dialogue runs
func (ds *DialogueSupervisor) IsActive() bool {
	return ds.current != nil
}

// CurrentLine returns the translated speaker and text of the line shown
func (ds *DialogueSupervisor) CurrentLine() (speaker, text string, ok bool) {
	if ds.current == nil {
		return "", "", false
	}
	l := ds.current.Lines[ds.line]
	if l.Speaker != "" {
		speaker = gotext.Get(l.Speaker)
	}
	return speaker, gotext.Get(l.Text), true
}

// Update advances to the next line on confirm. Past the last line the dialogue ends.
func (ds *DialogueSupervisor) Update(in *input.State) {
	if ds.current == nil {
		return
	}
	if in == nil || !in.Pressed(input.ActionConfirm) {
		return
	}
	ds.line++
	if ds.line >= len(ds.current.Lines) {
		ds.EndDialogue()
	}
}

// EndDialogue stops the current dialogue and leaves StateDialogue
func (ds *DialogueSupervisor) EndDialogue() {
	if ds.current == nil {
		return
	}
	ds.current = nil
	ds.line = 0
	ds.states.Pop()
}

// UpdateIcon advances the dialogue icon animation
func (ds *DialogueSupervisor) UpdateIcon(elapsedMs int) {
	ds.icon.Update(elapsedMs)
}

// IconOffset returns the vertical offset of the dialogue icon in grid units
func (ds *DialogueSupervisor) IconOffset() float64 {
	p := ds.icon.PercentComplete()
	if p > 0.5 {
		p = 1 - p
	}
	return p * 2 * DialogueIconAmplitude
}
