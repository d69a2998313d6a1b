package mapmode

import (
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/timer"
)

// Event is a named map scene. While it runs the map is in StateScene.
type Event struct {
	Name     string
	Duration int

	// Text is shown while the event runs (translation key)
	Text string

	// Next is started when this event ends
	Next string
}

type runningEvent struct {
	event *Event
	timer *timer.SystemTimer
}

// EventSupervisor starts map events and ends them when their time is up
type EventSupervisor struct {
	events  map[string]*Event
	running []*runningEvent
	states  *StateStack
}

// NewEventSupervisor creates a supervisor pushing scene states on the given stack
func NewEventSupervisor(states *StateStack) *EventSupervisor {
	return &EventSupervisor{
		events: make(map[string]*Event),
		states: states,
	}
}

// RegisterEvent makes an event available by name
func (es *EventSupervisor) RegisterEvent(e *Event) {
	if e == nil || e.Name == "" {
		logging.Warnf("MapMode", "Couldn't register an event without a name")
		return
	}
	es.events[e.Name] = e
}

// HasEvent returns true if the event is registered
func (es *EventSupervisor) HasEvent(name string) bool {
	_, ok := es.events[name]
	return ok
}

// IsEventActive returns true while the named event runs
func (es *EventSupervisor) IsEventActive(name string) bool {
	for _, r := range es.running {
		if r.event.Name == name {
			return true
		}
	}
	return false
}

// ActiveEvents returns the running events, oldest first
func (es *EventSupervisor) ActiveEvents() []*Event {
	out := make([]*Event, 0, len(es.running))
	for _, r := range es.running {
		out = append(out, r.event)
	}
	return out
}

// StartEvent starts a registered event and puts the map in StateScene
func (es *EventSupervisor) StartEvent(name string) bool {
	e, ok := es.events[name]
	if !ok {
		logging.Warnf("MapMode", "no event named %q", name)
		return false
	}
	if es.IsEventActive(name) {
		logging.Debugf("MapMode", "event %q is already running", name)
		return false
	}

	t := timer.New(e.Duration, 0)
	t.Run()
	es.running = append(es.running, &runningEvent{event: e, timer: t})
	es.states.Push(StateScene)
	return true
}

// Update advances the running events. A finished event pops its scene state and
// starts its follow-up event.
func (es *EventSupervisor) Update(elapsedMs int) {
	var next []string
	kept := es.running[:0]
	for _, r := range es.running {
		r.timer.Update(elapsedMs)
		if !r.timer.IsFinished() {
			kept = append(kept, r)
			continue
		}
		es.states.Pop()
		if r.event.Next != "" {
			next = append(next, r.event.Next)
		}
	}
	es.running = kept

	for _, name := range next {
		es.StartEvent(name)
	}
}
