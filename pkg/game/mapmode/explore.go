package mapmode

import (
	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/world"
)

// updateExplore handles the player walking around the map
func (m *MapMode) updateExplore(elapsedMs int, in *input.State) Request {
	if in.Pressed(input.ActionMenu) {
		return RequestMenu
	}

	m.updateRunning(elapsedMs, in)

	if in.Pressed(input.ActionConfirm) {
		if req, handled := m.interact(); handled {
			return req
		}
	}

	m.camera.Moving = in.AnyDirectionHeld()
	if !m.camera.Moving {
		return RequestNone
	}

	var request world.Direction
	switch {
	case in.Held(input.ActionUp):
		switch {
		case in.Held(input.ActionLeft):
			request = world.MovingNorthWest
		case in.Held(input.ActionRight):
			request = world.MovingNorthEast
		default:
			request = world.North
		}
	case in.Held(input.ActionDown):
		switch {
		case in.Held(input.ActionLeft):
			request = world.MovingSouthWest
		case in.Held(input.ActionRight):
			request = world.MovingSouthEast
		default:
			request = world.South
		}
	case in.Held(input.ActionLeft):
		request = world.West
	case in.Held(input.ActionRight):
		request = world.East
	}
	m.camera.SetDirection(request)
	return RequestNone
}

// updateRunning spends stamina while the run key is held and restores it otherwise
func (m *MapMode) updateRunning(elapsedMs int, in *input.State) {
	m.camera.Running = false

	if m.camera.HasMoved() && !m.runningDisabled && in.Held(input.ActionCancel) && in.AnyDirectionHeld() {
		switch {
		case m.unlimitedStamina:
			m.camera.Running = true
		case m.runStamina > elapsedMs*2:
			m.runStamina -= elapsedMs * 2
			m.camera.Running = true
		default:
			m.runStamina = 0
		}
		return
	}

	if m.runStamina < MaxStamina {
		m.runStamina = min(m.runStamina+elapsedMs, MaxStamina)
	}
}

// interact acts on the nearest object in front of the camera. handled is false when
// nothing stopped the movement update.
func (m *MapMode) interact() (req Request, handled bool) {
	obj := m.objects.FindNearestInteractionObject(m.camera)
	if obj == nil {
		return RequestNone, false
	}

	base := obj.Base()
	switch base.Kind {
	case KindPhysical:
		if base.TalkEvent == "" {
			return RequestNone, false
		}
		m.camera.Moving = false
		m.camera.Running = false
		if !m.events.IsEventActive(base.TalkEvent) {
			m.events.StartEvent(base.TalkEvent)
		}
		return RequestNone, true

	case KindSprite:
		sprite, ok := obj.(*VirtualSprite)
		if !ok || sprite.DialogueID == "" {
			return RequestNone, false
		}
		m.camera.Moving = false
		m.camera.Running = false
		sprite.Moving = false
		sprite.direction = opposite(m.camera.Direction().Facing())
		m.dialogue.BeginDialogue(sprite.DialogueID)
		return RequestNone, true

	case KindTreasure:
		t, ok := obj.(*TreasureObject)
		if !ok || m.treasure.IsTaken(t.ID) {
			return RequestNone, false
		}
		m.camera.Moving = false
		m.treasure.Open(t, m.ScreenXCoordinate(t.X), m.ScreenYCoordinate(t.Y-t.Height))
		return RequestNone, false

	case KindSavePoint:
		m.saveX = m.camera.X
		m.saveY = m.camera.Y - 1
		return RequestSave, true
	}
	return RequestNone, false
}

func opposite(d world.Direction) world.Direction {
	switch d {
	case world.North:
		return world.South
	case world.South:
		return world.North
	case world.West:
		return world.East
	default:
		return world.West
	}
}
