package mapmode

import (
	"darkvale/pkg/engine/logging"
)

// Camera returns the sprite the camera follows
func (m *MapMode) Camera() *VirtualSprite {
	return m.camera
}

// VirtualFocus returns the invisible sprite the camera can be parked on
func (m *MapMode) VirtualFocus() *VirtualSprite {
	return m.virtualFocus
}

// CameraTransition returns the pending camera move offset and whether it is still running
func (m *MapMode) CameraTransition() (dx, dy float64, running bool) {
	return m.deltaX, m.deltaY, m.cameraTimer.IsRunning()
}

// SetCamera makes the camera follow a sprite. A positive duration slides the view from the old
// sprite to the new one over that many milliseconds.
func (m *MapMode) SetCamera(sprite *VirtualSprite, durationMs int) {
	if sprite == nil {
		logging.Debugf("MapMode", "Attempt to set camera on a nil sprite")
		return
	}
	if m.camera == sprite {
		logging.Debugf("MapMode", "Camera was moved to the same sprite")
		return
	}

	if durationMs > 0 {
		m.deltaX = m.camera.X - sprite.X
		m.deltaY = m.camera.Y - sprite.Y
		m.startCameraTimer(durationMs)
	}
	m.camera.Moving = false
	m.camera.Running = false
	m.camera = sprite
}

// MoveVirtualFocus places the virtual focus at once
func (m *MapMode) MoveVirtualFocus(x, y float64) {
	m.virtualFocus.SetPosition(x, y)
}

// MoveVirtualFocusTimed slides the virtual focus to a new place. The camera must be on it.
func (m *MapMode) MoveVirtualFocusTimed(x, y float64, durationMs int) {
	if m.camera != m.virtualFocus {
		logging.Debugf("MapMode", "Attempt to move camera although on different sprite")
		return
	}

	if durationMs > 0 {
		m.deltaX = m.virtualFocus.X - x
		m.deltaY = m.virtualFocus.Y - y
		m.startCameraTimer(durationMs)
	}
	m.MoveVirtualFocus(x, y)
}

func (m *MapMode) startCameraTimer(durationMs int) {
	m.cameraTimer.Reset()
	m.cameraTimer.SetDuration(durationMs)
	m.cameraTimer.Run()
}

// IsCameraOnVirtualFocus returns true when the camera follows the virtual focus
func (m *MapMode) IsCameraOnVirtualFocus() bool {
	return m.camera == m.virtualFocus
}

// AttackAllowed returns true when the player controls a character while exploring
func (m *MapMode) AttackAllowed() bool {
	return m.CurrentState() == StateExplore && !m.IsCameraOnVirtualFocus()
}

// ScreenXCoordinate converts a map x coordinate to standard resolution pixels
func (m *MapMode) ScreenXCoordinate(x float64) float64 {
	return m.frame.ScreenXCoordinate(x)
}

// ScreenYCoordinate converts a map y coordinate to standard resolution pixels
func (m *MapMode) ScreenYCoordinate(y float64) float64 {
	return m.frame.ScreenYCoordinate(y)
}
