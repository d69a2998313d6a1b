package mapmode

import (
	"strings"
	"testing"
)

func TestSetCameraSameSprite(t *testing.T) {
	buf := captureLog(t)
	m, hero := newTestMap(t)

	m.SetCamera(hero, 500)
	if !strings.Contains(buf.String(), "Camera was moved to the same sprite") {
		t.Errorf("log = %q, want same sprite warning", buf.String())
	}
	if _, _, running := m.CameraTransition(); running {
		t.Error("a transition started for the same sprite")
	}
}

func TestSetCameraTransition(t *testing.T) {
	m, hero := newTestMap(t)
	other := NewVirtualSprite(2, 60, 40)
	m.Objects().AddGroundObject(other)

	m.SetCamera(other, 1000)
	if m.Camera() != other {
		t.Fatal("Camera() is not the new sprite")
	}
	dx, dy, running := m.CameraTransition()
	if dx != hero.X-other.X || dy != 0 || !running {
		t.Errorf("CameraTransition() = (%v, %v, %v), want (-10, 0, true)", dx, dy, running)
	}

	// The first frame still shows the old sprite
	m.Update(250, nil)
	if got := m.Frame().Edges.Left; got != 50-HalfScreenGridXLength {
		t.Errorf("Edges.Left = %v, want %v", got, 50-HalfScreenGridXLength)
	}
	m.Update(0, nil)
	if got := m.Frame().Edges.Left; !approx(got, 52.5-HalfScreenGridXLength) {
		t.Errorf("Edges.Left = %v, want %v", got, 52.5-HalfScreenGridXLength)
	}

	m.Update(750, nil)
	m.Update(0, nil)
	if got := m.Frame().Edges.Left; got != 60-HalfScreenGridXLength {
		t.Errorf("Edges.Left after the transition = %v, want %v", got, 60-HalfScreenGridXLength)
	}
}

func TestSetCameraImmediate(t *testing.T) {
	m, _ := newTestMap(t)
	other := NewVirtualSprite(2, 60, 40)
	m.SetCamera(other, 0)
	if _, _, running := m.CameraTransition(); running {
		t.Error("zero duration should not start a transition")
	}
	m.Update(0, nil)
	if got := m.Frame().Edges.Left; got != 60-HalfScreenGridXLength {
		t.Errorf("Edges.Left = %v, want %v", got, 60-HalfScreenGridXLength)
	}
}

func TestMoveVirtualFocusTimed(t *testing.T) {
	buf := captureLog(t)
	m, _ := newTestMap(t)

	m.MoveVirtualFocusTimed(10, 10, 500)
	if !strings.Contains(buf.String(), "Attempt to move camera although on different sprite") {
		t.Errorf("log = %q, want different sprite warning", buf.String())
	}
	if m.VirtualFocus().X != 0 {
		t.Error("virtual focus moved while the camera was elsewhere")
	}

	m.SetCamera(m.VirtualFocus(), 0)
	m.MoveVirtualFocus(30, 30)
	m.MoveVirtualFocusTimed(40, 20, 500)

	f := m.VirtualFocus()
	if f.X != 40 || f.Y != 20 {
		t.Errorf("virtual focus at (%v, %v), want (40, 20)", f.X, f.Y)
	}
	dx, dy, running := m.CameraTransition()
	if dx != -10 || dy != 10 || !running {
		t.Errorf("CameraTransition() = (%v, %v, %v), want (-10, 10, true)", dx, dy, running)
	}
}

func TestAttackAllowed(t *testing.T) {
	m, hero := newTestMap(t)
	if !m.AttackAllowed() {
		t.Error("AttackAllowed() = false while exploring with a sprite")
	}

	m.SetCamera(m.VirtualFocus(), 0)
	if !m.IsCameraOnVirtualFocus() || m.AttackAllowed() {
		t.Error("AttackAllowed() = true with the camera on the virtual focus")
	}

	m.SetCamera(hero, 0)
	m.PushState(StateTreasure)
	if m.AttackAllowed() {
		t.Error("AttackAllowed() = true outside of explore")
	}
}
