package input

import "testing"

func TestMapToAction(t *testing.T) {
	tests := map[string]Action{
		"arrow_up":  ActionUp,
		"a":         ActionLeft,
		"enter":     ActionConfirm,
		"shift":     ActionCancel,
		"m":         ActionMinimap,
		"gamepad_a": ActionConfirm,
		"unbound":   ActionNone,
	}
	for code, want := range tests {
		if got := MapToAction(RawInput{Device: DeviceKeyboard, Code: code}); got != want {
			t.Errorf("MapToAction(%q) = %v, want %v", code, ActionName(got), ActionName(want))
		}
	}
}

func TestStatePressAndHold(t *testing.T) {
	s := NewState()
	s.PressCode(RawInput{Device: DeviceKeyboard, Code: "enter"})
	s.HoldCode(RawInput{Device: DeviceKeyboard, Code: "arrow_left"})

	if !s.Pressed(ActionConfirm) || !s.Held(ActionConfirm) {
		t.Error("pressed action should be pressed and held")
	}
	if s.Pressed(ActionLeft) || !s.Held(ActionLeft) {
		t.Error("held action should be held but not pressed")
	}
	if !s.AnyDirectionHeld() {
		t.Error("AnyDirectionHeld() = false with left held")
	}

	s.EndTick()
	if s.Pressed(ActionConfirm) {
		t.Error("EndTick() should clear presses")
	}
	if !s.Held(ActionLeft) {
		t.Error("EndTick() should keep held actions")
	}

	s.Release(ActionLeft)
	if s.AnyDirectionHeld() {
		t.Error("AnyDirectionHeld() = true after release")
	}

	s.Press(ActionNone)
	if s.Held(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
}

func TestPressedCodes(t *testing.T) {
	s := NewState()
	s.PressCode(RawInput{Device: DeviceKeyboard, Code: "i"})
	s.PressCode(RawInput{Device: DeviceKeyboard, Code: "enter"})
	s.HoldCode(RawInput{Device: DeviceKeyboard, Code: "w"})

	codes := s.PressedCodes()
	if len(codes) != 2 || codes[0] != "i" || codes[1] != "enter" {
		t.Errorf("PressedCodes() = %v, want [i enter]", codes)
	}
	s.EndTick()
	if len(s.PressedCodes()) != 0 {
		t.Errorf("PressedCodes() = %v after EndTick", s.PressedCodes())
	}
}

func TestSetSingleBinding(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	defer func() { bindings = saved }()

	SetSingleBinding(ActionUp, "i")
	codes := GetBindingsByAction()[ActionUp]
	want := []string{"arrow_up", "i"}
	if len(codes) != len(want) {
		t.Fatalf("bindings for Up = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("bindings for Up = %v, want %v", codes, want)
		}
	}

	SetSingleBinding(ActionQuit, "arrow_up")
	if MapToAction(RawInput{Code: "arrow_up"}) != ActionUp {
		t.Error("reserved code arrow_up was rebound")
	}
}

func TestCodeForByte(t *testing.T) {
	tests := map[byte]string{
		'\r': "enter",
		' ':  "space",
		'W':  "w",
		'm':  "m",
		0x01: "",
	}
	for b, want := range tests {
		if got := codeForByte(b); got != want {
			t.Errorf("codeForByte(%#x) = %q, want %q", b, got, want)
		}
	}
}
