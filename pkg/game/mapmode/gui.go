package mapmode

// Stamina bar geometry in standard resolution pixels
const (
	StaminaBarWidth = 200.0
	StaminaBarX     = 780.0
	StaminaBarY     = 747.0
)

// updateGUIAlpha fades the GUI out during scenes and dialogues and back in otherwise
func (m *MapMode) updateGUIAlpha(elapsedMs int) {
	step := float64(elapsedMs) * GUIAlphaPerMs
	switch m.CurrentState() {
	case StateScene, StateDialogue:
		if m.guiAlpha > 0 {
			m.guiAlpha = max(m.guiAlpha-step, 0)
		}
	default:
		if m.guiAlpha < 1 {
			m.guiAlpha = min(m.guiAlpha+step, 1)
		}
	}
}

// GUIAlpha returns the opacity of the map GUI
func (m *MapMode) GUIAlpha() float64 {
	return m.guiAlpha
}

// IntroShown returns true while the location intro is on screen
func (m *MapMode) IntroShown() bool {
	return !m.introTimer.IsFinished() && !m.introTimer.IsInitial()
}

// IntroBlend returns the opacity of the location intro: fading in over the first second,
// fading out after two.
func (m *MapMode) IntroBlend() float64 {
	if !m.IntroShown() {
		return 0
	}
	t := m.introTimer.TimeExpired()
	switch {
	case t < 1000:
		return float64(t) / 1000
	case t > 2000:
		return max(1-float64(t-2000)/1000, 0)
	default:
		return 1
	}
}

// IntroNameShift is the horizontal drift of the location name during the intro, in pixels
func (m *MapMode) IntroNameShift() float64 {
	return (float64(m.introTimer.TimeExpired()) - 2000) / 100
}

// ShowHudName returns true when the location name is part of the intro
func (m *MapMode) ShowHudName() bool {
	return m.showHudName
}

// SetShowHudName hides the location name, e.g. when coming back to the map just left
func (m *MapMode) SetShowHudName(show bool) {
	m.showHudName = show
}

// RunStamina returns the stamina left, from 0 to MaxStamina
func (m *MapMode) RunStamina() int {
	return m.runStamina
}

// SetRunStamina sets the stamina, clamped to [0, MaxStamina]
func (m *MapMode) SetRunStamina(v int) {
	m.runStamina = max(min(v, MaxStamina), 0)
}

// UnlimitedStamina returns true when running never tires
func (m *MapMode) UnlimitedStamina() bool {
	return m.unlimitedStamina
}

// SetUnlimitedStamina turns unlimited running on or off
func (m *MapMode) SetUnlimitedStamina(on bool) {
	m.unlimitedStamina = on
}

// RunningDisabled returns true when the player cannot run
func (m *MapMode) RunningDisabled() bool {
	return m.runningDisabled
}

// SetRunningDisabled forbids or allows running
func (m *MapMode) SetRunningDisabled(disabled bool) {
	m.runningDisabled = disabled
}

// StaminaHiddenWidth returns the width in pixels of the empty part of the stamina bar
func (m *MapMode) StaminaHiddenWidth() float64 {
	return (1 - float64(m.runStamina)/MaxStamina) * StaminaBarWidth
}

// StaminaBarAlpha returns the opacity of the stamina bar. It is hidden when running is
// disabled, fades in with the intro and follows the GUI alpha afterwards.
func (m *MapMode) StaminaBarAlpha() float64 {
	if m.runningDisabled {
		return 0
	}
	if m.IntroShown() {
		t := m.introTimer.TimeExpired()
		if m.unlimitedStamina || t < 1000 {
			return m.IntroBlend()
		}
		return 1
	}
	if m.unlimitedStamina {
		return 0
	}
	return m.guiAlpha
}
