// Package config loads map descriptions, player preferences and translations.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the storage name used for persisted data
const AppName = "darkvale"

// Zoom limits for the window scale
const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	DefaultZoom = 1.0
)

// Settings are the persisted player preferences
type Settings struct {
	ShowMinimap    bool    `yaml:"showMinimap"`
	DebugInfo      bool    `yaml:"debugInfo"`
	Language       string  `yaml:"language"`
	Zoom           float64 `yaml:"zoom"`
	HudNameOnIntro bool    `yaml:"hudNameOnIntro"`
}

// DefaultSettings returns the settings used when nothing was saved
func DefaultSettings() *Settings {
	return &Settings{
		ShowMinimap:    true,
		DebugInfo:      false,
		Language:       "en_GB",
		Zoom:           DefaultZoom,
		HudNameOnIntro: true,
	}
}

const (
	preferencesObject   = "preferences"
	preferencesProperty = "player"
)

// Preferences keeps the settings in memory and persists them through gdata.
// With a nil manager nothing is persisted.
type Preferences struct {
	manager  *gdata.Manager
	settings *Settings
}

var current *Preferences

// Current returns the preferences opened by Open, or in-memory defaults
func Current() *Preferences {
	if current == nil {
		current = NewPreferences(nil)
	}
	return current
}

// Open opens the gdata storage and loads the saved preferences. A storage failure
// falls back to in-memory preferences.
func Open() *Preferences {
	current = NewPreferences(OpenStorage())
	return current
}

// NewPreferences creates preferences backed by a gdata manager, which may be nil
func NewPreferences(m *gdata.Manager) *Preferences {
	p := &Preferences{manager: m, settings: DefaultSettings()}
	if err := p.Load(); err != nil {
		log.Printf("[Preferences] Warning: Failed to load preferences: %v (using defaults)", err)
	}
	return p
}

// Load reads the saved settings. Missing data keeps the defaults.
func (p *Preferences) Load() error {
	if p.manager == nil {
		p.settings = DefaultSettings()
		return nil
	}
	if !p.manager.ObjectPropExists(preferencesObject, preferencesProperty) {
		p.settings = DefaultSettings()
		return nil
	}

	data, err := p.manager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		p.settings = DefaultSettings()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		p.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	loaded.Zoom = clampZoom(loaded.Zoom)
	p.settings = loaded
	return nil
}

// Save writes the settings. Without a manager it does nothing.
func (p *Preferences) Save() error {
	if p.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(p.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := p.manager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// saveOrWarn saves and only reports failures; losing a preference is not critical
func (p *Preferences) saveOrWarn() {
	if err := p.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save preferences: %v\n", err)
	}
}

// Storage returns the gdata manager, nil in degraded mode
func (p *Preferences) Storage() *gdata.Manager {
	return p.manager
}

// Settings returns a copy of the current settings
func (p *Preferences) Settings() Settings {
	return *p.settings
}

// ShowMinimap returns true when the player wants the minimap
func (p *Preferences) ShowMinimap() bool {
	return p.settings.ShowMinimap
}

// SetShowMinimap changes and saves the minimap preference
func (p *Preferences) SetShowMinimap(show bool) {
	p.settings.ShowMinimap = show
	p.saveOrWarn()
}

// DebugInfo returns true when debug information is shown
func (p *Preferences) DebugInfo() bool {
	return p.settings.DebugInfo
}

// SetDebugInfo changes and saves the debug information preference
func (p *Preferences) SetDebugInfo(on bool) {
	p.settings.DebugInfo = on
	p.saveOrWarn()
}

// Language returns the preferred translation
func (p *Preferences) Language() string {
	return p.settings.Language
}

// SetLanguage changes and saves the preferred translation
func (p *Preferences) SetLanguage(lang string) {
	if lang == "" {
		return
	}
	p.settings.Language = lang
	p.saveOrWarn()
}

// HudNameOnIntro returns true when the location name is shown on map intros
func (p *Preferences) HudNameOnIntro() bool {
	return p.settings.HudNameOnIntro
}

// Zoom returns the window scale
func (p *Preferences) Zoom() float64 {
	return p.settings.Zoom
}

// SetZoom changes the window scale, clamped to [MinZoom, MaxZoom], and saves it
func (p *Preferences) SetZoom(zoom float64) error {
	p.settings.Zoom = clampZoom(zoom)
	return p.Save()
}

func clampZoom(z float64) float64 {
	switch {
	case z == 0:
		return DefaultZoom
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}
