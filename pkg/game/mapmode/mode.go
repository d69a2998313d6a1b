// Package mapmode runs a map: camera frame, state stack, objects, scenes, dialogues and treasures.
package mapmode

import (
	"fmt"
	"math/rand"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/engine/timer"
	"darkvale/pkg/engine/world"
	"darkvale/pkg/game/global"
	"darkvale/pkg/game/indicator"
)

// Request tells whoever runs the modes what the map wants after a tick
type Request int

const (
	RequestNone Request = iota
	RequestQuit
	RequestPause
	RequestMenu
	RequestSave
)

// String returns the string representation of a request
func (r Request) String() string {
	switch r {
	case RequestNone:
		return "none"
	case RequestQuit:
		return "quit"
	case RequestPause:
		return "pause"
	case RequestMenu:
		return "menu"
	case RequestSave:
		return "save"
	default:
		return "unknown"
	}
}

// Stamina and GUI tuning
const (
	MaxStamina     = 10000
	IntroTime      = 4000
	GUIAlphaPerMs  = 0.005
	VirtualFocusID = -1
)

// Preferences are the player settings the map reads and toggles
type Preferences interface {
	ShowMinimap() bool
	SetShowMinimap(show bool)
}

// memoryPreferences is used when no preferences are given
type memoryPreferences struct {
	showMinimap bool
}

func (p *memoryPreferences) ShowMinimap() bool { return p.showMinimap }
func (p *memoryPreferences) SetShowMinimap(v bool) { p.showMinimap = v }

// UpdateHook is called every tick in the map's place of a script update function
type UpdateHook func(m *MapMode, elapsedMs int)

// Config holds what a map is built from
type Config struct {
	Name    string
	Subname string

	Grid   *world.Grid
	TilesX int
	TilesY int

	Media *global.Media
	Rand  *rand.Rand
	Prefs Preferences

	// ShowMinimap enables the minimap for this map; the player preference can still hide it
	ShowMinimap      bool
	UnlimitedStamina bool
	RunningDisabled  bool
}

// MapMode is one loaded map
type MapMode struct {
	name    string
	subname string

	states *StateStack
	frame  Frame

	camera       *VirtualSprite
	virtualFocus *VirtualSprite
	deltaX       float64
	deltaY       float64
	cameraTimer  *timer.SystemTimer

	objects    *ObjectSupervisor
	tiles      *TileSupervisor
	events     *EventSupervisor
	dialogue   *DialogueSupervisor
	treasure   *TreasureSupervisor
	indicators *indicator.Supervisor
	minimap    *Minimap

	prefs       Preferences
	showMinimap bool
	debugInfo   bool
	showHudName bool

	introTimer       *timer.SystemTimer
	runStamina       int
	unlimitedStamina bool
	runningDisabled  bool
	guiAlpha         float64

	debugText string
	hook      UpdateHook

	saveX, saveY float64
	lastElapsed  int
}

// New creates a map in StateExplore. The camera starts on the virtual focus until SetCamera.
func New(cfg Config) *MapMode {
	grid := cfg.Grid
	if grid == nil {
		grid = world.NewGrid(max(cfg.TilesY*2, 2), max(cfg.TilesX*2, 2))
	}
	prefs := cfg.Prefs
	if prefs == nil {
		prefs = &memoryPreferences{showMinimap: true}
	}

	m := &MapMode{
		name:             cfg.Name,
		subname:          cfg.Subname,
		states:           NewStateStack(),
		virtualFocus:     NewVirtualFocus(VirtualFocusID),
		cameraTimer:      timer.New(0, 0),
		objects:          NewObjectSupervisor(grid),
		tiles:            NewTileSupervisor(cfg.TilesX, cfg.TilesY),
		indicators:       indicator.NewSupervisor(cfg.Media, cfg.Rand),
		prefs:            prefs,
		showMinimap:      cfg.ShowMinimap,
		showHudName:      true,
		introTimer:       timer.New(IntroTime, 0),
		runStamina:       MaxStamina,
		unlimitedStamina: cfg.UnlimitedStamina,
		runningDisabled:  cfg.RunningDisabled,
	}
	m.events = NewEventSupervisor(m.states)
	m.dialogue = NewDialogueSupervisor(m.states)
	m.treasure = NewTreasureSupervisor(m.states, m.indicators)
	if cfg.ShowMinimap {
		m.minimap = NewMinimap(grid.Cols(), grid.Rows())
	}
	m.camera = m.virtualFocus

	m.ResetState()
	m.PushState(StateExplore)
	return m
}

// Reset is called when the map becomes the active mode. It replays the location intro.
func (m *MapMode) Reset() {
	m.introTimer.Reset()
	m.introTimer.Run()
	m.updateFrame(0)
}

// ResetState empties the state stack
func (m *MapMode) ResetState() {
	m.states.Reset()
}

// PushState makes a new state current
func (m *MapMode) PushState(s State) {
	m.states.Push(s)
}

// PopState returns to the previous state
func (m *MapMode) PopState() {
	m.states.Pop()
}

// CurrentState returns the current state
func (m *MapMode) CurrentState() State {
	return m.states.Current()
}

// Update runs one tick of the map and returns what the map wants from the mode manager
func (m *MapMode) Update(elapsedMs int, in *input.State) Request {
	if in == nil {
		in = input.NewState()
	}
	m.lastElapsed = elapsedMs

	// The frame is computed first so it is valid if the map is paused right away
	m.updateFrame(elapsedMs)

	switch {
	case in.Pressed(input.ActionQuit):
		return RequestQuit
	case in.Pressed(input.ActionPause):
		return RequestPause
	case in.Pressed(input.ActionMinimap):
		m.prefs.SetShowMinimap(!m.prefs.ShowMinimap())
		return RequestNone
	}

	m.dialogue.UpdateIcon(elapsedMs)
	if m.hook != nil {
		m.hook(m, elapsedMs)
	}

	m.tiles.Update(elapsedMs)
	m.objects.Update(elapsedMs)
	m.objects.SortObjects()

	m.updateGUIAlpha(elapsedMs)

	req := RequestNone
	switch m.CurrentState() {
	case StateExplore:
		req = m.updateExplore(elapsedMs, in)
	case StateScene:
	case StateDialogue:
		m.dialogue.Update(in)
	case StateTreasure:
		m.camera.Moving = false
		m.treasure.Update(in)
	default:
		logging.Warnf("MapMode", "map was set in an unknown state: %s", m.CurrentState())
		m.ResetState()
	}

	m.cameraTimer.Update(elapsedMs)
	m.events.Update(elapsedMs)

	if m.minimapShown() {
		m.minimap.Update(m.camera, m.frame, m.guiAlpha)
	}

	m.indicators.Update(elapsedMs)
	m.introTimer.Update(elapsedMs)

	if m.debugInfo {
		m.debugText = fmt.Sprintf("Camera position: %.2f, %.2f", m.camera.X, m.camera.Y)
	}

	return req
}

func (m *MapMode) updateFrame(elapsedMs int) {
	m.frame = ComputeFrame(FrameInput{
		CameraX:   m.camera.X,
		CameraY:   m.camera.Y,
		DeltaX:    m.deltaX,
		DeltaY:    m.deltaY,
		Timer:     m.cameraTimer,
		TilesX:    m.tiles.TilesX(),
		TilesY:    m.tiles.TilesY(),
		ElapsedMs: elapsedMs,
	})
}

func (m *MapMode) minimapShown() bool {
	return m.showMinimap && m.minimap != nil && m.CurrentState() == StateExplore && m.prefs.ShowMinimap()
}

// MinimapShown returns true when the minimap is drawn this tick
func (m *MapMode) MinimapShown() bool {
	return m.minimapShown()
}

// Frame returns the frame computed by the last update
func (m *MapMode) Frame() Frame {
	return m.frame
}

// Name returns the map location name
func (m *MapMode) Name() string {
	return m.name
}

// Subname returns the map location subname
func (m *MapMode) Subname() string {
	return m.subname
}

// Objects returns the object supervisor
func (m *MapMode) Objects() *ObjectSupervisor {
	return m.objects
}

// Tiles returns the tile supervisor
func (m *MapMode) Tiles() *TileSupervisor {
	return m.tiles
}

// Events returns the event supervisor
func (m *MapMode) Events() *EventSupervisor {
	return m.events
}

// Dialogue returns the dialogue supervisor
func (m *MapMode) Dialogue() *DialogueSupervisor {
	return m.dialogue
}

// Treasure returns the treasure supervisor
func (m *MapMode) Treasure() *TreasureSupervisor {
	return m.treasure
}

// Indicators returns the indicator supervisor
func (m *MapMode) Indicators() *indicator.Supervisor {
	return m.indicators
}

// Minimap returns the minimap, or nil when the map has none
func (m *MapMode) Minimap() *Minimap {
	return m.minimap
}

// Preferences returns the player settings the map reads
func (m *MapMode) Preferences() Preferences {
	return m.prefs
}

// SetUpdateHook installs the per-tick map script function
func (m *MapMode) SetUpdateHook(h UpdateHook) {
	m.hook = h
}

// SetDebugInfo turns the debug camera text on or off
func (m *MapMode) SetDebugInfo(on bool) {
	m.debugInfo = on
	if !on {
		m.debugText = ""
	}
}

// DebugInfo returns true when debug information is shown
func (m *MapMode) DebugInfo() bool {
	return m.debugInfo
}

// DebugText returns the debug camera position text, empty when debug info is off
func (m *MapMode) DebugText() string {
	return m.debugText
}

// SavePosition returns where the party is put back after saving at a save point
func (m *MapMode) SavePosition() (x, y float64) {
	return m.saveX, m.saveY
}

// LastElapsed returns the elapsed time of the last update
func (m *MapMode) LastElapsed() int {
	return m.lastElapsed
}
