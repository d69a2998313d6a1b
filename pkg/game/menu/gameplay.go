package menu

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"darkvale/pkg/game/mapmode"
)

// GameplayMenuAction represents the action type for gameplay menu items.
type GameplayMenuAction int

const (
	GameplayMenuActionResume GameplayMenuAction = iota
	GameplayMenuActionMinimap
	GameplayMenuActionDebugInfo
	GameplayMenuActionBindings
	GameplayMenuActionQuit
)

// GameplayMenuItem represents a menu item in the gameplay menu.
type GameplayMenuItem struct {
	Label  string
	Action GameplayMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *GameplayMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *GameplayMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *GameplayMenuItem) GetHelpText() string {
	switch m.Action {
	case GameplayMenuActionResume:
		return gotext.Get("MENU_RESUME_HELP")
	case GameplayMenuActionMinimap:
		return gotext.Get("MENU_MINIMAP_HELP")
	case GameplayMenuActionDebugInfo:
		return gotext.Get("MENU_DEBUG_HELP")
	case GameplayMenuActionBindings:
		return gotext.Get("MENU_BINDINGS_HELP")
	case GameplayMenuActionQuit:
		return gotext.Get("MENU_QUIT_HELP")
	default:
		return ""
	}
}

// GameplayMenuHandler handles the menu opened from map mode.
// Its toggles act on the map right away; Quit is read back by the caller once the menu closes.
type GameplayMenuHandler struct {
	m              *mapmode.MapMode
	selectedAction GameplayMenuAction
	shouldQuit     bool
	submenu        DynamicMenuHandler
}

// NewGameplayMenuHandler creates a new gameplay menu handler for a map.
func NewGameplayMenuHandler(m *mapmode.MapMode) *GameplayMenuHandler {
	return &GameplayMenuHandler{m: m}
}

// GetTitle returns the menu title.
func (h *GameplayMenuHandler) GetTitle() string {
	return gotext.Get("MENU_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *GameplayMenuHandler) GetInstructions(selected MenuItem) string {
	return gotext.Get("MENU_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *GameplayMenuHandler) OnSelect(item MenuItem, index int) {
	if gameplayItem, ok := item.(*GameplayMenuItem); ok {
		h.selectedAction = gameplayItem.Action
	}
}

// OnActivate is called when an item is activated.
func (h *GameplayMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	gameplayItem, ok := item.(*GameplayMenuItem)
	if !ok {
		return false, ""
	}
	h.selectedAction = gameplayItem.Action

	switch gameplayItem.Action {
	case GameplayMenuActionResume:
		return true, ""
	case GameplayMenuActionMinimap:
		prefs := h.m.Preferences()
		prefs.SetShowMinimap(!prefs.ShowMinimap())
	case GameplayMenuActionDebugInfo:
		h.m.SetDebugInfo(!h.m.DebugInfo())
	case GameplayMenuActionBindings:
		h.submenu = NewBindingsMenuHandler()
	case GameplayMenuActionQuit:
		h.shouldQuit = true
		return true, ""
	}
	return false, ""
}

// TakeSubmenu returns the bindings menu once after it was activated
func (h *GameplayMenuHandler) TakeSubmenu() DynamicMenuHandler {
	sub := h.submenu
	h.submenu = nil
	return sub
}

// OnExit is called when the menu is exited.
func (h *GameplayMenuHandler) OnExit() {
	// Nothing to do on exit
}

// ShouldCloseOnAnyAction returns true if the menu should close on any action.
func (h *GameplayMenuHandler) ShouldCloseOnAnyAction() bool {
	return false // Gameplay menu only closes on activation or menu/cancel
}

// GetSelectedAction returns the selected action (if any).
func (h *GameplayMenuHandler) GetSelectedAction() GameplayMenuAction {
	return h.selectedAction
}

// ShouldQuit returns true if the player selected Quit.
func (h *GameplayMenuHandler) ShouldQuit() bool {
	return h.shouldQuit
}

// GetMenuItems returns the menu items for the gameplay menu.
// Toggle labels show the current setting.
func (h *GameplayMenuHandler) GetMenuItems() []MenuItem {
	items := []MenuItem{
		&GameplayMenuItem{Label: gotext.Get("MENU_RESUME"), Action: GameplayMenuActionResume},
	}
	if h.m.Minimap() != nil {
		items = append(items, &GameplayMenuItem{
			Label:  fmt.Sprintf(gotext.Get("MENU_MINIMAP"), onOff(h.m.Preferences().ShowMinimap())),
			Action: GameplayMenuActionMinimap,
		})
	}
	return append(items,
		&GameplayMenuItem{Label: fmt.Sprintf(gotext.Get("MENU_DEBUG"), onOff(h.m.DebugInfo())), Action: GameplayMenuActionDebugInfo},
		&GameplayMenuItem{Label: gotext.Get("MENU_BINDINGS"), Action: GameplayMenuActionBindings},
		&GameplayMenuItem{Label: gotext.Get("MENU_QUIT"), Action: GameplayMenuActionQuit},
	)
}

func onOff(on bool) string {
	if on {
		return gotext.Get("MENU_ON")
	}
	return gotext.Get("MENU_OFF")
}
