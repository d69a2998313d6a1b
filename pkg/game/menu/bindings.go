package menu

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"darkvale/pkg/engine/input"
)

// BindingMenuItem represents a menu item for a key binding.
type BindingMenuItem struct {
	Action        input.Action
	NonRebindable bool
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	name := input.ActionName(b.Action)
	codes := input.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = gotext.Get("BINDING_UNBOUND")
	}

	if b.NonRebindable {
		return fmt.Sprintf("%s: %s %s", name, codeText, gotext.Get("BINDING_FIXED"))
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	return ""
}

// BindingsMenuHandler handles the bindings menu.
// Activating a binding waits for the next key, which then replaces the binding.
type BindingsMenuHandler struct {
	actions       []input.Action
	nonRebindable map[input.Action]bool
	capturing     input.Action
}

// NewBindingsMenuHandler creates a new bindings menu handler.
func NewBindingsMenuHandler() *BindingsMenuHandler {
	actions := []input.Action{
		input.ActionUp,
		input.ActionDown,
		input.ActionLeft,
		input.ActionRight,
		input.ActionConfirm,
		input.ActionCancel,
		input.ActionMenu,
		input.ActionPause,
		input.ActionQuit,
		input.ActionMinimap,
		input.ActionDebugGrid,
		input.ActionZoomIn,
		input.ActionZoomOut,
	}

	nonRebindable := make(map[input.Action]bool)
	for _, act := range actions {
		if isNonRebindable(act) {
			nonRebindable[act] = true
		}
	}

	return &BindingsMenuHandler{
		actions:       actions,
		nonRebindable: nonRebindable,
	}
}

// GetTitle returns the menu title.
func (h *BindingsMenuHandler) GetTitle() string {
	return gotext.Get("BINDINGS_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *BindingsMenuHandler) GetInstructions(selected MenuItem) string {
	if h.capturing != input.ActionNone {
		return gotext.Get("BINDINGS_CAPTURE_INSTRUCTIONS")
	}
	if bindingItem, ok := selected.(*BindingMenuItem); ok && !bindingItem.NonRebindable {
		return gotext.Get("BINDINGS_EDIT_INSTRUCTIONS")
	}
	return gotext.Get("BINDINGS_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *BindingsMenuHandler) OnSelect(item MenuItem, index int) {
	// Nothing to do on selection
}

// OnActivate starts waiting for the key of the activated binding.
func (h *BindingsMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	bindingItem, ok := item.(*BindingMenuItem)
	if !ok || bindingItem.NonRebindable {
		return false, ""
	}
	h.capturing = bindingItem.Action
	return false, fmt.Sprintf(gotext.Get("BINDING_PRESS_KEY"), input.ActionName(bindingItem.Action))
}

// CaptureInput takes the first key pressed while a binding waits for one.
// Escape cancels the edit.
func (h *BindingsMenuHandler) CaptureInput(in *input.State) (consumed bool, helpText string) {
	if h.capturing == input.ActionNone {
		return false, ""
	}
	codes := in.PressedCodes()
	if len(codes) == 0 {
		return true, ""
	}

	action := h.capturing
	h.capturing = input.ActionNone
	code := codes[0]
	if code == "escape" {
		return true, gotext.Get("BINDING_CANCELLED")
	}
	input.SetSingleBinding(action, code)
	return true, fmt.Sprintf(gotext.Get("BINDING_SET"), input.ActionName(action), code)
}

// Capturing returns the action waiting for a key, or ActionNone
func (h *BindingsMenuHandler) Capturing() input.Action {
	return h.capturing
}

// OnExit is called when the menu is exited.
func (h *BindingsMenuHandler) OnExit() {
	h.capturing = input.ActionNone
}

// ShouldCloseOnAnyAction returns true if the menu should close on any action.
func (h *BindingsMenuHandler) ShouldCloseOnAnyAction() bool {
	return false // Bindings menu only closes on menu/cancel actions
}

// GetMenuItems returns the menu items for the bindings menu.
func (h *BindingsMenuHandler) GetMenuItems() []MenuItem {
	items := make([]MenuItem, len(h.actions))
	for i, action := range h.actions {
		items[i] = &BindingMenuItem{
			Action:        action,
			NonRebindable: h.nonRebindable[action],
		}
	}
	return items
}

// isNonRebindable checks if an action cannot be rebound.
// Confirm and Menu stay fixed so the menu itself can always be driven.
func isNonRebindable(action input.Action) bool {
	return action == input.ActionConfirm ||
		action == input.ActionMenu ||
		action == input.ActionZoomIn ||
		action == input.ActionZoomOut
}
