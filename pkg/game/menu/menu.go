// Package menu provides a generic menu system driven one tick at a time.
package menu

import (
	"darkvale/pkg/engine/input"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)

	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
	// ShouldCloseOnAnyAction returns true if the menu should close on any action (not just menu/cancel).
	ShouldCloseOnAnyAction() bool
}

// DynamicMenuHandler extends MenuHandler with dynamic menu items.
// Update calls GetMenuItems every tick so labels can follow the settings they show.
type DynamicMenuHandler interface {
	MenuHandler
	GetMenuItems() []MenuItem
}

// SubmenuOpener is an optional interface for handlers that open a nested menu on activation.
// TakeSubmenu is called after every activation and returns nil when nothing should open.
type SubmenuOpener interface {
	TakeSubmenu() DynamicMenuHandler
}

// InputCapturer is an optional interface for handlers that sometimes read raw input themselves,
// such as waiting for the key of a new binding. While CaptureInput returns consumed, the menu
// does nothing else with the tick; a non-empty helpText replaces the shown help.
type InputCapturer interface {
	CaptureInput(in *input.State) (consumed bool, helpText string)
}

// Menu is an open menu. It never blocks: Update consumes the input of one tick.
type Menu struct {
	handler  MenuHandler
	items    []MenuItem
	selected int
	helpText string
	child    *Menu
	closed   bool
}

// New opens a menu on fixed items
func New(items []MenuItem, handler MenuHandler) *Menu {
	m := &Menu{handler: handler, items: items}
	m.selected = firstSelectable(items)
	return m
}

// NewDynamic opens a menu whose items are asked from the handler every tick
func NewDynamic(handler DynamicMenuHandler) *Menu {
	return New(handler.GetMenuItems(), handler)
}

func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return 0
}

// Update applies one tick of input and returns false once the menu is closed.
// While a submenu is open it receives the input instead.
func (m *Menu) Update(in *input.State) bool {
	if m.closed {
		return false
	}
	if in == nil {
		in = input.NewState()
	}
	if m.child != nil {
		if !m.child.Update(in) {
			m.child = nil
		}
		return true
	}

	if dh, ok := m.handler.(DynamicMenuHandler); ok {
		m.items = dh.GetMenuItems()
		if m.selected >= len(m.items) {
			m.selected = firstSelectable(m.items)
		}
	}

	if c, ok := m.handler.(InputCapturer); ok {
		if consumed, helpText := c.CaptureInput(in); consumed {
			if helpText != "" {
				m.helpText = helpText
			}
			return true
		}
	}

	if m.handler.ShouldCloseOnAnyAction() && anyActionPressed(in) {
		m.Close()
		return false
	}

	switch {
	case in.Pressed(input.ActionUp):
		m.selectPrevious()
	case in.Pressed(input.ActionDown):
		m.selectNext()
	case in.Pressed(input.ActionConfirm):
		if m.selected >= 0 && m.selected < len(m.items) && m.items[m.selected].IsSelectable() {
			shouldClose, helpText := m.handler.OnActivate(m.items[m.selected], m.selected)
			m.helpText = helpText
			if shouldClose {
				m.Close()
				return false
			}
			if opener, ok := m.handler.(SubmenuOpener); ok {
				if sub := opener.TakeSubmenu(); sub != nil {
					m.child = NewDynamic(sub)
				}
			}
		}
	case in.Pressed(input.ActionMenu), in.Pressed(input.ActionCancel), in.Pressed(input.ActionQuit):
		m.Close()
		return false
	}
	return true
}

// anyActionPressed ignores the up and down navigation
func anyActionPressed(in *input.State) bool {
	for a := input.ActionConfirm; a <= input.ActionZoomOut; a++ {
		if in.Pressed(a) {
			return true
		}
	}
	return in.Pressed(input.ActionLeft) || in.Pressed(input.ActionRight)
}

// selectPrevious moves the selection up to the previous selectable item, wrapping to the last one
func (m *Menu) selectPrevious() {
	for i := m.selected - 1; i >= 0; i-- {
		if m.items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
	for i := len(m.items) - 1; i > m.selected; i-- {
		if m.items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
}

// selectNext moves the selection down to the next selectable item, wrapping to the first one
func (m *Menu) selectNext() {
	for i := m.selected + 1; i < len(m.items); i++ {
		if m.items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
	for i := 0; i < m.selected; i++ {
		if m.items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
}

func (m *Menu) selectIndex(i int) {
	m.selected = i
	m.helpText = ""
	m.handler.OnSelect(m.items[i], i)
}

// Close closes the menu and its submenu
func (m *Menu) Close() {
	if m.closed {
		return
	}
	if m.child != nil {
		m.child.Close()
		m.child = nil
	}
	m.closed = true
	m.handler.OnExit()
}

// Closed returns true once the menu was closed
func (m *Menu) Closed() bool {
	return m.closed
}

// Top returns the innermost open menu, the one drawn and driven by input
func (m *Menu) Top() *Menu {
	if m.child != nil {
		return m.child.Top()
	}
	return m
}

// Title returns the title of the menu
func (m *Menu) Title() string {
	return m.handler.GetTitle()
}

// Items returns the items of the menu
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Selected returns the index of the selected item
func (m *Menu) Selected() int {
	return m.selected
}

// HelpText returns the text left by the last activation, or the help of the selected item
func (m *Menu) HelpText() string {
	if m.helpText != "" {
		return m.helpText
	}
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected].GetHelpText()
	}
	return ""
}

// Instructions returns the instructions for the selected item
func (m *Menu) Instructions() string {
	var selected MenuItem
	if m.selected >= 0 && m.selected < len(m.items) {
		selected = m.items[m.selected]
	}
	return m.handler.GetInstructions(selected)
}
