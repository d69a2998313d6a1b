// Package state runs the active map and answers its requests: quit, pause, menu and save.
package state

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/game/config"
	"darkvale/pkg/game/global"
	"darkvale/pkg/game/mapmode"
	"darkvale/pkg/game/menu"
)

// Session is the running game: the active map, the message log and the save slot
type Session struct {
	Map     *mapmode.MapMode
	MapName string

	Messages []string
	added    int

	saves    *config.SaveStore
	menu     *menu.Menu
	gameplay *menu.GameplayMenuHandler
	paused   bool
	quit     bool
	ticks    int
}

// NewSession starts a session on a map. saves may be nil when nothing is persisted.
func NewSession(m *mapmode.MapMode, mapName string, saves *config.SaveStore) *Session {
	if saves == nil {
		saves = config.NewSaveStore(nil)
	}
	m.Reset()
	return &Session{
		Map:      m,
		MapName:  mapName,
		Messages: make([]string, 0),
		saves:    saves,
	}
}

// AddMessage adds a message to the message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)
	s.added++

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// MessagesAdded returns how many messages were ever added, including those dropped from the log
func (s *Session) MessagesAdded() int {
	return s.added
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Paused returns true while the map is frozen
func (s *Session) Paused() bool {
	return s.paused
}

// Done returns true once the player asked to quit
func (s *Session) Done() bool {
	return s.quit
}

// Ticks returns the number of map updates run so far
func (s *Session) Ticks() int {
	return s.ticks
}

// Menu returns the open menu, or nil
func (s *Session) Menu() *menu.Menu {
	return s.menu
}

// Tick runs one map update. While paused it only watches for resume and quit,
// and while the menu is open the input drives the menu instead of the map.
func (s *Session) Tick(elapsedMs int, in *input.State) {
	if s.quit {
		return
	}
	if s.menu != nil {
		s.updateMenu(in)
		return
	}
	if s.paused {
		switch {
		case in.Pressed(input.ActionQuit):
			s.quit = true
		case in.Pressed(input.ActionPause):
			s.paused = false
		}
		return
	}

	s.ticks++
	s.handle(s.Map.Update(elapsedMs, in))
}

func (s *Session) handle(req mapmode.Request) {
	switch req {
	case mapmode.RequestNone:
	case mapmode.RequestQuit:
		logging.Infof("Session", "quit requested on tick %d", s.ticks)
		s.quit = true
	case mapmode.RequestPause:
		s.paused = true
	case mapmode.RequestMenu:
		s.gameplay = menu.NewGameplayMenuHandler(s.Map)
		s.menu = menu.NewDynamic(s.gameplay)
	case mapmode.RequestSave:
		if err := s.Save(); err != nil {
			logging.Errorf("Session", "%v", err)
			return
		}
		x, y := s.Map.SavePosition()
		s.AddMessage(fmt.Sprintf(gotext.Get("GAME_SAVED"), x, y))
	default:
		logging.Warnf("Session", "unknown map request: %s", req)
	}
}

func (s *Session) updateMenu(in *input.State) {
	if s.menu.Update(in) {
		return
	}
	if s.gameplay.ShouldQuit() {
		logging.Infof("Session", "quit from the menu on tick %d", s.ticks)
		s.quit = true
	}
	s.menu = nil
	s.gameplay = nil
}

// Save writes the save position, the opened treasures and the inventory
func (s *Session) Save() error {
	x, y := s.Map.SavePosition()
	sg := &config.SaveGame{
		Map:   s.MapName,
		X:     x,
		Y:     y,
		Taken: s.Map.Treasure().TakenIDs(),
	}
	for _, item := range s.Map.Treasure().Inventory() {
		sg.Inventory = append(sg.Inventory, config.SavedItem{ID: item.ID, Name: item.Name, Count: item.Count})
	}
	if err := s.saves.Save(sg); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.MapName, err)
	}
	return nil
}

// Restore puts the camera sprite back on the saved position and reapplies what was found.
// It returns false when the map has no save.
func (s *Session) Restore() (bool, error) {
	sg, ok, err := s.saves.Load(s.MapName)
	if err != nil || !ok {
		return false, err
	}

	if !s.Map.IsCameraOnVirtualFocus() {
		s.Map.Camera().SetPosition(sg.X, sg.Y)
	}
	for _, id := range sg.Taken {
		s.Map.Treasure().MarkTaken(id)
	}
	for _, it := range sg.Inventory {
		s.Map.Treasure().AddToInventory(global.NewItem(it.ID, it.Name, it.Count))
	}
	s.Map.Reset()
	return true, nil
}
