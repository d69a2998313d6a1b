package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const saveGameObject = "savegame"

// SavedItem is an inventory entry of a save
type SavedItem struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// SaveGame is what a save point writes: where the player stood and what was found
type SaveGame struct {
	Map       string      `yaml:"map"`
	X         float64     `yaml:"x"`
	Y         float64     `yaml:"y"`
	Taken     []int       `yaml:"taken,omitempty"`
	Inventory []SavedItem `yaml:"inventory,omitempty"`
}

// SaveStore keeps one save per map in gdata. With a nil manager saves are kept in memory.
type SaveStore struct {
	manager *gdata.Manager
	memory  map[string][]byte
}

// NewSaveStore creates a save store backed by a gdata manager, which may be nil
func NewSaveStore(m *gdata.Manager) *SaveStore {
	return &SaveStore{manager: m, memory: make(map[string][]byte)}
}

// OpenStorage opens the gdata storage of the game, or returns nil when it is not available
func OpenStorage() *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[Storage] Warning: Failed to open storage: %v (nothing will be saved)", err)
		return nil
	}
	return m
}

// Save writes the save of sg.Map, replacing the previous one
func (s *SaveStore) Save(sg *SaveGame) error {
	if sg.Map == "" {
		return fmt.Errorf("failed to save game: no map name")
	}
	data, err := yaml.Marshal(sg)
	if err != nil {
		return fmt.Errorf("failed to marshal save game: %w", err)
	}
	if s.manager == nil {
		s.memory[sg.Map] = data
		return nil
	}
	if err := s.manager.SaveObjectProp(saveGameObject, sg.Map, data); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// Load reads the save of a map. ok is false when there is none.
func (s *SaveStore) Load(mapName string) (sg *SaveGame, ok bool, err error) {
	var data []byte
	if s.manager == nil {
		data, ok = s.memory[mapName]
		if !ok {
			return nil, false, nil
		}
	} else {
		if !s.manager.ObjectPropExists(saveGameObject, mapName) {
			return nil, false, nil
		}
		data, err = s.manager.LoadObjectProp(saveGameObject, mapName)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load save game: %w", err)
		}
	}

	sg = &SaveGame{}
	if err := yaml.Unmarshal(data, sg); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal save game: %w", err)
	}
	return sg, true, nil
}
