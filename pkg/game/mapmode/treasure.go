package mapmode

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"darkvale/pkg/engine/input"
	"darkvale/pkg/engine/logging"
	"darkvale/pkg/game/global"
	"darkvale/pkg/game/indicator"
)

// TreasureSupervisor opens treasures and hands their items to the inventory.
// While a treasure is shown the map is in StateTreasure.
type TreasureSupervisor struct {
	states     *StateStack
	indicators *indicator.Supervisor
	taken      mapset.Set[int]
	current    *TreasureObject
	inventory  []*global.Item
}

// NewTreasureSupervisor creates a supervisor showing found items through the indicator supervisor
func NewTreasureSupervisor(states *StateStack, indicators *indicator.Supervisor) *TreasureSupervisor {
	return &TreasureSupervisor{
		states:     states,
		indicators: indicators,
		taken:      mapset.New[int](),
	}
}

// IsTaken returns true once a treasure was opened
func (ts *TreasureSupervisor) IsTaken(id int) bool {
	return ts.taken.Has(id)
}

// TakenIDs returns the ids of the opened treasures in increasing order
func (ts *TreasureSupervisor) TakenIDs() []int {
	ids := make([]int, 0, ts.taken.Size())
	ts.taken.Each(func(id int) {
		ids = append(ids, id)
	})
	sort.Ints(ids)
	return ids
}

// MarkTaken flags a treasure as opened without showing it (restored save data)
func (ts *TreasureSupervisor) MarkTaken(id int) {
	ts.taken.Put(id)
}

// Open shows the content of a treasure. (screenX, screenY) is where item indicators appear.
func (ts *TreasureSupervisor) Open(t *TreasureObject, screenX, screenY float64) bool {
	if t == nil {
		logging.Debugf("MapMode", "Couldn't open a nil treasure.")
		return false
	}
	if ts.IsTaken(t.ID) {
		logging.Debugf("MapMode", "treasure %d was already taken", t.ID)
		return false
	}
	if ts.current != nil {
		logging.Debugf("MapMode", "treasure %d requested while %d is shown", t.ID, ts.current.ID)
		return false
	}

	ts.taken.Put(t.ID)
	ts.current = t
	for _, item := range t.Items {
		ts.AddToInventory(item)
		if ts.indicators != nil {
			ts.indicators.AddItemIndicator(screenX, screenY, item)
		}
	}
	ts.states.Push(StateTreasure)
	return true
}

// AddToInventory merges a copy of the item into the inventory
func (ts *TreasureSupervisor) AddToInventory(item *global.Item) {
	if item == nil {
		return
	}
	for _, owned := range ts.inventory {
		if owned.ID == item.ID {
			owned.Count += item.Count
			return
		}
	}
	copied := *item
	ts.inventory = append(ts.inventory, &copied)
}

// Current returns the treasure being shown, or nil
func (ts *TreasureSupervisor) Current() *TreasureObject {
	return ts.current
}

// Inventory returns the items found so far
func (ts *TreasureSupervisor) Inventory() []*global.Item {
	return ts.inventory
}

// Update closes the treasure window on confirm or cancel
func (ts *TreasureSupervisor) Update(in *input.State) {
	if ts.current == nil || in == nil {
		return
	}
	if in.Pressed(input.ActionConfirm) || in.Pressed(input.ActionCancel) {
		ts.Close()
	}
}

// Close hides the treasure window and leaves StateTreasure
func (ts *TreasureSupervisor) Close() {
	if ts.current == nil {
		return
	}
	ts.current = nil
	ts.states.Pop()
}
