// Package inventory provides the player's item bag. Items are stored by ID
// with quantities; the library supplies display names, stack limits and
// values.
package inventory

import (
	"fmt"
	"sort"
	"sync"
)

// Slot is an item and its quantity
type Slot struct {
	ItemID string `json:"item_id"`
	Count  int    `json:"count"`
}

// Inventory holds all items for a player
type Inventory struct {
	mu sync.RWMutex

	slots   map[string]int
	library *Library

	// MaxSlots limits distinct item types (0 = unlimited)
	MaxSlots int

	// OnChange is called after every mutation (for UI updates)
	OnChange func()
}

// New creates an empty inventory. A nil library treats every item as an
// unlimited stack.
func New(library *Library, maxSlots int) *Inventory {
	if library == nil {
		library = &Library{Items: map[string]*Item{}}
	}
	return &Inventory{
		slots:    make(map[string]int),
		library:  library,
		MaxSlots: maxSlots,
	}
}

// Library returns the item definitions backing this inventory
func (inv *Inventory) Library() *Library {
	return inv.library
}

// Has checks if the inventory contains at least count of the item
func (inv *Inventory) Has(itemID string, count int) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots[itemID] >= count
}

// Count returns the quantity of an item (0 if not present)
func (inv *Inventory) Count(itemID string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots[itemID]
}

// Add adds items and returns the amount actually added. Adding stops at the
// item's stack limit; a new item type is refused when every slot is taken.
func (inv *Inventory) Add(itemID string, count int) int {
	if count <= 0 {
		return 0
	}

	inv.mu.Lock()
	added := inv.addLocked(itemID, count)
	inv.mu.Unlock()

	if added > 0 {
		inv.notifyChange()
	}
	return added
}

func (inv *Inventory) addLocked(itemID string, count int) int {
	current, exists := inv.slots[itemID]
	if !exists && inv.MaxSlots > 0 && len(inv.slots) >= inv.MaxSlots {
		return 0
	}
	if limit := inv.library.StackLimit(itemID); limit > 0 {
		count = min(count, limit-current)
	}
	if count <= 0 {
		return 0
	}
	inv.slots[itemID] = current + count
	return count
}

// CanAdd reports whether count of the item would fit entirely.
func (inv *Inventory) CanAdd(itemID string, count int) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	current, exists := inv.slots[itemID]
	if !exists && inv.MaxSlots > 0 && len(inv.slots) >= inv.MaxSlots {
		return false
	}
	limit := inv.library.StackLimit(itemID)
	return limit == 0 || current+count <= limit
}

// Remove removes items. It is all-or-nothing: false means nothing changed.
func (inv *Inventory) Remove(itemID string, count int) bool {
	if count <= 0 {
		return true
	}

	inv.mu.Lock()
	current := inv.slots[itemID]
	if current < count {
		inv.mu.Unlock()
		return false
	}
	if current == count {
		delete(inv.slots, itemID)
	} else {
		inv.slots[itemID] = current - count
	}
	inv.mu.Unlock()

	inv.notifyChange()
	return true
}

// RemoveAll removes every listed quantity, or nothing if any is short.
func (inv *Inventory) RemoveAll(items []Slot) bool {
	inv.mu.Lock()
	for _, s := range items {
		if inv.slots[s.ItemID] < s.Count {
			inv.mu.Unlock()
			return false
		}
	}
	for _, s := range items {
		inv.slots[s.ItemID] -= s.Count
		if inv.slots[s.ItemID] <= 0 {
			delete(inv.slots, s.ItemID)
		}
	}
	inv.mu.Unlock()

	inv.notifyChange()
	return true
}

// Clear removes all items
func (inv *Inventory) Clear() {
	inv.mu.Lock()
	inv.slots = make(map[string]int)
	inv.mu.Unlock()
	inv.notifyChange()
}

// Items returns every held item sorted by ID
func (inv *Inventory) Items() []Slot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	result := make([]Slot, 0, len(inv.slots))
	for id, count := range inv.slots {
		result = append(result, Slot{ItemID: id, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ItemID < result[j].ItemID
	})
	return result
}

// Restore replaces the contents with items, as loaded from a save. Limits
// are not enforced so a save always loads back exactly.
func (inv *Inventory) Restore(items []Slot) {
	inv.mu.Lock()
	inv.slots = make(map[string]int, len(items))
	for _, s := range items {
		if s.Count > 0 {
			inv.slots[s.ItemID] += s.Count
		}
	}
	inv.mu.Unlock()
	inv.notifyChange()
}

// Distinct returns the number of item types held
func (inv *Inventory) Distinct() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.slots)
}

// Total returns the total count of all items
func (inv *Inventory) Total() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	total := 0
	for _, count := range inv.slots {
		total += count
	}
	return total
}

// IsFull returns true if the inventory cannot accept new item types
func (inv *Inventory) IsFull() bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.MaxSlots > 0 && len(inv.slots) >= inv.MaxSlots
}

// notifyChange calls the OnChange callback if set. Called without the lock
// held so the callback may read the inventory.
func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}

// String returns a short summary
func (inv *Inventory) String() string {
	return fmt.Sprintf("Inventory{%d items, %d total}", inv.Distinct(), inv.Total())
}
