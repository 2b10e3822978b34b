package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Kind groups items by use
type Kind string

const (
	KindCurrency   Kind = "currency"
	KindResource   Kind = "resource"
	KindConsumable Kind = "consumable"
	KindCharm      Kind = "charm"
)

// Gold is the currency item ID
const Gold = "gold"

// Item describes an item type
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Kind        Kind   `json:"kind"`
	MaxStack    int    `json:"max_stack,omitempty"` // 0 = unlimited
	Value       int    `json:"value,omitempty"`     // Gold value
	Heal        int    `json:"heal,omitempty"`      // Health restored when used
}

// Library holds item definitions shared across inventories
type Library struct {
	Name  string           `json:"name"`
	Items map[string]*Item `json:"items"`
}

// DefaultLibrary returns the shipped item set
func DefaultLibrary() *Library {
	items := []*Item{
		{ID: Gold, Name: "Gold", Kind: KindCurrency},
		{ID: "wood", Name: "Wood", Kind: KindResource, MaxStack: 99, Value: 1},
		{ID: "herb", Name: "Herb", Kind: KindResource, MaxStack: 99, Value: 2},
		{ID: "stone", Name: "Stone", Kind: KindResource, MaxStack: 99, Value: 1},
		{ID: "bone", Name: "Bone", Kind: KindResource, MaxStack: 99, Value: 2},
		{ID: "ice_shard", Name: "Ice Shard", Kind: KindResource, MaxStack: 99, Value: 3},
		{ID: "moss", Name: "Bog Moss", Kind: KindResource, MaxStack: 99, Value: 2},
		{ID: "ember", Name: "Ember Core", Kind: KindResource, MaxStack: 99, Value: 4},
		{ID: "health_potion", Name: "Health Potion", Kind: KindConsumable, MaxStack: 10, Value: 10, Heal: 40,
			Description: "Restores 40 health"},
		{ID: "frost_tonic", Name: "Frost Tonic", Kind: KindConsumable, MaxStack: 10, Value: 12, Heal: 25,
			Description: "A chilling brew"},
		{ID: "bone_charm", Name: "Bone Charm", Kind: KindCharm, MaxStack: 1, Value: 25},
		{ID: "ember_charm", Name: "Ember Charm", Kind: KindCharm, MaxStack: 1, Value: 40},
	}
	lib := &Library{Name: "default", Items: make(map[string]*Item, len(items))}
	for _, it := range items {
		lib.Items[it.ID] = it
	}
	return lib
}

// LoadLibrary loads item definitions from a JSON file and merges them over
// the defaults
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item library: %w", err)
	}

	var loaded Library
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse item library: %w", err)
	}

	lib := DefaultLibrary()
	if loaded.Name != "" {
		lib.Name = loaded.Name
	}
	for id, item := range loaded.Items {
		item.ID = id // Ensure ID is set
		if item.Name == "" {
			item.Name = id
		}
		lib.Items[id] = item
	}
	return lib, nil
}

// Get returns the item definition, or nil if undefined
func (lib *Library) Get(id string) *Item {
	return lib.Items[id]
}

// DisplayName returns the display name, falling back to the ID
func (lib *Library) DisplayName(id string) string {
	if it := lib.Items[id]; it != nil && it.Name != "" {
		return it.Name
	}
	return id
}

// StackLimit returns the max stack for an item (0 = unlimited)
func (lib *Library) StackLimit(id string) int {
	if it := lib.Items[id]; it != nil {
		return it.MaxStack
	}
	return 0
}

// IDs returns every item ID sorted
func (lib *Library) IDs() []string {
	ids := make([]string, 0, len(lib.Items))
	for id := range lib.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
