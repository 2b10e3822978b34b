// Package save persists game snapshots and player preferences. Both are
// plain JSON blobs written under a key, so any Store can hold them.
package save

import (
	"encoding/json"
	"fmt"
	"time"

	"chosenoffset.com/pixelrealm/internal/inventory"
	"chosenoffset.com/pixelrealm/internal/quest"
)

// Version is written into every snapshot. Older versions are loaded as-is.
const Version = "1.0"

// Keys used for the two blobs
const (
	PreferencesKey = "preferences"
	DefaultSlot    = "slot1"
)

// Position is a ground-plane location
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlayerState is the saved part of the player
type PlayerState struct {
	Level      int      `json:"level"`
	Experience int      `json:"experience"`
	Health     int      `json:"health"`
	MaxHealth  int      `json:"max_health"`
	Position   Position `json:"position"`
	Weapon     int      `json:"weapon"`
}

// Snapshot is one saved game
type Snapshot struct {
	Version           string           `json:"version"`
	Timestamp         time.Time        `json:"timestamp"`
	Player            PlayerState      `json:"player"`
	CurrentRegion     string           `json:"current_region"`
	Location          string           `json:"location"`
	Seed              int64            `json:"seed"`
	TimeOfDay         float64          `json:"time_of_day"`
	DiscoveredRegions []string         `json:"discovered_regions"`
	Inventory         []inventory.Slot `json:"inventory"`
	Quests            quest.State      `json:"quests"`
	UsedShrines       []string         `json:"used_shrines"`
	Score             int              `json:"score"`
	Crafting          *CraftingState   `json:"crafting,omitempty"`
}

// CraftingState is a recipe that was underway when the game was saved. Its
// ingredients are already out of the inventory.
type CraftingState struct {
	Recipe  string  `json:"recipe"`
	Elapsed float64 `json:"elapsed"`
}

// Preferences are the audio settings kept apart from game saves
type Preferences struct {
	MasterVolume float64 `json:"master_volume"`
	MusicVolume  float64 `json:"music_volume"`
	SfxVolume    float64 `json:"sfx_volume"`
	Muted        bool    `json:"muted"`
}

// DefaultPreferences returns the settings used before anything is saved
func DefaultPreferences() Preferences {
	return Preferences{
		MasterVolume: 0.8,
		MusicVolume:  0.6,
		SfxVolume:    0.8,
	}
}

// defaultSnapshot holds the values for fields missing from a saved blob
func defaultSnapshot() Snapshot {
	return Snapshot{
		Version:  Version,
		Location: "overworld",
		Player: PlayerState{
			Level:     1,
			Health:    100,
			MaxHealth: 100,
		},
		Quests: quest.State{Active: []quest.ActiveState{}, Completed: []string{}},
	}
}

// Encode serializes a snapshot
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot. Fields absent from data keep their defaults.
func Decode(data []byte) (*Snapshot, error) {
	s := defaultSnapshot()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if s.Player.MaxHealth <= 0 {
		s.Player.MaxHealth = 100
	}
	if s.Player.Health > s.Player.MaxHealth {
		s.Player.Health = s.Player.MaxHealth
	}
	if s.Quests.Active == nil {
		s.Quests.Active = []quest.ActiveState{}
	}
	if s.Quests.Completed == nil {
		s.Quests.Completed = []string{}
	}
	return &s, nil
}

// EncodePreferences serializes preferences
func EncodePreferences(p Preferences) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferences: %w", err)
	}
	return data, nil
}

// DecodePreferences parses preferences over the defaults. Volumes are
// clamped to [0, 1].
func DecodePreferences(data []byte) (Preferences, error) {
	p := DefaultPreferences()
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPreferences(), fmt.Errorf("failed to decode preferences: %w", err)
	}
	p.MasterVolume = clampVolume(p.MasterVolume)
	p.MusicVolume = clampVolume(p.MusicVolume)
	p.SfxVolume = clampVolume(p.SfxVolume)
	return p, nil
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
