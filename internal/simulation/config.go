// Package simulation provides the tuning values for the real-time simulation.
// Defaults live here; a config file can override any of them under the
// "simulation" key.
package simulation

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all simulation rules for a run
type Config struct {
	Player     PlayerConfig    `mapstructure:"player"`
	Combat     CombatConfig    `mapstructure:"combat"`
	Encounters EncounterConfig `mapstructure:"encounters"`
	World      WorldConfig     `mapstructure:"world"`
	Crafting   CraftingConfig  `mapstructure:"crafting"`
	Scoring    ScoringConfig   `mapstructure:"scoring"`
}

// PlayerConfig defines the player's base body and stats
type PlayerConfig struct {
	Speed     float64 `mapstructure:"speed"`      // World units per second
	Size      float64 `mapstructure:"size"`       // Collision diameter
	MaxHealth int     `mapstructure:"max_health"` // Starting max health
	Damage    int     `mapstructure:"damage"`     // Base damage added to weapon damage
}

// CombatConfig defines damage windows and timers
type CombatConfig struct {
	// Seconds after a hit during which the player takes no damage
	InvulnerabilityDuration float64 `mapstructure:"invulnerability_duration"`
	// Seconds between castle door/exit transitions
	TeleportCooldown float64 `mapstructure:"teleport_cooldown"`
	// Damage a monster deals by touching the player
	MeleeDamageScale float64 `mapstructure:"melee_damage_scale"`
}

// EncounterConfig defines random encounter rolls
type EncounterConfig struct {
	Chance      float64 `mapstructure:"chance"`       // Per-frame probability when no monsters are active
	BaseCount   int     `mapstructure:"base_count"`   // Monsters per encounter before biome difficulty
	MinDistance float64 `mapstructure:"min_distance"` // Spawn ring inner radius around the player
	MaxDistance float64 `mapstructure:"max_distance"` // Spawn ring outer radius
}

// WorldConfig defines world generation parameters
type WorldConfig struct {
	Size         float64 `mapstructure:"size"`          // Overworld bounds (square side)
	CastleSize   float64 `mapstructure:"castle_size"`   // Castle interior bounds
	Obstacles    int     `mapstructure:"obstacles"`     // Obstacles per overworld
	Decorations  int     `mapstructure:"decorations"`   // Non-solid decorations per overworld
	Shrines      int     `mapstructure:"shrines"`       // Shrines per overworld
	DoorRadius   float64 `mapstructure:"door_radius"`   // Proximity to trigger door transitions
	DayLength    float64 `mapstructure:"day_length"`    // Seconds per full day/night cycle
	InteractDist float64 `mapstructure:"interact_dist"` // Reach for NPCs and shrines
}

// CraftingConfig defines crafting pacing
type CraftingConfig struct {
	SpeedMultiplier float64 `mapstructure:"speed_multiplier"` // Scales every recipe duration
}

// ScoringConfig defines score awards
type ScoringConfig struct {
	PerMonster int `mapstructure:"per_monster"`
	PerLevel   int `mapstructure:"per_level"`
	PerShrine  int `mapstructure:"per_shrine"`
	PerQuest   int `mapstructure:"per_quest"`
}

// DefaultConfig returns the shipped tuning
func DefaultConfig() *Config {
	return &Config{
		Player: PlayerConfig{
			Speed:     140,
			Size:      20,
			MaxHealth: 100,
			Damage:    0,
		},
		Combat: CombatConfig{
			InvulnerabilityDuration: 1.0,
			TeleportCooldown:        1.5,
			MeleeDamageScale:        1.0,
		},
		Encounters: EncounterConfig{
			Chance:      0.01,
			BaseCount:   2,
			MinDistance: 220,
			MaxDistance: 360,
		},
		World: WorldConfig{
			Size:         2400,
			CastleSize:   640,
			Obstacles:    120,
			Decorations:  200,
			Shrines:      4,
			DoorRadius:   40,
			DayLength:    240,
			InteractDist: 48,
		},
		Crafting: CraftingConfig{
			SpeedMultiplier: 1.0,
		},
		Scoring: ScoringConfig{
			PerMonster: 10,
			PerLevel:   100,
			PerShrine:  25,
			PerQuest:   50,
		},
	}
}

// FromViper overlays the "simulation" sub-tree of v onto the defaults.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if v == nil {
		return cfg, nil
	}
	sub := v.Sub("simulation")
	if sub == nil {
		return cfg, nil
	}
	if err := sub.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects tuning that would break the simulation.
func (c *Config) Validate() error {
	if c.Player.Speed <= 0 || c.Player.Size <= 0 || c.Player.MaxHealth <= 0 {
		return fmt.Errorf("invalid player tuning: speed=%v size=%v max_health=%d",
			c.Player.Speed, c.Player.Size, c.Player.MaxHealth)
	}
	if c.Combat.InvulnerabilityDuration < 0 || c.Combat.TeleportCooldown < 0 {
		return fmt.Errorf("combat timers must not be negative")
	}
	if c.Encounters.Chance < 0 || c.Encounters.Chance > 1 {
		return fmt.Errorf("encounter chance %v outside [0,1]", c.Encounters.Chance)
	}
	if c.Encounters.MaxDistance < c.Encounters.MinDistance {
		return fmt.Errorf("encounter max_distance below min_distance")
	}
	if c.World.Size <= 0 || c.World.CastleSize <= 0 {
		return fmt.Errorf("world sizes must be positive")
	}
	if c.Crafting.SpeedMultiplier <= 0 {
		return fmt.Errorf("crafting speed_multiplier must be positive")
	}
	return nil
}
