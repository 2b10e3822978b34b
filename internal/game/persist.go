package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chosenoffset.com/pixelrealm/internal/core/gamestate"
	"chosenoffset.com/pixelrealm/internal/core/geom"
	"chosenoffset.com/pixelrealm/internal/save"
	"chosenoffset.com/pixelrealm/internal/world"
)

// ErrNoStore is returned when saving or loading without a configured store
var ErrNoStore = errors.New("no save store configured")

// Snapshot captures the run for saving
func (g *Game) Snapshot() *save.Snapshot {
	s := &save.Snapshot{
		Version:   save.Version,
		Timestamp: time.Now().UTC(),
		Player: save.PlayerState{
			Level:      g.Progression.Level,
			Experience: g.Progression.Experience,
			Health:     g.Player.Health,
			MaxHealth:  g.Player.MaxHealth,
			Position:   save.Position{X: g.Player.Pos.X, Y: g.Player.Pos.Y},
			Weapon:     g.Player.WeaponIndex,
		},
		CurrentRegion:     string(g.World.Biome.Name),
		Location:          string(g.State.Location),
		Seed:              g.World.Seed,
		TimeOfDay:         g.World.TimeOfDay(),
		DiscoveredRegions: g.Progression.Regions(),
		Inventory:         g.Inventory.Items(),
		Quests:            g.Quests.Export(),
		Score:             g.Score,
	}
	if r := g.Crafter.Current(); r != nil {
		s.Crafting = &save.CraftingState{Recipe: r.ID, Elapsed: g.Crafter.Elapsed()}
	}
	for _, sh := range g.World.Shrines {
		if sh.Used {
			s.UsedShrines = append(s.UsedShrines, shrineKey(sh.ID))
		}
	}
	return s
}

// Restore rebuilds the run from a snapshot. The world is regenerated from
// the saved seed, so obstacles and shrines land where they were.
func (g *Game) Restore(s *save.Snapshot) error {
	w, err := g.generateWorld(world.Biome(s.CurrentRegion), s.Seed)
	if err != nil {
		return fmt.Errorf("failed to restore world: %w", err)
	}

	g.State.Reset()
	if err := g.State.Start(string(w.Biome.Name)); err != nil {
		return fmt.Errorf("failed to restore state: %w", err)
	}
	g.setup(w)
	w.SetTimeOfDay(s.TimeOfDay)

	used := make(map[string]bool, len(s.UsedShrines))
	for _, id := range s.UsedShrines {
		used[id] = true
	}
	for _, sh := range w.Shrines {
		if used[shrineKey(sh.ID)] {
			w.UseShrine(sh)
		}
	}

	g.Progression.Restore(s.Player.Level, s.Player.Experience, s.DiscoveredRegions)
	g.Progression.Discover(string(w.Biome.Name))
	g.Player.MaxHealth = max(s.Player.MaxHealth, 1)
	g.Player.Health = min(max(s.Player.Health, 1), g.Player.MaxHealth)
	g.Player.BaseDamage = g.Config.Player.Damage + g.Progression.BonusDamage()
	g.Player.SelectWeapon(s.Player.Weapon)
	g.Inventory.Restore(s.Inventory)
	if c := s.Crafting; c != nil {
		if err := g.Crafter.Resume(c.Recipe, c.Elapsed); err != nil {
			g.Log.Warn().Err(err).Msg("Dropped saved crafting job")
		}
	}
	if skipped := g.Quests.Import(s.Quests); len(skipped) > 0 {
		g.Log.Warn().Strs("quests", skipped).Msg("Skipped unknown quests in save")
	}
	g.Score = s.Score

	if gamestate.Location(s.Location) == gamestate.Castle {
		if err := g.State.EnterCastle(); err != nil {
			return fmt.Errorf("failed to restore location: %w", err)
		}
	}
	area := g.Area()
	pos := area.Clamp(geom.V2(s.Player.Position.X, s.Player.Position.Y), g.Player.Size)
	if area.Blocked(pos, g.Player.Size) {
		pos = area.Spawn
	}
	g.Player.Pos = pos
	g.teleportCooldown = g.Config.Combat.TeleportCooldown
	g.refreshMinimap()
	return nil
}

// SaveGame writes the current run to the configured slot
func (g *Game) SaveGame(ctx context.Context) error {
	if g.Store == nil {
		return ErrNoStore
	}
	if !g.State.Started {
		return fmt.Errorf("cannot save: %w", gamestate.ErrNotStarted)
	}
	if g.State.GameOver {
		return fmt.Errorf("cannot save: %w", gamestate.ErrGameOver)
	}
	err := save.SaveSnapshot(ctx, g.Store, g.Slot, g.Snapshot())
	g.Telemetry.Saved(ctx, err == nil)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	g.Log.Info().Str("slot", g.Slot).Msg("Game saved")
	return nil
}

// LoadGame replaces the current run with the configured slot
func (g *Game) LoadGame(ctx context.Context) error {
	if g.Store == nil {
		return ErrNoStore
	}
	s, err := save.LoadSnapshot(ctx, g.Store, g.Slot)
	if err != nil {
		return fmt.Errorf("failed to load game: %w", err)
	}
	if err := g.Restore(s); err != nil {
		return err
	}
	g.Log.Info().Str("slot", g.Slot).Str("version", s.Version).Msg("Game loaded")
	return nil
}
