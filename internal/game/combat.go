package game

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"slices"

	"chosenoffset.com/pixelrealm/internal/core/dice"
	"chosenoffset.com/pixelrealm/internal/core/gamestate"
	"chosenoffset.com/pixelrealm/internal/core/geom"
	"chosenoffset.com/pixelrealm/internal/entity"
	"chosenoffset.com/pixelrealm/internal/inventory"
	"chosenoffset.com/pixelrealm/internal/progression"
	"chosenoffset.com/pixelrealm/internal/quest"
	"chosenoffset.com/pixelrealm/internal/world"
)

// Gold dropped by every defeated monster, before the biome difficulty bonus
var goldDrop = dice.MustParse("1d4")

var (
	hitColor    = color.RGBA{255, 240, 200, 255}
	defeatColor = color.RGBA{200, 60, 60, 255}
	hurtColor   = color.RGBA{255, 80, 80, 255}
	shrineColor = color.RGBA{140, 220, 255, 255}
)

// advanceProjectiles moves every projectile and keeps those still alive,
// inside the area and clear of obstacles.
func advanceProjectiles(ps []*entity.Projectile, dt float64, area *world.Area) []*entity.Projectile {
	kept := ps[:0]
	for _, p := range ps {
		p.Advance(dt)
		if !p.Alive() || !area.InBounds(p.Pos, 0) || area.Collides(p.Pos, p.Size) {
			continue
		}
		kept = append(kept, p)
	}
	clear(ps[len(kept):])
	return kept
}

// resolvePlayerHits tests each monster against the player's projectiles.
// The first overlapping projectile hits and is consumed. Monsters killed
// here are removed before anything else can touch them.
func (g *Game) resolvePlayerHits(ctx context.Context) {
	alive := g.Monsters[:0]
	for _, m := range g.Monsters {
		for i, p := range g.PlayerProjectiles {
			if !geom.Overlaps(p.Pos, p.Size, m.Pos, m.Size()) {
				continue
			}
			g.PlayerProjectiles = slices.Delete(g.PlayerProjectiles, i, i+1)
			g.Particles.Burst(m.Pos, 4, 60, 0.25, hitColor)
			if m.TakeDamage(p.Damage) {
				g.onMonsterDefeated(ctx, m)
			}
			break
		}
		if m.Alive() {
			alive = append(alive, m)
		}
	}
	clear(g.Monsters[len(alive):])
	g.Monsters = alive
}

// resolvePlayerDamage applies contact and projectile damage to the player.
// Monster projectiles that touch the player are consumed even while the
// invulnerability window absorbs their damage.
func (g *Game) resolvePlayerDamage(ctx context.Context) {
	window := g.Config.Combat.InvulnerabilityDuration
	p := g.Player

	for _, m := range g.Monsters {
		if !geom.Overlaps(p.Pos, p.Size, m.Pos, m.Size()) {
			continue
		}
		dmg := int(math.Round(float64(m.Kind.Damage) * g.Config.Combat.MeleeDamageScale))
		g.damagePlayer(ctx, dmg, window)
	}

	kept := g.MonsterProjectiles[:0]
	for _, s := range g.MonsterProjectiles {
		if geom.Overlaps(p.Pos, p.Size, s.Pos, s.Size) {
			g.damagePlayer(ctx, s.Damage, window)
			continue
		}
		kept = append(kept, s)
	}
	clear(g.MonsterProjectiles[len(kept):])
	g.MonsterProjectiles = kept
}

func (g *Game) damagePlayer(ctx context.Context, amount int, window float64) {
	if !g.Player.TakeDamage(amount, window) {
		return
	}
	g.Telemetry.Damaged(ctx, amount)
	g.Particles.Burst(g.Player.Pos, 6, 80, 0.3, hurtColor)
}

// onMonsterDefeated awards score, experience and loot, and feeds quests
func (g *Game) onMonsterDefeated(ctx context.Context, m *entity.Monster) {
	g.Telemetry.Defeated(ctx, m.Kind.ID)
	g.Particles.Burst(m.Pos, 16, 120, 0.6, defeatColor)
	g.Score += g.Config.Scoring.PerMonster + m.Kind.Score
	g.gainExperience(m.Kind.Experience)

	gold := g.roller.Roll(goldDrop) + g.World.Biome.Difficulty
	g.Inventory.Add(inventory.Gold, gold)
	for _, r := range g.World.Biome.Resources {
		if !g.roller.Chance(r.Chance) {
			continue
		}
		n := g.roller.Roll(r.Count)
		if added := g.Inventory.Add(r.Item, n); added > 0 {
			g.ShowMessage(fmt.Sprintf("+%d %s", added, g.Library.DisplayName(r.Item)))
		}
	}

	g.completeQuests(g.Quests.OnKill(m.Kind.ID))
	g.Log.Debug().Str("kind", m.Kind.ID).Int("id", m.ID).Int("gold", gold).Msg("Monster defeated")
}

// gainExperience adds XP and applies every resulting level-up
func (g *Game) gainExperience(xp int) {
	for _, up := range g.Progression.AddExperience(xp) {
		g.applyLevelUp(up)
	}
}

func (g *Game) applyLevelUp(up progression.LevelUp) {
	g.Player.MaxHealth += up.HealthBonus
	g.Player.BaseDamage += up.DamageBonus
	g.Player.Health = g.Player.MaxHealth
	g.Score += g.Config.Scoring.PerLevel
	g.ShowMessage(fmt.Sprintf("Level up! You are now level %d", up.Level))
	g.Log.Info().Int("level", up.Level).Msg("Level up")
}

// completeQuests pays out rewards for quests that just finished
func (g *Game) completeQuests(done []*quest.Quest) {
	for _, q := range done {
		g.Score += g.Config.Scoring.PerQuest
		if q.Reward.Gold > 0 {
			g.Inventory.Add(inventory.Gold, q.Reward.Gold)
		}
		for _, it := range q.Reward.Items {
			g.Inventory.Add(it.ItemID, it.Count)
		}
		g.gainExperience(q.Reward.Experience)
		g.ShowMessage("Quest complete: " + q.Title)
		g.Log.Info().Str("quest", q.ID).Msg("Quest complete")
	}
}

// maybeSpawnEncounter rolls for a new group when the overworld is clear
func (g *Game) maybeSpawnEncounter(ctx context.Context) {
	if g.State.Location != gamestate.Overworld || len(g.Monsters) > 0 {
		return
	}
	if !g.roller.Chance(g.Config.Encounters.Chance) {
		return
	}
	n := g.SpawnEncounter()
	g.Telemetry.Spawned(ctx, string(g.World.Biome.Name), n)
}

// SpawnEncounter places base + difficulty monsters from the biome roster on
// a ring around the player and returns how many were placed.
func (g *Game) SpawnEncounter() int {
	roster := g.World.Biome.Roster
	if len(roster) == 0 {
		return 0
	}
	ec := g.Config.Encounters
	area := g.World.Overworld
	count := ec.BaseCount + g.World.Biome.Difficulty

	spawned := 0
	for i := 0; i < count; i++ {
		kind, err := entity.LookupMonster(roster[g.rng.Intn(len(roster))])
		if err != nil {
			g.Log.Warn().Err(err).Msg("Skipping roster entry")
			continue
		}
		pos, ok := g.findSpawnPoint(area, kind.Size, ec.MinDistance, ec.MaxDistance)
		if !ok {
			continue
		}
		g.nextMonsterID++
		g.Monsters = append(g.Monsters, entity.NewMonster(g.nextMonsterID, kind, pos))
		spawned++
	}
	if spawned > 0 {
		g.ShowMessage("Monsters approach!")
		g.Log.Debug().Int("count", spawned).Msg("Encounter spawned")
	}
	return spawned
}

func (g *Game) findSpawnPoint(area *world.Area, size, minDist, maxDist float64) (geom.Vec3, bool) {
	for attempt := 0; attempt < 12; attempt++ {
		angle := g.rng.Float64() * 2 * math.Pi
		dist := minDist + g.rng.Float64()*(maxDist-minDist)
		pos := area.Clamp(g.Player.Pos.Add(geom.FromAngle(angle).Scale(dist)), size)
		if !area.Blocked(pos, size) && !geom.Overlaps(pos, size, g.Player.Pos, g.Player.Size) {
			return pos, true
		}
	}
	return geom.Vec3{}, false
}
