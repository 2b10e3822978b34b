package entity

import (
	"chosenoffset.com/pixelrealm/internal/core/geom"
	"chosenoffset.com/pixelrealm/internal/simulation"
	"chosenoffset.com/pixelrealm/internal/world"
)

// Buff strengths
const (
	SpeedBuffMultiplier  = 1.5
	DamageBuffMultiplier = 1.5
	RegenPerSecond       = 2.0
)

// Blocker answers whether a body may occupy a position. world.Area
// implements it.
type Blocker interface {
	Blocked(pos geom.Vec3, size float64) bool
}

// Player is the controlled character
type Player struct {
	Pos    geom.Vec3
	Facing geom.Vec3 // Last non-zero move direction
	Size   float64
	Speed  float64

	Health     int
	MaxHealth  int
	BaseDamage int // Added to weapon damage, grows with level

	Weapons     []Weapon
	WeaponIndex int

	// Seconds left in the current invulnerability window
	Invulnerable float64

	// Seconds left on each active shrine buff
	Buffs map[world.BuffKind]float64

	attackCooldown float64
	regenCarry     float64
}

// NewPlayer creates a player at pos from the tuning config
func NewPlayer(cfg simulation.PlayerConfig, pos geom.Vec3) *Player {
	return &Player{
		Pos:        pos,
		Facing:     geom.V2(0, 1),
		Size:       cfg.Size,
		Speed:      cfg.Speed,
		Health:     cfg.MaxHealth,
		MaxHealth:  cfg.MaxHealth,
		BaseDamage: cfg.Damage,
		Weapons:    DefaultWeapons(),
		Buffs:      make(map[world.BuffKind]float64),
	}
}

// Weapon returns the equipped weapon
func (p *Player) Weapon() Weapon {
	return p.Weapons[p.WeaponIndex]
}

// SelectWeapon equips the weapon at index i. It reports whether the
// selection changed.
func (p *Player) SelectWeapon(i int) bool {
	if i < 0 || i >= len(p.Weapons) || i == p.WeaponIndex {
		return false
	}
	p.WeaponIndex = i
	return true
}

// CycleWeapon equips the next weapon, wrapping around.
func (p *Player) CycleWeapon() {
	p.WeaponIndex = (p.WeaponIndex + 1) % len(p.Weapons)
}

// Tick advances the player's timers: attack cooldown, invulnerability,
// buff expiry and regeneration.
func (p *Player) Tick(dt float64) {
	p.attackCooldown = max(p.attackCooldown-dt, 0)
	p.Invulnerable = max(p.Invulnerable-dt, 0)

	if _, ok := p.Buffs[world.BuffRegen]; ok && p.Health < p.MaxHealth {
		p.regenCarry += RegenPerSecond * dt
		if whole := int(p.regenCarry); whole > 0 {
			p.Heal(whole)
			p.regenCarry -= float64(whole)
		}
	}
	for k, left := range p.Buffs {
		left -= dt
		if left <= 0 {
			delete(p.Buffs, k)
			continue
		}
		p.Buffs[k] = left
	}
}

// AddBuff grants a buff for duration seconds. Re-applying refreshes the
// duration.
func (p *Player) AddBuff(kind world.BuffKind, duration float64) {
	p.Buffs[kind] = max(p.Buffs[kind], duration)
}

// HasBuff reports whether a buff is active.
func (p *Player) HasBuff(kind world.BuffKind) bool {
	_, ok := p.Buffs[kind]
	return ok
}

// CurrentSpeed returns movement speed including buffs.
func (p *Player) CurrentSpeed() float64 {
	if p.HasBuff(world.BuffSpeed) {
		return p.Speed * SpeedBuffMultiplier
	}
	return p.Speed
}

// AttackDamage returns the damage of the equipped weapon including level
// bonus and buffs.
func (p *Player) AttackDamage() int {
	dmg := p.Weapon().Damage + p.BaseDamage
	if p.HasBuff(world.BuffDamage) {
		dmg = int(float64(dmg) * DamageBuffMultiplier)
	}
	return dmg
}

// Move tries to move along (dx, dy) for dt seconds. A blocked diagonal
// slides along whichever single axis is free. It reports whether the
// player moved.
func (p *Player) Move(dx, dy, dt float64, area Blocker) bool {
	dir := geom.V2(dx, dy)
	if dir.IsZero() {
		return false
	}
	dir = dir.Normalize()
	p.Facing = dir

	step := dir.Scale(p.CurrentSpeed() * dt)
	candidates := []geom.Vec3{
		p.Pos.Add(step),
		p.Pos.Add(geom.V2(step.X, 0)),
		p.Pos.Add(geom.V2(0, step.Y)),
	}
	for _, c := range candidates {
		if c == p.Pos {
			continue
		}
		if !area.Blocked(c, p.Size) {
			p.Pos = c
			return true
		}
	}
	return false
}

// CanAttack reports whether the weapon cooldown has elapsed.
func (p *Player) CanAttack() bool {
	return p.attackCooldown <= 0
}

// Attack fires the equipped weapon in the facing direction. It returns nil
// while the weapon is cooling down.
func (p *Player) Attack() *Projectile {
	if !p.CanAttack() {
		return nil
	}
	w := p.Weapon()
	p.attackCooldown = w.Cooldown

	dir := p.Facing.Normalize()
	if dir.IsZero() {
		dir = geom.V2(0, 1)
	}
	return &Projectile{
		Pos:      p.Pos.Add(dir.Scale(p.Size / 2)),
		Dir:      dir,
		Speed:    w.Speed,
		Lifetime: w.Lifetime,
		Damage:   p.AttackDamage(),
		Size:     w.Size,
		Owner:    OwnerPlayer,
		Color:    w.Color,
	}
}

// TakeDamage applies damage unless the player is invulnerable, then opens a
// new invulnerability window of the given length. It reports whether damage
// was applied.
func (p *Player) TakeDamage(amount int, window float64) bool {
	if p.Invulnerable > 0 || amount <= 0 {
		return false
	}
	p.Health = max(p.Health-amount, 0)
	p.Invulnerable = window
	return true
}

// Heal restores health up to the maximum and returns the amount restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.Health
	p.Health = min(p.Health+amount, p.MaxHealth)
	return p.Health - before
}

// Dead reports whether health is exhausted.
func (p *Player) Dead() bool {
	return p.Health <= 0
}
