package entity

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"chosenoffset.com/pixelrealm/internal/core/geom"
)

// MonsterState is the AI mode
type MonsterState int

const (
	StateWandering MonsterState = iota
	StatePursuing
	StateDead
)

// RangedAttack describes a monster's projectile attack. Burst > 1 fires a
// fan of projectiles spread evenly across Spread radians.
type RangedAttack struct {
	Damage   int
	Speed    float64
	Lifetime float64
	Size     float64
	Burst    int
	Spread   float64
	Color    color.RGBA
}

// MonsterKind defines a monster type
type MonsterKind struct {
	ID     string
	Name   string
	Sprite string

	Health      int
	Damage      int // Contact damage
	Speed       float64
	Size        float64
	AggroRange  float64 // Starts pursuing inside this radius
	LeashRange  float64 // Gives up outside this radius
	AttackRange float64 // Ranged attack reach
	Cooldown    float64 // Seconds between ranged attacks

	Ranged *RangedAttack

	Experience int
	Score      int
}

var monsterKinds = map[string]MonsterKind{
	"slime": {
		ID: "slime", Name: "Slime", Sprite: "slime",
		Health: 20, Damage: 6, Speed: 55, Size: 22,
		AggroRange: 200, LeashRange: 320,
		Experience: 5, Score: 10,
	},
	"wolf": {
		ID: "wolf", Name: "Wolf", Sprite: "wolf",
		Health: 28, Damage: 9, Speed: 120, Size: 24,
		AggroRange: 260, LeashRange: 420,
		Experience: 9, Score: 15,
	},
	"scorpion": {
		ID: "scorpion", Name: "Scorpion", Sprite: "scorpion",
		Health: 34, Damage: 11, Speed: 80, Size: 24,
		AggroRange: 220, LeashRange: 360,
		Experience: 11, Score: 18,
	},
	"yeti": {
		ID: "yeti", Name: "Yeti", Sprite: "yeti",
		Health: 60, Damage: 15, Speed: 70, Size: 32,
		AggroRange: 240, LeashRange: 380,
		Experience: 18, Score: 25,
	},
	"wisp": {
		ID: "wisp", Name: "Ice Wisp", Sprite: "wisp",
		Health: 18, Damage: 4, Speed: 90, Size: 20,
		AggroRange: 300, LeashRange: 460, AttackRange: 260, Cooldown: 1.8,
		Ranged: &RangedAttack{
			Damage: 7, Speed: 240, Lifetime: 1.4, Size: 10, Burst: 1,
			Color: color.RGBA{150, 220, 255, 255},
		},
		Experience: 12, Score: 20,
	},
	"bog_lurker": {
		ID: "bog_lurker", Name: "Bog Lurker", Sprite: "bog_lurker",
		Health: 48, Damage: 13, Speed: 60, Size: 28,
		AggroRange: 180, LeashRange: 300,
		Experience: 14, Score: 22,
	},
	"fire_imp": {
		ID: "fire_imp", Name: "Fire Imp", Sprite: "fire_imp",
		Health: 30, Damage: 8, Speed: 110, Size: 20,
		AggroRange: 300, LeashRange: 460, AttackRange: 240, Cooldown: 1.4,
		Ranged: &RangedAttack{
			Damage: 10, Speed: 280, Lifetime: 1.2, Size: 12, Burst: 1,
			Color: color.RGBA{255, 140, 0, 255},
		},
		Experience: 16, Score: 25,
	},
	"golem": {
		ID: "golem", Name: "Volcanic Golem", Sprite: "golem",
		Health: 120, Damage: 20, Speed: 40, Size: 40,
		AggroRange: 280, LeashRange: 420, AttackRange: 300, Cooldown: 3.0,
		Ranged: &RangedAttack{
			Damage: 12, Speed: 220, Lifetime: 1.6, Size: 14,
			Burst: 5, Spread: math.Pi / 2,
			Color: color.RGBA{255, 80, 20, 255},
		},
		Experience: 40, Score: 60,
	},
}

// LookupMonster returns the kind registered under id
func LookupMonster(id string) (MonsterKind, error) {
	k, ok := monsterKinds[id]
	if !ok {
		return MonsterKind{}, fmt.Errorf("unknown monster kind %q", id)
	}
	return k, nil
}

// Monster is a live hostile entity
type Monster struct {
	ID     int
	Kind   MonsterKind
	Pos    geom.Vec3
	Health int
	State  MonsterState

	attackCooldown float64
	wanderDir      geom.Vec3
	wanderTimer    float64
}

// NewMonster spawns a monster of kind at pos. Attack cooldown starts half
// charged so a fresh spawn does not fire on its first frame.
func NewMonster(id int, kind MonsterKind, pos geom.Vec3) *Monster {
	return &Monster{
		ID:             id,
		Kind:           kind,
		Pos:            pos,
		Health:         kind.Health,
		State:          StateWandering,
		attackCooldown: kind.Cooldown / 2,
	}
}

// Alive reports whether the monster still has health.
func (m *Monster) Alive() bool {
	return m.State != StateDead
}

// Size returns the collision diameter.
func (m *Monster) Size() float64 {
	return m.Kind.Size
}

// TakeDamage applies damage and reports whether this hit killed the
// monster. A dead monster ignores further hits, so the kill is reported
// exactly once.
func (m *Monster) TakeDamage(amount int) bool {
	if !m.Alive() || amount <= 0 {
		return false
	}
	m.Health -= amount
	if m.Health <= 0 {
		m.Health = 0
		m.State = StateDead
		return true
	}
	// Being hit always draws attention
	m.State = StatePursuing
	return false
}

// Update runs one AI step toward target and returns any projectiles fired
// this frame. A burst attack returns all of its projectiles.
func (m *Monster) Update(dt float64, target geom.Vec3, area Blocker, rng *rand.Rand) []*Projectile {
	if !m.Alive() {
		return nil
	}
	m.attackCooldown = max(m.attackCooldown-dt, 0)

	distSq := geom.DistanceSquared(m.Pos, target)
	switch m.State {
	case StateWandering:
		if distSq < m.Kind.AggroRange*m.Kind.AggroRange {
			m.State = StatePursuing
		}
	case StatePursuing:
		if distSq > m.Kind.LeashRange*m.Kind.LeashRange {
			m.State = StateWandering
			m.wanderTimer = 0
		}
	}

	if m.State == StateWandering {
		m.wander(dt, area, rng)
		return nil
	}

	toTarget := target.Sub(m.Pos)
	dir := toTarget.Normalize()

	// Ranged monsters hold at attack range instead of closing to contact
	closeIn := m.Kind.Ranged == nil || distSq > (m.Kind.AttackRange*0.7)*(m.Kind.AttackRange*0.7)
	if closeIn {
		m.step(dir, m.Kind.Speed*dt, area)
	}

	if m.Kind.Ranged != nil && m.attackCooldown <= 0 && distSq <= m.Kind.AttackRange*m.Kind.AttackRange {
		m.attackCooldown = m.Kind.Cooldown
		return m.fire(dir)
	}
	return nil
}

func (m *Monster) fire(dir geom.Vec3) []*Projectile {
	r := m.Kind.Ranged
	burst := max(r.Burst, 1)
	base := math.Atan2(dir.Y, dir.X)

	out := make([]*Projectile, 0, burst)
	for i := 0; i < burst; i++ {
		angle := base
		if burst > 1 {
			angle = base - r.Spread/2 + r.Spread*float64(i)/float64(burst-1)
		}
		d := geom.FromAngle(angle)
		out = append(out, &Projectile{
			Pos:      m.Pos.Add(d.Scale(m.Kind.Size / 2)),
			Dir:      d,
			Speed:    r.Speed,
			Lifetime: r.Lifetime,
			Damage:   r.Damage,
			Size:     r.Size,
			Owner:    OwnerMonster,
			Color:    r.Color,
		})
	}
	return out
}

func (m *Monster) wander(dt float64, area Blocker, rng *rand.Rand) {
	m.wanderTimer -= dt
	if m.wanderTimer <= 0 {
		m.wanderTimer = 1 + rng.Float64()*2
		if rng.Float64() < 0.3 {
			m.wanderDir = geom.Vec3{}
		} else {
			m.wanderDir = geom.FromAngle(rng.Float64() * 2 * math.Pi)
		}
	}
	if !m.step(m.wanderDir, m.Kind.Speed*0.4*dt, area) {
		m.wanderTimer = 0
	}
}

// step moves along dir by dist, sliding on one axis when blocked.
func (m *Monster) step(dir geom.Vec3, dist float64, area Blocker) bool {
	if dir.IsZero() || dist <= 0 {
		return false
	}
	delta := dir.Scale(dist)
	for _, c := range []geom.Vec3{
		m.Pos.Add(delta),
		m.Pos.Add(geom.V2(delta.X, 0)),
		m.Pos.Add(geom.V2(0, delta.Y)),
	} {
		if c != m.Pos && !area.Blocked(c, m.Kind.Size) {
			m.Pos = c
			return true
		}
	}
	return false
}
