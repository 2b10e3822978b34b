package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/pixelrealm/internal/core/geom"
	"chosenoffset.com/pixelrealm/internal/simulation"
	"chosenoffset.com/pixelrealm/internal/world"
)

// openField blocks nothing inside a large square
type openField struct{ size float64 }

func (f openField) Blocked(pos geom.Vec3, size float64) bool {
	r := size / 2
	return pos.X-r < 0 || pos.Y-r < 0 || pos.X+r > f.size || pos.Y+r > f.size
}

// wallAt blocks everything with X beyond a line
type wallAt struct{ x float64 }

func (w wallAt) Blocked(pos geom.Vec3, size float64) bool {
	return pos.X+size/2 > w.x
}

func newPlayer() *Player {
	return NewPlayer(simulation.DefaultConfig().Player, geom.V2(100, 100))
}

func TestProjectile_AliveMonotone(t *testing.T) {
	p := &Projectile{Lifetime: 1, Speed: 10, Dir: geom.V2(1, 0)}
	for i := 0; i < 3; i++ {
		assert.True(t, p.Alive())
		p.Advance(0.25)
	}
	assert.True(t, p.Alive(), "0.75 < 1")
	p.Advance(0.25)
	assert.False(t, p.Alive(), "exactly at lifetime is expired")
	for i := 0; i < 5; i++ {
		p.Advance(0.1)
		assert.False(t, p.Alive())
	}
	assert.InDelta(t, 15.0, p.Pos.X, 1e-9)
}

func TestProjectile_BoundaryLifetimes(t *testing.T) {
	tests := []struct {
		lifetime, alive float64
		want            bool
	}{
		{1, 0, true},
		{1, math.Nextafter(1, 0), true},
		{1, 1, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		p := &Projectile{Lifetime: tt.lifetime, AliveTime: tt.alive}
		assert.Equal(t, tt.want, p.Alive(), "lifetime=%v aliveTime=%v", tt.lifetime, tt.alive)
	}
}

func TestPlayer_InvulnerabilityWindow(t *testing.T) {
	p := newPlayer()
	start := p.Health

	assert.True(t, p.TakeDamage(10, 1.0))
	// Multiple contacts in the same tick
	assert.False(t, p.TakeDamage(10, 1.0))
	assert.False(t, p.TakeDamage(50, 1.0))
	assert.Equal(t, start-10, p.Health)

	p.Tick(0.5)
	assert.False(t, p.TakeDamage(10, 1.0))
	p.Tick(0.5)
	assert.True(t, p.TakeDamage(10, 1.0))
	assert.Equal(t, start-20, p.Health)
}

func TestPlayer_HealthFloorAndHeal(t *testing.T) {
	p := newPlayer()
	p.TakeDamage(1000, 0)
	assert.Equal(t, 0, p.Health)
	assert.True(t, p.Dead())
	assert.Equal(t, 30, p.Heal(30))
	assert.Equal(t, p.MaxHealth-30, p.Heal(1000))
	assert.Equal(t, 0, p.Heal(-1))
}

func TestPlayer_MoveSlides(t *testing.T) {
	p := newPlayer()
	p.Pos = geom.V2(100, 100)
	area := wallAt{x: 115}

	// Diagonal into the wall slides along Y
	moved := p.Move(1, 1, 0.1, area)
	require.True(t, moved)
	assert.Equal(t, 100.0, p.Pos.X)
	assert.Greater(t, p.Pos.Y, 100.0)

	// Straight into the wall does not move
	before := p.Pos
	assert.False(t, p.Move(1, 0, 0.1, area))
	assert.Equal(t, before, p.Pos)

	assert.False(t, p.Move(0, 0, 0.1, area))
}

func TestPlayer_MoveNormalizesDiagonal(t *testing.T) {
	p := newPlayer()
	p.Move(1, 1, 1, openField{size: 10000})
	d := geom.Distance(geom.V2(100, 100), p.Pos)
	assert.InDelta(t, p.Speed, d, 1e-9)
}

func TestPlayer_AttackCooldownAndWeapons(t *testing.T) {
	p := newPlayer()
	p.Facing = geom.V2(1, 0)

	proj := p.Attack()
	require.NotNil(t, proj)
	assert.Equal(t, OwnerPlayer, proj.Owner)
	assert.Equal(t, Sword.Damage, proj.Damage)
	assert.Nil(t, p.Attack(), "cooldown")

	p.Tick(Sword.Cooldown)
	assert.NotNil(t, p.Attack())

	assert.True(t, p.SelectWeapon(2))
	assert.False(t, p.SelectWeapon(2))
	assert.False(t, p.SelectWeapon(7))
	assert.Equal(t, FireStaff.ID, p.Weapon().ID)
	p.CycleWeapon()
	assert.Equal(t, Sword.ID, p.Weapon().ID)
}

func TestPlayer_Buffs(t *testing.T) {
	p := newPlayer()
	p.BaseDamage = 4

	p.AddBuff(world.BuffDamage, 5)
	p.AddBuff(world.BuffSpeed, 5)
	assert.Equal(t, int(float64(Sword.Damage+4)*DamageBuffMultiplier), p.AttackDamage())
	assert.Equal(t, p.Speed*SpeedBuffMultiplier, p.CurrentSpeed())

	p.Tick(5)
	assert.False(t, p.HasBuff(world.BuffDamage))
	assert.Equal(t, p.Speed, p.CurrentSpeed())

	p.Health = 50
	p.AddBuff(world.BuffRegen, 10)
	p.Tick(1.5) // 3 health
	assert.Equal(t, 53, p.Health)
}

func TestMonster_DiesExactlyOnce(t *testing.T) {
	kind, err := LookupMonster("slime")
	require.NoError(t, err)
	m := NewMonster(1, kind, geom.V2(0, 0))

	assert.False(t, m.TakeDamage(kind.Health-1))
	assert.True(t, m.Alive())
	assert.Equal(t, StatePursuing, m.State)

	assert.True(t, m.TakeDamage(5))
	assert.False(t, m.Alive())
	assert.False(t, m.TakeDamage(5), "a dead monster is not killed again")
	assert.Equal(t, 0, m.Health)

	rng := rand.New(rand.NewSource(1))
	assert.Nil(t, m.Update(1, geom.V2(1, 1), openField{1000}, rng))
}

func TestMonster_PursuesInsideAggro(t *testing.T) {
	kind, _ := LookupMonster("wolf")
	m := NewMonster(1, kind, geom.V2(500, 500))
	rng := rand.New(rand.NewSource(1))
	target := geom.V2(500+kind.AggroRange-10, 500)

	shots := m.Update(0.1, target, openField{2000}, rng)
	assert.Empty(t, shots, "melee monsters never fire")
	assert.Equal(t, StatePursuing, m.State)
	assert.InDelta(t, 500+kind.Speed*0.1, m.Pos.X, 1e-9)

	// Leaving the leash range drops pursuit
	m.Update(0.1, geom.V2(500+kind.LeashRange+200, 500), openField{4000}, rng)
	assert.Equal(t, StateWandering, m.State)
}

func TestMonster_GolemBurstDeliveredWhole(t *testing.T) {
	kind, err := LookupMonster("golem")
	require.NoError(t, err)
	m := NewMonster(1, kind, geom.V2(500, 500))
	rng := rand.New(rand.NewSource(1))
	target := geom.V2(600, 500)

	var shots []*Projectile
	for i := 0; i < 200 && len(shots) == 0; i++ {
		shots = m.Update(1.0/60, target, openField{2000}, rng)
	}
	require.Len(t, shots, kind.Ranged.Burst)
	for _, s := range shots {
		assert.Equal(t, OwnerMonster, s.Owner)
		assert.InDelta(t, 1.0, s.Dir.Length(), 1e-9)
	}
	// Fan is symmetric about the aim direction
	assert.InDelta(t, 0, shots[2].Dir.Y, 1e-9)
	assert.InDelta(t, -shots[0].Dir.Y, shots[4].Dir.Y, 1e-9)

	assert.Empty(t, m.Update(1.0/60, target, openField{2000}, rng), "cooldown after burst")
}

func TestMonster_RangedHoldsDistance(t *testing.T) {
	kind, _ := LookupMonster("wisp")
	m := NewMonster(1, kind, geom.V2(500, 500))
	rng := rand.New(rand.NewSource(2))
	target := geom.V2(500+kind.AttackRange*0.5, 500)

	m.Update(0.1, target, openField{2000}, rng)
	assert.Equal(t, 500.0, m.Pos.X, "already inside preferred range")
}

func TestLookupMonster_Unknown(t *testing.T) {
	_, err := LookupMonster("dragon")
	assert.Error(t, err)
}

func TestNPC_WandersNearHomeAndStopsForPlayer(t *testing.T) {
	npcs := DefaultNPCs([]geom.Vec3{geom.V2(300, 300), geom.V2(400, 300)})
	require.Len(t, npcs, 2)
	n := npcs[0]
	assert.NotEmpty(t, n.Services)

	rng := rand.New(rand.NewSource(3))
	far := geom.V2(2000, 2000)
	for i := 0; i < 600; i++ {
		n.Update(1.0/60, far, 48, openField{4000}, rng)
	}
	assert.Less(t, geom.Distance(n.Pos, n.Home), n.Roam+n.Speed*4)

	pos := n.Pos
	n.Update(1, n.Pos.Add(geom.V2(10, 0)), 48, openField{4000}, rng)
	assert.Equal(t, pos, n.Pos)
	assert.InDelta(t, 1.0, n.Facing.X, 1e-9)
	assert.True(t, n.InReach(n.Pos.Add(geom.V2(50, 0)), 48))
}
