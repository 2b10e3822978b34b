// Package particles keeps short-lived visual particles in a dense slice.
// Expired particles are removed by swapping the last live particle into
// their slot, so removal is O(1) and order is not preserved.
package particles

import (
	"image/color"
	"math"
	"math/rand"

	"chosenoffset.com/pixelrealm/internal/core/geom"
)

// Particle is one flat quad
type Particle struct {
	Pos     geom.Vec3
	Vel     geom.Vec3
	Life    float64 // Seconds remaining
	MaxLife float64
	Size    float64
	Color   color.RGBA
	Gravity float64 // Added to Vel.Y per second
}

// Alpha returns the fade factor in [0, 1]
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return geom.Clamp(p.Life/p.MaxLife, 0, 1)
}

// Pool holds live particles up to a fixed capacity
type Pool struct {
	items    []Particle
	capacity int
	rng      *rand.Rand
}

// NewPool creates a pool. Spawns beyond capacity are dropped.
func NewPool(capacity int, rng *rand.Rand) *Pool {
	return &Pool{
		items:    make([]Particle, 0, capacity),
		capacity: capacity,
		rng:      rng,
	}
}

// Len returns the number of live particles
func (p *Pool) Len() int {
	return len(p.items)
}

// Particles exposes live particles for drawing. The slice is only valid
// until the next Update or Spawn.
func (p *Pool) Particles() []Particle {
	return p.items
}

// Spawn adds one particle and reports whether there was room
func (p *Pool) Spawn(pt Particle) bool {
	if len(p.items) >= p.capacity || pt.Life <= 0 {
		return false
	}
	if pt.MaxLife <= 0 {
		pt.MaxLife = pt.Life
	}
	p.items = append(p.items, pt)
	return true
}

// Burst emits n particles radiating from pos at up to speed units per
// second.
func (p *Pool) Burst(pos geom.Vec3, n int, speed float64, life float64, clr color.RGBA) int {
	spawned := 0
	for i := 0; i < n; i++ {
		angle := p.rng.Float64() * 2 * math.Pi
		v := geom.FromAngle(angle).Scale(speed * (0.3 + 0.7*p.rng.Float64()))
		l := life * (0.6 + 0.4*p.rng.Float64())
		if !p.Spawn(Particle{
			Pos:   pos,
			Vel:   v,
			Life:  l,
			Size:  2 + p.rng.Float64()*3,
			Color: clr,
		}) {
			break
		}
		spawned++
	}
	return spawned
}

// Update ages and moves every particle and removes expired ones.
func (p *Pool) Update(dt float64) {
	for i := 0; i < len(p.items); {
		pt := &p.items[i]
		pt.Life -= dt
		if pt.Life <= 0 {
			p.remove(i)
			continue // Re-examine the particle swapped into i
		}
		pt.Vel.Y += pt.Gravity * dt
		pt.Pos = pt.Pos.Add(pt.Vel.Scale(dt))
		i++
	}
}

func (p *Pool) remove(i int) {
	last := len(p.items) - 1
	p.items[i] = p.items[last]
	p.items = p.items[:last]
}

// Clear removes every particle
func (p *Pool) Clear() {
	p.items = p.items[:0]
}
