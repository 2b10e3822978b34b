package entity

import (
	"image/color"

	"chosenoffset.com/pixelrealm/internal/core/geom"
)

// Owner identifies which side fired a projectile
type Owner string

const (
	OwnerPlayer  Owner = "player"
	OwnerMonster Owner = "monster"
)

// Projectile is a single-use attack body moving in a straight line
type Projectile struct {
	Pos       geom.Vec3
	Dir       geom.Vec3 // Unit direction
	Speed     float64
	Lifetime  float64 // Seconds before expiry
	AliveTime float64 // Seconds since spawn
	Damage    int
	Size      float64
	Owner     Owner
	Color     color.RGBA
}

// Alive reports whether the projectile has not yet expired. Once false it
// stays false, since AliveTime only grows.
func (p *Projectile) Alive() bool {
	return p.AliveTime < p.Lifetime
}

// Advance integrates position and age by dt seconds.
func (p *Projectile) Advance(dt float64) {
	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
	p.AliveTime += dt
}
