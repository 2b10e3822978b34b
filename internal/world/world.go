// Package world holds the static layout of a run: the overworld and castle
// areas with their obstacles and named points, the biome, shrines, and the
// ambient day clock.
package world

import (
	"math"

	"chosenoffset.com/pixelrealm/internal/core/gamestate"
	"chosenoffset.com/pixelrealm/internal/core/geom"
)

// Obstacle is a static solid body
type Obstacle struct {
	Pos  geom.Vec3 `json:"pos"`
	Size float64   `json:"size"`
	Kind string    `json:"kind"` // Sprite name
}

// Decoration is a non-solid ground detail
type Decoration struct {
	Pos   geom.Vec3
	Size  float64
	Color int // Index into the biome decoration palette
}

// Area is one playable space. Bounds are the square [0, Size] on both axes.
type Area struct {
	Location    gamestate.Location
	Size        float64
	Obstacles   []Obstacle
	Decorations []Decoration

	Spawn geom.Vec3 // Where the player appears on entry
	Door  geom.Vec3 // Overworld: castle door. Castle: exit.
}

// InBounds reports whether a body of the given size at pos lies fully inside
// the area.
func (a *Area) InBounds(pos geom.Vec3, size float64) bool {
	r := size / 2
	return pos.X-r >= 0 && pos.Y-r >= 0 && pos.X+r <= a.Size && pos.Y+r <= a.Size
}

// Blocked reports whether a body at pos would leave the bounds or touch an
// obstacle.
func (a *Area) Blocked(pos geom.Vec3, size float64) bool {
	if !a.InBounds(pos, size) {
		return true
	}
	return a.Collides(pos, size)
}

// Collides reports whether a body at pos touches any obstacle.
func (a *Area) Collides(pos geom.Vec3, size float64) bool {
	for i := range a.Obstacles {
		o := &a.Obstacles[i]
		if geom.Overlaps(pos, size, o.Pos, o.Size) {
			return true
		}
	}
	return false
}

// Clamp moves pos inside the bounds for a body of the given size.
func (a *Area) Clamp(pos geom.Vec3, size float64) geom.Vec3 {
	r := size / 2
	pos.X = geom.Clamp(pos.X, r, a.Size-r)
	pos.Y = geom.Clamp(pos.Y, r, a.Size-r)
	return pos
}

// Center returns the middle of the area.
func (a *Area) Center() geom.Vec3 {
	return geom.V2(a.Size/2, a.Size/2)
}

// BuffKind is the effect a shrine grants
type BuffKind string

// Shrine buffs
const (
	BuffSpeed  BuffKind = "speed"
	BuffDamage BuffKind = "damage"
	BuffRegen  BuffKind = "regeneration"
)

// BuffKinds lists every shrine effect
var BuffKinds = []BuffKind{BuffSpeed, BuffDamage, BuffRegen}

// Shrine is a one-time-use buff source in the overworld
type Shrine struct {
	ID       int
	Pos      geom.Vec3
	Size     float64
	Buff     BuffKind
	Duration float64 // Seconds the buff lasts
	Used     bool

	pulse float64
}

// Glow returns the shrine's pulse brightness in [0, 1]; zero once used.
func (s *Shrine) Glow() float64 {
	if s.Used {
		return 0
	}
	return 0.5 + 0.5*math.Sin(s.pulse)
}

// World is the generated layout of one run
type World struct {
	Seed      int64
	Biome     BiomeInfo
	Overworld *Area
	Castle    *Area
	Shrines   []*Shrine
	NPCSpawns []geom.Vec3 // Castle positions for NPCs

	// Castle footprint in the overworld
	CastlePos  geom.Vec3
	CastleSize float64

	noise     *Noise
	dayLength float64
	clock     float64
}

// Area returns the area for a location. Unknown locations map to the
// overworld.
func (w *World) Area(loc gamestate.Location) *Area {
	if loc == gamestate.Castle {
		return w.Castle
	}
	return w.Overworld
}

// Update advances ambient state: the day clock and shrine pulses.
func (w *World) Update(dt float64) {
	w.clock += dt
	if w.dayLength > 0 && w.clock >= w.dayLength {
		w.clock = math.Mod(w.clock, w.dayLength)
	}
	for _, s := range w.Shrines {
		if !s.Used {
			s.pulse += dt * 3
		}
	}
}

// TimeOfDay returns the fraction of the day elapsed, in [0, 1).
func (w *World) TimeOfDay() float64 {
	if w.dayLength <= 0 {
		return 0.25
	}
	return w.clock / w.dayLength
}

// SetTimeOfDay sets the clock to a fraction of the day.
func (w *World) SetTimeOfDay(f float64) {
	f -= math.Floor(f)
	w.clock = f * w.dayLength
}

// Daylight returns ambient brightness in [0.35, 1]. Noon is brightest.
func (w *World) Daylight() float64 {
	// 0.25 is noon, 0.75 midnight
	s := math.Sin(w.TimeOfDay() * 2 * math.Pi)
	return 0.675 + 0.325*s
}

// GroundShade returns a [0, 1] terrain variation for the tile at (tx, ty),
// used to vary ground colour.
func (w *World) GroundShade(tx, ty int) float64 {
	if w.noise == nil {
		return 0.5
	}
	return w.noise.Fractal(float64(tx)/6, float64(ty)/6, 3)
}

// ShrineNear returns the closest unused shrine within reach of pos, or nil.
func (w *World) ShrineNear(pos geom.Vec3, reach float64) *Shrine {
	var best *Shrine
	bestD := math.Inf(1)
	for _, s := range w.Shrines {
		if s.Used {
			continue
		}
		r := reach + s.Size/2
		d := geom.DistanceSquared(pos, s.Pos)
		if d < r*r && d < bestD {
			best, bestD = s, d
		}
	}
	return best
}

// UseShrine marks the shrine spent. It returns false if it was already used.
func (w *World) UseShrine(s *Shrine) bool {
	if s == nil || s.Used {
		return false
	}
	s.Used = true
	return true
}
