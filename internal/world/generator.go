package world

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"chosenoffset.com/pixelrealm/internal/core/gamestate"
	"chosenoffset.com/pixelrealm/internal/core/geom"
)

// GeneratorConfig holds configuration for world generation
type GeneratorConfig struct {
	Biome       Biome
	Seed        int64   // Random seed (0 = use current time)
	Size        float64 // Overworld side length
	CastleSize  float64 // Castle interior side length
	Obstacles   int     // Target overworld obstacle count
	Decorations int     // Decoration count
	Shrines     int     // Shrine count
	DayLength   float64 // Seconds per day/night cycle
}

const (
	castleFootprint = 160.0 // Castle building diameter in the overworld
	clearingRadius  = 320.0 // No obstacles this close to the castle
	obstacleDensity = 0.42  // Noise threshold for obstacle clusters
	noiseScale      = 280.0
	edgeMargin      = 40.0
	wallBlock       = 40.0
)

// Generator handles procedural world generation
type Generator struct {
	config GeneratorConfig
	info   BiomeInfo
	seed   int64
	rng    *rand.Rand
}

// NewGenerator creates a new world generator
func NewGenerator(config GeneratorConfig) (*Generator, error) {
	info, err := LookupBiome(string(config.Biome))
	if err != nil {
		return nil, err
	}
	if config.Size < 2*clearingRadius {
		return nil, fmt.Errorf("world size %.0f too small, need at least %.0f", config.Size, 2*clearingRadius)
	}
	if config.CastleSize < 4*wallBlock {
		return nil, fmt.Errorf("castle size %.0f too small", config.CastleSize)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		config: config,
		info:   info,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Seed returns the seed actually used.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate builds the world
func (g *Generator) Generate() (*World, error) {
	noise := NewNoise(g.rng)

	w := &World{
		Seed:       g.seed,
		Biome:      g.info,
		noise:      noise,
		dayLength:  g.config.DayLength,
		CastleSize: castleFootprint,
	}
	// Start at mid-morning
	w.SetTimeOfDay(0.15)

	w.Overworld = g.buildOverworld(noise)
	w.CastlePos = w.Overworld.Center()
	w.Castle, w.NPCSpawns = g.buildCastle()
	w.Shrines = g.placeShrines(w.Overworld)

	return w, nil
}

func (g *Generator) buildOverworld(noise *Noise) *Area {
	size := g.config.Size
	a := &Area{Location: gamestate.Overworld, Size: size}
	center := a.Center()

	// The castle itself is one large obstacle
	a.Obstacles = append(a.Obstacles, Obstacle{Pos: center, Size: castleFootprint, Kind: "castle"})
	a.Door = center.Add(geom.V2(0, castleFootprint/2+30))
	a.Spawn = center.Add(geom.V2(0, castleFootprint/2+120))

	attempts := g.config.Obstacles * 30
	for i := 0; i < attempts && len(a.Obstacles) < g.config.Obstacles+1; i++ {
		pos := geom.V2(
			edgeMargin+g.rng.Float64()*(size-2*edgeMargin),
			edgeMargin+g.rng.Float64()*(size-2*edgeMargin),
		)
		kind := g.info.Obstacles[g.rng.Intn(len(g.info.Obstacles))]
		osize := 32 + g.rng.Float64()*24

		if noise.Fractal(pos.X/noiseScale, pos.Y/noiseScale, 3) < obstacleDensity {
			continue
		}
		if geom.Within(pos, center, clearingRadius) {
			continue
		}
		// Keep a gap so the player can pass between obstacles
		if a.Collides(pos, osize+24) {
			continue
		}
		a.Obstacles = append(a.Obstacles, Obstacle{Pos: pos, Size: osize, Kind: kind})
	}

	for i := 0; i < g.config.Decorations; i++ {
		pos := geom.V2(g.rng.Float64()*size, g.rng.Float64()*size)
		a.Decorations = append(a.Decorations, Decoration{
			Pos:   pos,
			Size:  3 + g.rng.Float64()*4,
			Color: g.rng.Intn(max(len(g.info.Decorations), 1)),
		})
	}
	return a
}

// buildCastle lays a walled hall with pillars. The exit sits at the bottom
// wall, the spawn just inside it.
func (g *Generator) buildCastle() (*Area, []geom.Vec3) {
	size := g.config.CastleSize
	a := &Area{Location: gamestate.Castle, Size: size}
	center := a.Center()

	a.Door = geom.V2(size/2, size-wallBlock)
	a.Spawn = geom.V2(size/2, size-wallBlock-90)

	// Perimeter walls, leaving the exit gap clear
	for x := wallBlock / 2; x < size; x += wallBlock {
		a.Obstacles = append(a.Obstacles, Obstacle{Pos: geom.V2(x, wallBlock/2), Size: wallBlock, Kind: "wall"})
		if math.Abs(x-size/2) > wallBlock {
			a.Obstacles = append(a.Obstacles, Obstacle{Pos: geom.V2(x, size-wallBlock/2), Size: wallBlock, Kind: "wall"})
		}
	}
	for y := wallBlock * 1.5; y < size-wallBlock; y += wallBlock {
		a.Obstacles = append(a.Obstacles,
			Obstacle{Pos: geom.V2(wallBlock/2, y), Size: wallBlock, Kind: "wall"},
			Obstacle{Pos: geom.V2(size-wallBlock/2, y), Size: wallBlock, Kind: "wall"},
		)
	}

	// Four pillars around the hall centre
	off := size / 4
	for _, d := range []geom.Vec3{geom.V2(-off, -off), geom.V2(off, -off), geom.V2(-off, off), geom.V2(off, off)} {
		a.Obstacles = append(a.Obstacles, Obstacle{Pos: center.Add(d), Size: wallBlock, Kind: "wall"})
	}

	npcs := []geom.Vec3{
		center.Add(geom.V2(0, -off)),
		center.Add(geom.V2(-off, 0)),
		center.Add(geom.V2(off, 0)),
	}
	return a, npcs
}

func (g *Generator) placeShrines(a *Area) []*Shrine {
	const shrineSize = 36
	var shrines []*Shrine
	center := a.Center()

	for attempt := 0; attempt < g.config.Shrines*50 && len(shrines) < g.config.Shrines; attempt++ {
		pos := geom.V2(
			2*edgeMargin+g.rng.Float64()*(a.Size-4*edgeMargin),
			2*edgeMargin+g.rng.Float64()*(a.Size-4*edgeMargin),
		)
		if geom.Within(pos, center, clearingRadius) || a.Collides(pos, shrineSize+40) {
			continue
		}
		tooClose := false
		for _, s := range shrines {
			if geom.Within(pos, s.Pos, a.Size/6) {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		shrines = append(shrines, &Shrine{
			ID:       len(shrines),
			Pos:      pos,
			Size:     shrineSize,
			Buff:     BuffKinds[g.rng.Intn(len(BuffKinds))],
			Duration: 20 + float64(g.rng.Intn(3))*10,
			pulse:    g.rng.Float64() * math.Pi * 2,
		})
	}
	return shrines
}
