package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/pixelrealm/internal/core/gamestate"
	"chosenoffset.com/pixelrealm/internal/core/geom"
)

func testConfig(b Biome, seed int64) GeneratorConfig {
	return GeneratorConfig{
		Biome:       b,
		Seed:        seed,
		Size:        2400,
		CastleSize:  640,
		Obstacles:   120,
		Decorations: 50,
		Shrines:     4,
		DayLength:   240,
	}
}

func generate(t *testing.T, b Biome, seed int64) *World {
	t.Helper()
	g, err := NewGenerator(testConfig(b, seed))
	require.NoError(t, err)
	w, err := g.Generate()
	require.NoError(t, err)
	return w
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	a := generate(t, Forest, 42)
	b := generate(t, Forest, 42)
	c := generate(t, Forest, 43)

	assert.Equal(t, a.Overworld.Obstacles, b.Overworld.Obstacles)
	assert.Equal(t, a.Overworld.Decorations, b.Overworld.Decorations)
	require.Len(t, b.Shrines, len(a.Shrines))
	for i := range a.Shrines {
		assert.Equal(t, a.Shrines[i].Pos, b.Shrines[i].Pos)
		assert.Equal(t, a.Shrines[i].Buff, b.Shrines[i].Buff)
	}
	assert.NotEqual(t, a.Overworld.Obstacles, c.Overworld.Obstacles)
}

func TestGenerate_AllBiomes(t *testing.T) {
	for _, info := range Biomes() {
		t.Run(string(info.Name), func(t *testing.T) {
			w := generate(t, info.Name, 7)
			assert.Equal(t, info.Name, w.Biome.Name)
			assert.Greater(t, len(w.Overworld.Obstacles), 1)
			assert.NotEmpty(t, info.Roster)
			assert.NotEmpty(t, info.Resources)

			// Spawn points must be free
			assert.False(t, w.Overworld.Blocked(w.Overworld.Spawn, 20))
			assert.False(t, w.Castle.Blocked(w.Castle.Spawn, 20))
			for _, p := range w.NPCSpawns {
				assert.False(t, w.Castle.Blocked(p, 20))
			}
			// The castle door must be reachable from the spawn side
			assert.False(t, w.Overworld.Blocked(w.Overworld.Door.Add(geom.V2(0, 25)), 20))

			for _, o := range w.Overworld.Obstacles[1:] {
				assert.True(t, w.Overworld.InBounds(o.Pos, o.Size))
			}
		})
	}
}

func TestNewGenerator_Rejects(t *testing.T) {
	_, err := NewGenerator(testConfig("MOON", 1))
	assert.Error(t, err)

	cfg := testConfig(Forest, 1)
	cfg.Size = 100
	_, err = NewGenerator(cfg)
	assert.Error(t, err)

	cfg = testConfig(Forest, 1)
	cfg.CastleSize = 10
	_, err = NewGenerator(cfg)
	assert.Error(t, err)
}

func TestNewGenerator_ZeroSeedPicksOne(t *testing.T) {
	g, err := NewGenerator(testConfig(Desert, 0))
	require.NoError(t, err)
	assert.NotZero(t, g.Seed())
}

func TestLookupBiome(t *testing.T) {
	b, err := LookupBiome("volcano")
	require.NoError(t, err)
	assert.Equal(t, Volcano, b.Name)
	assert.Equal(t, 3, b.Difficulty)

	_, err = LookupBiome("nowhere")
	assert.Error(t, err)
}

func TestArea_BlockedAndBounds(t *testing.T) {
	a := &Area{Size: 100, Obstacles: []Obstacle{{Pos: geom.V2(50, 50), Size: 20}}}

	assert.True(t, a.Blocked(geom.V2(50, 50), 10))
	// Exactly touching is not a collision: distance 15 == (20+10)/2
	assert.False(t, a.Blocked(geom.V2(65, 50), 10))
	assert.True(t, a.Blocked(geom.V2(64.9, 50), 10))

	assert.True(t, a.Blocked(geom.V2(4, 20), 10), "out of bounds")
	assert.False(t, a.Blocked(geom.V2(5, 20), 10))

	assert.Equal(t, geom.V2(5, 95), a.Clamp(geom.V2(-10, 200), 10))
}

func TestWorld_AreaSelection(t *testing.T) {
	w := generate(t, Snow, 3)
	assert.Same(t, w.Overworld, w.Area(gamestate.Overworld))
	assert.Same(t, w.Castle, w.Area(gamestate.Castle))
}

func TestWorld_DayClockWraps(t *testing.T) {
	w := generate(t, Forest, 9)
	w.SetTimeOfDay(0.25)
	noon := w.Daylight()
	w.Update(120) // half a day
	assert.InDelta(t, 0.75, w.TimeOfDay(), 1e-9)
	assert.Less(t, w.Daylight(), noon)

	w.Update(240)
	assert.InDelta(t, 0.75, w.TimeOfDay(), 1e-9)
	assert.InDelta(t, 0.35, w.Daylight(), 1e-9)
}

func TestShrines_OneTimeUse(t *testing.T) {
	w := generate(t, Swamp, 11)
	require.NotEmpty(t, w.Shrines)
	s := w.Shrines[0]

	found := w.ShrineNear(s.Pos.Add(geom.V2(20, 0)), 10)
	require.Same(t, s, found)
	assert.GreaterOrEqual(t, s.Glow(), 0.0)

	assert.True(t, w.UseShrine(s))
	assert.False(t, w.UseShrine(s))
	assert.Zero(t, s.Glow())
	assert.Nil(t, w.ShrineNear(s.Pos, 10))
}

func TestNoise_RangeAndDeterminism(t *testing.T) {
	a := NewNoise(rand.New(rand.NewSource(5)))
	b := NewNoise(rand.New(rand.NewSource(5)))
	for i := 0; i < 500; i++ {
		x := float64(i)*0.37 - 90
		y := float64(i)*0.11 + 3
		v := a.Fractal(x, y, 4)
		assert.Equal(t, v, b.Fractal(x, y, 4))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	// Lattice points return the lattice value exactly
	assert.Equal(t, a.lattice(3, 4), a.At(3, 4))
}
