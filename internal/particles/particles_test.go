package particles

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/pixelrealm/internal/core/geom"
)

func newPool(capacity int) *Pool {
	return NewPool(capacity, rand.New(rand.NewSource(1)))
}

func TestSpawn_Capacity(t *testing.T) {
	p := newPool(2)
	assert.True(t, p.Spawn(Particle{Life: 1}))
	assert.True(t, p.Spawn(Particle{Life: 1}))
	assert.False(t, p.Spawn(Particle{Life: 1}))
	assert.False(t, newPool(5).Spawn(Particle{Life: 0}), "dead on arrival")
	assert.Equal(t, 2, p.Len())
}

func TestUpdate_SwapRemove(t *testing.T) {
	p := newPool(8)
	// Lives 1, 5, 1, 5: the two short-lived ones expire together
	for i, life := range []float64{1, 5, 1, 5} {
		p.Spawn(Particle{Life: life, Size: float64(i)})
	}

	p.Update(2)
	assert.Equal(t, 2, p.Len())
	for _, pt := range p.Particles() {
		assert.Equal(t, 3.0, pt.Life)
	}

	// Survivors are the two long-lived particles in swapped order
	sizes := []float64{p.Particles()[0].Size, p.Particles()[1].Size}
	assert.ElementsMatch(t, []float64{1, 3}, sizes)
}

func TestUpdate_RemovesTrailingRun(t *testing.T) {
	p := newPool(4)
	p.Spawn(Particle{Life: 3})
	p.Spawn(Particle{Life: 0.1})
	p.Spawn(Particle{Life: 0.1})
	p.Update(0.5)
	assert.Equal(t, 1, p.Len())
}

func TestUpdate_Integrates(t *testing.T) {
	p := newPool(1)
	p.Spawn(Particle{Life: 2, Vel: geom.V2(10, 0), Gravity: 20})
	p.Update(0.5)
	pt := p.Particles()[0]
	assert.InDelta(t, 5.0, pt.Pos.X, 1e-9)
	assert.InDelta(t, 5.0, pt.Pos.Y, 1e-9)
	assert.InDelta(t, 0.75, pt.Alpha(), 1e-9)
}

func TestBurst(t *testing.T) {
	p := newPool(10)
	n := p.Burst(geom.V2(5, 5), 25, 100, 0.5, color.RGBA{255, 0, 0, 255})
	assert.Equal(t, 10, n)
	assert.Equal(t, 10, p.Len())

	p.Update(1)
	assert.Zero(t, p.Len())

	p.Burst(geom.V2(0, 0), 3, 1, 1, color.RGBA{})
	p.Clear()
	assert.Zero(t, p.Len())
}
