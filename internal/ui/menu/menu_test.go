package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/pixelrealm/internal/input"
	"chosenoffset.com/pixelrealm/internal/render"
	"chosenoffset.com/pixelrealm/internal/world"
)

func press(in *input.Tracker, k render.Key) {
	in.KeyDown(k)
	in.KeyUp(k)
}

func TestUpdate_NavigatesAndWraps(t *testing.T) {
	in := input.NewTracker(nil)
	m := NewMainMenu(nil, in, 800, 600)

	ok, _ := m.Update()
	assert.False(t, ok)

	press(in, render.KeyUp)
	m.Update()
	assert.Equal(t, len(world.Biomes())-1, m.Selected())

	press(in, render.KeyDown)
	m.Update()
	assert.Equal(t, 0, m.Selected())

	press(in, render.KeyS)
	m.Update()
	press(in, render.KeyEnter)
	ok, sel := m.Update()
	assert.True(t, ok)
	assert.Equal(t, world.Desert, sel.Biome)
	assert.False(t, sel.Continue)
}

func TestUpdate_ContinueEntry(t *testing.T) {
	in := input.NewTracker(nil)
	m := NewMainMenu(nil, in, 800, 600)
	m.SetContinue(true)

	press(in, render.KeySpace)
	ok, sel := m.Update()
	assert.True(t, ok)
	assert.True(t, sel.Continue)

	press(in, render.KeyDown)
	m.Update()
	press(in, render.KeyEnter)
	_, sel = m.Update()
	assert.Equal(t, world.Forest, sel.Biome)

	// Dropping the entry keeps the selection in range
	press(in, render.KeyUp)
	m.Update()
	press(in, render.KeyUp)
	m.Update()
	m.SetContinue(false)
	assert.Less(t, m.Selected(), len(world.Biomes()))
}
