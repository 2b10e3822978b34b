package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/pixelrealm/internal/render"
)

type fakeSource struct {
	held []render.Key
}

func (f *fakeSource) PressedKeys(dst []render.Key) []render.Key {
	return append(dst, f.held...)
}

func TestConsume_OncePerPress(t *testing.T) {
	tr := NewTracker(nil)
	tr.KeyDown(render.KeySpace)

	assert.True(t, tr.IsDown(render.KeySpace))
	assert.True(t, tr.Consume(render.KeySpace))
	assert.False(t, tr.Consume(render.KeySpace), "held key must not re-trigger")

	// Auto-repeat down events while held do not create a new edge
	tr.KeyDown(render.KeySpace)
	assert.False(t, tr.Consume(render.KeySpace))

	tr.KeyUp(render.KeySpace)
	tr.KeyDown(render.KeySpace)
	assert.True(t, tr.Consume(render.KeySpace))
}

func TestConsume_ShortTapSurvivesRelease(t *testing.T) {
	tr := NewTracker(nil)
	tr.KeyDown(render.Key1)
	tr.KeyUp(render.Key1)

	assert.False(t, tr.IsDown(render.Key1))
	assert.True(t, tr.Consume(render.Key1))
}

func TestPoll_FromSource(t *testing.T) {
	src := &fakeSource{held: []render.Key{render.KeyW, render.KeyD}}
	tr := NewTracker(src)

	tr.Poll()
	dx, dy := tr.Axis()
	assert.Equal(t, 1.0, dx)
	assert.Equal(t, -1.0, dy)
	assert.True(t, tr.Consume(render.KeyW))

	src.held = nil
	tr.Poll()
	dx, dy = tr.Axis()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestAxis_OpposingKeysCancel(t *testing.T) {
	tr := NewTracker(nil)
	tr.KeyDown(render.KeyA)
	tr.KeyDown(render.KeyRight)
	dx, _ := tr.Axis()
	assert.Equal(t, 0.0, dx)
}

func TestConsumeAny_OrderAndClear(t *testing.T) {
	tr := NewTracker(nil)
	tr.KeyDown(render.Key3)
	tr.KeyDown(render.Key2)

	k, ok := tr.ConsumeAny(render.Key1, render.Key2, render.Key3)
	assert.True(t, ok)
	assert.Equal(t, render.Key2, k)

	tr.ClearEdges()
	_, ok = tr.ConsumeAny(render.Key3)
	assert.False(t, ok)
	assert.True(t, tr.IsDown(render.Key3))

	tr.Reset()
	assert.False(t, tr.IsDown(render.Key3))
}

func TestInvalidKeysIgnored(t *testing.T) {
	tr := NewTracker(nil)
	tr.KeyDown(render.KeyUnknown)
	tr.KeyDown(render.Key(9999))
	assert.False(t, tr.IsDown(render.KeyUnknown))
	assert.False(t, tr.Consume(render.Key(9999)))
}
