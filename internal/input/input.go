// Package input tracks keyboard state by physical key. The simulation reads
// held keys for movement and consumes press edges for one-shot actions so a
// held key never re-triggers on later frames.
package input

import "chosenoffset.com/pixelrealm/internal/render"

// Tracker holds key-down state and unconsumed press edges.
type Tracker struct {
	down    [render.KeyCount]bool
	pressed [render.KeyCount]bool

	source render.KeySource
	buf    []render.Key
}

// NewTracker creates a tracker polling source. source may be nil when keys
// are fed through KeyDown/KeyUp directly.
func NewTracker(source render.KeySource) *Tracker {
	return &Tracker{source: source}
}

// Poll samples the key source once per frame and updates state.
func (t *Tracker) Poll() {
	if t.source == nil {
		return
	}
	t.buf = t.source.PressedKeys(t.buf[:0])

	var now [render.KeyCount]bool
	for _, k := range t.buf {
		if valid(k) {
			now[k] = true
		}
	}
	for k := range now {
		if now[k] {
			t.KeyDown(render.Key(k))
		} else {
			t.KeyUp(render.Key(k))
		}
	}
}

// KeyDown records a key going down. A down event on an already held key is
// ignored, matching keyboard auto-repeat.
func (t *Tracker) KeyDown(k render.Key) {
	if !valid(k) {
		return
	}
	if !t.down[k] {
		t.pressed[k] = true
	}
	t.down[k] = true
}

// KeyUp records a key release. Unconsumed edges survive release so a tap
// shorter than a frame still registers.
func (t *Tracker) KeyUp(k render.Key) {
	if !valid(k) {
		return
	}
	t.down[k] = false
}

// IsDown reports whether k is held.
func (t *Tracker) IsDown(k render.Key) bool {
	return valid(k) && t.down[k]
}

// AnyDown reports whether any of keys is held.
func (t *Tracker) AnyDown(keys ...render.Key) bool {
	for _, k := range keys {
		if t.IsDown(k) {
			return true
		}
	}
	return false
}

// Consume returns true once per press of k and clears the edge.
func (t *Tracker) Consume(k render.Key) bool {
	if !valid(k) || !t.pressed[k] {
		return false
	}
	t.pressed[k] = false
	return true
}

// ConsumeAny consumes the first pending key among keys, in argument order.
func (t *Tracker) ConsumeAny(keys ...render.Key) (render.Key, bool) {
	for _, k := range keys {
		if t.Consume(k) {
			return k, true
		}
	}
	return render.KeyUnknown, false
}

// ClearEdges drops every unconsumed press, used on state transitions so a
// key pressed in a menu does not fire in the world.
func (t *Tracker) ClearEdges() {
	t.pressed = [render.KeyCount]bool{}
}

// Reset releases every key.
func (t *Tracker) Reset() {
	t.down = [render.KeyCount]bool{}
	t.ClearEdges()
}

// Axis returns the movement intent from WASD and the arrow keys as a pair
// in {-1,0,1}.
func (t *Tracker) Axis() (dx, dy float64) {
	if t.AnyDown(render.KeyA, render.KeyLeft) {
		dx--
	}
	if t.AnyDown(render.KeyD, render.KeyRight) {
		dx++
	}
	if t.AnyDown(render.KeyW, render.KeyUp) {
		dy--
	}
	if t.AnyDown(render.KeyS, render.KeyDown) {
		dy++
	}
	return dx, dy
}

func valid(k render.Key) bool {
	return k > render.KeyUnknown && int(k) < render.KeyCount
}
