package game

import "chosenoffset.com/pixelrealm/internal/core/geom"

// Camera tracks the viewport position for scrolling large areas.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Minimap is a throttled summary of the active area for the HUD. Positions
// are fractions of the area side in [0, 1].
type Minimap struct {
	Player   geom.Vec3
	Monsters []geom.Vec3
	Shrines  []geom.Vec3
	Door     geom.Vec3
}

const (
	messageDuration = 3.0
	maxMessages     = 5
	minimapInterval = 0.25
)
