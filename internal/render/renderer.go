package render

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Game and UI code draw only through it so the simulation
// packages never import the backend.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image
	NewImageFromRGBA(src *image.RGBA) Image

	// Shape operations
	FillRect(dst Image, x, y, w, h float32, clr color.Color)
	StrokeRect(dst Image, x, y, w, h, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, size float64)
	MeasureText(text string, size float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
	// Alpha multiplies the source alpha; zero means opaque.
	Alpha float32
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	Translate(tx, ty float64)
	Scale(sx, sy float64)
	Rotate(angle float64)
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// KeySource reports which keys are physically held this frame.
type KeySource interface {
	PressedKeys(dst []Key) []Key
}

// Key represents a physical keyboard key.
type Key int

// Key constants for every bound key
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	Key1
	Key2
	Key3
	KeyQ
	KeyE
	KeyC
	KeyH
	KeyM
	KeyP
	KeyEscape
	KeyEnter
	KeyF5
	KeyF9
	keyCount
)

// KeyCount is the number of distinct keys, for fixed-size tables.
const KeyCount = int(keyCount)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeySpace:   "Space",
	Key1:       "1",
	Key2:       "2",
	Key3:       "3",
	KeyQ:       "Q",
	KeyE:       "E",
	KeyC:       "C",
	KeyH:       "H",
	KeyM:       "M",
	KeyP:       "P",
	KeyEscape:  "Escape",
	KeyEnter:   "Enter",
	KeyF5:      "F5",
	KeyF9:      "F9",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "unknown"
	}
	return keyNames[k]
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// TPS returns the fixed number of Update calls per second.
	TPS() int

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
