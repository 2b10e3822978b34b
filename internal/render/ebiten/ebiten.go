package ebiten

import (
	"bytes"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/pixelrealm/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	log zerolog.Logger

	fontOnce sync.Once
	fontSrc  *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
}

// init sets up the global functions for the ebiten render.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer(log zerolog.Logger) render.Renderer {
	return &EbitenRenderer{log: log, faces: make(map[float64]*text.GoTextFace)}
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// NewImageFromRGBA uploads a CPU-side image built by the sprite factory.
func (r *EbitenRenderer) NewImageFromRGBA(src *image.RGBA) render.Image {
	return &EbitenImage{img: ebiten.NewImageFromImage(src)}
}

// FillRect draws a filled rectangle.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, w, h, clr, false)
}

// StrokeRect draws a rectangle outline.
func (r *EbitenRenderer) StrokeRect(dst render.Image, x, y, w, h, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(unwrap(dst), x, y, w, h, strokeWidth, clr, false)
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(unwrap(dst), x, y, radius, strokeWidth, clr, true)
}

// DrawText draws text with the embedded Go Regular face at the given pixel size.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, size float64) {
	face := r.face(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(unwrap(dst), str, face, op)
}

// MeasureText measures the width and height of text at the given size.
func (r *EbitenRenderer) MeasureText(str string, size float64) (width, height int) {
	face := r.face(size)
	if face == nil {
		return 0, 0
	}
	w, h := text.Measure(str, face, face.Size*1.2)
	return int(w), int(h)
}

func (r *EbitenRenderer) face(size float64) *text.GoTextFace {
	r.fontOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			r.log.Error().Err(err).Msg("Failed to load embedded font, text disabled")
			return
		}
		r.fontSrc = src
	})
	if r.fontSrc == nil {
		return nil
	}
	if size <= 0 {
		size = 14
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: r.fontSrc, Size: size}
	r.faces[size] = f
	return f
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*EbitenImage).img
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Deallocate()
	}
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := unwrap(src)

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenOpts.GeoM = opts.GeoM.(*EbitenGeoM).geoM
	}
	if opts.Alpha > 0 && opts.Alpha < 1 {
		ebitenOpts.ColorScale.ScaleAlpha(opts.Alpha)
	}
	i.img.DrawImage(srcImg, ebitenOpts)
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Image.
func WrapEbitenImage(img *ebiten.Image) render.Image {
	return &EbitenImage{img: img}
}

// EbitenGeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Rotate rotates the image by the given angle in radians.
func (g *EbitenGeoM) Rotate(angle float64) {
	g.geoM.Rotate(angle)
}

// Reset resets the matrix to identity.
func (g *EbitenGeoM) Reset() {
	g.geoM.Reset()
}

// EbitenKeySource reports held keys from Ebiten's keyboard state.
type EbitenKeySource struct {
	buf []ebiten.Key
}

// NewKeySource creates a new Ebiten-based key source.
func NewKeySource() render.KeySource {
	return &EbitenKeySource{}
}

// PressedKeys appends every held, bound key to dst.
func (s *EbitenKeySource) PressedKeys(dst []render.Key) []render.Key {
	s.buf = inpututil.AppendPressedKeys(s.buf[:0])
	for _, k := range s.buf {
		if rk := ebitenKeyToKey(k); rk != render.KeyUnknown {
			dst = append(dst, rk)
		}
	}
	return dst
}

// ebitenKeyToKey converts an ebiten.Key to a render.Key.
func ebitenKeyToKey(key ebiten.Key) render.Key {
	switch key {
	case ebiten.KeyW:
		return render.KeyW
	case ebiten.KeyA:
		return render.KeyA
	case ebiten.KeyS:
		return render.KeyS
	case ebiten.KeyD:
		return render.KeyD
	case ebiten.KeyArrowUp:
		return render.KeyUp
	case ebiten.KeyArrowDown:
		return render.KeyDown
	case ebiten.KeyArrowLeft:
		return render.KeyLeft
	case ebiten.KeyArrowRight:
		return render.KeyRight
	case ebiten.KeySpace:
		return render.KeySpace
	case ebiten.KeyDigit1:
		return render.Key1
	case ebiten.KeyDigit2:
		return render.Key2
	case ebiten.KeyDigit3:
		return render.Key3
	case ebiten.KeyQ:
		return render.KeyQ
	case ebiten.KeyE:
		return render.KeyE
	case ebiten.KeyC:
		return render.KeyC
	case ebiten.KeyH:
		return render.KeyH
	case ebiten.KeyM:
		return render.KeyM
	case ebiten.KeyP:
		return render.KeyP
	case ebiten.KeyEscape:
		return render.KeyEscape
	case ebiten.KeyEnter:
		return render.KeyEnter
	case ebiten.KeyF5:
		return render.KeyF5
	case ebiten.KeyF9:
		return render.KeyF9
	default:
		return render.KeyUnknown
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// TPS returns Ebiten's fixed tick rate.
func (e *EbitenEngine) TPS() int {
	return ebiten.TPS()
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
