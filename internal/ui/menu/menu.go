// Package menu provides the biome selection screen shown before a run.
package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/pixelrealm/internal/input"
	"chosenoffset.com/pixelrealm/internal/render"
	"chosenoffset.com/pixelrealm/internal/world"
)

// GameState represents the current state of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
)

// Selection is what the player picked from the menu.
type Selection struct {
	Biome    world.Biome
	Continue bool // Load the saved game instead of starting fresh
}

// MainMenu lists the biomes, plus a continue entry when a save exists.
type MainMenu struct {
	biomes       []world.BiomeInfo
	selected     int
	canContinue  bool
	renderer     render.Renderer
	input        *input.Tracker
	screenWidth  int
	screenHeight int
}

// NewMainMenu creates a new main menu.
func NewMainMenu(r render.Renderer, in *input.Tracker, width, height int) *MainMenu {
	return &MainMenu{
		biomes:       world.Biomes(),
		renderer:     r,
		input:        in,
		screenWidth:  width,
		screenHeight: height,
	}
}

// SetContinue shows or hides the continue entry
func (m *MainMenu) SetContinue(ok bool) {
	m.canContinue = ok
	m.selected = min(m.selected, m.entries()-1)
}

// SetSize updates the screen dimensions
func (m *MainMenu) SetSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
}

// Selected returns the highlighted entry index
func (m *MainMenu) Selected() int {
	return m.selected
}

func (m *MainMenu) entries() int {
	if m.canContinue {
		return len(m.biomes) + 1
	}
	return len(m.biomes)
}

// Update reads navigation keys.
// Returns true if an entry was chosen, false otherwise.
func (m *MainMenu) Update() (selected bool, selection Selection) {
	n := m.entries()
	if n == 0 {
		return false, Selection{}
	}

	switch k, _ := m.input.ConsumeAny(render.KeyUp, render.KeyW, render.KeyDown, render.KeyS, render.KeyEnter, render.KeySpace); k {
	case render.KeyUp, render.KeyW:
		m.selected = (m.selected - 1 + n) % n
	case render.KeyDown, render.KeyS:
		m.selected = (m.selected + 1) % n
	case render.KeyEnter, render.KeySpace:
		return true, m.selection()
	}
	return false, Selection{}
}

func (m *MainMenu) selection() Selection {
	i := m.selected
	if m.canContinue {
		if i == 0 {
			return Selection{Continue: true}
		}
		i--
	}
	return Selection{Biome: m.biomes[i].Name}
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	titleColor := color.RGBA{255, 255, 255, 255}
	m.renderer.DrawText(screen, "PIXEL REALM", 50, 30, titleColor, 36)
	m.renderer.DrawText(screen, "Choose a region", 50, 80, titleColor, 18)

	y := 130
	entryHeight := 54
	index := 0

	if m.canContinue {
		m.drawEntry(screen, index, y, "Continue saved game", "Resume from your last save", color.RGBA{150, 220, 255, 255})
		y += entryHeight
		index++
	}
	for _, b := range m.biomes {
		swatch := b.Ground
		m.renderer.FillRect(screen, 50, float32(y+4), 16, 16, swatch)
		m.renderer.StrokeRect(screen, 50, float32(y+4), 16, 16, 1, b.Accent)
		detail := fmt.Sprintf("%s  Difficulty %d", b.Description, b.Difficulty)
		m.drawEntry(screen, index, y, b.Title, detail, color.RGBA{200, 200, 255, 255})
		y += entryHeight
		index++
	}

	instructionY := m.screenHeight - 60
	instructionColor := color.RGBA{150, 150, 150, 255}
	m.renderer.DrawText(screen, "Up/Down to choose, Enter or Space to start.", 20, instructionY, instructionColor, 14)
	m.renderer.DrawText(screen, "WASD move, Space attack, 1-3/Q weapons, E interact, C craft, H heal, P pause, F5/F9 save/load", 20, instructionY+20, instructionColor, 14)
}

func (m *MainMenu) drawEntry(screen render.Image, index, y int, title, detail string, clr color.RGBA) {
	if index == m.selected {
		clr = color.RGBA{255, 255, 100, 255}
		m.renderer.DrawText(screen, ">", 30, y, clr, 18)
	}
	m.renderer.DrawText(screen, title, 76, y, clr, 18)
	m.renderer.DrawText(screen, detail, 76, y+24, color.RGBA{170, 170, 170, 255}, 13)
}
