// Package hud provides a data-driven heads-up display for showing player stats,
// the equipped weapon, quests, crafting, messages and the minimap during play.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/pixelrealm/internal/render"
)

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowStats    bool    `json:"show_stats"`    // Level, score, gold, weapon
	ShowHP       bool    `json:"show_hp"`       // HP bar
	ShowQuests   bool    `json:"show_quests"`   // Active quest lines
	ShowMinimap  bool    `json:"show_minimap"`  // Minimap in the opposite corner
	MinimapSize  int     `json:"minimap_size"`  // Minimap side in pixels
	Position     string  `json:"position"`      // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 `json:"opacity"`       // Background opacity (0-1)
	MessageLines int     `json:"message_lines"` // Messages shown at the bottom
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowStats:    true,
		ShowHP:       true,
		ShowQuests:   true,
		ShowMinimap:  true,
		MinimapSize:  140,
		Position:     "top-left",
		Opacity:      0.7,
		MessageLines: 4,
	}
}

// Point is a minimap marker as a fraction of the area side
type Point struct {
	X, Y float64
}

// Status is everything the HUD shows for one frame
type Status struct {
	Health     int
	MaxHealth  int
	Level      int
	XPFraction float64
	Score      int
	Gold       int
	Weapon     string
	Buffs      []string
	Region     string
	Quests     []string
	Muted      bool

	Crafting         string  // Recipe output name, empty when idle
	CraftingProgress float64 // [0, 1]

	Messages []Message

	MinimapPlayer   Point
	MinimapMonsters []Point
	MinimapShrines  []Point
	MinimapDoor     Point
	MinimapGround   color.RGBA
}

// Message is a fading line of text
type Message struct {
	Text  string
	Alpha float64
}

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	// Cached layout
	panelWidth  int
	panelHeight int
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   200,
	}
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, s *Status) {
	if s == nil {
		return
	}
	h.panelHeight = h.PanelHeight(s)
	x, y := h.PanelPosition()

	h.drawPanel(screen, x, y, h.panelWidth, h.panelHeight)
	currentY := y + 8

	if s.Region != "" {
		h.drawText(screen, s.Region, x+8, currentY, color.RGBA{255, 255, 200, 255})
		currentY += lineHeight
	}

	if h.config.ShowHP {
		currentY = h.drawBar(screen, x+8, currentY, float64(s.Health)/float64(max(s.MaxHealth, 1)),
			HealthColor(s.Health, s.MaxHealth), fmt.Sprintf("%d/%d", s.Health, s.MaxHealth))
		currentY = h.drawBar(screen, x+8, currentY, s.XPFraction,
			color.RGBA{90, 140, 230, 255}, fmt.Sprintf("Lv %d", s.Level))
		currentY += 4
	}

	h.drawDivider(screen, x+4, currentY, h.panelWidth-8)
	currentY += 8

	if h.config.ShowStats {
		for _, line := range statLines(s) {
			h.drawText(screen, line, x+8, currentY, color.RGBA{200, 200, 200, 255})
			currentY += lineHeight
		}
	}

	if s.Crafting != "" {
		currentY = h.drawBar(screen, x+8, currentY, s.CraftingProgress,
			color.RGBA{200, 150, 60, 255}, "Crafting "+s.Crafting)
	}

	if h.config.ShowQuests && len(s.Quests) > 0 {
		h.drawDivider(screen, x+4, currentY, h.panelWidth-8)
		currentY += 8
		for _, q := range s.Quests {
			h.drawText(screen, q, x+8, currentY, color.RGBA{180, 220, 180, 255})
			currentY += lineHeight
		}
	}

	if h.config.ShowMinimap {
		h.drawMinimap(screen, s)
	}
	h.drawMessages(screen, s.Messages)
}

const (
	lineHeight = 16
	barHeight  = 12
	textSize   = 12
)

func statLines(s *Status) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Gold: %d", s.Gold),
		fmt.Sprintf("Weapon: %s", s.Weapon),
	}
	for _, b := range s.Buffs {
		lines = append(lines, "Blessed: "+b)
	}
	if s.Muted {
		lines = append(lines, "Sound: muted")
	}
	return lines
}

// PanelHeight calculates the height needed for all HUD elements
func (h *HUD) PanelHeight(s *Status) int {
	height := 8 // Top padding

	if s.Region != "" {
		height += lineHeight
	}
	if h.config.ShowHP {
		height += 2*(barHeight+4) + 4
	}
	height += 8 // Divider

	if h.config.ShowStats {
		height += len(statLines(s)) * lineHeight
	}
	if s.Crafting != "" {
		height += barHeight + 4
	}
	if h.config.ShowQuests && len(s.Quests) > 0 {
		height += 8 + len(s.Quests)*lineHeight
	}
	return height + 8 // Bottom padding
}

// PanelPosition returns the top-left corner of the HUD panel
func (h *HUD) PanelPosition() (int, int) {
	padding := 10

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

// MinimapPosition returns the minimap's top-left corner, in the corner
// across from the panel
func (h *HUD) MinimapPosition() (int, int) {
	padding := 10
	size := h.config.MinimapSize

	switch h.config.Position {
	case "top-right", "bottom-right":
		return padding, h.screenHeight - size - padding
	default:
		return h.screenWidth - size - padding, padding
	}
}

// HealthColor picks the HP bar colour by remaining fraction
func HealthColor(health, maxHealth int) color.RGBA {
	pct := float64(health) / float64(max(maxHealth, 1))
	switch {
	case pct > 0.6:
		return color.RGBA{50, 180, 50, 255} // Green
	case pct > 0.3:
		return color.RGBA{200, 180, 50, 255} // Yellow
	default:
		return color.RGBA{200, 50, 50, 255} // Red
	}
}

// drawPanel draws the semi-transparent background panel
func (h *HUD) drawPanel(screen render.Image, x, y, w, ht int) {
	alpha := uint8(h.config.Opacity * 255)
	h.renderer.FillRect(screen, float32(x), float32(y), float32(w), float32(ht), color.RGBA{20, 20, 30, alpha})
	h.renderer.StrokeRect(screen, float32(x), float32(y), float32(w), float32(ht), 1, color.RGBA{60, 60, 80, alpha})
}

// drawBar draws a labelled fill bar and returns the next line's y
func (h *HUD) drawBar(screen render.Image, x, y int, frac float64, fill color.RGBA, label string) int {
	barWidth := h.panelWidth - 24
	frac = min(max(frac, 0), 1)

	h.renderer.FillRect(screen, float32(x), float32(y), float32(barWidth), barHeight, color.RGBA{60, 20, 20, 255})
	if frac > 0 {
		fillWidth := max(int(float64(barWidth)*frac), 1)
		h.renderer.FillRect(screen, float32(x+1), float32(y+1), float32(fillWidth-1), barHeight-2, fill)
	}

	tw, _ := h.renderer.MeasureText(label, textSize-2)
	h.drawText(screen, label, x+barWidth/2-tw/2, y-1, color.RGBA{255, 255, 255, 255})
	return y + barHeight + 4
}

// drawDivider draws a horizontal line
func (h *HUD) drawDivider(screen render.Image, x, y, width int) {
	h.renderer.FillRect(screen, float32(x), float32(y), float32(width), 1, color.RGBA{80, 80, 100, 200})
}

func (h *HUD) drawMinimap(screen render.Image, s *Status) {
	size := h.config.MinimapSize
	x, y := h.MinimapPosition()
	fx, fy, fs := float32(x), float32(y), float32(size)

	ground := s.MinimapGround
	ground.A = uint8(h.config.Opacity * 255)
	h.renderer.FillRect(screen, fx, fy, fs, fs, ground)
	h.renderer.StrokeRect(screen, fx, fy, fs, fs, 1, color.RGBA{220, 220, 220, 200})

	dot := func(p Point, r float32, clr color.RGBA) {
		px := fx + float32(min(max(p.X, 0), 1))*fs
		py := fy + float32(min(max(p.Y, 0), 1))*fs
		h.renderer.FillCircle(screen, px, py, r, clr)
	}
	dot(s.MinimapDoor, 3, color.RGBA{160, 110, 60, 255})
	for _, p := range s.MinimapShrines {
		dot(p, 2, color.RGBA{140, 220, 255, 255})
	}
	for _, p := range s.MinimapMonsters {
		dot(p, 2, color.RGBA{230, 60, 60, 255})
	}
	dot(s.MinimapPlayer, 3, color.RGBA{255, 255, 255, 255})
}

func (h *HUD) drawMessages(screen render.Image, msgs []Message) {
	if len(msgs) > h.config.MessageLines {
		msgs = msgs[len(msgs)-h.config.MessageLines:]
	}
	y := h.screenHeight - 30 - len(msgs)*20
	for _, m := range msgs {
		a := uint8(min(max(m.Alpha, 0), 1) * 255)
		tw, _ := h.renderer.MeasureText(m.Text, 16)
		h.renderer.DrawText(screen, m.Text, h.screenWidth/2-tw/2, y, color.RGBA{255, 255, 255, a}, 16)
		y += 20
	}
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y int, clr color.RGBA) {
	h.renderer.DrawText(screen, text, x+1, y+1, color.RGBA{0, 0, 0, clr.A}, textSize)
	h.renderer.DrawText(screen, text, x, y, clr, textSize)
}
