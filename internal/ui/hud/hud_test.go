package hud

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthColor(t *testing.T) {
	tests := []struct {
		health, max int
		want        color.RGBA
	}{
		{100, 100, color.RGBA{50, 180, 50, 255}},
		{61, 100, color.RGBA{50, 180, 50, 255}},
		{60, 100, color.RGBA{200, 180, 50, 255}},
		{31, 100, color.RGBA{200, 180, 50, 255}},
		{30, 100, color.RGBA{200, 50, 50, 255}},
		{0, 0, color.RGBA{200, 50, 50, 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HealthColor(tt.health, tt.max), "%d/%d", tt.health, tt.max)
	}
}

func TestPanelHeight_GrowsWithContent(t *testing.T) {
	h := New(nil, nil, 800, 600)
	base := &Status{Health: 10, MaxHealth: 10}
	more := &Status{
		Health: 10, MaxHealth: 10,
		Region:   "Whispering Forest",
		Buffs:    []string{"speed"},
		Quests:   []string{"Slime Cull 1/5", "Herbalist 0/3"},
		Crafting: "Health Potion",
	}
	assert.Greater(t, h.PanelHeight(more), h.PanelHeight(base))

	h.config.ShowQuests = false
	withQuests := h.PanelHeight(more)
	more.Quests = nil
	assert.Equal(t, withQuests, h.PanelHeight(more), "hidden quests take no space")
}

func TestStatLines_Muted(t *testing.T) {
	s := &Status{Score: 5, Gold: 2, Weapon: "Sword"}
	assert.NotContains(t, statLines(s), "Sound: muted")

	s.Muted = true
	assert.Contains(t, statLines(s), "Sound: muted")

	h := New(nil, nil, 800, 600)
	loud := h.PanelHeight(&Status{})
	assert.Equal(t, loud+lineHeight, h.PanelHeight(&Status{Muted: true}))
}

func TestPositions(t *testing.T) {
	cfg := DefaultConfig()
	h := New(cfg, nil, 800, 600)

	x, y := h.PanelPosition()
	assert.Equal(t, 10, x)
	assert.Equal(t, 10, y)
	mx, my := h.MinimapPosition()
	assert.Equal(t, 800-cfg.MinimapSize-10, mx)
	assert.Equal(t, 10, my)

	cfg.Position = "top-right"
	x, _ = h.PanelPosition()
	assert.Equal(t, 800-200-10, x)
	mx, my = h.MinimapPosition()
	assert.Equal(t, 10, mx)
	assert.Equal(t, 600-cfg.MinimapSize-10, my)
}
