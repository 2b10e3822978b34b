// Package lighting tracks the ambient level and point lights drawn over the
// overworld as the day clock turns.
package lighting

import (
	"image/color"
	"sort"
)

// LanternThreshold is the ambient level below which the player's lantern
// switches on.
const LanternThreshold = 0.6

// LightSource represents a single light source in the game world
type LightSource struct {
	X         float64     // World X position (in pixels)
	Y         float64     // World Y position (in pixels)
	Radius    float64     // Light radius (in pixels)
	Intensity float64     // Light intensity (0.0 to 1.0)
	Color     color.NRGBA // Light color
}

// Manager handles all light sources in the game
type Manager struct {
	ambientLight  float64 // Global ambient light level (0.0 = pitch black, 1.0 = fully lit)
	playerLight   *LightSource
	playerLightOn bool
	lights        map[string]*LightSource // Keyed by owner, e.g. "shrine:2"
}

// NewManager creates a new lighting manager
func NewManager() *Manager {
	return &Manager{
		ambientLight: 1,
		lights:       make(map[string]*LightSource),
	}
}

// SetAmbientLight sets the global ambient light level, clamped to [0, 1].
// The player's lantern follows it.
func (m *Manager) SetAmbientLight(level float64) {
	m.ambientLight = min(max(level, 0), 1)
	m.playerLightOn = m.ambientLight < LanternThreshold
}

// AmbientLight returns the current ambient light level
func (m *Manager) AmbientLight() float64 {
	return m.ambientLight
}

// Darkness is the opacity of the night overlay
func (m *Manager) Darkness() float64 {
	return min(1-m.ambientLight, 0.75)
}

// SetPlayerLight configures the player's lantern
func (m *Manager) SetPlayerLight(x, y, radius, intensity float64, col color.NRGBA) {
	if m.playerLight == nil {
		m.playerLight = &LightSource{}
	}
	m.playerLight.X = x
	m.playerLight.Y = y
	m.playerLight.Radius = radius
	m.playerLight.Intensity = intensity
	m.playerLight.Color = col
}

// IsPlayerLightOn returns whether the player's lantern is lit
func (m *Manager) IsPlayerLightOn() bool {
	return m.playerLightOn
}

// UpdatePlayerLightPosition moves the lantern with the player
func (m *Manager) UpdatePlayerLightPosition(x, y float64) {
	if m.playerLight != nil {
		m.playerLight.X = x
		m.playerLight.Y = y
	}
}

// SetLight adds or replaces the light owned by key. A non-positive
// intensity removes it.
func (m *Manager) SetLight(key string, l LightSource) {
	if l.Intensity <= 0 || l.Radius <= 0 {
		delete(m.lights, key)
		return
	}
	m.lights[key] = &l
}

// RemoveLight drops the light owned by key
func (m *Manager) RemoveLight(key string) {
	delete(m.lights, key)
}

// Lights returns every active light, the lantern first and the rest in key
// order.
func (m *Manager) Lights() []LightSource {
	lights := make([]LightSource, 0, len(m.lights)+1)
	if m.playerLightOn && m.playerLight != nil {
		lights = append(lights, *m.playerLight)
	}

	keys := make([]string, 0, len(m.lights))
	for k := range m.lights {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lights = append(lights, *m.lights[k])
	}
	return lights
}

// Clear removes all keyed lights (called when the area changes)
func (m *Manager) Clear() {
	clear(m.lights)
}
