package lighting

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmbient_DrivesLantern(t *testing.T) {
	m := NewManager()
	m.SetPlayerLight(10, 20, 120, 0.8, color.NRGBA{255, 210, 140, 255})

	assert.False(t, m.IsPlayerLightOn())
	assert.Empty(t, m.Lights())
	assert.Equal(t, 0.0, m.Darkness())

	m.SetAmbientLight(0.2)
	assert.True(t, m.IsPlayerLightOn())
	assert.InDelta(t, 0.75, m.Darkness(), 1e-9, "darkness is capped")

	m.UpdatePlayerLightPosition(50, 60)
	lights := m.Lights()
	if assert.Len(t, lights, 1) {
		assert.Equal(t, 50.0, lights[0].X)
		assert.Equal(t, 60.0, lights[0].Y)
	}

	m.SetAmbientLight(7)
	assert.Equal(t, 1.0, m.AmbientLight())
	assert.False(t, m.IsPlayerLightOn())
}

func TestKeyedLights(t *testing.T) {
	m := NewManager()
	m.SetLight("shrine:1", LightSource{X: 1, Radius: 40, Intensity: 0.5})
	m.SetLight("shrine:0", LightSource{X: 0, Radius: 40, Intensity: 0.5})

	lights := m.Lights()
	if assert.Len(t, lights, 2) {
		assert.Equal(t, 0.0, lights[0].X, "sorted by key")
	}

	m.SetLight("shrine:1", LightSource{Radius: 40, Intensity: 0})
	assert.Len(t, m.Lights(), 1, "zero intensity removes")

	m.RemoveLight("shrine:0")
	assert.Empty(t, m.Lights())

	m.SetLight("a", LightSource{Radius: 1, Intensity: 1})
	m.Clear()
	assert.Empty(t, m.Lights())
}
