package game

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/pixelrealm/internal/render"
	"chosenoffset.com/pixelrealm/internal/render/lighting"
	"chosenoffset.com/pixelrealm/internal/save"
	"chosenoffset.com/pixelrealm/internal/sprite"
	"chosenoffset.com/pixelrealm/internal/ui/hud"
	"chosenoffset.com/pixelrealm/internal/ui/menu"
)

// storeTimeout bounds every save or load triggered from the keyboard
const storeTimeout = 5 * time.Second

// Manager handles the overall game state, including menu and gameplay.
type Manager struct {
	Log          zerolog.Logger
	ScreenWidth  int
	ScreenHeight int
	State        menu.GameState
	MainMenu     *menu.MainMenu
	Game         *Game
	HUD          *hud.HUD
	Renderer     render.Renderer
	Sprites      *sprite.Factory
	Lighting     *lighting.Manager
	Preferences  save.Preferences

	// Seed for new runs (0 = random)
	Seed int64

	// Fixed simulation step in seconds
	dt float64

	images map[string]render.Image
}

// NewManager creates a new game manager. tps is the engine's fixed tick
// rate and sets the simulation step.
func NewManager(log zerolog.Logger, r render.Renderer, g *Game, tps, width, height int) *Manager {
	if tps <= 0 {
		tps = 60
	}
	m := &Manager{
		Log:          log,
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        menu.StateMainMenu,
		Game:         g,
		Renderer:     r,
		Sprites:      sprite.NewFactory(),
		Lighting:     lighting.NewManager(),
		Preferences:  save.DefaultPreferences(),
		dt:           1.0 / float64(tps),
		images:       make(map[string]render.Image),
	}
	m.Lighting.SetPlayerLight(0, 0, 140, 0.9, color.NRGBA{255, 210, 140, 255})
	m.MainMenu = menu.NewMainMenu(r, g.Input, width, height)
	m.HUD = hud.New(hud.DefaultConfig(), r, width, height)
	m.loadPreferences()
	m.refreshContinue()
	return m
}

// loadPreferences reads the audio settings, keeping the defaults when the
// store has none or cannot be read
func (m *Manager) loadPreferences() {
	if m.Game.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	p, err := save.LoadPreferences(ctx, m.Game.Store)
	if err != nil {
		m.Log.Warn().Err(err).Msg("Failed to load preferences")
	}
	m.Preferences = p
}

// ToggleMute flips the mute preference and returns the new value
func (m *Manager) ToggleMute() bool {
	m.Preferences.Muted = !m.Preferences.Muted
	m.Log.Debug().Bool("muted", m.Preferences.Muted).Msg("Sound toggled")
	return m.Preferences.Muted
}

// refreshContinue offers the continue entry when the slot holds a save
func (m *Manager) refreshContinue() {
	if m.Game.Store == nil {
		m.MainMenu.SetContinue(false)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	_, err := m.Game.Store.Load(ctx, m.Game.Slot)
	if err != nil && !errors.Is(err, save.ErrNotFound) {
		m.Log.Warn().Err(err).Msg("Failed to check for saved game")
	}
	m.MainMenu.SetContinue(err == nil)
}

// Update updates the game state.
func (m *Manager) Update() error {
	in := m.Game.Input
	in.Poll()
	defer in.ClearEdges()

	switch m.State {
	case menu.StateMainMenu:
		selected, selection := m.MainMenu.Update()
		if !selected {
			return nil
		}
		if err := m.begin(selection); err != nil {
			m.Log.Error().Err(err).Msg("Failed to start game")
			return nil
		}
		m.State = menu.StatePlaying

	case menu.StatePlaying:
		if m.Game.State.GameOver {
			if in.Consume(render.KeyEnter) || in.Consume(render.KeyEscape) {
				m.backToMenu()
			}
			return nil
		}
		m.handleSystemKeys()
		m.Game.Step(m.dt)
	}
	return nil
}

func (m *Manager) begin(sel menu.Selection) error {
	if sel.Continue {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return m.Game.LoadGame(ctx)
	}
	return m.Game.StartGame(sel.Biome, m.Seed)
}

func (m *Manager) backToMenu() {
	m.Game.State.Reset()
	m.State = menu.StateMainMenu
	m.refreshContinue()
}

// handleSystemKeys processes keys that work while paused
func (m *Manager) handleSystemKeys() {
	g := m.Game
	in := g.Input

	if in.Consume(render.KeyM) {
		if m.ToggleMute() {
			g.ShowMessage("Sound muted")
		} else {
			g.ShowMessage("Sound on")
		}
	}

	if k, ok := in.ConsumeAny(render.KeyEscape, render.KeyP); ok {
		if k == render.KeyEscape && g.CloseConversation() {
			return
		}
		g.TogglePause()
	}

	if in.Consume(render.KeyF5) {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := g.SaveGame(ctx); err != nil {
			m.Log.Error().Err(err).Msg("Save failed")
			g.ShowMessage("Save failed")
		} else {
			g.ShowMessage("Game saved")
		}
	}
	if in.Consume(render.KeyF9) {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := g.LoadGame(ctx); err != nil {
			m.Log.Error().Err(err).Msg("Load failed")
			g.ShowMessage("No save to load")
		} else {
			g.ShowMessage("Game loaded")
		}
	}
}

// Shutdown stores the preferences and saves a live run before exit
func (m *Manager) Shutdown(ctx context.Context) {
	if m.Game.Store != nil {
		if err := save.SavePreferences(ctx, m.Game.Store, m.Preferences); err != nil {
			m.Log.Error().Err(err).Msg("Failed to save preferences")
		}
	}
	if m.State != menu.StatePlaying || !m.Game.State.Started || m.Game.State.GameOver {
		return
	}
	if err := m.Game.SaveGame(ctx); err != nil && !errors.Is(err, ErrNoStore) {
		m.Log.Error().Err(err).Msg("Failed to save on exit")
	}
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateMainMenu:
		m.MainMenu.Draw(screen)
	case menu.StatePlaying:
		screen.Fill(color.RGBA{0, 0, 0, 255})
		m.drawWorld(screen)
		status := m.Game.Status()
		status.Muted = m.Preferences.Muted
		m.HUD.Draw(screen, status)
		m.drawOverlays(screen)
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.MainMenu.SetSize(outsideWidth, outsideHeight)
		m.HUD.SetScreenSize(outsideWidth, outsideHeight)
	}
	if m.Game.World != nil {
		m.Game.UpdateCamera(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
