// Package gamestate holds the discrete session flags that gate the simulation:
// whether a run has started, whether it is paused or over, and which
// sub-world the player is in.
package gamestate

import (
	"errors"
	"fmt"
)

// Location names the active sub-world.
type Location string

const (
	Overworld Location = "overworld"
	Castle    Location = "castle"
)

// Errors returned by refused transitions.
var (
	ErrNotStarted     = errors.New("game not started")
	ErrAlreadyStarted = errors.New("game already started")
	ErrGameOver       = errors.New("game is over")
	ErrWrongLocation  = errors.New("transition not valid from current location")
)

// GameState is the implicit state machine of a play session.
//
//	not-started -> exploring (overworld) <-> in-castle
//
// crossed with running / paused / game-over. Game over is terminal.
type GameState struct {
	Started  bool     `json:"started"`
	Paused   bool     `json:"paused"`
	GameOver bool     `json:"game_over"`
	Location Location `json:"location"`

	// Biome is the region the run was started in.
	Biome string `json:"biome"`
}

// New returns a not-started state.
func New() *GameState {
	return &GameState{Location: Overworld}
}

// Running reports whether the simulation should advance this tick.
func (gs *GameState) Running() bool {
	return gs.Started && !gs.Paused && !gs.GameOver
}

// Start moves not-started to exploring in the given biome.
func (gs *GameState) Start(biome string) error {
	if gs.Started {
		return ErrAlreadyStarted
	}
	gs.Started = true
	gs.Paused = false
	gs.GameOver = false
	gs.Location = Overworld
	gs.Biome = biome
	return nil
}

// TogglePause flips the paused flag and returns the new value.
func (gs *GameState) TogglePause() (bool, error) {
	if err := gs.checkLive(); err != nil {
		return gs.Paused, err
	}
	gs.Paused = !gs.Paused
	return gs.Paused, nil
}

// EnterCastle moves exploring to in-castle.
func (gs *GameState) EnterCastle() error {
	if err := gs.checkLive(); err != nil {
		return err
	}
	if gs.Location != Overworld {
		return fmt.Errorf("enter castle from %s: %w", gs.Location, ErrWrongLocation)
	}
	gs.Location = Castle
	return nil
}

// ExitCastle moves in-castle back to exploring.
func (gs *GameState) ExitCastle() error {
	if err := gs.checkLive(); err != nil {
		return err
	}
	if gs.Location != Castle {
		return fmt.Errorf("exit castle from %s: %w", gs.Location, ErrWrongLocation)
	}
	gs.Location = Overworld
	return nil
}

// EndGame enters the terminal game-over state.
func (gs *GameState) EndGame() {
	gs.GameOver = true
	gs.Paused = false
}

// Reset returns to not-started, used when the player goes back to the menu.
func (gs *GameState) Reset() {
	*gs = GameState{Location: Overworld}
}

func (gs *GameState) checkLive() error {
	if !gs.Started {
		return ErrNotStarted
	}
	if gs.GameOver {
		return ErrGameOver
	}
	return nil
}

// String is used in log lines.
func (gs *GameState) String() string {
	return fmt.Sprintf("GameState{started=%t paused=%t over=%t location=%s biome=%s}",
		gs.Started, gs.Paused, gs.GameOver, gs.Location, gs.Biome)
}
