package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"chosenoffset.com/pixelrealm/internal/config"
	"chosenoffset.com/pixelrealm/internal/game"
	"chosenoffset.com/pixelrealm/internal/input"
	"chosenoffset.com/pixelrealm/internal/inventory"
	"chosenoffset.com/pixelrealm/internal/logging"
	ebitenrender "chosenoffset.com/pixelrealm/internal/render/ebiten"
	"chosenoffset.com/pixelrealm/internal/save"
	"chosenoffset.com/pixelrealm/internal/simulation"
	"chosenoffset.com/pixelrealm/internal/telemetry"
)

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		// Logging is not configured yet
		bootLog := logging.New(os.Stderr, "info", "console")
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}
	log := logging.New(os.Stderr, config.GetString("logLevel"), config.GetString("logFormat"))

	sim, err := simulation.FromViper(config.Viper())
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid simulation config")
	}

	lib := inventory.DefaultLibrary()
	if path := config.GetString("content.itemsFile"); path != "" {
		if lib, err = inventory.LoadLibrary(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Falling back to built-in items")
			lib = inventory.DefaultLibrary()
		}
	}

	var tel *telemetry.Instruments
	if config.GetBool("telemetry.enabled") {
		if tel, err = telemetry.New(nil, config.GetString("telemetry.meterName")); err != nil {
			log.Warn().Err(err).Msg("Telemetry disabled")
		}
	}

	store, closeStore := openStore(log)
	defer closeStore()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer(logging.Component(log, "render"))
	engine := ebitenrender.NewEngine()
	tracker := input.NewTracker(ebitenrender.NewKeySource())

	g := game.New(game.Options{
		Log:       logging.Component(log, "game"),
		Config:    sim,
		Library:   lib,
		Input:     tracker,
		Telemetry: tel,
		Store:     store,
		Slot:      config.GetString("save.slot"),
	})

	screenWidth := config.GetInt("window.width")
	screenHeight := config.GetInt("window.height")
	manager := game.NewManager(logging.Component(log, "manager"), renderer, g, engine.TPS(), screenWidth, screenHeight)
	manager.Seed = config.GetInt64("world.seed")

	// Set up the window
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle(config.GetString("window.title"))
	engine.SetWindowResizable(true)

	log.Info().Int("tps", engine.TPS()).Msg("Starting game")
	runErr := engine.RunGame(manager)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	manager.Shutdown(ctx)

	if runErr != nil {
		log.Error().Err(runErr).Msg("Game loop exited")
		closeStore()
		os.Exit(1)
	}
}

// openStore picks the save backend from config. Without a usable store the
// game runs with saving disabled.
func openStore(log zerolog.Logger) (save.Store, func()) {
	storeLog := logging.Component(log, "save")
	switch backend := config.GetString("save.backend"); backend {
	case "sqlite":
		s, err := save.OpenSQLite(config.GetString("save.sqlitePath"), storeLog)
		if err != nil {
			log.Error().Err(err).Msg("Saving disabled")
			return nil, func() {}
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close save database")
			}
		}
	case "file", "":
		s, err := save.NewFileStore(config.GetString("save.dir"), storeLog)
		if err != nil {
			log.Error().Err(err).Msg("Saving disabled")
			return nil, func() {}
		}
		return s, func() {}
	default:
		log.Error().Str("backend", backend).Msg("Unknown save backend, saving disabled")
		return nil, func() {}
	}
}
