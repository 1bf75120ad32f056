package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/api"
	"github.com/vovakirdan/space-garbage/internal/audio"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/games/space"
	"github.com/vovakirdan/space-garbage/internal/metrics"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

// Game flags shared by play and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagFrames     string
	flagSound      bool
	flagVolume     float64
)

// addGameFlags binds the game flags to cmd. Sound only makes sense where
// the player sits at this machine.
func addGameFlags(cmd *cobra.Command, sound bool) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagFrames, "frames", "", "Directory of *.txt frame files")
	if sound {
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Beep on shots and explosions")
		cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume (0-1)")
	}
}

// applyGameFlags configures the game package before any game is created.
// The returned func releases what was set up.
func applyGameFlags() (func(), error) {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return nil, err
		}
	}
	space.SetConfigPath(flagConfig)
	space.SetDifficultyPreset(flagDifficulty)

	if err := space.SetFramesDir(flagFrames); err != nil {
		return nil, fmt.Errorf("loading frames: %w", err)
	}

	cleanup := func() {}
	if flagSound {
		beeper, err := audio.Open(flagVolume)
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			space.SetSound(beeper)
			cleanup = beeper.Close
		}
	}
	return cleanup, nil
}

// startMetrics serves the recorder's metrics and the scoreboard on addr
// until ctx is done.
func startMetrics(ctx context.Context, addr, gameID string, store *storage.Store) {
	rec := metrics.NewRecorder(gameID)
	space.SetObserver(rec)

	cfg := api.RouterConfig{Gatherer: rec.Registry(), DisableLogging: true}
	if store != nil {
		cfg.Scores = store
	}
	go func() {
		if err := api.Serve(ctx, addr, api.NewRouter(cfg), logger); err != nil {
			logger.Error("stats server failed", "error", err)
		}
	}()
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. The game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
