package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/games/space"
	"github.com/vovakirdan/space-garbage/internal/platform/term"
	"github.com/vovakirdan/space-garbage/internal/platform/tui"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

var (
	flagBackend     string
	flagMetricsAddr string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (default: space).

Controls:
  Arrows/WASD  - Thrust
  Space        - Fire (once the plasma gun is invented)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Screenshot (bubbletea backend)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Debris spawns 1.5x less often
  normal - The default schedule
  hard   - Debris spawns 1.6x more often
  fixed  - The year never advances

Examples:
  spacegarbage play
  spacegarbage play starfield
  spacegarbage play --difficulty hard
  spacegarbage play --frames ./frames --sound
  spacegarbage play --backend tcell --metrics-addr 127.0.0.1:9090`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd, true)
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea or tcell")
	playCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve /metrics, /healthz and /scores on this address")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := space.ModeSpace
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'spacegarbage list')", gameID)
	}
	if flagBackend != "tea" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q (want tea or tcell)", flagBackend)
	}

	cleanup, err := applyGameFlags()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if flagMetricsAddr != "" {
		startMetrics(ctx, flagMetricsAddr, gameID, store)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	logger.Debug("starting game", "mode", gameID, "backend", flagBackend, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	if flagBackend == "tcell" {
		err = term.Run(ctx, game, store, cfg, logger)
	} else {
		err = tui.Run(game, store, cfg, logger)
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
