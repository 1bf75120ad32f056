package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/platform/tui"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
scoreboard. After a run ends, quit the game to return to the menu.

Examples:
  spacegarbage menu
  spacegarbage menu --difficulty easy`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd, true)
}

func runMenu(_ *cobra.Command, _ []string) error {
	cleanup, err := applyGameFlags()
	if err != nil {
		return err
	}
	defer cleanup()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		cfg.Seed = time.Now().UnixNano()
		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
