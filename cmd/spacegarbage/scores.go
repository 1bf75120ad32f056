package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/registry"
	"github.com/vovakirdan/space-garbage/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for the specified mode, ranked by garbage shot
down and then by the year reached.

Examples:
  spacegarbage scores space
  spacegarbage scores space --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'spacegarbage list')", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Best runs - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'spacegarbage play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-4s  %s\n", "Rank", "Score", "Year", "Date")
	fmt.Printf("  %-4s  %-6s  %-4s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-4d  %s\n", i+1, entry.Score, entry.Year, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestYear(gameID); err == nil {
		fmt.Printf("Furthest year: %d\n", best)
	}
	return nil
}
