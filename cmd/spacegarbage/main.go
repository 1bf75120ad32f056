// spacegarbage is a terminal game: steer a rocket through falling orbital
// debris and, once the plasma gun is invented, shoot it down.
//
// Usage:
//
//	spacegarbage list              - List game modes
//	spacegarbage play [mode]       - Play a mode (default: space)
//	spacegarbage menu              - Pick a mode interactively
//	spacegarbage serve             - Start SSH server for remote play
//	spacegarbage scores <mode>     - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 10)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.spacegarbage/scores.db)
//	--log-file <path>  - Write logs to a file instead of stderr
//	--debug            - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the game modes
	_ "github.com/vovakirdan/space-garbage/internal/games/space"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool

	logger  = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "spacegarbage"})
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacegarbage",
	Short: "Space Garbage - dodge and shoot orbital debris in your terminal",
	Long: `Space Garbage puts you in a rocket over sixty years of spaceflight.
Debris starts falling in 1961 and gets thicker every decade; in 2020 the
plasma gun is invented and you can finally shoot back.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  spacegarbage play
  spacegarbage play starfield
  spacegarbage play --difficulty hard --backend tcell
  spacegarbage serve --ssh :2222
  spacegarbage scores space`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spacegarbage/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogger points the logger at --log-file when given.
func setupLogger(_ *cobra.Command, _ []string) error {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logger.SetOutput(f)
	logSink = f
	return nil
}
