package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-garbage/internal/api"
	"github.com/vovakirdan/space-garbage/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a mode picker.
Runs are stored per server (all users share the same scoreboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.spacegarbage/host_key

Examples:
  spacegarbage serve                           # Listen on :23234
  spacegarbage serve --ssh :2222               # Listen on port 2222
  spacegarbage serve --http 127.0.0.1:8080     # Also serve /scores and /metrics

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addGameFlags(serveCmd, false)
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Serve /scores, /metrics and /healthz on this address")
}

func runServe(_ *cobra.Command, _ []string) error {
	cleanup, err := applyGameFlags()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if flagHTTPAddr != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rcfg := api.RouterConfig{}
		if store := server.Store(); store != nil {
			rcfg.Scores = store
		}
		router := api.NewRouter(rcfg)
		go func() {
			if err := api.Serve(ctx, flagHTTPAddr, router, logger); err != nil {
				logger.Error("stats server failed", "error", err)
			}
		}()
	}

	fmt.Printf("Starting Space Garbage SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
