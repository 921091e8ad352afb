package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockjam/internal/games/blockjam"
	"github.com/vovakirdan/blockjam/internal/platform/tui"
	"github.com/vovakirdan/blockjam/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Block Jam SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own puzzle and session id.
Solves are stored per-server (all users share the same records).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blockjam/host_key

Examples:
  blockjam serve                           # Listen on :23235 with auto-generated key
  blockjam serve --ssh :2222               # Listen on port 2222
  blockjam serve --host-key ./my_host_key  # Use specific host key
  blockjam serve --db ./records.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", tui.DefaultSSHAddress, "SSH server address (host:port) (env "+envSSHAddr+")")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger("blockjam-ssh")

	params, theme, err := loadSettings()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Theme = theme
	cfg.Logger = logger
	cfg.NewGame = func() tui.Game {
		return blockjam.New(blockjam.Options{Params: params, Logger: logger})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
	} else {
		defer store.Close()
		cfg.Store = store
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting Block Jam SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
