package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trapfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Trap Fall SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a mode menu.
All users share one run board, kept in memory unless --db is given.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.trapfall/host_key

Examples:
  trapfall serve                           # Listen on :23234 with auto-generated key
  trapfall serve --ssh :2222               # Listen on port 2222
  trapfall serve --host-key ./my_host_key  # Use specific host key
  trapfall serve --db ./runs.db            # Keep the run board on disk

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = appConfig.SSHAddr
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	cfg.HostKeyPath = appConfig.HostKeyPath
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Trap Fall SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
