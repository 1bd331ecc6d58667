package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-maze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Neon Maze SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Scores are stored per server, so
all users share the same leaderboard and best-ever score.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.neonmaze/host_key

Examples:
  neonmaze serve                           # Listen on :23234 with auto-generated key
  neonmaze serve --ssh :2222               # Listen on port 2222
  neonmaze serve --host-key ./my_host_key  # Use specific host key
  neonmaze serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.MaxFrameMs = flagMaxFrameMs
	cfg.Game = loadGameConfig()

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Neon Maze SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of host:port, or the address unchanged.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
