// neonmaze is a neon Pac-Man variant for the terminal.
//
// Usage:
//
//	neonmaze play            - Play in the terminal
//	neonmaze serve           - Start SSH server for remote play
//	neonmaze scores          - Show high scores
//	neonmaze simulate        - Run the engine headless and print the final state
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.neonmaze/scores.db)
//	--config <path>       - Load tuning from a YAML file
//	--max-frame-ms <ms>   - Clamp a single simulation step
//	--log-file <path>     - Write engine debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-maze/internal/config"
	"github.com/vovakirdan/neon-maze/internal/core"
	"github.com/vovakirdan/neon-maze/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagMaxFrameMs float64
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonmaze",
	Short: "Neon Maze - eat pellets, dodge pursuers, dash through walls",
	Long: `Neon Maze is a Pac-Man style maze game for the terminal. Clear every
pellet to finish a round; each round adds pursuers and speeds them up.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run the engine headless

Examples:
  neonmaze play
  neonmaze play --seed 42
  neonmaze serve --ssh :2222
  neonmaze scores --interactive
  neonmaze simulate --ticks 5000 --seed 7`,
}

func init() {
	defaults := core.DefaultConfig()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonmaze/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Float64Var(&flagMaxFrameMs, "max-frame-ms", defaults.MaxFrameMs, "Upper bound for one simulation step in ms")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write engine debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// runtimeConfig builds the platform config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		MaxFrameMs: flagMaxFrameMs,
	}
}

// loadGameConfig resolves the tuning, exiting on a broken --config file.
func loadGameConfig() config.NeonMazeConfig {
	cfg, err := config.LoadNeonMaze(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// engineLogger returns a debug logger writing to --log-file, or nil.
// The returned closer is always safe to call.
func engineLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return nil, func() {}
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return nil, func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return nil, func() {}
	}

	return newLogger(f), func() { f.Close() }
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonmaze",
	})
	logger.SetLevel(log.DebugLevel)
	return logger
}

// openStoreOrWarn opens the score database. A failure is reported and the
// game continues without persistence.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
