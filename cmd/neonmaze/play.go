package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-maze/internal/games/neonmaze"
	"github.com/vovakirdan/neon-maze/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Neon Maze",
	Long: `Start Neon Maze in this terminal.

Controls:
  Arrows/WASD  - Move
  Q/E/Space    - Phase dash (pass through walls)
  P/Esc        - Pause
  Enter        - Start, next round, restart
  Ctrl+S       - Save a text screenshot to ~/.neonmaze/screenshots
  Ctrl+C       - Quit

Examples:
  neonmaze play
  neonmaze play --seed 42
  neonmaze play --config ./my-neonmaze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if minW, minH := neonmaze.MinScreenSize(); width < minW || height < minH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the maze needs %dx%d\n", width, height, minW, minH)
	}

	gameCfg := loadGameConfig()
	logger, closeLog := engineLogger()
	defer closeLog()

	store := openStoreOrWarn()
	game := tui.NewSessionGame(gameCfg, store, logger)

	var scores tui.ScoreSaver
	if store != nil {
		scores = store
	}

	runErr := tui.Run(game, scores, runtimeConfig(width, height))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
