package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-maze/internal/games/neonmaze"
	"github.com/vovakirdan/neon-maze/internal/platform/tui"
	"github.com/vovakirdan/neon-maze/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished runs and the best-ever score.

Examples:
  neonmaze scores
  neonmaze scores --limit 20
  neonmaze scores --interactive
  neonmaze scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs (the best-ever score is kept)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(neonmaze.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, neonmaze.ID, neonmaze.Title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(neonmaze.ID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", neonmaze.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonmaze play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(neonmaze.ID); err == nil {
		fmt.Printf("Runs: %d  Average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
	cfg := loadGameConfig()
	if best, err := store.LoadHighScore(cfg.Scoring.HighScoreKey); err == nil {
		fmt.Printf("Best ever: %d\n", best)
	}
}
