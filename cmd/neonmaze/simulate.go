package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-maze/internal/games/neonmaze"
	mazecore "github.com/vovakirdan/neon-maze/internal/games/neonmaze/core"
)

var (
	flagTicks   int
	flagDtMs    float64
	flagRestart bool
	flagRecord  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the engine without a terminal",
	Long: `Run Neon Maze headless with a seeded autopilot that turns at random
and dashes now and then. Rounds advance on their own. The final state is
printed as a text dump.

With --record, every finished run is saved to the scores database and the
best-ever score is kept up to date.

Examples:
  neonmaze simulate
  neonmaze simulate --ticks 20000 --seed 7 --restart
  neonmaze simulate --dt 33 --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().Float64Var(&flagDtMs, "dt", 0, "Milliseconds per tick (0 = 1000/fps clamped to --max-frame-ms)")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new game after game over")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save finished runs to the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	if flagTicks <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must be positive")
		os.Exit(1)
	}

	dt := flagDtMs
	if dt <= 0 {
		dt = runtimeConfig(0, 0).FrameMs()
	}

	gameCfg := loadGameConfig()
	logger, closeLog := engineLogger()
	defer closeLog()

	opts := mazecore.Options{
		Config: gameCfg,
		Seed:   flagSeed,
		Logger: logger,
	}

	var onRun func(score int)
	if flagRecord {
		store := openStoreOrWarn()
		if store != nil {
			defer store.Close()
			opts.Store = store
			onRun = func(score int) {
				if score <= 0 {
					return
				}
				if _, err := store.SaveScore(neonmaze.ID, score); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				}
			}
		}
	}

	engine := mazecore.NewEngine(opts)
	res := neonmaze.Simulate(engine, neonmaze.SimOptions{
		Ticks:   flagTicks,
		DtMs:    dt,
		Seed:    flagSeed,
		Restart: flagRestart,
	}, onRun)

	fmt.Println(mazecore.RenderText(engine.State()))
	fmt.Println()
	fmt.Printf("ticks: %d  simulated: %.1fs  rounds: %d  runs: %v\n",
		res.Ticks, float64(res.Ticks)*dt/1000, res.RoundsSeen, res.Runs)
}
