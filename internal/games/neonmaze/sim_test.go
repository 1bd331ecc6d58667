package neonmaze

import (
	"testing"

	"github.com/vovakirdan/neon-maze/internal/config"
	"github.com/vovakirdan/neon-maze/internal/games/neonmaze/core"
)

// deadlyConfig makes game overs come quickly.
func deadlyConfig() config.NeonMazeConfig {
	cfg := config.DefaultNeonMazeConfig()
	cfg.Player.Lives = 1
	cfg.Pursuers.BaseSpeed = 12
	return cfg
}

func TestSimulateRunsRequestedTicks(t *testing.T) {
	e := core.NewEngine(core.Options{Config: config.DefaultNeonMazeConfig(), Seed: 3})

	res := Simulate(e, SimOptions{Ticks: 300, DtMs: 1000.0 / 60, Seed: 3, Restart: true}, nil)

	if res.Ticks != 300 {
		t.Errorf("Ticks = %d, want 300", res.Ticks)
	}
	if res.RoundsSeen < 1 {
		t.Errorf("RoundsSeen = %d, want at least 1", res.RoundsSeen)
	}
	if e.State().Status == core.StatusMenu {
		t.Error("simulation should have left the menu")
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	run := func() string {
		e := core.NewEngine(core.Options{Config: config.DefaultNeonMazeConfig(), Seed: 11})
		Simulate(e, SimOptions{Ticks: 2000, DtMs: 20, Seed: 5, Restart: true}, nil)
		return core.RenderText(e.State())
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seeds gave different dumps:\n%s\n---\n%s", a, b)
	}
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	e := core.NewEngine(core.Options{Config: deadlyConfig(), Seed: 1})

	var reported []int
	res := Simulate(e, SimOptions{Ticks: 100000, DtMs: 20, Seed: 1}, func(score int) {
		reported = append(reported, score)
	})

	if len(res.Runs) != 1 {
		t.Fatalf("Runs = %v, want exactly one", res.Runs)
	}
	if res.Ticks >= 100000 {
		t.Error("simulation should stop early without restart")
	}
	if len(reported) != 1 || reported[0] != res.Runs[0] {
		t.Errorf("reported = %v, runs = %v", reported, res.Runs)
	}
	if e.State().Status != core.StatusGameOver {
		t.Errorf("status = %v, want gameOver", e.State().Status)
	}
}

func TestSimulateRestarts(t *testing.T) {
	e := core.NewEngine(core.Options{Config: deadlyConfig(), Seed: 2})

	res := Simulate(e, SimOptions{Ticks: 100000, DtMs: 20, Seed: 2, Restart: true}, nil)

	if res.Ticks != 100000 {
		t.Errorf("Ticks = %d, want 100000", res.Ticks)
	}
	if len(res.Runs) < 2 {
		t.Errorf("expected several finished runs, got %v", res.Runs)
	}
}
