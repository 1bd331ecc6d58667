package neonmaze

import (
	"math/rand"

	"github.com/vovakirdan/neon-maze/internal/games/neonmaze/core"
)

// Autopilot odds per tick
const (
	autoTurnChance = 0.08
	autoDashChance = 0.01
)

// SimOptions configures a headless run.
type SimOptions struct {
	Ticks   int
	DtMs    float64
	Seed    int64 // drives the autopilot, independent of the engine seed
	Restart bool  // start a new game after game over instead of stopping
}

// SimResult summarizes a headless run.
type SimResult struct {
	Ticks      int   // ticks actually simulated
	Runs       []int // scores of finished games, in order
	RoundsSeen int   // highest round reached
}

// Simulate drives the engine with a seeded autopilot that turns at random
// and dashes now and then. Rounds advance on their own; every game over is
// reported to onRun (which may be nil) and recorded in the result.
func Simulate(e *core.Engine, opts SimOptions, onRun func(score int)) SimResult {
	rng := rand.New(rand.NewSource(opts.Seed))
	res := SimResult{}

	for res.Ticks < opts.Ticks {
		s := e.State()
		switch s.Status {
		case core.StatusMenu:
			e.StartGame()
		case core.StatusPaused:
			e.Resume()
		case core.StatusRoundClear:
			e.NextRound()
		case core.StatusGameOver:
			res.Runs = append(res.Runs, s.Score)
			if onRun != nil {
				onRun(s.Score)
			}
			if !opts.Restart {
				return res
			}
			e.StartGame()
		}

		if rng.Float64() < autoTurnChance {
			e.SetDirection(core.Directions[rng.Intn(len(core.Directions))])
		}
		if rng.Float64() < autoDashChance {
			e.UseSkill(core.SkillDash)
		}

		e.Update(opts.DtMs)
		res.Ticks++
		res.RoundsSeen = max(res.RoundsSeen, e.State().Round)
	}

	// A game that ended on the very last tick still counts.
	if s := e.State(); s.Status == core.StatusGameOver {
		res.Runs = append(res.Runs, s.Score)
		if onRun != nil {
			onRun(s.Score)
		}
	}
	return res
}
