// Package neonmaze adapts the Neon Maze engine to the terminal platform:
// fixed ticks become millisecond deltas, input frames become engine calls
// and the state is drawn into a colored screen buffer.
package neonmaze

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-maze/internal/config"
	platformcore "github.com/vovakirdan/neon-maze/internal/core"
	"github.com/vovakirdan/neon-maze/internal/games/neonmaze/core"
)

const (
	// ID is the score storage key for finished runs.
	ID = "neonmaze"
	// Title is the display name.
	Title = "Neon Maze"
)

// Options configures the engine behind the game.
type Options struct {
	Config config.NeonMazeConfig
	Store  core.HighScoreStore
	Logger *log.Logger
}

// Game implements platformcore.Game on top of core.Engine.
type Game struct {
	opts   Options
	engine *core.Engine

	// Milliseconds fed to the engine per tick
	dtMs float64

	// Animation frame counter, advanced once per Step
	frame uint64
}

var _ platformcore.Game = (*Game)(nil)

// New creates a game. Reset must be called before the first Step.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Reset builds a fresh engine in the menu.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.engine = core.NewEngine(core.Options{
		Config: g.opts.Config,
		Store:  g.opts.Store,
		Seed:   cfg.Seed,
		Logger: g.opts.Logger,
	})
	g.dtMs = cfg.FrameMs()
	g.frame = 0
}

// Engine exposes the engine for diagnostics.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Step drains one input frame into the engine and advances it by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.frame++

	if in.Has(platformcore.ActionPause) {
		g.engine.TogglePause()
	}
	if in.Has(platformcore.ActionConfirm) {
		switch g.engine.State().Status {
		case core.StatusMenu, core.StatusGameOver:
			g.engine.StartGame()
		case core.StatusRoundClear:
			g.engine.NextRound()
		case core.StatusPaused:
			g.engine.Resume()
		}
	}

	if g.engine.State().Status == core.StatusPlaying {
		g.applyDirection(in.Direction())
		if in.Has(platformcore.ActionSkill) {
			g.engine.UseSkill(core.SkillDash)
		}
	}

	g.engine.Update(g.dtMs)
	return platformcore.StepResult{State: g.State()}
}

// applyDirection forwards a turn request. Repeats of the current facing are
// dropped while nothing is buffered, since committing a turn resets the
// sub-tile progress and held keys would stall the player.
func (g *Game) applyDirection(a platformcore.Action) {
	d := toDirection(a)
	if d == core.DirNone {
		return
	}
	p := g.engine.State().Player
	if d == p.Facing && p.Next == core.DirNone {
		return
	}
	g.engine.SetDirection(d)
}

func toDirection(a platformcore.Action) core.Direction {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp
	case platformcore.ActionDown:
		return core.DirDown
	case platformcore.ActionLeft:
		return core.DirLeft
	case platformcore.ActionRight:
		return core.DirRight
	default:
		return core.DirNone
	}
}

// State returns the platform view of the engine state.
func (g *Game) State() platformcore.GameState {
	s := g.engine.State()
	return platformcore.GameState{
		Score:    s.Score,
		GameOver: s.Status == core.StatusGameOver,
		Paused:   s.Status == core.StatusPaused,
	}
}
