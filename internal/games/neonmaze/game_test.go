package neonmaze

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-maze/internal/config"
	platformcore "github.com/vovakirdan/neon-maze/internal/core"
	"github.com/vovakirdan/neon-maze/internal/games/neonmaze/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(Options{Config: config.DefaultNeonMazeConfig()})
	g.Reset(platformcore.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    30,
		TickRate:   60,
		Seed:       seed,
		MaxFrameMs: 100,
	})
	return g
}

func press(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestConfirmStartsGame(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(press())
	if g.Engine().State().Status != core.StatusMenu {
		t.Fatalf("expected menu before confirm, got %v", g.Engine().State().Status)
	}

	g.Step(press(platformcore.ActionConfirm))
	if g.Engine().State().Status != core.StatusPlaying {
		t.Errorf("expected playing after confirm, got %v", g.Engine().State().Status)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(platformcore.ActionConfirm))

	res := g.Step(press(platformcore.ActionPause))
	if !res.State.Paused {
		t.Error("expected paused state after pause action")
	}
	res = g.Step(press(platformcore.ActionPause))
	if res.State.Paused {
		t.Error("expected unpaused state after second pause action")
	}
}

func TestHeldDirectionKeepsMoving(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(platformcore.ActionConfirm))
	g.Engine().State().Pursuers = nil

	// About one second of a held key is five tiles at base speed.
	for i := 0; i < 60; i++ {
		g.Step(press(platformcore.ActionLeft))
	}

	pos := g.Engine().State().Player.Pos
	if pos.Y != 16 || pos.X > 6 {
		t.Errorf("expected player around (6,16) after a held left, got %v", pos)
	}
}

func TestConfirmAdvancesRound(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(platformcore.ActionConfirm))
	g.Engine().State().Status = core.StatusRoundClear

	g.Step(press(platformcore.ActionConfirm))
	s := g.Engine().State()
	if s.Round != 2 || s.Status != core.StatusPlaying {
		t.Errorf("expected round 2 playing, got round %d %v", s.Round, s.Status)
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(platformcore.ActionConfirm))
	s := g.Engine().State()
	s.Status = core.StatusGameOver
	s.Score = 120

	st := g.State()
	if !st.GameOver || st.Score != 120 {
		t.Errorf("State() = %+v, expected game over with 120", st)
	}

	g.Step(press(platformcore.ActionConfirm))
	if g.State().GameOver {
		t.Error("confirm should restart after game over")
	}
}

func TestFrameMsFromTickRate(t *testing.T) {
	g := New(Options{Config: config.DefaultNeonMazeConfig()})
	g.Reset(platformcore.RuntimeConfig{TickRate: 5, MaxFrameMs: 100})
	if g.dtMs != 100 {
		t.Errorf("dtMs = %v, expected clamp to 100", g.dtMs)
	}
}

func TestRenderMenu(t *testing.T) {
	g := newTestGame(t, 1)
	screen := platformcore.NewScreen(80, 30)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Press Enter to start") {
		t.Error("menu overlay missing")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(press(platformcore.ActionConfirm))
	screen := platformcore.NewScreen(80, 30)
	g.Render(screen)

	s := g.Engine().State()
	ox := (80 - s.Grid.W*cellW) / 2
	cell := screen.GetCell(ox+s.Player.Pos.X*cellW, hudHeight+s.Player.Pos.Y)
	if cell.Rune != PlayerChar {
		t.Errorf("expected player glyph at spawn, got %q", cell.Rune)
	}
	if !strings.Contains(screen.Row(1), "dash ready") {
		t.Errorf("effects line = %q, expected dash ready", screen.Row(1))
	}
	if c := screen.GetCell(ox, hudHeight); c.Rune != WallChar {
		t.Errorf("expected wall at maze corner, got %q", c.Rune)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	screen := platformcore.NewScreen(40, 20)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}
}
