package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-maze/internal/games/neonmaze/core"
)

func TestRenderText(t *testing.T) {
	s := &core.State{
		Status: core.StatusPlaying,
		Round:  2,
		Score:  120,
		Lives:  3,
		Player: core.Player{Pos: core.P(1, 1), Facing: core.DirRight},
		Pursuers: []core.Pursuer{
			{Pos: core.P(3, 1)},
			{Pos: core.P(1, 1)}, // hidden under the player
		},
		Items:            []core.Item{{Kind: core.EffectCombo, Pos: core.P(2, 2)}},
		Effects:          []core.Effect{{Kind: core.EffectFreeze}, {Kind: core.EffectCombo}},
		PelletsRemaining: 2,
		Grid: core.ParseGrid([]string{
			"######",
			"#  . #",
			"#o H #",
			"######",
		}),
	}

	expected := strings.Join([]string{
		"status:playing round:2 score:120 lives:3",
		"player:(1,1) dir:right",
		"pursuers:2 pellets:2 effects:neon_freeze,combo_beacon",
		"######",
		"#P G #",
		"#OIH #",
		"######",
	}, "\n")

	if got := core.RenderText(s); got != expected {
		t.Errorf("RenderText mismatch:\n got:\n%s\nwant:\n%s", got, expected)
	}
}

func TestRenderTextNoEffects(t *testing.T) {
	s := &core.State{
		Status: core.StatusGameOver,
		Round:  1,
		Player: core.Player{Pos: core.P(0, 0), Facing: core.DirLeft},
		Grid:   core.ParseGrid([]string{" S"}),
	}

	lines := strings.Split(core.RenderText(s), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if lines[2] != "pursuers:0 pellets:0 effects:none" {
		t.Errorf("counts line = %q", lines[2])
	}
	// Spawn tiles have no marker of their own
	if lines[3] != "P " {
		t.Errorf("map row = %q, expected %q", lines[3], "P ")
	}
}
