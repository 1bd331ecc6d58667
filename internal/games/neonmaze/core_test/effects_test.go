package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-maze/internal/config"
	"github.com/vovakirdan/neon-maze/internal/games/neonmaze/core"
)

func effectsConfig() config.EffectsConfig {
	return config.DefaultNeonMazeConfig().Effects
}

func TestNewEffectDurations(t *testing.T) {
	cfg := effectsConfig()

	tests := []struct {
		kind core.EffectKind
		name string
		want float64
	}{
		{core.EffectFreeze, "neon_freeze", 4000},
		{core.EffectDash, "phase_dash", 1200},
		{core.EffectCombo, "combo_beacon", 6000},
	}
	for _, tc := range tests {
		e := core.NewEffect(tc.kind, cfg)
		if e.Kind != tc.kind || e.RemainingMs != tc.want {
			t.Errorf("NewEffect(%v) = %+v, expected %v ms", tc.kind, e, tc.want)
		}
		if tc.kind.String() != tc.name {
			t.Errorf("String() = %q, expected %q", tc.kind.String(), tc.name)
		}
	}
}

func TestResolveEffectsFreezeIsRecomputed(t *testing.T) {
	cfg := effectsConfig()
	pursuers := []core.Pursuer{{ID: 0}, {ID: 1, Frozen: true}}
	player := &core.Player{}

	effects := []core.Effect{core.NewEffect(core.EffectFreeze, cfg)}
	core.ResolveEffects(effects, pursuers, player, cfg)
	core.ResolveEffects(effects, pursuers, player, cfg)
	for _, p := range pursuers {
		if !p.Frozen {
			t.Errorf("pursuer %d should be frozen while freeze is active", p.ID)
		}
	}

	core.ResolveEffects(nil, pursuers, player, cfg)
	for _, p := range pursuers {
		if p.Frozen {
			t.Errorf("pursuer %d should be unfrozen once freeze is gone", p.ID)
		}
	}
}

func TestResolveEffectsDashFlag(t *testing.T) {
	cfg := effectsConfig()
	player := &core.Player{}

	core.ResolveEffects([]core.Effect{core.NewEffect(core.EffectDash, cfg)}, nil, player, cfg)
	if !player.Dashing {
		t.Error("dash effect should set the dash flag")
	}

	core.ResolveEffects(nil, nil, player, cfg)
	if player.Dashing {
		t.Error("dash flag should clear without a dash effect")
	}
}

func TestResolveEffectsCombo(t *testing.T) {
	cfg := effectsConfig()
	combo := core.NewEffect(core.EffectCombo, cfg)

	tests := []struct {
		name    string
		effects []core.Effect
		want    float64
	}{
		{"none", nil, 1.0},
		{"one", []core.Effect{combo}, 1.5},
		{"two", []core.Effect{combo, combo}, 2.0},
		{"capped", []core.Effect{combo, combo, combo, combo, combo, combo}, 3.0},
		{"other kinds ignored", []core.Effect{core.NewEffect(core.EffectFreeze, cfg), combo}, 1.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Repeated calls must not accumulate.
			var got float64
			for i := 0; i < 3; i++ {
				got = core.ResolveEffects(tc.effects, nil, &core.Player{}, cfg)
			}
			if got != tc.want {
				t.Errorf("combo = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestTickEffectsPrunes(t *testing.T) {
	effects := []core.Effect{
		{Kind: core.EffectFreeze, RemainingMs: 100},
		{Kind: core.EffectCombo, RemainingMs: 150},
	}

	effects = core.TickEffects(effects, 100)
	if len(effects) != 1 || effects[0].Kind != core.EffectCombo {
		t.Fatalf("expected only combo to survive, got %+v", effects)
	}
	if effects[0].RemainingMs != 50 {
		t.Errorf("RemainingMs = %v, expected 50", effects[0].RemainingMs)
	}

	effects = core.TickEffects(effects, 60)
	if len(effects) != 0 {
		t.Errorf("expected all effects expired, got %+v", effects)
	}
}

func TestAddEffectRefreshesSameKind(t *testing.T) {
	cfg := effectsConfig()
	effects := []core.Effect{{Kind: core.EffectFreeze, RemainingMs: 500}}

	effects = core.AddEffect(effects, core.NewEffect(core.EffectFreeze, cfg))
	if len(effects) != 1 || effects[0].RemainingMs != 4000 {
		t.Errorf("expected a single refreshed freeze, got %+v", effects)
	}

	effects = core.AddEffect(effects, core.NewEffect(core.EffectCombo, cfg))
	if len(effects) != 2 {
		t.Errorf("expected distinct kinds to coexist, got %+v", effects)
	}
	if !core.HasEffect(effects, core.EffectCombo) || core.HasEffect(effects, core.EffectDash) {
		t.Error("HasEffect reported the wrong kinds")
	}
}

func TestTrySpawnItemChance(t *testing.T) {
	g := core.NewGrid()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		if _, ok := core.TrySpawnItem(g, nil, 0, rng); ok {
			t.Fatal("chance 0 must never spawn")
		}
	}
	if _, ok := core.TrySpawnItem(g, nil, 1, rng); !ok {
		t.Error("chance 1 should spawn on a grid with empty tiles")
	}
}

func TestTrySpawnItemLimit(t *testing.T) {
	g := core.NewGrid()
	rng := rand.New(rand.NewSource(1))
	items := []core.Item{
		{Kind: core.EffectFreeze, Pos: core.P(8, 7)},
		{Kind: core.EffectDash, Pos: core.P(12, 7)},
	}

	if _, ok := core.TrySpawnItem(g, items, 1, rng); ok {
		t.Error("no item may spawn while MaxItems are on the board")
	}
}

func TestTrySpawnItemPlacement(t *testing.T) {
	g := core.ParseGrid([]string{
		"#####",
		"#. H#",
		"#o #",
		"#####",
	})
	rng := rand.New(rand.NewSource(3))

	// (2,1) and (2,2) are the only empty tiles.
	first, ok := core.TrySpawnItem(g, nil, 1, rng)
	if !ok {
		t.Fatal("expected an item")
	}
	if first.Pos != core.P(2, 1) && first.Pos != core.P(2, 2) {
		t.Fatalf("item placed on non-empty tile %v", first.Pos)
	}

	second, ok := core.TrySpawnItem(g, []core.Item{first}, 1, rng)
	if !ok {
		t.Fatal("expected a second item")
	}
	if second.Pos == first.Pos {
		t.Error("second item placed on an occupied tile")
	}

	full := core.ParseGrid([]string{"#.o#"})
	if _, ok := core.TrySpawnItem(full, nil, 1, rng); ok {
		t.Error("expected no item without empty tiles")
	}
}

func TestTrySpawnItemKinds(t *testing.T) {
	g := core.NewGrid()
	rng := rand.New(rand.NewSource(42))
	seen := make(map[core.EffectKind]bool)

	for i := 0; i < 200; i++ {
		it, ok := core.TrySpawnItem(g, nil, 1, rng)
		if !ok {
			t.Fatal("expected an item")
		}
		if g.At(it.Pos) != core.TileEmpty {
			t.Fatalf("item on %v tile at %v", g.At(it.Pos), it.Pos)
		}
		seen[it.Kind] = true
	}
	if len(seen) != len(core.EffectKinds) {
		t.Errorf("expected all %d kinds over 200 spawns, saw %d", len(core.EffectKinds), len(seen))
	}
}
