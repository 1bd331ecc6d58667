package core

import (
	"math/rand"

	"github.com/vovakirdan/neon-maze/internal/config"
)

// MaxItems is the most item drops that can be on the board at once.
const MaxItems = 2

// EffectKind identifies a power-up. Items and active effects share the same kinds.
type EffectKind uint8

const (
	EffectFreeze EffectKind = iota // halves pursuer speed
	EffectDash                     // lets the player pass through walls
	EffectCombo                    // raises the score multiplier
)

// EffectKinds lists every kind in the order used for random picks.
var EffectKinds = [3]EffectKind{EffectFreeze, EffectDash, EffectCombo}

// String returns the effect type name.
func (k EffectKind) String() string {
	switch k {
	case EffectFreeze:
		return "neon_freeze"
	case EffectDash:
		return "phase_dash"
	case EffectCombo:
		return "combo_beacon"
	default:
		return "unknown"
	}
}

// Effect is a power-up currently in force.
type Effect struct {
	Kind        EffectKind
	RemainingMs float64
}

// Item is a power-up lying on the board.
type Item struct {
	Kind EffectKind
	Pos  Position
}

// NewEffect creates an effect with the configured duration for its kind.
func NewEffect(kind EffectKind, cfg config.EffectsConfig) Effect {
	e := Effect{Kind: kind}
	switch kind {
	case EffectFreeze:
		e.RemainingMs = cfg.FreezeMs
	case EffectDash:
		e.RemainingMs = cfg.DashMs
	case EffectCombo:
		e.RemainingMs = cfg.ComboMs
	}
	return e
}

// AddEffect activates e. An effect of the same kind that is already running
// is extended to the longer of the two durations instead of being duplicated.
func AddEffect(effects []Effect, e Effect) []Effect {
	for i := range effects {
		if effects[i].Kind == e.Kind {
			effects[i].RemainingMs = max(effects[i].RemainingMs, e.RemainingMs)
			return effects
		}
	}
	return append(effects, e)
}

// HasEffect reports whether an effect of kind is active.
func HasEffect(effects []Effect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// TickEffects decrements every effect by dtMs and drops the expired ones.
// The slice is filtered in place.
func TickEffects(effects []Effect, dtMs float64) []Effect {
	kept := effects[:0]
	for _, e := range effects {
		e.RemainingMs -= dtMs
		if e.RemainingMs > 0 {
			kept = append(kept, e)
		}
	}
	return kept
}

// ResolveEffects recomputes the state driven by the active effects: the
// frozen flag of every pursuer, the player's dash flag and the score combo
// multiplier, which is returned. Nothing accumulates between calls.
func ResolveEffects(effects []Effect, pursuers []Pursuer, player *Player, cfg config.EffectsConfig) float64 {
	frozen := false
	dashing := false
	combo := 1.0
	for _, e := range effects {
		switch e.Kind {
		case EffectFreeze:
			frozen = true
		case EffectDash:
			dashing = true
		case EffectCombo:
			combo = min(combo+cfg.ComboStep, cfg.ComboMax)
		}
	}

	for i := range pursuers {
		pursuers[i].Frozen = frozen
	}
	if player != nil {
		player.Dashing = dashing
	}
	return combo
}

// TrySpawnItem rolls against chance and, on success, drops an item of a
// random kind on a random empty tile that holds no item yet. It reports
// false when the roll fails, the board already holds MaxItems or no tile
// is eligible.
func TrySpawnItem(g *Grid, items []Item, chance float64, rng *rand.Rand) (Item, bool) {
	if rng.Float64() >= chance {
		return Item{}, false
	}
	if len(items) >= MaxItems {
		return Item{}, false
	}

	occupied := make(map[Position]bool, len(items))
	for _, it := range items {
		occupied[it.Pos] = true
	}

	var candidates []Position
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := Position{X: x, Y: y}
			if g.At(p) == TileEmpty && !occupied[p] {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return Item{}, false
	}

	pos := candidates[rng.Intn(len(candidates))]
	kind := EffectKinds[rng.Intn(len(EffectKinds))]
	return Item{Kind: kind, Pos: pos}, true
}
