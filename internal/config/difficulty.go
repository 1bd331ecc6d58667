package config

import "math"

// RoundScaling derives per-round parameters from the rounds section.
// Round numbers start at 1.
type RoundScaling struct {
	cfg RoundsConfig
}

// NewRoundScaling creates a scaler for the given round settings.
func NewRoundScaling(cfg RoundsConfig) RoundScaling {
	return RoundScaling{cfg: cfg}
}

// PursuerCount returns how many pursuers a round starts with: round+1, capped.
func (r RoundScaling) PursuerCount(round int) int {
	if round < 1 {
		round = 1
	}
	return min(round+1, r.cfg.MaxPursuers)
}

// SpeedMultiplier returns the pursuer speed multiplier for a round.
func (r RoundScaling) SpeedMultiplier(round int) float64 {
	if round < 1 {
		round = 1
	}
	return 1 + float64(round-1)*r.cfg.SpeedScale
}

// ItemSpawnChance returns the probability used by each timed item spawn attempt.
func (r RoundScaling) ItemSpawnChance(round int) float64 {
	if round < 1 {
		round = 1
	}
	chance := r.cfg.SpawnChance + float64(round-1)*r.cfg.SpawnChanceStep
	if r.cfg.SpawnChanceMax > 0 {
		chance = math.Min(chance, r.cfg.SpawnChanceMax)
	}
	return clampF(chance, 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
