package config

import (
	_ "embed"
)

//go:embed defaults/neonmaze.yaml
var defaultNeonMazeYAML []byte

// DefaultNeonMazeConfig returns the built-in Neon Maze tuning.
func DefaultNeonMazeConfig() NeonMazeConfig {
	return NeonMazeConfig{
		Player: PlayerConfig{
			Speed:            5,
			Lives:            3,
			InvulnerableMs:   2000,
			InitialDirection: "left",
		},
		Pursuers: PursuerConfig{
			BaseSpeed:    3,
			FrozenFactor: 0.5,
		},
		Scoring: ScoringConfig{
			Pellet:       10,
			PowerPellet:  50,
			HighScoreKey: "neon_maze_high_score",
		},
		Effects: EffectsConfig{
			FreezeMs:       4000,
			DashMs:         1200,
			DashCooldownMs: 10000,
			ComboMs:        6000,
			ComboStep:      0.5,
			ComboMax:       3,
		},
		Items: ItemsConfig{
			SpawnIntervalMs: 5000,
		},
		Rounds: RoundsConfig{
			MaxPursuers:     4,
			SpeedScale:      0.15,
			SpawnChance:     0.3,
			SpawnChanceStep: 0.05,
			SpawnChanceMax:  0.6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultNeonMazeYAML
}
