// Package config provides YAML-based game configuration loading and
// round scaling for Neon Maze.
package config

// NeonMazeConfig contains all tuning for the Neon Maze engine.
type NeonMazeConfig struct {
	Player   PlayerConfig  `yaml:"player"`
	Pursuers PursuerConfig `yaml:"pursuers"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Effects  EffectsConfig `yaml:"effects"`
	Items    ItemsConfig   `yaml:"items"`
	Rounds   RoundsConfig  `yaml:"rounds"`
}

// PlayerConfig defines player movement and life parameters.
type PlayerConfig struct {
	Speed            float64 `yaml:"speed"` // tiles per second
	Lives            int     `yaml:"lives"`
	InvulnerableMs   float64 `yaml:"invulnerable_ms"`
	InitialDirection string  `yaml:"initial_direction"`
}

// PursuerConfig defines pursuer parameters.
type PursuerConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`    // tiles per second
	FrozenFactor float64 `yaml:"frozen_factor"` // speed factor while frozen
}

// ScoringConfig defines pellet values.
type ScoringConfig struct {
	Pellet       int    `yaml:"pellet"`
	PowerPellet  int    `yaml:"power_pellet"`
	HighScoreKey string `yaml:"high_score_key"`
}

// EffectsConfig defines power-up durations and limits.
type EffectsConfig struct {
	FreezeMs       float64 `yaml:"freeze_ms"`
	DashMs         float64 `yaml:"dash_ms"`
	DashCooldownMs float64 `yaml:"dash_cooldown_ms"`
	ComboMs        float64 `yaml:"combo_ms"`
	ComboStep      float64 `yaml:"combo_step"`
	ComboMax       float64 `yaml:"combo_max"`
}

// ItemsConfig defines item drop spawning.
type ItemsConfig struct {
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
}

// RoundsConfig defines how each round scales over the previous one.
type RoundsConfig struct {
	MaxPursuers     int     `yaml:"max_pursuers"`
	SpeedScale      float64 `yaml:"speed_scale"`       // added to the pursuer multiplier per round
	SpawnChance     float64 `yaml:"spawn_chance"`      // item spawn chance in round 1
	SpawnChanceStep float64 `yaml:"spawn_chance_step"` // added per round
	SpawnChanceMax  float64 `yaml:"spawn_chance_max"`
}
