package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "neonmaze.yaml"

// LoadNeonMaze loads Neon Maze configuration.
// Search order: customPath -> ~/.neonmaze/configs/neonmaze.yaml -> ./configs/neonmaze.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadNeonMaze(customPath string) (NeonMazeConfig, error) {
	cfg := DefaultNeonMazeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", FileName)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultNeonMazeConfig()
	if err := yaml.Unmarshal(defaultNeonMazeYAML, &embedded); err != nil {
		return DefaultNeonMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads and decodes path over the defaults. Missing or broken files
// report false so the search can continue.
func tryLoad(path string) (NeonMazeConfig, bool) {
	cfg := DefaultNeonMazeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonmaze", "configs", filename)
}
