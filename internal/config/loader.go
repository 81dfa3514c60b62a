package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "defense.yaml"

// LoadDefense loads the simulation balance.
// Search order: customPath -> ~/.defense/configs/defense.yaml -> ./configs/defense.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadDefense(customPath string) (DefenseConfig, error) {
	cfg := DefaultDefenseConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local one
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	var embedded DefenseConfig
	if err := yaml.Unmarshal(defaultDefenseYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultDefenseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (DefenseConfig, bool) {
	cfg := DefaultDefenseConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.defense, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".defense")
}

// ApplyDefensePreset modifies the config based on a difficulty preset.
func ApplyDefensePreset(cfg *DefenseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Economy.Lives = 20
		cfg.Economy.StartingHoney = 300
	case DifficultyHard:
		cfg.Economy.Lives = 5
		cfg.Waves.InitialHardness = 2
	case DifficultyFixed:
		cfg.Waves.HardenEvery = 0
	}
}
