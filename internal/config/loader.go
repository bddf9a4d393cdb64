package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
// Only an explicit customPath can produce an error.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePlatformer(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("platformer.yaml"),
		filepath.Join("configs", "platformer.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parsePlatformer(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parsePlatformer(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil
	}
	return cfg, nil
}

func parsePlatformer(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPlatformerPreset adjusts the config for a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}
