package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in platformer configuration.
// It matches defaults/platformer.yaml.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			PlayerSpeed: 7,
			Gravity:     30,
			JumpSpeed:   17,
			WobbleSpeed: 8,
			WobbleDist:  0.07,
			MaxStep:     0.05,
			FinishDelay: 1,
		},
		Gameplay: PlatformerGameplay{
			Lives:        3,
			CoinScore:    10,
			LevelScore:   100,
			MaxFrameTime: 0.1,
			CameraMargin: 0.33,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "levels",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.25,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default config for a game,
// or nil if there is none.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer", "platformer_practice":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
