// Package config loads game configuration from YAML and manages difficulty
// progression.
package config

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics  `yaml:"physics"`
	Gameplay   PlatformerGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPhysics holds the simulation tuning, in tiles and seconds.
type PlatformerPhysics struct {
	PlayerSpeed float64 `yaml:"player_speed"` // Horizontal speed, tiles/s
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, tiles/s²
	JumpSpeed   float64 `yaml:"jump_speed"`   // Initial upward speed of a jump
	WobbleSpeed float64 `yaml:"wobble_speed"` // Coin wobble, radians/s
	WobbleDist  float64 `yaml:"wobble_dist"`  // Coin wobble amplitude, tiles
	MaxStep     float64 `yaml:"max_step"`     // Longest physics sub-step, s
	FinishDelay float64 `yaml:"finish_delay"` // Time shown after a level ends, s
}

// Params converts the physics section to engine tuning.
func (p PlatformerPhysics) Params() engine.Params {
	return engine.Params{
		PlayerSpeed: p.PlayerSpeed,
		Gravity:     p.Gravity,
		JumpSpeed:   p.JumpSpeed,
		WobbleSpeed: p.WobbleSpeed,
		WobbleDist:  p.WobbleDist,
		MaxStep:     p.MaxStep,
		FinishDelay: p.FinishDelay,
	}
}

// PlatformerGameplay defines the rules around the simulation.
type PlatformerGameplay struct {
	Lives        int     `yaml:"lives"`
	CoinScore    int     `yaml:"coin_score"`
	LevelScore   int     `yaml:"level_score"`
	MaxFrameTime float64 `yaml:"max_frame_time"` // Upper bound on one tick's delta, s
	CameraMargin float64 `yaml:"camera_margin"`  // Fraction of the view kept around the player
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "levels", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Levels/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to game speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a name to a preset. Unknown names are rejected.
func ParsePreset(name string) (DifficultyPreset, bool) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
