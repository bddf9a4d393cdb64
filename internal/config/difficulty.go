package config

import "github.com/vovakirdan/tui-platformer/internal/core"

// DifficultyManager turns progress into a difficulty level and game speed.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Progress is what progression can be measured by.
type Progress struct {
	Levels int // Levels cleared
	Score  int
	Ticks  int
}

// Level returns the difficulty level in [0, 1].
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var n int
	switch d.cfg.Progression.Type {
	case "levels":
		n = p.Levels
	case "score":
		n = p.Score
	case "time":
		n = p.Ticks
	default:
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := core.ClampF(float64(n)/maxAt, 0, 1)

	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed scales base by the current difficulty:
// base at level 0, base*(1+speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}
