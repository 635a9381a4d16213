package config

import "math"

// DifficultyManager calculates dynamic game parameters based on the
// current level or score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0). stage is the
// number of levels played so far, counting from 1.
func (d *DifficultyManager) Level(score int, stage int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = 1
		if maxAt > 1 {
			progress = float64(stage-1) / (maxAt - 1)
		}
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// GuardSpeed returns the guard speed for the current difficulty.
func (d *DifficultyManager) GuardSpeed(base float64, score int, stage int) float64 {
	level := d.Level(score, stage)
	// Speed increases from base to base * (1 + multiplier)
	return base * (1.0 + level*d.cfg.Scaling.GuardSpeedMultiplier)
}

// OpenDuration returns how long dug holes stay open at the current difficulty.
func (d *DifficultyManager) OpenDuration(base float64, score int, stage int) float64 {
	level := d.Level(score, stage)
	result := base - level*d.cfg.Scaling.OpenReduction
	if result < 2.0 { // Minimum time to trap a guard
		result = 2.0
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
