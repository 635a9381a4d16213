package config

import (
	_ "embed"
)

//go:embed defaults/digger.yaml
var defaultDiggerYAML []byte

// DefaultDiggerConfig returns the default digger configuration.
func DefaultDiggerConfig() DiggerConfig {
	return DiggerConfig{
		Physics: DiggerPhysics{
			CellSize:          20,
			PlayerSpeed:       80,
			GuardSpeed:        50,
			FallSpeed:         120,
			AlignTolerance:    0.5,
			CollisionFraction: 0.6,
		},
		Timers: DiggerTimers{
			DigCooldown:  0.5,
			Open:         6.0,
			Fill:         1.0,
			TrapMargin:   0.5,
			ClimbRetry:   0.5,
			GuardRespawn: 3.0,
		},
		Scoring: DiggerScoring{
			Gold:          250,
			GuardTrap:     75,
			LevelComplete: 1500,
		},
		Gameplay: DiggerGameplay{
			Lives:           3,
			MaxDT:           0.05,
			LevelClearDelay: 45,
		},
		Input: DiggerInput{
			HoldMS: 180,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				GuardSpeedMultiplier: 0.6,
				OpenReduction:        2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "digger", "digger_endless":
		return defaultDiggerYAML
	default:
		return nil
	}
}
