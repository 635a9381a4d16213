// Package config provides YAML-based game configuration loading and
// difficulty management for the digger.
package config

// DiggerConfig contains all configuration for the digger.
type DiggerConfig struct {
	Physics    DiggerPhysics    `yaml:"physics"`
	Timers     DiggerTimers     `yaml:"timers"`
	Scoring    DiggerScoring    `yaml:"scoring"`
	Gameplay   DiggerGameplay   `yaml:"gameplay"`
	Input      DiggerInput      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DiggerPhysics defines movement parameters. Distances are in pixels,
// speeds in pixels per second.
type DiggerPhysics struct {
	CellSize          float64 `yaml:"cell_size"`
	PlayerSpeed       float64 `yaml:"player_speed"`
	GuardSpeed        float64 `yaml:"guard_speed"`
	FallSpeed         float64 `yaml:"fall_speed"`
	AlignTolerance    float64 `yaml:"align_tolerance"`
	CollisionFraction float64 `yaml:"collision_fraction"` // Fraction of a cell at which guards catch the player
}

// DiggerTimers defines durations in seconds.
type DiggerTimers struct {
	DigCooldown  float64 `yaml:"dig_cooldown"`
	Open         float64 `yaml:"open"`
	Fill         float64 `yaml:"fill"`
	TrapMargin   float64 `yaml:"trap_margin"`
	ClimbRetry   float64 `yaml:"climb_retry"`
	GuardRespawn float64 `yaml:"guard_respawn"`
}

// DiggerScoring defines point values.
type DiggerScoring struct {
	Gold          int `yaml:"gold"`
	GuardTrap     int `yaml:"guard_trap"`
	LevelComplete int `yaml:"level_complete"`
}

// DiggerGameplay defines session rules.
type DiggerGameplay struct {
	Lives           int     `yaml:"lives"`
	MaxDT           float64 `yaml:"max_dt"`            // Upper bound for one simulation step in seconds
	LevelClearDelay int     `yaml:"level_clear_delay"` // Ticks to show the cleared level before advancing
}

// DiggerInput defines how terminal key presses become held directions.
type DiggerInput struct {
	HoldMS int `yaml:"hold_ms"` // How long a direction stays held after its last key press
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
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level number or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GuardSpeedMultiplier float64 `yaml:"guard_speed_multiplier"` // Multiplier added to guard speed at max difficulty
	OpenReduction        float64 `yaml:"open_reduction"`         // Seconds removed from the hole open time at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
