package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDigger loads digger configuration.
// Search order: customPath -> ~/.arcade/configs/digger.yaml -> ./configs/digger.yaml -> embedded default
// Files only need to name the values they change; the rest keep their defaults.
func LoadDigger(customPath string) (DiggerConfig, error) {
	cfg := DefaultDiggerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultDiggerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.sanitize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("digger.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "digger.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDiggerYAML, &cfg); err != nil {
		return DefaultDiggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.sanitize()
	return cfg, nil
}

func tryLoad(path string) (DiggerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DiggerConfig{}, false
	}
	cfg := DefaultDiggerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DiggerConfig{}, false
	}
	cfg.sanitize()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// sanitize replaces values the simulation cannot run with.
func (c *DiggerConfig) sanitize() {
	def := DefaultDiggerConfig()
	if c.Physics.CellSize <= 0 {
		c.Physics.CellSize = def.Physics.CellSize
	}
	if c.Physics.PlayerSpeed <= 0 {
		c.Physics.PlayerSpeed = def.Physics.PlayerSpeed
	}
	if c.Physics.GuardSpeed <= 0 {
		c.Physics.GuardSpeed = def.Physics.GuardSpeed
	}
	if c.Physics.FallSpeed <= 0 {
		c.Physics.FallSpeed = def.Physics.FallSpeed
	}
	if c.Gameplay.Lives <= 0 {
		c.Gameplay.Lives = def.Gameplay.Lives
	}
	if c.Gameplay.MaxDT <= 0 {
		c.Gameplay.MaxDT = def.Gameplay.MaxDT
	}
	if c.Input.HoldMS < 0 {
		c.Input.HoldMS = 0
	}
}

// Marshal renders the configuration as YAML.
func (c DiggerConfig) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}

// ApplyDiggerPreset modifies the config based on a difficulty preset.
func ApplyDiggerPreset(cfg *DiggerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.GuardSpeed = 40
		cfg.Timers.Open = 8.0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.GuardSpeed = 60
		cfg.Timers.Open = 4.5
	}
}
