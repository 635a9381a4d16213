// Package formats provides level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level file.
type Level struct {
	Def      engine.LevelDef
	Metadata map[string]string
}

// ErrNoRows is returned for a level file without any grid rows.
var ErrNoRows = errors.New("level has no rows")

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Rows) == 0 {
		return Level{}, ErrNoRows
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		Def: engine.LevelDef{
			ID:   yl.ID,
			Name: name,
			Rows: yl.Rows,
		},
		Metadata: yl.Metadata,
	}, nil
}

// EncodeYAML renders a level definition in the YAML file format.
func EncodeYAML(def engine.LevelDef) ([]byte, error) {
	out, err := yaml.Marshal(YAMLLevel{ID: def.ID, Name: def.Name, Rows: def.Rows})
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
