// Package levels provides the digger level table: the built-in campaign and
// level packs loaded from YAML files on disk.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
	"github.com/vovakirdan/tui-digger/internal/games/digger/levels/formats"
)

// ErrEmptyPack is returned when a directory holds no usable level files.
var ErrEmptyPack = errors.New("no level files found")

// Level is a level definition together with where it came from.
type Level struct {
	engine.LevelDef
	Metadata map[string]string
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	slices.SortStableFunc(levels, func(a, b Level) int {
		return strings.Compare(a.ID, b.ID)
	})
	return levels, nil
}

// LoadFile loads a single level file. A missing ID defaults to the file name.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	def := parsed.Def
	if def.ID == "" {
		def.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if def.Name == "" {
			def.Name = def.ID
		}
	}

	return Level{LevelDef: def, Metadata: parsed.Metadata, FilePath: path}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// Defs loads the directory as an engine level table.
func (l *Loader) Defs() ([]engine.LevelDef, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: %s: %w", l.Root, ErrEmptyPack)
	}
	defs := make([]engine.LevelDef, len(levels))
	for i, lvl := range levels {
		defs[i] = lvl.LevelDef
	}
	return defs, nil
}

// Export writes each definition to dir as <id>.yaml.
func Export(dir string, defs []engine.LevelDef) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("levels: cannot create directory: %w", err)
	}
	for _, def := range defs {
		data, err := formats.EncodeYAML(def)
		if err != nil {
			return fmt.Errorf("levels: encoding %s: %w", def.ID, err)
		}
		path := filepath.Join(dir, def.ID+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil { //#nosec G306 -- level files are not secret
			return fmt.Errorf("levels: writing %s: %w", path, err)
		}
	}
	return nil
}
