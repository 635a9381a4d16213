package levels

import "github.com/vovakirdan/tui-digger/internal/games/digger/engine"

var packDir string

// SetPackDir sets the directory level packs are loaded from.
// An empty path selects the built-in campaign.
func SetPackDir(dir string) {
	packDir = dir
}

// PackDir returns the configured level pack directory.
func PackDir() string {
	return packDir
}

// Table returns the active level table. When the configured pack cannot be
// loaded it returns the built-in campaign together with the load error.
func Table() ([]engine.LevelDef, error) {
	if packDir == "" {
		return Builtin(), nil
	}
	defs, err := NewLoader(packDir).Defs()
	if err != nil {
		return Builtin(), err
	}
	return defs, nil
}
