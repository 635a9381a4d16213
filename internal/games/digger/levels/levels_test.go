package levels

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

func testdataPath() string {
	return filepath.Join("testdata", "levels")
}

func TestBuiltinLevelsWellFormed(t *testing.T) {
	defs := Builtin()
	if len(defs) < 5 {
		t.Fatalf("Expected at least 5 built-in levels, got %d", len(defs))
	}

	seen := make(map[string]bool)
	for _, d := range defs {
		if seen[d.ID] {
			t.Errorf("Duplicate level ID %q", d.ID)
		}
		seen[d.ID] = true

		if len(d.Rows) != 16 {
			t.Errorf("%s: expected 16 rows, got %d", d.ID, len(d.Rows))
		}
		players, gold := 0, 0
		for i, row := range d.Rows {
			if len(row) != 28 {
				t.Errorf("%s: row %d has width %d", d.ID, i, len(row))
			}
			players += strings.Count(row, "P")
			gold += strings.Count(row, "G")
		}
		if players != 1 {
			t.Errorf("%s: expected one player spawn, got %d", d.ID, players)
		}
		if gold == 0 {
			t.Errorf("%s: expected gold", d.ID)
		}
		if !strings.Contains(d.Rows[0], "T") {
			t.Errorf("%s: expected escape ladder on row 0", d.ID)
		}
	}
}

func TestTutorialHasNoGuards(t *testing.T) {
	l := engine.NewLoader(Builtin(), engine.DefaultParams())
	s := l.Load(1)
	if len(s.Guards) != 0 {
		t.Errorf("Expected tutorial without guards, got %d", len(s.Guards))
	}
	if s.GoldRemaining != 6 {
		t.Errorf("Expected 6 gold in the tutorial, got %d", s.GoldRemaining)
	}
}

func TestBuiltinReturnsCopy(t *testing.T) {
	a := Builtin()
	a[0].Rows[0] = "changed"
	if Builtin()[0].Rows[0] == "changed" {
		t.Error("Expected Builtin to return an independent copy")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	lvls, err := NewLoader(testdataPath()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("Expected 2 valid levels, got %d", len(lvls))
	}
	if lvls[0].ID != "lvl01" || lvls[1].ID != "lvl02" {
		t.Errorf("Expected levels sorted by ID, got %s, %s", lvls[0].ID, lvls[1].ID)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	lvl, err := NewLoader(testdataPath()).LoadByID("lvl02")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Guarded" {
		t.Errorf("Expected name 'Guarded', got %q", lvl.Name)
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("Expected metadata to be kept, got %v", lvl.Metadata)
	}
	if len(lvl.Rows) != 5 {
		t.Errorf("Expected 5 rows, got %d", len(lvl.Rows))
	}

	if _, err := NewLoader(testdataPath()).LoadByID("nonexistent"); err == nil {
		t.Error("Expected error for nonexistent level")
	}
}

func TestLoadFileErrors(t *testing.T) {
	l := NewLoader(testdataPath())
	if _, err := l.LoadFile(filepath.Join(testdataPath(), "broken.yaml")); err == nil {
		t.Error("Expected parse error for broken YAML")
	}
	if _, err := l.LoadFile(filepath.Join(testdataPath(), "empty.yaml")); err == nil {
		t.Error("Expected error for level without rows")
	}
	if _, err := l.LoadFile(filepath.Join(testdataPath(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDefsFromEmptyDir(t *testing.T) {
	_, err := NewLoader(t.TempDir()).Defs()
	if !errors.Is(err, ErrEmptyPack) {
		t.Errorf("Expected ErrEmptyPack, got %v", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := Export(dir, Builtin()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	defs, err := NewLoader(dir).Defs()
	if err != nil {
		t.Fatalf("Defs failed: %v", err)
	}
	if len(defs) != len(Builtin()) {
		t.Fatalf("Expected %d exported levels, got %d", len(Builtin()), len(defs))
	}

	byID := make(map[string]engine.LevelDef)
	for _, d := range defs {
		byID[d.ID] = d
	}
	for _, want := range Builtin() {
		got, ok := byID[want.ID]
		if !ok {
			t.Errorf("Missing exported level %s", want.ID)
			continue
		}
		if got.Name != want.Name || strings.Join(got.Rows, "\n") != strings.Join(want.Rows, "\n") {
			t.Errorf("Level %s changed through export", want.ID)
		}
	}
}

func TestTableFallsBackToBuiltin(t *testing.T) {
	defer SetPackDir("")

	SetPackDir("")
	defs, err := Table()
	if err != nil || len(defs) != len(Builtin()) {
		t.Errorf("Expected built-in table, got %d levels err=%v", len(defs), err)
	}

	SetPackDir(t.TempDir())
	defs, err = Table()
	if err == nil {
		t.Error("Expected error for an empty pack directory")
	}
	if len(defs) != len(Builtin()) {
		t.Errorf("Expected built-in fallback, got %d levels", len(defs))
	}

	SetPackDir(testdataPath())
	defs, err = Table()
	if err != nil || len(defs) != 2 {
		t.Errorf("Expected 2 pack levels, got %d err=%v", len(defs), err)
	}
}
