package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// newStore opens a fresh database in a temp dir.
func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "digger.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// saveRuns records one score per entry, all ending on level 1.
func saveRuns(t *testing.T, store *Store, gameID string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := store.SaveScore(gameID, sc, 1); err != nil {
			t.Fatalf("SaveScore(%q, %d) failed: %v", gameID, sc, err)
		}
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade", "saves", "digger.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected database file at %s: %v", path, err)
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/digger.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "digger.db")); err != nil {
		t.Errorf("Expected database under HOME: %v", err)
	}
}

func TestTopScoresRanksPerMode(t *testing.T) {
	store := newStore(t)
	saveRuns(t, store, "digger", 1750, 250, 4000, 1000)
	saveRuns(t, store, "digger_endless", 9000)

	tests := []struct {
		gameID string
		limit  int
		want   []int
	}{
		{"digger", 10, []int{4000, 1750, 1000, 250}},
		{"digger", 2, []int{4000, 1750}},
		{"digger_endless", 10, []int{9000}},
		{"unknown", 10, nil},
	}
	for _, tt := range tests {
		scores, err := store.TopScores(tt.gameID, tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%q) failed: %v", tt.gameID, err)
		}
		if len(scores) != len(tt.want) {
			t.Errorf("%s/%d: expected %d scores, got %d", tt.gameID, tt.limit, len(tt.want), len(scores))
			continue
		}
		for i, w := range tt.want {
			if scores[i].Score != w || scores[i].GameID != tt.gameID {
				t.Errorf("%s/%d: expected #%d to be %d, got %+v", tt.gameID, tt.limit, i+1, w, scores[i])
			}
		}
	}
}

func TestAllScoresIsUnlimited(t *testing.T) {
	store := newStore(t)
	for i := range 25 {
		saveRuns(t, store, "digger", i*250)
	}

	scores, err := store.AllScores("digger")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 25 {
		t.Errorf("Expected 25 scores, got %d", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := newStore(t)

	if high, err := store.HighScore("digger"); err != nil || high != 0 {
		t.Errorf("Expected 0 for an empty mode, got %d (%v)", high, err)
	}

	saveRuns(t, store, "digger", 500, 2250, 1250)
	if high, err := store.HighScore("digger"); err != nil || high != 2250 {
		t.Errorf("Expected high score 2250, got %d (%v)", high, err)
	}
}

func TestClearScoresKeepsOtherModes(t *testing.T) {
	store := newStore(t)
	saveRuns(t, store, "digger", 500, 750)
	saveRuns(t, store, "digger_endless", 1500)

	if err := store.ClearScores("digger"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("digger", 10); len(scores) != 0 {
		t.Errorf("Expected no campaign scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("digger_endless", 10); len(scores) != 1 {
		t.Error("Endless scores should survive clearing the campaign")
	}
}

func TestScoreLevelAndStats(t *testing.T) {
	store := newStore(t)
	store.SaveScore("digger", 1750, 2)
	store.SaveScore("digger", 5000, 4)

	scores, err := store.TopScores("digger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 4 || scores[1].Level != 2 {
		t.Errorf("Expected levels 4 and 2, got %d and %d", scores[0].Level, scores[1].Level)
	}

	stats, err := store.GetGameStats("digger")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 5000 || stats.BestLevel != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 3375 {
		t.Errorf("Expected average 3375, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played time")
	}

	empty, err := store.GetGameStats("digger_endless")
	if err != nil {
		t.Fatalf("GetGameStats() on empty mode failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["digger"].TotalScore != 6750 {
		t.Errorf("Expected one mode with total 6750, got %+v", all)
	}
}

func TestProgressLifecycle(t *testing.T) {
	store := newStore(t)

	p, err := store.LoadProgress("digger")
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p != nil {
		t.Errorf("Expected no saved progress, got %+v", p)
	}

	if err := store.SaveProgress("digger", 2, 1750, 3); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	if err := store.SaveProgress("digger", 3, 4000, 2); err != nil {
		t.Fatalf("SaveProgress() overwrite failed: %v", err)
	}

	p, err = store.LoadProgress("digger")
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p == nil || p.Level != 3 || p.Score != 4000 || p.Lives != 2 {
		t.Errorf("Expected latest progress, got %+v", p)
	}

	if other, _ := store.LoadProgress("digger@alice"); other != nil {
		t.Error("Progress should be kept per key")
	}

	if err := store.ClearProgress("digger"); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}
	if p, _ := store.LoadProgress("digger"); p != nil {
		t.Error("Expected progress to be cleared")
	}
}
