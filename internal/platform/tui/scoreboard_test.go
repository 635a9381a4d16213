package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-digger/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Expected ScoreboardModel, got %T", next)
	}
	return sb
}

func TestScoreboardModesAndSort(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("digger", 500, 2)
	store.SaveScore("digger", 300, 4)
	store.SaveScore("digger_endless", 900, 7)

	m := NewScoreboardModel(store, 100, 30)
	if m.currentMode() != "digger" {
		t.Fatalf("Expected campaign board first, got %q", m.currentMode())
	}
	if len(m.scores) != 2 || m.scores[0].Score != 500 {
		t.Fatalf("Expected campaign scores by score, got %+v", m.scores)
	}

	m = updateScoreboard(t, m, keyRunes("s"))
	rows := m.table.Rows()
	if rows[0][2] != "4" || rows[0][0] != "#2" {
		t.Errorf("Expected level 4 run first keeping rank #2, got %v", rows[0])
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.currentMode() != "digger_endless" || len(m.scores) != 1 {
		t.Errorf("Expected endless board, got %q with %d scores", m.currentMode(), len(m.scores))
	}
	if !strings.Contains(m.View(), "Best level: 7") {
		t.Error("Expected stats panel with best level 7")
	}
}

func TestScoreboardClearNeedsConfirm(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("digger", 100, 1)

	m := NewScoreboardModel(store, 100, 30)
	m = updateScoreboard(t, m, keyRunes("x"))
	if !m.confirming {
		t.Fatal("Expected confirmation prompt")
	}
	m = updateScoreboard(t, m, keyRunes("n"))
	if len(m.scores) != 1 {
		t.Fatal("Expected scores kept after declining")
	}

	m = updateScoreboard(t, m, keyRunes("x"))
	m = updateScoreboard(t, m, keyRunes("y"))
	if len(m.scores) != 0 {
		t.Errorf("Expected scores cleared, got %d", len(m.scores))
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("Expected empty message without a store")
	}

	back := updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("Expected esc to go back")
	}
	quit := updateScoreboard(t, m, keyRunes("q"))
	if !quit.IsQuitting() {
		t.Error("Expected q to quit")
	}
}
