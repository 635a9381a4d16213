package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-digger/internal/storage"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, map[string]*storage.GameStats{
		"digger_endless": {GameID: "digger_endless", GamesCount: 1, HighScore: 9000, TotalScore: 9000, BestLevel: 12},
		"digger":         {GameID: "digger", GamesCount: 2, HighScore: 5000, TotalScore: 6750, BestLevel: 4},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header plus 2 modes, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "Digger ") || !strings.Contains(lines[2], "6750") {
		t.Errorf("Expected campaign first with its total, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "Digger (Endless)") || !strings.Contains(lines[3], "9000") {
		t.Errorf("Expected endless second, got %q", lines[3])
	}
}

func TestWriteSummaryUnknownMode(t *testing.T) {
	var buf bytes.Buffer
	writeSummary(&buf, map[string]*storage.GameStats{"snake": {GameID: "snake", GamesCount: 3}})
	if !strings.Contains(buf.String(), "snake") {
		t.Errorf("Expected unregistered modes listed by ID, got:\n%s", buf.String())
	}

	buf.Reset()
	writeSummary(&buf, nil)
	if got := strings.TrimSpace(buf.String()); got != "No scores recorded yet." {
		t.Errorf("Expected empty message, got %q", got)
	}
}

func TestWriteScores(t *testing.T) {
	var buf bytes.Buffer
	when := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	writeScores(&buf, []storage.ScoreEntry{
		{Score: 4000, Level: 3, CreatedAt: when},
		{Score: 1750, Level: 2, CreatedAt: when},
	})

	out := buf.String()
	if !strings.Contains(out, "1     4000") || !strings.Contains(out, "2026-03-14 09:30") {
		t.Errorf("Expected ranked rows with dates, got:\n%s", out)
	}
	if strings.Count(out, "\n") != 4 {
		t.Errorf("Expected 2 header and 2 score lines, got:\n%s", out)
	}
}
