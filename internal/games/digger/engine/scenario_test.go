package engine

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func tutorialRows() []string {
	rows := make([]string, 0, 16)
	for range 14 {
		rows = append(rows, strings.Repeat(".", 27)+"T")
	}
	rows = append(rows, "P.G.G.G.G.G.G..............T")
	rows = append(rows, strings.Repeat("B", 28))
	return rows
}

func TestTutorialEscape(t *testing.T) {
	e := newTestEngine(tutorialRows())
	p := e.Params()
	s := e.Loader().Load(1)

	if len(s.Guards) != 0 || s.GoldRemaining != 6 {
		t.Fatalf("Expected 6 gold and no guards, got %d gold %d guards", s.GoldRemaining, len(s.Guards))
	}

	for i := 0; i < 1000; i++ {
		if s.Player.Col == 27 && s.Player.Aligned(p.CellSize, p.AlignTolerance) {
			break
		}
		s = e.Update(s, dt, Input{Right: true})
	}
	if s.Player.Col != 27 {
		t.Fatalf("Expected player at the escape column, got %v", s.Player.Cell)
	}
	if s.GoldRemaining != 0 || !s.EscapeRevealed {
		t.Fatalf("Expected all gold collected and escape revealed, got remaining=%d revealed=%v", s.GoldRemaining, s.EscapeRevealed)
	}
	if s.TileAt(Cell{27, 0}) != TileLadder {
		t.Errorf("Expected revealed escape to read as a ladder, got %v", s.TileAt(Cell{27, 0}))
	}

	for i := 0; !s.LevelComplete && i < 1000; i++ {
		s = e.Update(s, dt, Input{Up: true})
	}
	if !s.LevelComplete {
		t.Fatalf("Expected level complete, player at %v", s.Player.Cell)
	}
	want := 6*p.GoldPoints + p.LevelCompletePoints
	if s.Score != want {
		t.Errorf("Expected score %d, got %d", want, s.Score)
	}

	frozen := e.Update(s, dt, Input{Down: true})
	if frozen != s {
		t.Error("Expected completed level to be frozen")
	}
}

func TestEscapeHiddenUntilGoldCollected(t *testing.T) {
	e := newTestEngine(tutorialRows())
	s := e.Loader().Load(1)
	s.Player.placeAt(Cell{27, 14}, e.Params().CellSize)

	s = run(e, s, 40, Input{Up: true})
	if s.Player.Row != 14 {
		t.Errorf("Expected hidden ladder to be unclimbable, got %v", s.Player.Cell)
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	e := newTestEngine(tutorialRows())
	s := e.Loader().Load(1)
	s = run(e, s, 20, Input{Right: true})
	s.Lives = 1
	s.Player.Alive = false

	next := e.Update(s, dt, Input{})
	if !next.GameOver {
		t.Fatal("Expected game over")
	}
	if next.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", next.Lives)
	}
	if next.Player.Alive || next.Player.X != s.Player.X || next.GoldRemaining != s.GoldRemaining {
		t.Error("Expected no level reload on game over")
	}
	if again := e.Update(next, dt, Input{}); again != next {
		t.Error("Expected game over state to be frozen")
	}
}

func TestDeterminism(t *testing.T) {
	e := newTestEngine(propertyLevel)

	play := func() Snapshot {
		rng := rand.New(rand.NewPCG(7, 11))
		s := e.Loader().Load(1)
		for range 2000 {
			s = e.Update(s, dt, randomInput(rng))
		}
		return s.Snapshot()
	}

	a, b := play(), play()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.PlayerX != b.PlayerX || a.PlayerY != b.PlayerY {
		t.Error("Determinism failed: state differs")
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	e := newTestEngine(propertyLevel)
	s := e.Loader().Load(1)
	h1 := s.Snapshot().Hash()

	moved := run(e, s, 5, Input{Right: true})
	if moved.Snapshot().Hash() == h1 {
		t.Error("Expected hash to change after the state advanced")
	}
	if s.Snapshot().Hash() != h1 {
		t.Error("Expected hash of an unchanged state to be stable")
	}

	snap := s.Snapshot()
	if snap.State != "playing" || snap.Level != 1 || len(snap.GuardData) != 4*len(s.Guards) {
		t.Errorf("Unexpected snapshot contents: %+v", snap)
	}
	if len(snap.GuardMotion) != 4*len(s.Guards) {
		t.Errorf("Expected 4 motion values per guard, got %d", len(snap.GuardMotion))
	}
}

func TestSnapshotHashCoversTimers(t *testing.T) {
	e := newTestEngine(propertyLevel)
	base := e.Loader().Load(1)
	hole := Cell{9, 2}
	base.Dug[hole] = DugBrick{Cell: hole, Timer: 2, Phase: DigOpen}
	h := base.Snapshot().Hash()

	tests := []struct {
		name  string
		nudge func(s *GameState)
	}{
		{"guard x", func(s *GameState) { s.Guards[0].X += 0.5 }},
		{"guard trap timer", func(s *GameState) { s.Guards[0].TrapTimer = 1 }},
		{"guard respawn timer", func(s *GameState) { s.Guards[1].RespawnTimer = 1 }},
		{"dug timer", func(s *GameState) { s.Dug[hole] = DugBrick{Cell: hole, Timer: 1.5, Phase: DigOpen} }},
		{"dig cooldown", func(s *GameState) { s.Player.DigCooldown = 0.25 }},
	}
	for _, tt := range tests {
		s := base.Clone()
		tt.nudge(s)
		if s.Snapshot().Hash() == h {
			t.Errorf("%s: expected hash to change", tt.name)
		}
	}
}
