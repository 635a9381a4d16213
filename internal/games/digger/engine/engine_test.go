package engine

import "testing"

// dt is an exact binary fraction so timers and positions compare exactly.
const dt = 1.0 / 64

func newTestEngine(rows ...[]string) *Engine {
	defs := make([]LevelDef, 0, len(rows))
	for i, r := range rows {
		defs = append(defs, LevelDef{ID: string(rune('a' + i)), Name: "test", Rows: r})
	}
	return New(NewLoader(defs, DefaultParams()))
}

func run(e *Engine, s *GameState, ticks int, in Input) *GameState {
	for range ticks {
		s = e.Update(s, dt, in)
	}
	return s
}

// stepOnce presses in for one tick and then idles until the player is
// aligned again.
func stepOnce(t *testing.T, e *Engine, s *GameState, in Input) *GameState {
	t.Helper()
	p := e.Params()
	s = e.Update(s, dt, in)
	for range 200 {
		if s.Player.Aligned(p.CellSize, p.AlignTolerance) && !s.Player.Falling {
			return s
		}
		s = e.Update(s, dt, Input{})
	}
	t.Fatalf("Player never re-aligned, at %+v", s.Player.Entity)
	return s
}

func TestLoaderParse(t *testing.T) {
	l := NewLoader([]LevelDef{{
		ID:   "x",
		Name: "Parse",
		Rows: []string{
			"P.G.E",
			"BSH-T",
			"Gx",
		},
	}}, DefaultParams())

	s := l.Load(1)
	if s.Grid.Cols != 5 || s.Grid.Rows != 3 {
		t.Fatalf("Expected 5x3 grid, got %dx%d", s.Grid.Cols, s.Grid.Rows)
	}

	want := map[Cell]Tile{
		{0, 0}: TileEmpty, {2, 0}: TileEmpty, {4, 0}: TileEmpty,
		{0, 1}: TileBrick, {1, 1}: TileSolid, {2, 1}: TileLadder, {3, 1}: TileBar, {4, 1}: TileHiddenLadder,
		{1, 2}: TileEmpty, {4, 2}: TileEmpty,
	}
	for c, tile := range want {
		if got := s.Grid.At(c); got != tile {
			t.Errorf("Expected %v at %v, got %v", tile, c, got)
		}
	}

	if s.Player.Cell != (Cell{0, 0}) {
		t.Errorf("Expected player at (0,0), got %v", s.Player.Cell)
	}
	if len(s.Guards) != 1 || s.Guards[0].RespawnCell != (Cell{4, 0}) {
		t.Fatalf("Expected one guard respawning at (4,0), got %+v", s.Guards)
	}
	if s.Guards[0].State != GuardChasing {
		t.Errorf("Expected guard to start chasing, got %v", s.Guards[0].State)
	}
	if !s.Gold.Has(Cell{2, 0}) || !s.Gold.Has(Cell{0, 2}) {
		t.Error("Expected gold at (2,0) and (0,2)")
	}
	if s.GoldRemaining != 2 {
		t.Errorf("Expected 2 gold remaining, got %d", s.GoldRemaining)
	}
	if s.Lives != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("Expected lives=3 score=0 level=1, got %d %d %d", s.Lives, s.Score, s.Level)
	}
	if s.EscapeRevealed {
		t.Error("Escape should be hidden while gold remains")
	}
	if s.LevelName != "Parse" || s.LevelID != "x" {
		t.Errorf("Expected level metadata to be copied, got %q %q", s.LevelID, s.LevelName)
	}
}

func TestLoaderClampsIndex(t *testing.T) {
	e := newTestEngine([]string{"P"}, []string{".P"})
	l := e.Loader()

	if got := l.Load(99).Level; got != 2 {
		t.Errorf("Expected index 99 to clamp to 2, got %d", got)
	}
	if got := l.Load(0).Level; got != 1 {
		t.Errorf("Expected index 0 to clamp to 1, got %d", got)
	}
	if got := l.LoadWithProgress(2, Progress{Score: 400, Lives: 1}); got.Score != 400 || got.Lives != 1 {
		t.Errorf("Expected progress to carry over, got score=%d lives=%d", got.Score, got.Lives)
	}
}

func TestLoaderEmptyTable(t *testing.T) {
	l := NewLoader(nil, DefaultParams())
	if l.Count() != 1 {
		t.Fatalf("Expected placeholder level, got %d levels", l.Count())
	}
	s := l.Load(1)
	if s.Grid.Cols != 1 || s.Grid.Rows != 1 {
		t.Errorf("Expected 1x1 grid, got %dx%d", s.Grid.Cols, s.Grid.Rows)
	}
}

func TestOutOfBoundsIsSolid(t *testing.T) {
	g := NewGrid(3, 3)
	for _, c := range []Cell{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if g.At(c) != TileSolid {
			t.Errorf("Expected solid at %v, got %v", c, g.At(c))
		}
	}
}

func TestWalkRight(t *testing.T) {
	e := newTestEngine([]string{
		"P..",
		"SSS",
	})
	s := e.Loader().Load(1)

	// One tick to pick the target, sixteen to cover the cell.
	s = run(e, s, 17, Input{Right: true})
	if s.Player.Cell != (Cell{1, 0}) {
		t.Fatalf("Expected player at (1,0), got %v", s.Player.Cell)
	}
	if s.Player.X != 30 {
		t.Errorf("Expected X=30, got %v", s.Player.X)
	}
	if s.Player.Facing != FacingRight {
		t.Error("Expected player to face right")
	}
	if s.Player.Anim != AnimRunning {
		t.Errorf("Expected running, got %v", s.Player.Anim)
	}
}

func TestWalkStopsAtEdgeOfGrid(t *testing.T) {
	e := newTestEngine([]string{
		"P.",
		"SS",
	})
	s := run(e, e.Loader().Load(1), 60, Input{Right: true})
	if s.Player.Cell != (Cell{1, 0}) || s.Player.X != 30 {
		t.Errorf("Expected player resting at (1,0) x=30, got %v x=%v", s.Player.Cell, s.Player.X)
	}
}

func TestRunOffLedgeThenFall(t *testing.T) {
	e := newTestEngine([]string{
		"P...",
		"S...",
		"SSSS",
	})
	s := e.Loader().Load(1)
	s = run(e, s, 2, Input{Right: true})

	sawFall := false
	for range 40 {
		// Directional input is ignored while airborne.
		s = e.Update(s, dt, Input{Left: true})
		if s.Player.Falling {
			sawFall = true
			if s.Player.X != 30 {
				t.Fatalf("Expected x pinned to 30 while falling, got %v", s.Player.X)
			}
			if s.Player.Anim != AnimFalling {
				t.Errorf("Expected falling animation, got %v", s.Player.Anim)
			}
		}
	}

	if !sawFall {
		t.Fatal("Expected player to fall off the ledge")
	}
	if s.Player.Cell != (Cell{1, 1}) || s.Player.Falling {
		t.Errorf("Expected player landed at (1,1), got %v falling=%v", s.Player.Cell, s.Player.Falling)
	}
	if s.Player.Y != 30 {
		t.Errorf("Expected Y=30 after landing, got %v", s.Player.Y)
	}
}

func TestLadderClimb(t *testing.T) {
	e := newTestEngine([]string{
		"...",
		".H.",
		"PH.",
		"SSS",
	})
	s := e.Loader().Load(1)

	s = stepOnce(t, e, s, Input{Up: true})
	if s.Player.Cell != (Cell{0, 2}) {
		t.Fatalf("Expected no climb without a ladder, got %v", s.Player.Cell)
	}

	s = stepOnce(t, e, s, Input{Right: true})
	if s.Player.Cell != (Cell{1, 2}) {
		t.Fatalf("Expected player on ladder at (1,2), got %v", s.Player.Cell)
	}

	s = stepOnce(t, e, s, Input{Up: true})
	if s.Player.Anim != AnimClimbing {
		t.Errorf("Expected climbing animation, got %v", s.Player.Anim)
	}
	s = stepOnce(t, e, s, Input{Up: true})
	if s.Player.Cell != (Cell{1, 0}) {
		t.Fatalf("Expected player at ladder top (1,0), got %v", s.Player.Cell)
	}

	s = stepOnce(t, e, s, Input{Up: true})
	if s.Player.Cell != (Cell{1, 0}) {
		t.Errorf("Expected player to stay inside the grid, got %v", s.Player.Cell)
	}
}

func TestBarTraverseAndDrop(t *testing.T) {
	e := newTestEngine([]string{
		"P--..",
		"S....",
		"SSSSS",
	})
	s := e.Loader().Load(1)

	s = stepOnce(t, e, s, Input{Right: true})
	if s.Player.Cell != (Cell{1, 0}) {
		t.Fatalf("Expected player on bar at (1,0), got %v", s.Player.Cell)
	}
	s = e.Update(s, dt, Input{})
	if s.Player.Anim != AnimHanging {
		t.Errorf("Expected hanging animation, got %v", s.Player.Anim)
	}

	dropped := stepOnce(t, e, s, Input{Down: true})
	if dropped.Player.Cell != (Cell{1, 1}) {
		t.Errorf("Expected bar drop to (1,1), got %v", dropped.Player.Cell)
	}

	s = stepOnce(t, e, s, Input{Right: true})
	s = stepOnce(t, e, s, Input{Right: true})
	if s.Player.Cell != (Cell{3, 1}) {
		t.Errorf("Expected fall after leaving the bar, landing at (3,1), got %v", s.Player.Cell)
	}
}

func TestGoldPickup(t *testing.T) {
	e := newTestEngine([]string{
		"...",
		"PG.",
		"SSS",
	})
	s := e.Loader().Load(1)
	s = stepOnce(t, e, s, Input{Right: true})

	if s.Gold.Has(Cell{1, 1}) {
		t.Error("Expected gold cell to be cleared")
	}
	if s.Score != e.Params().GoldPoints {
		t.Errorf("Expected score %d, got %d", e.Params().GoldPoints, s.Score)
	}
	if s.GoldRemaining != 0 || !s.EscapeRevealed {
		t.Errorf("Expected escape revealed with no gold left, got remaining=%d revealed=%v", s.GoldRemaining, s.EscapeRevealed)
	}
}

func TestTerminalStateIsNoop(t *testing.T) {
	e := newTestEngine([]string{"P..", "SSS"})
	s := e.Loader().Load(1)
	s.LevelComplete = true
	if got := e.Update(s, dt, Input{Right: true}); got != s {
		t.Error("Expected terminal state to be returned unchanged")
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	e := newTestEngine([]string{
		"P.G.",
		"BBBB",
	})
	s := e.Loader().Load(1)
	before := s.Snapshot().Hash()
	_ = run(e, s, 1, Input{DigRight: true})
	_ = e.Update(s, dt, Input{Right: true})
	if s.Snapshot().Hash() != before || len(s.Dug) != 0 {
		t.Error("Expected Update to leave its argument untouched")
	}
}

func TestDeathReloadsLevel(t *testing.T) {
	e := newTestEngine([]string{
		"....",
		"PG..",
		"SSSS",
	})
	s := e.Loader().Load(1)
	s = stepOnce(t, e, s, Input{Right: true})
	s.Player.Alive = false

	next := e.Update(s, dt, Input{})
	if next.Lives != 2 {
		t.Errorf("Expected 2 lives, got %d", next.Lives)
	}
	if next.Score != s.Score {
		t.Errorf("Expected score %d preserved, got %d", s.Score, next.Score)
	}
	if !next.Player.Alive || next.Player.Cell != (Cell{0, 1}) {
		t.Errorf("Expected fresh player at spawn, got %+v", next.Player)
	}
	if !next.Gold.Has(Cell{1, 1}) {
		t.Error("Expected level gold restored by the reload")
	}
}

func TestNextLevel(t *testing.T) {
	e := newTestEngine([]string{"P", "S"}, []string{".P", "SS"})
	s := e.Loader().Load(1)
	s.Score = 1234
	s.Lives = 2

	next := e.NextLevel(s)
	if next.Level != 2 || next.Score != 1234 || next.Lives != 2 {
		t.Fatalf("Expected level 2 with progress, got level=%d score=%d lives=%d", next.Level, next.Score, next.Lives)
	}

	last := e.NextLevel(next)
	if !last.Won {
		t.Error("Expected won after the last level")
	}
	if next.Won {
		t.Error("NextLevel must not mutate its argument")
	}
}
