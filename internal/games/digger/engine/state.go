package engine

import "maps"

// Input is the normalized per-tick input record.
// Directions are level-triggered (true while held); digs are edge-triggered
// and must be presented for exactly one tick per press.
type Input struct {
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	DigLeft  bool
	DigRight bool
}

// AnyDirection reports whether a directional flag is set.
func (in Input) AnyDirection() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// DigPhase is the lifecycle stage of a dug brick.
type DigPhase uint8

const (
	DigOpen DigPhase = iota
	DigFilling
)

// String returns the phase name.
func (p DigPhase) String() string {
	if p == DigFilling {
		return "filling"
	}
	return "open"
}

// DugBrick tracks a brick cell that is currently dug out.
// The record is discarded once its filling timer runs out.
type DugBrick struct {
	Cell
	Timer float64
	Phase DigPhase
}

// GameState is the complete simulation state of one level attempt.
//
// Grid is shared between states and never written after load. Everything
// else is owned by the value; Clone copies it deeply so that Update can
// return a fresh state without touching its argument.
type GameState struct {
	Grid   *Grid
	Gold   *GoldMap
	Player Player
	Guards []Guard
	Dug    map[Cell]DugBrick

	GoldRemaining int
	Level         int
	Lives         int
	Score         int

	GameOver      bool
	LevelComplete bool
	Won           bool

	EscapeRevealed bool
	AnimTime       float64

	LevelID   string
	LevelName string
}

// Clone returns a deep copy of the state. The immutable grid is shared.
func (s *GameState) Clone() *GameState {
	c := *s
	c.Gold = s.Gold.Clone()
	c.Guards = make([]Guard, len(s.Guards))
	copy(c.Guards, s.Guards)
	c.Dug = maps.Clone(s.Dug)
	if c.Dug == nil {
		c.Dug = make(map[Cell]DugBrick)
	}
	return &c
}

// Terminal reports whether a terminal flag is set and Update is a no-op.
func (s *GameState) Terminal() bool {
	return s.GameOver || s.LevelComplete || s.Won
}

// CarriedGold returns the number of gold pieces held by live guards.
func (s *GameState) CarriedGold() int {
	n := 0
	for i := range s.Guards {
		if s.Guards[i].CarriesGold && s.Guards[i].State != GuardDead {
			n++
		}
	}
	return n
}

// TileAt returns the tile a renderer should draw at c: dug bricks read as
// empty and the escape ladder reads as a ladder once revealed.
func (s *GameState) TileAt(c Cell) Tile {
	t := s.Grid.At(c)
	switch t {
	case TileBrick:
		if _, dug := s.Dug[c]; dug {
			return TileEmpty
		}
	case TileHiddenLadder:
		if s.EscapeRevealed {
			return TileLadder
		}
		return TileEmpty
	}
	return t
}
