package engine

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"slices"
)

// Snapshot is a flattened, primitive-only view of a GameState for
// persistence and determinism checks.
type Snapshot struct {
	Level         int
	LevelID       string
	Lives         int
	Score         int
	GoldRemaining int
	Escape        bool
	State         string // "playing", "level_complete", "game_over" or "won"
	AnimTime      float64

	PlayerCol   int
	PlayerRow   int
	PlayerX     float64
	PlayerY     float64
	PlayerAlive bool
	DigCooldown float64

	// Each guard is 4 ints: Col, Row, State, CarriesGold
	GuardData []int
	// Each guard is 4 floats: X, Y, TrapTimer, RespawnTimer
	GuardMotion []float64

	// Each dug brick is 3 ints: Col, Row, Phase, sorted row-major
	DugData []int
	// Remaining phase time of each dug brick, in DugData order
	DugTimers []float64

	// Row-major indices of gold cells
	GoldCells []int
}

// Snapshot captures the current state.
func (s *GameState) Snapshot() Snapshot {
	state := "playing"
	switch {
	case s.Won:
		state = "won"
	case s.GameOver:
		state = "game_over"
	case s.LevelComplete:
		state = "level_complete"
	}

	guardData := make([]int, 0, len(s.Guards)*4)
	guardMotion := make([]float64, 0, len(s.Guards)*4)
	for _, g := range s.Guards {
		carries := 0
		if g.CarriesGold {
			carries = 1
		}
		guardData = append(guardData, g.Col, g.Row, int(g.State), carries)
		guardMotion = append(guardMotion, g.X, g.Y, g.TrapTimer, g.RespawnTimer)
	}

	dug := make([]DugBrick, 0, len(s.Dug))
	for _, b := range s.Dug {
		dug = append(dug, b)
	}
	slices.SortFunc(dug, func(a, b DugBrick) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})
	dugData := make([]int, 0, len(dug)*3)
	dugTimers := make([]float64, 0, len(dug))
	for _, b := range dug {
		dugData = append(dugData, b.Col, b.Row, int(b.Phase))
		dugTimers = append(dugTimers, b.Timer)
	}

	var gold []int
	for i, v := range s.Gold.cells {
		if v {
			gold = append(gold, i)
		}
	}

	return Snapshot{
		Level:         s.Level,
		LevelID:       s.LevelID,
		Lives:         s.Lives,
		Score:         s.Score,
		GoldRemaining: s.GoldRemaining,
		Escape:        s.EscapeRevealed,
		State:         state,
		AnimTime:      s.AnimTime,
		PlayerCol:     s.Player.Col,
		PlayerRow:     s.Player.Row,
		PlayerX:       s.Player.X,
		PlayerY:       s.Player.Y,
		PlayerAlive:   s.Player.Alive,
		DigCooldown:   s.Player.DigCooldown,
		GuardData:     guardData,
		GuardMotion:   guardMotion,
		DugData:       dugData,
		DugTimers:     dugTimers,
		GoldCells:     gold,
	}
}

// Hash returns a hash of the snapshot.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "L:%d:%s;", snap.Level, snap.LevelID)
	fmt.Fprintf(h, "S:%d:%d:%d:%v:%s:%g;", snap.Lives, snap.Score, snap.GoldRemaining, snap.Escape, snap.State, snap.AnimTime)
	fmt.Fprintf(h, "P:%d:%d:%g:%g:%v:%g;", snap.PlayerCol, snap.PlayerRow, snap.PlayerX, snap.PlayerY, snap.PlayerAlive, snap.DigCooldown)
	fmt.Fprintf(h, "E:%v:%v;D:%v:%v;G:%v", snap.GuardData, snap.GuardMotion, snap.DugData, snap.DugTimers, snap.GoldCells)

	return h.Sum64()
}
