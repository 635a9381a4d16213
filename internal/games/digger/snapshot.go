package digger

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

// Snapshot contains the session state around the simulation snapshot.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Mode       int // 0=Campaign, 1=Endless
	Stage      int
	Paused     bool
	ClearDelay int
	DT         float64

	Engine engine.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Mode:       int(g.mode),
		Stage:      g.stage,
		Paused:     g.paused,
		ClearDelay: g.clearDelay,
		DT:         g.dt,
		Engine:     g.state.Snapshot(),
	}
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%d:%v:%d:%g:%d", snap.Tick, snap.Mode, snap.Stage, snap.Paused, snap.ClearDelay, snap.DT, snap.Engine.Hash())
	return h.Sum64()
}
