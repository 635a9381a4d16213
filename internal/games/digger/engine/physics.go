package engine

// Dir is a single-cell movement direction.
type Dir uint8

const (
	DirNone Dir = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Dir) delta() (dc, dr int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Dir) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// world is the read-only view of a level that movement decisions consult.
// trapped holds the cells of guards that were trapped at the start of the
// tick; entities may stand on top of them.
type world struct {
	params   *Params
	grid     *Grid
	dug      map[Cell]DugBrick
	revealed bool
	trapped  map[Cell]bool
}

func newWorld(s *GameState, p *Params) *world {
	w := &world{
		params:   p,
		grid:     s.Grid,
		dug:      s.Dug,
		revealed: s.EscapeRevealed,
		trapped:  make(map[Cell]bool),
	}
	for i := range s.Guards {
		if s.Guards[i].State == GuardTrapped {
			w.trapped[s.Guards[i].Cell] = true
		}
	}
	return w
}

func (w *world) isLadder(c Cell) bool {
	t := w.grid.At(c)
	return t == TileLadder || (t == TileHiddenLadder && w.revealed)
}

func (w *world) isBar(c Cell) bool {
	return w.grid.At(c) == TileBar
}

// isGround reports whether c blocks movement and gives footing:
// solid tiles and bricks that are not dug out.
func (w *world) isGround(c Cell) bool {
	switch w.grid.At(c) {
	case TileSolid:
		return true
	case TileBrick:
		_, dug := w.dug[c]
		return !dug
	}
	return false
}

func (w *world) passable(c Cell) bool {
	return w.grid.InBounds(c) && !w.isGround(c)
}

func (w *world) supported(c Cell) bool {
	if w.isLadder(c) || w.isBar(c) {
		return true
	}
	below := c.Below()
	return w.isGround(below) || w.isLadder(below) || w.trapped[below]
}

// canMove reports whether an aligned entity at c may start a step in d.
func (w *world) canMove(c Cell, d Dir) bool {
	if d == DirNone {
		return false
	}
	dc, dr := d.delta()
	to := c.Add(dc, dr)
	if !w.passable(to) {
		return false
	}
	if d.horizontal() {
		return w.supported(c) || w.isBar(c)
	}
	return w.isLadder(c) || w.isLadder(to)
}

// canDrop reports whether an entity hanging on a bar at c may let go.
func (w *world) canDrop(c Cell) bool {
	return w.isBar(c) && !w.isLadder(c) && w.passable(c.Below()) && !w.isLadder(c.Below())
}

func (w *world) allowed(c Cell, d Dir) bool {
	return w.canMove(c, d) || (d == DirDown && w.canDrop(c))
}

// playerDir picks the first requested direction that is possible from c.
// Vertical requests win over horizontal ones.
func (w *world) playerDir(c Cell, in Input) Dir {
	for _, cand := range [...]struct {
		want bool
		dir  Dir
	}{
		{in.Up, DirUp},
		{in.Down, DirDown},
		{in.Left, DirLeft},
		{in.Right, DirRight},
	} {
		if cand.want && w.allowed(c, cand.dir) {
			return cand.dir
		}
	}
	return DirNone
}

// step advances one entity by dt. choose is consulted only when the entity
// is aligned, supported and not falling. It returns true when the entity
// came to rest at the end of a fall during this call.
func (w *world) step(e *Entity, speed, dt float64, choose func(Cell) Dir) (landed bool) {
	size := w.params.CellSize

	// A brick that regenerated in front of the entity sends it back to the
	// cell it came from. Once past the halfway point the entity is already
	// inside the brick and the collapse has crushed it.
	if e.Target != e.Cell && !w.passable(e.Target) {
		e.Target = e.Cell
		if e.Falling {
			e.Falling = false
			e.X, e.Y = CellCenter(e.Cell, size)
		}
	}

	if e.Falling {
		e.X, _ = CellCenter(e.Cell, size)
		if !e.advance(w.params.FallSpeed*dt, size) {
			return false
		}
		if w.supported(e.Cell) {
			e.Falling = false
			return true
		}
		e.Target = e.Cell.Below()
		return false
	}

	if !e.Aligned(size, w.params.AlignTolerance) {
		if !e.advance(speed*dt, size) {
			return false
		}
	} else {
		// Re-snap away any sub-tolerance drift.
		e.X, e.Y = CellCenter(e.Cell, size)
	}

	if !w.supported(e.Cell) {
		e.Falling = true
		e.Target = e.Cell.Below()
		return false
	}

	d := choose(e.Cell)
	if d == DirDown && !w.canMove(e.Cell, d) && w.canDrop(e.Cell) {
		e.Falling = true
		e.Target = e.Cell.Below()
		return false
	}
	if !w.canMove(e.Cell, d) {
		return false
	}
	dc, dr := d.delta()
	e.Target = e.Cell.Add(dc, dr)
	switch d {
	case DirLeft:
		e.Facing = FacingLeft
	case DirRight:
		e.Facing = FacingRight
	}
	return false
}

// animFor derives the animation state from the entity's surroundings.
func (w *world) animFor(e *Entity, active bool) AnimState {
	switch {
	case e.Falling:
		return AnimFalling
	case w.isLadder(e.Cell):
		return AnimClimbing
	case w.isBar(e.Cell):
		return AnimHanging
	case active || e.Target != e.Cell:
		return AnimRunning
	default:
		return AnimStanding
	}
}
