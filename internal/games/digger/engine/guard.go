package engine

// updateGuards computes the next state of every guard. Each guard reads
// only the tick-start guard list (through w and prev) and the already
// updated player, and the results go into a fresh slice.
func updateGuards(s *GameState, w *world, dt float64) {
	prev := s.Guards
	next := make([]Guard, len(prev))
	for i := range prev {
		next[i] = updateGuard(prev[i], i, prev, s, w, dt)
	}
	s.Guards = next
}

func updateGuard(g Guard, self int, prev []Guard, s *GameState, w *world, dt float64) Guard {
	p := w.params
	size := p.CellSize

	switch g.State {
	case GuardDead:
		g.RespawnTimer = max(g.RespawnTimer-dt, 0)
		if g.RespawnTimer > 0 {
			return g
		}
		g.Entity = newEntity(g.RespawnCell, size)
		g.State = GuardChasing
		g.CarriesGold = false
		g.TrapTimer = 0
		return g

	case GuardTrapped:
		g.TrapTimer = max(g.TrapTimer-dt, 0)
		if g.TrapTimer > 0 {
			return g
		}
		above := g.Cell.Above()
		if w.passable(above) && !occupied(above, self, prev, s) {
			g.State = GuardClimbingOut
			g.Target = above
			g.Anim = AnimClimbing
			return g
		}
		g.TrapTimer = p.ClimbRetry
		return g

	case GuardClimbingOut:
		if g.Target != g.Cell && !w.passable(g.Target) {
			g.State = GuardTrapped
			g.TrapTimer = p.ClimbRetry
			g.placeAt(g.Cell, size)
			g.Anim = AnimStanding
			return g
		}
		g.Anim = AnimClimbing
		if !g.advance(p.GuardSpeed*dt, size) {
			return g
		}
		g.State = GuardChasing
		if d := exitStep(w, g.Cell, s.Player.Cell); d != DirNone {
			dc, dr := d.delta()
			g.Target = g.Cell.Add(dc, dr)
			if d == DirLeft {
				g.Facing = FacingLeft
			} else {
				g.Facing = FacingRight
			}
			g.Anim = AnimRunning
		}
		return g
	}

	landed := w.step(&g.Entity, p.GuardSpeed, dt, func(c Cell) Dir {
		return chase(w, c, s.Player.Cell)
	})
	if landed {
		if b, ok := w.dug[g.Cell]; ok && b.Phase == DigOpen {
			g.State = GuardTrapped
			g.TrapTimer = max(b.Timer-p.TrapMargin, 0)
			g.placeAt(g.Cell, size)
			g.Anim = AnimStanding
			return g
		}
	}
	g.Anim = w.animFor(&g.Entity, false)
	return g
}

// chase is the greedy single-step heuristic: ladder toward the player's
// row, else walk toward the player's column, else any ladder step toward
// the player's row.
func chase(w *world, from, to Cell) Dir {
	vert := DirNone
	switch {
	case to.Row < from.Row:
		vert = DirUp
	case to.Row > from.Row:
		vert = DirDown
	}
	horiz := DirNone
	switch {
	case to.Col < from.Col:
		horiz = DirLeft
	case to.Col > from.Col:
		horiz = DirRight
	}

	if vert != DirNone && w.isLadder(from) && w.canMove(from, vert) {
		return vert
	}
	if horiz != DirNone && w.canMove(from, horiz) {
		return horiz
	}
	if vert != DirNone && w.allowed(from, vert) {
		return vert
	}
	return DirNone
}

// exitStep picks the sideways step a guard takes right after leaving a
// hole: toward the player, else the other way. Footing is not required
// because the guard stands on the rim.
func exitStep(w *world, from, player Cell) Dir {
	first, second := DirRight, DirLeft
	if player.Col < from.Col {
		first, second = DirLeft, DirRight
	}
	for _, d := range [...]Dir{first, second} {
		dc, dr := d.delta()
		if w.passable(from.Add(dc, dr)) {
			return d
		}
	}
	return DirNone
}

// occupied reports whether the player or another live guard stands on c.
// A trapped guard cannot climb into an occupied cell.
func occupied(c Cell, self int, guards []Guard, s *GameState) bool {
	if s.Player.Alive && s.Player.Cell == c {
		return true
	}
	for i := range guards {
		if i != self && guards[i].State != GuardDead && guards[i].Cell == c {
			return true
		}
	}
	return false
}
