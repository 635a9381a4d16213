package engine

import (
	"cmp"
	"slices"
)

// tryDig attempts a dig to the given side (-1 left, +1 right). The target is
// the brick diagonally below; the cell beside the player must be passable.
func (w *world) tryDig(p *Player, side int, dug map[Cell]DugBrick) bool {
	if p.DigCooldown > 0 || p.Falling {
		return false
	}
	if !p.Aligned(w.params.CellSize, w.params.AlignTolerance) || !w.supported(p.Cell) {
		return false
	}
	beside := p.Cell.Add(side, 0)
	target := p.Cell.Add(side, 1)
	if !w.passable(beside) {
		return false
	}
	if w.grid.At(target) != TileBrick {
		return false
	}
	if _, ok := dug[target]; ok {
		return false
	}
	dug[target] = DugBrick{Cell: target, Timer: w.params.OpenDuration, Phase: DigOpen}
	p.DigCooldown = w.params.DigCooldown
	p.Anim = AnimDigging
	if side < 0 {
		p.Facing = FacingLeft
	} else {
		p.Facing = FacingRight
	}
	return true
}

// updatePlayer runs the dig action and movement for the player.
func updatePlayer(s *GameState, w *world, dt float64, in Input) {
	p := &s.Player
	p.DigCooldown = max(p.DigCooldown-dt, 0)

	if in.DigLeft && w.tryDig(p, -1, s.Dug) {
		return
	}
	if in.DigRight && w.tryDig(p, 1, s.Dug) {
		return
	}

	w.step(&p.Entity, w.params.PlayerSpeed, dt, func(c Cell) Dir {
		return w.playerDir(c, in)
	})

	// The digging pose holds until the player moves again.
	if p.Anim == AnimDigging && p.DigCooldown > 0 && p.Target == p.Cell && !p.Falling {
		return
	}
	p.Anim = w.animFor(&p.Entity, in.AnyDirection())
}

// tickDug advances every dug brick and collapses the ones that finished
// filling. Cells are processed in row-major order.
func tickDug(s *GameState, p *Params, dt float64) {
	cells := make([]Cell, 0, len(s.Dug))
	for c := range s.Dug {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})

	for _, c := range cells {
		b := s.Dug[c]
		b.Timer -= dt
		if b.Timer > 0 {
			s.Dug[c] = b
			continue
		}
		if b.Phase == DigOpen {
			b.Phase = DigFilling
			b.Timer = p.FillDuration
			s.Dug[c] = b
			continue
		}
		delete(s.Dug, c)
		collapse(s, p, c)
	}
}

// collapse resolves a brick that finished regenerating at c. Anything
// inside is crushed.
func collapse(s *GameState, p *Params, c Cell) {
	if s.Player.Alive && s.Player.Cell == c {
		s.Player.Alive = false
	}
	for i := range s.Guards {
		g := &s.Guards[i]
		if g.State == GuardDead || g.Cell != c {
			continue
		}
		g.State = GuardDead
		g.RespawnTimer = p.GuardRespawnTime
		g.TrapTimer = 0
		g.Falling = false
		g.Target = g.Cell
		s.Score += p.GuardTrapPoints
		if g.CarriesGold {
			g.CarriesGold = false
			dropGold(s, c.Above(), g.RespawnCell)
		}
	}
}

// dropGold returns carried gold to the map at the first free cell found
// going up the column from at, then the fallback cell, then anywhere.
func dropGold(s *GameState, at, fallback Cell) {
	free := func(c Cell) bool {
		if !s.Grid.InBounds(c) || s.Gold.Has(c) {
			return false
		}
		switch s.Grid.At(c) {
		case TileSolid, TileBrick:
			return false
		}
		return true
	}

	place := func(c Cell) {
		s.Gold.Set(c)
		s.GoldRemaining++
	}

	for c := at; c.Row >= 0; c = c.Above() {
		if free(c) {
			place(c)
			return
		}
	}
	if free(fallback) {
		place(fallback)
		return
	}
	for row := range s.Grid.Rows {
		for col := range s.Grid.Cols {
			if c := (Cell{Col: col, Row: row}); free(c) {
				place(c)
				return
			}
		}
	}
}
