package engine

import "math"

// resolveCollisions applies pickups, deaths and the escape check in their
// fixed order. Player pickup runs before guard pickup so a guard can never
// take gold the player collects on the same tick.
func resolveCollisions(s *GameState, p *Params) {
	pl := &s.Player

	if pl.Alive && s.Gold.Has(pl.Cell) {
		s.Gold.Clear(pl.Cell)
		s.Score += p.GoldPoints
		s.GoldRemaining--
		if s.GoldRemaining <= 0 {
			s.GoldRemaining = 0
			s.EscapeRevealed = true
		}
	}

	if pl.Alive {
		reach := p.CollisionFraction * p.CellSize
		for i := range s.Guards {
			g := &s.Guards[i]
			if !g.Dangerous() {
				continue
			}
			if math.Abs(g.X-pl.X) < reach && math.Abs(g.Y-pl.Y) < reach {
				pl.Alive = false
				break
			}
		}
	}

	if pl.Alive && s.EscapeRevealed && pl.Row == 0 {
		s.LevelComplete = true
		s.Score += p.LevelCompletePoints
	}

	// A guard taking the last gold leaves the escape hidden. It stays hidden
	// until that guard dies and the gold returns to the map.
	for i := range s.Guards {
		g := &s.Guards[i]
		if g.State != GuardChasing || g.CarriesGold {
			continue
		}
		if s.Gold.Has(g.Cell) {
			s.Gold.Clear(g.Cell)
			s.GoldRemaining--
			g.CarriesGold = true
		}
	}
}
