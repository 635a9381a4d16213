// Package engine implements the dig-and-evade simulation core: a tile grid,
// player and guard physics, the brick dig/regeneration lifecycle, guard AI,
// and scoring.
//
// The engine performs no I/O and never returns errors. Invalid moves are
// silently rejected and every outcome surfaces through GameState flags.
// The host calls Engine.Update once per frame with a clamped dt.
package engine

// Tile is the immutable content of one grid square.
type Tile uint8

const (
	TileEmpty        Tile = iota
	TileBrick             // diggable
	TileSolid             // never diggable
	TileLadder            // climbable
	TileBar               // hand-over-hand rope
	TileHiddenLadder      // escape ladder, climbable once revealed
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileBrick:
		return "brick"
	case TileSolid:
		return "solid"
	case TileLadder:
		return "ladder"
	case TileBar:
		return "bar"
	case TileHiddenLadder:
		return "hidden_ladder"
	default:
		return "unknown"
	}
}

// Cell addresses one grid square. Col grows to the right, Row grows downward.
type Cell struct {
	Col int
	Row int
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Below returns the cell directly underneath.
func (c Cell) Below() Cell {
	return c.Add(0, 1)
}

// Above returns the cell directly on top.
func (c Cell) Above() Cell {
	return c.Add(0, -1)
}

// Grid is the fixed-size base tile layout of a level.
// It is written only by the level loader; digging is tracked out-of-band.
type Grid struct {
	Cols  int
	Rows  int
	tiles []Tile
}

// NewGrid creates a grid of empty tiles.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		Cols:  cols,
		Rows:  rows,
		tiles: make([]Tile, cols*rows),
	}
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// At returns the tile at c. Out-of-bounds lookups return TileSolid so that
// nothing can walk or fall off the authored grid.
func (g *Grid) At(c Cell) Tile {
	if !g.InBounds(c) {
		return TileSolid
	}
	return g.tiles[c.Row*g.Cols+c.Col]
}

func (g *Grid) set(c Cell, t Tile) {
	if g.InBounds(c) {
		g.tiles[c.Row*g.Cols+c.Col] = t
	}
}

// GoldMap marks the cells that currently hold gold.
type GoldMap struct {
	Cols  int
	Rows  int
	cells []bool
}

// NewGoldMap creates an empty gold map.
func NewGoldMap(cols, rows int) *GoldMap {
	return &GoldMap{
		Cols:  cols,
		Rows:  rows,
		cells: make([]bool, cols*rows),
	}
}

func (m *GoldMap) index(c Cell) (int, bool) {
	if c.Col < 0 || c.Col >= m.Cols || c.Row < 0 || c.Row >= m.Rows {
		return 0, false
	}
	return c.Row*m.Cols + c.Col, true
}

// Has reports whether c holds gold.
func (m *GoldMap) Has(c Cell) bool {
	i, ok := m.index(c)
	return ok && m.cells[i]
}

// Set places gold at c.
func (m *GoldMap) Set(c Cell) {
	if i, ok := m.index(c); ok {
		m.cells[i] = true
	}
}

// Clear removes gold from c.
func (m *GoldMap) Clear(c Cell) {
	if i, ok := m.index(c); ok {
		m.cells[i] = false
	}
}

// Count returns the number of cells holding gold.
func (m *GoldMap) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (m *GoldMap) Clone() *GoldMap {
	cells := make([]bool, len(m.cells))
	copy(cells, m.cells)
	return &GoldMap{Cols: m.Cols, Rows: m.Rows, cells: cells}
}
