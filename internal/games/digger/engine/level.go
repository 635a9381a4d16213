package engine

// Level alphabet.
const (
	SymEmpty  = '.'
	SymBrick  = 'B'
	SymSolid  = 'S'
	SymLadder = 'H'
	SymBar    = '-'
	SymGold   = 'G'
	SymPlayer = 'P'
	SymGuard  = 'E'
	SymEscape = 'T'
)

// LevelDef is one authored level: a list of equal-width rows using the
// level alphabet. Short rows are padded with empty cells.
type LevelDef struct {
	ID   string
	Name string
	Rows []string
}

// Progress carries score and lives across level transitions.
type Progress struct {
	Score int
	Lives int
}

// level is a parsed LevelDef ready to be instantiated.
type level struct {
	def    LevelDef
	grid   *Grid
	gold   *GoldMap
	player Cell
	guards []Cell
}

// Loader builds fresh game states from an immutable level table.
type Loader struct {
	params Params
	levels []level
}

// NewLoader parses the level table once. The table is not retained, so the
// caller may reuse the slice.
func NewLoader(defs []LevelDef, p Params) *Loader {
	l := &Loader{params: p}
	for _, d := range defs {
		l.levels = append(l.levels, parseLevel(d))
	}
	if len(l.levels) == 0 {
		l.levels = append(l.levels, parseLevel(LevelDef{ID: "empty", Name: "Empty", Rows: []string{"P"}}))
	}
	return l
}

// Params returns the parameters new states are built with.
func (l *Loader) Params() Params {
	return l.params
}

// Count returns the number of levels.
func (l *Loader) Count() int {
	return len(l.levels)
}

// Def returns the definition of a level after index clamping.
func (l *Loader) Def(index int) LevelDef {
	return l.levels[l.clamp(index)-1].def
}

// Load returns a fresh state for the 1-based level index with starting
// score and lives.
func (l *Loader) Load(index int) *GameState {
	return l.LoadWithProgress(index, Progress{Score: 0, Lives: l.params.StartLives})
}

// LoadWithProgress returns a fresh state for the level, carrying over score
// and lives. Indices outside [1, Count] are clamped.
func (l *Loader) LoadWithProgress(index int, p Progress) *GameState {
	index = l.clamp(index)
	lv := l.levels[index-1]
	size := l.params.CellSize

	s := &GameState{
		Grid:          lv.grid,
		Gold:          lv.gold.Clone(),
		Dug:           make(map[Cell]DugBrick),
		GoldRemaining: lv.gold.Count(),
		Level:         index,
		Lives:         p.Lives,
		Score:         p.Score,
		LevelID:       lv.def.ID,
		LevelName:     lv.def.Name,
	}
	s.Player = Player{Entity: newEntity(lv.player, size), Alive: true}
	s.Guards = make([]Guard, 0, len(lv.guards))
	for _, c := range lv.guards {
		s.Guards = append(s.Guards, Guard{
			Entity:      newEntity(c, size),
			State:       GuardChasing,
			RespawnCell: c,
		})
	}
	return s
}

func (l *Loader) clamp(index int) int {
	if index < 1 {
		return 1
	}
	if index > len(l.levels) {
		return len(l.levels)
	}
	return index
}

// parseLevel converts the character rows. Markers become empty tiles.
// Unknown characters are treated as empty.
func parseLevel(def LevelDef) level {
	cols := 0
	for _, row := range def.Rows {
		cols = max(cols, len([]rune(row)))
	}
	rows := len(def.Rows)
	if cols == 0 || rows == 0 {
		cols, rows = 1, 1
	}

	lv := level{
		def:  def,
		grid: NewGrid(cols, rows),
		gold: NewGoldMap(cols, rows),
	}
	playerSet := false

	for r, line := range def.Rows {
		for col, ch := range []rune(line) {
			c := Cell{Col: col, Row: r}
			switch ch {
			case SymBrick:
				lv.grid.set(c, TileBrick)
			case SymSolid:
				lv.grid.set(c, TileSolid)
			case SymLadder:
				lv.grid.set(c, TileLadder)
			case SymBar:
				lv.grid.set(c, TileBar)
			case SymEscape:
				lv.grid.set(c, TileHiddenLadder)
			case SymGold:
				lv.gold.Set(c)
			case SymPlayer:
				if !playerSet {
					lv.player = c
					playerSet = true
				}
			case SymGuard:
				lv.guards = append(lv.guards, c)
			}
		}
	}
	return lv
}
