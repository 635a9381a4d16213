package engine

// Engine sequences one simulation tick and level transitions.
type Engine struct {
	params Params
	loader *Loader
}

// New creates an engine that reloads and advances levels through loader.
// The loader's parameters drive the simulation.
func New(loader *Loader) *Engine {
	return &Engine{params: loader.Params(), loader: loader}
}

// Params returns the simulation parameters.
func (e *Engine) Params() Params {
	return e.params
}

// Loader returns the level loader.
func (e *Engine) Loader() *Loader {
	return e.loader
}

// Update advances s by dt seconds and returns the next state. The argument
// is never modified. A state with a terminal flag is returned unchanged.
//
// dt must be small enough that no entity covers a cell in one tick;
// see Params.MaxStep.
func (e *Engine) Update(s *GameState, dt float64, in Input) *GameState {
	if s.Terminal() {
		return s
	}

	if !s.Player.Alive {
		lives := s.Lives - 1
		if lives <= 0 {
			next := s.Clone()
			next.Lives = 0
			next.GameOver = true
			return next
		}
		return e.loader.LoadWithProgress(s.Level, Progress{Score: s.Score, Lives: lives})
	}

	next := s.Clone()
	next.AnimTime += dt

	updatePlayer(next, newWorld(next, &e.params), dt, in)
	updateGuards(next, newWorld(next, &e.params), dt)
	tickDug(next, &e.params, dt)
	resolveCollisions(next, &e.params)
	return next
}

// NextLevel loads the level after s, keeping score and lives. When s is
// the last level it returns a copy of s with Won set.
func (e *Engine) NextLevel(s *GameState) *GameState {
	if s.Level >= e.loader.Count() {
		next := s.Clone()
		next.Won = true
		return next
	}
	return e.loader.LoadWithProgress(s.Level+1, Progress{Score: s.Score, Lives: s.Lives})
}
