// Package digger adapts the dig-and-evade simulation in the engine package
// to the arcade platform: it latches terminal key presses into held
// directions, clamps the simulation step, advances levels and renders the
// board into a core.Screen.
package digger

import (
	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
	"github.com/vovakirdan/tui-digger/internal/games/digger/levels"
	"github.com/vovakirdan/tui-digger/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through the level table, win at the end
	ModeEndless                  // Wrap to the first level after the last one
)

// Session settings set via CLI before the platform calls Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       = 1
	resume           *Resume
)

// Resume is a saved position to continue from.
type Resume struct {
	Level int
	Score int
	Lives int
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetStartLevel sets the 1-based level a new game starts on.
func SetStartLevel(level int) {
	startLevel = max(level, 1)
}

// SetResume makes games created afterwards continue from r instead of
// starting fresh. A nil r clears it.
func SetResume(r *Resume) {
	resume = r
}

// Game implements registry.Game for the digger.
type Game struct {
	mode GameMode

	runtime    core.RuntimeConfig
	cfg        config.DiggerConfig
	difficulty *config.DifficultyManager
	defs       []engine.LevelDef

	eng   *engine.Engine
	state *engine.GameState
	latch inputLatch
	dt    float64

	start  int     // 1-based level a fresh session starts on
	resume *Resume // Saved position for the first session, if any

	stage      int // Levels entered this session, counting from 1
	tick       uint64
	paused     bool
	clearDelay int // Ticks left before a cleared level advances
}

// New creates a new digger game in campaign mode.
func New() *Game {
	return &Game{mode: ModeCampaign, start: startLevel, resume: resume}
}

// NewEndless creates a new digger game in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, start: startLevel, resume: resume}
}

// StartAt overrides the CLI settings for this instance: the next Reset
// starts on level, or continues from r when r is non-nil.
func (g *Game) StartAt(level int, r *Resume) {
	g.start = max(level, 1)
	g.resume = r
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "digger_endless"
	}
	return "digger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Digger (Endless)"
	}
	return "Digger"
}

// Reset loads configuration and the level table and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// LoadDigger returns usable defaults alongside any error.
	cfg, _ := config.LoadDigger(configPath)
	if difficultyPreset != "" {
		config.ApplyDiggerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Table falls back to the built-in campaign on error; the CLI reports it.
	g.defs, _ = levels.Table()

	g.begin()
}

// begin starts the session from the configured start level or saved progress.
func (g *Game) begin() {
	g.tick = 0
	g.paused = false
	g.clearDelay = 0
	g.latch = newInputLatch(g.cfg.Input.HoldMS, g.runtime.TickRate)

	level := g.start
	progress := engine.Progress{Score: 0, Lives: g.cfg.Gameplay.Lives}
	if r := g.resume; r != nil {
		level = r.Level
		progress = engine.Progress{Score: r.Score, Lives: max(r.Lives, 1)}
	}

	g.stage = max(level, 1)
	g.rebuild(progress.Score)
	g.state = g.eng.Loader().LoadWithProgress(level, progress)
	g.stage = g.state.Level
}

// rebuild creates an engine whose parameters reflect the difficulty of the
// current stage.
func (g *Game) rebuild(score int) {
	p := g.params(score)
	g.eng = engine.New(engine.NewLoader(g.defs, p))
	g.dt = stepDT(g.runtime.TickRate, g.cfg.Gameplay.MaxDT, p)
}

// params maps the loaded configuration onto engine parameters.
func (g *Game) params(score int) engine.Params {
	c := g.cfg
	return engine.Params{
		CellSize:       c.Physics.CellSize,
		PlayerSpeed:    c.Physics.PlayerSpeed,
		GuardSpeed:     g.difficulty.GuardSpeed(c.Physics.GuardSpeed, score, g.stage),
		FallSpeed:      c.Physics.FallSpeed,
		AlignTolerance: c.Physics.AlignTolerance,

		DigCooldown:      c.Timers.DigCooldown,
		OpenDuration:     g.difficulty.OpenDuration(c.Timers.Open, score, g.stage),
		FillDuration:     c.Timers.Fill,
		TrapMargin:       c.Timers.TrapMargin,
		ClimbRetry:       c.Timers.ClimbRetry,
		GuardRespawnTime: c.Timers.GuardRespawn,

		CollisionFraction: c.Physics.CollisionFraction,

		GoldPoints:          c.Scoring.Gold,
		GuardTrapPoints:     c.Scoring.GuardTrap,
		LevelCompletePoints: c.Scoring.LevelComplete,
		StartLives:          c.Gameplay.Lives,
	}
}

// stepDT returns the fixed simulation step for a tick rate, clamped so no
// entity crosses a cell in one update.
func stepDT(tickRate int, maxDT float64, p engine.Params) float64 {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	dt := 1 / float64(tickRate)
	if maxDT > 0 {
		dt = min(dt, maxDT)
	}
	if ms := p.MaxStep(); ms > 0 {
		dt = min(dt, ms)
	}
	return dt
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.state

	if in.Has(core.ActionRestart) && (s.GameOver || s.Won) {
		g.resume = nil
		g.begin()
		return core.StepResult{State: g.State(), LevelChanged: true}
	}

	if in.Has(core.ActionPause) && !s.Terminal() {
		g.paused = !g.paused
		g.latch.release()
	}
	if g.paused || s.GameOver || s.Won {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if s.LevelComplete {
		if g.clearDelay > 0 {
			g.clearDelay--
			return core.StepResult{State: g.State()}
		}
		return core.StepResult{State: g.State(), LevelChanged: g.advance()}
	}

	g.state = g.eng.Update(s, g.dt, g.latch.apply(in))
	if g.state.LevelComplete {
		g.clearDelay = g.cfg.Gameplay.LevelClearDelay
		g.latch.release()
	}
	return core.StepResult{State: g.State()}
}

// advance moves past a cleared level. It reports whether a new level was
// loaded; a finished campaign sets Won instead.
func (g *Game) advance() bool {
	g.stage++
	g.rebuild(g.state.Score)

	next := g.eng.NextLevel(g.state)
	if next.Won && g.mode == ModeEndless {
		next = g.eng.Loader().LoadWithProgress(1, engine.Progress{Score: g.state.Score, Lives: g.state.Lives})
	}
	g.state = next
	return !next.Won
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.state
	if s == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		Lives:    s.Lives,
		GameOver: s.GameOver || s.Won,
		Won:      s.Won,
		Paused:   g.paused,
	}
}

// Stage returns how many levels this session has entered, counting the
// current one. In endless mode it keeps growing after the table wraps.
func (g *Game) Stage() int {
	return g.stage
}

// Current returns the current simulation state. The value must not be modified.
func (g *Game) Current() *engine.GameState {
	return g.state
}

// Register the games with the registry
func init() {
	registry.Register("digger", func() registry.Game {
		return New()
	})
	registry.Register("digger_endless", func() registry.Game {
		return NewEndless()
	})
}
