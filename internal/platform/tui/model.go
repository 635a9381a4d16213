package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/registry"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	progressKey string // Saved-progress key; empty disables saving
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	standalone  bool // Quit the program on back-to-menu
	quitting    bool
	backToMenu  bool
	scoreSaved  bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game. Progress
// is saved under progressKey on every level change.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, progressKey string) GameModel {
	return GameModel{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		config:      cfg,
		progressKey: progressKey,
		inputFrame:  core.NewInputFrame(),
		keyMapper:   NewKeyMapper(),
	}
}

// Init starts the tick loop. The game must already be Reset; Bubble Tea
// discards changes made to a value receiver here.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board has a fixed size; the renderer reports when it doesn't fit.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu from a paused or finished game
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.LevelChanged {
		m.scoreSaved = false
		m.saveProgress()
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run and drops the saved progress it came from.
func (m *GameModel) saveScore() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level)
	}
	if m.progressKey != "" {
		//nolint:errcheck // Best-effort clear
		m.store.ClearProgress(m.progressKey)
	}
}

// saveProgress stores the level just entered so the run can be continued.
func (m *GameModel) saveProgress() {
	if m.store == nil || m.progressKey == "" || m.gameState.GameOver {
		return
	}
	st := m.gameState
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveProgress(m.progressKey, st.Level, st.Score, st.Lives)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run resets the game and runs it as a standalone Bubble Tea program.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	game.Reset(cfg)
	model := NewGameModel(game, store, cfg, ProgressKey(game.ID(), ""))
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	gm, ok := final.(GameModel)
	return ok && gm.BackToMenu(), nil
}

// ProgressKey returns the saved-progress key for gameID played by user, or ""
// when the mode keeps no progress. Only the campaign can be continued.
func ProgressKey(gameID, user string) string {
	if gameID != "digger" {
		return ""
	}
	if user == "" {
		return gameID
	}
	return gameID + "@" + user
}
