package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/games/digger"
	"github.com/vovakirdan/tui-digger/internal/games/digger/levels"
	"github.com/vovakirdan/tui-digger/internal/registry"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

// menuEntry identifies a line of the main menu.
type menuEntry int

const (
	entryContinue menuEntry = iota
	entryCampaign
	entryEndless
	entryLevels
	entryScores
	entryQuit
)

// MenuSelection is a game chosen from the menu.
type MenuSelection struct {
	GameID string
	Level  int            // 1-based start level
	Resume *digger.Resume // Non-nil to continue saved progress
}

// MenuModel is the Bubble Tea model for the main menu and level picker.
type MenuModel struct {
	entries        []menuEntry
	cursor         int
	levelNames     []string
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	progress       *storage.Progress
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuSelection // Set when user selects a game
	openScoreboard bool           // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model. The Continue entry appears when
// store holds progress under progressKey.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, progressKey string) MenuModel {
	var progress *storage.Progress
	if store != nil && progressKey != "" {
		// A failed lookup just hides the Continue entry.
		progress, _ = store.LoadProgress(progressKey)
	}

	entries := make([]menuEntry, 0, 6)
	if progress != nil {
		entries = append(entries, entryContinue)
	}
	entries = append(entries, entryCampaign, entryEndless, entryLevels, entryScores, entryQuit)

	// The table falls back to the built-in campaign; the CLI reports errors.
	defs, _ := levels.Table()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
		if names[i] == "" {
			names[i] = d.ID
		}
	}

	return MenuModel{
		entries:    entries,
		levelNames: names,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		progress:   progress,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for the main list.
func (m MenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		return m.choose(m.entries[m.cursor])
	}

	return m, nil
}

func (m MenuModel) choose(e menuEntry) (tea.Model, tea.Cmd) {
	switch e {
	case entryContinue:
		p := m.progress
		m.selected = &MenuSelection{
			GameID: "digger",
			Level:  p.Level,
			Resume: &digger.Resume{Level: p.Level, Score: p.Score, Lives: p.Lives},
		}
	case entryCampaign:
		m.selected = &MenuSelection{GameID: "digger", Level: 1}
	case entryEndless:
		m.selected = &MenuSelection{GameID: "digger_endless", Level: 1}
	case entryLevels:
		m.inLevelSelect = true
		m.levelCursor = 0
		return m, nil
	case entryScores:
		m.openScoreboard = true
	case entryQuit:
		m.quitting = true
	}
	return m, tea.Quit
}

func (m MenuModel) entryLabel(e menuEntry) string {
	switch e {
	case entryContinue:
		return fmt.Sprintf("Continue (level %d, score %d)", m.progress.Level, m.progress.Score)
	case entryCampaign:
		return fmt.Sprintf("New Campaign (%d levels)", len(m.levelNames))
	case entryEndless:
		return "Endless Mode"
	case entryLevels:
		return "Select Level..."
	case entryScores:
		return "High Scores"
	default:
		return "Quit"
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "D I G G E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Collect the gold, dig traps, climb out", m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		line := "  " + m.entryLabel(e)
		if i == m.cursor {
			b.WriteString(centerStyled(menuCursorStyle, "> "+m.entryLabel(e), m.width))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle, "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerStyled centers text and applies a style to the text only.
func centerStyled(style lipgloss.Style, text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-w)/2) + style.Render(text)
}

// NewSelectedGame creates the game for a menu selection.
func NewSelectedGame(sel MenuSelection) (registry.Game, error) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		return nil, err
	}
	if dg, ok := game.(*digger.Game); ok {
		dg.StartAt(sel.Level, sel.Resume)
	}
	return game, nil
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *MenuSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg, ProgressKey("digger", ""))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
