package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleLevelSelectKey processes input while picking a start level.
func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levelNames)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if len(m.levelNames) == 0 {
			return m, nil
		}
		m.selected = &MenuSelection{
			GameID: "digger",
			Level:  m.levelCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// viewLevelSelect renders the level list, scrolled to keep the cursor visible.
func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	first, last := levelWindow(m.levelCursor, len(m.levelNames), m.height-8)
	for i := first; i < last; i++ {
		line := fmt.Sprintf("%2d. %s", i+1, m.levelNames[i])
		if i == m.levelCursor {
			b.WriteString(centerStyled(menuCursorStyle, "> "+line, m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle, "Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// levelWindow returns the [first, last) range of rows to show so that cursor
// stays visible in a list of n entries with room for size rows.
func levelWindow(cursor, n, size int) (int, int) {
	if size < 1 {
		size = 1
	}
	if n <= size {
		return 0, n
	}
	first := cursor - size/2
	first = max(0, min(first, n-size))
	return first, first + size
}
