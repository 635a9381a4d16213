package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-digger/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildStyles(os.Getenv("NO_COLOR") != "")

func buildStyles(mono bool) map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" && !mono {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

// SetMonochrome switches rendering between colored and plain output.
// Call it before any program starts.
func SetMonochrome(mono bool) {
	colorStyles = buildStyles(mono)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are written as one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Board glyphs are multi-byte; leave room for them and the ANSI codes.
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyles[color].Render(run.String()))
		}
	}
	return sb.String()
}
