package digger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

// cellWidth is the number of terminal columns one grid cell occupies.
const cellWidth = 2

// glyph is a two-column tile picture.
type glyph struct {
	runes [2]rune
	color core.Color
}

var tileGlyphs = map[engine.Tile]glyph{
	engine.TileEmpty:  {[2]rune{' ', ' '}, core.ColorDefault},
	engine.TileBrick:  {[2]rune{'▓', '▓'}, core.ColorOrange},
	engine.TileSolid:  {[2]rune{'█', '█'}, core.ColorGray},
	engine.TileLadder: {[2]rune{'╟', '╢'}, core.ColorWhite},
	engine.TileBar:    {[2]rune{'─', '─'}, core.ColorWhite},
}

var (
	fillingGlyph = glyph{[2]rune{'░', '░'}, core.ColorOrange}
	goldGlyph    = glyph{[2]rune{'$', '$'}, core.ColorBrightYellow}
	deadGlyph    = glyph{[2]rune{'✕', '✕'}, core.ColorBrightRed}
)

var paletteColors = map[engine.Palette]core.Color{
	engine.PalettePlayer:    core.ColorBrightCyan,
	engine.PaletteGuard:     core.ColorBrightRed,
	engine.PaletteGuardGold: core.ColorBrightMagenta,
}

// layout places the board on a screen.
type layout struct {
	board  core.Rect // Screen area of the grid, frame excluded
	ox, oy int       // Screen position of cell (0, 0)
	minW   int
	minH   int
}

func (g *Game) layout(dst *core.Screen) layout {
	s := g.state
	boardW := s.Grid.Cols * cellWidth
	board := core.NewRect((dst.Width()-boardW)/2, 2, boardW, s.Grid.Rows)
	return layout{
		board: board,
		ox:    board.X,
		oy:    board.Y,
		minW:  board.Outset(1).W,
		minH:  s.Grid.Rows + 4,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	l := g.layout(dst)
	if dst.Width() < l.minW || dst.Height() < l.minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", l.minW, l.minH))
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst, l)
	g.renderEntities(dst, l)
	g.renderFooter(dst, l)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d   Gold: %d", s.Lives, s.GoldRemaining))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Stage: %d", g.stage)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", s.Level, g.eng.Loader().Count())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderBoard draws the frame, tiles and gold.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	s := g.state
	dst.DrawBoxColored(l.board.Outset(1), core.ColorGray)

	for row := range s.Grid.Rows {
		for col := range s.Grid.Cols {
			c := engine.Cell{Col: col, Row: row}

			gl := tileGlyphs[s.TileAt(c)]
			if b, ok := s.Dug[c]; ok && b.Phase == engine.DigFilling {
				gl = fillingGlyph
			}
			if s.Gold.Has(c) {
				gl = goldGlyph
			}
			drawGlyph(dst, l.ox+col*cellWidth, l.oy+row, gl)
		}
	}
}

// renderEntities draws guards, then the player on top.
func (g *Game) renderEntities(dst *core.Screen, l layout) {
	s := g.state
	size := g.eng.Params().CellSize
	frame := engine.FrameIndex(s.AnimTime)

	for i := range s.Guards {
		gd := &s.Guards[i]
		if gd.State == engine.GuardDead {
			continue
		}
		x, y := l.screenPos(&gd.Entity, size)
		l.drawEntity(dst, x, y, frameGlyph(engine.GuardFrame(gd, frame)))
	}

	x, y := l.screenPos(&s.Player.Entity, size)
	if !s.Player.Alive {
		l.drawEntity(dst, x, y, deadGlyph)
		return
	}
	l.drawEntity(dst, x, y, frameGlyph(engine.FrameFor(engine.KindPlayer, s.Player.Anim, frame)))
}

// drawEntity draws the half of gl that lands on the board, so a sprite
// between cells never overwrites the frame.
func (l layout) drawEntity(dst *core.Screen, x, y int, gl glyph) {
	for i, r := range gl.runes {
		if l.board.Contains(x+i, y) {
			dst.SetColored(x+i, y, r, gl.color)
		}
	}
}

// screenPos converts an entity's pixel position to the screen cell of its
// left glyph. Horizontal positions resolve to half a grid cell.
func (l layout) screenPos(e *engine.Entity, size float64) (int, int) {
	left := (e.X - size/2) / size * cellWidth
	top := (e.Y - size/2) / size
	return l.ox + int(math.Round(left)), l.oy + int(math.Round(top))
}

func frameGlyph(f engine.Frame) glyph {
	return glyph{runes: f.Glyphs, color: paletteColors[f.Palette]}
}

func drawGlyph(dst *core.Screen, x, y int, gl glyph) {
	dst.SetColored(x, y, gl.runes[0], gl.color)
	dst.SetColored(x+1, y, gl.runes[1], gl.color)
}

// renderFooter draws the level name and key hints under the board.
func (g *Game) renderFooter(dst *core.Screen, l layout) {
	y := l.oy + g.state.Grid.Rows + 1
	name := g.state.LevelName
	if name == "" {
		name = g.state.LevelID
	}
	dst.DrawTextColored(l.ox, y, name, core.ColorBrightWhite)

	hint := "←→↑↓ move  Z/X dig  P pause"
	if g.state.EscapeRevealed {
		hint = "Escape is open! Climb to the top"
	}
	dst.DrawTextColored(dst.Width()-len([]rune(hint))-1, y, hint, core.ColorGray)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.state
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case s.Won:
		g.drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", s.Score))
	case s.GameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	case s.LevelComplete:
		g.drawCenteredBox(dst, "LEVEL CLEAR", fmt.Sprintf("Score: %d", s.Score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	box := core.CenteredRect(dst.Width(), dst.Height(), core.Max(len(title), len(subtitle))+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)

	dst.DrawTextColored(box.X+(box.W-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle)
}
