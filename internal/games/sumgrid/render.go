package sumgrid

import (
	"fmt"

	"github.com/vovakirdan/math-arcade/internal/core"
)

const (
	cellWidth    = 5 // Width of each cell including its left border
	cellHeight   = 2 // Height of each cell including its top border
	hudHeight    = 3
	footerHeight = 2
	minScreenW   = 40
)

// boardSize returns the outer size of a board drawn with the given row
// height. Row height 1 drops the horizontal lines between rows.
func boardSize(gridSize, rowHeight int) (w, h int) {
	w = gridSize*cellWidth + 1
	if rowHeight < cellHeight {
		return w, gridSize + 2
	}
	return w, gridSize*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.session.Settings().GridSize
	rowHeight := cellHeight
	boardW, boardH := boardSize(size, rowHeight)
	if boardH+hudHeight+footerHeight > g.runtime.ScreenH {
		rowHeight = 1
		boardW, boardH = boardSize(size, rowHeight)
	}

	boardX := (g.runtime.ScreenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	if rowHeight == 1 {
		g.renderCompactBoard(dst, boardX, boardY)
	} else {
		g.renderBoard(dst, boardX, boardY)
	}
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the target, score, timer and running sum.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	s := g.session
	dst.DrawTextCenteredColored(0, "SUM GRID", core.ColorTitle)

	target := fmt.Sprintf("Target: %d", s.Settings().Target)
	dst.DrawTextColored(boardX, 1, target, core.ColorBrightWhite)

	secs := s.SecondsLeft()
	timer := fmt.Sprintf("%d:%02d", secs/60, secs%60)
	timerColor := core.ColorDefault
	if s.Running() && secs <= 10 {
		timerColor = core.ColorIncorrect
	}
	dst.DrawTextColored(boardX+boardW-len(timer), 1, timer, timerColor)

	score := fmt.Sprintf("Score: %d/%d", s.Score(), s.Attempts())
	dst.DrawText(boardX, 2, score)

	sum := fmt.Sprintf("Sum: %d", s.SelectionSum())
	sumColor := core.ColorDefault
	if s.SelectionSum() > s.Settings().Target {
		sumColor = core.ColorIncorrect
	}
	dst.DrawTextColored(boardX+boardW-len(sum), 2, sum, sumColor)
}

// renderBoard draws the grid with box-drawing lines between every cell.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.session.Settings().GridSize
	c := g.gridColor()

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, junction(x, y, size), c)
			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', c)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', c)
				}
			}
		}
	}

	for i := range g.session.Grid().Len() {
		x, y := g.session.Grid().Coord(i)
		g.renderCell(dst, boardX+x*cellWidth+1, boardY+y*cellHeight+1, i)
	}
}

// renderCompactBoard draws one text row per grid row for short terminals.
func (g *Game) renderCompactBoard(dst *core.Screen, boardX, boardY int) {
	size := g.session.Settings().GridSize
	w, h := boardSize(size, 1)
	c := g.gridColor()

	dst.DrawBoxColored(core.NewRect(boardX, boardY, w, h), c)
	for y := range size {
		for x := 1; x < size; x++ {
			dst.SetColored(boardX+x*cellWidth, boardY+1+y, '│', c)
		}
	}

	for i := range g.session.Grid().Len() {
		x, y := g.session.Grid().Coord(i)
		g.renderCell(dst, boardX+x*cellWidth+1, boardY+1+y, i)
	}
}

// renderCell writes a value into the 4-column cell interior at (x, y).
// The cursor is shown as brackets around the value.
func (g *Game) renderCell(dst *core.Screen, x, y, index int) {
	text := fmt.Sprintf(" %2d ", g.session.Grid().At(index))
	if index == g.cursor && g.session.Running() {
		text = fmt.Sprintf("[%2d]", g.session.Grid().At(index))
	}
	dst.DrawTextColored(x, y, text, g.cellColor(index))
}

func (g *Game) cellColor(index int) core.Color {
	s := g.session
	switch s.PendingOutcome(index) {
	case OutcomeCorrect:
		return core.ColorCorrect
	case OutcomeIncorrect:
		return core.ColorIncorrect
	}
	switch {
	case s.IsSelected(index):
		return core.ColorSelected
	case g.hint.Contains(index):
		return core.ColorHint
	case index == g.cursor && s.Running():
		return core.ColorCursor
	case !s.Running():
		return core.ColorMuted
	}
	return core.ColorDefault
}

func (g *Game) gridColor() core.Color {
	if g.session.Running() {
		return core.ColorDefault
	}
	return core.ColorMuted
}

func junction(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderFooter shows the last outcome or a status message and the controls.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch {
	case g.message != "":
		dst.DrawTextCentered(y, g.message)
	case g.outcome == OutcomeCorrect:
		dst.DrawTextCenteredColored(y, "Correct!", core.ColorCorrect)
	case g.outcome == OutcomeIncorrect:
		dst.DrawTextCenteredColored(y, "Not quite, try again", core.ColorIncorrect)
	}

	controls := g.Controls()
	if !g.session.Running() {
		controls = "S: Start | +/-: Target | N: Grid size | Q: Quit"
	}
	dst.DrawTextCenteredColored(y+1, controls, core.ColorMuted)
}

// renderOverlays draws the pause and round-over boxes.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.session.Over() {
		score := fmt.Sprintf("Score: %d of %d", g.session.Score(), g.session.Attempts())
		g.drawOverlay(dst, centerX, centerY, "TIME'S UP", score, "Press S or R to play again")
	}
}

// drawOverlay draws a boxed block of centered lines.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorTitle)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Pick | Enter: Check | H: Hint | C: Clear | P: Pause"
}
