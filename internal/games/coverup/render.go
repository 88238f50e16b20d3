package coverup

import (
	"fmt"

	"github.com/vovakirdan/math-arcade/internal/core"
)

// frameSize returns the outer size of the drawn frame.
func (g *Game) frameSize() (w, h int) {
	return g.frame.Cols()*cellW + 1, 2*cellH + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.runtime.ScreenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	dst.DrawTextCenteredColored(0, "COVER UP", core.ColorTitle)
	dst.DrawTextCentered(1, fmt.Sprintf("Frame: %d  Counters: %d  Score: %d/%d",
		g.frame.Size(), g.frame.Count(), g.score, g.attempts))

	w, h := g.frameSize()
	x0 := (g.runtime.ScreenW - w) / 2
	y0 := 4
	g.renderFrame(dst, x0, y0)

	y := y0 + h + 1
	if g.number > 0 {
		dst.DrawTextCenteredColored(y, fmt.Sprintf("Take away: %d", g.number), core.ColorBrightYellow)
	}
	if g.message != "" {
		c := core.ColorIncorrect
		if g.correct {
			c = core.ColorCorrect
		}
		dst.DrawTextCenteredColored(y+2, g.message, c)
	}

	dst.DrawTextCenteredColored(g.runtime.ScreenH-2, g.Controls(), core.ColorMuted)
	dst.DrawTextCenteredColored(g.runtime.ScreenH-1, "+/-: Frame size | Enter: Check | P: Pause", core.ColorMuted)

	if g.paused {
		box := core.CenteredRect(g.runtime.ScreenW, g.runtime.ScreenH, 21, 4)
		dst.DrawRect(box, ' ')
		dst.DrawBoxColored(box, core.ColorTitle)
		dst.DrawTextCentered(box.Y+1, "PAUSED")
		dst.DrawTextCentered(box.Y+2, "Press P to resume")
	}
}

// renderFrame draws two rows of cells with a counter in every filled one.
// The missing cell of an odd frame is shaded.
func (g *Game) renderFrame(dst *core.Screen, x0, y0 int) {
	cols := g.frame.Cols()

	for row := range 3 {
		for col := range cols + 1 {
			x := x0 + col*cellW
			y := y0 + row*cellH
			dst.Set(x, y, junction(col, row, cols, 2))
			if col < cols {
				dst.DrawHLine(x+1, y, cellW-1, '─')
			}
			if row < 2 {
				for i := 1; i < cellH; i++ {
					dst.Set(x, y+i, '│')
				}
			}
		}
	}

	for col := range cols {
		for row := range 2 {
			x := x0 + col*cellW + 1
			y := y0 + row*cellH + 1
			i := g.frame.Index(col, row)
			if i < 0 {
				dst.DrawTextColored(x, y, "░░░░", core.ColorMuted)
				continue
			}

			mark := " "
			if g.frame.Filled(i) {
				mark = "●"
			}
			text := fmt.Sprintf(" %s  ", mark)
			c := core.ColorBrightRed
			if col == g.cursor.X && row == g.cursor.Y {
				text = fmt.Sprintf("[%s] ", mark)
				c = core.ColorCursor
			}
			dst.DrawTextColored(x, y, text, c)
		}
	}
}

func junction(col, row, cols, rows int) rune {
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == cols:
		return '┐'
	case row == rows && col == 0:
		return '└'
	case row == rows && col == cols:
		return '┘'
	case row == 0:
		return '┬'
	case row == rows:
		return '┴'
	case col == 0:
		return '├'
	case col == cols:
		return '┤'
	default:
		return '┼'
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Counter | N: New number | C: Clear"
}
