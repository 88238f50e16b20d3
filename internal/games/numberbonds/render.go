package numberbonds

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/math-arcade/internal/core"
)

const circleW = 6

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.runtime.ScreenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	dst.DrawTextCenteredColored(0, "NUMBER BONDS", core.ColorTitle)
	dst.DrawTextCentered(1, fmt.Sprintf("Score: %d / %d", g.score, g.total))
	dst.DrawTextCenteredColored(2, fmt.Sprintf("Problem %d of %d", min(g.total+1, g.cfg.Rounds), g.cfg.Rounds), core.ColorMuted)

	g.renderBond(dst, 4)

	dst.DrawTextCentered(13, fmt.Sprintf("Targets %d to %d", g.bounds.Min, g.bounds.Max))
	g.renderFeedback(dst, 15)

	dst.DrawTextCenteredColored(g.runtime.ScreenH-2, g.Controls(), core.ColorMuted)
	dst.DrawTextCenteredColored(g.runtime.ScreenH-1, "Left/Right: Min target | Up/Down: Max target | P: Pause", core.ColorMuted)

	switch {
	case g.paused:
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.drawOverlay(dst, "ROUND COMPLETE",
			fmt.Sprintf("You got %d of %d", g.score, g.total),
			"Press R to play again")
	}
}

// renderBond draws the whole on top and the two parts below it.
func (g *Game) renderBond(dst *core.Screen, y int) {
	cx := g.runtime.ScreenW / 2

	g.drawCircle(dst, cx-circleW/2, y, strconv.Itoa(g.problem.Target), core.ColorBrightWhite)

	dst.Set(cx-2, y+3, '/')
	dst.Set(cx-3, y+4, '/')
	dst.Set(cx+1, y+3, '\\')
	dst.Set(cx+2, y+4, '\\')

	leftX := cx - circleW - 3
	rightX := cx + 3
	g.drawCircle(dst, leftX, y+5, strconv.Itoa(g.problem.Known), core.ColorDefault)

	answerColor := core.ColorCursor
	switch g.feedback {
	case FeedbackCorrect:
		answerColor = core.ColorCorrect
	case FeedbackIncorrect:
		answerColor = core.ColorIncorrect
	}
	g.drawCircle(dst, rightX, y+5, g.input.String(), answerColor)
}

// drawCircle draws a small box with a centered label.
func (g *Game) drawCircle(dst *core.Screen, x, y int, label string, c core.Color) {
	dst.DrawBoxColored(core.NewRect(x, y, circleW, 3), c)
	pad := (circleW - 2 - len(label)) / 2
	dst.DrawTextColored(x+1+max(0, pad), y+1, label, c)
}

func (g *Game) renderFeedback(dst *core.Screen, y int) {
	switch g.feedback {
	case FeedbackCorrect:
		dst.DrawTextCenteredColored(y, g.feedbackText, core.ColorCorrect)
	case FeedbackIncorrect:
		dst.DrawTextCenteredColored(y, g.feedbackText, core.ColorIncorrect)
	case FeedbackHint:
		dst.DrawTextCenteredColored(y, g.feedbackText, core.ColorHint)
	}
}

func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	box := core.CenteredRect(g.runtime.ScreenW, g.runtime.ScreenH, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorTitle)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "0-9: Type | Enter: Check | Bksp: Delete | C: Clear | H: Hint | N: New"
}
