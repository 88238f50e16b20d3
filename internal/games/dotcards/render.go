package dotcards

import (
	"fmt"

	"github.com/vovakirdan/math-arcade/internal/core"
)

const (
	cardW    = 25
	cardH    = 9
	dotStepX = 4
	dotStepY = 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		y := g.runtime.ScreenH / 2
		dst.DrawTextCentered(y, "Window too small")
		dst.DrawTextCentered(y+1, "Please resize terminal")
		return
	}

	dst.DrawTextCenteredColored(0, "DOT CARDS", core.ColorTitle)
	dst.DrawTextCentered(1, fmt.Sprintf("Cards: %d  Marked: %d  Show time: %ds", g.seen, g.marked, g.showSeconds))

	card := core.CenteredRect(g.runtime.ScreenW, 0, cardW, cardH)
	card.Y = 3

	if g.probTicks > 0 {
		g.renderProbabilities(dst, card.Y)
	} else {
		g.renderCard(dst, card)
	}

	if g.message != "" {
		dst.DrawTextCenteredColored(card.Bottom()+1, g.message, core.ColorHint)
	}

	dst.DrawTextCenteredColored(g.runtime.ScreenH-2, g.Controls(), core.ColorMuted)
	dst.DrawTextCenteredColored(g.runtime.ScreenH-1, "H: Odds | C: Reset odds | Up/Down: Show time | P: Pause", core.ColorMuted)

	if g.paused {
		box := core.CenteredRect(g.runtime.ScreenW, g.runtime.ScreenH, 21, 4)
		dst.DrawRect(box, ' ')
		dst.DrawBoxColored(box, core.ColorTitle)
		dst.DrawTextCentered(box.Y+1, "PAUSED")
		dst.DrawTextCentered(box.Y+2, "Press P to resume")
	}
}

// renderCard draws the card face, or its back once the timer runs out.
func (g *Game) renderCard(dst *core.Screen, card core.Rect) {
	if !g.Showing() {
		dst.DrawBoxColored(card, core.ColorMuted)
		dst.DrawTextCenteredColored(card.Y+cardH/2, "How many dots?", core.ColorMuted)
		return
	}

	dst.DrawBoxColored(card, core.ColorBrightWhite)

	rows := Pattern(g.current)
	if len(rows) == 0 {
		return
	}
	w := (len(rows[0])-1)*dotStepX + 1
	h := (len(rows)-1)*dotStepY + 1
	x0 := card.X + (card.W-w)/2
	y0 := card.Y + (card.H-h)/2

	for y, row := range rows {
		for x, r := range row {
			if r == 'o' {
				dst.SetColored(x0+x*dotStepX, y0+y*dotStepY, '●', core.ColorBrightRed)
			}
		}
	}

	secs := (g.showTicks + max(g.runtime.TickRate, 1) - 1) / max(g.runtime.TickRate, 1)
	dst.DrawTextColored(card.Right()-4, card.Bottom(), fmt.Sprintf("%ds", secs), core.ColorMuted)
}

// renderProbabilities draws the weight table with the current card marked.
func (g *Game) renderProbabilities(dst *core.Screen, y int) {
	dst.DrawTextCenteredColored(y, "Card  Weight  Chance", core.ColorTitle)
	probs := g.deck.Probabilities()
	for c := 1; c <= NumCards; c++ {
		line := fmt.Sprintf("%4d  %6d  %5.1f%%", c, g.deck.Weight(c), probs[c-1]*100)
		color := core.ColorDefault
		if c == g.current {
			color = core.ColorCursor
		}
		dst.DrawTextCenteredColored(y+c, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "N/Enter: Next | V: Show again | -: Knew it | +: Missed it"
}
