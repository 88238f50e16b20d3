package dotcards

import (
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/metrics"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// ID is the registry and storage identifier.
const ID = "dotcards"

const (
	minScreenW = 50
	minScreenH = 20
)

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements the dot flashcards. There is no game over; the deck
// weights are what carries over between sessions.
type Game struct {
	rng     *rand.Rand
	runtime core.RuntimeConfig
	metrics *metrics.Metrics
	deck    *Deck

	showSeconds int
	probSeconds float64

	current   int // Card on the table, 0 before the first draw
	showTicks int // Ticks the card stays visible
	probTicks int // Ticks the probability table stays visible
	seen      int
	marked    int
	message   string

	paused   bool
	tooSmall bool
}

// New creates a dot card game with a fresh deck.
func New() *Game {
	return &Game{
		metrics: metrics.Default(),
		deck:    NewDeck(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dot Cards"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Flash a dot card and count the dots at a glance"
}

// Reset draws the first card. Deck weights are kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg := config.Active().DotCards

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.showSeconds = cfg.ShowSeconds
	g.probSeconds = cfg.ProbabilitySeconds
	g.current = 0
	g.seen = 0
	g.marked = 0
	g.probTicks = 0
	g.message = ""
	g.paused = false
	g.checkScreenSize()

	g.next()
}

// Resize follows a terminal resize without redrawing the card.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH
}

// Weights returns the deck weights for storage.
func (g *Game) Weights() map[int]int {
	return g.deck.Weights()
}

// SetWeights loads saved deck weights.
func (g *Game) SetWeights(w map[int]int) {
	g.deck.SetWeights(w)
}

// Deck exposes the weights, mainly for tests and tools.
func (g *Game) Deck() *Deck {
	return g.deck
}

// Current returns the card on the table.
func (g *Game) Current() int {
	return g.current
}

// Showing reports whether the current card is face up.
func (g *Game) Showing() bool {
	return g.showTicks > 0
}

func (g *Game) next() {
	g.current = g.deck.Pick(g.rng, g.current)
	g.seen++
	g.message = ""
	g.show()
}

func (g *Game) show() {
	g.showTicks = g.runtime.Seconds(float64(g.showSeconds))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	if g.showTicks > 0 {
		g.showTicks--
	}
	if g.probTicks > 0 {
		g.probTicks--
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.showSeconds = min(g.showSeconds+1, config.MaxShowSeconds)
	case in.Has(core.ActionDown):
		g.showSeconds = max(g.showSeconds-1, config.MinShowSeconds)
	}

	switch {
	case in.Has(core.ActionNew), in.Has(core.ActionConfirm):
		g.next()
	case in.Has(core.ActionRepeat):
		if g.current > 0 {
			g.show()
		}
	case in.Has(core.ActionLess):
		g.mark(true)
	case in.Has(core.ActionMore):
		g.mark(false)
	case in.Has(core.ActionClear):
		g.deck.Reset()
		g.message = "Progress reset. Every card is equally likely."
	case in.Has(core.ActionHint):
		g.probTicks = g.runtime.Seconds(g.probSeconds)
	}
}

// mark records whether the player counted the current card correctly.
// Knowing a card makes it rarer, missing it makes it more common.
func (g *Game) mark(knew bool) {
	if g.current == 0 {
		return
	}
	if knew {
		g.deck.Knew(g.current)
		g.message = "Nice! That card will come up less."
	} else {
		g.deck.Missed(g.current)
		g.message = "That card will come up more often."
	}
	g.marked++
	if g.metrics != nil {
		g.metrics.ObserveAnswer(ID, knew)
	}
}

// State returns the current game state. Score counts cards seen.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.seen,
		Attempts: g.marked,
		Paused:   g.paused || g.tooSmall,
	}
}
