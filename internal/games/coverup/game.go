package coverup

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/metrics"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "coverup"

const (
	cellW      = 5
	cellH      = 2
	minScreenH = 16
)

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements the ten-frame cover-up. It has no game over; the score
// counts subtractions checked correctly.
type Game struct {
	rng     *rand.Rand
	runtime core.RuntimeConfig
	metrics *metrics.Metrics
	frame   *Frame

	cursor  core.Point // Column and row in the frame
	number  int        // Number to take away, 0 when hidden
	message string
	correct bool

	score    int
	attempts int

	paused   bool
	tooSmall bool
}

// New creates a cover-up game.
func New() *Game {
	return &Game{metrics: metrics.Default()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cover Up"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Take counters off a ten frame to subtract"
}

// Reset builds an empty frame of the configured size.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.score = 0
	g.attempts = 0
	g.paused = false
	g.resize(config.Active().CoverUp.FrameSize)
}

// resize replaces the frame and hides the number.
func (g *Game) resize(size int) {
	g.frame = NewFrame(core.Clamp(size, config.MinFrameSize, config.MaxFrameSize))
	g.cursor = core.Point{}
	g.number = 0
	g.message = ""
	g.checkScreenSize()
}

// Resize follows a terminal resize without clearing the frame.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, _ := g.frameSize()
	g.tooSmall = g.runtime.ScreenW < w+2 || g.runtime.ScreenH < minScreenH
}

// SettingsKey groups scores by frame size.
func (g *Game) SettingsKey() string {
	return fmt.Sprintf("f%d", g.frame.Size())
}

// Frame exposes the frame, mainly for tests.
func (g *Game) Frame() *Frame {
	return g.frame
}

// Number returns the number to take away, or 0 when none is shown.
func (g *Game) Number() int {
	return g.number
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

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionSelect):
		g.frame.Toggle(g.frame.Index(g.cursor.X, g.cursor.Y))
	case in.Has(core.ActionClear):
		g.frame.Clear()
		g.number = 0
		g.message = ""
	case in.Has(core.ActionNew):
		g.number = g.frame.Random(g.rng)
		g.message = ""
	case in.Has(core.ActionMore):
		g.resize(g.frame.Size() + 1)
	case in.Has(core.ActionLess):
		g.resize(g.frame.Size() - 1)
	case in.Has(core.ActionConfirm):
		g.check()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor walks the frame columns and rows. Moving onto the missing
// bottom cell of an odd frame lands on the top cell instead.
func (g *Game) moveCursor(in core.InputFrame) {
	p := g.cursor
	switch {
	case in.Has(core.ActionUp), in.Has(core.ActionDown):
		p.Y = 1 - p.Y
	case in.Has(core.ActionLeft):
		p.X = core.Wrap(p.X-1, g.frame.Cols())
	case in.Has(core.ActionRight):
		p.X = core.Wrap(p.X+1, g.frame.Cols())
	default:
		return
	}
	if g.frame.Index(p.X, p.Y) < 0 {
		p.Y = 0
	}
	g.cursor = p
}

// check grades a subtraction: the player must have removed exactly the
// shown number of counters.
func (g *Game) check() {
	if g.number == 0 {
		return
	}
	size := g.frame.Size()
	left := g.frame.Count()
	removed := size - left

	g.attempts++
	g.correct = removed == g.number
	if g.correct {
		g.score++
		g.message = fmt.Sprintf("Yes! %d - %d = %d", size, g.number, left)
	} else {
		g.message = fmt.Sprintf("You took away %d. Take away %d.", removed, g.number)
	}
	if g.metrics != nil {
		g.metrics.ObserveAnswer(ID, g.correct)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Attempts: g.attempts,
		Paused:   g.paused || g.tooSmall,
	}
}
