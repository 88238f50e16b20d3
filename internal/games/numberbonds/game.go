package numberbonds

import (
	"math/rand"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/metrics"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "numberbonds"

const (
	minScreenW = 60
	minScreenH = 20
)

// Feedback is what the message line under the bond shows.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
	FeedbackHint
)

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements the number bonds drill.
type Game struct {
	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.NumberBondsConfig
	metrics *metrics.Metrics

	bounds  Range
	problem Problem
	input   Input

	score int
	total int

	feedback     Feedback
	feedbackText string
	nextTicks    int // Countdown to the next problem after a correct answer

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a number bonds game reporting to the default metrics.
func New() *Game {
	return &Game{metrics: metrics.Default()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Number Bonds"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Find the missing part that makes the whole"
}

// Reset starts a new round with the active settings.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.cfg = config.Active().NumberBonds
	g.bounds = NewRange(g.cfg.MinTarget, g.cfg.MaxTarget)

	g.score = 0
	g.total = 0
	g.gameOver = false
	g.paused = false
	g.newProblem()
	g.checkScreenSize()
}

// Resize follows a terminal resize without touching the round.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.runtime.ScreenW < minScreenW || g.runtime.ScreenH < minScreenH
}

// SettingsKey groups high scores by target range.
func (g *Game) SettingsKey() string {
	return g.bounds.Key()
}

// Problem returns the problem on screen.
func (g *Game) Problem() Problem {
	return g.problem
}

// Bounds returns the range new targets are drawn from.
func (g *Game) Bounds() Range {
	return g.bounds
}

func (g *Game) newProblem() {
	g.problem = NewProblem(g.rng, g.bounds)
	g.input.Clear()
	g.clearFeedback()
	g.nextTicks = 0
}

func (g *Game) clearFeedback() {
	g.feedback = FeedbackNone
	g.feedbackText = ""
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Input is locked while a correct answer is on screen
	if g.nextTicks > 0 {
		g.nextTicks--
		if g.nextTicks == 0 {
			g.newProblem()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.bounds.SetMin(g.bounds.Min - 1)
	case in.Has(core.ActionRight):
		g.bounds.SetMin(g.bounds.Min + 1)
	case in.Has(core.ActionUp):
		g.bounds.SetMax(g.bounds.Max + 1)
	case in.Has(core.ActionDown):
		g.bounds.SetMax(g.bounds.Max - 1)
	}

	if in.Has(core.ActionNew) {
		g.newProblem()
		return
	}

	for _, d := range in.Digits {
		g.input.Push(d, g.problem.Answer())
	}
	if in.Has(core.ActionBackspace) && g.input.Backspace() {
		g.clearFeedback()
	}
	if in.Has(core.ActionClear) {
		g.input.Clear()
		g.clearFeedback()
	}
	if in.Has(core.ActionHint) {
		g.feedback = FeedbackHint
		g.feedbackText = g.problem.Hint()
	}
	if in.Has(core.ActionConfirm) {
		g.check()
	}
}

// check grades the typed answer. Empty input is ignored.
func (g *Game) check() {
	answer, ok := g.input.Value()
	if !ok {
		return
	}

	g.total++
	correct := answer == g.problem.Answer()
	if g.metrics != nil {
		g.metrics.ObserveAnswer(ID, correct)
	}

	if correct {
		g.score++
		g.feedback = FeedbackCorrect
		g.feedbackText = "Correct! Great job!"
	} else {
		g.feedback = FeedbackIncorrect
		g.feedbackText = g.problem.Miss(answer)
	}

	if g.total >= g.cfg.Rounds {
		g.gameOver = true
		return
	}
	if correct {
		g.nextTicks = g.runtime.Seconds(g.cfg.NextDelaySeconds)
		if g.nextTicks == 0 {
			g.newProblem()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Attempts: g.total,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
