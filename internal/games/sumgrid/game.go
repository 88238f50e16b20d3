package sumgrid

import (
	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	sumcore "github.com/vovakirdan/math-arcade/internal/games/sumgrid/core"
	"github.com/vovakirdan/math-arcade/internal/metrics"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// ID is the registry and score storage identifier.
const ID = "sumgrid"

// hintSeconds is how long a hint stays highlighted.
const hintSeconds = 3

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the platform: cursor movement, key actions
// and rendering.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.SumGridConfig
	metrics *metrics.Metrics

	cursor    int
	hint      sumcore.Path
	hintTicks int
	outcome   Outcome // Last submit, shown in the HUD
	message   string
	paused    bool
	tooSmall  bool
}

// New creates a Sum Grid game reporting to the default metrics.
func New() *Game {
	return &Game{metrics: metrics.Default()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sum Grid"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Pick numbers that add up to the target before time runs out"
}

// Reset loads the active settings and shows an idle board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = config.Active().SumGrid
	g.applySettings(Settings{
		Target:       g.cfg.Target,
		GridSize:     g.cfg.GridSize,
		TimerMinutes: g.cfg.TimerMinutes,
	})
}

// applySettings rebuilds the session. Invalid settings fall back to the
// defaults so the game is always playable.
func (g *Game) applySettings(settings Settings) {
	policy := sumcore.ReuseNever
	if g.cfg.ReuseExistingPath {
		policy = sumcore.ReuseExisting
	}

	opts := []SessionOption{
		WithTickRate(g.runtime.TickRate),
		WithFeedbackTicks(
			g.runtime.Seconds(g.cfg.CorrectFeedbackSeconds),
			g.runtime.Seconds(g.cfg.IncorrectFeedbackSeconds),
		),
		WithGeneratorOptions(sumcore.WithReusePolicy(policy)),
	}
	if g.metrics != nil {
		opts = append(opts,
			WithGeneratorOptions(sumcore.WithObserver(g.metrics.ObserveGrid)),
			WithAnswerHook(func(correct bool) { g.metrics.ObserveAnswer(ID, correct) }),
		)
	}

	session, err := NewSession(settings, g.runtime.Seed, opts...)
	if err != nil {
		session, _ = NewSession(DefaultSettings(), g.runtime.Seed, opts...)
	}
	g.session = session
	g.cursor = 0
	g.hint = nil
	g.hintTicks = 0
	g.outcome = OutcomeNone
	g.message = "Press S to start"
	g.paused = false
	g.checkScreenSize()
}

// Session exposes the underlying session, mainly for tests and tools.
func (g *Game) Session() *Session {
	return g.session
}

// SettingsKey groups high scores by target, board size and timer.
func (g *Game) SettingsKey() string {
	return g.session.SettingsKey()
}

// Resize follows a terminal resize without touching the round.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := boardSize(g.session.Settings().GridSize, 1)
	g.tooSmall = g.runtime.ScreenW < max(w, minScreenW) || g.runtime.ScreenH < h+hudHeight+footerHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.Running() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	//nolint:errcheck // A failed replacement leaves the board as is; the guaranteed path still holds
	g.session.Tick()

	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}
	if g.session.Over() && g.message != msgTimeUp {
		g.message = msgTimeUp
	}

	return core.StepResult{State: g.State()}
}

const msgTimeUp = "Time's up! Press S or R to play again"

func (g *Game) handleInput(in core.InputFrame) {
	size := g.session.Settings().GridSize
	x, y := g.session.Grid().Coord(g.cursor)

	switch {
	case in.Has(core.ActionUp):
		y = core.Wrap(y-1, size)
	case in.Has(core.ActionDown):
		y = core.Wrap(y+1, size)
	case in.Has(core.ActionLeft):
		x = core.Wrap(x-1, size)
	case in.Has(core.ActionRight):
		x = core.Wrap(x+1, size)
	}
	g.cursor = g.session.Grid().Index(x, y)

	if in.Has(core.ActionStart) && !g.session.Running() {
		if err := g.session.Start(); err == nil {
			g.message = ""
			g.outcome = OutcomeNone
			g.hint = nil
		}
	}

	if !g.session.Running() {
		g.handleSettingsInput(in)
		return
	}

	if in.Has(core.ActionSelect) {
		g.session.Toggle(g.cursor)
	}
	if in.Has(core.ActionClear) {
		g.session.ClearSelection()
	}
	if in.Has(core.ActionConfirm) {
		if outcome := g.session.Submit(); outcome != OutcomeNone {
			g.outcome = outcome
			g.hint = nil
			g.hintTicks = 0
		}
	}
	if in.Has(core.ActionHint) {
		if path, ok := g.session.Hint(); ok {
			g.hint = path
			g.hintTicks = g.runtime.Seconds(hintSeconds)
		}
	}
}

// handleSettingsInput lets the player adjust target and board size
// between rounds.
func (g *Game) handleSettingsInput(in core.InputFrame) {
	s := g.session.Settings()
	changed := false

	switch {
	case in.Has(core.ActionMore) && s.Target < config.MaxSumTarget:
		s.Target++
		changed = true
	case in.Has(core.ActionLess) && s.Target > config.MinSumTarget:
		s.Target--
		changed = true
	case in.Has(core.ActionNew):
		s.GridSize++
		if s.GridSize > config.MaxGridSize {
			s.GridSize = config.MinGridSize
		}
		changed = true
	}
	if !changed {
		return
	}

	if err := g.session.Configure(s); err == nil {
		g.cursor = 0
		g.hint = nil
		g.outcome = OutcomeNone
		g.checkScreenSize()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Attempts: g.session.Attempts(),
		GameOver: g.session.Over(),
		Paused:   g.paused || g.tooSmall,
	}
}
