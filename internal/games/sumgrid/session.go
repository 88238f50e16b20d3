// Package sumgrid implements the Sum Grid game: pick 2 to 4 numbers on the
// board that add up to the target before the timer runs out. Every correct
// pick is replaced so the board always keeps at least one answer.
package sumgrid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/math-arcade/internal/games/sumgrid/core"
)

// ErrRunning is returned when settings change during a timed round.
var ErrRunning = errors.New("sumgrid: cannot change settings while a round is running")

// Settings are the player-adjustable parameters of a round.
type Settings struct {
	Target       int `yaml:"target"`
	GridSize     int `yaml:"grid_size"`
	TimerMinutes int `yaml:"timer_minutes"`
}

// DefaultSettings returns target 9 on a 6x6 board with a 2 minute timer.
func DefaultSettings() Settings {
	return Settings{Target: 9, GridSize: 6, TimerMinutes: 2}
}

// Key identifies these settings for high score grouping.
func (s Settings) Key() string {
	return fmt.Sprintf("t%d_g%d_m%d", s.Target, s.GridSize, s.TimerMinutes)
}

// Validate checks that a board can be built and the timer is positive.
func (s Settings) Validate() error {
	if err := (core.Params{Size: s.GridSize, Target: s.Target}).Validate(); err != nil {
		return err
	}
	if s.TimerMinutes < 1 {
		return fmt.Errorf("sumgrid: timer must be at least 1 minute (got %d)", s.TimerMinutes)
	}
	return nil
}

func (s Settings) params() core.Params {
	return core.Params{Size: s.GridSize, Target: s.Target}
}

// Outcome is the result of submitting a selection.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// feedback is a submitted selection waiting to be resolved. Correct
// selections are replaced when it expires; incorrect ones just clear.
type feedback struct {
	cells      []int
	outcome    Outcome
	ticksLeft  int
	generation uint64
}

// Session is the explicit state of one Sum Grid player. It is driven by
// Tick at a fixed rate and is not safe for concurrent use.
type Session struct {
	settings Settings
	gen      *core.Generator
	grid     *core.Grid
	path     core.Path

	running   bool
	over      bool
	score     int
	attempts  int
	ticksLeft int

	selection []int
	pending   []feedback

	// generation is bumped whenever the board is rebuilt. Pending
	// replacements from an older board are dropped instead of applied.
	generation uint64

	tickRate       int
	correctTicks   int
	incorrectTicks int
	feedbackSet    bool
	genOpts        []core.Option
	onAnswer       func(correct bool)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTickRate sets how many Tick calls make one second. Default 30.
func WithTickRate(rate int) SessionOption {
	return func(s *Session) {
		if rate > 0 {
			s.tickRate = rate
		}
	}
}

// WithFeedbackTicks sets how long correct and incorrect selections stay
// highlighted before they resolve.
func WithFeedbackTicks(correct, incorrect int) SessionOption {
	return func(s *Session) {
		s.correctTicks = max(0, correct)
		s.incorrectTicks = max(0, incorrect)
		s.feedbackSet = true
	}
}

// WithGeneratorOptions passes options to the board generator.
func WithGeneratorOptions(opts ...core.Option) SessionOption {
	return func(s *Session) {
		s.genOpts = append(s.genOpts, opts...)
	}
}

// WithAnswerHook is called after every non-empty submit.
func WithAnswerHook(fn func(correct bool)) SessionOption {
	return func(s *Session) {
		s.onAnswer = fn
	}
}

// NewSession validates settings and builds the first board. The session
// starts idle; call Start to run the timer.
func NewSession(settings Settings, seed int64, opts ...SessionOption) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		settings: settings,
		tickRate: 30,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.feedbackSet {
		s.correctTicks = s.tickRate
		s.incorrectTicks = s.tickRate / 2
	}
	s.gen = core.NewGenerator(seed, s.genOpts...)

	if err := s.rebuild(); err != nil {
		return nil, err
	}
	s.ticksLeft = s.timerTicks()
	return s, nil
}

// Start begins a timed round on a fresh board.
func (s *Session) Start() error {
	if err := s.rebuild(); err != nil {
		return err
	}
	s.running = true
	s.over = false
	s.score = 0
	s.attempts = 0
	s.ticksLeft = s.timerTicks()
	return nil
}

// Reset stops any round and shows a fresh idle board.
func (s *Session) Reset() error {
	if err := s.rebuild(); err != nil {
		return err
	}
	s.running = false
	s.over = false
	s.score = 0
	s.attempts = 0
	s.ticksLeft = s.timerTicks()
	return nil
}

// Configure applies new settings. Only allowed while no round is running.
func (s *Session) Configure(settings Settings) error {
	if s.running {
		return ErrRunning
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	old := s.settings
	s.settings = settings
	if err := s.Reset(); err != nil {
		s.settings = old
		return err
	}
	return nil
}

// rebuild generates a new board and invalidates everything tied to the
// old one. Pending feedback stays queued but can no longer apply.
func (s *Session) rebuild() error {
	grid, path, err := s.gen.Generate(s.settings.params())
	if err != nil {
		return err
	}
	s.grid = grid
	s.path = path
	s.selection = s.selection[:0]
	s.generation++
	return nil
}

func (s *Session) timerTicks() int {
	return s.settings.TimerMinutes * 60 * s.tickRate
}

// Toggle adds or removes a cell from the selection. Ignored while no round
// is running and for cells still showing feedback.
func (s *Session) Toggle(index int) bool {
	if !s.running || !s.grid.Valid(index) || s.IsPending(index) {
		return false
	}
	for i, idx := range s.selection {
		if idx == index {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return true
		}
	}
	s.selection = append(s.selection, index)
	return true
}

// ClearSelection drops the current selection.
func (s *Session) ClearSelection() {
	s.selection = s.selection[:0]
}

// Selection returns the selected cells in the order they were picked.
func (s *Session) Selection() []int {
	return append([]int(nil), s.selection...)
}

// IsSelected reports whether a cell is in the current selection.
func (s *Session) IsSelected(index int) bool {
	for _, idx := range s.selection {
		if idx == index {
			return true
		}
	}
	return false
}

// SelectionSum adds up the selected cells.
func (s *Session) SelectionSum() int {
	return s.grid.Sum(s.selection)
}

// Submit checks the selection against the target. A correct selection
// scores a point and is queued for replacement; either way the selection
// is cleared so the player can keep picking. An empty selection is a no-op.
func (s *Session) Submit() Outcome {
	if !s.running || len(s.selection) == 0 {
		return OutcomeNone
	}

	cells := append([]int(nil), s.selection...)
	s.selection = s.selection[:0]
	s.attempts++

	fb := feedback{cells: cells, generation: s.generation}
	if s.grid.Sum(cells) == s.settings.Target {
		s.score++
		fb.outcome = OutcomeCorrect
		fb.ticksLeft = s.correctTicks
	} else {
		fb.outcome = OutcomeIncorrect
		fb.ticksLeft = s.incorrectTicks
	}
	s.pending = append(s.pending, fb)

	if s.onAnswer != nil {
		s.onAnswer(fb.outcome == OutcomeCorrect)
	}
	// Zero-length feedback resolves right away
	if fb.ticksLeft == 0 {
		s.resolvePending()
	}
	return fb.outcome
}

// Tick advances feedback and the round timer by one tick. The error is
// non-nil only if a replacement could not be applied.
func (s *Session) Tick() error {
	err := s.advancePending()

	if s.running {
		s.ticksLeft--
		if s.ticksLeft <= 0 {
			s.ticksLeft = 0
			s.running = false
			s.over = true
			s.selection = s.selection[:0]
		}
	}
	return err
}

func (s *Session) advancePending() error {
	for i := range s.pending {
		s.pending[i].ticksLeft--
	}
	return s.resolvePending()
}

// resolvePending applies every expired feedback entry.
func (s *Session) resolvePending() error {
	var errs []error
	kept := s.pending[:0]
	for _, fb := range s.pending {
		if fb.ticksLeft > 0 {
			kept = append(kept, fb)
			continue
		}
		if fb.outcome != OutcomeCorrect || fb.generation != s.generation {
			continue
		}
		path, err := s.gen.Regenerate(s.grid, fb.cells, s.settings.Target)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.path = path
	}
	s.pending = kept
	return errors.Join(errs...)
}

// IsPending reports whether a cell on the current board is showing feedback.
func (s *Session) IsPending(index int) bool {
	return s.PendingOutcome(index) != OutcomeNone
}

// PendingOutcome returns the feedback a cell is showing, if any.
func (s *Session) PendingOutcome(index int) Outcome {
	for _, fb := range s.pending {
		if fb.generation != s.generation {
			continue
		}
		for _, idx := range fb.cells {
			if idx == index {
				return fb.outcome
			}
		}
	}
	return OutcomeNone
}

// Hint returns a path to the target that avoids cells showing feedback.
func (s *Session) Hint() (core.Path, bool) {
	var busy []int
	for _, fb := range s.pending {
		if fb.generation == s.generation {
			busy = append(busy, fb.cells...)
		}
	}
	return core.FindPath(s.grid, s.settings.Target, busy)
}

// Grid returns the current board. Callers must not modify it.
func (s *Session) Grid() *core.Grid { return s.grid }

// Path returns the path the generator last guaranteed.
func (s *Session) Path() core.Path { return s.path }

// Settings returns the active settings.
func (s *Session) Settings() Settings { return s.settings }

// SettingsKey identifies the active settings for high scores.
func (s *Session) SettingsKey() string { return s.settings.Key() }

// Score returns the number of correct selections this round.
func (s *Session) Score() int { return s.score }

// Attempts returns the number of submitted selections this round.
func (s *Session) Attempts() int { return s.attempts }

// Running reports whether the timer is running.
func (s *Session) Running() bool { return s.running }

// Over reports whether the last round ended on the timer.
func (s *Session) Over() bool { return s.over }

// Generation returns the board generation counter.
func (s *Session) Generation() uint64 { return s.generation }

// TicksLeft returns the remaining round time in ticks.
func (s *Session) TicksLeft() int { return s.ticksLeft }

// SecondsLeft returns the remaining time rounded up to whole seconds.
func (s *Session) SecondsLeft() int {
	return (s.ticksLeft + s.tickRate - 1) / s.tickRate
}
