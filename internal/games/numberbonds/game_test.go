package numberbonds

import (
	"strconv"
	"testing"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

func newTestGame(t *testing.T, mutate func(*config.NumberBondsConfig)) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.NumberBonds.NextDelaySeconds = 0.1
	if mutate != nil {
		mutate(&cfg.NumberBonds)
	}
	config.UseConfig(&cfg)
	t.Cleanup(func() { config.UseConfig(nil) })

	g := New()
	g.metrics = nil
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 3})
	return g
}

// typed builds a frame that types n and optionally presses Enter.
func typed(n int, confirm bool) core.InputFrame {
	f := core.NewInputFrame()
	for _, r := range strconv.Itoa(n) {
		f.Set(core.DigitAction(int(r - '0')))
	}
	if confirm {
		f.Set(core.ActionConfirm)
	}
	return f
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Number Bonds" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestCorrectAnswerAdvances(t *testing.T) {
	g := newTestGame(t, nil)
	first := g.Problem()

	res := g.Step(typed(first.Answer(), true))
	if res.State.Score != 1 || res.State.Attempts != 1 {
		t.Fatalf("score/attempts = %d/%d, want 1/1", res.State.Score, res.State.Attempts)
	}
	if g.feedback != FeedbackCorrect {
		t.Errorf("feedback = %v, want correct", g.feedback)
	}

	// 0.1s at 30 ticks per second; input is locked meanwhile
	g.Step(core.Frame(core.ActionBackspace))
	if g.input.Empty() {
		t.Error("input should be locked while the answer is shown")
	}
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())

	if !g.input.Empty() || g.feedback != FeedbackNone {
		t.Error("a new problem should start with empty input and no feedback")
	}
}

func TestWrongAnswerFeedback(t *testing.T) {
	g := newTestGame(t, nil)
	p := g.Problem()
	wrong := p.Answer() + 1

	res := g.Step(typed(wrong, true))
	if res.State.Score != 0 || res.State.Attempts != 1 {
		t.Errorf("score/attempts = %d/%d, want 0/1", res.State.Score, res.State.Attempts)
	}
	if g.feedback != FeedbackIncorrect || g.feedbackText != p.Miss(wrong) {
		t.Errorf("feedback = %v %q", g.feedback, g.feedbackText)
	}
	if g.Problem() != p {
		t.Error("a wrong answer keeps the problem")
	}

	g.Step(core.Frame(core.ActionClear))
	if !g.input.Empty() || g.feedback != FeedbackNone {
		t.Error("Clear should drop input and feedback")
	}
}

func TestEmptyConfirmIgnored(t *testing.T) {
	g := newTestGame(t, nil)
	res := g.Step(core.Frame(core.ActionConfirm))
	if res.State.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0", res.State.Attempts)
	}
}

func TestRoundsEndGame(t *testing.T) {
	g := newTestGame(t, func(c *config.NumberBondsConfig) {
		c.Rounds = 3
	})

	var res core.StepResult
	for range 3 {
		res = g.Step(typed(g.Problem().Answer()+1, true))
		g.Step(core.Frame(core.ActionClear))
	}
	if !res.State.GameOver || res.State.Attempts != 3 {
		t.Fatalf("state = %+v, want game over after 3 answers", res.State)
	}

	res = g.Step(typed(g.Problem().Answer(), true))
	if res.State.Score != 0 || res.State.Attempts != 3 {
		t.Error("input after the round should be ignored")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !screen.Contains("ROUND COMPLETE") {
		t.Errorf("expected round complete overlay:\n%s", screen.String())
	}
}

func TestBoundsControls(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(core.Frame(core.ActionRight))
	g.Step(core.Frame(core.ActionUp))
	if g.SettingsKey() != "min6_max21" {
		t.Errorf("SettingsKey = %q, want min6_max21", g.SettingsKey())
	}

	g.Step(core.Frame(core.ActionNew))
	p := g.Problem()
	if p.Target < 6 || p.Target > 21 {
		t.Errorf("new problem target %d outside the adjusted range", p.Target)
	}
}

func TestHintAndPause(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(core.Frame(core.ActionHint))
	if g.feedback != FeedbackHint || g.feedbackText != g.Problem().Hint() {
		t.Errorf("feedback = %v %q", g.feedback, g.feedbackText)
	}

	res := g.Step(core.Frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("P should pause")
	}
	res = g.Step(typed(g.Problem().Answer(), true))
	if res.State.Attempts != 0 {
		t.Error("answers should be ignored while paused")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	want := []string{"NUMBER BONDS", "Score: 0 / 0", "Targets 5 to 20", strconv.Itoa(g.Problem().Target)}
	for _, s := range want {
		if !screen.Contains(s) {
			t.Errorf("screen missing %q:\n%s", s, screen.String())
		}
	}
}
