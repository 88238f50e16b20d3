package sumgrid

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	sumcore "github.com/vovakirdan/math-arcade/internal/games/sumgrid/core"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

// useSettings points the game at a temporary settings file.
func useSettings(t *testing.T, mutate func(*config.Config)) {
	t.Helper()
	cfg := config.Default()
	cfg.SumGrid.CorrectFeedbackSeconds = 0
	cfg.SumGrid.IncorrectFeedbackSeconds = 0
	if mutate != nil {
		mutate(&cfg)
	}

	path := filepath.Join(t.TempDir(), "mathcade.yaml")
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	config.UseFile(path)
	t.Cleanup(func() { config.UseFile("") })
}

func newTestGame(t *testing.T, rt core.RuntimeConfig) *Game {
	t.Helper()
	g := New()
	g.metrics = nil
	g.Reset(rt)
	return g
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("sumgrid should be registered")
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != ID || g.Title() != "Sum Grid" {
		t.Errorf("got %q / %q", g.ID(), g.Title())
	}
}

func TestResetUsesSettingsFile(t *testing.T) {
	useSettings(t, func(c *config.Config) {
		c.SumGrid.Target = 12
		c.SumGrid.GridSize = 5
		c.SumGrid.TimerMinutes = 3
	})
	g := newTestGame(t, testRuntime())

	if g.SettingsKey() != "t12_g5_m3" {
		t.Errorf("SettingsKey = %q, want t12_g5_m3", g.SettingsKey())
	}
	if g.Session().Running() {
		t.Error("game should wait for start")
	}
}

func TestStartSelectAndSubmit(t *testing.T) {
	useSettings(t, nil)
	g := newTestGame(t, testRuntime())

	g.Step(core.Frame(core.ActionStart))
	if !g.Session().Running() {
		t.Fatal("S should start the round")
	}

	for _, i := range append([]int(nil), g.Session().Path()...) {
		g.cursor = i
		g.Step(core.Frame(core.ActionSelect))
	}
	res := g.Step(core.Frame(core.ActionConfirm))

	if res.State.Score != 1 || res.State.Attempts != 1 {
		t.Errorf("score/attempts = %d/%d, want 1/1", res.State.Score, res.State.Attempts)
	}
	if g.outcome != OutcomeCorrect {
		t.Errorf("outcome = %v, want correct", g.outcome)
	}
	if err := sumcore.CheckPath(g.Session().Grid(), g.Session().Path(), 9); err != nil {
		t.Errorf("board lost its path: %v", err)
	}
}

func TestCursorWraps(t *testing.T) {
	useSettings(t, nil)
	g := newTestGame(t, testRuntime())
	g.Step(core.Frame(core.ActionStart))

	g.Step(core.Frame(core.ActionLeft))
	if g.cursor != 5 {
		t.Errorf("cursor = %d after left, want 5", g.cursor)
	}
	g.Step(core.Frame(core.ActionUp))
	if g.cursor != 35 {
		t.Errorf("cursor = %d after up, want 35", g.cursor)
	}
	g.Step(core.Frame(core.ActionDown))
	g.Step(core.Frame(core.ActionRight))
	if g.cursor != 0 {
		t.Errorf("cursor = %d, want 0", g.cursor)
	}
}

func TestIdleSettingsKeys(t *testing.T) {
	useSettings(t, nil)
	g := newTestGame(t, testRuntime())

	g.Step(core.Frame(core.ActionMore))
	g.Step(core.Frame(core.ActionNew))
	if g.SettingsKey() != "t10_g7_m2" {
		t.Errorf("SettingsKey = %q, want t10_g7_m2", g.SettingsKey())
	}

	g.Step(core.Frame(core.ActionLess))
	g.Step(core.Frame(core.ActionLess))
	if got := g.Session().Settings().Target; got != 8 {
		t.Errorf("Target = %d, want 8", got)
	}

	g.Step(core.Frame(core.ActionStart))
	g.Step(core.Frame(core.ActionMore))
	if got := g.Session().Settings().Target; got != 8 {
		t.Errorf("target changed while running: %d", got)
	}
}

func TestGridSizeCycles(t *testing.T) {
	useSettings(t, func(c *config.Config) {
		c.SumGrid.GridSize = config.MaxGridSize
	})
	g := newTestGame(t, testRuntime())

	g.Step(core.Frame(core.ActionNew))
	if got := g.Session().Settings().GridSize; got != config.MinGridSize {
		t.Errorf("GridSize = %d, want %d", got, config.MinGridSize)
	}
}

func TestPauseFreezesTimer(t *testing.T) {
	useSettings(t, nil)
	g := newTestGame(t, testRuntime())
	g.Step(core.Frame(core.ActionStart))

	res := g.Step(core.Frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("P should pause")
	}
	left := g.Session().TicksLeft()
	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.Session().TicksLeft() != left {
		t.Error("timer ran while paused")
	}

	res = g.Step(core.Frame(core.ActionPause))
	if res.State.Paused {
		t.Error("P should resume")
	}
}

func TestRoundEndsOnTimer(t *testing.T) {
	useSettings(t, func(c *config.Config) {
		c.SumGrid.TimerMinutes = 1
	})
	rt := testRuntime()
	rt.TickRate = 2
	g := newTestGame(t, rt)

	g.Step(core.Frame(core.ActionStart))
	var res core.StepResult
	for range 200 {
		res = g.Step(core.NewInputFrame())
	}
	if !res.State.GameOver {
		t.Fatal("round should be over")
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	g.Render(screen)
	if !screen.Contains("TIME'S UP") {
		t.Errorf("expected round over overlay:\n%s", screen.String())
	}

	g.Step(core.Frame(core.ActionStart))
	if g.State().GameOver {
		t.Error("S should start a new round")
	}
}

func TestHintExpires(t *testing.T) {
	useSettings(t, nil)
	g := newTestGame(t, testRuntime())
	g.Step(core.Frame(core.ActionStart))

	g.Step(core.Frame(core.ActionHint))
	if len(g.hint) == 0 {
		t.Fatal("H should show a hint")
	}
	if err := sumcore.CheckPath(g.Session().Grid(), g.hint, 9); err != nil {
		t.Errorf("hint is not a valid path: %v", err)
	}

	for range 100 {
		g.Step(core.NewInputFrame())
	}
	if g.hint != nil {
		t.Error("hint should expire after a few seconds")
	}
}

func TestRender(t *testing.T) {
	useSettings(t, nil)
	g := newTestGame(t, testRuntime())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for _, want := range []string{"SUM GRID", "Target: 9", "Score: 0/0", "2:00"} {
		if !screen.Contains(want) {
			t.Errorf("screen missing %q:\n%s", want, screen.String())
		}
	}

	// 6x6 board: 31 wide, centered below the HUD
	if r := screen.Get(24, hudHeight); r != '┌' {
		t.Errorf("board corner = %q, want ┌", r)
	}
	if r := screen.Get(24, hudHeight+2); r != '├' {
		t.Errorf("row separator = %q, want ├", r)
	}
}

func TestRenderCompactBoard(t *testing.T) {
	useSettings(t, func(c *config.Config) {
		c.SumGrid.GridSize = 10
	})
	g := newTestGame(t, testRuntime())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 10x10 board does not fit with row lines; one text row per grid row
	if r := screen.Get(14, hudHeight); r != '┌' {
		t.Errorf("board corner = %q, want ┌", r)
	}
	if r := screen.Get(14, hudHeight+11); r != '└' {
		t.Errorf("bottom corner = %q, want └", r)
	}
}

func TestTooSmall(t *testing.T) {
	useSettings(t, nil)
	rt := testRuntime()
	rt.ScreenW = 30
	g := newTestGame(t, rt)

	res := g.Step(core.Frame(core.ActionStart))
	if !res.State.Paused || g.Session().Running() {
		t.Error("small screen should block play")
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	g.Render(screen)
	if !screen.Contains("Window too small") {
		t.Error("expected too small message")
	}
}

func TestResizeKeepsRound(t *testing.T) {
	useSettings(t, nil)
	g := newTestGame(t, testRuntime())
	g.Step(core.Frame(core.ActionStart))
	g.Step(core.Frame(core.ActionConfirm))

	g.Resize(30, 24)
	if !g.State().Paused {
		t.Error("a narrow terminal should pause the game")
	}
	g.Resize(100, 30)
	if g.State().Paused || !g.Session().Running() {
		t.Error("resizing back should resume the same round")
	}
}
