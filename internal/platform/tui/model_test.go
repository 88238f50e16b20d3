package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

// fakeGame ends its round after a fixed number of steps.
type fakeGame struct {
	steps   int
	endAt   int
	resets  int
	weights map[int]int
	resized bool
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.steps = 0; g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) SettingsKey() string      { return "k1" }
func (g *fakeGame) Weights() map[int]int     { return g.weights }
func (g *fakeGame) SetWeights(w map[int]int) { g.weights = w }
func (g *fakeGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: 3, Attempts: 4, GameOver: g.steps >= g.endAt}
}

type resizingGame struct{ fakeGame }

func (g *resizingGame) Resize(int, int) { g.resized = true }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesFinishedRoundOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAt: 2}
	m := NewModel(game, store, testConfig(), "ada")
	m.Init()

	for range 5 {
		m = tick(t, m)
	}

	scores, err := store.TopScoresFor("fake", "k1", 10)
	if err != nil {
		t.Fatalf("TopScoresFor failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved round, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 3 || got.Attempts != 4 || got.Player != "ada" || got.RoundID == "" {
		t.Errorf("saved %+v", got)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &fakeGame{endAt: 1}
	m := NewModel(game, nil, testConfig(), "")
	m.Init()
	m = tick(t, m)
	if !m.gameState.GameOver {
		t.Fatal("round should be over")
	}

	next, _ := m.Update(runeKey("r"))
	m = tick(t, next.(Model))
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.gameState.GameOver || m.scoreSaved {
		t.Error("restart should clear game over and the saved flag")
	}
}

func TestModelBackQuitsStandalone(t *testing.T) {
	m := NewModel(&fakeGame{endAt: 100}, nil, testConfig(), "")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() || cmd == nil {
		t.Error("back should leave a standalone game")
	}

	m.embedded = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() || cmd != nil {
		t.Error("embedded game should only flag back to menu")
	}
}

func TestModelPersistsWeights(t *testing.T) {
	store := openStore(t)
	if err := store.SaveWeights("ada", map[int]int{3: 5}); err != nil {
		t.Fatal(err)
	}

	game := &fakeGame{endAt: 100}
	m := NewModel(game, store, testConfig(), "ada")
	if game.weights[3] != 5 {
		t.Fatalf("weights not loaded: %v", game.weights)
	}

	game.weights = map[int]int{3: 1, 4: 7}
	m.Update(runeKey("q"))

	saved, err := store.LoadWeights("ada")
	if err != nil {
		t.Fatal(err)
	}
	if saved[4] != 7 {
		t.Errorf("weights not saved on quit: %v", saved)
	}
}

func TestModelResize(t *testing.T) {
	plain := &fakeGame{endAt: 100}
	m := NewModel(plain, nil, testConfig(), "")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if plain.resets != 1 {
		t.Errorf("game without Resize should reset, resets = %d", plain.resets)
	}

	rg := &resizingGame{fakeGame{endAt: 100}}
	m = NewModel(rg, nil, testConfig(), "")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if !rg.resized || rg.resets != 0 {
		t.Errorf("resized = %v, resets = %d", rg.resized, rg.resets)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorCorrect)

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("expected 2 rows, got %d newlines", n)
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}
