package dotcards

import (
	"testing"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	config.UseConfig(&cfg)
	t.Cleanup(func() { config.UseConfig(nil) })

	g := New()
	g.metrics = nil
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 5})
	return g
}

func TestRegisteredAsDeck(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, ok := g.(registry.WeightedDeck); !ok {
		t.Error("dot cards should persist deck weights")
	}
}

func TestFirstCardShownThenHidden(t *testing.T) {
	g := newTestGame(t)

	if !Valid(g.Current()) || !g.Showing() {
		t.Fatal("a card should be showing after reset")
	}
	// 2 seconds at 10 ticks per second
	for range 20 {
		g.Step(core.NewInputFrame())
	}
	if g.Showing() {
		t.Error("card should be hidden after the show time")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !screen.Contains("How many dots?") {
		t.Errorf("expected card back:\n%s", screen.String())
	}

	g.Step(core.Frame(core.ActionRepeat))
	if !g.Showing() {
		t.Error("V should show the card again")
	}
}

func TestNextNeverRepeats(t *testing.T) {
	g := newTestGame(t)
	for range 50 {
		prev := g.Current()
		g.Step(core.Frame(core.ActionNew))
		if g.Current() == prev {
			t.Fatalf("card %d repeated", prev)
		}
	}
	if g.State().Score != 51 {
		t.Errorf("Score = %d, want 51 cards seen", g.State().Score)
	}
}

func TestBiasButtons(t *testing.T) {
	g := newTestGame(t)
	card := g.Current()

	g.Step(core.Frame(core.ActionMore))
	if g.Deck().Weight(card) != 3 {
		t.Errorf("weight = %d after a miss, want 3", g.Deck().Weight(card))
	}
	g.Step(core.Frame(core.ActionLess))
	if g.Deck().Weight(card) != 2 {
		t.Errorf("weight = %d after knowing it, want 2", g.Deck().Weight(card))
	}
	if g.State().Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", g.State().Attempts)
	}

	g.Step(core.Frame(core.ActionClear))
	if g.Deck().Total() != NumCards {
		t.Error("C should reset the weights")
	}
}

func TestWeightsSurviveReset(t *testing.T) {
	g := newTestGame(t)
	g.SetWeights(map[int]int{6: 9})

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1})
	if g.Weights()[6] != 9 {
		t.Error("Reset must keep deck weights")
	}
}

func TestProbabilityTable(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.Frame(core.ActionHint))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !screen.Contains("Card  Weight  Chance") || !screen.Contains("10.0%") {
		t.Errorf("expected probability table:\n%s", screen.String())
	}

	// 5 seconds at 10 ticks per second
	for range 50 {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if screen.Contains("Card  Weight  Chance") {
		t.Error("probability table should hide after a few seconds")
	}
}

func TestShowTimeControls(t *testing.T) {
	g := newTestGame(t)
	for range 20 {
		g.Step(core.Frame(core.ActionUp))
	}
	if g.showSeconds != config.MaxShowSeconds {
		t.Errorf("showSeconds = %d, want %d", g.showSeconds, config.MaxShowSeconds)
	}
	for range 20 {
		g.Step(core.Frame(core.ActionDown))
	}
	if g.showSeconds != config.MinShowSeconds {
		t.Errorf("showSeconds = %d, want %d", g.showSeconds, config.MinShowSeconds)
	}
}
