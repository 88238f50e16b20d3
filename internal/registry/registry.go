// Package registry is the global catalog of games. Games register a
// factory from their init() function, so the platform can list and start
// them without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/math-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every game implements. Games hold pure logic; the
// platform owns input mapping, timing and rendering to the terminal.
type Game interface {
	// ID returns the unique identifier used by the CLI and score storage.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh round. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is cleared beforehand.
	Render(dst *core.Screen)

	// State returns the current status.
	State() core.GameState
}

// Describer is implemented by games that carry a one-line description.
type Describer interface {
	Description() string
}

// SettingsKeyer is implemented by games whose scores are only comparable
// under the same settings. The key groups high scores.
type SettingsKeyer interface {
	SettingsKey() string
}

// WeightedDeck is implemented by games that keep per-item weights which
// outlive a single round.
type WeightedDeck interface {
	Weights() map[int]int
	SetWeights(w map[int]int)
}

// Resizer is implemented by games that can follow a terminal resize
// without losing the round in progress. Other games are reset.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
