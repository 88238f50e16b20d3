package core

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Path length bounds. A single cell can never reach the target on its own.
const (
	MinPathLen = 2
	MaxPathLen = 4
	MinTarget  = 2
)

// Configuration and contract errors reported by the generator.
var (
	ErrTargetTooSmall  = errors.New("sumgrid: target must be at least 2")
	ErrSizeTooSmall    = errors.New("sumgrid: grid size must be at least 1")
	ErrTooFewCells     = errors.New("sumgrid: grid needs at least 2 cells to hold a path")
	ErrGridMismatch    = errors.New("sumgrid: grid cells do not match its size")
	ErrNoReplacement   = errors.New("sumgrid: no cells to replace")
	ErrIndexOutOfRange = errors.New("sumgrid: cell index out of range")
	ErrDuplicateIndex  = errors.New("sumgrid: duplicate cell index")
)

// Params describes the grid to build.
type Params struct {
	Size   int // Side length, the grid has Size*Size cells
	Target int // Sum every path must reach
}

// Cells returns the number of cells for these params.
func (p Params) Cells() int {
	return p.Size * p.Size
}

// Validate checks that a path can exist for these params.
func (p Params) Validate() error {
	if p.Target < MinTarget {
		return fmt.Errorf("%w (got %d)", ErrTargetTooSmall, p.Target)
	}
	if p.Size < 1 {
		return fmt.Errorf("%w (got %d)", ErrSizeTooSmall, p.Size)
	}
	if p.Cells() < MinPathLen {
		return fmt.Errorf("%w (size %d)", ErrTooFewCells, p.Size)
	}
	return nil
}

// ReusePolicy decides what Regenerate does when the untouched part of the
// grid already holds a valid path.
type ReusePolicy int

const (
	// ReuseNever always builds a fresh path through the replaced cells.
	ReuseNever ReusePolicy = iota
	// ReuseExisting keeps an existing path among untouched cells and fills
	// the replaced cells with plain random values.
	ReuseExisting
)

// String returns the config name of the policy.
func (p ReusePolicy) String() string {
	if p == ReuseExisting {
		return "reuse"
	}
	return "never"
}

// Op identifies a generator operation in an Event.
type Op string

const (
	OpGenerate   Op = "generate"
	OpRegenerate Op = "regenerate"
)

// Event describes one completed generator run.
type Event struct {
	Op       Op
	Size     int
	Target   int
	PathLen  int
	Replaced int  // Cells overwritten by Regenerate, 0 for Generate
	Reused   bool // Regenerate kept an existing path
}

// Observer is notified after every successful Generate or Regenerate.
type Observer func(Event)

// Generator builds and refreshes grids. It is not safe for concurrent use;
// each game session owns its own generator.
type Generator struct {
	rng      *rand.Rand
	reuse    ReusePolicy
	observer Observer
}

// Option configures a Generator.
type Option func(*Generator)

// WithReusePolicy sets the Regenerate policy. Default is ReuseNever.
func WithReusePolicy(p ReusePolicy) Option {
	return func(g *Generator) {
		g.reuse = p
	}
}

// WithRand makes the generator draw from r instead of its own source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithObserver registers a callback for completed runs.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// NewGenerator creates a generator seeded with seed. Seed 0 uses the clock.
func NewGenerator(seed int64, opts ...Option) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Policy returns the generator's reuse policy.
func (gen *Generator) Policy() ReusePolicy {
	return gen.reuse
}

// Generate fills a new grid with random values in [1, target-1] and plants
// one path of 2-4 cells summing exactly to the target. The planted path is
// returned alongside the grid.
func (gen *Generator) Generate(p Params) (*Grid, Path, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	g := NewGrid(p.Size)
	for i := range g.Cells {
		g.Cells[i] = gen.cellValue(p.Target)
	}

	// Path length 2..4, never more cells than exist or than the target allows
	k := MinPathLen + gen.rng.Intn(MaxPathLen-MinPathLen+1)
	k = min(k, g.Len(), p.Target)

	path := Path(gen.rng.Perm(g.Len())[:k])
	gen.assignPath(g.Cells, path, p.Target)

	gen.notify(Event{
		Op:      OpGenerate,
		Size:    p.Size,
		Target:  p.Target,
		PathLen: len(path),
	})
	return g, path, nil
}

// Regenerate overwrites the replaced cells of g in place and makes sure the
// grid still holds a path to the target. Cells that are neither replaced nor
// picked for the new path keep their values. The returned path is one valid
// path in the updated grid.
//
// On error the grid is left untouched.
func (gen *Generator) Regenerate(g *Grid, replaced []int, target int) (Path, error) {
	if err := validateReplacement(g, replaced, target); err != nil {
		return nil, err
	}

	excluded := make([]bool, g.Len())
	for _, i := range replaced {
		excluded[i] = true
	}

	if gen.reuse == ReuseExisting {
		if path, ok := findPath(g.Cells, target, excluded); ok {
			for _, i := range replaced {
				g.Cells[i] = gen.cellValue(target)
			}
			gen.notify(Event{
				Op:       OpRegenerate,
				Size:     g.Size,
				Target:   target,
				PathLen:  len(path),
				Replaced: len(replaced),
				Reused:   true,
			})
			return path, nil
		}
	}

	path := gen.pickRegenPath(replaced, excluded, target)
	gen.assignPath(g.Cells, path, target)

	for _, i := range replaced {
		if !path.Contains(i) {
			g.Cells[i] = gen.cellValue(target)
		}
	}

	gen.notify(Event{
		Op:       OpRegenerate,
		Size:     g.Size,
		Target:   target,
		PathLen:  len(path),
		Replaced: len(replaced),
	})
	return path, nil
}

// validateReplacement rejects requests that would break the grid contract.
func validateReplacement(g *Grid, replaced []int, target int) error {
	if target < MinTarget {
		return fmt.Errorf("%w (got %d)", ErrTargetTooSmall, target)
	}
	if g == nil || g.Size < 1 || len(g.Cells) != g.Size*g.Size {
		return ErrGridMismatch
	}
	if g.Len() < MinPathLen {
		return fmt.Errorf("%w (size %d)", ErrTooFewCells, g.Size)
	}
	if len(replaced) == 0 {
		return ErrNoReplacement
	}

	seen := make(map[int]bool, len(replaced))
	for _, i := range replaced {
		if !g.Valid(i) {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, g.Len())
		}
		if seen[i] {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, i)
		}
		seen[i] = true
	}
	return nil
}

// pickRegenPath chooses the cells of the new path: at least one replaced
// cell, then one or two untouched cells, 2-4 cells in total.
func (gen *Generator) pickRegenPath(replaced []int, excluded []bool, target int) Path {
	maxLen := min(MaxPathLen, target)

	pool := make([]int, len(replaced))
	copy(pool, replaced)
	gen.shuffle(pool)

	untouched := make([]int, 0, len(excluded)-len(replaced))
	for i, ex := range excluded {
		if !ex {
			untouched = append(untouched, i)
		}
	}
	gen.shuffle(untouched)

	useCount := 1 + gen.rng.Intn(min(len(pool), maxLen))
	extra := 0
	if len(untouched) > 0 {
		extra = min(1+gen.rng.Intn(2), len(untouched))
	}

	if useCount+extra > maxLen {
		extra = min(extra, maxLen-1)
		useCount = maxLen - extra
	}
	// Only reachable when every cell was replaced, so pool has them all
	if useCount+extra < MinPathLen {
		useCount = MinPathLen
	}

	path := make(Path, 0, useCount+extra)
	path = append(path, pool[:useCount]...)
	path = append(path, untouched[:extra]...)
	return path
}

// assignPath writes values into the path cells so they sum to target.
// Every cell but the last gets a random value that leaves at least 1 for
// each remaining cell; the last cell takes whatever is left.
func (gen *Generator) assignPath(cells []int, path Path, target int) {
	sum := 0
	for i := 0; i < len(path)-1; i++ {
		remaining := len(path) - i - 1
		maxValue := min(target-1, target-sum-remaining)
		if maxValue < 1 {
			maxValue = 1
		}
		v := 1 + gen.rng.Intn(maxValue)
		cells[path[i]] = v
		sum += v
	}
	cells[path[len(path)-1]] = target - sum
}

// cellValue draws a uniform value in [1, target-1].
func (gen *Generator) cellValue(target int) int {
	return 1 + gen.rng.Intn(target-1)
}

// shuffle permutes s in place (Fisher-Yates).
func (gen *Generator) shuffle(s []int) {
	gen.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

func (gen *Generator) notify(ev Event) {
	if gen.observer != nil {
		gen.observer(ev)
	}
}
