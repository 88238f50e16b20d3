package core

import (
	"errors"
	"fmt"
)

// Path check errors.
var (
	ErrPathLength = errors.New("sumgrid: path must have 2 to 4 cells")
	ErrPathSum    = errors.New("sumgrid: path does not sum to target")
)

// HasValidPath reports whether some 2-4 cells of g, none of them in exclude,
// sum exactly to target.
func HasValidPath(g *Grid, target int, exclude []int) bool {
	_, ok := FindPath(g, target, exclude)
	return ok
}

// FindPath searches g for the shortest path to target that avoids the
// excluded cells. The search is exhaustive over all 2, 3 and 4 cell
// combinations, which stays cheap for the board sizes the game allows.
func FindPath(g *Grid, target int, exclude []int) (Path, bool) {
	if g == nil {
		return nil, false
	}
	excluded := make([]bool, g.Len())
	for _, i := range exclude {
		if g.Valid(i) {
			excluded[i] = true
		}
	}
	return findPath(g.Cells, target, excluded)
}

// CheckPath verifies that p is a valid path to target in g.
func CheckPath(g *Grid, p Path, target int) error {
	if len(p) < MinPathLen || len(p) > MaxPathLen {
		return fmt.Errorf("%w (got %d)", ErrPathLength, len(p))
	}
	seen := make(map[int]bool, len(p))
	for _, i := range p {
		if !g.Valid(i) {
			return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
		}
		if seen[i] {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, i)
		}
		seen[i] = true
	}
	if sum := g.Sum(p); sum != target {
		return fmt.Errorf("%w: %d != %d", ErrPathSum, sum, target)
	}
	return nil
}

func findPath(cells []int, target int, excluded []bool) (Path, bool) {
	// Only cells below the target can be part of a multi-cell path
	candidates := make([]int, 0, len(cells))
	for i, v := range cells {
		if excluded != nil && excluded[i] {
			continue
		}
		if v >= 1 && v < target {
			candidates = append(candidates, i)
		}
	}

	acc := make([]int, 0, MaxPathLen)
	for k := MinPathLen; k <= MaxPathLen; k++ {
		if k > len(candidates) {
			break
		}
		if found, ok := searchPath(cells, candidates, 0, k, target, acc); ok {
			return found, true
		}
	}
	return nil, false
}

// searchPath picks exactly k more cells from candidates[start:] summing to need.
func searchPath(cells, candidates []int, start, k, need int, acc []int) (Path, bool) {
	if k == 0 {
		if need == 0 {
			out := make(Path, len(acc))
			copy(out, acc)
			return out, true
		}
		return nil, false
	}
	// Each remaining cell contributes at least 1
	if need < k {
		return nil, false
	}

	for c := start; c <= len(candidates)-k; c++ {
		idx := candidates[c]
		v := cells[idx]
		if v > need-(k-1) {
			continue
		}
		if found, ok := searchPath(cells, candidates, c+1, k-1, need-v, append(acc, idx)); ok {
			return found, true
		}
	}
	return nil, false
}
