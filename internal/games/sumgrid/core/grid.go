// Package core implements the number grid used by the Sum Grid game:
// a square board of positive integers that always contains at least one
// selectable set of cells adding up to the target.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is a square board of positive integers stored row-major.
// Cell (x, y) lives at index y*Size + x.
type Grid struct {
	Size  int
	Cells []int
}

// NewGrid creates an empty size x size grid.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		Size:  size,
		Cells: make([]int, size*size),
	}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// Index converts a column/row pair into a cell index.
func (g *Grid) Index(x, y int) int {
	return y*g.Size + x
}

// Coord converts a cell index into a column/row pair.
func (g *Grid) Coord(i int) (x, y int) {
	if g.Size == 0 {
		return 0, 0
	}
	return i % g.Size, i / g.Size
}

// Valid reports whether i addresses a cell of the grid.
func (g *Grid) Valid(i int) bool {
	return i >= 0 && i < len(g.Cells)
}

// At returns the value of cell i, or 0 when i is out of range.
func (g *Grid) At(i int) int {
	if !g.Valid(i) {
		return 0
	}
	return g.Cells[i]
}

// Sum adds up the values of the given cells. Out-of-range indices count as 0.
func (g *Grid) Sum(indices []int) int {
	total := 0
	for _, i := range indices {
		total += g.At(i)
	}
	return total
}

// InRange reports whether every cell lies in [1, target-1].
func (g *Grid) InRange(target int) bool {
	for _, v := range g.Cells {
		if v < 1 || v > target-1 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Size: g.Size, Cells: cells}
}

// String renders the grid as right-aligned rows, one per line.
func (g *Grid) String() string {
	width := 1
	for _, v := range g.Cells {
		if w := len(strconv.Itoa(v)); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for y := range g.Size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", width, g.Cells[g.Index(x, y)])
		}
	}
	return sb.String()
}

// Path is a set of distinct cell indices whose values add up to the target.
type Path []int

// Contains reports whether cell i is part of the path.
func (p Path) Contains(i int) bool {
	for _, idx := range p {
		if idx == i {
			return true
		}
	}
	return false
}

// Sum returns the total of the path's cells in g.
func (p Path) Sum(g *Grid) int {
	return g.Sum(p)
}
