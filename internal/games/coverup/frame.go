// Package coverup implements the ten-frame cover-up game for practising
// subtraction: the frame is filled, a number is shown, and the player
// takes that many counters away to see what is left.
package coverup

import "math/rand"

// Frame is a row of counter cells laid out two rows high. Cell i sits in
// column i/2, row i%2, so the frame fills top, bottom, top, bottom.
type Frame struct {
	cells []bool
}

// NewFrame creates an empty frame with size cells.
func NewFrame(size int) *Frame {
	return &Frame{cells: make([]bool, max(0, size))}
}

// Size returns the number of cells.
func (f *Frame) Size() int {
	return len(f.cells)
}

// Cols returns the number of columns needed for two rows.
func (f *Frame) Cols() int {
	return (len(f.cells) + 1) / 2
}

// Position returns the column and row of cell i.
func Position(i int) (col, row int) {
	return i / 2, i % 2
}

// Index returns the cell at col, row, or -1 if there is none.
func (f *Frame) Index(col, row int) int {
	if col < 0 || row < 0 || row > 1 {
		return -1
	}
	i := col*2 + row
	if i >= len(f.cells) {
		return -1
	}
	return i
}

// Filled reports whether cell i holds a counter.
func (f *Frame) Filled(i int) bool {
	return i >= 0 && i < len(f.cells) && f.cells[i]
}

// Toggle adds or removes the counter in cell i.
func (f *Frame) Toggle(i int) bool {
	if i < 0 || i >= len(f.cells) {
		return false
	}
	f.cells[i] = !f.cells[i]
	return true
}

// Clear empties every cell.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = false
	}
}

// Fill puts a counter in every cell.
func (f *Frame) Fill() {
	for i := range f.cells {
		f.cells[i] = true
	}
}

// Count returns the number of filled cells.
func (f *Frame) Count() int {
	n := 0
	for _, c := range f.cells {
		if c {
			n++
		}
	}
	return n
}

// Random fills the frame and returns a number in [1, size-1] to take away.
func (f *Frame) Random(rng *rand.Rand) int {
	f.Fill()
	if len(f.cells) < 2 {
		return 0
	}
	return 1 + rng.Intn(len(f.cells)-1)
}
