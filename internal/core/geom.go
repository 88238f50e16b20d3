// Package core provides the platform types shared by every game: the
// character screen buffer, colors, input actions and runtime config.
// It has no external dependencies so game logic stays pure and testable.
package core

// Point is a column/row position on a board or screen.
type Point struct {
	X, Y int
}

// Add returns p moved by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredRect returns a w x h rectangle centered inside an outer area.
// Negative offsets are clamped to zero so oversized content stays anchored
// at the top-left corner.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return Rect{
		X: max(0, (outerW-w)/2),
		Y: max(0, (outerH-h)/2),
		W: w,
		H: h,
	}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap maps val into [0, n) cyclically. Used for cursor movement that
// wraps around board edges.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}
