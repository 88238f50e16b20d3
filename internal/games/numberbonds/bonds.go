// Package numberbonds implements the number bonds drill: a target number
// and one known part are shown, the player types the missing part.
package numberbonds

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/math-arcade/internal/config"
)

// MaxInputDigits caps the typed answer. Targets never exceed 99.
const MaxInputDigits = 2

// Problem is one bond: Known + answer = Target.
type Problem struct {
	Target int
	Known  int
}

// NewProblem draws a target uniformly from r and a known part in [0, target].
func NewProblem(rng *rand.Rand, r Range) Problem {
	target := r.Min + rng.Intn(r.Max-r.Min+1)
	return Problem{
		Target: target,
		Known:  rng.Intn(target + 1),
	}
}

// Answer returns the missing part.
func (p Problem) Answer() int {
	return p.Target - p.Known
}

// Hint explains the problem in words.
func (p Problem) Hint() string {
	return fmt.Sprintf("Hint: %d + ? = %d. What do you add to %d to get %d?",
		p.Known, p.Target, p.Known, p.Target)
}

// Miss describes a wrong answer.
func (p Problem) Miss(answer int) string {
	return fmt.Sprintf("Not quite. %d + %d = %d, but we need %d.",
		p.Known, answer, p.Known+answer, p.Target)
}

// Range bounds the targets new problems are drawn from. Min is always
// below Max; moving one bound past the other pushes it along.
type Range struct {
	Min int
	Max int
}

// NewRange builds a range, pushing Max up if the bounds collide.
func NewRange(lo, hi int) Range {
	r := Range{Min: config.MinBondTarget, Max: config.MaxBondTarget}
	r.SetMin(lo)
	r.SetMax(hi)
	return r
}

// SetMin moves the lower bound. Max is pushed to v+1 when v reaches it.
func (r *Range) SetMin(v int) {
	v = max(config.MinBondTarget, min(v, config.MaxBondTarget-1))
	if v >= r.Max {
		r.Max = v + 1
	}
	r.Min = v
}

// SetMax moves the upper bound. Min is pushed to v-1 when v reaches it.
func (r *Range) SetMax(v int) {
	v = max(config.MinBondTarget+1, min(v, config.MaxBondTarget))
	if v <= r.Min {
		r.Min = v - 1
	}
	r.Max = v
}

// Key identifies the range for high score grouping.
func (r Range) Key() string {
	return fmt.Sprintf("min%d_max%d", r.Min, r.Max)
}

// Input is the answer being typed.
type Input struct {
	digits string
}

// Push appends a digit. It refuses a third digit and a leading zero unless
// zero is the answer.
func (in *Input) Push(d, answer int) bool {
	if d < 0 || d > 9 || len(in.digits) >= MaxInputDigits {
		return false
	}
	if in.digits == "" && d == 0 && answer != 0 {
		return false
	}
	in.digits += strconv.Itoa(d)
	return true
}

// Backspace removes the last digit.
func (in *Input) Backspace() bool {
	if in.digits == "" {
		return false
	}
	in.digits = in.digits[:len(in.digits)-1]
	return true
}

// Clear drops every digit.
func (in *Input) Clear() {
	in.digits = ""
}

// Empty reports whether nothing has been typed.
func (in Input) Empty() bool {
	return in.digits == ""
}

// Value returns the typed number.
func (in Input) Value() (int, bool) {
	if in.digits == "" {
		return 0, false
	}
	v, err := strconv.Atoi(in.digits)
	return v, err == nil
}

// String returns the typed digits, or "?" when empty.
func (in Input) String() string {
	if in.digits == "" {
		return "?"
	}
	return in.digits
}
