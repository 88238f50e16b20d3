package numberbonds

import (
	"math/rand"
	"testing"
)

func TestNewProblemArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := NewRange(5, 20)

	seenMin, seenMax := false, false
	for range 2000 {
		p := NewProblem(rng, r)
		if p.Target < 5 || p.Target > 20 {
			t.Fatalf("target %d outside [5, 20]", p.Target)
		}
		if p.Known < 0 || p.Known > p.Target {
			t.Fatalf("known %d outside [0, %d]", p.Known, p.Target)
		}
		if p.Known+p.Answer() != p.Target {
			t.Fatalf("%d + %d != %d", p.Known, p.Answer(), p.Target)
		}
		seenMin = seenMin || p.Target == 5
		seenMax = seenMax || p.Target == 20
	}
	if !seenMin || !seenMax {
		t.Error("both bounds should be reachable")
	}
}

func TestInputPush(t *testing.T) {
	tests := []struct {
		name   string
		digits []int
		answer int
		want   string
	}{
		{name: "single digit", digits: []int{7}, answer: 7, want: "7"},
		{name: "two digits", digits: []int{1, 2}, answer: 3, want: "12"},
		{name: "third digit refused", digits: []int{1, 2, 3}, answer: 12, want: "12"},
		{name: "leading zero refused", digits: []int{0, 5}, answer: 5, want: "5"},
		{name: "zero answer allows zero", digits: []int{0}, answer: 0, want: "0"},
		{name: "inner zero allowed", digits: []int{1, 0}, answer: 10, want: "10"},
		{name: "nothing typed", digits: nil, answer: 4, want: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			for _, d := range tt.digits {
				in.Push(d, tt.answer)
			}
			if got := in.String(); got != tt.want {
				t.Errorf("input = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputEditing(t *testing.T) {
	var in Input
	if _, ok := in.Value(); ok {
		t.Error("empty input has no value")
	}
	if in.Backspace() {
		t.Error("Backspace on empty input should report false")
	}

	in.Push(4, 42)
	in.Push(2, 42)
	if v, ok := in.Value(); !ok || v != 42 {
		t.Errorf("Value = %d, %v; want 42", v, ok)
	}

	in.Backspace()
	if in.String() != "4" {
		t.Errorf("after backspace = %q, want 4", in.String())
	}
	in.Clear()
	if !in.Empty() {
		t.Error("Clear should empty the input")
	}
	if in.Push(10, 1) {
		t.Error("Push accepts single digits only")
	}
}

func TestRangePushesOtherBound(t *testing.T) {
	r := NewRange(5, 20)

	r.SetMin(20)
	if r.Min != 20 || r.Max != 21 {
		t.Errorf("SetMin(20) = %+v, want {20 21}", r)
	}
	r.SetMax(10)
	if r.Min != 9 || r.Max != 10 {
		t.Errorf("SetMax(10) = %+v, want {9 10}", r)
	}

	r.SetMin(0)
	if r.Min != 1 {
		t.Errorf("Min = %d, want clamp to 1", r.Min)
	}
	r.SetMax(500)
	if r.Max != 99 {
		t.Errorf("Max = %d, want clamp to 99", r.Max)
	}
	r.SetMin(99)
	if r.Min != 98 || r.Max != 99 {
		t.Errorf("SetMin(99) = %+v, want {98 99}", r)
	}
	r.SetMax(1)
	if r.Min != 1 || r.Max != 2 {
		t.Errorf("SetMax(1) = %+v, want {1 2}", r)
	}

	if got := NewRange(20, 5); got.Min != 4 || got.Max != 5 {
		t.Errorf("NewRange(20, 5) = %+v, want {4 5}", got)
	}
	if key := NewRange(5, 20).Key(); key != "min5_max20" {
		t.Errorf("Key = %q", key)
	}
}

func TestProblemMessages(t *testing.T) {
	p := Problem{Target: 12, Known: 5}

	if got, want := p.Miss(6), "Not quite. 5 + 6 = 11, but we need 12."; got != want {
		t.Errorf("Miss = %q, want %q", got, want)
	}
	if got, want := p.Hint(), "Hint: 5 + ? = 12. What do you add to 5 to get 12?"; got != want {
		t.Errorf("Hint = %q, want %q", got, want)
	}
}
