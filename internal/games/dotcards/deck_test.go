package dotcards

import (
	"math"
	"math/rand"
	"testing"
)

func TestDeckBias(t *testing.T) {
	d := NewDeck()

	d.Knew(3)
	if d.Weight(3) != 1 {
		t.Errorf("weight = %d, never below 1", d.Weight(3))
	}
	d.Missed(3)
	d.Missed(3)
	if d.Weight(3) != 5 {
		t.Errorf("weight = %d, want 5 after two misses", d.Weight(3))
	}
	d.Knew(3)
	if d.Weight(3) != 4 {
		t.Errorf("weight = %d, want 4", d.Weight(3))
	}
	if d.Total() != 13 {
		t.Errorf("Total = %d, want 13", d.Total())
	}

	d.Missed(0)
	d.Knew(11)
	if d.Total() != 13 {
		t.Error("unknown cards must not change the deck")
	}

	d.Reset()
	if d.Total() != NumCards {
		t.Errorf("Total after reset = %d, want %d", d.Total(), NumCards)
	}
}

func TestProbabilitiesSumToOne(t *testing.T) {
	d := NewDeck()
	d.Missed(1)
	d.Missed(7)
	d.Missed(7)

	probs := d.Probabilities()
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %v", sum)
	}
	if want := 5.0 / 16.0; math.Abs(probs[6]-want) > 1e-9 {
		t.Errorf("card 7 chance = %v, want %v", probs[6], want)
	}
}

func TestPickNeverRepeats(t *testing.T) {
	d := NewDeck()
	d.Missed(4)
	rng := rand.New(rand.NewSource(9))

	current := 0
	counts := make(map[int]int)
	for range 5000 {
		next := d.Pick(rng, current)
		if !Valid(next) {
			t.Fatalf("Pick returned %d", next)
		}
		if next == current {
			t.Fatalf("card %d drawn twice in a row", next)
		}
		counts[next]++
		current = next
	}

	for c := 1; c <= NumCards; c++ {
		if counts[c] == 0 {
			t.Errorf("card %d never drawn", c)
		}
	}
	// Card 4 has three times the weight of any other card
	if counts[4] < counts[5] {
		t.Errorf("heavier card drawn %d times, lighter %d", counts[4], counts[5])
	}
}

func TestPickFollowsWeights(t *testing.T) {
	d := NewDeck()
	for range 20 {
		d.Missed(10)
	}
	rng := rand.New(rand.NewSource(2))

	hits := 0
	const draws = 4000
	for range draws {
		if d.Pick(rng, 0) == 10 {
			hits++
		}
	}
	// 41 of 50 weight
	got := float64(hits) / draws
	if math.Abs(got-0.82) > 0.05 {
		t.Errorf("card 10 drawn %.2f of the time, want about 0.82", got)
	}
}

func TestSetWeights(t *testing.T) {
	d := NewDeck()
	d.SetWeights(map[int]int{2: 6, 5: 0, 42: 9})

	if d.Weight(2) != 6 || d.Weight(5) != 1 || d.Weight(1) != 1 {
		t.Errorf("weights = %v", d.Weights())
	}
	w := d.Weights()
	w[2] = 100
	if d.Weight(2) != 6 {
		t.Error("Weights must return a copy")
	}
	if len(w) != NumCards {
		t.Errorf("Weights has %d cards, want %d", len(w), NumCards)
	}
}

func TestPatternsMatchCards(t *testing.T) {
	for c := 1; c <= NumCards; c++ {
		if got := Dots(Pattern(c)); got != c {
			t.Errorf("card %d pattern has %d dots", c, got)
		}
	}
	if Pattern(0) != nil || Pattern(11) != nil {
		t.Error("unknown cards have no pattern")
	}
}
