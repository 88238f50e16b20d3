// Package dotcards implements dot flashcards: a dice-like card is flashed
// for a few seconds and the player says how many dots it had. Cards the
// player misses come up more often.
package dotcards

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// NumCards is the number of cards in the deck, numbered 1 to NumCards.
const NumCards = 10

// Weight adjustments for the bias buttons.
const (
	knewStep   = 1
	missedStep = 2
)

// Deck holds the selection weight of every card. A card's chance to be
// drawn is its weight over the total. Weights never drop below 1.
type Deck struct {
	weights [NumCards + 1]int // Index 0 unused
}

// NewDeck returns a deck with every weight at 1.
func NewDeck() *Deck {
	d := &Deck{}
	d.Reset()
	return d
}

// Valid reports whether card is in the deck.
func Valid(card int) bool {
	return card >= 1 && card <= NumCards
}

// Reset sets every weight back to 1.
func (d *Deck) Reset() {
	for c := 1; c <= NumCards; c++ {
		d.weights[c] = 1
	}
}

// Weight returns the weight of card, or 0 for unknown cards.
func (d *Deck) Weight(card int) int {
	if !Valid(card) {
		return 0
	}
	return d.weights[card]
}

// Knew lowers the weight of a card the player got right.
func (d *Deck) Knew(card int) {
	if Valid(card) {
		d.weights[card] = max(1, d.weights[card]-knewStep)
	}
}

// Missed raises the weight of a card the player got wrong.
func (d *Deck) Missed(card int) {
	if Valid(card) {
		d.weights[card] += missedStep
	}
}

// Total returns the sum of all weights.
func (d *Deck) Total() int {
	total := 0
	for c := 1; c <= NumCards; c++ {
		total += d.weights[c]
	}
	return total
}

// Weights returns a copy of the weights keyed by card.
func (d *Deck) Weights() map[int]int {
	out := make(map[int]int, NumCards)
	for c := 1; c <= NumCards; c++ {
		out[c] = d.weights[c]
	}
	return out
}

// SetWeights loads saved weights. Unknown cards are ignored, missing cards
// keep their weight and values below 1 are raised to 1.
func (d *Deck) SetWeights(w map[int]int) {
	for card, weight := range w {
		if Valid(card) {
			d.weights[card] = max(1, weight)
		}
	}
}

func (d *Deck) floatWeights() []float64 {
	out := make([]float64, NumCards)
	for c := 1; c <= NumCards; c++ {
		out[c-1] = float64(d.weights[c])
	}
	return out
}

// Probabilities returns the chance of drawing each card; index 0 is card 1.
func (d *Deck) Probabilities() []float64 {
	p := d.floatWeights()
	floats.Scale(1/floats.Sum(p), p)
	return p
}

// Pick draws a weighted random card other than current. Pass 0 when no
// card is showing.
func (d *Deck) Pick(rng *rand.Rand, current int) int {
	w := d.floatWeights()
	if Valid(current) {
		w[current-1] = 0
	}

	cum := floats.CumSum(make([]float64, len(w)), w)
	total := cum[len(cum)-1]

	// r lies in (0, total] so a zero-weight card is never the first match
	r := total - rng.Float64()*total
	i := sort.SearchFloat64s(cum, r)
	if i >= len(cum) {
		i = len(cum) - 1
	}
	return i + 1
}
