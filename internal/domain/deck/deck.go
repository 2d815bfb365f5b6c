// Package deck provides the fixed 52-card domain and uniform random hand
// draws from it.
package deck

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/glennib/case-poker/internal/domain/card"
	"github.com/glennib/case-poker/internal/domain/hand"
)

// DeckSize is the number of cards in the domain: every rank of every suit,
// each exactly once.
const DeckSize = 52

// table is the full 52-card domain, built eagerly during package
// initialization so concurrent readers never observe a partial deck.
var table = buildTable()

func buildTable() [DeckSize]card.Card {
	var t [DeckSize]card.Card
	i := 0
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			t[i] = card.New(r, s)
			i++
		}
	}
	return t
}

// Cards returns a copy of the 52-card domain.
func Cards() []card.Card {
	cards := make([]card.Card, DeckSize)
	copy(cards, table[:])
	return cards
}

// Dealer draws random hands from the 52-card domain. A Dealer owns its
// randomness source and serializes access to it, so a single Dealer is safe
// for concurrent use.
type Dealer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option applies a configuration option to the Dealer.
type Option func(*Dealer)

// WithRand sets the randomness source. The Dealer takes ownership; the
// source must not be used elsewhere concurrently.
func WithRand(rng *rand.Rand) Option {
	return func(d *Dealer) {
		if rng != nil {
			d.rng = rng
		}
	}
}

// WithSeed seeds a fresh randomness source, making draws reproducible.
func WithSeed(seed int64) Option {
	return func(d *Dealer) {
		d.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // card draws need no cryptographic randomness
	}
}

// NewDealer creates a Dealer. Without options the dealer is seeded from the
// wall clock.
func NewDealer(opts ...Option) *Dealer {
	d := &Dealer{}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // card draws need no cryptographic randomness
	}
	return d
}

// Draw samples five distinct cards uniformly without replacement, via a
// partial Fisher-Yates shuffle over a copy of the domain, and builds a Hand
// from them.
//
// The domain holds 52 pairwise-distinct cards and sampling is without
// replacement, so hand construction cannot fail here; a failure is an
// internal fault and panics rather than misclassifying.
func (d *Dealer) Draw() hand.Hand {
	cards := Cards()

	d.mu.Lock()
	for i := 0; i < hand.Size; i++ {
		j := i + d.rng.Intn(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
	d.mu.Unlock()

	h, err := hand.New(cards[:hand.Size])
	if err != nil {
		panic(fmt.Sprintf("deck: drew an invalid hand: %v", err))
	}
	return h
}
