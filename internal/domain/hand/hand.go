// Package hand models a validated hand of five unique cards.
package hand

import (
	"github.com/glennib/case-poker/internal/domain/card"
)

// Size is the number of cards in a hand.
const Size = 5

// Hand holds exactly five unique cards. The only way to obtain a Hand is
// through New, which enforces both invariants, so a Hand is immutable and
// safe to share between goroutines once constructed.
type Hand struct {
	cards [Size]card.Card
}

// New constructs a Hand from a slice of cards.
//
// Fails with *WrongCountError when the slice does not hold exactly five
// cards, and with *DuplicateCardsError when fewer than five of them are
// distinct. Card order carries no meaning.
func New(cards []card.Card) (Hand, error) {
	if len(cards) != Size {
		return Hand{}, &WrongCountError{Count: len(cards)}
	}
	distinct := make(map[card.Card]struct{}, Size)
	for _, c := range cards {
		distinct[c] = struct{}{}
	}
	if len(distinct) != Size {
		return Hand{}, &DuplicateCardsError{Distinct: len(distinct)}
	}
	var h Hand
	copy(h.cards[:], cards)
	return h, nil
}

// Cards returns a copy of the five cards.
func (h Hand) Cards() []card.Card {
	cards := make([]card.Card, Size)
	copy(cards, h.cards[:])
	return cards
}

// CountRanks counts the occurrences of each rank on hand. Only ranks that
// appear at least once are present as keys.
func (h Hand) CountRanks() map[card.Rank]int {
	ranks := make(map[card.Rank]int, Size)
	for _, c := range h.cards {
		ranks[c.Rank]++
	}
	return ranks
}

// CountSuits counts the occurrences of each suit on hand. Only suits that
// appear at least once are present as keys.
func (h Hand) CountSuits() map[card.Suit]int {
	suits := make(map[card.Suit]int, len(card.Suits()))
	for _, c := range h.cards {
		suits[c.Suit]++
	}
	return suits
}
