// Package classify ranks a five-card hand into its poker category.
//
// The helper predicates are only correct when evaluated in the order used by
// Classify. For example, isTwoPair holds on any four-of-a-kind hand, so the
// priority chain must not be reordered.
package classify

import (
	"slices"

	"github.com/glennib/case-poker/internal/domain/card"
	"github.com/glennib/case-poker/internal/domain/hand"
)

// Category is a poker hand classification, ordered ascending by strength.
// Categories are classification output only; they are never compared across
// hands for tie-breaking.
type Category int

// The nine categories, weakest first.
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "HighCard"
	case OnePair:
		return "OnePair"
	case TwoPair:
		return "TwoPair"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	}
	return "Unknown"
}

// MarshalText serializes the category as its enumerator name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify analyzes the hand and returns the highest-ranking category it
// satisfies. Classification is pure and deterministic: it evaluates the
// predicates below against the hand's rank and suit frequency counts, in
// strict strongest-first order, and returns on the first match.
func Classify(h hand.Hand) Category {
	rankCount := h.CountRanks()
	suitCount := h.CountSuits()

	// Straight and flush are each reachable on their own further down the
	// chain, so both are evaluated up front.
	straight := isStraight(rankCount)
	flush := isFlush(suitCount)

	switch {
	case straight && flush:
		return StraightFlush
	case isFourOfAKind(rankCount):
		return FourOfAKind
	case isFullHouse(rankCount):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case isThreeOfAKind(rankCount):
		return ThreeOfAKind
	case isTwoPair(rankCount):
		return TwoPair
	case isOnePair(rankCount):
		return OnePair
	}
	return HighCard
}

func isFlush(suitCount map[card.Suit]int) bool {
	return len(suitCount) == 1
}

func isStraight(rankCount map[card.Rank]int) bool {
	// A straight needs five different ranks.
	if len(rankCount) != hand.Size {
		return false
	}

	ranks := make([]card.Rank, 0, len(rankCount))
	for r := range rankCount {
		ranks = append(ranks, r)
	}
	slices.Sort(ranks)

	// Ten through Ace is the one straight the numeric spread cannot see,
	// since Ace is numerically lowest. With five distinct ranks, Ace
	// followed by Ten forces the rest to be Jack, Queen, King. No other
	// rank set wraps around the Ace.
	if ranks[0] == card.Ace && ranks[1] == card.Ten {
		return true
	}

	return ranks[4].Numeric()-ranks[0].Numeric() == 4
}

func isFourOfAKind(rankCount map[card.Rank]int) bool {
	for _, n := range rankCount {
		if n == 4 {
			return true
		}
	}
	return false
}

func isFullHouse(rankCount map[card.Rank]int) bool {
	if len(rankCount) != 2 {
		return false
	}
	// Two distinct ranks over five cards: counts are 2+3 or 1+4. Either
	// count being 2 or 3 means the split is 2+3.
	for _, n := range rankCount {
		if n == 2 || n == 3 {
			return true
		}
	}
	return false
}

func isThreeOfAKind(rankCount map[card.Rank]int) bool {
	for _, n := range rankCount {
		if n == 3 {
			return true
		}
	}
	return false
}

func isTwoPair(rankCount map[card.Rank]int) bool {
	pairs := 0
	for _, n := range rankCount {
		if n == 2 {
			pairs++
		}
	}
	return pairs == 2
}

func isOnePair(rankCount map[card.Rank]int) bool {
	for _, n := range rankCount {
		if n == 2 {
			return true
		}
	}
	return false
}
