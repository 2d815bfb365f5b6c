// Package card models a playing card with a rank and a suit, along with the
// two-character text encoding used by the HTTP API.
package card

// Suit is one of the four card symbols. Suits carry no ordering semantics
// beyond equality.
type Suit int

// The four suits.
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return "Unknown"
}

// Code returns the rune encoding this suit in card codes. The letters follow
// the Norwegian suit names: klover, ruter, hjerter, spar.
func (s Suit) Code() rune {
	switch s {
	case Clubs:
		return 'k'
	case Diamonds:
		return 'r'
	case Hearts:
		return 'h'
	case Spades:
		return 's'
	}
	return '?'
}

// MarshalText serializes the suit as its enumerator name.
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Rank is one of the thirteen card face values. The numeric value of a Rank
// is its int value: Ace=1 through King=13, so Ace sorts lowest. The
// ten-through-ace straight is the classifier's concern, not the rank's.
type Rank int

// The thirteen ranks, ascending.
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Numeric returns the rank's numeric value, 1 for Ace through 13 for King.
func (r Rank) Numeric() int {
	return int(r)
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Code returns the rune encoding this rank in card codes: '1'-'9' for Ace
// through Nine, then 't', 'j', 'q', 'k'.
func (r Rank) Code() rune {
	switch r {
	case Ten:
		return 't'
	case Jack:
		return 'j'
	case Queen:
		return 'q'
	case King:
		return 'k'
	}
	return rune('0' + int(r))
}

// MarshalText serializes the rank as its enumerator name.
func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Card is an immutable rank and suit pair. Cards are plain comparable
// values; two cards are equal iff both fields match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// New creates a card from a rank and a suit.
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card's two-character code, e.g. "tk" for the Ten of
// Clubs. Parsing the result yields an equal card.
func (c Card) String() string {
	return string([]rune{c.Rank.Code(), c.Suit.Code()})
}

// Suits returns the four suits.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Ranks returns the thirteen ranks in ascending order.
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}
