package card

import "strings"

// codeLength is the exact length of a card code in runes.
const codeLength = 2

// ParseSuit maps a suit rune to its Suit: 'r' is Diamonds, 's' is Spades,
// 'k' is Clubs and 'h' is Hearts. Any other rune yields *InvalidSuitError.
func ParseSuit(r rune) (Suit, error) {
	switch r {
	case 'r':
		return Diamonds, nil
	case 's':
		return Spades, nil
	case 'k':
		return Clubs, nil
	case 'h':
		return Hearts, nil
	}
	return 0, &InvalidSuitError{Char: r}
}

// ParseRank maps a rank rune to its Rank: '1' through '9' are Ace through
// Nine, 't' is Ten, and 'j', 'q', 'k' are Jack, Queen and King. Any other
// rune yields *InvalidRankError.
func ParseRank(r rune) (Rank, error) {
	switch {
	case r >= '1' && r <= '9':
		return Rank(r - '0'), nil
	case r == 't':
		return Ten, nil
	case r == 'j':
		return Jack, nil
	case r == 'q':
		return Queen, nil
	case r == 'k':
		return King, nil
	}
	return 0, &InvalidRankError{Char: r}
}

// Parse converts a two-character card code to a Card. The first character is
// the rank and the second the suit; 'k' means King in the first position and
// Clubs in the second. No whitespace trimming or case folding is applied.
func Parse(code string) (Card, error) {
	runes := []rune(code)
	if len(runes) != codeLength {
		return Card{}, &InvalidLengthError{Length: len(runes)}
	}
	rank, err := ParseRank(runes[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(runes[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseList converts a comma-separated list of card codes to cards. Each
// segment is parsed independently; the first failing segment aborts the
// parse with that segment's error.
func ParseList(codes string) ([]Card, error) {
	segments := strings.Split(codes, ",")
	cards := make([]Card, 0, len(segments))
	for _, segment := range segments {
		c, err := Parse(segment)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
