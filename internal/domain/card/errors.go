package card

import "fmt"

// InvalidLengthError reports a card code whose length is not exactly two
// characters.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("length of card code (%d) must be 2", e.Length)
}

// InvalidRankError reports a rank character outside 1-9, t, j, q, k.
type InvalidRankError struct {
	Char rune
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("%q is not a valid rank", e.Char)
}

// InvalidSuitError reports a suit character outside r, s, k, h.
type InvalidSuitError struct {
	Char rune
}

func (e *InvalidSuitError) Error() string {
	return fmt.Sprintf("%q is not a valid suit", e.Char)
}
