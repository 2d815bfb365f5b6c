package hand

import "fmt"

// WrongCountError reports a card sequence whose length is not exactly five.
type WrongCountError struct {
	Count int
}

func (e *WrongCountError) Error() string {
	return fmt.Sprintf("number of cards in hand (%d) must be 5", e.Count)
}

// DuplicateCardsError reports that fewer than five distinct cards were
// supplied. Distinct holds the number of unique cards observed.
type DuplicateCardsError struct {
	Distinct int
}

func (e *DuplicateCardsError) Error() string {
	return fmt.Sprintf("got %d unique cards, need 5", e.Distinct)
}
