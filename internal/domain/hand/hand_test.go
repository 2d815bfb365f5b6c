package hand_test

import (
	"errors"
	"testing"

	"github.com/glennib/case-poker/internal/domain/card"
	"github.com/glennib/case-poker/internal/domain/hand"
	. "github.com/smartystreets/goconvey/convey"
)

func mustCards(codes ...string) []card.Card {
	cards := make([]card.Card, 0, len(codes))
	for _, code := range codes {
		c, err := card.Parse(code)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

func TestNew(t *testing.T) {
	Convey("Given the hand constructor", t, func() {
		Convey("When given five unique cards", func() {
			h, err := hand.New(mustCards("7s", "8s", "9s", "ts", "js"))

			Convey("Then construction succeeds and the cards are preserved", func() {
				So(err, ShouldBeNil)
				So(h.Cards(), ShouldHaveLength, 5)
			})
		})

		Convey("When given too few cards", func() {
			_, err := hand.New(mustCards("7s", "8s", "9s", "ts"))

			Convey("Then it fails with WrongCountError carrying the count", func() {
				var countErr *hand.WrongCountError
				So(errors.As(err, &countErr), ShouldBeTrue)
				So(countErr.Count, ShouldEqual, 4)
			})
		})

		Convey("When given too many cards", func() {
			_, err := hand.New(mustCards("7s", "8s", "9s", "ts", "js", "qs"))

			Convey("Then it fails with WrongCountError carrying the count", func() {
				var countErr *hand.WrongCountError
				So(errors.As(err, &countErr), ShouldBeTrue)
				So(countErr.Count, ShouldEqual, 6)
			})
		})

		Convey("When given five cards with a duplicate", func() {
			_, err := hand.New(mustCards("1s", "1s", "3h", "4r", "5k"))

			Convey("Then it fails with DuplicateCardsError carrying the distinct count", func() {
				var dupErr *hand.DuplicateCardsError
				So(errors.As(err, &dupErr), ShouldBeTrue)
				So(dupErr.Distinct, ShouldEqual, 4)
			})
		})
	})
}

func TestFrequencyCounts(t *testing.T) {
	Convey("Given a hand with repeated ranks and mixed suits", t, func() {
		// Pair of aces, triple of sevens; two hearts, one each of the rest.
		h, err := hand.New(mustCards("1s", "1h", "7r", "7k", "7h"))
		So(err, ShouldBeNil)

		Convey("When counting ranks", func() {
			ranks := h.CountRanks()

			Convey("Then only present ranks appear, with their multiplicities", func() {
				So(ranks, ShouldHaveLength, 2)
				So(ranks[card.Ace], ShouldEqual, 2)
				So(ranks[card.Seven], ShouldEqual, 3)
			})
		})

		Convey("When counting suits", func() {
			suits := h.CountSuits()

			Convey("Then only present suits appear, with their multiplicities", func() {
				So(suits, ShouldHaveLength, 4)
				So(suits[card.Hearts], ShouldEqual, 2)
				So(suits[card.Spades], ShouldEqual, 1)
				So(suits[card.Diamonds], ShouldEqual, 1)
				So(suits[card.Clubs], ShouldEqual, 1)
			})
		})
	})
}

func TestImmutability(t *testing.T) {
	Convey("Given a constructed hand", t, func() {
		input := mustCards("1s", "2s", "3s", "4s", "5s")
		h, err := hand.New(input)
		So(err, ShouldBeNil)

		Convey("When mutating the input slice and a returned copy", func() {
			input[0] = card.New(card.King, card.Hearts)
			got := h.Cards()
			got[1] = card.New(card.Queen, card.Hearts)

			Convey("Then the hand itself is unaffected", func() {
				fresh := h.Cards()
				So(fresh[0], ShouldResemble, card.New(card.Ace, card.Spades))
				So(fresh[1], ShouldResemble, card.New(card.Two, card.Spades))
			})
		})
	})
}
