package card_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/glennib/case-poker/internal/domain/card"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given the two-character card encoding", t, func() {
		Convey("When parsing selected valid codes", func() {
			Convey("Then rank and suit come back in the right positions", func() {
				c, err := card.Parse("4r")
				So(err, ShouldBeNil)
				So(c, ShouldResemble, card.New(card.Four, card.Diamonds))

				c, err = card.Parse("js")
				So(err, ShouldBeNil)
				So(c, ShouldResemble, card.New(card.Jack, card.Spades))

				// 'k' is King in the first position and Clubs in the second.
				c, err = card.Parse("tk")
				So(err, ShouldBeNil)
				So(c, ShouldResemble, card.New(card.Ten, card.Clubs))

				c, err = card.Parse("kk")
				So(err, ShouldBeNil)
				So(c, ShouldResemble, card.New(card.King, card.Clubs))
			})
		})

		Convey("When parsing a code with the wrong length", func() {
			Convey("Then it fails with InvalidLengthError carrying the length", func() {
				for code, length := range map[string]int{"": 0, "t": 1, "tkk": 3, "jjs": 3} {
					_, err := card.Parse(code)
					var lengthErr *card.InvalidLengthError
					So(errors.As(err, &lengthErr), ShouldBeTrue)
					So(lengthErr.Length, ShouldEqual, length)
				}
			})
		})

		Convey("When parsing a code with a bad rank character", func() {
			Convey("Then it fails with InvalidRankError carrying the character", func() {
				_, err := card.Parse("0k")
				var rankErr *card.InvalidRankError
				So(errors.As(err, &rankErr), ShouldBeTrue)
				So(rankErr.Char, ShouldEqual, '0')
			})
		})

		Convey("When parsing a code with a bad suit character", func() {
			Convey("Then it fails with InvalidSuitError carrying the character", func() {
				_, err := card.Parse("1p")
				var suitErr *card.InvalidSuitError
				So(errors.As(err, &suitErr), ShouldBeTrue)
				So(suitErr.Char, ShouldEqual, 'p')
			})
		})

		Convey("When parsing uppercase or padded codes", func() {
			Convey("Then they are rejected; no case folding or trimming happens", func() {
				_, err := card.Parse("TK")
				So(err, ShouldNotBeNil)
				_, err = card.Parse(" tk")
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestParseRoundTrip(t *testing.T) {
	Convey("Given every rank and suit combination", t, func() {
		Convey("When encoding a card and parsing it back", func() {
			Convey("Then the result equals the original card", func() {
				for _, s := range card.Suits() {
					for _, r := range card.Ranks() {
						original := card.New(r, s)
						parsed, err := card.Parse(original.String())
						So(err, ShouldBeNil)
						So(parsed, ShouldResemble, original)
					}
				}
			})
		})
	})
}

func TestParseList(t *testing.T) {
	Convey("Given a comma-separated list of card codes", t, func() {
		Convey("When all segments are valid", func() {
			cards, err := card.ParseList("tk,jk,qk,kk,1k")

			Convey("Then all cards are returned in order", func() {
				So(err, ShouldBeNil)
				So(cards, ShouldHaveLength, 5)
				So(cards[0], ShouldResemble, card.New(card.Ten, card.Clubs))
				So(cards[4], ShouldResemble, card.New(card.Ace, card.Clubs))
			})
		})

		Convey("When a segment is invalid", func() {
			_, err := card.ParseList("tk,xx,qk")

			Convey("Then the first failing segment's error aborts the parse", func() {
				var rankErr *card.InvalidRankError
				So(errors.As(err, &rankErr), ShouldBeTrue)
				So(rankErr.Char, ShouldEqual, 'x')
			})
		})
	})
}

func TestRankAndSuit(t *testing.T) {
	Convey("Given the rank and suit enumerations", t, func() {
		Convey("Then ranks carry their numeric values, Ace lowest", func() {
			So(card.Ace.Numeric(), ShouldEqual, 1)
			So(card.Nine.Numeric(), ShouldEqual, 9)
			So(card.Ten.Numeric(), ShouldEqual, 10)
			So(card.King.Numeric(), ShouldEqual, 13)
		})

		Convey("Then cards serialize with enumerator names verbatim", func() {
			data, err := json.Marshal(card.New(card.Ace, card.Spades))
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"rank":"Ace","suit":"Spades"}`)
		})

		Convey("Then Suits and Ranks enumerate the full domain", func() {
			So(card.Suits(), ShouldHaveLength, 4)
			So(card.Ranks(), ShouldHaveLength, 13)
		})
	})
}
