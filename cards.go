package main

import "errors"

// Card suits use the single-letter codes clients send on the wire.
const (
	SuitHearts   = "H"
	SuitDiamonds = "D"
	SuitClubs    = "C"
	SuitSpades   = "S"
)

const seriesLength = 8

// Card identity is (suit, rank). Clients may attach their own instance IDs
// to cards, but those never reach the server model.
type Card struct {
	Suit string `json:"suit"`
	Rank int    `json:"rank"` // 1-13, aces low
}

func (c Card) valid() bool {
	switch c.Suit {
	case SuitHearts, SuitDiamonds, SuitClubs, SuitSpades:
	default:
		return false
	}
	return c.Rank >= 1 && c.Rank <= 13
}

func (c Card) red() bool {
	return c.Suit == SuitHearts || c.Suit == SuitDiamonds
}

func (c Card) face() bool {
	return c.Rank >= 11
}

var (
	errInvalidSeriesLength = errors.New("a series must contain exactly 8 cards")
	errInvalidCard         = errors.New("series contains an invalid card")
	errInvalidOrdering     = errors.New("cards of the same suit must appear in strictly increasing rank order")
)

// validateSeries is the confirmation-time validity rule: exactly 8 valid
// cards, and within each suit ranks must strictly increase (aces low).
func validateSeries(series []Card) error {
	if len(series) != seriesLength {
		return errInvalidSeriesLength
	}

	lastRank := map[string]int{}
	for _, card := range series {
		if !card.valid() {
			return errInvalidCard
		}
		if prev, seen := lastRank[card.Suit]; seen && card.Rank <= prev {
			return errInvalidOrdering
		}
		lastRank[card.Suit] = card.Rank
	}

	return nil
}

// seriesEqual compares position by position; this is not a multiset check.
func seriesEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Suit != b[i].Suit || a[i].Rank != b[i].Rank {
			return false
		}
	}
	return true
}
