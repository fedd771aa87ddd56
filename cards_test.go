package main

import (
	"errors"
	"testing"
)

func spadesSeries() []Card {
	series := make([]Card, 0, seriesLength)
	for rank := 1; rank <= seriesLength; rank++ {
		series = append(series, Card{Suit: SuitSpades, Rank: rank})
	}
	return series
}

func TestValidateSeries(t *testing.T) {
	tests := []struct {
		name   string
		series []Card
		want   error
	}{
		{
			name:   "ascending single suit",
			series: spadesSeries(),
			want:   nil,
		},
		{
			name: "mixed suits each ascending",
			series: []Card{
				{SuitHearts, 3}, {SuitSpades, 1}, {SuitHearts, 7}, {SuitClubs, 2},
				{SuitSpades, 4}, {SuitDiamonds, 13}, {SuitClubs, 9}, {SuitHearts, 11},
			},
			want: nil,
		},
		{
			name:   "too short",
			series: spadesSeries()[:7],
			want:   errInvalidSeriesLength,
		},
		{
			name:   "too long",
			series: append(spadesSeries(), Card{SuitHearts, 1}),
			want:   errInvalidSeriesLength,
		},
		{
			name: "duplicate rank within suit",
			series: []Card{
				{SuitSpades, 1}, {SuitSpades, 2}, {SuitSpades, 2}, {SuitSpades, 4},
				{SuitSpades, 5}, {SuitSpades, 6}, {SuitSpades, 7}, {SuitSpades, 8},
			},
			want: errInvalidOrdering,
		},
		{
			name: "descending within suit",
			series: []Card{
				{SuitHearts, 5}, {SuitSpades, 1}, {SuitHearts, 4}, {SuitClubs, 2},
				{SuitSpades, 4}, {SuitDiamonds, 13}, {SuitClubs, 9}, {SuitHearts, 11},
			},
			want: errInvalidOrdering,
		},
		{
			name: "unknown suit",
			series: []Card{
				{"X", 1}, {SuitSpades, 2}, {SuitSpades, 3}, {SuitSpades, 4},
				{SuitSpades, 5}, {SuitSpades, 6}, {SuitSpades, 7}, {SuitSpades, 8},
			},
			want: errInvalidCard,
		},
		{
			name: "rank out of range",
			series: []Card{
				{SuitSpades, 14}, {SuitHearts, 2}, {SuitHearts, 3}, {SuitHearts, 4},
				{SuitHearts, 5}, {SuitHearts, 6}, {SuitHearts, 7}, {SuitHearts, 8},
			},
			want: errInvalidCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateSeries(tt.series)
			if !errors.Is(got, tt.want) {
				t.Fatalf("validateSeries() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeriesEqual(t *testing.T) {
	base := spadesSeries()

	if !seriesEqual(base, spadesSeries()) {
		t.Fatal("identical series should compare equal")
	}

	swapped := spadesSeries()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	if seriesEqual(base, swapped) {
		t.Fatal("comparison is positional, reordered series must not match")
	}

	differentSuit := spadesSeries()
	differentSuit[3].Suit = SuitHearts
	if seriesEqual(base, differentSuit) {
		t.Fatal("single differing suit must not match")
	}

	if seriesEqual(base, base[:7]) {
		t.Fatal("length mismatch must not match")
	}
}
