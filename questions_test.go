package main

import (
	"errors"
	"testing"
)

// Fixed interrogation target: H3 S1 H7 C2 S4 D13 C9 H11.
func questionSeries() []Card {
	return []Card{
		{SuitHearts, 3}, {SuitSpades, 1}, {SuitHearts, 7}, {SuitClubs, 2},
		{SuitSpades, 4}, {SuitDiamonds, 13}, {SuitClubs, 9}, {SuitHearts, 11},
	}
}

func TestQuestionAnswers(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		params     *QuestionParams
		want       any
	}{
		{
			name:       "sum of three positions",
			questionID: "SUM_THREE_SELECTED_POSITIONS",
			params:     &QuestionParams{Positions: []int{0, 2, 5}},
			want:       3 + 7 + 13,
		},
		{
			name:       "highest card is a face card",
			questionID: "SAMPLE_HIGHEST_CARD_FACE",
			want:       true,
		},
		{
			name:       "red card count",
			questionID: "COUNT_RED_CARDS",
			want:       4,
		},
		{
			name:       "face card count",
			questionID: "COUNT_FACE_CARDS",
			want:       2,
		},
		{
			name:       "card at position is red",
			questionID: "CARD_AT_POSITION_IS_RED",
			params:     &QuestionParams{Positions: []int{1}},
			want:       false,
		},
		{
			name:       "specific card present",
			questionID: "CONTAINS_SPECIFIC_CARD",
			params:     &QuestionParams{Card: &Card{SuitDiamonds, 13}},
			want:       true,
		},
		{
			name:       "specific card absent",
			questionID: "CONTAINS_SPECIFIC_CARD",
			params:     &QuestionParams{Card: &Card{SuitDiamonds, 12}},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := findQuestion(tt.questionID)
			if q == nil {
				t.Fatalf("question %q not in catalog", tt.questionID)
			}
			if err := validateQuestionParams(q, tt.params); err != nil {
				t.Fatalf("validateQuestionParams() = %v, want nil", err)
			}

			got := q.compute(questionSeries(), tt.params)
			if got != tt.want {
				t.Fatalf("compute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateQuestionParams(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		params     *QuestionParams
		want       error
	}{
		{
			name:       "no input required ignores nil params",
			questionID: "COUNT_RED_CARDS",
			want:       nil,
		},
		{
			name:       "positions missing entirely",
			questionID: "SUM_THREE_SELECTED_POSITIONS",
			want:       errMissingParams,
		},
		{
			name:       "too few positions",
			questionID: "SUM_THREE_SELECTED_POSITIONS",
			params:     &QuestionParams{Positions: []int{0, 1}},
			want:       errBadParams,
		},
		{
			name:       "too many positions",
			questionID: "SUM_THREE_SELECTED_POSITIONS",
			params:     &QuestionParams{Positions: []int{0, 1, 2, 3}},
			want:       errBadParams,
		},
		{
			name:       "position out of range",
			questionID: "SUM_THREE_SELECTED_POSITIONS",
			params:     &QuestionParams{Positions: []int{0, 1, 8}},
			want:       errBadParams,
		},
		{
			name:       "negative position",
			questionID: "CARD_AT_POSITION_IS_RED",
			params:     &QuestionParams{Positions: []int{-1}},
			want:       errBadParams,
		},
		{
			name:       "specific card missing",
			questionID: "CONTAINS_SPECIFIC_CARD",
			params:     &QuestionParams{},
			want:       errBadParams,
		},
		{
			name:       "specific card invalid",
			questionID: "CONTAINS_SPECIFIC_CARD",
			params:     &QuestionParams{Card: &Card{"Z", 1}},
			want:       errBadParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := findQuestion(tt.questionID)
			if q == nil {
				t.Fatalf("question %q not in catalog", tt.questionID)
			}

			got := validateQuestionParams(q, tt.params)
			if !errors.Is(got, tt.want) {
				t.Fatalf("validateQuestionParams() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindQuestionUnknown(t *testing.T) {
	if q := findQuestion("NO_SUCH_QUESTION"); q != nil {
		t.Fatalf("findQuestion() = %+v, want nil", q)
	}
}
