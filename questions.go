package main

import "errors"

// Question categories.
const (
	categorySum      = "SUM"
	categoryCount    = "COUNT"
	categoryPosition = "POSITION"
	categoryGeneral  = "GENERAL"
)

// Input kinds a question may require.
const (
	inputNone          = "NONE"
	inputCardPositions = "CARD_POSITIONS"
	inputSpecificCard  = "SPECIFIC_CARD"
)

// Answer value kinds.
const (
	answerBoolean = "BOOLEAN"
	answerNumber  = "NUMBER"
)

// QuestionParams carries the caller-supplied inputs for questions that
// declare a required input kind.
type QuestionParams struct {
	Positions []int `json:"positions,omitempty"`
	Card      *Card `json:"card,omitempty"`
}

// QuestionDefinition is a static catalog entry. The answer is always computed
// server-side against the opponent's secret series; the raw series never
// leaves the server.
type QuestionDefinition struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	Category       string `json:"category"`
	AnswerType     string `json:"answerType"`
	RequiresInput  string `json:"requiresInput"`
	NumberOfInputs int    `json:"numberOfInputs,omitempty"`

	compute func(series []Card, params *QuestionParams) any
}

var questionCatalog = []QuestionDefinition{
	{
		ID:             "SUM_THREE_SELECTED_POSITIONS",
		Text:           "Select 3 card positions. What is the total value of the cards at these positions?",
		Category:       categorySum,
		AnswerType:     answerNumber,
		RequiresInput:  inputCardPositions,
		NumberOfInputs: 3,
		compute: func(series []Card, params *QuestionParams) any {
			sum := 0
			for _, pos := range params.Positions {
				sum += series[pos].Rank
			}
			return sum
		},
	},
	{
		ID:            "SAMPLE_HIGHEST_CARD_FACE",
		Text:          "Is the highest card in your series a face card (King, Queen, or Jack)?",
		Category:      categoryGeneral,
		AnswerType:    answerBoolean,
		RequiresInput: inputNone,
		compute: func(series []Card, _ *QuestionParams) any {
			highest := 0
			for _, card := range series {
				if card.Rank > highest {
					highest = card.Rank
				}
			}
			return highest >= 11
		},
	},
	{
		ID:            "COUNT_RED_CARDS",
		Text:          "How many red cards (hearts or diamonds) are in your series?",
		Category:      categoryCount,
		AnswerType:    answerNumber,
		RequiresInput: inputNone,
		compute: func(series []Card, _ *QuestionParams) any {
			count := 0
			for _, card := range series {
				if card.red() {
					count++
				}
			}
			return count
		},
	},
	{
		ID:            "COUNT_FACE_CARDS",
		Text:          "How many face cards (Jack, Queen, or King) are in your series?",
		Category:      categoryCount,
		AnswerType:    answerNumber,
		RequiresInput: inputNone,
		compute: func(series []Card, _ *QuestionParams) any {
			count := 0
			for _, card := range series {
				if card.face() {
					count++
				}
			}
			return count
		},
	},
	{
		ID:             "CARD_AT_POSITION_IS_RED",
		Text:           "Select 1 card position. Is the card at this position red?",
		Category:       categoryPosition,
		AnswerType:     answerBoolean,
		RequiresInput:  inputCardPositions,
		NumberOfInputs: 1,
		compute: func(series []Card, params *QuestionParams) any {
			return series[params.Positions[0]].red()
		},
	},
	{
		ID:             "CONTAINS_SPECIFIC_CARD",
		Text:           "Name a card. Is it anywhere in your series?",
		Category:       categoryGeneral,
		AnswerType:     answerBoolean,
		RequiresInput:  inputSpecificCard,
		NumberOfInputs: 1,
		compute: func(series []Card, params *QuestionParams) any {
			for _, card := range series {
				if card.Suit == params.Card.Suit && card.Rank == params.Card.Rank {
					return true
				}
			}
			return false
		},
	},
}

func findQuestion(id string) *QuestionDefinition {
	for i := range questionCatalog {
		if questionCatalog[i].ID == id {
			return &questionCatalog[i]
		}
	}
	return nil
}

var (
	errMissingParams = errors.New("input parameters are missing for this question")
	errBadParams     = errors.New("invalid input parameters for this question")
)

// validateQuestionParams enforces the declared input contract before the
// answer is computed, so compute funcs can index without further checks.
func validateQuestionParams(q *QuestionDefinition, params *QuestionParams) error {
	if q.RequiresInput == inputNone || q.RequiresInput == "" {
		return nil
	}
	if params == nil {
		return errMissingParams
	}

	switch q.RequiresInput {
	case inputCardPositions:
		if len(params.Positions) != q.NumberOfInputs {
			return errBadParams
		}
		for _, pos := range params.Positions {
			if pos < 0 || pos >= seriesLength {
				return errBadParams
			}
		}
	case inputSpecificCard:
		if params.Card == nil || !params.Card.valid() {
			return errBadParams
		}
	}

	return nil
}
