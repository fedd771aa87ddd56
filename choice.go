package main

// handleMadeChoice routes the round winner's Ask/Truth decision. Only the
// winner of the resolved round may act.
func (s *Session) handleMadeChoice(c *Client, choice string) {
	slot := s.slotByClient(c)
	if slot == nil || s.winnerID == "" || slot.id != s.winnerID {
		c.trySend(gameError("It's not your turn to make a choice."))
		return
	}

	opponent := s.opponentOf(slot)
	if opponent == nil {
		logf(s.cfg, "GAMES: Opponent missing for choice in game %s", s.id)
		return
	}

	if s.phase != phaseBidding || s.roundOpen {
		s.send(slot, gameError("Cannot make a choice right now."))
		return
	}

	logf(s.cfg, "GAMES: Player %q in game %s chose %q", slot.name, s.id, choice)

	switch choice {
	case "Ask":
		s.phase = phaseAskQuestion

		s.send(slot, NavigateToQuestionSelectionMessage{
			Type:        "navigateToQuestionSelection",
			GameID:      s.id,
			ChooserName: slot.name,
		})
		s.send(opponent, OpponentChoosingQuestionMessage{
			Type:        "opponentChoosingQuestion",
			GameID:      s.id,
			ChooserName: slot.name,
		})

	case "Truth":
		s.enterGuessing(slot, opponent)

	default:
		s.send(slot, gameError("Unknown choice: "+choice))
	}
}

// handleSelectedQuestion validates the chosen question and its inputs,
// computes the answer against the opponent's secret series entirely
// server-side, and records and broadcasts the result. The asker only ever
// sees the computed answer, never the series itself.
func (s *Session) handleSelectedQuestion(c *Client, questionID string, params *QuestionParams) {
	slot := s.slotByClient(c)
	if slot == nil || slot.id != s.winnerID || s.phase != phaseAskQuestion {
		c.trySend(gameError("Cannot select question now or invalid game state."))
		return
	}

	opponent := s.opponentOf(slot)
	if opponent == nil || opponent.series == nil {
		s.send(slot, gameError("Opponent's series data is missing."))
		return
	}

	question := findQuestion(questionID)
	if question == nil {
		s.send(slot, gameError("Question "+questionID+" not found."))
		return
	}

	if err := validateQuestionParams(question, params); err != nil {
		s.send(slot, gameError("Invalid input: "+err.Error()))
		return
	}

	answer := question.compute(opponent.series, params)

	record := AskedQuestionRecord{
		QuestionID:         question.ID,
		QuestionText:       question.Text,
		Answer:             answer,
		Params:             params,
		AskedByPlayerID:    slot.id,
		AnsweredByPlayerID: opponent.id,
	}
	s.askedQuestions = append(s.askedQuestions, record)

	logf(s.cfg, "GAMES: Player %q asked %q in game %s, answer %v", slot.name, question.ID, s.id, answer)

	s.broadcast(QuestionAnsweredMessage{
		Type:                "questionAnswered",
		GameID:              s.id,
		AskedQuestionRecord: record,
	})

	// The round's action is spent; nothing more may happen until the next
	// round opens. Both clients display the answer in the meantime.
	s.phase = phaseBidding
	s.winnerID = ""
	s.scheduleBiddingRestart(s.cfg.questionDelay)
}
