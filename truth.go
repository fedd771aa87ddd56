package main

// enterGuessing arms the full-series guess for the round winner. The
// target's series is never sent by this step; only identities are.
func (s *Session) enterGuessing(guesser, target *playerSlot) {
	s.phase = phaseTruthGuessing

	logf(s.cfg, "GAMES: Game %s entered truth guessing: %q guesses %q", s.id, guesser.name, target.name)

	s.send(guesser, NavigateToTruthGuessMessage{
		Type:        "navigateToTruthGuess",
		GameID:      s.id,
		GuesserID:   guesser.id,
		GuesserName: guesser.name,
		TargetID:    target.id,
		TargetName:  target.name,
	})
	s.send(target, OpponentIsGuessingMessage{
		Type:        "opponentIsGuessing",
		GameID:      s.id,
		GuesserID:   guesser.id,
		GuesserName: guesser.name,
	})
}

func (s *Session) handleTruthGuess(c *Client, guess []Card) {
	slot := s.slotByClient(c)
	if slot == nil || s.phase != phaseTruthGuessing || slot.id != s.winnerID {
		c.trySend(gameError("Cannot submit guess at this time."))
		return
	}

	target := s.opponentOf(slot)
	if target == nil || len(target.series) != seriesLength {
		s.send(slot, gameError("Opponent's series data is missing or invalid."))
		return
	}

	// A malformed guess is not a protocol error: it counts as an incorrect
	// guess so the round always advances.
	if len(guess) != seriesLength {
		logf(s.cfg, "GAMES: Player %q in game %s guessed with %d cards", slot.name, s.id, len(guess))

		s.send(slot, TruthGuessResultMessage{
			Type:            "truthGuessResult",
			GameID:          s.id,
			WasGuessCorrect: false,
			Reason:          "Your guess must be 8 cards.",
		})
		s.broadcast(TruthGuessResultMessage{
			Type:            "truthGuessResult",
			GameID:          s.id,
			WasGuessCorrect: false,
		})
		s.phase = phaseBidding
		s.winnerID = ""
		s.scheduleBiddingRestart(s.cfg.shortGuessDelay)
		return
	}

	if seriesEqual(guess, target.series) {
		logf(s.cfg, "GAMES: Player %q guessed correctly in game %s, game over", slot.name, s.id)

		s.phase = phaseGameOver
		s.winnerID = slot.id
		s.broadcast(TruthGuessResultMessage{
			Type:            "truthGuessResult",
			GameID:          s.id,
			WasGuessCorrect: true,
			WinnerID:        slot.id,
			WinnerName:      slot.name,
		})
		return
	}

	logf(s.cfg, "GAMES: Player %q guessed incorrectly in game %s", slot.name, s.id)

	s.broadcast(TruthGuessResultMessage{
		Type:            "truthGuessResult",
		GameID:          s.id,
		WasGuessCorrect: false,
	})

	// One guess per won round.
	s.phase = phaseBidding
	s.winnerID = ""
	s.scheduleBiddingRestart(s.cfg.wrongGuessDelay)
}
