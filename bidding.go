package main

import "time"

// biddingViewFor builds the one per-recipient snapshot used everywhere a
// bidding round is presented. Hidden-information rule lives here: exact own
// balance, opponent balance only as a low-coins boolean, and only the
// recipient's own asked questions.
func (s *Session) biddingViewFor(slot *playerSlot) BiddingPhaseStateMessage {
	opponent := s.opponentOf(slot)

	return BiddingPhaseStateMessage{
		Type:                  "biddingPhaseState",
		GameID:                s.id,
		MyPlayerID:            slot.id,
		MyPlayerName:          slot.name,
		MyInitialCoins:        slot.coins,
		OpponentName:          opponent.name,
		OpponentLowCoins:      opponent.coins <= s.cfg.lowCoinThreshold,
		TimerDuration:         int(s.cfg.bidTimer.Seconds()),
		AskedQuestionsHistory: s.historyFor(slot),
	}
}

// openRound starts a fresh bidding round. It is also the continuation every
// delayed restart lands on, so it re-checks that the session still has two
// seated, connected players; if not it simply declines, and the eventual
// rejoin restarts the round instead.
func (s *Session) openRound() {
	if s.phase == phaseGameOver {
		return
	}
	if s.occupiedCount() != 2 || s.connectedCount() != 2 {
		logf(s.cfg, "GAMES: Not opening bidding round for game %s: missing players", s.id)
		return
	}

	s.phase = phaseBidding
	s.roundOpen = true
	s.winnerID = ""
	for _, slot := range s.slots {
		slot.bid = 0
		slot.bidSubmitted = false
		slot.ready = false
	}

	logf(s.cfg, "GAMES: Bidding round opened for game %s (%d questions asked so far)", s.id, len(s.askedQuestions))

	for _, slot := range s.slots {
		s.send(slot, s.biddingViewFor(slot))
	}
}

func (s *Session) scheduleBiddingRestart(delay time.Duration) {
	s.schedule(delay, s.openRound)
}

func (s *Session) handleReadyForBidding(c *Client) {
	slot := s.slotByClient(c)
	if slot == nil {
		logf(s.cfg, "GAMES: clientReadyForBidding from unknown player in game %s", s.id)
		return
	}

	if s.phase != phaseBidding {
		logf(s.cfg, "GAMES: Ignoring clientReadyForBidding in game %s during phase %s", s.id, s.phase)
		return
	}

	slot.ready = true

	if s.occupiedCount() == 2 && s.slots[0].ready && s.slots[1].ready {
		s.openRound()
	}
}

func (s *Session) handleSubmitBid(c *Client, amount int) {
	slot := s.slotByClient(c)
	if slot == nil {
		c.trySend(gameError("Error submitting bid: Invalid game or player."))
		return
	}

	if s.phase != phaseBidding || !s.roundOpen {
		logf(s.cfg, "GAMES: Ignoring bid from %q in game %s: no round open", slot.name, s.id)
		return
	}

	// Duplicate submissions are ignored outright; the first bid stands.
	if slot.bidSubmitted {
		logf(s.cfg, "GAMES: Player %q tried to bid twice in game %s, ignoring", slot.name, s.id)
		return
	}

	// Clamping is total: any input lands in [0, coins].
	actual := amount
	if actual < 0 {
		actual = 0
	}
	if actual > slot.coins {
		actual = slot.coins
	}
	if actual != amount {
		logf(s.cfg, "GAMES: Player %q bid %d in game %s, clamped to %d", slot.name, amount, s.id, actual)
	}

	slot.bid = actual
	slot.bidSubmitted = true

	if opponent := s.opponentOf(slot); opponent != nil && !opponent.bidSubmitted {
		s.send(opponent, OpponentHasBidMessage{Type: "opponentHasBidNotification"})
	}

	if s.occupiedCount() == 2 && s.slots[0].bidSubmitted && s.slots[1].bidSubmitted {
		s.resolveRound()
	}
}

// resolveRound fires exactly once per round, on the event that completes the
// bid set. Win or tie, every player pays their bid and collects the round
// award.
func (s *Session) resolveRound() {
	if s.occupiedCount() != 2 || !s.slots[0].bidSubmitted || !s.slots[1].bidSubmitted {
		logf(s.cfg, "GAMES: Stale resolution attempt in game %s", s.id)
		return
	}

	s.roundOpen = false

	first, second := s.slots[0], s.slots[1]

	var winner *playerSlot
	switch {
	case first.bid > second.bid:
		winner = first
	case second.bid > first.bid:
		winner = second
	}
	tied := winner == nil

	for _, slot := range s.slots {
		slot.coins = slot.coins - slot.bid + s.cfg.roundAward
	}

	s.winnerID = ""
	winnerName := ""
	if winner != nil {
		s.winnerID = winner.id
		winnerName = winner.name
	}

	logf(s.cfg, "GAMES: Bids resolved for game %s: %d vs %d, winner %q", s.id, first.bid, second.bid, winnerName)

	for _, slot := range s.slots {
		opponent := s.opponentOf(slot)
		s.send(slot, BiddingResolvedMessage{
			Type:                      "biddingResolved",
			WinnerID:                  s.winnerID,
			WinnerName:                winnerName,
			BidsTied:                  tied,
			YourNewCoinTotal:          slot.coins,
			OpponentNewLowCoinsStatus: opponent.coins <= s.cfg.lowCoinThreshold,
		})
	}

	if tied {
		s.scheduleBiddingRestart(s.cfg.tieRestartDelay)
		return
	}

	s.send(winner, EnableActionChoiceMessage{
		Type:   "enableActionChoice",
		GameID: s.id,
	})
}
