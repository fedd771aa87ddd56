package main

const waitingForOpponent = "Waiting for opponent..."

func (s *Session) admitCreator(c *Client, playerName string) {
	if s.occupiedCount() != 0 {
		logf(s.cfg, "GAMES: Ignoring createGame for already-seeded game %s", s.id)
		return
	}

	slot := &playerSlot{id: c.playerID, name: playerName, client: c}
	s.slots[0] = slot
	c.bind(s)

	logf(s.cfg, "GAMES: Player %q (%s) created game %s", playerName, slot.id, s.id)

	s.send(slot, GameCreatedMessage{
		Type:     "gameCreated",
		GameID:   s.id,
		PlayerID: slot.id,
		Players:  s.playersInfo(),
	})
	s.send(slot, UpdatePlayerNamesMessage{
		Type:               "updatePlayerNames",
		CurrentPlayerName:  playerName,
		OpponentPlayerName: waitingForOpponent,
	})
}

func (s *Session) handleJoin(c *Client, playerName string) {
	if existing := s.slotByID(c.playerID); existing != nil {
		s.rejoin(existing, c)
		return
	}

	if s.occupiedCount() >= 2 {
		c.trySend(gameError("Game is full."))
		return
	}

	slot := &playerSlot{id: c.playerID, name: playerName, client: c}
	for i := range s.slots {
		if s.slots[i] == nil {
			s.slots[i] = slot
			break
		}
	}
	c.bind(s)

	logf(s.cfg, "GAMES: Player %q (%s) joined game %s", playerName, slot.id, s.id)

	s.broadcast(PlayerJoinedMessage{
		Type:    "playerJoined",
		GameID:  s.id,
		Players: s.playersInfo(),
	})

	if s.occupiedCount() == 2 {
		// Pairing complete: fund both players.
		for _, p := range s.slots {
			p.coins = s.cfg.startingCoins
		}
		logf(s.cfg, "GAMES: Initialized coins for game %s at %d each", s.id, s.cfg.startingCoins)

		s.sendPlayerNames()

		for _, p := range s.slots {
			s.send(p, NavigateToGameSetupMessage{
				Type:    "navigateToGameSetup",
				GameID:  s.id,
				Players: s.playersInfo(),
				SelfID:  p.id,
			})
		}
	}
}

// rejoin re-binds an existing seat to a fresh connection, preserving coins,
// series, and history, then routes the player to the screen matching the
// live phase.
func (s *Session) rejoin(slot *playerSlot, c *Client) {
	if slot.client != nil && slot.client != c {
		slot.client.close()
	}
	slot.client = c
	c.bind(s)

	logf(s.cfg, "GAMES: Player %q (%s) rejoined game %s during phase %s", slot.name, slot.id, s.id, s.phase)

	s.send(slot, PlayerJoinedMessage{
		Type:    "playerJoined",
		GameID:  s.id,
		Players: s.playersInfo(),
	})

	if s.occupiedCount() != 2 {
		return
	}

	s.sendPlayerNames()

	opponent := s.opponentOf(slot)

	switch {
	case s.phase == phaseCardSelection:
		s.send(slot, NavigateToGameSetupMessage{
			Type:    "navigateToGameSetup",
			GameID:  s.id,
			Players: s.playersInfo(),
			SelfID:  slot.id,
		})

	case s.phase == phaseBidding:
		s.send(slot, NavigateToBiddingMessage{
			Type:       "allReadyNavigateToBidding",
			GameID:     s.id,
			NextScreen: "/game/" + s.id + "/bidding",
			Players:    s.playersInfo(),
			SelfID:     slot.id,
		})

		switch {
		case s.roundOpen && opponent.bidSubmitted:
			// The opponent's bid stands; only the rejoiner needs a snapshot.
			s.send(slot, s.biddingViewFor(slot))
		case s.roundOpen, s.winnerID == "":
			// No live bid and no resolved winner survives this round. This
			// also covers rejoining inside a pending restart window, where
			// the scheduled reopen already declined.
			s.openRound()
		default:
			// Round resolved, winner still choosing; snapshot the rejoiner.
			s.send(slot, s.biddingViewFor(slot))
		}

	case s.phase == phaseGameOver:
		// Nothing left to route to.
	}
}

func (s *Session) sendPlayerNames() {
	for _, slot := range s.slots {
		opponent := s.opponentOf(slot)
		if slot == nil || opponent == nil {
			continue
		}
		s.send(slot, UpdatePlayerNamesMessage{
			Type:               "updatePlayerNames",
			CurrentPlayerName:  slot.name,
			OpponentPlayerName: opponent.name,
		})
	}
}

func (s *Session) handleSelectedSeries(c *Client, series []Card) {
	slot := s.slotByClient(c)
	if slot == nil {
		c.trySend(gameError("Error selecting series: Invalid game or player."))
		return
	}

	if s.phase != phaseCardSelection {
		s.send(slot, gameError("Cannot select a series in the current phase."))
		return
	}

	if slot.series != nil {
		s.send(slot, gameError("Your series is already confirmed."))
		return
	}

	if err := validateSeries(series); err != nil {
		s.send(slot, gameError("Invalid series: "+err.Error()))
		return
	}

	slot.series = append([]Card(nil), series...)
	logf(s.cfg, "GAMES: Player %q (%s) in game %s confirmed series", slot.name, slot.id, s.id)

	if opponent := s.opponentOf(slot); opponent != nil {
		s.send(opponent, OpponentSeriesConfirmedMessage{
			Type:         "opponentSeriesConfirmed",
			OpponentName: slot.name,
		})
	}

	if s.allConfirmed() {
		logf(s.cfg, "GAMES: Both players in game %s confirmed series, transitioning to bidding", s.id)
		s.phase = phaseBidding

		for _, p := range s.slots {
			p.ready = false
			s.send(p, NavigateToBiddingMessage{
				Type:       "allReadyNavigateToBidding",
				GameID:     s.id,
				NextScreen: "/game/" + s.id + "/bidding",
				Players:    s.playersInfo(),
				SelfID:     p.id,
			})
		}
	}
}

func (s *Session) allConfirmed() bool {
	if s.occupiedCount() != 2 {
		return false
	}
	for _, slot := range s.slots {
		if slot.series == nil {
			return false
		}
	}
	return true
}

func (s *Session) handleDisconnect(c *Client) {
	slot := s.slotByClient(c)
	if slot == nil {
		// Never admitted, or the seat has already been re-bound to a newer
		// connection.
		return
	}

	s.touch()
	slot.client = nil

	logf(s.cfg, "GAMES: Player %q (%s) disconnected from game %s", slot.name, slot.id, s.id)

	if s.connectedCount() == 0 {
		s.teardown("last player disconnected")
		return
	}

	remaining := s.opponentOf(slot)
	s.send(remaining, PlayerLeftMessage{
		Type:                   "playerLeft",
		GameID:                 s.id,
		DisconnectedPlayerID:   slot.id,
		DisconnectedPlayerName: slot.name,
	})

	midBid := s.phase == phaseBidding && s.roundOpen
	midAction := s.phase == phaseAskQuestion || s.phase == phaseTruthGuessing ||
		(s.phase == phaseBidding && !s.roundOpen && s.winnerID != "")
	if midBid || midAction {
		s.cancelRound(remaining, slot.name)
	}

	// Hold the seat for a while; if the player doesn't come back, free it.
	s.schedule(s.cfg.playerTimeout, func() {
		if slot.client == nil {
			s.removePlayer(slot)
		}
	})
}

// cancelRound abandons the round in flight after a disconnection and lines
// up a fresh one. The scheduled reopen is a no-op until both seats are
// connected again; a rejoin mid-wait restarts the round itself.
func (s *Session) cancelRound(remaining *playerSlot, departedName string) {
	s.phase = phaseBidding
	s.roundOpen = false
	s.winnerID = ""
	for _, slot := range s.slots {
		if slot == nil {
			continue
		}
		slot.bid = 0
		slot.bidSubmitted = false
		slot.ready = false
	}

	logf(s.cfg, "GAMES: Round cancelled in game %s after %q left", s.id, departedName)

	s.send(remaining, BiddingCancelledMessage{
		Type:    "biddingCancelledOpponentLeft",
		Message: departedName + " left. Bidding round cancelled. New round will start.",
	})

	s.scheduleBiddingRestart(s.cfg.tieRestartDelay)
}

// removePlayer frees a seat for good: the player's coins, bids, and secret
// series go with it. Deletes the session if no seats remain occupied.
func (s *Session) removePlayer(slot *playerSlot) {
	found := false
	for i := range s.slots {
		if s.slots[i] == slot {
			s.slots[i] = nil
			found = true
			break
		}
	}
	if !found {
		return
	}

	logf(s.cfg, "GAMES: Player %q (%s) removed from game %s", slot.name, slot.id, s.id)

	if s.occupiedCount() == 0 {
		s.teardown("empty")
		return
	}

	// The remaining player keeps their seat and series; the game goes back
	// to card selection so a new opponent can be admitted and confirm theirs.
	if s.phase != phaseGameOver {
		s.phase = phaseCardSelection
		s.roundOpen = false
		s.winnerID = ""
		for _, remaining := range s.slots {
			if remaining == nil {
				continue
			}
			remaining.bid = 0
			remaining.bidSubmitted = false
			remaining.ready = false
		}
	}
}
