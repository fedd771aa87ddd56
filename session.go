package main

import (
	"sync"
	"time"
)

type gamePhase string

const (
	phaseCardSelection gamePhase = "cardSelection"
	phaseBidding       gamePhase = "bidding"
	phaseAskQuestion   gamePhase = "askQuestion"
	phaseTruthGuessing gamePhase = "truthGuessing"
	phaseGameOver      gamePhase = "gameOver"
)

// playerSlot holds one seat's entire game state. The slot outlives any single
// websocket connection: on reconnect the same playerID re-binds a new client
// to the seat and everything else is preserved.
type playerSlot struct {
	id   string // stable player identity (cookie), not a connection handle
	name string

	client *Client // nil while disconnected

	coins        int
	bid          int
	bidSubmitted bool
	ready        bool
	series       []Card // nil until confirmed, immutable after
}

type clientEvent struct {
	client *Client
	msg    ClientMessage
}

// Session is one match. All mutation happens on the run loop, one event at a
// time; timers re-enter through the tasks channel so they are serialized too.
type Session struct {
	id  string
	cfg *Config
	reg *SessionRegistry

	slots [2]*playerSlot

	phase          gamePhase
	winnerID       string
	roundOpen      bool
	askedQuestions []AskedQuestionRecord

	events chan clientEvent
	unreg  chan *Client
	tasks  chan func()
	done   chan struct{}

	mu         sync.RWMutex
	createdAt  time.Time
	lastActive time.Time
}

func newSession(cfg *Config, reg *SessionRegistry, id string) *Session {
	now := time.Now()
	return &Session{
		id:         id,
		cfg:        cfg,
		reg:        reg,
		phase:      phaseCardSelection,
		events:     make(chan clientEvent, 8),
		unreg:      make(chan *Client, 2),
		tasks:      make(chan func(), 8),
		done:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
	}
}

func (s *Session) run() {
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
		case c := <-s.unreg:
			s.handleDisconnect(c)
		case task := <-s.tasks:
			task()
		case <-s.done:
			return
		}
	}
}

func (s *Session) handleEvent(ev clientEvent) {
	s.touch()

	switch ev.msg.Type {
	case "createGame":
		s.admitCreator(ev.client, ev.msg.PlayerName)
	case "joinGame":
		s.handleJoin(ev.client, ev.msg.PlayerName)
	case "playerSelectedSeries":
		s.handleSelectedSeries(ev.client, ev.msg.Series)
	case "clientReadyForBidding":
		s.handleReadyForBidding(ev.client)
	case "submitFinalBid":
		s.handleSubmitBid(ev.client, ev.msg.BidAmount)
	case "playerMadeChoice":
		s.handleMadeChoice(ev.client, ev.msg.Choice)
	case "playerSelectedQuestion":
		s.handleSelectedQuestion(ev.client, ev.msg.QuestionID, ev.msg.Params)
	case "submitTruthGuess":
		s.handleTruthGuess(ev.client, ev.msg.Guess)
	default:
		logf(s.cfg, "GAMES: Unknown message type %q in %s", ev.msg.Type, s.id)
	}
}

// post hands an inbound message to the run loop, unless the session has
// already been torn down.
func (s *Session) post(ev clientEvent) {
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

func (s *Session) postDisconnect(c *Client) {
	select {
	case s.unreg <- c:
	case <-s.done:
	}
}

// schedule runs fn on the session loop after d. The continuation is dropped
// if the session is torn down first; fn itself must still re-check phase and
// seat state, which may have moved on while the timer was pending.
func (s *Session) schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		select {
		case s.tasks <- fn:
		case <-s.done:
		}
	})
}

// stop requests teardown from outside the loop (reaper).
func (s *Session) stop() {
	select {
	case s.tasks <- func() { s.teardown("idle timeout") }:
	case <-s.done:
	}
}

// teardown must only be called from the run loop.
func (s *Session) teardown(reason string) {
	s.reg.remove(s.id)

	for _, slot := range s.slots {
		if slot != nil && slot.client != nil {
			slot.client.close()
			slot.client = nil
		}
	}

	logf(s.cfg, "GAMES: Game %s deleted (%s)", s.id, reason)
	close(s.done)
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) lastActiveTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

func (s *Session) slotByClient(c *Client) *playerSlot {
	for _, slot := range s.slots {
		if slot != nil && slot.client == c {
			return slot
		}
	}
	return nil
}

func (s *Session) slotByID(playerID string) *playerSlot {
	for _, slot := range s.slots {
		if slot != nil && slot.id == playerID {
			return slot
		}
	}
	return nil
}

func (s *Session) opponentOf(slot *playerSlot) *playerSlot {
	for _, other := range s.slots {
		if other != nil && other != slot {
			return other
		}
	}
	return nil
}

func (s *Session) occupiedCount() int {
	count := 0
	for _, slot := range s.slots {
		if slot != nil {
			count++
		}
	}
	return count
}

func (s *Session) connectedCount() int {
	count := 0
	for _, slot := range s.slots {
		if slot != nil && slot.client != nil {
			count++
		}
	}
	return count
}

func (s *Session) playersInfo() []PlayerInfo {
	players := make([]PlayerInfo, 0, 2)
	for _, slot := range s.slots {
		if slot != nil {
			players = append(players, PlayerInfo{ID: slot.id, Name: slot.name})
		}
	}
	return players
}

func (s *Session) send(slot *playerSlot, msg any) {
	if slot == nil || slot.client == nil {
		return
	}
	slot.client.trySend(msg)
}

func (s *Session) broadcast(msg any) {
	for _, slot := range s.slots {
		s.send(slot, msg)
	}
}

// historyFor returns only the questions this player asked; a player never
// sees the opponent's interrogation of their own series.
func (s *Session) historyFor(slot *playerSlot) []AskedQuestionRecord {
	records := make([]AskedQuestionRecord, 0, len(s.askedQuestions))
	for _, record := range s.askedQuestions {
		if record.AskedByPlayerID == slot.id {
			records = append(records, record)
		}
	}
	return records
}
