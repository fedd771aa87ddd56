package main

import (
	"crypto/rand"
	"sync"
	"time"
)

// SessionRegistry owns the id → session mapping. Sessions are created on the
// first player's createGame, removed by their own loop on last disconnect,
// and reaped wholesale after the configured idle timeout.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      *Config
}

func newSessionRegistry(cfg *Config) *SessionRegistry {
	reg := &SessionRegistry{
		sessions: make(map[string]*Session),
		cfg:      cfg,
	}
	if cfg.sessionTimeout > 0 {
		go reg.reaperLoop()
	}
	return reg
}

// createSession allocates a fresh collision-checked code, seeds a
// single-player session, and starts its run loop. The creator is admitted
// through the loop like any other event.
func (reg *SessionRegistry) createSession(c *Client, playerName string) {
	session := newSession(reg.cfg, reg, "")

	reg.mu.Lock()
	id := reg.newGameIDLocked()
	session.id = id
	reg.sessions[id] = session
	reg.mu.Unlock()

	go session.run()

	session.post(clientEvent{
		client: c,
		msg:    ClientMessage{Type: "createGame", PlayerName: playerName},
	})
}

func (reg *SessionRegistry) lookup(id string) (*Session, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	session, ok := reg.sessions[id]
	return session, ok
}

func (reg *SessionRegistry) remove(id string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	delete(reg.sessions, id)
}

// newGameIDLocked generates a crypto-random short code and ensures it
// doesn't collide with existing games. Caller must hold reg.mu.
func (reg *SessionRegistry) newGameIDLocked() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for {
		buf := make([]byte, 6)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 6)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		if _, exists := reg.sessions[id]; !exists {
			return id
		}
	}
}

// reaperLoop periodically tears down sessions that have been idle longer
// than the configured timeout.
func (reg *SessionRegistry) reaperLoop() {
	ticker := time.NewTicker(reg.cfg.sessionTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-reg.cfg.sessionTimeout)

		reg.mu.Lock()
		stale := make([]*Session, 0)
		for _, session := range reg.sessions {
			if session.lastActiveTime().Before(cutoff) {
				stale = append(stale, session)
			}
		}
		reg.mu.Unlock()

		for _, session := range stale {
			session.stop()
		}
	}
}
