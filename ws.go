package main

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const playerCookieName = "asktruth_id"

// getOrSetPlayerID returns the stable player identity for this browser,
// minting one if needed. Reconnecting with the same cookie re-binds the
// player's seat in any game they belong to.
func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	closed   chan struct{}
	once     sync.Once
	playerID string

	mu   sync.Mutex
	sess *Session
}

func (c *Client) bind(s *Session) {
	c.mu.Lock()
	c.sess = s
	c.mu.Unlock()
}

func (c *Client) session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.closed)
	})
}

// trySend never blocks the session loop: a client that can't keep up is
// dropped instead.
func (c *Client) trySend(msg any) {
	select {
	case <-c.closed:
	case c.send <- msg:
	default:
		c.close()
	}
}

func (c *Client) readPump(cfg *Config, reg *SessionRegistry) {
	defer func() {
		if sess := c.session(); sess != nil {
			sess.postDisconnect(c)
		}
		c.close()
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		dispatch(cfg, reg, c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for {
		select {
		case msg := <-c.send:
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}

// dispatch routes one inbound message: createGame goes to the registry,
// everything else is posted to the addressed session's loop.
func dispatch(cfg *Config, reg *SessionRegistry, c *Client, msg ClientMessage) {
	if msg.Type == "createGame" {
		if c.session() != nil {
			c.trySend(gameError("Already in a game."))
			return
		}
		reg.createSession(c, msg.PlayerName)
		return
	}

	session, ok := reg.lookup(msg.GameID)
	if !ok {
		c.trySend(gameError("Game ID not found."))
		return
	}

	session.post(clientEvent{client: c, msg: msg})
}

func serveWS(cfg *Config, reg *SessionRegistry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "SERVE: Upgrade error from %s: %v", realIP(r), err)
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 8),
			closed:   make(chan struct{}),
			playerID: playerID,
		}

		go client.writePump()
		client.readPump(cfg, reg)
	}
}

// qrHandler generates a PNG QR code carrying the join URL for a game, so the
// short code can be shared across devices.
func qrHandler(cfg *Config, path string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		url := scheme + "://" + r.Host + cfg.prefix + path + "/" + gameID

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}

// registerAskTruthGame sets up routes so that:
//   - $path/ws           → game WebSocket (session addressing is in-band)
//   - $path/qr/:gameid   → PNG QR code for sharing a game's join URL
func registerAskTruthGame(cfg *Config, path string, mux *httprouter.Router) {
	reg := newSessionRegistry(cfg)

	mux.GET(cfg.prefix+path+"/ws", serveWS(cfg, reg))

	mux.GET(cfg.prefix+path+"/qr/:gameid", qrHandler(cfg, path))
}
