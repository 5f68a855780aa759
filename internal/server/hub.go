package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/you/connectfour/internal/engine"
	"github.com/you/connectfour/internal/game"
)

type Player struct {
	Username string
	Conn     *WSConn // wrapper to send safely
	LastSeen time.Time
}

type WSConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *WSConn) SafeWriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.WriteJSON(v)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// match guards one game. Every Drop and every engine call on the game
// happens under mu.
type match struct {
	mu sync.Mutex
	g  *game.Game
}

type Hub struct {
	mu            sync.RWMutex
	waiting       *Player
	games         map[game.GameID]*match
	playersInGame map[string]game.GameID
	conns         map[string]*WSConn
	reconnectTTL  time.Duration
	botWait       time.Duration
	newGame       func(p1, p2 string, opts ...game.Option) *game.Game
}

func NewHub(ttl, botWait time.Duration, newGame func(p1, p2 string, opts ...game.Option) *game.Game) *Hub {
	return &Hub{
		games:         make(map[game.GameID]*match),
		playersInGame: make(map[string]game.GameID),
		conns:         make(map[string]*WSConn),
		reconnectTTL:  ttl,
		botWait:       botWait,
		newGame:       newGame,
	}
}

func (h *Hub) addLocked(g *game.Game) *match {
	m := &match{g: g}
	h.games[g.ID] = m
	h.playersInGame[g.P1] = g.ID
	h.playersInGame[g.P2] = g.ID
	return m
}

// Add registers g and its players.
func (h *Hub) Add(g *game.Game) *match {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addLocked(g)
}

func (h *Hub) EnqueueOrMatch(p *Player) (*match, engine.Cell, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p.LastSeen = time.Now()

	// Rejoin existing game
	if gid, ok := h.playersInGame[p.Username]; ok {
		m := h.games[gid]
		return m, m.g.SideOf(p.Username), true
	}

	// Pair with waiting player
	if h.waiting != nil && h.waiting.Username != p.Username {
		m := h.addLocked(h.newGame(h.waiting.Username, p.Username))
		h.waiting = nil
		return m, engine.P2, false
	}

	h.waiting = p
	return nil, engine.Empty, false
}

// Unqueue drops username from the waiting slot.
func (h *Hub) Unqueue(username string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.waiting != nil && h.waiting.Username == username {
		h.waiting = nil
	}
}

// StartBotIfStillWaiting waits botWait and, if the same player is still
// waiting, hands them to create.
func (h *Hub) StartBotIfStillWaiting(create func(player *Player)) {
	h.mu.RLock()
	w := h.waiting
	h.mu.RUnlock()
	if w == nil {
		log.Printf("No waiting player found, bot timer not started")
		return
	}

	log.Printf("Bot timer started for player: %s, waiting %v...", w.Username, h.botWait)
	time.Sleep(h.botWait)

	h.mu.Lock()
	if h.waiting == nil || h.waiting.Username != w.Username {
		h.mu.Unlock()
		log.Printf("Player %s is no longer waiting (matched or left)", w.Username)
		return
	}
	p := *h.waiting
	h.waiting = nil
	h.mu.Unlock()

	log.Printf("Starting bot game for waiting player: %s", p.Username)
	create(&p)
}

func (h *Hub) RemoveGame(gid game.GameID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.games[gid]
	if m == nil {
		return
	}
	delete(h.playersInGame, m.g.P1)
	delete(h.playersInGame, m.g.P2)
	delete(h.games, gid)
}

// MatchOf returns the live game username plays in.
func (h *Hub) MatchOf(username string) (*match, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	gid, ok := h.playersInGame[username]
	if !ok {
		return nil, false
	}
	m := h.games[gid]
	return m, m != nil
}

func (h *Hub) SetConn(username string, ws *WSConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[username] = ws
}

// DelConn forgets username's connection if it is still ws.
func (h *Hub) DelConn(username string, ws *WSConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[username] == ws {
		delete(h.conns, username)
	}
}

func (h *Hub) Conn(username string) *WSConn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.conns[username]
}
