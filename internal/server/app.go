package server

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/you/connectfour/internal/analytics"
	"github.com/you/connectfour/internal/engine"
	"github.com/you/connectfour/internal/game"
	"github.com/you/connectfour/internal/store"
)

type GameStore interface {
	SaveGame(ctx context.Context, g *game.Game) error
	Leaderboard(ctx context.Context) ([]store.LBRow, error)
	RecentGames(ctx context.Context, limit int) ([]store.RecentGameRow, error)
}

type Emitter interface {
	Emit(event string, payload map[string]any)
}

type App struct {
	Hub       *Hub
	Store     GameStore // nil disables persistence and the read endpoints
	Analytics Emitter
	Level     game.Level
}

// HandleMove plays col for username if it is their turn, then lets the bot
// answer.
func (a *App) HandleMove(username string, col int) {
	m, ok := a.Hub.MatchOf(username)
	if !ok {
		a.sendError(username, "not in a game")
		return
	}
	m.mu.Lock()
	g := m.g
	if g.Ended != nil || g.SideOf(username) != g.Turn {
		m.mu.Unlock()
		a.sendError(username, "not your turn")
		return
	}
	res, err := g.Drop(col)
	m.mu.Unlock()
	if err != nil {
		a.sendError(username, err.Error())
		return
	}
	a.afterMove(m, username, res)
}

func (a *App) afterMove(m *match, by string, res game.Result) {
	g := m.g
	a.Analytics.Emit(analytics.Move, map[string]any{"gameId": g.ID.String(), "by": by, "col": res.Col, "row": res.Row})
	a.BroadcastState(m)
	if !res.Over() {
		a.botMove(m)
		return
	}
	if res.Win {
		a.finish(m, "win", by)
		return
	}
	a.finish(m, "draw", "")
}

// botMove plays for the bot when it is the side to move.
func (a *App) botMove(m *match) {
	m.mu.Lock()
	g := m.g
	if !g.BotTurn() {
		m.mu.Unlock()
		return
	}
	start := time.Now()
	col := g.BotColumn()
	think := time.Since(start)
	res, err := g.Drop(col)
	m.mu.Unlock()

	log.Printf("bot move: game=%s level=%s col=%d think=%v", g.ID, g.Level, col, think)
	a.Analytics.Emit(analytics.BotThink, map[string]any{
		"gameId":   g.ID.String(),
		"level":    g.Level.String(),
		"degree":   g.Level.Degree(),
		"col":      col,
		"think_ms": think.Milliseconds(),
	})
	if err != nil {
		log.Printf("bot move err: game=%s col=%d: %v", g.ID, col, err)
		return
	}
	a.afterMove(m, game.Bot, res)
}

// startBotGame opens a game against the bot for username. The bot opens
// when botFirst is set.
func (a *App) startBotGame(username string, level game.Level, botFirst bool) error {
	opts := []game.Option{game.WithLevel(level)}
	if botFirst {
		opts = append(opts, game.WithOffensive(engine.P2))
	}
	g := a.Hub.newGame(username, game.Bot, opts...)
	if !level.Fits(g.Board.Cols) {
		return errors.Wrapf(game.ErrTooDeep, "%s on %d columns", level, g.Board.Cols)
	}
	m := a.Hub.Add(g)

	log.Printf("Created bot game: ID=%s, P1=%s, P2=%s, level=%s", g.ID, g.P1, g.P2, g.Level)
	a.Analytics.Emit(analytics.MatchStart, map[string]any{
		"gameId": g.ID.String(),
		"p1":     g.P1,
		"p2":     g.P2,
		"level":  g.Level.String(),
		"mode":   g.Mode().String(),
	})
	a.BroadcastState(m)
	a.botMove(m)
	return nil
}

// waitOrPair queues username for a human opponent and falls back to the bot.
func (a *App) waitOrPair(username string) {
	p := &Player{Username: username, Conn: a.Hub.Conn(username), LastSeen: time.Now()}
	m, side, rejoined := a.Hub.EnqueueOrMatch(p)
	if m == nil {
		log.Printf("Player %s is waiting for opponent, starting bot timer", username)
		go a.Hub.StartBotIfStillWaiting(func(p *Player) {
			if err := a.startBotGame(p.Username, a.Level, false); err != nil {
				a.sendError(p.Username, err.Error())
			}
		})
		a.send(username, WSMessage{Type: "state", Data: map[string]any{"waiting": true}})
		return
	}

	m.mu.Lock()
	state := stateFor(m.g, username)
	g := m.g
	m.mu.Unlock()
	a.send(username, WSMessage{Type: "state", Data: state})
	if !rejoined {
		a.Analytics.Emit(analytics.MatchPaired, map[string]any{"gameId": g.ID.String(), "p1": g.P1, "p2": g.P2, "mode": g.Mode().String()})
		a.BroadcastState(m)
	}
	log.Printf("Player %s joined game %s as %v (rejoined=%v)", username, g.ID, side, rejoined)
}

func (a *App) HandleRegame(username string, req Regame) {
	if m, ok := a.Hub.MatchOf(username); ok {
		m.mu.Lock()
		live := m.g.Ended == nil
		m.mu.Unlock()
		if live {
			a.sendError(username, "game in progress")
			return
		}
	}
	if req.Mode == "bot" {
		level := a.Level
		if req.Level != "" {
			l, err := game.ParseLevel(req.Level)
			if err != nil {
				a.sendError(username, err.Error())
				return
			}
			level = l
		}
		a.Hub.Unqueue(username)
		if err := a.startBotGame(username, level, req.BotFirst); err != nil {
			a.sendError(username, err.Error())
		}
		return
	}
	a.waitOrPair(username)
}

func (a *App) BroadcastState(m *match) {
	m.mu.Lock()
	g := m.g
	states := map[string]StatePayload{}
	for _, u := range []string{g.P1, g.P2} {
		if u != game.Bot {
			states[u] = stateFor(g, u)
		}
	}
	m.mu.Unlock()
	for u, s := range states {
		if !a.send(u, WSMessage{Type: "state", Data: s}) {
			log.Printf("No WebSocket connection found for player: %s", u)
		}
	}
}

func (a *App) BroadcastEnd(g *game.Game, reason, winner string) {
	for _, u := range []string{g.P1, g.P2} {
		if u == game.Bot {
			continue
		}
		a.send(u, WSMessage{Type: "end", Data: EndPayload{Reason: reason, Winner: winner}})
	}
}

// finish announces the end of m, stores it and frees its players.
func (a *App) finish(m *match, reason, winner string) {
	m.mu.Lock()
	g := m.g
	duration := time.Since(g.Started)
	moves := g.Moves
	m.mu.Unlock()

	a.Analytics.Emit(analytics.GameEnd, map[string]any{
		"gameId":   g.ID.String(),
		"winner":   winner,
		"reason":   reason,
		"duration": duration.String(),
		"p1":       g.P1,
		"p2":       g.P2,
		"level":    g.Level.String(),
		"moves":    moves,
	})
	a.BroadcastEnd(g, reason, winner)
	go a.persist(g)
	a.Hub.RemoveGame(g.ID)
}

func (a *App) persist(g *game.Game) {
	if a.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Store.SaveGame(ctx, g); err != nil {
		log.Println("persist game err:", err)
	}
}

func (a *App) ForfeitIfNotRejoined(username string) {
	time.Sleep(a.Hub.reconnectTTL)

	if a.Hub.Conn(username) != nil {
		return
	}
	a.Hub.Unqueue(username)
	m, ok := a.Hub.MatchOf(username)
	if !ok {
		return
	}
	m.mu.Lock()
	g := m.g
	if g.Ended != nil {
		m.mu.Unlock()
		return
	}
	g.Forfeit(username)
	winner := *g.Winner
	m.mu.Unlock()

	a.BroadcastState(m)
	a.finish(m, "forfeit", winner)
}

func (a *App) send(username string, msg WSMessage) bool {
	ws := a.Hub.Conn(username)
	if ws == nil {
		return false
	}
	if err := ws.SafeWriteJSON(msg); err != nil {
		log.Printf("write to %s err: %v", username, err)
		return false
	}
	return true
}

func (a *App) sendError(username, msg string) {
	a.send(username, WSMessage{Type: "error", Data: ErrorPayload{Message: msg}})
}
