package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/you/connectfour/internal/engine"
)

// Bot is the player name the server uses for the computer side.
const Bot = "BOT"

type GameID = uuid.UUID

// Game owns one board and sequences its turns. It is not safe for
// concurrent use; the server serialises access per game.
type Game struct {
	ID      GameID
	P1      string
	P2      string // can be "BOT"
	Board   *Board
	Turn    engine.Cell // P1 or P2
	Moves   int
	Level   Level
	Started time.Time
	Ended   *time.Time
	Winner  *string
	IsDraw  bool

	eng *engine.Engine
}

// Result describes one applied drop.
type Result struct {
	Row  int
	Col  int
	By   engine.Cell
	Win  bool
	Draw bool
}

func (r Result) Over() bool { return r.Win || r.Draw }

type options struct {
	rows, cols int
	level      Level
	offensive  engine.Cell
	rng        engine.Rand
}

type Option func(*options)

func WithBoardSize(rows, cols int) Option {
	return func(o *options) { o.rows, o.cols = rows, cols }
}

func WithLevel(l Level) Option {
	return func(o *options) { o.level = l }
}

// WithOffensive picks the side that moves first.
func WithOffensive(c engine.Cell) Option {
	return func(o *options) { o.offensive = c }
}

func WithRand(r engine.Rand) Option {
	return func(o *options) { o.rng = r }
}

func New(p1, p2 string, opts ...Option) *Game {
	o := options{rows: Rows, cols: Cols, level: Regular, offensive: engine.P1}
	for _, fn := range opts {
		fn(&o)
	}
	b := NewBoard(o.rows, o.cols)
	var engOpts []engine.Option
	if o.rng != nil {
		engOpts = append(engOpts, engine.WithRand(o.rng))
	}
	return &Game{
		ID:      uuid.New(),
		P1:      p1,
		P2:      p2,
		Board:   b,
		Turn:    o.offensive,
		Level:   o.level,
		Started: time.Now(),
		eng:     engine.New(b.Cells, b.Next, engOpts...),
	}
}

func (g *Game) Mode() Mode {
	if g.P1 == Bot || g.P2 == Bot {
		return HumanVsComputer
	}
	return HumanVsHuman
}

func (g *Game) NameOf(side engine.Cell) string {
	if side == engine.P1 {
		return g.P1
	}
	return g.P2
}

func (g *Game) SideOf(username string) engine.Cell {
	if g.P1 == username {
		return engine.P1
	}
	return engine.P2
}

func (g *Game) BotTurn() bool { return g.Ended == nil && g.NameOf(g.Turn) == Bot }

// Drop plays col for the side to move, then settles win, draw or the turn
// switch.
func (g *Game) Drop(col int) (Result, error) {
	if g.Ended != nil {
		return Result{}, ErrGameOver
	}
	row, err := g.Board.drop(col, g.Turn)
	if err != nil {
		return Result{}, err
	}
	g.Moves++
	res := Result{Row: row, Col: col, By: g.Turn}
	switch {
	case g.eng.IsWin(row, col, g.Turn):
		res.Win = true
		w := g.NameOf(g.Turn)
		g.finish(&w)
	case g.eng.IsDraw(g.Moves):
		res.Draw = true
		g.IsDraw = true
		g.finish(nil)
	default:
		g.switchTurn()
	}
	return res, nil
}

// Forfeit ends the game in favour of the other side of loser.
func (g *Game) Forfeit(loser string) {
	if g.Ended != nil {
		return
	}
	w := g.P1
	if g.P1 == loser {
		w = g.P2
	}
	g.finish(&w)
}

// BotColumn asks the engine for the side to move at the game's level. It
// returns engine.NoMove once the game is over.
func (g *Game) BotColumn() int {
	if g.Ended != nil || g.Board.Full() {
		return engine.NoMove
	}
	return g.eng.BestValue(g.Level.Degree(), g.Turn)
}

func (g *Game) switchTurn() { g.Turn = g.Turn.Opponent() }

func (g *Game) finish(winner *string) {
	now := time.Now()
	g.Ended = &now
	g.Winner = winner
}
