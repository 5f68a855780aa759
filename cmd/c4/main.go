package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/you/connectfour/internal/engine"
	"github.com/you/connectfour/internal/game"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "c4",
		Usage: "ask the connect-four engine about a position",
		Commands: []*cli.Command{
			bestCommand(),
			checkCommand(),
			selfplayCommand(),
		},
	}
}

func boardFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "board",
		Usage: "rows top first joined by '/', '.' empty, 'x' and 'o' pieces",
		Value: game.NewBoard(game.Rows, game.Cols).String(),
	}
}

func bestCommand() *cli.Command {
	return &cli.Command{
		Name:  "best",
		Usage: "pick a column for a player",
		Flags: []cli.Flag{
			boardFlag(),
			&cli.StringFlag{Name: "player", Usage: "x or o, defaults to the side to move"},
			&cli.StringFlag{Name: "level", Value: game.Regular.String(), Usage: "beginner..abnormal or 0..4"},
			&cli.Int64Flag{Name: "seed", Usage: "tie-break seed, 0 for a time seed"},
		},
		Action: func(c *cli.Context) error {
			b, err := game.ParseBoard(c.String("board"))
			if err != nil {
				return err
			}
			p := b.ToMove()
			if s := c.String("player"); s != "" {
				if p, err = game.ParseSide(s); err != nil {
					return err
				}
			}
			level, err := game.ParseLevel(c.String("level"))
			if err != nil {
				return err
			}
			a := game.Analyze(b, p, level, seeded(c.Int64("seed")))
			fmt.Print(b.Pretty())
			fmt.Printf("player %v, level %v: column %d (%s)\n", p, level, a.Column, a.Elapsed)
			for col, v := range a.Values {
				fmt.Printf("  col %d: %d\n", col, v)
			}
			fmt.Printf("position: x %d, o %d\n", a.Position[0], a.Position[1])
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "report whether the piece at row/col won or filled the board",
		Flags: []cli.Flag{
			boardFlag(),
			&cli.IntFlag{Name: "row", Required: true},
			&cli.IntFlag{Name: "col", Required: true},
		},
		Action: func(c *cli.Context) error {
			b, err := game.ParseBoard(c.String("board"))
			if err != nil {
				return err
			}
			row, col := c.Int("row"), c.Int("col")
			if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
				return game.ErrBadColumn
			}
			win, draw := game.Outcome(b, row, col)
			switch {
			case win:
				fmt.Printf("%v wins\n", b.Cells[row][col])
			case draw:
				fmt.Println("draw")
			default:
				fmt.Println("undecided")
			}
			return nil
		},
	}
}

func selfplayCommand() *cli.Command {
	return &cli.Command{
		Name:  "selfplay",
		Usage: "let two levels play each other",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Value: game.Amateur.String()},
			&cli.StringFlag{Name: "b", Value: game.Regular.String()},
			&cli.IntFlag{Name: "games", Value: 10},
			&cli.Int64Flag{Name: "seed"},
		},
		Action: func(c *cli.Context) error {
			a, err := game.ParseLevel(c.String("a"))
			if err != nil {
				return err
			}
			b, err := game.ParseLevel(c.String("b"))
			if err != nil {
				return err
			}
			rng := seeded(c.Int64("seed"))
			tally := map[string]int{}
			for i := 0; i < c.Int("games"); i++ {
				winner, moves, err := selfplay(a, b, i%2 == 1, rng)
				if err != nil {
					return err
				}
				tally[winner]++
				fmt.Printf("game %d: %s in %d moves\n", i+1, winner, moves)
			}
			fmt.Printf("a (%v): %d, b (%v): %d, draws: %d\n", a, tally["a"], b, tally["b"], tally["draw"])
			return nil
		},
	}
}

// selfplay plays one game between levels a (P1) and b (P2) and returns
// "a", "b" or "draw".
func selfplay(a, b game.Level, bOpens bool, rng engine.Rand) (string, int, error) {
	opts := []game.Option{game.WithRand(rng)}
	if bOpens {
		opts = append(opts, game.WithOffensive(engine.P2))
	}
	g := game.New("a", "b", opts...)
	for {
		g.Level = a
		if g.Turn == engine.P2 {
			g.Level = b
		}
		res, err := g.Drop(g.BotColumn())
		if err != nil {
			return "", g.Moves, err
		}
		if res.Win {
			return *g.Winner, g.Moves, nil
		}
		if res.Draw {
			return "draw", g.Moves, nil
		}
	}
}

func seeded(seed int64) engine.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
