package main

import (
	"testing"

	"github.com/you/connectfour/internal/game"
)

func TestSelfplayFinishes(t *testing.T) {
	for _, bOpens := range []bool{false, true} {
		winner, moves, err := selfplay(game.Beginner, game.Amateur, bOpens, seeded(7))
		if err != nil {
			t.Fatalf("selfplay: %v", err)
		}
		switch winner {
		case "a", "b":
			if moves < 7 {
				t.Fatalf("%s won in %d moves", winner, moves)
			}
		case "draw":
			if moves != game.Rows*game.Cols {
				t.Fatalf("draw after %d moves", moves)
			}
		default:
			t.Fatalf("unexpected winner %q", winner)
		}
	}
}

func TestCommandsRun(t *testing.T) {
	cases := [][]string{
		{"c4", "best", "--level", "amateur", "--seed", "1"},
		{"c4", "best", "--board", "......./......./......./.....o./x....o./x...xo.", "--player", "x"},
		{"c4", "check", "--board", "......./......./...x.../...x.../...x.../...x...", "--row", "2", "--col", "3"},
		{"c4", "selfplay", "--a", "0", "--b", "1", "--games", "2", "--seed", "3"},
	}
	for _, args := range cases {
		if err := newApp().Run(args); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}
	bad := [][]string{
		{"c4", "best", "--board", "...z..."},
		{"c4", "best", "--level", "grandmaster"},
		{"c4", "check", "--row", "9", "--col", "0"},
	}
	for _, args := range bad {
		if err := newApp().Run(args); err == nil {
			t.Fatalf("%v: expected an error", args)
		}
	}
}
