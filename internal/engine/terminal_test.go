package engine

import "testing"

var drawnBoard = []string{
	"oxxoxxo",
	"xoxxooo",
	"xxoooxo",
	"oxoxxox",
	"oxxoxxo",
	"xoooxox",
}

func TestIsWin(t *testing.T) {
	cases := []struct {
		name     string
		rows     []string
		row, col int
		who      Cell
		want     bool
	}{
		{"vertical", []string{emptyRow, emptyRow, "...x...", "...x...", "...x...", "...x..."}, 2, 3, P1, true},
		{"horizontal middle", []string{emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, ".oo.oo."}, 5, 3, P2, true},
		{"diagonal", []string{emptyRow, emptyRow, "...x...", "..xo...", ".xoo...", "xooo..."}, 2, 3, P1, true},
		{"anti diagonal", []string{emptyRow, emptyRow, "o......", "xo.....", "xxo....", "xxxo..."}, 2, 0, P2, true},
		{"three only", []string{emptyRow, emptyRow, emptyRow, "...x...", "...x...", "...x..."}, 3, 3, P1, false},
		{"other owner", []string{emptyRow, emptyRow, "...x...", "...x...", "...x...", "...x..."}, 2, 3, P2, false},
		{"broken by opponent", []string{emptyRow, emptyRow, emptyRow, emptyRow, emptyRow, "xxox..."}, 5, 3, P1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, 1, tc.rows...)
			if got := e.IsWin(tc.row, tc.col, tc.who); got != tc.want {
				t.Fatalf("IsWin(%d, %d, %v) = %v, want %v", tc.row, tc.col, tc.who, got, tc.want)
			}
		})
	}
}

func TestIsWinFilledBoard(t *testing.T) {
	rows := make([]string, 6)
	for i := range rows {
		rows[i] = "xxxxxxx"
	}
	e := newEngine(t, 1, rows...)
	if !e.IsWin(2, 3, P1) {
		t.Fatalf("a board full of P1 must be a P1 win")
	}
}

func TestIsDraw(t *testing.T) {
	e := newEngine(t, 1, emptyBoard()...)
	for _, n := range []int{0, 32, 41} {
		if e.IsDraw(n) {
			t.Errorf("IsDraw(%d) should be false", n)
		}
	}
	if !e.IsDraw(42) {
		t.Fatalf("IsDraw(42) should be true on 6x7")
	}
}

func TestDrawnBoardHasNoWinner(t *testing.T) {
	e := newEngine(t, 1, drawnBoard...)
	if !e.IsDraw(42) {
		t.Fatalf("expected draw on a full board")
	}
	for r := 0; r < e.Rows(); r++ {
		for c := 0; c < e.Columns(); c++ {
			if e.IsWin(r, c, e.grid[r][c]) {
				t.Fatalf("no cell of the drawn board should win, (%d,%d) did", r, c)
			}
		}
	}
}
