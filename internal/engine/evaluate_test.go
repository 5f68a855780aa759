package engine

import "testing"

var (
	// P1 completes a vertical four by playing column 3.
	verticalWin = []string{emptyRow, emptyRow, emptyRow, "...x...", "...x..o", "o..x..o"}
	// P2 completes a vertical four on column 5 unless P1 blocks it.
	verticalThreat = []string{emptyRow, emptyRow, emptyRow, ".....o.", "x....o.", "x...xo."}
	// P2 wins on row 4 as soon as column 0 or column 4 gets a piece.
	poisoned = []string{emptyRow, emptyRow, emptyRow, emptyRow, ".ooo...", ".xxo.xx"}
)

func columnValues(e *Engine, p Cell) []int {
	values := make([]int, e.Columns())
	for c := range values {
		values[c] = e.ColumnValue(c, p)
	}
	return values
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestColumnValue(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want []int
	}{
		{"empty", emptyBoard(), []int{0, 0, 0, 0, 0, 0, 0}},
		{"winning move", verticalWin, []int{40, 40, 55, winningMove, 55, 44, 400}},
		{"must block", verticalThreat, []int{500, 55, 0, 50, 98, mustBlock, 8}},
		{"must avoid", poisoned, []int{mustAvoid, 44, 48, 404, mustAvoid, 55, 55}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, 1, tc.rows...)
			before := snap(e)
			got := columnValues(e, P1)
			if !sameInts(got, tc.want) {
				t.Fatalf("ColumnValue = %v, want %v", got, tc.want)
			}
			if !snap(e).equal(before) {
				t.Fatalf("ColumnValue changed the board")
			}
		})
	}
}

func TestColumnValueSentinelOrder(t *testing.T) {
	if !(winningMove > mustBlock && mustBlock > ownPair.both && mustAvoid < 0) {
		t.Fatalf("sentinels out of order: win %d block %d avoid %d", winningMove, mustBlock, mustAvoid)
	}
}

func TestColumnValueFullColumn(t *testing.T) {
	e := newEngine(t, 1, "x......", "o......", "x......", "o......", "x......", "o......")
	if v := e.ColumnValue(0, P1); v != 0 {
		t.Fatalf("a full column should rate 0, got %d", v)
	}
}

func TestBoardValue(t *testing.T) {
	e := newEngine(t, 1, emptyBoard()...)
	if got := e.BoardValue(); got != [2]int{123, 123} {
		t.Fatalf("empty BoardValue = %v, want [123 123]", got)
	}

	e = newEngine(t, 1, verticalThreat...)
	got := e.BoardValue()
	if got != [2]int{805, 1000220} {
		t.Fatalf("BoardValue = %v, want [805 1000220]", got)
	}
	if got[1] < boardFour {
		t.Fatalf("an open P2 four should carry the board four score")
	}
}
