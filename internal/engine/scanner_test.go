package engine

import "testing"

func TestScanEmptyBottomCenter(t *testing.T) {
	e := newEngine(t, 1, emptyBoard()...)
	ls := e.scan(5, 3)
	want := [directions]int{-5, -3, -3, 2, -3, -3, 2, 2}
	if ls.block != want {
		t.Fatalf("block = %v, want %v", ls.block, want)
	}
	if ls.count != [2][directions]int{} {
		t.Fatalf("expected no runs on an empty board, got %v", ls.count)
	}
}

func TestScanCountsRunsAndOpenRays(t *testing.T) {
	e := newEngine(t, 1,
		emptyRow,
		emptyRow,
		emptyRow,
		".....o.",
		"x....o.",
		"x...xo.",
	)

	above := e.scan(2, 5)
	if got := above.count[P2.index()][Down]; got != 3 {
		t.Fatalf("expected a run of three P2 below, got %d", got)
	}
	if want := [directions]int{-2, -2, -5, -3, -1, -1, -1, 0}; above.block != want {
		t.Fatalf("block = %v, want %v", above.block, want)
	}
	if !above.four(P2.index()) || above.four(P1.index()) {
		t.Fatalf("only P2 should complete four on (2,5)")
	}

	low := e.scan(5, 3)
	if got := low.count[P1.index()][Right]; got != 1 {
		t.Fatalf("expected one P1 piece to the right, got %d", got)
	}
	if want := [directions]int{-5, -3, -2, 2, -1, 0, 2, 2}; low.block != want {
		t.Fatalf("block = %v, want %v", low.block, want)
	}
}

func TestScanUpNeverCounts(t *testing.T) {
	e := newEngine(t, 1,
		"x......",
		"x......",
		"x......",
		"x......",
		"x......",
		".......",
	)
	ls := e.scan(5, 0)
	if ls.count[P1.index()][Up] != 0 {
		t.Fatalf("Up must not count pieces, got %d", ls.count[P1.index()][Up])
	}
	if ls.block[Up] != -5 {
		t.Fatalf("Up should report every cell above as open, got %d", ls.block[Up])
	}
}

func TestInLine(t *testing.T) {
	e := newEngine(t, 1,
		emptyRow,
		emptyRow,
		emptyRow,
		".x.....",
		".x...x.",
		".x.x.x.",
	)
	cases := []struct {
		d    Direction
		step int
		want bool
	}{
		{UpLeft, 2, true},
		{UpRight, 1, false},
		{UpRight, 2, false},
		{DownRight, 1, true},
		{DownLeft, 1, true},
		{Right, 2, false},
		{Left, 2, false},
		{Up, 4, true},
		{Up, 5, false},
		{Down, 1, true},
		{Down, 2, false},
	}
	for _, tc := range cases {
		if got := e.inLine(3, tc.d, tc.step); got != tc.want {
			t.Errorf("inLine(3, %d, %d) = %v, want %v", tc.d, tc.step, got, tc.want)
		}
	}
}

func TestInLineFullColumn(t *testing.T) {
	e := newEngine(t, 1,
		"x......",
		"o......",
		"x......",
		"o......",
		"x......",
		"o......",
	)
	for d := Direction(0); d < directions; d++ {
		if e.inLine(0, d, 1) {
			t.Fatalf("a full column has no landing cell, direction %d", d)
		}
	}
}
