package engine

import "testing"

// scripted replays fixed draws, wrapping around.
type scripted struct {
	draws []int
	i     int
}

func (s *scripted) Intn(n int) int {
	v := s.draws[s.i%len(s.draws)] % n
	s.i++
	return v
}

func TestBestValueScenarios(t *testing.T) {
	cases := []struct {
		name    string
		rows    []string
		degrees []int
		want    int
	}{
		{"empty board opens in the centre", emptyBoard(), []int{2, 3}, 3},
		{"takes the vertical four", verticalWin, []int{1, 2, 3}, 3},
		{"blocks the vertical four", verticalThreat, []int{1, 2, 3}, 5},
		{"one ply avoids feeding the opponent", poisoned, []int{1}, 3},
		{"search avoids feeding the opponent", poisoned, []int{2}, 5},
	}
	for _, tc := range cases {
		for _, degree := range tc.degrees {
			for seed := int64(1); seed <= 3; seed++ {
				e := newEngine(t, seed, tc.rows...)
				before := snap(e)
				got := e.BestValue(degree, P1)
				if !snap(e).equal(before) {
					t.Fatalf("%s: BestValue(%d) changed the board", tc.name, degree)
				}
				if got != tc.want {
					t.Fatalf("%s: BestValue(%d) = %d, want %d", tc.name, degree, got, tc.want)
				}
			}
		}
	}
}

func TestBestValueDeepOpening(t *testing.T) {
	if testing.Short() {
		t.Skip("eight half-moves of search")
	}
	e := newEngine(t, 1, emptyBoard()...)
	if got := e.BestValue(4, P1); got != 3 {
		t.Fatalf("BestValue(4) on an empty board = %d, want 3", got)
	}
}

func TestBestValueTieStaysInMaxSet(t *testing.T) {
	seen := map[int]bool{}
	for seed := int64(1); seed <= 20; seed++ {
		e := newEngine(t, seed, poisoned...)
		col := e.BestValue(3, P1)
		if col != 2 && col != 3 {
			t.Fatalf("seed %d picked column %d outside the tied set {2,3}", seed, col)
		}
		seen[col] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both tied columns over 20 seeds, saw %v", seen)
	}
}

func TestBestValueScriptedTieBreak(t *testing.T) {
	grid, next := board(t, poisoned...)
	e := New(grid, next, WithRand(&scripted{draws: []int{0, 4, 3, 2}}))
	if got := e.BestValue(3, P1); got != 3 {
		t.Fatalf("expected the first tied draw (3), got %d", got)
	}
}

func TestBestValueRandomIsLegal(t *testing.T) {
	e := newEngine(t, 7,
		"xo.oxox",
		"ox.xoxo",
		"xo.oxox",
		"ox.xoxo",
		"xo.oxox",
		"ox.xoxo",
	)
	for degree := 0; degree <= 2; degree++ {
		for i := 0; i < 10; i++ {
			if got := e.BestValue(degree, P1); got != 2 {
				t.Fatalf("degree %d: only column 2 is legal, got %d", degree, got)
			}
		}
	}
}

func TestBestValueFullBoard(t *testing.T) {
	e := newEngine(t, 1, drawnBoard...)
	for degree := 0; degree <= 2; degree++ {
		if got := e.BestValue(degree, P2); got != NoMove {
			t.Fatalf("degree %d on a full board = %d, want NoMove", degree, got)
		}
	}
}

func TestPickTier(t *testing.T) {
	e := newEngine(t, 1, emptyBoard()...)
	e.rng = &scripted{draws: []int{0, 1, 2, 3, 4, 5, 6}}
	values := []int{5, 127, 3, 121, 0, 0, 0}
	col, ok := e.pick(values, func(v int) bool { return v/10 == 127/10 })
	if !ok || col != 1 {
		t.Fatalf("pick = %d, %v; want 1, true", col, ok)
	}
	e.rng = &scripted{draws: []int{0}}
	if _, ok := e.pick(values, func(v int) bool { return v == 127 }); ok {
		t.Fatalf("pick should give up when the draws never match")
	}
}
