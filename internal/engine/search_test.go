package engine

import "testing"

func TestSearchValues(t *testing.T) {
	cases := []struct {
		name   string
		rows   []string
		degree int
		best   int
		trace  []int
	}{
		{"empty degree 2", emptyBoard(), 2, 19, []int{-221, -108, -60, 19, -60, -13, -18}},
		{"empty degree 3", emptyBoard(), 3, -13, []int{-97, -65, -36, -13, -36, -48, -15}},
		{"win cuts the root", verticalWin, 2, 4 * winScore, []int{33, -254, 999718, 4 * winScore, 0, 0, 0}},
		{"forced block", verticalThreat, 2, 107, []int{-3 * winScore, -3 * winScore, -3 * winScore, -3 * winScore, -3 * winScore, 107, -171}},
		{"forced block deeper", verticalThreat, 3, 88, []int{-5 * winScore, -5 * winScore, -5 * winScore, -5 * winScore, -5 * winScore, 88, -10}},
		{"poisoned columns", poisoned, 2, -800030, []int{-3 * winScore, -800552, -800179, -800219, -1 * winScore, -800030, -800033}},
		{"tied columns", poisoned, 3, -800187, []int{-5 * winScore, -1599684, -800187, -800187, -3 * winScore, -800232, -800237}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, 1, tc.rows...)
			before := snap(e)
			best, trace := e.search(tc.degree, P1)
			if best != tc.best {
				t.Errorf("best = %d, want %d", best, tc.best)
			}
			if !sameInts(trace, tc.trace) {
				t.Errorf("trace = %v, want %v", trace, tc.trace)
			}
			if !snap(e).equal(before) {
				t.Fatalf("search left pieces on the board")
			}
		})
	}
}

func TestSearchPrefersNearerWins(t *testing.T) {
	e := newEngine(t, 1, verticalWin...)
	shallow, _ := e.search(2, P1)
	deep, _ := e.search(3, P1)
	if deep <= shallow {
		t.Fatalf("a win found with more depth left must score higher: %d vs %d", deep, shallow)
	}
}

func TestSearchDeterministicMaxSet(t *testing.T) {
	e := newEngine(t, 1, poisoned...)
	best, trace := e.search(3, P1)
	for i := 0; i < 3; i++ {
		b, tr := e.search(3, P1)
		if b != best || !sameInts(tr, trace) {
			t.Fatalf("repeat search differs: %d %v vs %d %v", b, tr, best, trace)
		}
	}
}

func TestTryRestoresOnPanic(t *testing.T) {
	e := newEngine(t, 1, emptyBoard()...)
	before := snap(e)
	func() {
		defer func() { _ = recover() }()
		e.try(3, P1, func() int { panic("boom") })
	}()
	if !snap(e).equal(before) {
		t.Fatalf("try must undo the drop even when the callback panics")
	}
}
