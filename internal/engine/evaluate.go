package engine

import "math"

const (
	winningMove = math.MaxInt32 / 2
	mustBlock   = math.MaxInt32 / 4
	mustAvoid   = math.MinInt32 / 2
	boardFour   = 1000000
	// decisive is the ColumnValue above which columns are compared by tier.
	decisive = 100
)

// weight scores a pattern by how many of its two extension cells are live.
type weight struct{ both, one, none int }

var (
	ownPair = weight{100000, 1000, 10}
	oppPair = weight{80000, 800, 8}
	ownTwo  = weight{50000, 500, 5}
	ownOne  = weight{5000, 50, 5}
	oppTwo  = weight{40000, 400, 4}
	oppOne  = weight{4000, 40, 4}
)

// grade scores a pattern along d whose forward extension is ahead cells out
// and whose backward extension is behind cells out along d.Opposite().
func (e *Engine) grade(ls *lineState, col int, d Direction, ahead, behind int, w weight) int {
	fwd := e.live(ls, col, d, ahead)
	back := e.live(ls, col, d.Opposite(), behind)
	switch {
	case fwd && back:
		return w.both
	case fwd || back:
		return w.one
	}
	return w.none
}

// pairs scores single pieces on both sides of the scanned cell.
func (e *Engine) pairs(ls *lineState, col, p int, w weight) int {
	v := 0
	for d := UpLeft; d < directions/2; d++ {
		if ls.count[p][d] == 1 && ls.count[p][d.Opposite()] == 1 {
			v += e.grade(ls, col, d, 2, 2, w)
		}
	}
	return v
}

// runs scores the run of p starting next to the scanned cell along d.
func (e *Engine) runs(ls *lineState, col, p int, d Direction, two, one weight) int {
	switch ls.count[p][d] {
	case 2:
		return e.grade(ls, col, d, 3, 1, two)
	case 1:
		return e.grade(ls, col, d, 2, 1, one)
	}
	return 0
}

// ColumnValue rates dropping a piece of p into col for a one-ply choice.
// Winning moves rate highest, then blocks of an opponent four; a drop that
// hands the opponent a four on the cell above rates lowest. A full column
// rates 0.
func (e *Engine) ColumnValue(col int, p Cell) int {
	row := e.next[col]
	if row < 0 {
		return 0
	}
	var above lineState
	if row > 0 {
		above = e.scan(row-1, col)
	}
	at := e.scan(row, col)
	me, opp := p.index(), p.Opponent().index()
	switch {
	case at.four(me):
		return winningMove
	case at.four(opp):
		return mustBlock
	case above.four(opp):
		return mustAvoid
	}
	v := e.pairs(&at, col, me, ownPair) + e.pairs(&at, col, opp, oppPair)
	for d := UpLeft; d < directions; d++ {
		v += e.runs(&at, col, me, d, ownTwo, ownOne)
		v += e.runs(&at, col, opp, d, oppTwo, oppOne)
	}
	return v
}

// BoardValue scores the position for P1 and P2, indexed 0 and 1, by
// looking at the landing cell of every column that is not full.
func (e *Engine) BoardValue() [2]int {
	var v [2]int
	for col := 0; col < e.cols; col++ {
		row := e.next[col]
		if row < 0 {
			continue
		}
		ls := e.scan(row, col)
		for p := 0; p < 2; p++ {
			for d := Up; d < directions/2; d++ {
				if ls.line(p, d) >= 3 {
					v[p] += boardFour
				}
			}
			v[p] += e.pairs(&ls, col, p, ownPair)
			for d := Up; d < directions; d++ {
				v[p] += e.runs(&ls, col, p, d, ownTwo, ownOne)
				if ls.count[p][d]-ls.block[d] <= 4 {
					v[p] += 3
				}
			}
		}
	}
	return v
}
