package engine

// lineState is what one scan sees around a cell. count[p][d] is the run of
// player p pieces starting next to the cell along d. block[d] is 2 when the
// first step along d leaves the board, minus the number of empty cells when
// the ray starts empty, and 0 when it starts on a piece.
type lineState struct {
	count [2][directions]int
	block [directions]int
}

// look reads the cell step cells from (row, col) along d. Up is never read
// from the grid: a piece only ever lands below empty cells, so every
// on-board cell above is treated as empty.
func (e *Engine) look(row, col int, d Direction, step int) Cell {
	r, c := d.offset(row, col, step)
	if r < 0 || r >= e.rows || c < 0 || c >= e.cols {
		return offBoard
	}
	if d == Up {
		return Empty
	}
	return e.grid[r][c]
}

// scan walks every ray out of (row, col). The cell itself is not read, so
// it may be scanned before a piece is placed there.
func (e *Engine) scan(row, col int) lineState {
	var ls lineState
	for d := Direction(0); d < directions; d++ {
		first := e.look(row, col, d, 1)
		if first == offBoard {
			ls.block[d] = 2
			continue
		}
		for j := 1; e.look(row, col, d, j) == first; j++ {
			if first == Empty {
				ls.block[d]--
			} else {
				ls.count[first.index()][d]++
			}
		}
	}
	return ls
}

// line is the run through the scanned cell along d and its opposite.
func (ls *lineState) line(p int, d Direction) int {
	return ls.count[p][d] + ls.count[p][d.Opposite()]
}

// four reports whether a piece of p on the scanned cell joins four or more.
func (ls *lineState) four(p int) bool {
	for d := Up; d < directions/2; d++ {
		if ls.line(p, d) >= 3 {
			return true
		}
	}
	return false
}
