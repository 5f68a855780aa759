package engine

// IsWin reports whether p owns four in a line through (row, col). Call it
// with the cell of the piece just placed.
func (e *Engine) IsWin(row, col int, p Cell) bool {
	ls := e.scan(row, col)
	return ls.four(p.index())
}

// IsDraw reports whether pieces fill the board. Check IsWin first: the last
// piece can both fill the board and win.
func (e *Engine) IsDraw(pieces int) bool {
	return pieces == e.rows*e.cols
}
