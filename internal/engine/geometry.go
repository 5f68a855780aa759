package engine

// inLine reports whether the cell step cells along d from col's next landing
// row is the landing row of its own column, i.e. a piece dropped there now
// would sit on that line. Up and Down only need the row to stay on the board.
func (e *Engine) inLine(col int, d Direction, step int) bool {
	row := e.next[col]
	if row < 0 || row >= e.rows {
		return false
	}
	switch d {
	case Up:
		return row >= step
	case UpLeft:
		return row >= step && col >= step && row-step == e.next[col-step]
	case Left:
		return col >= step && row == e.next[col-step]
	case DownLeft:
		return row+step < e.rows && col >= step && row+step == e.next[col-step]
	case UpRight:
		return row >= step && col+step < e.cols && row-step == e.next[col+step]
	case Right:
		return col+step < e.cols && row == e.next[col+step]
	case DownRight:
		return row+step < e.rows && col+step < e.cols && row+step == e.next[col+step]
	case Down:
		return row+step < e.rows
	}
	return false
}

// live reports whether the ray along d is open and reaches a droppable cell
// step cells out.
func (e *Engine) live(ls *lineState, col int, d Direction, step int) bool {
	return ls.block[d] < 0 && e.inLine(col, d, step)
}
