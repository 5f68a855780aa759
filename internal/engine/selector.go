package engine

// BestValue picks the column p should play. degree 0 plays a random legal
// column, degree 1 ranks columns one ply deep with ColumnValue, and higher
// degrees search 2*degree half-moves. Ties are broken at random; when no
// tied column turns up within columns³ draws any legal column is played.
func (e *Engine) BestValue(degree int, p Cell) int {
	switch {
	case degree == 1:
		values := make([]int, e.cols)
		best := 0
		for col := range values {
			values[col] = e.ColumnValue(col, p)
			best = max(best, values[col])
		}
		if best >= decisive {
			if col, ok := e.pick(values, func(v int) bool { return v/10 == best/10 }); ok {
				return col
			}
		} else if col, ok := e.pick(values, func(v int) bool { return v == best }); ok {
			return col
		}
	case degree > 1:
		best, values := e.search(degree, p)
		if col, ok := e.pick(values, func(v int) bool { return v == best }); ok {
			return col
		}
	}
	return e.randomLegal()
}

// pick draws random columns until a legal one whose value matches turns up.
func (e *Engine) pick(values []int, match func(int) bool) (int, bool) {
	for i := 0; i < e.cols*e.cols*e.cols; i++ {
		col := e.rng.Intn(e.cols)
		if e.legal(col) && match(values[col]) {
			return col, true
		}
	}
	return NoMove, false
}

func (e *Engine) randomLegal() int {
	free := 0
	for col := 0; col < e.cols; col++ {
		if e.legal(col) {
			free++
		}
	}
	if free == 0 {
		return NoMove
	}
	for {
		col := e.rng.Intn(e.cols)
		if e.legal(col) {
			return col
		}
	}
}
