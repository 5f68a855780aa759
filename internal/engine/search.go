package engine

import "math"

// winScore is scaled by the remaining depth so nearer wins score higher.
const winScore = 20000000

// search runs minimax to 2*degree half-moves for p and returns the root
// value with the value of every column tried at the root.
func (e *Engine) search(degree int, p Cell) (int, []int) {
	e.maxDepth = degree
	trace := make([]int, e.cols)
	best := e.miniMax(2*degree, math.MinInt32, math.MaxInt32, p, trace)
	return best, trace
}

// miniMax maximizes on even depths, where p moves, and minimizes on odd
// depths, where the opponent moves. Each node starts from a fresh bound on
// its own side and only inherits the other one.
func (e *Engine) miniMax(depth, alpha, beta int, p Cell, trace []int) int {
	maximizing := depth%2 == 0
	if maximizing {
		alpha = math.MinInt32
	} else {
		beta = math.MaxInt32
	}
	if depth == 0 {
		v := e.BoardValue()
		return v[p.index()] - v[p.Opponent().index()]/10*8
	}
	root := depth == 2*e.maxDepth
	mover := p
	if !maximizing {
		mover = p.Opponent()
	}
	for col := 0; col < e.cols; col++ {
		row := e.next[col]
		if row < 0 {
			continue
		}
		if e.IsWin(row, col, mover) {
			v := winScore * depth
			if !maximizing {
				v = -v
			}
			if root {
				trace[col] = v
			}
			return v
		}
		v := e.try(col, mover, func() int {
			return e.miniMax(depth-1, alpha, beta, p, trace)
		})
		if root {
			trace[col] = v
		}
		if maximizing {
			alpha = max(alpha, v)
		} else {
			beta = min(beta, v)
		}
		if alpha > beta {
			return v
		}
	}
	if maximizing {
		return alpha
	}
	return beta
}

// try drops a piece of who into col, runs fn, and takes the piece back
// however fn returns.
func (e *Engine) try(col int, who Cell, fn func() int) int {
	row := e.next[col]
	e.grid[row][col] = who
	e.next[col]--
	defer func() {
		e.next[col]++
		e.grid[row][col] = Empty
	}()
	return fn()
}
