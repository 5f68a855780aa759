// Package engine picks columns for a connect-four player and detects
// finished games.
//
// The engine never owns the board. It is handed the caller's grid and drop
// pointers, may place and remove pieces on them while it searches, and
// always leaves them as it found them. It is not safe for concurrent use:
// callers must serialise every call that touches the same board.
package engine

import (
	"math/rand"
	"time"
)

type Cell int8

const (
	Empty Cell = 0
	P1    Cell = 1
	P2    Cell = 2
)

// offBoard is what a probe past the grid edge reads. It never appears in a grid.
const offBoard Cell = -1

// NoMove is returned by BestValue when every column is full.
const NoMove = -1

func (c Cell) Opponent() Cell {
	if c == P1 {
		return P2
	}
	return P1
}

func (c Cell) index() int { return int(c) - 1 }

func (c Cell) String() string {
	switch c {
	case P1:
		return "P1"
	case P2:
		return "P2"
	default:
		return "Empty"
	}
}

// Rand is the source used to break ties between equally valued columns.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Engine struct {
	rows     int
	cols     int
	grid     [][]Cell
	next     []int
	maxDepth int
	rng      Rand
}

type Option func(*Engine)

func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// New binds an engine to grid (rows x columns, row 0 on top) and next, the
// row each column's next piece lands on (-1 once full). Both slices are
// shared with the caller, not copied.
func New(grid [][]Cell, next []int, opts ...Option) *Engine {
	if len(grid) == 0 || len(grid[0]) == 0 {
		panic("engine: empty grid")
	}
	if next == nil {
		panic("engine: nil drop pointers")
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			panic("engine: ragged grid")
		}
	}
	if len(next) != cols {
		panic("engine: drop pointers do not match columns")
	}
	e := &Engine{
		rows:     len(grid),
		cols:     cols,
		grid:     grid,
		next:     next,
		maxDepth: 2,
	}
	for _, o := range opts {
		o(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

func (e *Engine) Rows() int    { return e.rows }
func (e *Engine) Columns() int { return e.cols }

func (e *Engine) legal(col int) bool { return e.next[col] >= 0 }
