package game

import (
	"time"

	"github.com/you/connectfour/internal/engine"
)

// Analysis is the engine's view of one position.
type Analysis struct {
	Board    string      `json:"board"`
	Player   engine.Cell `json:"player"`
	Level    Level       `json:"level"`
	Column   int         `json:"column"`
	Values   []int       `json:"values"`
	Position [2]int      `json:"position"`
	Elapsed  string      `json:"elapsed"`
}

// Analyze rates every column for p and picks one at level. b is searched
// in place and handed back unchanged.
func Analyze(b *Board, p engine.Cell, level Level, rng engine.Rand) Analysis {
	var opts []engine.Option
	if rng != nil {
		opts = append(opts, engine.WithRand(rng))
	}
	eng := engine.New(b.Cells, b.Next, opts...)
	start := time.Now()
	values := make([]int, b.Cols)
	for c := range values {
		values[c] = eng.ColumnValue(c, p)
	}
	col := eng.BestValue(level.Degree(), p)
	return Analysis{
		Board:    b.String(),
		Player:   p,
		Level:    level,
		Column:   col,
		Values:   values,
		Position: eng.BoardValue(),
		Elapsed:  time.Since(start).String(),
	}
}

// Outcome reports whether the piece at (row, col) won or filled the board.
func Outcome(b *Board, row, col int) (win, draw bool) {
	eng := engine.New(b.Cells, b.Next)
	who := b.Cells[row][col]
	if who == engine.Empty {
		return false, false
	}
	if eng.IsWin(row, col, who) {
		return true, false
	}
	return false, eng.IsDraw(b.Pieces())
}
