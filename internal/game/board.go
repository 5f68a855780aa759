package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/you/connectfour/internal/engine"
)

const (
	Cols = 7
	Rows = 6
)

// Board is the grid plus the row each column's next piece lands on (-1 once
// the column is full). Row 0 is the top row.
type Board struct {
	Rows  int             `json:"rows"`
	Cols  int             `json:"cols"`
	Cells [][]engine.Cell `json:"cells"`
	Next  []int           `json:"next"`
}

func NewBoard(rows, cols int) *Board {
	b := &Board{Rows: rows, Cols: cols, Cells: make([][]engine.Cell, rows), Next: make([]int, cols)}
	for r := range b.Cells {
		b.Cells[r] = make([]engine.Cell, cols)
	}
	for c := range b.Next {
		b.Next[c] = rows - 1
	}
	return b
}

func (b *Board) Clone() *Board {
	out := NewBoard(b.Rows, b.Cols)
	for r := range b.Cells {
		copy(out.Cells[r], b.Cells[r])
	}
	copy(out.Next, b.Next)
	return out
}

func (b *Board) Legal(col int) bool { return col >= 0 && col < b.Cols && b.Next[col] >= 0 }

func (b *Board) Full() bool {
	for c := 0; c < b.Cols; c++ {
		if b.Next[c] >= 0 {
			return false
		}
	}
	return true
}

// Pieces counts the occupied cells.
func (b *Board) Pieces() int {
	n := 0
	for c := 0; c < b.Cols; c++ {
		n += b.Rows - 1 - b.Next[c]
	}
	return n
}

// ToMove infers the side to move assuming P1 opened.
func (b *Board) ToMove() engine.Cell {
	p1, p2 := 0, 0
	for _, row := range b.Cells {
		for _, c := range row {
			switch c {
			case engine.P1:
				p1++
			case engine.P2:
				p2++
			}
		}
	}
	if p1 > p2 {
		return engine.P2
	}
	return engine.P1
}

// drop lands a piece of who in col and returns its row.
func (b *Board) drop(col int, who engine.Cell) (int, error) {
	if col < 0 || col >= b.Cols {
		return -1, ErrBadColumn
	}
	if !b.Legal(col) {
		return -1, ErrColumnFull
	}
	row := b.Next[col]
	b.Cells[row][col] = who
	b.Next[col]--
	return row, nil
}

var cellRunes = map[engine.Cell]byte{engine.Empty: '.', engine.P1: 'x', engine.P2: 'o'}

// ParseSide reads a side in the board's cell notation.
func ParseSide(s string) (engine.Cell, error) {
	switch strings.TrimSpace(s) {
	case "x", "X", "1":
		return engine.P1, nil
	case "o", "O", "2":
		return engine.P2, nil
	}
	return engine.Empty, ErrBadPlayer
}

// String renders the board top row first, rows joined by '/'.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.Cells {
		if r > 0 {
			sb.WriteByte('/')
		}
		for _, c := range row {
			sb.WriteByte(cellRunes[c])
		}
	}
	return sb.String()
}

// Pretty renders the board one row per line with column numbers below.
func (b *Board) Pretty() string {
	var sb strings.Builder
	for _, row := range b.Cells {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cellRunes[cell])
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < b.Cols; c++ {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(c % 10))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// ParseBoard reads the String form back. Pieces must rest on the bottom or
// on another piece.
func ParseBoard(s string) (*Board, error) {
	lines := strings.Split(strings.TrimSpace(s), "/")
	cols := len(lines[0])
	if cols == 0 {
		return nil, errors.Wrap(ErrBadBoard, "empty row")
	}
	b := NewBoard(len(lines), cols)
	for r, line := range lines {
		if len(line) != cols {
			return nil, errors.Wrapf(ErrBadBoard, "row %d has %d cells, want %d", r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			switch line[c] {
			case '.':
			case 'x', 'X', '1':
				b.Cells[r][c] = engine.P1
			case 'o', 'O', '2':
				b.Cells[r][c] = engine.P2
			default:
				return nil, errors.Wrapf(ErrBadBoard, "unknown cell %q at (%d,%d)", line[c], r, c)
			}
		}
	}
	for c := 0; c < cols; c++ {
		next := b.Rows - 1
		for next >= 0 && b.Cells[next][c] != engine.Empty {
			next--
		}
		for r := next - 1; r >= 0; r-- {
			if b.Cells[r][c] != engine.Empty {
				return nil, errors.Wrapf(ErrBadBoard, "floating piece at (%d,%d)", r, c)
			}
		}
		b.Next[c] = next
	}
	return b, nil
}
