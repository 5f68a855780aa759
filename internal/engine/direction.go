package engine

// Direction indexes the eight rays out of a cell. d and d.Opposite() always
// lie on the same line.
type Direction int

const (
	Up Direction = iota
	UpLeft
	Left
	DownLeft
	UpRight
	Right
	DownRight
	Down
)

const directions = 8

var steps = [directions][2]int{
	Up:        {-1, 0},
	UpLeft:    {-1, -1},
	Left:      {0, -1},
	DownLeft:  {1, -1},
	UpRight:   {-1, 1},
	Right:     {0, 1},
	DownRight: {1, 1},
	Down:      {1, 0},
}

func (d Direction) Opposite() Direction { return directions - 1 - d }

// offset returns the cell step cells away from (row, col) along d.
func (d Direction) offset(row, col, step int) (int, int) {
	s := steps[d]
	return row + s[0]*step, col + s[1]*step
}
