package game

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrBadColumn  Error = "bad col"
	ErrColumnFull Error = "col full"
	ErrGameOver   Error = "game over"
	ErrBadBoard   Error = "bad board"
	ErrBadLevel   Error = "bad level"
	ErrBadPlayer  Error = "bad player"
	ErrTooDeep    Error = "level too deep for board"
)
