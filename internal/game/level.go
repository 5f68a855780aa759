package game

import (
	"strconv"
	"strings"
)

// Level is the bot strength. Its value is the engine degree.
type Level int

const (
	Beginner Level = iota
	Amateur
	Regular
	Profession
	Abnormal
)

var levelNames = [...]string{"beginner", "amateur", "regular", "profession", "abnormal"}

func (l Level) Degree() int { return int(l) }

// searchBudget is the leaf count of an abnormal search on a standard board.
const searchBudget = 7 * 7 * 7 * 7 * 7 * 7 * 7 * 7

// Fits reports whether a search at l over cols columns stays within
// searchBudget leaves, cols^(2*degree).
func (l Level) Fits(cols int) bool {
	if cols <= 0 {
		return false
	}
	if l.Degree() < 2 {
		return true
	}
	leaves := 1
	for i := 0; i < 2*l.Degree(); i++ {
		leaves *= cols
		if leaves > searchBudget {
			return false
		}
	}
	return true
}

func (l Level) Valid() bool { return l >= Beginner && l <= Abnormal }

func (l Level) String() string {
	if !l.Valid() {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// ParseLevel accepts a level name or its degree.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if s == name {
			return Level(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return Beginner, ErrBadLevel
}

type Mode int

const (
	HumanVsComputer Mode = iota
	HumanVsHuman
)

func (m Mode) String() string {
	if m == HumanVsHuman {
		return "against human"
	}
	return "against computer"
}
