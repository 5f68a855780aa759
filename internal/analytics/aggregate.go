package analytics

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Event is the union of every payload Emit writes.
type Event struct {
	Event    string `json:"event"`
	GameID   string `json:"gameId"`
	P1       string `json:"p1"`
	P2       string `json:"p2"`
	By       string `json:"by"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	Winner   string `json:"winner"`
	Reason   string `json:"reason"`
	Duration string `json:"duration"`
	Level    string `json:"level"`
	ThinkMS  int64  `json:"think_ms"`
}

type PlayerStats struct {
	GamesPlayed int
	Wins        int
	Moves       int
}

type ThinkStats struct {
	Count int
	Total time.Duration
	Max   time.Duration
}

func (s ThinkStats) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Aggregates folds the event stream into running totals. bot names the
// computer player so its wins are kept apart.
type Aggregates struct {
	mu         sync.Mutex
	bot        string
	started    int
	finished   int
	moves      int
	botWins    int
	playerWins int
	draws      int
	totalDur   time.Duration
	players    map[string]PlayerStats
	think      map[string]ThinkStats
	perHour    map[time.Time]int
	lastPrint  time.Time
}

func NewAggregates(bot string) *Aggregates {
	return &Aggregates{
		bot:     bot,
		players: map[string]PlayerStats{},
		think:   map[string]ThinkStats{},
		perHour: map[time.Time]int{},
	}
}

// Add decodes one message value received at ts.
func (a *Aggregates) Add(value []byte, ts time.Time) error {
	var ev Event
	if err := json.Unmarshal(value, &ev); err != nil {
		return errors.Wrap(err, "decode event")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev.Event {
	case MatchStart, MatchPaired:
		a.started++
		a.perHour[ts.Truncate(time.Hour)]++
		for _, p := range []string{ev.P1, ev.P2} {
			if p == a.bot || p == "" {
				continue
			}
			s := a.players[p]
			s.GamesPlayed++
			a.players[p] = s
		}
	case Move:
		a.moves++
		if ev.By != a.bot {
			s := a.players[ev.By]
			s.Moves++
			a.players[ev.By] = s
		}
	case BotThink:
		d := time.Duration(ev.ThinkMS) * time.Millisecond
		s := a.think[ev.Level]
		s.Count++
		s.Total += d
		s.Max = max(s.Max, d)
		a.think[ev.Level] = s
	case GameEnd:
		a.finished++
		if d, err := time.ParseDuration(ev.Duration); err == nil {
			a.totalDur += d
		}
		switch {
		case ev.Winner == "":
			a.draws++
		case ev.Winner == a.bot:
			a.botWins++
		default:
			a.playerWins++
			s := a.players[ev.Winner]
			s.Wins++
			a.players[ev.Winner] = s
		}
	default:
		return errors.Errorf("unknown event %q", ev.Event)
	}
	return nil
}

func (a *Aggregates) AverageDuration() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finished == 0 {
		return 0
	}
	return a.totalDur / time.Duration(a.finished)
}

func (a *Aggregates) Player(name string) PlayerStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.players[name]
}

func (a *Aggregates) Think(level string) ThinkStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.think[level]
}

// Results returns bot wins, player wins and draws.
func (a *Aggregates) Results() (bot, players, draws int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.botWins, a.playerWins, a.draws
}

// Print writes a snapshot to w unless one was written within every.
func (a *Aggregates) Print(w io.Writer, now time.Time, every time.Duration) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if now.Sub(a.lastPrint) < every {
		return false
	}
	a.lastPrint = now
	var avg time.Duration
	if a.finished > 0 {
		avg = a.totalDur / time.Duration(a.finished)
	}
	fmt.Fprintln(w, "---- Analytics Snapshot ----")
	fmt.Fprintf(w, "Games started : %d\n", a.started)
	fmt.Fprintf(w, "Games finished: %d\n", a.finished)
	fmt.Fprintf(w, "Moves         : %d\n", a.moves)
	fmt.Fprintf(w, "Avg duration  : %v\n", avg)
	fmt.Fprintf(w, "Bot wins: %d, Player wins: %d, Draws: %d\n", a.botWins, a.playerWins, a.draws)

	fmt.Fprintln(w, "Top players:")
	names := make([]string, 0, len(a.players))
	for n := range a.players {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := a.players[names[i]], a.players[names[j]]
		if pi.Wins != pj.Wins {
			return pi.Wins > pj.Wins
		}
		return names[i] < names[j]
	})
	if len(names) > 5 {
		names = names[:5]
	}
	for _, n := range names {
		s := a.players[n]
		fmt.Fprintf(w, "  %s: %d games, %d wins, %d moves\n", n, s.GamesPlayed, s.Wins, s.Moves)
	}

	fmt.Fprintln(w, "Bot think time:")
	levels := make([]string, 0, len(a.think))
	for l := range a.think {
		levels = append(levels, l)
	}
	sort.Strings(levels)
	for _, l := range levels {
		s := a.think[l]
		fmt.Fprintf(w, "  %s: %d moves, avg %v, max %v\n", l, s.Count, s.Average(), s.Max)
	}

	fmt.Fprintln(w, "Games per hour:")
	hours := make([]time.Time, 0, len(a.perHour))
	for h := range a.perHour {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Before(hours[j]) })
	for _, h := range hours {
		fmt.Fprintf(w, "  %s : %d\n", h.Format("2006-01-02 15:00"), a.perHour[h])
	}
	fmt.Fprintln(w, "----------------------------")
	return true
}

