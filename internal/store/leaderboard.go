package store

import (
	"context"

	"github.com/pkg/errors"
)

type LBRow struct {
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	// BotWins counts wins against the computer.
	BotWins int `json:"bot_wins"`
}

func (db *DB) Leaderboard(ctx context.Context) ([]LBRow, error) {
	rows, err := db.Pool.Query(ctx, `SELECT winner AS username, COUNT(*) AS wins,
			COUNT(*) FILTER (WHERE p1 = 'BOT' OR p2 = 'BOT') AS bot_wins
		FROM games WHERE winner IS NOT NULL GROUP BY winner ORDER BY wins DESC LIMIT 50`)
	if err != nil {
		return nil, errors.Wrap(err, "query leaderboard")
	}
	defer rows.Close()
	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Username, &r.Wins, &r.BotWins); err != nil {
			return nil, errors.Wrap(err, "scan leaderboard")
		}
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "read leaderboard")
}
