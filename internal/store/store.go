package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/you/connectfour/internal/game"
)

type DB struct{ Pool *pgxpool.Pool }

func Open(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres pool")
	}
	return &DB{Pool: pool}, nil
}

func (db *DB) Close() { db.Pool.Close() }

const schema = `
	CREATE TABLE IF NOT EXISTS games (
		id         UUID PRIMARY KEY,
		p1         TEXT NOT NULL,
		p2         TEXT NOT NULL,
		winner     TEXT,
		is_draw    BOOLEAN NOT NULL DEFAULT FALSE,
		level      TEXT NOT NULL DEFAULT 'regular',
		moves      INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		ended_at   TIMESTAMPTZ
	);
	ALTER TABLE games ADD COLUMN IF NOT EXISTS level TEXT NOT NULL DEFAULT 'regular';
	ALTER TABLE games ADD COLUMN IF NOT EXISTS moves INTEGER NOT NULL DEFAULT 0;
	CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at);
`

func (db *DB) AutoMigrate(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, schema)
	return errors.Wrap(err, "migrate games")
}

// SaveGame upserts the finished or in-progress game g.
func (db *DB) SaveGame(ctx context.Context, g *game.Game) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO games (id, p1, p2, winner, is_draw, level, moves, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			winner     = EXCLUDED.winner,
			is_draw    = EXCLUDED.is_draw,
			moves      = EXCLUDED.moves,
			started_at = EXCLUDED.started_at,
			ended_at   = EXCLUDED.ended_at
	`, g.ID, g.P1, g.P2, g.Winner, g.IsDraw, g.Level.String(), g.Moves, g.Started, g.Ended)
	return errors.Wrapf(err, "save game %s", g.ID)
}

type RecentGameRow struct {
	ID      string     `json:"id"`
	P1      string     `json:"p1"`
	P2      string     `json:"p2"`
	Winner  *string    `json:"winner,omitempty"`
	IsDraw  bool       `json:"is_draw"`
	Level   string     `json:"level"`
	Moves   int        `json:"moves"`
	Started time.Time  `json:"started"`
	Ended   *time.Time `json:"ended,omitempty"`
}

func (db *DB) RecentGames(ctx context.Context, limit int) ([]RecentGameRow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id::text, p1, p2, winner, is_draw, level, moves, started_at, ended_at
		FROM games
		ORDER BY ended_at DESC NULLS LAST, started_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query recent games")
	}
	defer rows.Close()

	out := []RecentGameRow{}
	for rows.Next() {
		var r RecentGameRow
		if err := rows.Scan(&r.ID, &r.P1, &r.P2, &r.Winner, &r.IsDraw, &r.Level, &r.Moves, &r.Started, &r.Ended); err != nil {
			return nil, errors.Wrap(err, "scan recent game")
		}
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "read recent games")
}
