package record

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// MatchSummary is one finished match's headline numbers.
type MatchSummary struct {
	ID       int64
	PlayedAt time.Time
	Seed     int64
	Ticks    int
	Touches  int
	Goals    int
	Flips    int
}

// MatchDB stores match summaries in a local sqlite file so headless runs
// accumulate history across invocations.
type MatchDB struct {
	db *sql.DB
}

const matchSchema = `
CREATE TABLE IF NOT EXISTS matches (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	played_at  TEXT    NOT NULL,
	seed       INTEGER NOT NULL,
	ticks      INTEGER NOT NULL,
	touches    INTEGER NOT NULL,
	goals      INTEGER NOT NULL,
	flips      INTEGER NOT NULL
);`

// OpenMatchDB opens (creating if needed) the sqlite file at path.
func OpenMatchDB(path string) (*MatchDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open match db: %w", err)
	}
	if _, err := db.Exec(matchSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &MatchDB{db: db}, nil
}

// Insert stores one summary and returns its row id.
func (m *MatchDB) Insert(s MatchSummary) (int64, error) {
	res, err := m.db.Exec(
		`INSERT INTO matches (played_at, seed, ticks, touches, goals, flips) VALUES (?, ?, ?, ?, ?, ?)`,
		s.PlayedAt.UTC().Format(time.RFC3339), s.Seed, s.Ticks, s.Touches, s.Goals, s.Flips,
	)
	if err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to n summaries, newest first.
func (m *MatchDB) Recent(n int) ([]MatchSummary, error) {
	rows, err := m.db.Query(
		`SELECT id, played_at, seed, ticks, touches, goals, flips FROM matches ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var out []MatchSummary
	for rows.Next() {
		var s MatchSummary
		var playedAt string
		if err := rows.Scan(&s.ID, &playedAt, &s.Seed, &s.Ticks, &s.Touches, &s.Goals, &s.Flips); err != nil {
			return nil, err
		}
		s.PlayedAt, _ = time.Parse(time.RFC3339, playedAt)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Close releases the underlying handle.
func (m *MatchDB) Close() error {
	return m.db.Close()
}
