// Package persistence provides the SQLite match journal: an append-only
// record of game events and final standings. It records what happened for
// later inspection; it never restores game state.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hex-frontier/internal/engine"
)

// Journal wraps a SQLite connection for match recording.
type Journal struct {
	conn *sqlx.DB
}

// Open opens or creates a journal database at the given path.
func Open(path string) (*Journal, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		turn INTEGER NOT NULL,
		round INTEGER NOT NULL,
		kind TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS outcomes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recorded_at TEXT NOT NULL DEFAULT (datetime('now')),
		outcome TEXT NOT NULL,
		turn INTEGER NOT NULL,
		level INTEGER NOT NULL,
		food INTEGER NOT NULL,
		wood INTEGER NOT NULL,
		gold INTEGER NOT NULL,
		status_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS match_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_turn ON events(turn);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// Append writes a batch of events in one transaction.
func (j *Journal) Append(events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := j.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (turn, round, kind, description) VALUES (?, ?, ?, ?)",
			e.Turn, e.Round, e.Kind, e.Description,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RecordOutcome stores the final standings of a finished game: the outcome
// label plus a snapshot of the closing status.
func (j *Journal) RecordOutcome(outcome string, st engine.Status) error {
	statusJSON, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}

	_, err = j.conn.Exec(`INSERT INTO outcomes
		(outcome, turn, level, food, wood, gold, status_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		outcome, st.Turn, st.Level, st.Food, st.Wood, st.Gold, string(statusJSON),
	)
	if err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}

	slog.Info("outcome recorded", "outcome", outcome, "turn", st.Turn, "level", st.Level)
	return nil
}

// SetMeta stores a key-value pair in match metadata.
func (j *Journal) SetMeta(key, value string) error {
	_, err := j.conn.Exec(
		"INSERT OR REPLACE INTO match_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (j *Journal) GetMeta(key string) (string, error) {
	var value string
	err := j.conn.Get(&value, "SELECT value FROM match_meta WHERE key = ?", key)
	return value, err
}

// RecentEvents returns the most recent N events, newest first.
func (j *Journal) RecentEvents(limit int) ([]engine.Event, error) {
	var events []engine.Event
	err := j.conn.Select(&events,
		"SELECT turn, round, kind, description FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return events, err
}

// EventsForTurn returns every event of one turn in recorded order.
func (j *Journal) EventsForTurn(turn int) ([]engine.Event, error) {
	var events []engine.Event
	err := j.conn.Select(&events,
		"SELECT turn, round, kind, description FROM events WHERE turn = ? ORDER BY id",
		turn,
	)
	return events, err
}

// EventCount returns the number of recorded events.
func (j *Journal) EventCount() (int, error) {
	var count int
	err := j.conn.Get(&count, "SELECT COUNT(*) FROM events")
	return count, err
}
