// Package history keeps a local record of renders done by the CLI, so
// past logs can be listed without a server round trip.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB is the SQLite-backed render history.
type DB struct {
	db *sql.DB
}

// Entry is one recorded render.
type Entry struct {
	ID         int64
	RenderedAt time.Time
	LogDate    string
	Exercises  int
	Sets       int
	Rendered   string
}

// Open opens (or creates) the history database at dir/history.db.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS renders (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		rendered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		log_date    TEXT NOT NULL,
		exercises   INTEGER NOT NULL,
		sets        INTEGER NOT NULL,
		rendered    TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating renders table: %w", err)
	}

	return &DB{db: db}, nil
}

// Record stores one render.
func (h *DB) Record(logDate string, exercises, sets int, rendered string) error {
	_, err := h.db.Exec(
		`INSERT INTO renders (log_date, exercises, sets, rendered) VALUES (?, ?, ?, ?)`,
		logDate, exercises, sets, rendered,
	)
	return err
}

// Recent returns the newest entries, most recent first.
func (h *DB) Recent(limit int) ([]Entry, error) {
	rows, err := h.db.Query(
		`SELECT id, rendered_at, log_date, exercises, sets, rendered
		 FROM renders ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RenderedAt, &e.LogDate, &e.Exercises, &e.Sets, &e.Rendered); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the history database.
func (h *DB) Close() error {
	return h.db.Close()
}
