// Package trend persists point-in-time snapshots of windowed activity
// aggregates in SQLite, so stats can be compared across runs without
// rescanning the activity log.
package trend

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB stores windowed activity snapshots and their metrics.
type DB struct {
	conn *sql.DB
}

// Open opens or creates the snapshot database at dbPath, creating the parent
// directory if needed. WAL mode keeps trend reads cheap while a snapshot
// insert from a concurrent invocation is in flight.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	return open(dbPath, "PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON")
}

// OpenInMemory opens a throwaway in-memory snapshot database, useful for
// testing. No WAL: there is no file to journal.
func OpenInMemory() (*DB, error) {
	return open(":memory:", "PRAGMA foreign_keys=ON")
}

func open(dsn string, pragmas ...string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	db := &DB{conn: conn}
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
