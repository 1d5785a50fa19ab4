// Package storage persists the tracker's collections as versioned key-value
// blobs in a single local SQLite file. Each logical store (workouts, goals,
// settings) is one row; a blob that is missing or unreadable is replaced by
// built-in sample data by the caller, never treated as fatal.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNoBlob is returned when no blob exists under the requested name.
var ErrNoBlob = errors.New("no blob stored")

// Blob names for the tracker's logical stores.
const (
	BlobWorkouts = "workouts"
	BlobGoals    = "goals"
	BlobSettings = "settings"
)

// DB is the local blob store backing all persistence.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite blob store at dir/fittrack.db.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "fittrack.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening blob store: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		name       TEXT PRIMARY KEY,
		version    INTEGER NOT NULL,
		data       BLOB NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating blobs table: %w", err)
	}

	return &DB{db: db}, nil
}

// SaveBlob stores data under name, replacing any previous version.
func (d *DB) SaveBlob(name string, version int, data []byte) error {
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO blobs (name, version, data) VALUES (?, ?, ?)`,
		name, version, data,
	)
	if err != nil {
		return fmt.Errorf("saving blob %s: %w", name, err)
	}
	return nil
}

// LoadBlob returns the stored schema version and payload for name, or
// ErrNoBlob.
func (d *DB) LoadBlob(name string) (int, []byte, error) {
	var version int
	var data []byte
	err := d.db.QueryRow(
		`SELECT version, data FROM blobs WHERE name = ?`, name,
	).Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil, ErrNoBlob
	}
	if err != nil {
		return 0, nil, fmt.Errorf("loading blob %s: %w", name, err)
	}
	return version, data, nil
}

// Close closes the blob store.
func (d *DB) Close() error {
	return d.db.Close()
}
