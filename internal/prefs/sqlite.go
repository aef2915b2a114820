// Package prefs persists the user's selected location across restarts in a
// small SQLite key-value table.
package prefs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/amidi-app/meteodial/internal/weather"
)

const selectedLocationKey = "selectedLocation"

// Store is a SQLite-backed preference store. Safe for concurrent use via
// database/sql's connection pooling.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the preference database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create prefs table: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveSelected stores loc as the selected location, replacing any previous
// choice. The location round-trips through its JSON shape.
func (s *Store) SaveSelected(loc weather.Location) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("encode location: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		selectedLocationKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("save selected location: %w", err)
	}
	return nil
}

// LoadSelected returns the persisted selection, or ok=false when the user
// has not picked a location yet.
func (s *Store) LoadSelected() (weather.Location, bool, error) {
	var data string
	err := s.db.QueryRow(
		`SELECT value FROM prefs WHERE key = ?`, selectedLocationKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return weather.Location{}, false, nil
	}
	if err != nil {
		return weather.Location{}, false, fmt.Errorf("load selected location: %w", err)
	}

	var loc weather.Location
	if err := json.Unmarshal([]byte(data), &loc); err != nil {
		return weather.Location{}, false, fmt.Errorf("decode selected location: %w", err)
	}
	return loc, true, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
