// Package eventlog persists track life-cycle transitions (created,
// confirmed, reaped) to SQLite for offline inspection. It is a harness
// concern, not a core capability — pkg/tracker and its dependencies
// never import this package or database/sql; the command layer wires
// the two together. Grounded on the teacher pack's own SQLite storage
// pattern (store.go + migrations.go), adapted from gesture records to
// track events.
package eventlog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed sink for track life-cycle events.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and runs
// migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	s := &Store{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run event log migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Transition is one of the three track life-cycle events this store
// records.
type Transition string

const (
	TransitionCreated   Transition = "created"
	TransitionConfirmed Transition = "confirmed"
	TransitionReaped    Transition = "reaped"
)

// Record inserts one life-cycle event for trackID.
func (s *Store) Record(trackID int, classID int, className string, transition Transition, at time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO track_events (track_id, class_id, class_name, transition, at) VALUES (?, ?, ?, ?, ?)`,
		trackID, classID, className, string(transition), at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s event for track %d: %w", transition, trackID, err)
	}
	return nil
}

// CountByTransition returns how many events of the given transition
// have been recorded, mainly useful for tests and debug summaries.
func (s *Store) CountByTransition(transition Transition) (int, error) {
	var n int
	row := s.db.QueryRow(`SELECT COUNT(*) FROM track_events WHERE transition = ?`, string(transition))
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s events: %w", transition, err)
	}
	return n, nil
}
