package eventlog

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := store.Record(1, 0, "person", TransitionCreated, now); err != nil {
		t.Fatalf("Record(created): %v", err)
	}
	if err := store.Record(1, 0, "person", TransitionConfirmed, now.Add(time.Second)); err != nil {
		t.Fatalf("Record(confirmed): %v", err)
	}
	if err := store.Record(1, 0, "person", TransitionReaped, now.Add(2*time.Second)); err != nil {
		t.Fatalf("Record(reaped): %v", err)
	}

	created, err := store.CountByTransition(TransitionCreated)
	if err != nil {
		t.Fatalf("CountByTransition(created): %v", err)
	}
	if created != 1 {
		t.Fatalf("created count = %d, want 1", created)
	}

	confirmed, err := store.CountByTransition(TransitionConfirmed)
	if err != nil {
		t.Fatalf("CountByTransition(confirmed): %v", err)
	}
	if confirmed != 1 {
		t.Fatalf("confirmed count = %d, want 1", confirmed)
	}
}

func TestOpenRunsMigrationsIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.Close()

	store2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer store2.Close()
}
