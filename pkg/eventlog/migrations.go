package eventlog

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS track_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			track_id INTEGER NOT NULL,
			class_id INTEGER NOT NULL,
			class_name TEXT NOT NULL,
			transition TEXT NOT NULL CHECK(transition IN ('created', 'confirmed', 'reaped')),
			at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_track_events_track_id ON track_events(track_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
