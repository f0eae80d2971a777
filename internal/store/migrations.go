package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Runs table - one row per completed aggregation run
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			files_analyzed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Run sources table - the input files that contributed to a run
		`CREATE TABLE IF NOT EXISTS run_sources (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			source TEXT NOT NULL
		)`,

		// Measurements table - per-sample segment distances; cm_distance is
		// NULL when the sample's scale was uncalibrated
		`CREATE TABLE IF NOT EXISTS measurements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			source TEXT NOT NULL,
			finger TEXT NOT NULL,
			from_joint INTEGER NOT NULL,
			to_joint INTEGER NOT NULL,
			pixel_distance REAL NOT NULL,
			cm_distance REAL
		)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
