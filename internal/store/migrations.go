package store

import "database/sql"

// migrate runs all database migrations.
func migrate(db *sql.DB) error {
	migrations := []string{
		// Raw sample payloads cached per fetch key
		`CREATE TABLE IF NOT EXISTS sample_cache (
			metric TEXT NOT NULL,
			period TEXT NOT NULL,
			payload TEXT NOT NULL,
			fetched_at TEXT NOT NULL,
			PRIMARY KEY (metric, period)
		)`,

		// Key-value state (last sync time, schema hints)
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Assessment history snapshots
		`CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			generated_at TEXT NOT NULL,
			status TEXT NOT NULL,
			overall_score REAL,
			category TEXT NOT NULL,
			domain_scores TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_assessments_generated_at ON assessments(generated_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
