package db

// SchemaSQL is the complete schema for fresh onboard installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// it via GetSchemaSQL(): if repository code references a column that doesn't
// exist here, tests fail immediately with "no such column" instead of
// drifting silently.
//
// When adding columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Per-user per-task completion state. One row per (user, task) pair;
-- rows are created lazily the first time a user is observed and are
-- never deleted.
CREATE TABLE IF NOT EXISTS onboarding_progress (
	user_id    TEXT NOT NULL,
	task_id    TEXT NOT NULL,
	done       INTEGER NOT NULL DEFAULT 0,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (user_id, task_id)
);
`

// InitSchema creates the schema for fresh installs or runs pending
// migrations for existing databases. Safe to call repeatedly.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create the schema directly and mark all
		// migrations as applied so they never re-run
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, migration := range migrations {
			if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
