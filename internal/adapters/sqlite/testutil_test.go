// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/onboard/internal/db"
)

// testNow is a fixed timestamp used across repository tests.
var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// countRows returns the number of progress rows stored for a user.
func countRows(t *testing.T, testDB *sql.DB, userID string) int {
	t.Helper()

	var count int
	err := testDB.QueryRow("SELECT COUNT(*) FROM onboarding_progress WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
