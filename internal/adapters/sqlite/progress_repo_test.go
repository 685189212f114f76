package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/onboard/internal/adapters/sqlite"
	"github.com/example/onboard/internal/ports/secondary"
)

var testTaskIDs = []string{"t1", "t2", "t3"}

func TestProgressRepository_EnsureRows(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	err := repo.EnsureRows(ctx, "U001", testTaskIDs, testNow)
	if err != nil {
		t.Fatalf("EnsureRows failed: %v", err)
	}

	if got := countRows(t, testDB, "U001"); got != 3 {
		t.Errorf("expected 3 rows, got %d", got)
	}

	records, err := repo.ListByUser(ctx, "U001")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	for _, rec := range records {
		if rec.Done {
			t.Errorf("expected task %s to start incomplete", rec.TaskID)
		}
		if rec.UpdatedAt != testNow.Format(time.RFC3339) {
			t.Errorf("expected updated_at %s, got %s", testNow.Format(time.RFC3339), rec.UpdatedAt)
		}
	}
}

func TestProgressRepository_EnsureRows_Idempotent(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.EnsureRows(ctx, "U001", testTaskIDs, testNow); err != nil {
			t.Fatalf("EnsureRows call %d failed: %v", i+1, err)
		}
	}

	if got := countRows(t, testDB, "U001"); got != 3 {
		t.Errorf("expected 3 rows after repeated calls, got %d", got)
	}
}

func TestProgressRepository_EnsureRows_NeverResetsDone(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	if err := repo.EnsureRows(ctx, "U001", testTaskIDs, testNow); err != nil {
		t.Fatalf("EnsureRows failed: %v", err)
	}
	err := repo.SetAll(ctx, "U001", map[string]bool{"t2": true}, testTaskIDs, testNow)
	if err != nil {
		t.Fatalf("SetAll failed: %v", err)
	}

	later := testNow.Add(time.Hour)
	if err := repo.EnsureRows(ctx, "U001", testTaskIDs, later); err != nil {
		t.Fatalf("EnsureRows failed: %v", err)
	}

	done, err := repo.CompletedIDs(ctx, "U001")
	if err != nil {
		t.Fatalf("CompletedIDs failed: %v", err)
	}
	if !done["t2"] {
		t.Error("EnsureRows reset a completed task back to incomplete")
	}

	// The existing row's timestamp must also be untouched
	records, err := repo.ListByUser(ctx, "U001")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	for _, rec := range records {
		if rec.TaskID == "t2" && rec.UpdatedAt != testNow.UTC().Format(time.RFC3339) {
			t.Errorf("expected t2 timestamp untouched, got %s", rec.UpdatedAt)
		}
	}
}

func TestProgressRepository_EnsureRows_SeparateUsers(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	if err := repo.EnsureRows(ctx, "U001", testTaskIDs, testNow); err != nil {
		t.Fatalf("EnsureRows failed: %v", err)
	}
	if err := repo.EnsureRows(ctx, "U002", testTaskIDs, testNow); err != nil {
		t.Fatalf("EnsureRows failed: %v", err)
	}

	if got := countRows(t, testDB, "U001"); got != 3 {
		t.Errorf("expected 3 rows for U001, got %d", got)
	}
	if got := countRows(t, testDB, "U002"); got != 3 {
		t.Errorf("expected 3 rows for U002, got %d", got)
	}
}

func TestProgressRepository_CompletedIDs_Empty(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	if err := repo.EnsureRows(ctx, "U001", testTaskIDs, testNow); err != nil {
		t.Fatalf("EnsureRows failed: %v", err)
	}

	done, err := repo.CompletedIDs(ctx, "U001")
	if err != nil {
		t.Fatalf("CompletedIDs failed: %v", err)
	}
	if len(done) != 0 {
		t.Errorf("expected empty completed set, got %v", done)
	}
}

func TestProgressRepository_SetAll_FullReplace(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	if err := repo.EnsureRows(ctx, "U001", testTaskIDs, testNow); err != nil {
		t.Fatalf("EnsureRows failed: %v", err)
	}

	err := repo.SetAll(ctx, "U001", map[string]bool{"t1": true, "t3": true}, testTaskIDs, testNow)
	if err != nil {
		t.Fatalf("SetAll failed: %v", err)
	}

	done, err := repo.CompletedIDs(ctx, "U001")
	if err != nil {
		t.Fatalf("CompletedIDs failed: %v", err)
	}
	if !done["t1"] || !done["t3"] || done["t2"] {
		t.Errorf("expected {t1 t3}, got %v", done)
	}

	// Second replace overwrites unconditionally
	later := testNow.Add(time.Minute)
	if err := repo.SetAll(ctx, "U001", map[string]bool{"t2": true}, testTaskIDs, later); err != nil {
		t.Fatalf("SetAll failed: %v", err)
	}

	done, err = repo.CompletedIDs(ctx, "U001")
	if err != nil {
		t.Fatalf("CompletedIDs failed: %v", err)
	}
	if len(done) != 1 || !done["t2"] {
		t.Errorf("expected {t2}, got %v", done)
	}

	records, err := repo.ListByUser(ctx, "U001")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	for _, rec := range records {
		if rec.UpdatedAt != later.UTC().Format(time.RFC3339) {
			t.Errorf("task %s: expected updated_at %s, got %s", rec.TaskID, later.UTC().Format(time.RFC3339), rec.UpdatedAt)
		}
	}
}

func TestProgressRepository_Totality(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	if err := repo.EnsureRows(ctx, "U001", testTaskIDs, testNow); err != nil {
		t.Fatalf("EnsureRows failed: %v", err)
	}
	if err := repo.SetAll(ctx, "U001", map[string]bool{"t1": true}, testTaskIDs, testNow); err != nil {
		t.Fatalf("SetAll failed: %v", err)
	}

	records, err := repo.ListByUser(ctx, "U001")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}

	// Exactly one record per catalog task: no missing, no duplicates
	seen := make(map[string]int)
	for _, rec := range records {
		seen[rec.TaskID]++
	}
	for _, id := range testTaskIDs {
		if seen[id] != 1 {
			t.Errorf("expected exactly 1 record for %s, got %d", id, seen[id])
		}
	}
	if len(records) != len(testTaskIDs) {
		t.Errorf("expected %d records, got %d", len(testTaskIDs), len(records))
	}
}

func TestProgressRepository_CompletedIDs_StoreUnavailable(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	testDB.Close()

	_, err := repo.CompletedIDs(ctx, "U001")
	if err == nil {
		t.Fatal("expected error from closed store")
	}
	if !errors.Is(err, secondary.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestProgressRepository_ListByUser_UnknownUser(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewProgressRepository(testDB)
	ctx := context.Background()

	records, err := repo.ListByUser(ctx, "U404")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
