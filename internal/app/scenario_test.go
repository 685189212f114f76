package app

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/example/onboard/internal/adapters/sqlite"
	"github.com/example/onboard/internal/catalog"
	"github.com/example/onboard/internal/core/view"
	"github.com/example/onboard/internal/db"
	"github.com/example/onboard/internal/ports/primary"
)

// Full cycle against the real SQLite repository: new user, toggles on both
// groups, then clearing one group again.
func TestProgressCycle_EndToEnd(t *testing.T) {
	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { testDB.Close() })

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	cat := catalog.Catalog{
		{ID: "t1", Label: "Task One", Group: "G1"},
		{ID: "t2", Label: "Task Two", Group: "G1"},
		{ID: "t3", Label: "Task Three", Group: "G2"},
	}

	repo := sqlite.NewProgressRepository(testDB)
	svc := NewProgressService(repo, cat, catalog.DefaultResources(), zap.NewNop())
	ctx := context.Background()

	progressLine := func(doc *view.Document) string {
		for _, b := range doc.Blocks {
			if b.Type == "section" && b.Text != nil && len(b.Text.Text) > 11 && b.Text.Text[:11] == "*Progress:*" {
				return b.Text.Text[12:]
			}
		}
		return ""
	}

	// Step 1: new user opens home
	resp, err := svc.HandleHomeOpened(ctx, "u1")
	if err != nil {
		t.Fatalf("HandleHomeOpened failed: %v", err)
	}
	if got := progressLine(resp.Document); got != "0/3 completed" {
		t.Errorf("step 1: expected '0/3 completed', got %q", got)
	}

	// Step 2: toggle G1 with {t1}
	resp, err = svc.HandleGroupToggle(ctx, primary.GroupToggleRequest{
		UserID:   "u1",
		Group:    "G1",
		Selected: []primary.SelectedOption{{Value: "t1"}},
	})
	if err != nil {
		t.Fatalf("toggle G1 failed: %v", err)
	}
	if got := progressLine(resp.Document); got != "1/3 completed" {
		t.Errorf("step 2: expected '1/3 completed', got %q", got)
	}

	// Step 3: toggle G2 with {t3}; t1 must survive
	resp, err = svc.HandleGroupToggle(ctx, primary.GroupToggleRequest{
		UserID:   "u1",
		Group:    "G2",
		Selected: []primary.SelectedOption{{Value: "t3"}},
	})
	if err != nil {
		t.Fatalf("toggle G2 failed: %v", err)
	}
	if got := progressLine(resp.Document); got != "2/3 completed" {
		t.Errorf("step 3: expected '2/3 completed', got %q", got)
	}

	done, err := repo.CompletedIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("CompletedIDs failed: %v", err)
	}
	if !done["t1"] || !done["t3"] || len(done) != 2 {
		t.Errorf("step 3: expected {t1 t3}, got %v", done)
	}

	// Step 4: toggle G1 with empty selection; only t3 remains
	resp, err = svc.HandleGroupToggle(ctx, primary.GroupToggleRequest{
		UserID: "u1",
		Group:  "G1",
	})
	if err != nil {
		t.Fatalf("toggle G1 empty failed: %v", err)
	}
	if got := progressLine(resp.Document); got != "1/3 completed" {
		t.Errorf("step 4: expected '1/3 completed', got %q", got)
	}

	done, err = repo.CompletedIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("CompletedIDs failed: %v", err)
	}
	if !done["t3"] || len(done) != 1 {
		t.Errorf("step 4: expected {t3}, got %v", done)
	}
}

// A toggle arriving for a user whose rows were never initialized must
// initialize them defensively before writing.
func TestProgressCycle_ToggleBeforeHome(t *testing.T) {
	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { testDB.Close() })

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	cat := catalog.Catalog{
		{ID: "t1", Label: "Task One", Group: "G1"},
		{ID: "t2", Label: "Task Two", Group: "G1"},
	}

	repo := sqlite.NewProgressRepository(testDB)
	svc := NewProgressService(repo, cat, catalog.DefaultResources(), zap.NewNop())
	ctx := context.Background()

	_, err = svc.HandleGroupToggle(ctx, primary.GroupToggleRequest{
		UserID:   "u2",
		Group:    "g1",
		Selected: []primary.SelectedOption{{Value: "t2"}},
	})
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	records, err := repo.ListByUser(ctx, "u2")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(records))
	}

	done, err := repo.CompletedIDs(ctx, "u2")
	if err != nil {
		t.Fatalf("CompletedIDs failed: %v", err)
	}
	if !done["t2"] || len(done) != 1 {
		t.Errorf("expected {t2}, got %v", done)
	}
}
