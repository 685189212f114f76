// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/onboard/internal/ports/secondary"
)

// ProgressRepository implements secondary.ProgressRepository with SQLite.
type ProgressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new SQLite progress repository.
func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// unavailable wraps a driver error so callers can match ErrStoreUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, secondary.ErrStoreUnavailable, err)
}

// EnsureRows inserts a row per task id if absent. INSERT OR IGNORE is atomic
// per row against the (user_id, task_id) primary key, so concurrent calls
// for the same user cannot duplicate or overwrite rows.
func (r *ProgressRepository) EnsureRows(ctx context.Context, userID string, taskIDs []string, now time.Time) error {
	stamp := now.UTC().Format(time.RFC3339)
	for _, taskID := range taskIDs {
		_, err := r.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO onboarding_progress (user_id, task_id, done, updated_at) VALUES (?, ?, 0, ?)",
			userID, taskID, stamp,
		)
		if err != nil {
			return unavailable("failed to ensure progress row", err)
		}
	}

	return nil
}

// CompletedIDs returns all task ids with done = 1 for the user.
func (r *ProgressRepository) CompletedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT task_id FROM onboarding_progress WHERE user_id = ? AND done = 1",
		userID,
	)
	if err != nil {
		return nil, unavailable("failed to read completed ids", err)
	}
	defer rows.Close()

	done := make(map[string]bool)
	for rows.Next() {
		var taskID string
		if err := rows.Scan(&taskID); err != nil {
			return nil, unavailable("failed to scan completed id", err)
		}
		done[taskID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("failed to read completed ids", err)
	}

	return done, nil
}

// SetAll replaces done state for every task id in one transaction.
func (r *ProgressRepository) SetAll(ctx context.Context, userID string, doneIDs map[string]bool, taskIDs []string, now time.Time) error {
	stamp := now.UTC().Format(time.RFC3339)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("failed to begin progress update", err)
	}

	for _, taskID := range taskIDs {
		done := 0
		if doneIDs[taskID] {
			done = 1
		}
		_, err := tx.ExecContext(ctx,
			"UPDATE onboarding_progress SET done = ?, updated_at = ? WHERE user_id = ? AND task_id = ?",
			done, stamp, userID, taskID,
		)
		if err != nil {
			tx.Rollback()
			return unavailable("failed to update progress row", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("failed to commit progress update", err)
	}

	return nil
}

// ListByUser retrieves every stored row for the user.
func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]*secondary.ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id, task_id, done, updated_at FROM onboarding_progress WHERE user_id = ? ORDER BY task_id ASC",
		userID,
	)
	if err != nil {
		return nil, unavailable("failed to list progress rows", err)
	}
	defer rows.Close()

	var records []*secondary.ProgressRecord
	for rows.Next() {
		record := &secondary.ProgressRecord{}
		var done int
		if err := rows.Scan(&record.UserID, &record.TaskID, &done, &record.UpdatedAt); err != nil {
			return nil, unavailable("failed to scan progress row", err)
		}
		record.Done = done == 1
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("failed to list progress rows", err)
	}

	return records, nil
}

// Ensure ProgressRepository implements the interface
var _ secondary.ProgressRepository = (*ProgressRepository)(nil)
