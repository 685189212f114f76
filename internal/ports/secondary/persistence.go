// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable indicates the backing store could not be reached.
// Callers treat it as fatal for the current request; no partial view is
// rendered.
var ErrStoreUnavailable = errors.New("progress store unavailable")

// ProgressRepository defines the secondary port for progress persistence.
// Implementations must be safe for concurrent use; EnsureRows and SetAll
// must be atomic at the row level.
type ProgressRepository interface {
	// EnsureRows inserts a (userID, taskID, done=false, now) row for every
	// task id that has no row yet. Existing rows are never overwritten.
	// Idempotent and safe to call concurrently for the same user.
	EnsureRows(ctx context.Context, userID string, taskIDs []string, now time.Time) error

	// CompletedIDs returns the set of task ids marked done for the user.
	CompletedIDs(ctx context.Context, userID string) (map[string]bool, error)

	// SetAll sets done = doneIDs[id] and updated_at = now for every task id
	// in taskIDs, overwriting prior values unconditionally. All rows are
	// written in one transaction: the write fully succeeds or the prior
	// state stands.
	SetAll(ctx context.Context, userID string, doneIDs map[string]bool, taskIDs []string, now time.Time) error

	// ListByUser returns every stored row for the user.
	ListByUser(ctx context.Context, userID string) ([]*ProgressRecord, error)
}

// ProgressRecord represents one (user, task) row as stored in persistence.
type ProgressRecord struct {
	UserID    string
	TaskID    string
	Done      bool
	UpdatedAt string // RFC 3339 UTC
}
