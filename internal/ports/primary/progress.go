// Package primary defines the primary ports (driving adapters) for the
// application. The event adapter (platform transport, CLI) invokes the
// application through these interfaces.
package primary

import (
	"context"

	"github.com/example/onboard/internal/core/view"
)

// ProgressService defines the primary port for checklist progress operations.
// Every render path returns the full document; the adapter publishes it
// wholesale for the user's surface.
type ProgressService interface {
	// HandleHomeOpened initializes the user's rows and renders the checklist.
	HandleHomeOpened(ctx context.Context, userID string) (*RenderResponse, error)

	// HandleUserJoined initializes the user's rows, renders the checklist,
	// and returns the one-time greeting for the adapter to deliver.
	HandleUserJoined(ctx context.Context, userID string) (*JoinResponse, error)

	// HandleGroupToggle merges one group's reported selection into the
	// user's completed set and renders the updated checklist.
	HandleGroupToggle(ctx context.Context, req GroupToggleRequest) (*RenderResponse, error)

	// HandleRefresh re-renders the checklist (same path as home-opened).
	HandleRefresh(ctx context.Context, userID string) (*RenderResponse, error)

	// GetStatus returns per-task completion rows for a user.
	GetStatus(ctx context.Context, userID string) (*Status, error)
}

// SelectedOption is one checked option as reported by the platform control.
type SelectedOption struct {
	Label string
	Value string // task id
}

// GroupToggleRequest carries one group's toggle interaction. Group is the
// group name resolved once at the boundary; business logic never re-parses
// action-id strings.
type GroupToggleRequest struct {
	UserID   string
	Group    string
	Selected []SelectedOption
}

// RenderResponse is the outcome of a render path.
type RenderResponse struct {
	UserID    string
	Document  *view.Document
	Completed int
	Total     int
}

// JoinResponse extends RenderResponse with the greeting whose delivery is
// owned by the adapter.
type JoinResponse struct {
	RenderResponse
	Greeting string
}

// Status holds per-task completion rows for one user.
type Status struct {
	UserID    string
	Completed int
	Total     int
	Tasks     []TaskStatus
}

// TaskStatus is one catalog task with the user's stored state.
type TaskStatus struct {
	ID        string
	Label     string
	Group     string
	Done      bool
	UpdatedAt string
}
