// Package app implements the application services behind the primary ports.
// Services orchestrate repositories and the pure core packages; they hold no
// state beyond their injected dependencies.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/onboard/internal/catalog"
	"github.com/example/onboard/internal/core/progress"
	"github.com/example/onboard/internal/core/view"
	"github.com/example/onboard/internal/ports/primary"
	"github.com/example/onboard/internal/ports/secondary"
)

// Greeting is sent once when a user joins; delivery is owned by the adapter.
const Greeting = "Welcome to the team. Open the app's *Home* tab to see your onboarding checklist. If you have questions, reply here."

// ProgressServiceImpl implements the ProgressService interface.
type ProgressServiceImpl struct {
	repo      secondary.ProgressRepository
	catalog   catalog.Catalog
	resources catalog.Resources
	logger    *zap.Logger
	now       func() time.Time
}

// NewProgressService creates a new ProgressService with injected dependencies.
func NewProgressService(
	repo secondary.ProgressRepository,
	cat catalog.Catalog,
	res catalog.Resources,
	logger *zap.Logger,
) *ProgressServiceImpl {
	return &ProgressServiceImpl{
		repo:      repo,
		catalog:   cat,
		resources: res,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleHomeOpened initializes the user's rows and renders the checklist.
func (s *ProgressServiceImpl) HandleHomeOpened(ctx context.Context, userID string) (*primary.RenderResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	if err := s.repo.EnsureRows(ctx, userID, s.catalog.TaskIDs(), s.now()); err != nil {
		return nil, fmt.Errorf("failed to initialize progress rows: %w", err)
	}

	return s.render(ctx, userID)
}

// HandleUserJoined initializes the user's rows and returns the greeting
// alongside the rendered checklist.
func (s *ProgressServiceImpl) HandleUserJoined(ctx context.Context, userID string) (*primary.JoinResponse, error) {
	resp, err := s.HandleHomeOpened(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user joined", zap.String("user_id", userID))

	return &primary.JoinResponse{
		RenderResponse: *resp,
		Greeting:       Greeting,
	}, nil
}

// HandleGroupToggle merges one group's reported selection into the user's
// completed set. The control reports only its own group's state, so the new
// set is current-minus-group plus the in-group selection; writing the raw
// selection would wipe every other group.
func (s *ProgressServiceImpl) HandleGroupToggle(ctx context.Context, req primary.GroupToggleRequest) (*primary.RenderResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if req.Group == "" {
		return nil, fmt.Errorf("group is required")
	}

	group, ok := s.catalog.FindGroup(req.Group)
	if !ok {
		// Unknown group: no-op merge, but still re-render the current view
		s.logger.Warn("toggle for unknown group",
			zap.String("user_id", req.UserID),
			zap.String("group", req.Group))
		return s.render(ctx, req.UserID)
	}

	current, err := s.repo.CompletedIDs(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read current progress: %w", err)
	}

	selected := make([]string, 0, len(req.Selected))
	for _, opt := range req.Selected {
		selected = append(selected, opt.Value)
	}

	newDone := progress.Merge(progress.MergeContext{
		Current:  current,
		GroupIDs: s.catalog.GroupTaskIDs(group),
		Selected: selected,
	})

	now := s.now()
	// Defensive: the user's rows may never have been initialized
	if err := s.repo.EnsureRows(ctx, req.UserID, s.catalog.TaskIDs(), now); err != nil {
		return nil, fmt.Errorf("failed to initialize progress rows: %w", err)
	}
	if err := s.repo.SetAll(ctx, req.UserID, newDone, s.catalog.TaskIDs(), now); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	s.logger.Info("group toggled",
		zap.String("user_id", req.UserID),
		zap.String("group", group),
		zap.Int("selected", len(selected)),
		zap.Int("completed", len(newDone)))

	return s.render(ctx, req.UserID)
}

// HandleRefresh re-renders the checklist via the same path as home-opened.
func (s *ProgressServiceImpl) HandleRefresh(ctx context.Context, userID string) (*primary.RenderResponse, error) {
	return s.HandleHomeOpened(ctx, userID)
}

// GetStatus returns per-task completion rows in catalog order.
func (s *ProgressServiceImpl) GetStatus(ctx context.Context, userID string) (*primary.Status, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	if err := s.repo.EnsureRows(ctx, userID, s.catalog.TaskIDs(), s.now()); err != nil {
		return nil, fmt.Errorf("failed to initialize progress rows: %w", err)
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress rows: %w", err)
	}

	byTask := make(map[string]*secondary.ProgressRecord, len(records))
	for _, rec := range records {
		byTask[rec.TaskID] = rec
	}

	status := &primary.Status{
		UserID: userID,
		Total:  s.catalog.Size(),
	}
	for _, t := range s.catalog {
		ts := primary.TaskStatus{
			ID:    t.ID,
			Label: t.Label,
			Group: t.Group,
		}
		if rec, ok := byTask[t.ID]; ok {
			ts.Done = rec.Done
			ts.UpdatedAt = rec.UpdatedAt
		}
		if ts.Done {
			status.Completed++
		}
		status.Tasks = append(status.Tasks, ts)
	}

	return status, nil
}

// render reads the completed set and builds the view document. The completed
// set is recomputed on every call, never cached across requests.
func (s *ProgressServiceImpl) render(ctx context.Context, userID string) (*primary.RenderResponse, error) {
	completed, err := s.repo.CompletedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read completed ids: %w", err)
	}

	doc := view.Build(s.catalog, s.resources, completed)

	count := 0
	for _, t := range s.catalog {
		if completed[t.ID] {
			count++
		}
	}

	return &primary.RenderResponse{
		UserID:    userID,
		Document:  doc,
		Completed: count,
		Total:     s.catalog.Size(),
	}, nil
}

// Ensure ProgressServiceImpl implements the interface
var _ primary.ProgressService = (*ProgressServiceImpl)(nil)
