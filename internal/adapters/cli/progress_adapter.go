// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing and output
// formatting, but delegate business logic to services.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/onboard/internal/core/view"
	"github.com/example/onboard/internal/ports/primary"
)

// ProgressAdapter is a thin adapter that translates CLI operations to
// ProgressService calls and renders the resulting view document to a
// terminal sink. It depends only on the ProgressService interface.
type ProgressAdapter struct {
	service primary.ProgressService
	out     io.Writer
}

// NewProgressAdapter creates a new ProgressAdapter with the given service.
func NewProgressAdapter(service primary.ProgressService, out io.Writer) *ProgressAdapter {
	return &ProgressAdapter{
		service: service,
		out:     out,
	}
}

// Home handles a home-opened event and renders the checklist.
func (a *ProgressAdapter) Home(ctx context.Context, userID string) error {
	resp, err := a.service.HandleHomeOpened(ctx, userID)
	if err != nil {
		return err
	}

	a.writeDocument(resp.Document)
	return nil
}

// Join handles a user-joined event: prints the greeting, then the checklist.
func (a *ProgressAdapter) Join(ctx context.Context, userID string) error {
	resp, err := a.service.HandleUserJoined(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\n\n", resp.Greeting)
	a.writeDocument(resp.Document)
	return nil
}

// Toggle applies one group's selection and renders the updated checklist.
// The group argument may be a plain group name or a raw toggle action id;
// action ids are resolved here, at the boundary.
func (a *ProgressAdapter) Toggle(ctx context.Context, userID, group string, selected []string) error {
	if key, ok := view.ParseToggleActionID(group); ok {
		group = key
	}

	opts := make([]primary.SelectedOption, 0, len(selected))
	for _, id := range selected {
		opts = append(opts, primary.SelectedOption{Value: id})
	}

	resp, err := a.service.HandleGroupToggle(ctx, primary.GroupToggleRequest{
		UserID:   userID,
		Group:    group,
		Selected: opts,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Saved progress for %s: %d/%d completed\n\n", userID, resp.Completed, resp.Total)
	a.writeDocument(resp.Document)
	return nil
}

// Refresh re-renders the checklist.
func (a *ProgressAdapter) Refresh(ctx context.Context, userID string) error {
	resp, err := a.service.HandleRefresh(ctx, userID)
	if err != nil {
		return err
	}

	a.writeDocument(resp.Document)
	return nil
}

// Status prints one line per catalog task with the stored state.
func (a *ProgressAdapter) Status(ctx context.Context, userID string) error {
	status, err := a.service.GetStatus(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	fmt.Fprintf(a.out, "\nUser: %s (%d/%d completed)\n\n", status.UserID, status.Completed, status.Total)

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tGROUP\tUPDATED")
	for _, t := range status.Tasks {
		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, t.ID, t.Group, t.UpdatedAt)
	}
	w.Flush()
	fmt.Fprintln(a.out)

	return nil
}

// View prints the raw view document as JSON - the exact payload the
// rendering sink receives.
func (a *ProgressAdapter) View(ctx context.Context, userID string) error {
	resp, err := a.service.HandleRefresh(ctx, userID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(resp.Document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal view document: %w", err)
	}

	fmt.Fprintf(a.out, "%s\n", data)
	return nil
}

// writeDocument renders a view document as terminal text.
func (a *ProgressAdapter) writeDocument(doc *view.Document) {
	for _, block := range doc.Blocks {
		switch block.Type {
		case "header":
			fmt.Fprintf(a.out, "=== %s ===\n", block.Text.Text)
		case "section":
			fmt.Fprintf(a.out, "%s\n", block.Text.Text)
		case "actions":
			for _, el := range block.Elements {
				checked := make(map[string]bool, len(el.InitialOptions))
				for _, opt := range el.InitialOptions {
					checked[opt.Value] = true
				}
				for _, opt := range el.Options {
					mark := "[ ]"
					if checked[opt.Value] {
						mark = "[x]"
					}
					fmt.Fprintf(a.out, "  %s %s\n", mark, opt.Text.Text)
				}
			}
		case "context":
			for _, el := range block.Elements {
				fmt.Fprintf(a.out, "%s\n", el.Text)
			}
		}
	}
}
