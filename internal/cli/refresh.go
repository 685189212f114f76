package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/wire"
)

// RefreshCmd returns the refresh command
func RefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [user-id]",
		Short: "Re-render a user's checklist",
		Long: `Re-render the checklist for a user, using the same path as the
home-opened event. Mirrors the platform's manual refresh command.

Examples:
  onboard refresh U012ABCDEF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ProgressAdapter().Refresh(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to refresh checklist: %w", err)
			}
			return nil
		},
	}
}
