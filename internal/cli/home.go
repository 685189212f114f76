package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/wire"
)

// HomeCmd returns the home command
func HomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home [user-id]",
		Short: "Handle a home-opened event for a user",
		Long: `Handle a "user opened their home surface" event: initialize the
user's progress rows if needed and render the checklist.

Examples:
  onboard home U012ABCDEF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ProgressAdapter().Home(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to render checklist: %w", err)
			}
			return nil
		},
	}
}
