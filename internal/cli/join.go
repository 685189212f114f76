package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/wire"
)

// JoinCmd returns the join command
func JoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join [user-id]",
		Short: "Handle a user-joined event",
		Long: `Handle a "user joined" event: initialize the user's progress rows,
print the one-time greeting, and render the checklist.

Examples:
  onboard join U012ABCDEF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ProgressAdapter().Join(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to handle join: %w", err)
			}
			return nil
		},
	}
}
