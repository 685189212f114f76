package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [user-id]",
		Short: "Show per-task completion state for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ProgressAdapter().Status(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to show status: %w", err)
			}
			return nil
		},
	}
}
