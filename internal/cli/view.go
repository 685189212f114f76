package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/wire"
)

// ViewCmd returns the view command
func ViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [user-id]",
		Short: "Print the raw view document as JSON",
		Long: `Print the view document for a user exactly as it would be published
to the rendering sink.

Examples:
  onboard view U012ABCDEF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ProgressAdapter().View(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to print view: %w", err)
			}
			return nil
		},
	}
}
