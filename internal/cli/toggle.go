package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/wire"
)

// ToggleCmd returns the toggle command
func ToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [user-id] [group] [task-id...]",
		Short: "Apply one group's checkbox selection",
		Long: `Apply a group-toggle action: the task ids listed are the group's
currently checked options, exactly as the platform control reports them.
Tasks of the group not listed are marked incomplete; tasks outside the
group keep their state.

The group may be given by name (case-insensitive) or as the raw action id
(task_toggle_<group>).

Examples:
  onboard toggle U012ABCDEF Paperwork nda offer_letter
  onboard toggle U012ABCDEF task_toggle_culture coffee_chat_1
  onboard toggle U012ABCDEF Workflow`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := wire.ProgressAdapter().Toggle(ctx, args[0], args[1], args[2:]); err != nil {
				return fmt.Errorf("failed to apply toggle: %w", err)
			}
			return nil
		},
	}
}
