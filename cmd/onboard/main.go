package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/cli"
	"github.com/example/onboard/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "onboard",
		Short:   "onboard - onboarding checklist progress tracker",
		Version: version.String(),
		Long: `onboard tracks per-user completion state for the fixed onboarding
checklist and renders it as the interactive home-surface document.
Commands mirror the platform events the service handles.`,
	}

	// Event commands (the adapter boundary)
	rootCmd.AddCommand(cli.HomeCmd())
	rootCmd.AddCommand(cli.JoinCmd())
	rootCmd.AddCommand(cli.ToggleCmd())
	rootCmd.AddCommand(cli.RefreshCmd())

	// Inspection commands
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ViewCmd())

	// Setup commands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
