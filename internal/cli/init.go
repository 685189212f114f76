package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/config"
	"github.com/example/onboard/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the onboard database",
		Long: `Initialize the progress database with the required schema and write
.onboard/config.json to the current directory.

Examples:
  onboard init
  onboard init --db-path /data/onboarding.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.Config{DBPath: dbPath}
			if err := config.Save(".", cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("✓ Config written to .onboard/config.json")

			path, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing progress database at %s\n", path)

			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  onboard home <user-id>")
			fmt.Println("  onboard status <user-id>")

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db-path", "", "Database file path (default ~/.onboard/onboarding.db)")

	return cmd
}
