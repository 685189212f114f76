package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/onboard/internal/catalog"
	"github.com/example/onboard/internal/db"
	"github.com/example/onboard/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the onboard environment",
		Long: `Health check for onboard.

Validates:
- Database path and parent directory writability
- Database connection and schema
- Catalog integrity (unique ids, non-empty groups)

Examples:
  onboard doctor          # Run full health check
  onboard doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDatabaseDir(),
				checkDatabase(),
				checkCatalog(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
				}
			}

			if !quiet {
				fmt.Printf("%s\n\n", version.String())
				for _, r := range results {
					icon := r.Status
					switch r.Status {
					case "✓":
						icon = color.New(color.FgGreen).Sprint("✓")
					case "⚠":
						icon = color.New(color.FgYellow).Sprint("⚠")
					case "✗":
						icon = color.New(color.FgRed).Sprint("✗")
					}
					fmt.Printf("%s %s\n", icon, r.Name)
					if r.Details != "" && r.Status != "✓" {
						fmt.Printf("    %s\n", r.Details)
					}
				}
				fmt.Println()
			}

			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Exit code only, no output")

	return cmd
}

// checkDatabaseDir verifies the database parent directory is writable.
func checkDatabaseDir() CheckResult {
	path, err := db.GetDBPath()
	if err != nil {
		return CheckResult{Name: "Database path", Status: "✗", Details: err.Error()}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CheckResult{Name: "Database path", Status: "✗", Details: fmt.Sprintf("cannot create %s: %v", dir, err)}
	}

	probe, err := os.CreateTemp(dir, ".onboard-doctor-*")
	if err != nil {
		return CheckResult{Name: "Database path", Status: "✗", Details: fmt.Sprintf("%s not writable: %v", dir, err)}
	}
	probe.Close()
	os.Remove(probe.Name())

	return CheckResult{Name: fmt.Sprintf("Database path (%s)", path), Status: "✓"}
}

// checkDatabase opens the database and verifies the progress table exists.
func checkDatabase() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database connection", Status: "✗", Details: err.Error()}
	}

	var count int
	err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='onboarding_progress'").Scan(&count)
	if err != nil {
		return CheckResult{Name: "Database connection", Status: "✗", Details: err.Error()}
	}
	if count == 0 {
		return CheckResult{Name: "Database schema", Status: "✗", Details: "onboarding_progress table missing"}
	}

	return CheckResult{Name: "Database schema", Status: "✓"}
}

// checkCatalog validates catalog invariants.
func checkCatalog() CheckResult {
	c := catalog.Default()
	if c.Size() == 0 {
		return CheckResult{Name: "Catalog", Status: "⚠", Details: "catalog is empty"}
	}

	seen := make(map[string]bool)
	for _, t := range c {
		if seen[t.ID] {
			return CheckResult{Name: "Catalog", Status: "✗", Details: fmt.Sprintf("duplicate task id %q", t.ID)}
		}
		seen[t.ID] = true
		if t.Group == "" {
			return CheckResult{Name: "Catalog", Status: "✗", Details: fmt.Sprintf("task %q has no group", t.ID)}
		}
	}

	return CheckResult{Name: fmt.Sprintf("Catalog (%d tasks, %d groups)", c.Size(), len(c.GroupNames())), Status: "✓"}
}
