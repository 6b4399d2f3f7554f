package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the inspection database",
		Long:  `Initialize the database at ~/.caexinspect/caexinspect.db with the schema and checklist catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			if err := db.SeedCatalog(); err != nil {
				return fmt.Errorf("failed to seed checklist catalog: %w", err)
			}
			fmt.Println("✓ Checklist catalog seeded")

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  caexinspect caex register 301 --model 797F")
			fmt.Println("  caexinspect inspection intake CAEX-301")

			return nil
		},
	}
}
