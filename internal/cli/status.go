package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/ports/primary"
	"github.com/example/caexinspect/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show fleet and open inspection overview",
		Long: `Display an overview of the workshop:
- Registered units per model
- Open inspections with their progress

This provides a focused view of "what is in the workshop right now?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			units, err := wire.EquipmentService().ListEquipment(ctx, primary.EquipmentFilters{})
			if err != nil {
				return fmt.Errorf("failed to list equipment: %w", err)
			}

			byModel := map[string]int{}
			for _, u := range units {
				byModel[u.Model]++
			}

			fmt.Println("CAEX Inspection Status")
			fmt.Println()
			fmt.Printf("Fleet: %d units", len(units))
			if len(units) > 0 {
				fmt.Printf(" (797F: %d, 798AC: %d)", byModel["797F"], byModel["798AC"])
			}
			fmt.Println()
			fmt.Println()

			open, err := wire.InspectionService().ListInspections(ctx, primary.InspectionFilters{Status: "ABIERTA"})
			if err != nil {
				return fmt.Errorf("failed to list inspections: %w", err)
			}

			if len(open) == 0 {
				fmt.Println("No open inspections")
				return nil
			}

			fmt.Printf("Open inspections: %d\n", len(open))
			for _, insp := range open {
				progress, err := wire.InspectionService().GetProgress(ctx, insp.ID)
				if err != nil {
					return fmt.Errorf("failed to get progress for %s: %w", insp.ID, err)
				}

				marker := ""
				if progress.Answered == progress.Applicable {
					marker = color.New(color.FgHiGreen).Sprint(" [ready to close]")
				} else if progress.FailCount > 0 {
					marker = color.New(color.FgRed).Sprintf(" [%d findings]", progress.FailCount)
				}

				fmt.Printf("  %s %s CAEX %d - %d/%d answered%s\n",
					insp.ID, insp.Kind, insp.EquipmentNumber,
					progress.Answered, progress.Applicable, marker)
			}

			return nil
		},
	}
}
