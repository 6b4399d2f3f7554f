package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/config"
	"github.com/example/caexinspect/internal/wire"
)

var inspectionCmd = &cobra.Command{
	Use:   "inspection",
	Short: "Manage workshop inspections",
	Long:  "Open, track, close, and delete CAEX workshop inspections",
}

// crewFromFlags resolves the inspector and supervisor names, falling back to
// the defaults stored in config.json.
func crewFromFlags(cmd *cobra.Command) (inspector, supervisor string) {
	inspector, _ = cmd.Flags().GetString("inspector")
	supervisor, _ = cmd.Flags().GetString("supervisor")
	if inspector != "" && supervisor != "" {
		return inspector, supervisor
	}

	dir, err := config.DefaultConfigDir()
	if err != nil {
		return inspector, supervisor
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return inspector, supervisor
	}
	if inspector == "" {
		inspector = cfg.DefaultInspector
	}
	if supervisor == "" {
		supervisor = cfg.DefaultSupervisor
	}
	return inspector, supervisor
}

var inspectionIntakeCmd = &cobra.Command{
	Use:   "intake [equipment-id]",
	Short: "Open an intake inspection for a unit entering the workshop",
	Long: `Open an intake (RECEPCION) inspection for a CAEX unit.

Inspector and supervisor default to the names stored with
'caexinspect config set'.

Examples:
  caexinspect inspection intake CAEX-301 --inspector "P. Rojas" --supervisor "M. Soto"
  caexinspect inspection intake CAEX-301`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inspector, supervisor := crewFromFlags(cmd)
		return wire.InspectionAdapter().OpenIntake(cmd.Context(), args[0], inspector, supervisor)
	},
}

var inspectionReleaseCmd = &cobra.Command{
	Use:   "release [intake-id]",
	Short: "Open a release inspection linked to a prior intake",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inspector, supervisor := crewFromFlags(cmd)
		return wire.InspectionAdapter().OpenRelease(cmd.Context(), args[0], inspector, supervisor)
	},
}

var inspectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inspections",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		kind, _ := cmd.Flags().GetString("kind")
		equipmentID, _ := cmd.Flags().GetString("equipment")
		model, _ := cmd.Flags().GetString("model")

		return wire.InspectionAdapter().List(cmd.Context(), status, kind, equipmentID, model)
	},
}

var inspectionShowCmd = &cobra.Command{
	Use:   "show [inspection-id]",
	Short: "Show inspection details and checklist progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.InspectionAdapter().Show(cmd.Context(), args[0])
	},
}

var inspectionCloseCmd = &cobra.Command{
	Use:   "close [inspection-id]",
	Short: "Close an inspection once every applicable question is answered",
	Long: `Close an inspection.

Closing requires every applicable checklist question to be answered and
every NO_CONFORME answer to carry its comments, remediation kind, and
ticket reference. If the checklist is incomplete the command reports the
pending questions and leaves the inspection open.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remarks, _ := cmd.Flags().GetString("remarks")
		return wire.InspectionAdapter().Close(cmd.Context(), args[0], remarks)
	},
}

var inspectionDeleteCmd = &cobra.Command{
	Use:   "delete [inspection-id]",
	Short: "Delete an inspection, its answers, and its photos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.InspectionAdapter().Delete(cmd.Context(), args[0])
	},
}

// InspectionCmd returns the inspection command
func InspectionCmd() *cobra.Command {
	inspectionIntakeCmd.Flags().StringP("inspector", "i", "", "Inspector name")
	inspectionIntakeCmd.Flags().StringP("supervisor", "s", "", "Supervisor name")
	inspectionReleaseCmd.Flags().StringP("inspector", "i", "", "Inspector name")
	inspectionReleaseCmd.Flags().StringP("supervisor", "s", "", "Supervisor name")
	inspectionListCmd.Flags().String("status", "", "Filter by status (ABIERTA, CERRADA)")
	inspectionListCmd.Flags().String("kind", "", "Filter by kind (RECEPCION, ENTREGA)")
	inspectionListCmd.Flags().String("equipment", "", "Filter by equipment ID")
	inspectionListCmd.Flags().String("model", "", "Filter by truck model")
	inspectionCloseCmd.Flags().StringP("remarks", "r", "", "Closing remarks")

	inspectionCmd.AddCommand(inspectionIntakeCmd)
	inspectionCmd.AddCommand(inspectionReleaseCmd)
	inspectionCmd.AddCommand(inspectionListCmd)
	inspectionCmd.AddCommand(inspectionShowCmd)
	inspectionCmd.AddCommand(inspectionCloseCmd)
	inspectionCmd.AddCommand(inspectionDeleteCmd)

	return inspectionCmd
}
