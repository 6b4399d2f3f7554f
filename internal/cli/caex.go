// Package cli defines the cobra command tree. Commands parse flags and
// delegate to the CLI adapters from the wire package.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/wire"
)

var caexCmd = &cobra.Command{
	Use:   "caex",
	Short: "Manage the CAEX fleet",
	Long:  "Register, list, and manage CAEX haul trucks in the fleet registry",
}

var caexRegisterCmd = &cobra.Command{
	Use:   "register [fleet-number]",
	Short: "Register a new CAEX unit",
	Long: `Register a new CAEX haul truck by fleet number.

The model determines which checklist questions apply:
  797F  - fleet numbers 301-339, 365, 366
  798AC - fleet numbers 340-352

Examples:
  caexinspect caex register 301 --model 797F
  caexinspect caex register 340 --model 798AC`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("fleet number must be numeric: %q", args[0])
		}
		model, _ := cmd.Flags().GetString("model")

		return wire.EquipmentAdapter().Register(cmd.Context(), number, model)
	},
}

var caexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered units",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _ := cmd.Flags().GetString("model")
		return wire.EquipmentAdapter().List(cmd.Context(), model)
	},
}

var caexShowCmd = &cobra.Command{
	Use:   "show [equipment-id|fleet-number]",
	Short: "Show unit details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Accept a bare fleet number as well as the full ID
		if number, err := strconv.Atoi(args[0]); err == nil {
			return wire.EquipmentAdapter().ShowByNumber(cmd.Context(), number)
		}
		return wire.EquipmentAdapter().Show(cmd.Context(), args[0])
	},
}

var caexUpdateCmd = &cobra.Command{
	Use:   "update [equipment-id]",
	Short: "Correct a unit's fleet number and/or model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, _ := cmd.Flags().GetInt("number")
		model, _ := cmd.Flags().GetString("model")

		return wire.EquipmentAdapter().Update(cmd.Context(), args[0], number, model)
	},
}

var caexDeleteCmd = &cobra.Command{
	Use:   "delete [equipment-id]",
	Short: "Delete a unit and its inspection history",
	Long: `Delete a CAEX unit from the registry.

WARNING: This removes the unit's entire inspection history, including
answers and photos.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.EquipmentAdapter().Delete(cmd.Context(), args[0])
	},
}

// CaexCmd returns the caex command
func CaexCmd() *cobra.Command {
	caexRegisterCmd.Flags().StringP("model", "m", "", "Truck model (797F or 798AC)")
	caexRegisterCmd.MarkFlagRequired("model")
	caexListCmd.Flags().StringP("model", "m", "", "Filter by model (797F or 798AC)")
	caexUpdateCmd.Flags().IntP("number", "n", 0, "New fleet number")
	caexUpdateCmd.Flags().StringP("model", "m", "", "New model (797F or 798AC)")

	caexCmd.AddCommand(caexRegisterCmd)
	caexCmd.AddCommand(caexListCmd)
	caexCmd.AddCommand(caexShowCmd)
	caexCmd.AddCommand(caexUpdateCmd)
	caexCmd.AddCommand(caexDeleteCmd)

	return caexCmd
}
