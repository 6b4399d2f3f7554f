package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/wire"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Browse the inspection checklist catalog",
	Long:  "List the checklist categories and questions applicable to a truck model",
}

var checklistCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List checklist categories for a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _ := cmd.Flags().GetString("model")
		return wire.ChecklistAdapter().Categories(cmd.Context(), model)
	},
}

var checklistQuestionsCmd = &cobra.Command{
	Use:   "questions [category-id]",
	Short: "List a category's questions for a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _ := cmd.Flags().GetString("model")
		return wire.ChecklistAdapter().Questions(cmd.Context(), args[0], model)
	},
}

// ChecklistCmd returns the checklist command
func ChecklistCmd() *cobra.Command {
	checklistCategoriesCmd.Flags().StringP("model", "m", "", "Truck model (797F or 798AC)")
	checklistCategoriesCmd.MarkFlagRequired("model")
	checklistQuestionsCmd.Flags().StringP("model", "m", "", "Truck model (797F or 798AC)")
	checklistQuestionsCmd.MarkFlagRequired("model")

	checklistCmd.AddCommand(checklistCategoriesCmd)
	checklistCmd.AddCommand(checklistQuestionsCmd)

	return checklistCmd
}
