package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/wire"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Record checklist answers",
	Long:  "Record, list, and delete checklist answers on an open inspection",
}

var answerPassCmd = &cobra.Command{
	Use:   "pass [inspection-id] [question-id]",
	Short: "Record a CONFORME answer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		comments, _ := cmd.Flags().GetString("comments")
		return wire.AnswerAdapter().Pass(cmd.Context(), args[0], args[1], comments)
	},
}

var answerFailCmd = &cobra.Command{
	Use:   "fail [inspection-id] [question-id]",
	Short: "Record a NO_CONFORME answer with its finding details",
	Long: `Record a NO_CONFORME answer.

A fail answer must carry the finding description, the remediation kind
(INMEDIATO or PROGRAMADO), and the maintenance ticket reference.

Examples:
  caexinspect answer fail INSP-001 Q-014 \
    --comments "Fisura en parrilla lado izquierdo" \
    --remediation PROGRAMADO --ticket AV-10234`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		comments, _ := cmd.Flags().GetString("comments")
		remediation, _ := cmd.Flags().GetString("remediation")
		ticket, _ := cmd.Flags().GetString("ticket")

		return wire.AnswerAdapter().Fail(cmd.Context(), args[0], args[1], comments, remediation, ticket)
	},
}

var answerListCmd = &cobra.Command{
	Use:   "list [inspection-id]",
	Short: "List an inspection's answers in checklist order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		return wire.AnswerAdapter().List(cmd.Context(), args[0], status)
	},
}

var answerDeleteCmd = &cobra.Command{
	Use:   "delete [answer-id]",
	Short: "Delete an answer, reopening its question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AnswerAdapter().Delete(cmd.Context(), args[0])
	},
}

// AnswerCmd returns the answer command
func AnswerCmd() *cobra.Command {
	answerPassCmd.Flags().StringP("comments", "c", "", "Optional observations")
	answerFailCmd.Flags().StringP("comments", "c", "", "Finding description (required)")
	answerFailCmd.Flags().StringP("remediation", "r", "", "Remediation kind (INMEDIATO or PROGRAMADO)")
	answerFailCmd.Flags().StringP("ticket", "t", "", "Maintenance ticket reference")
	answerListCmd.Flags().StringP("status", "s", "", "Filter by status (CONFORME, NO_CONFORME)")

	answerCmd.AddCommand(answerPassCmd)
	answerCmd.AddCommand(answerFailCmd)
	answerCmd.AddCommand(answerListCmd)
	answerCmd.AddCommand(answerDeleteCmd)

	return answerCmd
}
