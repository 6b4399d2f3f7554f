package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/config"
	"github.com/example/caexinspect/internal/wire"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate PDF reports",
	Long:  "Generate inspection history and non-conformity findings reports",
}

// resolveOutputPath places bare file names under the configured report
// directory. Paths with a directory component are used as given.
func resolveOutputPath(output, defaultName string) (string, error) {
	if output == "" {
		output = defaultName
	}
	if strings.ContainsRune(output, os.PathSeparator) {
		return output, nil
	}

	dir, err := config.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return "", err
	}
	reportDir, err := cfg.ReportOutputDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(reportDir, output), nil
}

var reportHistoryCmd = &cobra.Command{
	Use:   "history [equipment-id]",
	Short: "Generate the inspection history PDF for a unit",
	Long: `Generate a PDF listing every inspection recorded for a unit.

Examples:
  caexinspect report history CAEX-301
  caexinspect report history CAEX-301 --output /tmp/caex-301.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		path, err := resolveOutputPath(output, fmt.Sprintf("historial-%s.pdf", args[0]))
		if err != nil {
			return err
		}
		return wire.ReportAdapter().History(cmd.Context(), args[0], path)
	},
}

var reportFindingsCmd = &cobra.Command{
	Use:   "findings [inspection-id]",
	Short: "Generate the non-conformity findings PDF for an inspection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		path, err := resolveOutputPath(output, fmt.Sprintf("hallazgos-%s.pdf", args[0]))
		if err != nil {
			return err
		}
		return wire.ReportAdapter().Findings(cmd.Context(), args[0], path)
	},
}

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	reportHistoryCmd.Flags().StringP("output", "o", "", "Output PDF path")
	reportFindingsCmd.Flags().StringP("output", "o", "", "Output PDF path")

	reportCmd.AddCommand(reportHistoryCmd)
	reportCmd.AddCommand(reportFindingsCmd)

	return reportCmd
}
