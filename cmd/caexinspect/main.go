package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/cli"
	"github.com/example/caexinspect/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "caexinspect",
		Short:   "caexinspect - CAEX workshop inspection checklists",
		Version: version.String(),
		Long: `caexinspect manages workshop inspection checklists for CAEX haul trucks.
It tracks the fleet, intake and release inspections, checklist answers with
photo evidence, and generates PDF reports.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.CaexCmd())
	rootCmd.AddCommand(cli.ChecklistCmd())
	rootCmd.AddCommand(cli.InspectionCmd())
	rootCmd.AddCommand(cli.AnswerCmd())
	rootCmd.AddCommand(cli.PhotoCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
