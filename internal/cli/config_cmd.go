package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/caexinspect/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user defaults",
	Long:  "View and set the defaults applied by inspection commands",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.DefaultConfigDir()
		if err != nil {
			return err
		}
		cfg, err := config.LoadConfig(dir)
		if err != nil {
			return err
		}

		fmt.Printf("Inspector:  %s\n", orUnset(cfg.DefaultInspector))
		fmt.Printf("Supervisor: %s\n", orUnset(cfg.DefaultSupervisor))
		reportDir, err := cfg.ReportOutputDir()
		if err != nil {
			return err
		}
		fmt.Printf("Report dir: %s\n", reportDir)

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set default inspector, supervisor, and report directory",
	Long: `Set the defaults applied when flags are omitted.

Examples:
  caexinspect config set --inspector "P. Rojas" --supervisor "M. Soto"
  caexinspect config set --report-dir /data/reportes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inspector, _ := cmd.Flags().GetString("inspector")
		supervisor, _ := cmd.Flags().GetString("supervisor")
		reportDir, _ := cmd.Flags().GetString("report-dir")

		if inspector == "" && supervisor == "" && reportDir == "" {
			return fmt.Errorf("must specify at least --inspector, --supervisor, or --report-dir")
		}

		dir, err := config.DefaultConfigDir()
		if err != nil {
			return err
		}
		cfg, err := config.LoadConfig(dir)
		if err != nil {
			return err
		}

		if inspector != "" {
			cfg.DefaultInspector = inspector
		}
		if supervisor != "" {
			cfg.DefaultSupervisor = supervisor
		}
		if reportDir != "" {
			cfg.ReportDir = reportDir
		}

		if err := config.SaveConfig(dir, cfg); err != nil {
			return err
		}

		fmt.Println("✓ Defaults saved")
		return nil
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	configSetCmd.Flags().StringP("inspector", "i", "", "Default inspector name")
	configSetCmd.Flags().StringP("supervisor", "s", "", "Default supervisor name")
	configSetCmd.Flags().String("report-dir", "", "Directory for generated reports")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	return configCmd
}
