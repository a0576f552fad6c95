package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sambabib/depwatch/pkg/audit"
	"github.com/sambabib/depwatch/pkg/config"
	"github.com/sambabib/depwatch/pkg/logger"
	"github.com/sambabib/depwatch/pkg/output"
)

var auditFormat string
var auditConfigPath string

// auditCmd represents the audit subcommand
var auditCmd = &cobra.Command{
	Use:   "audit <watch-list> <project-dir> [output-file]",
	Short: "Audit a project's dependencies against a watch-list",
	Long: `Audit reads a watch-list of package specifiers (one "name" or
"name@version" per line, npm scopes supported), resolves the versions the
project at <project-dir> actually installs from package.json and
package-lock.json, and reports every watched package found in the project.

A package is flagged stale when its installed version has not moved past
the version named on the watch-list. When no watched package is found in
the project, no report file is written.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		watchlistPath := args[0]
		projectPath := args[1]

		log := logger.New(os.Stderr, verbose)

		// Load configuration: an explicit --config path wins, otherwise
		// search upward from the project directory
		var cfg *config.Config
		var err error
		if auditConfigPath != "" {
			cfg, err = config.LoadConfig(auditConfigPath)
		} else {
			cfg, err = config.FindAndLoadConfig(projectPath)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		a := audit.New(log)
		a.IgnorePackages = cfg.IgnorePackages

		records, err := a.Run(watchlistPath, projectPath)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			log.Infof("no watched packages found in %s, skipping report", projectPath)
			return nil
		}

		stale := 0
		for _, r := range records {
			if r.Stale {
				stale++
			}
		}

		// Positional output file and --format override the config
		outputFile := cfg.Output.File
		if len(args) == 3 {
			outputFile = args[2]
		}
		format := cfg.Output.Format
		if auditFormat != "" {
			format = auditFormat
		}

		var data []byte
		switch format {
		case "csv":
			data, err = output.GenerateCSVReport(records, reportOptions(cfg))
		case "json":
			data, err = output.GenerateJSONReport(records)
		case "sarif":
			data, err = output.GenerateSarifReport(records, projectPath, Version)
		case "text":
			// Text goes straight to the console, no report file
			return output.WriteTextReport(os.Stdout, records)
		default:
			return fmt.Errorf("unsupported format %q (expected csv, json, sarif or text)", format)
		}
		if err != nil {
			return fmt.Errorf("failed to generate %s report: %w", format, err)
		}

		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", outputFile, err)
		}
		log.Infof("wrote %d records to %s (%d stale)", len(records), outputFile, stale)
		return nil
	},
}

// reportOptions maps the report section of the config onto the CSV layout
func reportOptions(cfg *config.Config) output.Options {
	return output.Options{
		NameHeader:    cfg.Report.NameHeader,
		VersionHeader: cfg.Report.VersionHeader,
		WarningHeader: cfg.Report.WarningHeader,
		StaleMarker:   cfg.Report.StaleMarker,
	}
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "", "Report format: csv, json, sarif or text (default from config)")
	auditCmd.Flags().StringVarP(&auditConfigPath, "config", "c", "", "Path to config file (default: search for .depwatch.yaml from the project directory upward)")
}
