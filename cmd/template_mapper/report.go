package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khairulnizam/template-mapper/internal/scoring"
	"github.com/khairulnizam/template-mapper/internal/templates"
	"github.com/khairulnizam/template-mapper/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the module matrix for a template or a directory",
	Long:  "Score templates against every registered module profile. With --template one matrix row is built; with --dir every template in the directory gets a row, with the best-scoring module named per template.",
	RunE:  runReport,
}

var (
	reportTemplate string
	reportDir      string
	reportProfiles string
	reportConfig   string
	reportJSON     bool
)

func init() {
	reportCmd.Flags().StringVarP(&reportTemplate, "template", "t", "", "Path to a single .docx template")
	reportCmd.Flags().StringVarP(&reportDir, "dir", "d", "", "Directory holding .docx templates")
	reportCmd.Flags().StringVar(&reportProfiles, "profiles", "", "YAML file with extra module profiles")
	reportCmd.Flags().StringVarP(&reportConfig, "config", "c", "", "Path to JSON config file")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Emit the matrix as JSON")

	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(reportConfig)
	if err != nil {
		return err
	}
	if reportProfiles == "" {
		reportProfiles = cfg.ProfileOverrides
	}
	if reportTemplate == "" && reportDir == "" {
		reportDir = cfg.TemplatesDir
	}
	if reportTemplate != "" && reportDir != "" {
		return fmt.Errorf("cannot use --template with --dir")
	}
	if reportTemplate == "" && reportDir == "" {
		return fmt.Errorf("a template or directory is required (use --template, --dir or TEMPLATE_MAPPER_TEMPLATES_DIR)")
	}

	registry, err := loadRegistry(reportProfiles)
	if err != nil {
		return err
	}

	var scans []types.TemplateScan
	if reportTemplate != "" {
		scan := templates.ScanOne(reportTemplate)
		if !scan.Valid {
			return fmt.Errorf("template %s failed validation: %s", reportTemplate, firstError(scan.Errors))
		}
		scans = []types.TemplateScan{scan}
	} else {
		scans, err = templates.ScanAll(reportDir)
		if err != nil {
			return err
		}
	}

	report := scoring.MatrixForAll(scans, registry.All())

	if reportJSON {
		return printJSON(report)
	}

	for _, matrix := range report.Templates {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", matrix.TemplateName)
		for _, score := range matrix.Modules {
			marker := " "
			if score.Module == matrix.BestModule {
				marker = "*"
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s %-16s %6.1f  compatible=%v\n", marker, score.Module, score.Score, score.Compatible)
		}
		_, _ = fmt.Fprintln(os.Stdout)
	}
	return nil
}
