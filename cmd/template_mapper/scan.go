package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khairulnizam/template-mapper/internal/observability"
	"github.com/khairulnizam/template-mapper/internal/scanning"
	"github.com/khairulnizam/template-mapper/internal/templates"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a template for <<NAME>> placeholders",
	Long:  "Scan a Word template's body, tables, headers and footers for <<NAME>> placeholder tokens and list them sorted and deduplicated.",
	RunE:  runScan,
}

var (
	scanTemplate string
	scanJSON     bool
	scanVerbose  bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanTemplate, "template", "t", "", "Path to the .docx template (required)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Emit the scan result as JSON")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print a formatted scan summary")
	_ = scanCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	scan := templates.ScanOne(scanTemplate)

	if scanJSON {
		return printJSON(scan)
	}

	if scanVerbose {
		observability.NewPrinter(os.Stdout).PrintScan(&scan)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Found %d placeholders in %s\n", len(scan.Placeholders), scan.Name)
	for _, token := range scan.Placeholders {
		_, _ = fmt.Fprintf(os.Stdout, "  %s\n", scanning.Bracket(token))
	}
	return nil
}
