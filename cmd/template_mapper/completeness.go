package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khairulnizam/template-mapper/internal/document"
	"github.com/khairulnizam/template-mapper/internal/observability"
	"github.com/khairulnizam/template-mapper/internal/scanning"
	"github.com/khairulnizam/template-mapper/internal/validation"
)

var completenessCmd = &cobra.Command{
	Use:   "completeness",
	Short: "Report how much of a template the saved mapping covers",
	Long:  "Compare a template's live placeholder set with its saved mapping and report coverage. Incomplete coverage is informational; unmapped placeholders stay literal in generated letters.",
	RunE:  runCompleteness,
}

var (
	completenessTemplate string
	completenessStore    string
	completenessConfig   string
	completenessJSON     bool
)

func init() {
	completenessCmd.Flags().StringVarP(&completenessTemplate, "template", "t", "", "Path to the .docx template (required)")
	completenessCmd.Flags().StringVar(&completenessStore, "store", "", "Path to the mappings file")
	completenessCmd.Flags().StringVarP(&completenessConfig, "config", "c", "", "Path to JSON config file")
	completenessCmd.Flags().BoolVar(&completenessJSON, "json", false, "Emit the report as JSON")
	_ = completenessCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(completenessCmd)
}

func runCompleteness(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(completenessConfig)
	if err != nil {
		return err
	}
	if completenessStore == "" {
		completenessStore = cfg.MappingsFile
	}

	doc, err := document.Open(completenessTemplate)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}

	st := openStore(completenessStore)
	mapping, _ := st.GetMapping(completenessTemplate)

	report := validation.Completeness(
		filepath.Base(completenessTemplate),
		scanning.ScanBracketed(doc),
		mapping,
	)

	if completenessJSON {
		return printJSON(report)
	}

	observability.NewPrinter(os.Stdout).PrintCompleteness(&report)
	return nil
}
