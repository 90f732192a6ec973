package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khairulnizam/template-mapper/internal/observability"
	"github.com/khairulnizam/template-mapper/internal/schemas"
	"github.com/khairulnizam/template-mapper/internal/scoring"
	"github.com/khairulnizam/template-mapper/internal/templates"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every template in a directory against one module",
	Long:  "Scan all .docx templates in a directory, score each against a module profile and partition them into compatible and incompatible, sorted by descending score.",
	RunE:  runRank,
}

var (
	rankDir      string
	rankModule   string
	rankMinScore float64
	rankProfiles string
	rankConfig   string
	rankJSON     bool
	rankOutFile  string
	rankVerbose  bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankDir, "dir", "d", "", "Directory holding .docx templates")
	rankCmd.Flags().StringVarP(&rankModule, "module", "m", "", "Module profile name (required)")
	rankCmd.Flags().Float64Var(&rankMinScore, "min-score", 0, "Compatibility threshold (default from config or 60)")
	rankCmd.Flags().StringVar(&rankProfiles, "profiles", "", "YAML file with extra module profiles")
	rankCmd.Flags().StringVarP(&rankConfig, "config", "c", "", "Path to JSON config file")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Emit the report as JSON")
	rankCmd.Flags().StringVarP(&rankOutFile, "out", "o", "", "Write the JSON report to a file")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted ranking summary")
	_ = rankCmd.MarkFlagRequired("module")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(rankConfig)
	if err != nil {
		return err
	}
	if rankDir == "" {
		rankDir = cfg.TemplatesDir
	}
	if rankDir == "" {
		return fmt.Errorf("templates directory is required (use --dir or TEMPLATE_MAPPER_TEMPLATES_DIR)")
	}
	if rankProfiles == "" {
		rankProfiles = cfg.ProfileOverrides
	}
	if rankMinScore == 0 {
		rankMinScore = cfg.MinScore
	}
	if rankMinScore == 0 {
		rankMinScore = scoring.DefaultMinScore
	}

	registry, err := loadRegistry(rankProfiles)
	if err != nil {
		return err
	}
	profile, ok := registry.Get(rankModule)
	if !ok {
		return moduleNotFound(rankModule, registry.Names())
	}

	scans, err := templates.ScanAll(rankDir)
	if err != nil {
		return err
	}

	report := scoring.Rank(scans, profile, rankMinScore)

	if rankOutFile != "" {
		data, err := marshalIndent(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(rankOutFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		schemaPath := schemas.ResolveSchemaPath("schemas/directory_report.schema.json")
		if schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, rankOutFile); err != nil {
				var schemaLoadErr *schemas.SchemaLoadError
				if errors.As(err, &schemaLoadErr) {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
				} else {
					return fmt.Errorf("generated JSON does not validate against schema: %w", err)
				}
			}
		}
	}

	if rankJSON {
		return printJSON(report)
	}

	if rankVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRanking(&report)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Module %s (min score %.0f): %d compatible, %d incompatible\n",
		report.Module, report.MinScore, len(report.Compatible), len(report.Incompatible))
	for i, entry := range report.Compatible {
		_, _ = fmt.Fprintf(os.Stdout, "  #%d %s (%.1f)\n", i+1, entry.TemplateName, entry.MatchScore)
	}
	return nil
}
