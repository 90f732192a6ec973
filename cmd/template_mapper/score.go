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

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a template's compatibility with one module",
	Long:  "Score a template's placeholder set against a module profile: 70% weight on required field coverage, 30% on optional field coverage.",
	RunE:  runScore,
}

var (
	scoreTemplate string
	scoreModule   string
	scoreProfiles string
	scoreConfig   string
	scoreJSON     bool
	scoreOutFile  string
	scoreVerbose  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreTemplate, "template", "t", "", "Path to the .docx template (required)")
	scoreCmd.Flags().StringVarP(&scoreModule, "module", "m", "", "Module profile name (required)")
	scoreCmd.Flags().StringVar(&scoreProfiles, "profiles", "", "YAML file with extra module profiles")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the result as JSON")
	scoreCmd.Flags().StringVarP(&scoreOutFile, "out", "o", "", "Write the JSON result to a file")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted compatibility summary")
	_ = scoreCmd.MarkFlagRequired("template")
	_ = scoreCmd.MarkFlagRequired("module")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(scoreConfig)
	if err != nil {
		return err
	}
	if scoreProfiles == "" {
		scoreProfiles = cfg.ProfileOverrides
	}

	registry, err := loadRegistry(scoreProfiles)
	if err != nil {
		return err
	}
	profile, ok := registry.Get(scoreModule)
	if !ok {
		return moduleNotFound(scoreModule, registry.Names())
	}

	scan := templates.ScanOne(scoreTemplate)
	if !scan.Valid {
		return fmt.Errorf("template %s failed validation: %s", scoreTemplate, firstError(scan.Errors))
	}

	result := scoring.Score(scan.Name, scan.Placeholders, profile)

	if scoreOutFile != "" {
		data, err := marshalIndent(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(scoreOutFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		schemaPath := schemas.ResolveSchemaPath("schemas/compatibility_result.schema.json")
		if schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, scoreOutFile); err != nil {
				var schemaLoadErr *schemas.SchemaLoadError
				if errors.As(err, &schemaLoadErr) {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
				} else {
					return fmt.Errorf("generated JSON does not validate against schema: %w", err)
				}
			}
		}
	}

	if scoreJSON {
		return printJSON(result)
	}

	if scoreVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintCompatibility(&result)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s vs %s: %.1f\n", result.TemplateName, result.Module, result.MatchScore)
	_, _ = fmt.Fprintln(os.Stdout, result.Recommendation)
	return nil
}

func firstError(errs []string) string {
	if len(errs) > 0 {
		return errs[0]
	}
	return "structural validation failed"
}
