package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khairulnizam/template-mapper/internal/observability"
	"github.com/khairulnizam/template-mapper/internal/schemas"
	"github.com/khairulnizam/template-mapper/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a template's placeholder structure",
	Long:  "Check a Word template for structural placeholder problems: nested or empty markers are errors, format violations and thin documents are warnings.",
	RunE:  runValidate,
}

var (
	validateTemplate string
	validateJSON     bool
	validateOutFile  string
)

func init() {
	validateCmd.Flags().StringVarP(&validateTemplate, "template", "t", "", "Path to the .docx template (required)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the validation report as JSON")
	validateCmd.Flags().StringVarP(&validateOutFile, "out", "o", "", "Write the JSON report to a file")
	_ = validateCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	report := validation.CheckFile(validateTemplate)

	if validateOutFile != "" {
		data, err := marshalIndent(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(validateOutFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		// Validate against schema (if schema file exists)
		schemaPath := schemas.ResolveSchemaPath("schemas/validation_report.schema.json")
		if schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, validateOutFile); err != nil {
				var schemaLoadErr *schemas.SchemaLoadError
				if errors.As(err, &schemaLoadErr) {
					_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
				} else {
					return fmt.Errorf("generated JSON does not validate against schema: %w", err)
				}
			}
		}
	}

	if validateJSON {
		return printJSON(report)
	}

	observability.NewPrinter(os.Stdout).PrintValidation(&report)
	if !report.Valid {
		return fmt.Errorf("template %s failed validation", validateTemplate)
	}
	return nil
}
