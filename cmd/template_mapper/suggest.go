package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khairulnizam/template-mapper/internal/resolve"
	"github.com/khairulnizam/template-mapper/internal/scanning"
	"github.com/khairulnizam/template-mapper/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest field sources for a template's placeholders",
	Long:  "Match each placeholder in a template against the field catalog and print the suggested assignment for every token, without saving anything.",
	RunE:  runSuggest,
}

var (
	suggestTemplate string
	suggestJSON     bool
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestTemplate, "template", "t", "", "Path to the .docx template (required)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Emit the draft mapping as JSON")
	_ = suggestCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	tokens := scanning.ScanFile(suggestTemplate)
	if len(tokens) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No placeholders found")
		return nil
	}

	mapping, unmapped := suggest.AutoMap(tokens, resolve.FieldCatalog())

	if suggestJSON {
		return printJSON(mapping)
	}

	for _, token := range mapping.Tokens() {
		_, _ = fmt.Fprintf(os.Stdout, "%s -> %s\n", token, mapping[token])
	}
	for _, token := range unmapped {
		_, _ = fmt.Fprintf(os.Stdout, "%s -> (no suggestion)\n", token)
	}
	return nil
}
