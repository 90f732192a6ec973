package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khairulnizam/template-mapper/internal/resolve"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the field catalog available for mapping",
	RunE:  runFields,
}

var fieldsJSON bool

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "Emit the catalog as JSON")

	rootCmd.AddCommand(fieldsCmd)
}

func runFields(_ *cobra.Command, _ []string) error {
	catalog := resolve.FieldCatalog()

	if fieldsJSON {
		return printJSON(catalog)
	}

	for _, entry := range catalog {
		_, _ = fmt.Fprintf(os.Stdout, "%-28s %s\n", entry.ID, entry.Label)
	}
	return nil
}
