package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var showMappingCmd = &cobra.Command{
	Use:   "show-mapping",
	Short: "Show a template's saved mapping",
	Long:  "Print a template's saved placeholder assignments, or list every configured template when no template is given.",
	RunE:  runShowMapping,
}

var (
	showTemplate string
	showStore    string
	showConfig   string
	showJSON     bool
)

func init() {
	showMappingCmd.Flags().StringVarP(&showTemplate, "template", "t", "", "Template path or identifier")
	showMappingCmd.Flags().StringVar(&showStore, "store", "", "Path to the mappings file")
	showMappingCmd.Flags().StringVarP(&showConfig, "config", "c", "", "Path to JSON config file")
	showMappingCmd.Flags().BoolVar(&showJSON, "json", false, "Emit the mapping as JSON")

	rootCmd.AddCommand(showMappingCmd)
}

func runShowMapping(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(showConfig)
	if err != nil {
		return err
	}
	if showStore == "" {
		showStore = cfg.MappingsFile
	}

	st := openStore(showStore)

	if showTemplate == "" {
		ids := st.TemplateIDs()
		sort.Strings(ids)
		if showJSON {
			return printJSON(ids)
		}
		_, _ = fmt.Fprintf(os.Stdout, "%d configured templates\n", len(ids))
		for _, id := range ids {
			_, _ = fmt.Fprintf(os.Stdout, "  %s\n", id)
		}
		return nil
	}

	mapping, ok := st.GetMapping(showTemplate)
	if !ok {
		return fmt.Errorf("no mapping configured for %s", showTemplate)
	}

	if showJSON {
		return printJSON(mapping)
	}

	for _, token := range mapping.Tokens() {
		_, _ = fmt.Fprintf(os.Stdout, "%s -> %s\n", token, mapping[token])
	}
	return nil
}
