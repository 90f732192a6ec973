package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khairulnizam/template-mapper/internal/resolve"
	"github.com/khairulnizam/template-mapper/internal/scanning"
	"github.com/khairulnizam/template-mapper/internal/store"
	"github.com/khairulnizam/template-mapper/internal/suggest"
	"github.com/khairulnizam/template-mapper/internal/types"
)

var setMappingCmd = &cobra.Command{
	Use:   "set-mapping",
	Short: "Save a template's placeholder mapping",
	Long: "Replace a template's saved mapping wholesale. Assignments take the form TOKEN=SOURCE where SOURCE is a form field id, " +
		"COMPUTED:<kind> for a derived value, or CUSTOM:<text> for a literal. With --auto, unassigned placeholders are matched against the field catalog first.",
	RunE: runSetMapping,
}

var (
	setTemplate string
	setStore    string
	setConfig   string
	setPairs    []string
	setFromJSON string
	setAuto     bool
)

func init() {
	setMappingCmd.Flags().StringVarP(&setTemplate, "template", "t", "", "Template path or identifier (required)")
	setMappingCmd.Flags().StringVar(&setStore, "store", "", "Path to the mappings file")
	setMappingCmd.Flags().StringVarP(&setConfig, "config", "c", "", "Path to JSON config file")
	setMappingCmd.Flags().StringArrayVarP(&setPairs, "set", "s", nil, "Placeholder assignment TOKEN=SOURCE (repeatable)")
	setMappingCmd.Flags().StringVar(&setFromJSON, "from-json", "", "Read assignments from a JSON file in the stored wire form")
	setMappingCmd.Flags().BoolVar(&setAuto, "auto", false, "Auto-match remaining placeholders against the field catalog")
	_ = setMappingCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(setMappingCmd)
}

func runSetMapping(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(setConfig)
	if err != nil {
		return err
	}
	if setStore == "" {
		setStore = cfg.MappingsFile
	}

	mapping := make(types.TemplateMapping)
	if setFromJSON != "" {
		data, err := os.ReadFile(setFromJSON)
		if err != nil {
			return fmt.Errorf("failed to read mapping file: %w", err)
		}
		if err := json.Unmarshal(data, &mapping); err != nil {
			return fmt.Errorf("failed to parse mapping file %s: %w", setFromJSON, err)
		}
	}

	// Explicit --set pairs win over file-loaded assignments.
	pairs, err := parseAssignments(setPairs)
	if err != nil {
		return err
	}
	for token, source := range pairs {
		mapping[token] = source
	}

	// When the template exists on disk, its live placeholder set anchors both
	// auto-matching and the stale-assignment warning. A bare identifier for a
	// file that is not present is still accepted: mappings outlive template
	// files being moved around.
	var scanned []string
	if _, statErr := os.Stat(setTemplate); statErr == nil {
		scanned = scanning.ScanFile(setTemplate)
	}

	if setAuto {
		if scanned == nil {
			return fmt.Errorf("cannot auto-match: template file %s not found", setTemplate)
		}
		auto, unmapped := suggest.AutoMap(scanned, resolve.FieldCatalog())
		for token, source := range auto {
			if _, ok := mapping[token]; !ok {
				mapping[token] = source
			}
		}
		for _, token := range unmapped {
			if _, ok := mapping[token]; !ok {
				_, _ = fmt.Fprintf(os.Stdout, "No suggestion for %s; assign it with --set\n", token)
			}
		}
	}

	if scanned != nil {
		live := make(map[string]struct{}, len(scanned))
		for _, token := range scanned {
			live[scanning.Bracket(token)] = struct{}{}
		}
		for token := range mapping {
			if _, ok := live[token]; !ok {
				fmt.Fprintf(os.Stderr, "Warning: %s is not present in %s\n", token, setTemplate)
			}
		}
	}

	st := openStore(setStore)
	if !st.SetMapping(setTemplate, mapping) {
		return fmt.Errorf("failed to save mapping for %s", setTemplate)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Saved %d assignments for %s\n", len(mapping), store.CanonicalID(setTemplate))
	return nil
}

// parseAssignments decodes TOKEN=SOURCE pairs into a mapping. Tokens may be
// given bare or bracketed; keys are stored bracketed.
func parseAssignments(pairs []string) (types.TemplateMapping, error) {
	mapping := make(types.TemplateMapping, len(pairs))
	for _, pair := range pairs {
		token, source, found := strings.Cut(pair, "=")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected TOKEN=SOURCE", pair)
		}
		mapping[scanning.Bracket(scanning.Unbracket(token))] = types.DecodeFieldSource(source)
	}
	return mapping, nil
}
