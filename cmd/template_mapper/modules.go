package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the known module profiles",
	RunE:  runModules,
}

var (
	modulesProfiles string
	modulesJSON     bool
)

func init() {
	modulesCmd.Flags().StringVar(&modulesProfiles, "profiles", "", "YAML file with extra module profiles")
	modulesCmd.Flags().BoolVar(&modulesJSON, "json", false, "Emit the profiles as JSON")

	rootCmd.AddCommand(modulesCmd)
}

func runModules(_ *cobra.Command, _ []string) error {
	registry, err := loadRegistry(modulesProfiles)
	if err != nil {
		return err
	}

	if modulesJSON {
		return printJSON(registry.All())
	}

	for _, profile := range registry.All() {
		_, _ = fmt.Fprintf(os.Stdout, "%s (%s)\n", profile.Name, profile.ModuleName)
		_, _ = fmt.Fprintf(os.Stdout, "  required: %s\n", strings.Join(profile.RequiredFields, ", "))
		_, _ = fmt.Fprintf(os.Stdout, "  optional: %s\n", strings.Join(profile.OptionalFields, ", "))
	}
	return nil
}
