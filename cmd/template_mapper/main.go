// Package main provides the entry point for the template mapper CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "template_mapper",
	Short: "Word template placeholder mapper",
	Long:  "template_mapper scans Word letter templates for <<NAME>> placeholders, persists per-template field mappings, and scores template compatibility against application module profiles.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
