// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/khairulnizam/template-mapper/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScan outputs the placeholders found in one template.
func (p *Printer) PrintScan(scan *types.TemplateScan) {
	if scan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", scan.Name))
	sb.WriteString(fmt.Sprintf("Found %d placeholders:\n", len(scan.Placeholders)))

	count := min(len(scan.Placeholders), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • <<%s>>\n", scan.Placeholders[i]))
	}
	if len(scan.Placeholders) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(scan.Placeholders)-maxItemsToShow))
	}

	p.printBox("TEMPLATE SCAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs a structural validation report.
func (p *Printer) PrintValidation(report *types.ValidationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Valid {
		sb.WriteString("Status: VALID\n")
	} else {
		sb.WriteString("Status: INVALID\n")
	}
	sb.WriteString(fmt.Sprintf("Paragraphs: %d  Tables: %d\n", report.Info.TotalParagraphs, report.Info.TotalTables))
	sb.WriteString(fmt.Sprintf("Placeholders: %d\n", report.Info.PlaceholdersFound))

	if len(report.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, msg := range report.Errors {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", msg))
		}
	}
	if len(report.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, msg := range report.Warnings {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", msg))
		}
	}

	p.printBox("TEMPLATE VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompatibility outputs one template's score against one module.
func (p *Printer) PrintCompatibility(result *types.CompatibilityResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", result.TemplateName))
	sb.WriteString(fmt.Sprintf("Module:   %s\n", result.Module))
	sb.WriteString(fmt.Sprintf("Score:    %.1f\n", result.MatchScore))
	if result.IsCompatible {
		sb.WriteString("Status:   COMPATIBLE\n")
	} else {
		sb.WriteString("Status:   INCOMPATIBLE\n")
	}

	if len(result.RequiredFieldsMissing) > 0 {
		sb.WriteString("\nMissing required:\n")
		count := min(len(result.RequiredFieldsMissing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.RequiredFieldsMissing[i]))
		}
		if len(result.RequiredFieldsMissing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.RequiredFieldsMissing)-maxItemsToShow))
		}
	}

	sb.WriteString("\n" + result.Recommendation)
	p.printBox("COMPATIBILITY", sb.String())
}

// PrintRanking outputs a directory ranking report.
func (p *Printer) PrintRanking(report *types.DirectoryReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Module:    %s\n", report.Module))
	sb.WriteString(fmt.Sprintf("Min score: %.0f\n\n", report.MinScore))
	sb.WriteString(fmt.Sprintf("Compatible (%d):\n", len(report.Compatible)))

	count := min(len(report.Compatible), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := report.Compatible[i]
		sb.WriteString(fmt.Sprintf("  #%d %s (%.1f)\n", i+1, entry.TemplateName, entry.MatchScore))
	}
	if len(report.Compatible) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Compatible)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nIncompatible: %d", len(report.Incompatible)))
	p.printBox("TEMPLATE RANKING", sb.String())
}

// PrintCompleteness outputs mapping coverage for one template.
func (p *Printer) PrintCompleteness(report *types.CompletenessReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", report.TemplateName))
	sb.WriteString(fmt.Sprintf("Coverage: %.0f%% (%d/%d)\n", report.CompletenessPercent, report.MappedCount, report.TotalPlaceholders))

	if len(report.UnmappedPlaceholders) > 0 {
		sb.WriteString("\nUnmapped:\n")
		count := min(len(report.UnmappedPlaceholders), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.UnmappedPlaceholders[i]))
		}
		if len(report.UnmappedPlaceholders) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.UnmappedPlaceholders)-maxItemsToShow))
		}
	}
	if report.Message != "" {
		sb.WriteString("\n" + report.Message)
	}

	p.printBox("MAPPING COMPLETENESS", strings.TrimSuffix(sb.String(), "\n"))
}
