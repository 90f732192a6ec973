// Package validation performs structural checks on Word templates, distinct
// from compatibility scoring: nested or empty placeholder markers are hard
// failures, format and structure oddities are warnings.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/khairulnizam/template-mapper/internal/document"
	"github.com/khairulnizam/template-mapper/internal/scanning"
	"github.com/khairulnizam/template-mapper/internal/types"
)

// minParagraphs is the sanity floor for a usable letter template.
const minParagraphs = 3

var (
	// tokenFormatRe is the allowed token character class. Violations are
	// warnings: the scanner and mapper still handle such tokens, they just
	// break the house naming convention.
	tokenFormatRe = regexp.MustCompile(`^[A-Z0-9_]+$`)
	// nestedRe matches a << reopened before the previous marker closed.
	nestedRe = regexp.MustCompile(`<<[^>]*<<`)
	// emptyRe matches a marker with an empty or whitespace-only body.
	emptyRe = regexp.MustCompile(`<<\s*>>`)
)

// CheckDocument validates a loaded template.
func CheckDocument(doc *document.Document) types.ValidationReport {
	report := types.ValidationReport{Valid: true, Errors: []string{}, Warnings: []string{}}

	placeholders := scanning.ScanBracketed(doc)
	report.Info = types.DocumentInfo{
		TotalParagraphs:   len(doc.Paragraphs),
		TotalTables:       len(doc.Tables),
		HasHeader:         len(doc.Headers) > 0,
		HasFooter:         len(doc.Footers) > 0,
		PlaceholdersFound: len(placeholders),
		PlaceholderList:   placeholders,
	}

	for _, text := range doc.Containers() {
		if nestedRe.MatchString(text) {
			report.AddError("Nested placeholders found")
			break
		}
	}

	empties := 0
	for _, text := range doc.Containers() {
		empties += len(emptyRe.FindAllString(text, -1))
	}
	if empties > 0 {
		report.AddError(fmt.Sprintf("Empty placeholders found: %d", empties))
	}

	badFormat := []string{}
	for _, token := range scanning.Scan(doc) {
		if !tokenFormatRe.MatchString(token) {
			badFormat = append(badFormat, scanning.Bracket(token))
		}
	}
	if len(badFormat) > 0 {
		report.AddWarning("Invalid placeholder format: " + strings.Join(badFormat, ", "))
	}

	if len(doc.Paragraphs) < minParagraphs {
		report.AddWarning(fmt.Sprintf("Document has only %d paragraphs", len(doc.Paragraphs)))
	}

	return report
}

// CheckFile loads and validates a template. Load failures produce an invalid
// report rather than an error: validation is invoked opportunistically and
// must never abort the caller's workflow.
func CheckFile(path string) types.ValidationReport {
	doc, err := document.Open(path)
	if err != nil {
		return types.ValidationReport{
			Valid:    false,
			Errors:   []string{fmt.Sprintf("Validation failed: %v", err)},
			Warnings: []string{},
		}
	}
	return CheckDocument(doc)
}

// CheckReplacements compares a template's placeholders with a prepared
// replacement map. All findings are warnings; generation proceeds either way
// and unmapped placeholders stay literal in the output.
func CheckReplacements(doc *document.Document, replacements map[string]string) []string {
	warnings := []string{}

	templateTokens := make(map[string]struct{})
	for _, token := range scanning.ScanBracketed(doc) {
		templateTokens[token] = struct{}{}
	}

	missing := []string{}
	for token := range templateTokens {
		if _, ok := replacements[token]; !ok {
			missing = append(missing, token)
		}
	}
	sort.Strings(missing)
	if len(missing) > 0 {
		warnings = append(warnings, "Placeholders without replacements: "+strings.Join(missing, ", "))
	}

	unused := []string{}
	empty := []string{}
	for token, value := range replacements {
		if _, ok := templateTokens[token]; !ok {
			unused = append(unused, token)
		}
		if strings.TrimSpace(value) == "" {
			empty = append(empty, token)
		}
	}
	sort.Strings(unused)
	sort.Strings(empty)
	if len(unused) > 0 {
		warnings = append(warnings, "Replacements not in template: "+strings.Join(unused, ", "))
	}
	if len(empty) > 0 {
		warnings = append(warnings, "Empty values for: "+strings.Join(empty, ", "))
	}

	return warnings
}
