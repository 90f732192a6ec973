package validation

import (
	"sort"

	"github.com/khairulnizam/template-mapper/internal/types"
)

// Completeness reports how much of a template's placeholder set the saved
// mapping covers. Placeholders are given in bracketed form, matching mapping
// keys. A template without placeholders is trivially complete.
func Completeness(templateName string, placeholders []string, mapping types.TemplateMapping) types.CompletenessReport {
	report := types.CompletenessReport{
		TemplateName:         templateName,
		TotalPlaceholders:    len(placeholders),
		UnmappedPlaceholders: []string{},
	}

	if len(placeholders) == 0 {
		report.IsComplete = true
		report.CompletenessPercent = 100
		report.Message = "No placeholders found in template"
		return report
	}

	for _, token := range placeholders {
		if _, ok := mapping[token]; ok {
			report.MappedCount++
		} else {
			report.UnmappedPlaceholders = append(report.UnmappedPlaceholders, token)
		}
	}
	sort.Strings(report.UnmappedPlaceholders)

	report.CompletenessPercent = float64(report.MappedCount) / float64(report.TotalPlaceholders) * 100
	report.IsComplete = len(report.UnmappedPlaceholders) == 0
	return report
}
