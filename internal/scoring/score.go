// Package scoring judges how well a template's placeholder set fits a module
// profile: a weighted coverage percentage plus a strict all-required-present
// compatibility verdict.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/khairulnizam/template-mapper/internal/types"
)

// Weights of the match score components. Required coverage dominates;
// optional coverage contributes partial credit.
const (
	requiredWeight = 0.7
	optionalWeight = 0.3
)

// Score computes the compatibility of a template's bare placeholder names
// with one module profile.
//
// An empty required list is trivially satisfied (100%), while an empty
// optional list contributes nothing (0%) — the asymmetry is deliberate:
// having no requirements means any template qualifies, but there is no
// bonus coverage to earn when no optional fields exist.
func Score(templateName string, placeholders []string, profile types.ModuleProfile) types.CompatibilityResult {
	placeholderSet := make(map[string]struct{}, len(placeholders))
	for _, token := range placeholders {
		placeholderSet[token] = struct{}{}
	}

	result := types.CompatibilityResult{
		TemplateName:          templateName,
		Module:                profile.Name,
		RequiredFieldsFound:   []string{},
		RequiredFieldsMissing: []string{},
		ExtraPlaceholders:     []string{},
	}

	for _, field := range profile.RequiredFields {
		if _, ok := placeholderSet[field]; ok {
			result.RequiredFieldsFound = append(result.RequiredFieldsFound, field)
		} else {
			result.RequiredFieldsMissing = append(result.RequiredFieldsMissing, field)
		}
	}

	optionalFound := 0
	for _, field := range profile.OptionalFields {
		if _, ok := placeholderSet[field]; ok {
			optionalFound++
		}
	}

	expected := make(map[string]struct{}, len(profile.RequiredFields)+len(profile.OptionalFields))
	for _, field := range profile.RequiredFields {
		expected[field] = struct{}{}
	}
	for _, field := range profile.OptionalFields {
		expected[field] = struct{}{}
	}
	for _, token := range placeholders {
		if _, ok := expected[token]; !ok {
			result.ExtraPlaceholders = append(result.ExtraPlaceholders, token)
		}
	}
	sort.Strings(result.ExtraPlaceholders)

	requiredPct := 100.0
	if len(profile.RequiredFields) > 0 {
		requiredPct = float64(len(result.RequiredFieldsFound)) / float64(len(profile.RequiredFields)) * 100
	}
	optionalPct := 0.0
	if len(profile.OptionalFields) > 0 {
		optionalPct = float64(optionalFound) / float64(len(profile.OptionalFields)) * 100
	}

	result.MatchScore = requiredWeight*requiredPct + optionalWeight*optionalPct
	result.IsCompatible = len(result.RequiredFieldsMissing) == 0
	result.Recommendation = recommendation(result, profile.Name)

	return result
}

// recommendation renders one of three tiers: perfectly compatible,
// compatible with extras noted, or incompatible naming the missing fields.
func recommendation(result types.CompatibilityResult, module string) string {
	if result.IsCompatible {
		if len(result.ExtraPlaceholders) > 0 {
			return fmt.Sprintf("Compatible with %s. Has %d extra placeholders.", module, len(result.ExtraPlaceholders))
		}
		return fmt.Sprintf("Perfectly compatible with %s.", module)
	}
	return fmt.Sprintf("Incompatible - missing %d required fields: %s",
		len(result.RequiredFieldsMissing), strings.Join(result.RequiredFieldsMissing, ", "))
}
