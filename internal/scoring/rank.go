package scoring

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/khairulnizam/template-mapper/internal/types"
)

// DefaultMinScore is the ranking threshold used when the caller supplies
// none.
const DefaultMinScore = 60.0

// Rank scores every scanned template against one module profile and
// partitions the results: a template lands in the compatible partition only
// when all required fields are present AND its score meets minScore.
// Structurally invalid templates are incompatible outright. Each partition
// is sorted by descending score, ties broken by template name so the order
// is deterministic.
func Rank(scans []types.TemplateScan, profile types.ModuleProfile, minScore float64) types.DirectoryReport {
	report := types.DirectoryReport{
		ReportID:     uuid.NewString(),
		ScannedAt:    time.Now().UTC(),
		Module:       profile.Name,
		MinScore:     minScore,
		Compatible:   []types.RankedTemplate{},
		Incompatible: []types.RankedTemplate{},
	}

	for _, scan := range scans {
		if !scan.Valid {
			report.Incompatible = append(report.Incompatible, types.RankedTemplate{
				TemplateName:   scan.Name,
				Path:           scan.Path,
				RequiredTotal:  len(profile.RequiredFields),
				Recommendation: "Invalid template: " + firstOr(scan.Errors, "structural validation failed"),
			})
			continue
		}

		result := Score(scan.Name, scan.Placeholders, profile)
		entry := types.RankedTemplate{
			TemplateName:   scan.Name,
			Path:           scan.Path,
			MatchScore:     result.MatchScore,
			IsCompatible:   result.IsCompatible,
			RequiredFound:  len(result.RequiredFieldsFound),
			RequiredTotal:  len(profile.RequiredFields),
			Recommendation: result.Recommendation,
		}

		if result.IsCompatible && result.MatchScore >= minScore {
			report.Compatible = append(report.Compatible, entry)
		} else {
			report.Incompatible = append(report.Incompatible, entry)
		}
	}

	sortRanked(report.Compatible)
	sortRanked(report.Incompatible)
	return report
}

// BestModules scores one template against every profile in the registry
// order given and names the best-scoring module.
func BestModules(scan types.TemplateScan, moduleProfiles []types.ModuleProfile) types.ModuleMatrix {
	matrix := types.ModuleMatrix{
		TemplateName: scan.Name,
		Placeholders: scan.Placeholders,
		Modules:      []types.ModuleScore{},
	}

	best := -1.0
	for _, profile := range moduleProfiles {
		result := Score(scan.Name, scan.Placeholders, profile)
		matrix.Modules = append(matrix.Modules, types.ModuleScore{
			Module:          profile.Name,
			Score:           result.MatchScore,
			Compatible:      result.IsCompatible,
			RequiredFound:   len(result.RequiredFieldsFound),
			RequiredMissing: result.RequiredFieldsMissing,
		})
		if result.MatchScore > best {
			best = result.MatchScore
			matrix.BestModule = profile.Name
		}
	}

	return matrix
}

// MatrixForAll builds the directory-wide matrix: every scanned template
// scored against every profile. Invalid templates are scored on whatever
// placeholders their scan produced, so the matrix stays one row per file.
func MatrixForAll(scans []types.TemplateScan, moduleProfiles []types.ModuleProfile) types.MatrixReport {
	report := types.MatrixReport{
		ReportID:  uuid.NewString(),
		ScannedAt: time.Now().UTC(),
		Templates: make([]types.ModuleMatrix, 0, len(scans)),
	}
	for _, scan := range scans {
		report.Templates = append(report.Templates, BestModules(scan, moduleProfiles))
	}
	return report
}

func sortRanked(entries []types.RankedTemplate) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].MatchScore != entries[j].MatchScore {
			return entries[i].MatchScore > entries[j].MatchScore
		}
		return entries[i].TemplateName < entries[j].TemplateName
	})
}

func firstOr(items []string, fallback string) string {
	if len(items) > 0 {
		return items[0]
	}
	return fallback
}
