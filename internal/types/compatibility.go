//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// CompatibilityResult is the outcome of scoring one template's placeholder set
// against one module profile. It is derived on demand and never persisted.
type CompatibilityResult struct {
	TemplateName          string   `json:"template_name"`
	Module                string   `json:"module"`
	MatchScore            float64  `json:"match_score"`
	IsCompatible          bool     `json:"is_compatible"`
	RequiredFieldsFound   []string `json:"required_fields_found"`
	RequiredFieldsMissing []string `json:"required_fields_missing"`
	ExtraPlaceholders     []string `json:"extra_placeholders"`
	Recommendation        string   `json:"recommendation"`
}

// TemplateScan is the per-template row produced by a directory scan: the
// placeholders found plus the structural validation outcome.
type TemplateScan struct {
	Name         string   `json:"name"`
	Path         string   `json:"path"`
	Placeholders []string `json:"placeholders"`
	Valid        bool     `json:"valid"`
	Errors       []string `json:"errors,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
}

// RankedTemplate is one entry of a directory ranking against a module.
type RankedTemplate struct {
	TemplateName   string  `json:"template_name"`
	Path           string  `json:"path"`
	MatchScore     float64 `json:"match_score"`
	IsCompatible   bool    `json:"is_compatible"`
	RequiredFound  int     `json:"required_found"`
	RequiredTotal  int     `json:"required_total"`
	Recommendation string  `json:"recommendation"`
}

// DirectoryReport ranks every template in a directory against one module,
// partitioned into compatible and incompatible, each sorted by descending
// match score.
type DirectoryReport struct {
	ReportID     string           `json:"report_id"`
	ScannedAt    time.Time        `json:"scanned_at"`
	Module       string           `json:"module"`
	MinScore     float64          `json:"min_score"`
	Compatible   []RankedTemplate `json:"compatible_templates"`
	Incompatible []RankedTemplate `json:"incompatible_templates"`
}

// ModuleScore is one cell of the best-module matrix.
type ModuleScore struct {
	Module          string   `json:"module"`
	Score           float64  `json:"score"`
	Compatible      bool     `json:"compatible"`
	RequiredFound   int      `json:"required_found"`
	RequiredMissing []string `json:"required_missing"`
}

// ModuleMatrix reports, for one template, its score against every known
// module profile and the best-scoring module.
type ModuleMatrix struct {
	TemplateName string        `json:"template_name"`
	Placeholders []string      `json:"placeholders"`
	Modules      []ModuleScore `json:"modules"`
	BestModule   string        `json:"best_module"`
}

// MatrixReport is the directory-wide module matrix: one ModuleMatrix per
// scanned template.
type MatrixReport struct {
	ReportID  string         `json:"report_id"`
	ScannedAt time.Time      `json:"scanned_at"`
	Templates []ModuleMatrix `json:"templates"`
}
