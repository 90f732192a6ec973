//nolint:revive // types is a standard Go package name pattern
package types

// DocumentInfo summarizes the structure of a scanned document.
type DocumentInfo struct {
	TotalParagraphs   int      `json:"total_paragraphs"`
	TotalTables       int      `json:"total_tables"`
	HasHeader         bool     `json:"has_header"`
	HasFooter         bool     `json:"has_footer"`
	PlaceholdersFound int      `json:"placeholders_found"`
	PlaceholderList   []string `json:"placeholder_list"`
}

// ValidationReport is the outcome of structural template validation.
// Errors are hard failures (nested or empty placeholders, unreadable file);
// warnings are advisory (format violations, thin documents).
type ValidationReport struct {
	Valid    bool         `json:"valid"`
	Errors   []string     `json:"errors"`
	Warnings []string     `json:"warnings"`
	Info     DocumentInfo `json:"info"`
}

// AddError records a hard failure and marks the report invalid.
func (r *ValidationReport) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// AddWarning records an advisory finding without affecting validity.
func (r *ValidationReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// CompletenessReport describes how much of a template's placeholder set is
// covered by a saved mapping. An incomplete mapping is a normal state, not an
// error; unmapped placeholders simply remain literal in generated output.
type CompletenessReport struct {
	TemplateName         string   `json:"template_name"`
	IsComplete           bool     `json:"is_complete"`
	CompletenessPercent  float64  `json:"completeness_percent"`
	TotalPlaceholders    int      `json:"total_placeholders"`
	MappedCount          int      `json:"mapped_count"`
	UnmappedPlaceholders []string `json:"unmapped_placeholders"`
	Message              string   `json:"message,omitempty"`
}
