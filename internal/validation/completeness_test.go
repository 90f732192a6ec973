package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairulnizam/template-mapper/internal/types"
)

func TestCompleteness_NoPlaceholders(t *testing.T) {
	report := Completeness("kosong.docx", nil, nil)

	assert.True(t, report.IsComplete)
	assert.Equal(t, 100.0, report.CompletenessPercent)
	assert.Equal(t, "No placeholders found in template", report.Message)
}

func TestCompleteness_PartialCoverage(t *testing.T) {
	placeholders := []string{"<<A>>", "<<B>>", "<<C>>", "<<D>>"}
	mapping := types.TemplateMapping{
		"<<A>>": types.FormField("entry_a"),
		"<<C>>": types.Literal("x"),
	}

	report := Completeness("surat.docx", placeholders, mapping)

	assert.False(t, report.IsComplete)
	assert.Equal(t, 50.0, report.CompletenessPercent)
	assert.Equal(t, 2, report.MappedCount)
	assert.Equal(t, 4, report.TotalPlaceholders)
	assert.Equal(t, []string{"<<B>>", "<<D>>"}, report.UnmappedPlaceholders)
}

func TestCompleteness_FullCoverage(t *testing.T) {
	placeholders := []string{"<<A>>"}
	mapping := types.TemplateMapping{"<<A>>": types.FormField("entry_a")}

	report := Completeness("surat.docx", placeholders, mapping)

	assert.True(t, report.IsComplete)
	assert.Equal(t, 100.0, report.CompletenessPercent)
	assert.Empty(t, report.UnmappedPlaceholders)
}

func TestCompleteness_Monotonic(t *testing.T) {
	// Mapping one more previously-unmapped placeholder never lowers the
	// percentage.
	placeholders := []string{"<<A>>", "<<B>>", "<<C>>"}
	mapping := types.TemplateMapping{}

	previous := Completeness("surat.docx", placeholders, mapping).CompletenessPercent
	for _, token := range placeholders {
		mapping[token] = types.FormField("entry")
		current := Completeness("surat.docx", placeholders, mapping).CompletenessPercent
		require.GreaterOrEqual(t, current, previous)
		previous = current
	}
	assert.Equal(t, 100.0, previous)
}

func TestCompleteness_MappingEntriesOutsideTemplateIgnored(t *testing.T) {
	placeholders := []string{"<<A>>"}
	mapping := types.TemplateMapping{
		"<<A>>":     types.FormField("entry_a"),
		"<<LUAR>>":  types.FormField("entry_x"),
		"<<LAIN2>>": types.Literal("y"),
	}

	report := Completeness("surat.docx", placeholders, mapping)

	assert.True(t, report.IsComplete)
	assert.Equal(t, 1, report.MappedCount)
}
