package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khairulnizam/template-mapper/internal/types"
)

func profile(required, optional []string) types.ModuleProfile {
	return types.ModuleProfile{
		Name:           "Form2",
		ModuleName:     "form2_Government",
		RequiredFields: required,
		OptionalFields: optional,
	}
}

func TestScore_PartialRequiredCoverage(t *testing.T) {
	// Scenario A: 3 of 5 required present, no optional fields.
	placeholders := []string{"NAMA_SYARIKAT", "RUJUKAN", "TARIKH"}
	p := profile([]string{"NAMA_SYARIKAT", "RUJUKAN", "TARIKH", "PROSES", "JENIS_BARANG"}, nil)

	result := Score("surat.docx", placeholders, p)

	assert.InDelta(t, 42.0, result.MatchScore, 0.001)
	assert.False(t, result.IsCompatible)
	assert.Equal(t, []string{"NAMA_SYARIKAT", "RUJUKAN", "TARIKH"}, result.RequiredFieldsFound)
	assert.Equal(t, []string{"PROSES", "JENIS_BARANG"}, result.RequiredFieldsMissing)
	assert.Contains(t, result.Recommendation, "missing 2 required fields")
	assert.Contains(t, result.Recommendation, "PROSES, JENIS_BARANG")
}

func TestScore_AllRequiredPlusHalfOptional(t *testing.T) {
	// Scenario B: full required coverage, one of two optional present.
	placeholders := []string{"NAMA_SYARIKAT", "RUJUKAN", "PENGECUALIAN"}
	p := profile([]string{"NAMA_SYARIKAT", "RUJUKAN"}, []string{"PENGECUALIAN", "CATATAN"})

	result := Score("surat.docx", placeholders, p)

	assert.InDelta(t, 85.0, result.MatchScore, 0.001)
	assert.True(t, result.IsCompatible)
	assert.Empty(t, result.RequiredFieldsMissing)
}

func TestScore_PerfectMatch(t *testing.T) {
	p := profile([]string{"TARIKH"}, nil)

	result := Score("surat.docx", []string{"TARIKH"}, p)

	assert.True(t, result.IsCompatible)
	assert.Empty(t, result.ExtraPlaceholders)
	assert.Contains(t, result.Recommendation, "Perfectly compatible")
}

func TestScore_CompatibleWithExtras(t *testing.T) {
	p := profile([]string{"TARIKH"}, nil)

	result := Score("surat.docx", []string{"TARIKH", "NOTA", "LAMPIRAN"}, p)

	assert.True(t, result.IsCompatible)
	assert.Equal(t, []string{"LAMPIRAN", "NOTA"}, result.ExtraPlaceholders)
	assert.Contains(t, result.Recommendation, "2 extra placeholders")
	// Extras are informational only; the score is unaffected.
	assert.InDelta(t, 70.0, result.MatchScore, 0.001)
}

func TestScore_EmptyRequiredListTriviallySatisfied(t *testing.T) {
	p := profile(nil, []string{"CATATAN"})

	result := Score("surat.docx", []string{"APA_SAHAJA"}, p)

	assert.True(t, result.IsCompatible)
	// required_pct = 100, optional_pct = 0 -> 70.
	assert.InDelta(t, 70.0, result.MatchScore, 0.001)
}

func TestScore_EmptyOptionalListContributesNothing(t *testing.T) {
	p := profile([]string{"TARIKH"}, nil)

	result := Score("surat.docx", []string{"TARIKH"}, p)

	// required_pct = 100, optional_pct = 0 -> 70, still compatible.
	assert.InDelta(t, 70.0, result.MatchScore, 0.001)
	assert.True(t, result.IsCompatible)
}

func TestScore_EmptyPlaceholderSet(t *testing.T) {
	p := profile([]string{"TARIKH"}, []string{"CATATAN"})

	result := Score("kosong.docx", nil, p)

	assert.InDelta(t, 0.0, result.MatchScore, 0.001)
	assert.False(t, result.IsCompatible)
}

func TestScore_BoundsHold(t *testing.T) {
	cases := []struct {
		name         string
		placeholders []string
		required     []string
		optional     []string
	}{
		{"everything matches", []string{"A", "B", "C"}, []string{"A", "B"}, []string{"C"}},
		{"nothing matches", []string{"X"}, []string{"A"}, []string{"B"}},
		{"both lists empty", []string{"X"}, nil, nil},
		{"no placeholders", nil, []string{"A"}, []string{"B"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Score("t.docx", tc.placeholders, profile(tc.required, tc.optional))
			assert.GreaterOrEqual(t, result.MatchScore, 0.0)
			assert.LessOrEqual(t, result.MatchScore, 100.0)

			// is_compatible iff every required field is present.
			assert.Equal(t, len(result.RequiredFieldsMissing) == 0, result.IsCompatible)
		})
	}
}
