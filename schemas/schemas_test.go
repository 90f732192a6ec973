package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairulnizam/template-mapper/internal/schemas"
	"github.com/khairulnizam/template-mapper/internal/types"
)

var schemaFiles = []string{
	"mapping_store.schema.json",
	"compatibility_result.schema.json",
	"validation_report.schema.json",
	"directory_report.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType || hasSchema || hasProps,
				"schema should have at least type, $schema, or properties")
		})
	}
}

func TestMappingStoreSchema_AcceptsRealStore(t *testing.T) {
	storeJSON := `{
		"surat_form2.docx": {
			"<<NAMA_SYARIKAT>>": "entry_nama",
			"<<TARIKH>>": "COMPUTED:tarikh_malay",
			"<<RUJUKAN>>": "CUSTOM:KE.JB(90)650/05-02/123"
		},
		"kosong.docx": {}
	}`

	data, err := os.ReadFile("mapping_store.schema.json")
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(data), storeJSON))
}

func TestMappingStoreSchema_RejectsNonStringSource(t *testing.T) {
	storeJSON := `{"surat.docx": {"<<TARIKH>>": 42}}`

	data, err := os.ReadFile("mapping_store.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(data), storeJSON)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCompatibilityResultSchema_AcceptsScorerOutput(t *testing.T) {
	result := types.CompatibilityResult{
		TemplateName:          "surat_form2.docx",
		Module:                "Form2",
		MatchScore:            85.0,
		IsCompatible:          true,
		RequiredFieldsFound:   []string{"NAMA_SYARIKAT", "RUJUKAN", "TARIKH", "PROSES", "JENIS_BARANG"},
		RequiredFieldsMissing: []string{},
		ExtraPlaceholders:     []string{"LOGO"},
		Recommendation:        "Compatible with Form2. Has 1 extra placeholders.",
	}
	resultJSON, err := json.Marshal(result)
	require.NoError(t, err)

	data, err := os.ReadFile("compatibility_result.schema.json")
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(data), string(resultJSON)))
}

func TestValidationReportSchema_AcceptsCheckerOutput(t *testing.T) {
	report := types.ValidationReport{
		Valid:    false,
		Errors:   []string{"Nested placeholders found"},
		Warnings: []string{"Document has only 2 paragraphs"},
		Info: types.DocumentInfo{
			TotalParagraphs:   2,
			PlaceholdersFound: 1,
			PlaceholderList:   []string{"<<TARIKH>>"},
		},
	}
	reportJSON, err := json.Marshal(report)
	require.NoError(t, err)

	data, err := os.ReadFile("validation_report.schema.json")
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(data), string(reportJSON)))
}

func TestDirectoryReportSchema_RefsResolvable(t *testing.T) {
	reportJSON := `{
		"report_id": "4b26ceb5-92a4-4e0b-a6cb-af94ef4b9175",
		"scanned_at": "2025-06-01T08:00:00Z",
		"module": "Form2",
		"min_score": 60,
		"compatible_templates": [
			{
				"template_name": "surat_form2.docx",
				"path": "/data/templates/surat_form2.docx",
				"match_score": 92.5,
				"is_compatible": true,
				"required_found": 5,
				"required_total": 5,
				"recommendation": "Perfectly compatible with Form2."
			}
		],
		"incompatible_templates": []
	}`

	schemaPath, err := filepath.Abs("directory_report.schema.json")
	require.NoError(t, err)

	dataPath := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(reportJSON), 0644))

	assert.NoError(t, schemas.ValidateJSON(schemaPath, dataPath))
}
