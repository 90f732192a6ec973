package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_FourReferenceProfiles(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{"Form2", "Form3", "FormDeleteItem", "FormSignUp"}, r.Names())
}

func TestDefault_Form2Fields(t *testing.T) {
	r := Default()

	profile, ok := r.Get("Form2")
	require.True(t, ok)
	assert.Equal(t, []string{"NAMA_SYARIKAT", "RUJUKAN", "TARIKH", "PROSES", "JENIS_BARANG"}, profile.RequiredFields)
	assert.Equal(t, []string{"PENGECUALIAN", "CATATAN"}, profile.OptionalFields)
}

func TestGet_UnknownModule(t *testing.T) {
	_, ok := Default().Get("Form99")
	assert.False(t, ok)
}

func TestAll_FollowsNamesOrder(t *testing.T) {
	r := Default()

	all := r.All()
	require.Len(t, all, 4)
	assert.Equal(t, "Form2", all[0].Name)
	assert.Equal(t, "FormSignUp", all[3].Name)
}

func TestLoadOverrides_AddsAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.yaml")
	content := `modules:
  - name: Form2
    module_name: form2_Government_custom
    required_fields: [NAMA_SYARIKAT, TARIKH]
    optional_fields: [CATATAN]
  - name: FormAudit
    module_name: Form_Audit
    required_fields: [NO_AUDIT, TARIKH]
    optional_fields: []
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r := Default()
	require.NoError(t, r.LoadOverrides(path))

	replaced, ok := r.Get("Form2")
	require.True(t, ok)
	assert.Equal(t, "form2_Government_custom", replaced.ModuleName)
	assert.Equal(t, []string{"NAMA_SYARIKAT", "TARIKH"}, replaced.RequiredFields)

	added, ok := r.Get("FormAudit")
	require.True(t, ok)
	assert.Equal(t, []string{"NO_AUDIT", "TARIKH"}, added.RequiredFields)
	assert.Contains(t, r.Names(), "FormAudit")
}

func TestLoadOverrides_MissingFile(t *testing.T) {
	r := Default()
	err := r.LoadOverrides(filepath.Join(t.TempDir(), "tiada.yaml"))
	assert.Error(t, err)
}

func TestLoadOverrides_InvalidProfileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.yaml")
	content := `modules:
  - name: ""
    module_name: X
    required_fields: [A]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r := Default()
	err := r.LoadOverrides(path)
	assert.Error(t, err)
}

func TestLoadOverrides_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modules: [unclosed"), 0644))

	err := Default().LoadOverrides(path)
	assert.Error(t, err)
}
