// Package profiles holds the compiled-in module field profiles: each
// application module's required and optional placeholder vocabulary, used by
// the compatibility scorer. The registry is static configuration; a YAML
// override file can add or replace profiles for deployments with custom
// forms.
package profiles

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/khairulnizam/template-mapper/internal/types"
)

// Registry maps module names to their field profiles.
type Registry struct {
	profiles map[string]types.ModuleProfile
	validate *validator.Validate
}

// Default returns the registry with the four reference module profiles.
func Default() *Registry {
	r := &Registry{
		profiles: make(map[string]types.ModuleProfile),
		validate: validator.New(),
	}

	builtin := []types.ModuleProfile{
		{
			Name:           "Form2",
			ModuleName:     "form2_Government",
			RequiredFields: []string{"NAMA_SYARIKAT", "RUJUKAN", "TARIKH", "PROSES", "JENIS_BARANG"},
			OptionalFields: []string{"PENGECUALIAN", "CATATAN"},
		},
		{
			Name:           "Form3",
			ModuleName:     "Form3_Government",
			RequiredFields: []string{"NAMA_PEGAWAI", "TARIKH_ISLAM", "TARIKH", "RUJUKAN", "BUTIRAN5D"},
			OptionalFields: []string{"CATATAN_AMES", "MAKLUMAT_TAMBAHAN"},
		},
		{
			Name:           "FormDeleteItem",
			ModuleName:     "Form_DeleteItem",
			RequiredFields: []string{"NAMA_ITEM", "TARIKH", "SEBAB_PEMADAMAN"},
			OptionalFields: []string{"KELULUSAN", "CATATAN"},
		},
		{
			Name:           "FormSignUp",
			ModuleName:     "Form_SignUp",
			RequiredFields: []string{"NAMA_PERNIAGAAN", "NO_PENDAFTARAN", "TARIKH", "ALAMAT"},
			OptionalFields: []string{"TELEFON", "EMAIL", "CONTACT"},
		},
	}

	for _, profile := range builtin {
		// Built-in profiles are fixed data; a validation failure here is a
		// programming error.
		if err := r.register(profile); err != nil {
			panic(fmt.Sprintf("invalid built-in module profile %s: %v", profile.Name, err))
		}
	}

	return r
}

func (r *Registry) register(profile types.ModuleProfile) error {
	if err := r.validate.Struct(profile); err != nil {
		return err
	}
	r.profiles[profile.Name] = profile
	return nil
}

// Get looks up a profile by module name.
func (r *Registry) Get(name string) (types.ModuleProfile, bool) {
	profile, ok := r.profiles[name]
	return profile, ok
}

// Names returns the registered module names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered profile in Names() order.
func (r *Registry) All() []types.ModuleProfile {
	out := make([]types.ModuleProfile, 0, len(r.profiles))
	for _, name := range r.Names() {
		out = append(out, r.profiles[name])
	}
	return out
}

// LoadOverrides merges profiles from a YAML file into the registry, adding
// new modules and replacing built-ins of the same name. Each loaded profile
// is validated before registration.
func (r *Registry) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile overrides %s: %w", path, err)
	}

	var overrides struct {
		Modules []types.ModuleProfile `yaml:"modules"`
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse profile overrides %s: %w", path, err)
	}

	for _, profile := range overrides.Modules {
		if err := r.register(profile); err != nil {
			return fmt.Errorf("invalid module profile %q in %s: %w", profile.Name, path, err)
		}
	}
	return nil
}
