//nolint:revive // types is a standard Go package name pattern
package types

// ModuleProfile declares the placeholder vocabulary of one application module.
// RequiredFields must all be present in a template for compatibility;
// OptionalFields contribute partial credit to the match score.
// Field names are bare tokens (no << >> brackets).
type ModuleProfile struct {
	Name           string   `json:"name" yaml:"name" validate:"required"`
	ModuleName     string   `json:"module_name" yaml:"module_name" validate:"required"`
	RequiredFields []string `json:"required_fields" yaml:"required_fields" validate:"dive,required"`
	OptionalFields []string `json:"optional_fields" yaml:"optional_fields" validate:"dive,required"`
}
