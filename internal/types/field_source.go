// Package types provides type definitions for structured data used throughout the template-mapper system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// FieldSourceKind discriminates the origin of a placeholder's replacement value.
type FieldSourceKind string

const (
	// KindFormField reads a named field from a live form at generation time
	KindFormField FieldSourceKind = "form_field"
	// KindComputed derives the value via a named computation
	KindComputed FieldSourceKind = "computed"
	// KindLiteral is a fixed string typed once by the operator
	KindLiteral FieldSourceKind = "literal"
)

// Serialized prefixes for the persisted mapping file format.
// A plain form field is stored as the bare field name with no prefix.
const (
	computedPrefix = "COMPUTED:"
	customPrefix   = "CUSTOM:"
)

// Computation kinds understood by the resolver. The set is closed; unknown
// kinds resolve to an empty string rather than an error.
const (
	ComputedFullAddress   = "alamat_full"
	ComputedFullReference = "rujukan_full"
	ComputedMalayDate     = "tarikh_malay"
)

// FieldSource describes where a placeholder's replacement value comes from.
// Exactly one payload field is meaningful, selected by Kind.
type FieldSource struct {
	Kind FieldSourceKind

	// Name is the form field name (KindFormField)
	Name string
	// ComputedKind names the computation (KindComputed)
	ComputedKind string
	// Text is the fixed literal value (KindLiteral)
	Text string
}

// FormField returns a FieldSource that reads the named form field.
func FormField(name string) FieldSource {
	return FieldSource{Kind: KindFormField, Name: name}
}

// Computed returns a FieldSource derived by the named computation.
func Computed(kind string) FieldSource {
	return FieldSource{Kind: KindComputed, ComputedKind: kind}
}

// Literal returns a FieldSource with a fixed value.
func Literal(text string) FieldSource {
	return FieldSource{Kind: KindLiteral, Text: text}
}

// Encode serializes the field source to the compact string form used by the
// mapping file: "COMPUTED:kind", "CUSTOM:text", or the bare field name.
func (fs FieldSource) Encode() string {
	switch fs.Kind {
	case KindComputed:
		return computedPrefix + fs.ComputedKind
	case KindLiteral:
		return customPrefix + fs.Text
	default:
		return fs.Name
	}
}

// DecodeFieldSource parses the compact string form back into a FieldSource.
// Any string without a recognized prefix is a form field reference.
func DecodeFieldSource(s string) FieldSource {
	if strings.HasPrefix(s, computedPrefix) {
		return Computed(strings.TrimPrefix(s, computedPrefix))
	}
	if strings.HasPrefix(s, customPrefix) {
		return Literal(strings.TrimPrefix(s, customPrefix))
	}
	return FormField(s)
}

// String implements fmt.Stringer for diagnostics.
func (fs FieldSource) String() string {
	switch fs.Kind {
	case KindComputed:
		return fmt.Sprintf("computed(%s)", fs.ComputedKind)
	case KindLiteral:
		return fmt.Sprintf("literal(%q)", fs.Text)
	default:
		return fmt.Sprintf("form_field(%s)", fs.Name)
	}
}
