// Package resolve turns field source descriptors into replacement strings by
// reading a caller-supplied form field resolver. The resolver is external to
// this tool: the document-generation pipeline owns it, this package only
// reads from it.
package resolve

import (
	"strings"

	"github.com/khairulnizam/template-mapper/internal/types"
)

// The three field shapes a resolver may present. A field implements exactly
// one of these; dispatch is by interface check, never by attribute probing.

// TextValued is a free-text input.
type TextValued interface {
	Text() string
}

// ChoiceValued is a single-choice input exposing the selected option's
// display text.
type ChoiceValued interface {
	CurrentText() string
}

// BoolValued is a checkbox-style input.
type BoolValued interface {
	IsChecked() bool
}

// FieldResolver presents named form fields. A missing name reports ok=false;
// it is never an error.
type FieldResolver interface {
	Field(name string) (any, bool)
}

// Localized boolean renderings used for BoolValued fields.
const (
	boolYes = "Ya"
	boolNo  = "Tidak"
)

// referencePrefix is the fixed institutional prefix applied by the
// rujukan_full computation.
const referencePrefix = "KE.JB(90)650/05-02/"

// Value resolves a single field source against the resolver. Every failure
// mode (unknown field, unknown shape, unknown computation kind) degrades to
// an empty string so that document generation never aborts on a stale
// mapping.
func Value(resolver FieldResolver, source types.FieldSource) string {
	switch source.Kind {
	case types.KindLiteral:
		return source.Text
	case types.KindComputed:
		return computedValue(resolver, source.ComputedKind)
	default:
		return fieldValue(resolver, source.Name)
	}
}

func fieldValue(resolver FieldResolver, name string) string {
	field, ok := resolver.Field(name)
	if !ok {
		return ""
	}
	switch f := field.(type) {
	case TextValued:
		return f.Text()
	case ChoiceValued:
		return f.CurrentText()
	case BoolValued:
		if f.IsChecked() {
			return boolYes
		}
		return boolNo
	default:
		return ""
	}
}

func computedValue(resolver FieldResolver, kind string) string {
	switch kind {
	case types.ComputedFullAddress:
		return fullAddress(resolver)
	case types.ComputedFullReference:
		return fullReference(resolver)
	case types.ComputedMalayDate:
		return malayDate(resolver)
	default:
		return ""
	}
}

// fullAddress assembles up to three address lines, skipping blank ones.
func fullAddress(resolver FieldResolver) string {
	lines := make([]string, 0, 3)
	for _, name := range []string{"entry_alamat1", "entry_alamat2", "entry_alamat3"} {
		if line := strings.TrimSpace(fieldValue(resolver, name)); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// fullReference prepends the institutional prefix to the reference number.
// An empty reference yields an empty result, not a bare prefix.
func fullReference(resolver FieldResolver) string {
	ref := strings.TrimSpace(fieldValue(resolver, "entry_rujukan"))
	if ref == "" {
		return ""
	}
	return referencePrefix + ref
}
