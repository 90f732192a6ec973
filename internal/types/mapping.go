//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
)

// TemplateMapping associates each bracketed placeholder token of one template
// (e.g. "<<TARIKH>>") with the source of its replacement value. Keys use the
// bracketed form exactly as found in the document text.
type TemplateMapping map[string]FieldSource

// MarshalJSON writes the mapping in the persisted wire form, where each field
// source is its compact prefixed-string encoding.
func (m TemplateMapping) MarshalJSON() ([]byte, error) {
	wire := make(map[string]string, len(m))
	for token, source := range m {
		wire[token] = source.Encode()
	}
	return json.Marshal(wire)
}

// UnmarshalJSON parses the persisted wire form back into tagged field sources.
func (m *TemplateMapping) UnmarshalJSON(data []byte) error {
	var wire map[string]string
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	parsed := make(TemplateMapping, len(wire))
	for token, encoded := range wire {
		parsed[token] = DecodeFieldSource(encoded)
	}
	*m = parsed
	return nil
}

// Tokens returns the mapped placeholder tokens in sorted order.
func (m TemplateMapping) Tokens() []string {
	tokens := make([]string, 0, len(m))
	for token := range m {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Clone returns an independent copy of the mapping.
func (m TemplateMapping) Clone() TemplateMapping {
	if m == nil {
		return nil
	}
	out := make(TemplateMapping, len(m))
	for token, source := range m {
		out[token] = source
	}
	return out
}
