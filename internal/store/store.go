// Package store persists per-template placeholder mappings in a single JSON
// file: top-level keys are template identifiers, values map bracketed tokens
// to encoded field sources. The whole store is read at startup and rewritten
// on every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/khairulnizam/template-mapper/internal/resolve"
	"github.com/khairulnizam/template-mapper/internal/schemas"
	"github.com/khairulnizam/template-mapper/internal/types"
)

// Store owns an in-memory snapshot of the mapping dictionary mirrored to one
// JSON file. It is not safe for concurrent processes; the tool is
// single-operator by design and the last writer wins.
type Store struct {
	path     string
	mappings map[string]types.TemplateMapping
}

// NewStore returns an unloaded store backed by the given file path. Pass the
// instance to consumers explicitly; there is no package-level singleton.
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		mappings: make(map[string]types.TemplateMapping),
	}
}

// CanonicalID normalizes a template identifier: the base file name with its
// extension case-folded to lower. ".doc" and ".docx" remain distinct
// identifiers on purpose.
func CanonicalID(templateID string) string {
	base := filepath.Base(templateID)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + strings.ToLower(ext)
}

// Load reads the backing file into memory. A missing file initializes an
// empty store and ensures the parent directory exists for the first write. A
// corrupt file also degrades to an empty store; the parse error is returned
// so the caller can warn the operator, but the store stays usable.
func (s *Store) Load() error {
	s.mappings = make(map[string]types.TemplateMapping)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if dir := filepath.Dir(s.path); dir != "" && dir != "." {
			if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
				return fmt.Errorf("failed to create mappings directory %s: %w", dir, mkErr)
			}
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read mappings file %s: %w", s.path, err)
	}

	if err := schemas.ValidateJSONString(mappingStoreSchema, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: mappings file %s does not match the expected shape: %v\n", s.path, err)
	}

	var loaded map[string]types.TemplateMapping
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse mappings file %s: %w", s.path, err)
	}

	for id, mapping := range loaded {
		s.mappings[CanonicalID(id)] = mapping
	}
	return nil
}

// GetMapping is a pure lookup with no side effects.
func (s *Store) GetMapping(templateID string) (types.TemplateMapping, bool) {
	mapping, ok := s.mappings[CanonicalID(templateID)]
	if !ok {
		return nil, false
	}
	return mapping.Clone(), true
}

// IsConfigured reports membership. An explicitly saved empty mapping for a
// placeholder-free template counts as configured.
func (s *Store) IsConfigured(templateID string) bool {
	_, ok := s.mappings[CanonicalID(templateID)]
	return ok
}

// TemplateIDs returns the configured template identifiers, unordered.
func (s *Store) TemplateIDs() []string {
	ids := make([]string, 0, len(s.mappings))
	for id := range s.mappings {
		ids = append(ids, id)
	}
	return ids
}

// SetMapping overwrites the entry for templateID wholesale (no merge with a
// prior mapping) and synchronously persists the entire store. Returns false
// on persistence failure; it never panics.
func (s *Store) SetMapping(templateID string, mapping types.TemplateMapping) bool {
	s.mappings[CanonicalID(templateID)] = mapping.Clone()
	if err := s.persist(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save mappings: %v\n", err)
		return false
	}
	return true
}

// persist rewrites the whole store file. The write goes to a temp file in
// the same directory followed by a rename, so a crash mid-write cannot leave
// a truncated store behind.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.mappings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mappings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create mappings directory %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".mappings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp mappings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write mappings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp mappings file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace mappings file %s: %w", s.path, err)
	}
	return nil
}

// ApplyMapping resolves every mapped token of a configured template against
// the supplied field resolver and returns the token-to-replacement map ready
// for substitution. An unconfigured template yields an empty map: "no
// mapping available" is a normal state, not an error.
func (s *Store) ApplyMapping(resolver resolve.FieldResolver, templateID string) map[string]string {
	mapping, ok := s.GetMapping(templateID)
	if !ok {
		return map[string]string{}
	}

	replacements := make(map[string]string, len(mapping))
	for token, source := range mapping {
		replacements[token] = resolve.Value(resolver, source)
	}
	return replacements
}
