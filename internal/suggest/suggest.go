// Package suggest pre-selects a likely field source for each placeholder
// during mapping. It is best-effort operator convenience: a default to
// override, never something correctness may rely on.
package suggest

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/khairulnizam/template-mapper/internal/resolve"
	"github.com/khairulnizam/template-mapper/internal/scanning"
	"github.com/khairulnizam/template-mapper/internal/types"
)

// Suggest picks the catalog entry that best matches a bare placeholder
// token. Case-insensitive substring containment in either direction wins
// first, longest contained text first; failing that, fuzzy matching over
// IDs and labels picks the highest-scoring entry. ok is false when nothing
// plausible matches.
func Suggest(token string, entries []resolve.CatalogEntry) (resolve.CatalogEntry, bool) {
	tokenUp := strings.ToUpper(strings.TrimSpace(token))
	if tokenUp == "" {
		return resolve.CatalogEntry{}, false
	}

	best := resolve.CatalogEntry{}
	bestLen := 0
	for _, entry := range entries {
		for _, candidate := range []string{entry.ID, entry.Label} {
			if overlap := containment(tokenUp, strings.ToUpper(candidate)); overlap > bestLen {
				best = entry
				bestLen = overlap
			}
		}
	}
	if bestLen > 0 {
		return best, true
	}

	return fuzzyFallback(tokenUp, entries)
}

// containment returns the length of the contained string when one string
// contains the other, 0 otherwise.
func containment(a, b string) int {
	if b == "" {
		return 0
	}
	if strings.Contains(a, b) {
		return len(b)
	}
	if strings.Contains(b, a) {
		return len(a)
	}
	return 0
}

func fuzzyFallback(token string, entries []resolve.CatalogEntry) (resolve.CatalogEntry, bool) {
	candidates := make([]string, 0, len(entries)*2)
	for _, entry := range entries {
		candidates = append(candidates, entry.ID, entry.Label)
	}

	matches := fuzzy.Find(token, candidates)
	if len(matches) == 0 {
		return resolve.CatalogEntry{}, false
	}

	// Two candidates per entry: index/2 recovers the entry.
	return entries[matches[0].Index/2], true
}

// AutoMap drafts a mapping for a scanned template: every bare token gets its
// suggested catalog entry, decoded through the wire form so COMPUTED
// pseudo-entries become computed sources. Tokens with no suggestion are
// returned bracketed in the unmapped list.
func AutoMap(tokens []string, entries []resolve.CatalogEntry) (types.TemplateMapping, []string) {
	mapping := make(types.TemplateMapping)
	unmapped := []string{}

	for _, token := range tokens {
		entry, ok := Suggest(token, entries)
		if !ok {
			unmapped = append(unmapped, scanning.Bracket(token))
			continue
		}
		mapping[scanning.Bracket(token)] = types.DecodeFieldSource(entry.ID)
	}

	return mapping, unmapped
}
