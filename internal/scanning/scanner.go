// Package scanning extracts placeholder tokens of the form <<NAME>> from the
// text containers of a Word template.
package scanning

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/khairulnizam/template-mapper/internal/document"
)

// tokenRe matches the shortest run of characters between a literal << and the
// nearest following >>. The character class forbids angle brackets inside the
// captured span, so nested or unclosed markers simply fail to match instead
// of producing an error.
var tokenRe = regexp.MustCompile(`<<([^<>]+)>>`)

// Scan returns the deduplicated, lexicographically sorted bare token names
// found anywhere in the document: body paragraphs, table cells (row-major),
// headers and footers. Matching is case-sensitive and exact-text.
func Scan(doc *document.Document) []string {
	seen := make(map[string]struct{})
	for _, text := range doc.Containers() {
		for _, token := range extractTokens(text) {
			seen[token] = struct{}{}
		}
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// ScanBracketed is Scan with every token in its bracketed <<NAME>> form, the
// representation used as mapping keys.
func ScanBracketed(doc *document.Document) []string {
	bare := Scan(doc)
	bracketed := make([]string, len(bare))
	for i, token := range bare {
		bracketed[i] = Bracket(token)
	}
	return bracketed
}

// ScanFile opens a template and scans it. A file that is missing, corrupt or
// in an unsupported format yields an empty result and a stderr warning; the
// caller never sees an error because scans are invoked opportunistically
// while the operator browses templates.
func ScanFile(path string) []string {
	doc, err := document.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot scan %s: %v\n", path, err)
		return []string{}
	}
	return Scan(doc)
}

// extractTokens is the single extraction primitive: bare token bodies in
// text order, excluding bodies that are empty or whitespace-only. Those are
// the structural validator's concern, not the scanner's.
func extractTokens(text string) []string {
	matches := tokenRe.FindAllStringSubmatch(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		if strings.TrimSpace(match[1]) == "" {
			continue
		}
		tokens = append(tokens, match[1])
	}
	return tokens
}

// Bracket converts a bare token name to its in-document form.
func Bracket(token string) string {
	return "<<" + token + ">>"
}

// Unbracket strips a single leading << and trailing >> if present.
func Unbracket(token string) string {
	token = strings.TrimPrefix(token, "<<")
	return strings.TrimSuffix(token, ">>")
}
