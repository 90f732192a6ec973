package document

import (
	"regexp"
	"strings"
)

// WordprocessingML splits a single visible run of text across multiple <w:t>
// elements whenever formatting changes mid-word. Concatenating every run text
// inside a paragraph rejoins placeholders that Word has split.
var (
	tableRe     = regexp.MustCompile(`(?s)<w:tbl(?:\s[^>]*)?>.*?</w:tbl>`)
	paragraphRe = regexp.MustCompile(`(?s)<w:p(?:\s[^>]*)?>(.*?)</w:p>`)
	emptyParaRe = regexp.MustCompile(`<w:p(?:\s[^>]*)?/>`)
	rowRe       = regexp.MustCompile(`(?s)<w:tr(?:\s[^>]*)?>(.*?)</w:tr>`)
	cellRe      = regexp.MustCompile(`(?s)<w:tc(?:\s[^>]*)?>(.*?)</w:tc>`)
	runTextRe   = regexp.MustCompile(`(?s)<w:t(?:\s[^>]*)?>(.*?)</w:t>`)
)

var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// parseBody splits word/document.xml into body paragraph texts and tables.
// Table paragraphs are not duplicated into the body paragraph list, matching
// how word processors present document structure.
func parseBody(xml string) ([]string, []Table) {
	tables := make([]Table, 0)
	for _, block := range tableRe.FindAllString(xml, -1) {
		tables = append(tables, parseTable(block))
	}

	body := tableRe.ReplaceAllString(xml, "")
	return paragraphTexts(body), tables
}

// paragraphTexts returns the text of each paragraph in an XML fragment, in
// order. Self-closing paragraphs contribute an empty string so paragraph
// counts match what an operator sees in Word.
func paragraphTexts(xml string) []string {
	texts := make([]string, 0)
	for _, match := range paragraphRe.FindAllStringSubmatch(xml, -1) {
		texts = append(texts, runText(match[1]))
	}
	for range emptyParaRe.FindAllString(xml, -1) {
		texts = append(texts, "")
	}
	return texts
}

func parseTable(block string) Table {
	table := Table{}
	for _, row := range rowRe.FindAllStringSubmatch(block, -1) {
		cells := make([]string, 0)
		for _, cell := range cellRe.FindAllStringSubmatch(row[1], -1) {
			cells = append(cells, strings.Join(paragraphTexts(cell[1]), "\n"))
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

// runText concatenates every <w:t> run inside a paragraph fragment and
// unescapes XML character entities.
func runText(fragment string) string {
	var sb strings.Builder
	for _, run := range runTextRe.FindAllStringSubmatch(fragment, -1) {
		sb.WriteString(run[1])
	}
	return xmlEntities.Replace(sb.String())
}
