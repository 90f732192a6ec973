package scanning

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairulnizam/template-mapper/internal/document"
	"github.com/khairulnizam/template-mapper/internal/document/doctest"
)

func docWith(paragraphs ...string) *document.Document {
	return &document.Document{Paragraphs: paragraphs}
}

func TestScan_SortedAndDeduplicated(t *testing.T) {
	doc := docWith(
		"Kepada <<NAMA_SYARIKAT>>",
		"Ulangan <<NAMA_SYARIKAT>> dan <<ALAMAT1>>",
	)

	assert.Equal(t, []string{"ALAMAT1", "NAMA_SYARIKAT"}, Scan(doc))
}

func TestScan_AllContainers(t *testing.T) {
	doc := &document.Document{
		Paragraphs: []string{"<<BODY>>"},
		Tables: []document.Table{
			{Rows: [][]string{{"<<CELL_A>>", "teks"}, {"<<CELL_B>>"}}},
		},
		Headers: []string{"<<HEADER>>"},
		Footers: []string{"<<FOOTER>>"},
	}

	assert.Equal(t, []string{"BODY", "CELL_A", "CELL_B", "FOOTER", "HEADER"}, Scan(doc))
}

func TestScan_EmptyAndWhitespaceTokensExcluded(t *testing.T) {
	// Scenario C: duplicates collapse, the empty marker is skipped here and
	// flagged by the structural validator instead.
	doc := docWith("<<ALAMAT1>> <<ALAMAT1>> <<>> <<   >>")

	assert.Equal(t, []string{"ALAMAT1"}, Scan(doc))
}

func TestScan_MalformedMarkersProduceNoMatch(t *testing.T) {
	doc := docWith(
		"unclosed <<TIADA_PENUTUP",
		"stray >> brackets <<",
		"<<LUAR<<DALAM>>", // reopened before closing: only the inner span matches
	)

	assert.Equal(t, []string{"DALAM"}, Scan(doc))
}

func TestScan_CaseSensitive(t *testing.T) {
	doc := docWith("<<Tarikh>> <<TARIKH>>")

	assert.Equal(t, []string{"TARIKH", "Tarikh"}, Scan(doc))
}

func TestScan_Idempotent(t *testing.T) {
	doc := docWith("<<B>> <<A>> <<C>>")

	first := Scan(doc)
	second := Scan(doc)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"A", "B", "C"}, first)
}

func TestScanBracketed_Projection(t *testing.T) {
	doc := docWith("<<TARIKH>> dan <<RUJUKAN>>")

	assert.Equal(t, []string{"<<RUJUKAN>>", "<<TARIKH>>"}, ScanBracketed(doc))
}

func TestScanFile_ReadsRealDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surat.docx")
	require.NoError(t, doctest.NewBuilder().
		Paragraph("Rujukan: <<RUJUKAN>>").
		Table([]string{"<<PROSES>>"}).
		Write(path))

	assert.Equal(t, []string{"PROSES", "RUJUKAN"}, ScanFile(path))
}

func TestScanFile_MissingFileDegradesToEmpty(t *testing.T) {
	tokens := ScanFile(filepath.Join(t.TempDir(), "tiada.docx"))

	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestBracketUnbracket(t *testing.T) {
	assert.Equal(t, "<<TARIKH>>", Bracket("TARIKH"))
	assert.Equal(t, "TARIKH", Unbracket("<<TARIKH>>"))
	assert.Equal(t, "TARIKH", Unbracket("TARIKH"))
}
