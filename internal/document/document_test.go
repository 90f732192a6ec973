package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairulnizam/template-mapper/internal/document/doctest"
)

func writeFixture(t *testing.T, name string, b *doctest.Builder) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, b.Write(path))
	return path
}

func TestOpen_BodyParagraphs(t *testing.T) {
	path := writeFixture(t, "letter.docx", doctest.NewBuilder().
		Paragraph("Kepada <<NAMA_SYARIKAT>>").
		Paragraph("Rujukan: <<RUJUKAN>>"))

	doc, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Kepada <<NAMA_SYARIKAT>>", "Rujukan: <<RUJUKAN>>"}, doc.Paragraphs)
	assert.Empty(t, doc.Tables)
}

func TestOpen_SplitRunsRejoined(t *testing.T) {
	path := writeFixture(t, "split.docx", doctest.NewBuilder().
		SplitParagraph("Tarikh: <<TAR", "IKH>>"))

	doc, err := Open(path)
	require.NoError(t, err)

	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "Tarikh: <<TARIKH>>", doc.Paragraphs[0])
}

func TestOpen_TableCellsRowMajor(t *testing.T) {
	path := writeFixture(t, "table.docx", doctest.NewBuilder().
		Paragraph("intro").
		Table(
			[]string{"<<PROSES>>", "<<JENIS_BARANG>>"},
			[]string{"nilai", "<<AMAUN>>"},
		))

	doc, err := Open(path)
	require.NoError(t, err)

	require.Len(t, doc.Tables, 1)
	assert.Equal(t, [][]string{
		{"<<PROSES>>", "<<JENIS_BARANG>>"},
		{"nilai", "<<AMAUN>>"},
	}, doc.Tables[0].Rows)

	// Table paragraphs are not duplicated into the body list.
	assert.Equal(t, []string{"intro"}, doc.Paragraphs)
}

func TestOpen_HeadersAndFooters(t *testing.T) {
	path := writeFixture(t, "hf.docx", doctest.NewBuilder().
		Paragraph("body").
		Header("<<RUJUKAN>> header").
		Footer("page footer <<TARIKH>>"))

	doc, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"<<RUJUKAN>> header"}, doc.Headers)
	assert.Equal(t, []string{"page footer <<TARIKH>>"}, doc.Footers)
}

func TestOpen_XMLEntitiesUnescaped(t *testing.T) {
	path := writeFixture(t, "entities.docx", doctest.NewBuilder().
		Paragraph("Syarikat A & B <contoh>"))

	doc, err := Open(path)
	require.NoError(t, err)

	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "Syarikat A & B <contoh>", doc.Paragraphs[0])
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "tiada.docx"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestOpen_LegacyDocRejected(t *testing.T) {
	_, err := Open("surat.doc")

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ".doc", formatErr.Ext)
}

func TestOpen_CaseFoldedExtension(t *testing.T) {
	path := writeFixture(t, "UPPER.DOCX", doctest.NewBuilder().Paragraph("ok"))

	doc, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, doc.Paragraphs)
}

func TestContainers_ScanOrder(t *testing.T) {
	doc := &Document{
		Paragraphs: []string{"p1", "p2"},
		Tables:     []Table{{Rows: [][]string{{"c1", "c2"}, {"c3"}}}},
		Headers:    []string{"h1"},
		Footers:    []string{"f1"},
	}

	assert.Equal(t, []string{"p1", "p2", "c1", "c2", "c3", "h1", "f1"}, doc.Containers())
}
