package document

import (
	"archive/zip"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// Table is an ordered grid of cell texts. Each cell's text is its paragraphs
// joined with newlines.
type Table struct {
	Rows [][]string
}

// Document is the read-only view of a Word template used by the scanner and
// validator: ordered body paragraphs, tables in document order (cells
// row-major), and header/footer paragraphs per section part.
type Document struct {
	Paragraphs []string
	Tables     []Table
	Headers    []string
	Footers    []string
}

// Containers returns every text container of the document in scan order:
// body paragraphs, then table cells row-major, then headers, then footers.
func (d *Document) Containers() []string {
	out := make([]string, 0, len(d.Paragraphs))
	out = append(out, d.Paragraphs...)
	for _, table := range d.Tables {
		for _, row := range table.Rows {
			out = append(out, row...)
		}
	}
	out = append(out, d.Headers...)
	out = append(out, d.Footers...)
	return out
}

// Open loads a .docx template from disk. The extension check is case-folded;
// legacy .doc files yield an UnsupportedFormatError rather than a parse
// attempt, since the binary format cannot be read as a zip archive.
func Open(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".docx" {
		return nil, &UnsupportedFormatError{Path: path, Ext: ext}
	}

	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	content := reader.Editable().GetContent()
	if err := reader.Close(); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	doc := &Document{}
	doc.Paragraphs, doc.Tables = parseBody(content)

	// The docx library does not expose header/footer text, so those parts
	// are read straight from the archive.
	headers, footers, err := readHeaderFooterParts(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	doc.Headers = headers
	doc.Footers = footers

	return doc, nil
}

// readHeaderFooterParts extracts paragraph texts from word/headerN.xml and
// word/footerN.xml, in part-name order for determinism.
func readHeaderFooterParts(path string) (headers, footers []string, err error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer archive.Close()

	names := make([]string, 0, len(archive.File))
	parts := make(map[string]*zip.File, len(archive.File))
	for _, file := range archive.File {
		if isHeaderPart(file.Name) || isFooterPart(file.Name) {
			names = append(names, file.Name)
			parts[file.Name] = file
		}
	}
	sort.Strings(names)

	for _, name := range names {
		rc, openErr := parts[name].Open()
		if openErr != nil {
			return nil, nil, openErr
		}
		data, readErr := io.ReadAll(rc)
		closeErr := rc.Close()
		if readErr != nil {
			return nil, nil, readErr
		}
		if closeErr != nil {
			return nil, nil, closeErr
		}

		texts := paragraphTexts(string(data))
		if isHeaderPart(name) {
			headers = append(headers, texts...)
		} else {
			footers = append(footers, texts...)
		}
	}

	return headers, footers, nil
}

func isHeaderPart(name string) bool {
	return strings.HasPrefix(name, "word/header") && strings.HasSuffix(name, ".xml")
}

func isFooterPart(name string) bool {
	return strings.HasPrefix(name, "word/footer") && strings.HasSuffix(name, ".xml")
}
