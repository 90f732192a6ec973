// Package doctest builds minimal .docx fixtures for tests. The generated
// archives carry the smallest part set Word tooling accepts: content types,
// package relationships, and word/document.xml, plus optional header and
// footer parts.
package doctest

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`

// Builder assembles the body of a fixture document.
type Builder struct {
	body    strings.Builder
	headers []string
	footers []string
}

// NewBuilder returns an empty fixture builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Paragraph appends a body paragraph with a single text run.
func (b *Builder) Paragraph(text string) *Builder {
	b.body.WriteString(paragraphXML(text))
	return b
}

// SplitParagraph appends a body paragraph whose text is split across several
// runs, the way Word fragments text when formatting changes mid-placeholder.
func (b *Builder) SplitParagraph(parts ...string) *Builder {
	b.body.WriteString("<w:p>")
	for _, part := range parts {
		b.body.WriteString("<w:r><w:t>" + escape(part) + "</w:t></w:r>")
	}
	b.body.WriteString("</w:p>")
	return b
}

// Table appends a table; each row is a slice of cell texts.
func (b *Builder) Table(rows ...[]string) *Builder {
	b.body.WriteString("<w:tbl>")
	for _, row := range rows {
		b.body.WriteString("<w:tr>")
		for _, cell := range row {
			b.body.WriteString("<w:tc>" + paragraphXML(cell) + "</w:tc>")
		}
		b.body.WriteString("</w:tr>")
	}
	b.body.WriteString("</w:tbl>")
	return b
}

// Header adds a header part containing one paragraph.
func (b *Builder) Header(text string) *Builder {
	b.headers = append(b.headers, text)
	return b
}

// Footer adds a footer part containing one paragraph.
func (b *Builder) Footer(text string) *Builder {
	b.footers = append(b.footers, text)
	return b
}

// Write assembles the .docx archive at path.
func (b *Builder) Write(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fixture %s: %w", path, err)
	}
	defer file.Close()

	zw := zip.NewWriter(file)

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		b.body.String() + `</w:body></w:document>`

	parts := map[string]string{
		"[Content_Types].xml":          contentTypesXML,
		"_rels/.rels":                  packageRelsXML,
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": documentRelsXML,
	}
	for i, text := range b.headers {
		parts[fmt.Sprintf("word/header%d.xml", i+1)] = headerFooterXML("hdr", text)
	}
	for i, text := range b.footers {
		parts[fmt.Sprintf("word/footer%d.xml", i+1)] = headerFooterXML("ftr", text)
	}

	// Deterministic part order keeps fixture archives reproducible.
	names := []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/_rels/document.xml.rels"}
	for i := range b.headers {
		names = append(names, fmt.Sprintf("word/header%d.xml", i+1))
	}
	for i := range b.footers {
		names = append(names, fmt.Sprintf("word/footer%d.xml", i+1))
	}

	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create zip entry %s: %w", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			return fmt.Errorf("failed to write zip entry %s: %w", name, err)
		}
	}

	return zw.Close()
}

func paragraphXML(text string) string {
	return "<w:p><w:r><w:t>" + escape(text) + "</w:t></w:r></w:p>"
}

func headerFooterXML(root, text string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		"<w:" + root + ` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		paragraphXML(text) +
		"</w:" + root + ">"
}

func escape(text string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(text)
}
