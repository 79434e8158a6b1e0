// Package sample builds minimal .docx packages. cmd/docx-sample uses it to
// write a starter template, and the tests use it for fixtures.
package sample

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"os"
	"sort"
	"strings"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

const documentHead = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">
  <w:body>
`

const documentTail = `  </w:body>
</w:document>`

// Block is one body element of a generated document.
type Block interface {
	writeXML(sb *strings.Builder)
}

// Paragraph is a paragraph whose runs hold the given texts, one run each.
// Splitting a placeholder over several runs mimics what Word does when a
// placeholder is typed in pieces.
type Paragraph []string

// Table is a table whose cells each hold one single-run paragraph.
type Table [][]string

func (p Paragraph) writeXML(sb *strings.Builder) {
	sb.WriteString("    <w:p>")
	for _, text := range p {
		sb.WriteString(`<w:r><w:t xml:space="preserve">`)
		xml.EscapeText(sb, []byte(text))
		sb.WriteString(`</w:t></w:r>`)
	}
	sb.WriteString("</w:p>\n")
}

func (t Table) writeXML(sb *strings.Builder) {
	sb.WriteString("    <w:tbl>")
	for _, row := range t {
		sb.WriteString("<w:tr>")
		for _, cell := range row {
			sb.WriteString("<w:tc>")
			Paragraph{cell}.writeXML(sb)
			sb.WriteString("</w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>\n")
}

// Text is a shorthand for single-run paragraphs.
func Text(lines ...string) []Block {
	blocks := make([]Block, len(lines))
	for i, l := range lines {
		blocks[i] = Paragraph{l}
	}
	return blocks
}

// DocumentXML returns word/document.xml for the given body.
func DocumentXML(body ...Block) string {
	var sb strings.Builder
	sb.WriteString(documentHead)
	for _, b := range body {
		b.writeXML(&sb)
	}
	sb.WriteString(documentTail)
	return sb.String()
}

// Write writes a complete .docx package with the given body to w.
func Write(w io.Writer, body ...Block) error {
	return WriteParts(w, map[string]string{
		"[Content_Types].xml":          contentTypes,
		"_rels/.rels":                  packageRels,
		"word/_rels/document.xml.rels": documentRels,
		"word/document.xml":            DocumentXML(body...),
	})
}

// WriteParts writes a zip package holding exactly the given parts. Tests use
// it to build broken packages.
func WriteParts(w io.Writer, parts map[string]string) error {
	zw := zip.NewWriter(w)
	for _, name := range sortedKeys(parts) {
		f, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(f, parts[name]); err != nil {
			return err
		}
	}
	return zw.Close()
}

// WriteFile writes a .docx package with the given body to path.
func WriteFile(path string, body ...Block) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, body...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
