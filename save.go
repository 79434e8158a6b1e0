package docxrender

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
)

// Save writes the document to w.
func (t *DocxTemplate) Save(w io.Writer) error {
	var buf bytes.Buffer
	if _, err := t.doc.WriteTo(&buf); err != nil {
		return &WriteError{Err: err}
	}
	if err := canonicalize(w, buf.Bytes()); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// SaveFile writes the document to path, replacing any existing file. The
// document is written to a temporary file in the same directory first, so a
// failed save leaves the previous file (or no file) behind.
func (t *DocxTemplate) SaveFile(path string) (err error) {
	var buf bytes.Buffer
	if err := t.Save(&buf); err != nil {
		var we *WriteError
		if errors.As(err, &we) {
			we.Path = path
		}
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Text returns the plain text of the document body: one line per paragraph,
// table rows as "| a | b |", pictures as [IMAGE].
func (t *DocxTemplate) Text() string {
	var sb strings.Builder
	writeItems(&sb, t.doc.Document.Body.Items)
	return sb.String()
}

func writeItems(sb *strings.Builder, items []interface{}) {
	for _, it := range items {
		switch item := it.(type) {
		case *docx.Paragraph:
			writeParagraph(sb, item)
			sb.WriteByte('\n')
		case *docx.Table:
			writeTable(sb, item)
		}
	}
}

func writeTable(sb *strings.Builder, tbl *docx.Table) {
	for _, row := range tbl.TableRows {
		sb.WriteString("|")
		for _, cell := range row.TableCells {
			sb.WriteByte(' ')
			for i, p := range cell.Paragraphs {
				if i > 0 {
					sb.WriteByte(' ')
				}
				writeParagraph(sb, p)
			}
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
		for _, cell := range row.TableCells {
			for _, nested := range cell.Tables {
				writeTable(sb, nested)
			}
		}
	}
}

func writeParagraph(sb *strings.Builder, p *docx.Paragraph) {
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			switch c := rc.(type) {
			case *docx.Text:
				sb.WriteString(c.Text)
			case *docx.Tab:
				sb.WriteByte('\t')
			case *docx.BarterRabbet:
				sb.WriteByte('\n')
			case *docx.Drawing:
				sb.WriteString("[IMAGE]")
			}
		}
	}
}
