package sample

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Paragraph{"Hola ", "{{name}}"}, Table{{"a", "b & c"}}))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(data)
	}

	require.Contains(t, parts, "[Content_Types].xml")
	require.Contains(t, parts, "_rels/.rels")
	require.Contains(t, parts, "word/_rels/document.xml.rels")
	doc := parts["word/document.xml"]
	assert.Contains(t, doc, `<w:r><w:t xml:space="preserve">Hola </w:t></w:r><w:r><w:t xml:space="preserve">{{name}}</w:t></w:r>`)
	assert.Contains(t, doc, "<w:tbl><w:tr><w:tc>")
	assert.Contains(t, doc, "b &amp; c")
}

func TestWriteParts_SortedNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteParts(&buf, map[string]string{"b": "2", "a": "1", "c": "3"}))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plantilla.docx")
	require.NoError(t, WriteFile(path, Text("x")...))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 4)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "p.docx"))
	assert.Error(t, err)
}
