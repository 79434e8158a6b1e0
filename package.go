package docxrender

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"sort"
)

const (
	contentTypesPart = "[Content_Types].xml"
	documentPart     = "word/document.xml"
	contentTypesNS   = "http://schemas.openxmlformats.org/package/2006/content-types"
)

type contentDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypes struct {
	XMLName   xml.Name          `xml:"Types"`
	Xmlns     string            `xml:"xmlns,attr"`
	Defaults  []contentDefault  `xml:"Default"`
	Overrides []contentOverride `xml:"Override"`
}

// imageDefaults are registered so injected pictures open in Word.
var imageDefaults = []contentDefault{
	{Extension: "png", ContentType: "image/png"},
	{Extension: "jpg", ContentType: "image/jpeg"},
	{Extension: "jpeg", ContentType: "image/jpeg"},
	{Extension: "gif", ContentType: "image/gif"},
}

// ensureContentTypes copies the package, adding the image extensions that
// [Content_Types].xml is missing. It also rejects packages that are not
// Word documents.
func ensureContentTypes(r io.ReaderAt, size int64) (io.ReaderAt, int64, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, 0, err
	}

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	var ctFound, docFound bool
	for _, f := range zr.File {
		var data []byte
		switch f.Name {
		case contentTypesPart:
			ctFound = true
			raw, err := readZipFile(f)
			if err != nil {
				return nil, 0, err
			}
			if data, err = addImageDefaults(raw); err != nil {
				return nil, 0, err
			}
		default:
			if f.Name == documentPart {
				docFound = true
			}
			if data, err = readZipFile(f); err != nil {
				return nil, 0, err
			}
		}

		fw, err := w.Create(f.Name)
		if err != nil {
			return nil, 0, err
		}
		if _, err := fw.Write(data); err != nil {
			return nil, 0, err
		}
	}
	if !ctFound {
		return nil, 0, errors.New(contentTypesPart + " not found")
	}
	if !docFound {
		return nil, 0, errors.New(documentPart + " not found")
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}

	b := buf.Bytes()
	return bytes.NewReader(b), int64(len(b)), nil
}

func addImageDefaults(raw []byte) ([]byte, error) {
	var t contentTypes
	if err := xml.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	t.Xmlns = contentTypesNS

	have := make(map[string]bool, len(t.Defaults))
	for _, d := range t.Defaults {
		have[d.Extension] = true
	}
	for _, d := range imageDefaults {
		if !have[d.Extension] {
			t.Defaults = append(t.Defaults, d)
		}
	}

	out, err := xml.Marshal(t)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// canonicalize rewrites a zip package with its entries in a fixed order
// ([Content_Types].xml first, the rest by name) so that rendering the same
// input twice yields identical bytes.
func canonicalize(dst io.Writer, pkg []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return err
	}

	files := make([]*zip.File, len(zr.File))
	copy(files, zr.File)
	sort.SliceStable(files, func(i, j int) bool {
		a, b := files[i].Name, files[j].Name
		if a == contentTypesPart || b == contentTypesPart {
			return a == contentTypesPart && b != contentTypesPart
		}
		return a < b
	})

	w := zip.NewWriter(dst)
	for _, f := range files {
		data, err := readZipFile(f)
		if err != nil {
			return err
		}
		fw, err := w.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate})
		if err != nil {
			return err
		}
		if _, err := fw.Write(data); err != nil {
			return err
		}
	}
	return w.Close()
}
