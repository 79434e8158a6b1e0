package docxrender

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Context is the record whose keys are substituted into a template.
type Context map[string]interface{}

// LoadContext reads a UTF-8 JSON file whose top level is an object.
//
// Numbers are kept as json.Number so they render exactly as written in the
// file.
func LoadContext(path string) (Context, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("docxrender: open data: %w", err)
	}
	defer f.Close()

	ctx, err := DecodeContext(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return ctx, nil
}

// DecodeContext decodes a single JSON object from r.
func DecodeContext(r io.Reader) (Context, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	// Editors on Windows like to prepend a BOM.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after top-level value")
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, want object", jsonKind(v))
	}
	return Context(m), nil
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
