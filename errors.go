package docxrender

import "fmt"

// NotFoundError reports that an input file (data or template) does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("docxrender: %s not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError reports a data file that is not a JSON object.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("docxrender: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError reports a template that is not a readable .docx package.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("docxrender: invalid template: %v", e.Err)
	}
	return fmt.Sprintf("docxrender: invalid template %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RenderError reports a placeholder or block tag that could not be
// substituted. Text holds the paragraph text as written in the template.
type RenderError struct {
	Text string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("docxrender: render %q: %v", e.Text, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist the rendered document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("docxrender: write: %v", e.Err)
	}
	return fmt.Sprintf("docxrender: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
