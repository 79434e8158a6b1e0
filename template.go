// Package docxrender fills the placeholders of .docx templates with values
// from a JSON record.
package docxrender

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"regexp"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/fumiama/go-docx"
)

// Injector is implemented by values that put document content (pictures,
// HTML fragments) where their placeholder was. Returning nil items keeps the
// paragraph; returning items replaces it.
type Injector interface {
	Inject(doc *docx.Docx, p *docx.Paragraph) ([]interface{}, error)
}

// MissingKeyPolicy decides what a placeholder without a matching key renders.
type MissingKeyPolicy int

const (
	// MissingKeyError fails the render with a *RenderError.
	MissingKeyError MissingKeyPolicy = iota
	// MissingKeyZero renders the placeholder as empty text.
	MissingKeyZero
)

func (p MissingKeyPolicy) String() string {
	switch p {
	case MissingKeyError:
		return "error"
	case MissingKeyZero:
		return "zero"
	default:
		return fmt.Sprintf("MissingKeyPolicy(%d)", int(p))
	}
}

// ParseMissingKeyPolicy accepts "error" or "zero". The empty string means
// the default, MissingKeyError.
func ParseMissingKeyPolicy(s string) (MissingKeyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return MissingKeyError, nil
	case "zero":
		return MissingKeyZero, nil
	default:
		return MissingKeyError, fmt.Errorf("docxrender: unknown missing-key policy %q", s)
	}
}

// Option configures a DocxTemplate.
type Option func(*DocxTemplate)

// WithMissingKey sets the policy for placeholders with no matching key.
func WithMissingKey(p MissingKeyPolicy) Option {
	return func(t *DocxTemplate) {
		t.missingKey = p
	}
}

// DocxTemplate is an opened .docx template.
type DocxTemplate struct {
	doc        *docx.Docx
	funcs      template.FuncMap
	missingKey MissingKeyPolicy

	// injectors maps inject markers to the values they stand for
	injectors map[string]Injector
	injectSeq int
}

// New reads a template from r.
func New(r io.ReaderAt, size int64, opts ...Option) (*DocxTemplate, error) {
	r, size, err := ensureContentTypes(r, size)
	if err != nil {
		return nil, &FormatError{Err: err}
	}

	doc, err := docx.Parse(r, size)
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	t := &DocxTemplate{
		doc:       doc,
		funcs:     make(template.FuncMap),
		injectors: make(map[string]Injector),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Open reads the template stored at path.
func Open(path string, opts ...Option) (*DocxTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("docxrender: open template: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("docxrender: stat template: %w", err)
	}
	if fi.IsDir() {
		return nil, &FormatError{Path: path, Err: errors.New("is a directory")}
	}

	t, err := New(f, fi.Size(), opts...)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return t, nil
}

// Funcs registers custom functions. They take precedence over the built-in
// bullets, lines, inject, html and image helpers.
func (t *DocxTemplate) Funcs(f template.FuncMap) {
	for k, v := range f {
		t.funcs[k] = v
	}
}

// Render substitutes data into the template in place. data is usually a
// Context; structs and other maps work too.
func (t *DocxTemplate) Render(data interface{}) error {
	if ctx, ok := data.(Context); ok {
		data = map[string]interface{}(ctx)
	}
	newItems, err := t.traverseItems(t.doc.Document.Body.Items, data)
	if err != nil {
		return err
	}
	t.doc.Document.Body.Items = newItems
	return nil
}

func (t *DocxTemplate) traverseItems(items []interface{}, data interface{}) ([]interface{}, error) {
	var newItems []interface{}
	i := 0
	for i < len(items) {
		item := items[i]

		if p, ok := item.(*docx.Paragraph); ok {
			text := t.getParagraphText(p)

			if variable, sliceExpr, isFor := parseForTag(text); isFor {
				endIndex, err := t.findBlockEnd(items, i+1, "endfor")
				if err != nil {
					return nil, &RenderError{Text: text, Err: err}
				}
				loopItems, err := t.executeLoop(items[i+1:endIndex], variable, sliceExpr, data)
				if err != nil {
					return nil, wrapRender(text, err)
				}
				newItems = append(newItems, loopItems...)
				i = endIndex + 1
				continue
			}

			if condExpr, isIf := parseIfTag(text); isIf {
				endIndex, err := t.findBlockEnd(items, i+1, "endif")
				if err != nil {
					return nil, &RenderError{Text: text, Err: err}
				}
				ifItems, err := t.executeIf(items[i+1:endIndex], condExpr, data)
				if err != nil {
					return nil, wrapRender(text, err)
				}
				newItems = append(newItems, ifItems...)
				i = endIndex + 1
				continue
			}
		}

		switch it := item.(type) {
		case *docx.Paragraph:
			replacedItems, err := t.processParagraph(it, data)
			if err != nil {
				return nil, err
			}
			if replacedItems != nil {
				newItems = append(newItems, replacedItems...)
			} else {
				newItems = append(newItems, it)
			}
		case *docx.Table:
			if err := t.processTable(it, data); err != nil {
				return nil, err
			}
			newItems = append(newItems, it)
		default:
			newItems = append(newItems, it)
		}
		i++
	}
	return newItems, nil
}

// wrapRender keeps the innermost RenderError so the reported text is the
// paragraph that actually failed.
func wrapRender(text string, err error) error {
	var re *RenderError
	if errors.As(err, &re) {
		return err
	}
	return &RenderError{Text: text, Err: err}
}

// parseForTag recognises a paragraph that is exactly {{for var in expr}}.
func parseForTag(text string) (string, string, bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "{{for ") && strings.HasSuffix(text, "}}") {
		content := strings.TrimSuffix(strings.TrimPrefix(text, "{{for "), "}}")
		if strings.Contains(content, "{{") || strings.Contains(content, "}}") {
			return "", "", false
		}
		parts := strings.Split(content, " in ")
		if len(parts) == 2 {
			return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
		}
	}
	return "", "", false
}

// parseIfTag recognises a paragraph that is exactly {{if expr}}.
func parseIfTag(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "{{if ") && strings.HasSuffix(text, "}}") {
		content := strings.TrimSuffix(strings.TrimPrefix(text, "{{if "), "}}")
		if !strings.Contains(content, "{{") && !strings.Contains(content, "}}") {
			return strings.TrimSpace(content), true
		}
	}
	return "", false
}

func (t *DocxTemplate) findBlockEnd(items []interface{}, start int, endTag string) (int, error) {
	depth := 0
	for i := start; i < len(items); i++ {
		p, ok := items[i].(*docx.Paragraph)
		if !ok {
			continue
		}
		text := t.getParagraphText(p)
		if _, _, isFor := parseForTag(text); isFor {
			depth++
			continue
		}
		if _, isIf := parseIfTag(text); isIf {
			depth++
			continue
		}
		switch strings.TrimSpace(text) {
		case "{{endfor}}", "{{endif}}":
			if depth == 0 {
				if strings.TrimSpace(text) != "{{"+endTag+"}}" {
					return -1, fmt.Errorf("found %s, want {{%s}}", strings.TrimSpace(text), endTag)
				}
				return i, nil
			}
			depth--
		}
	}
	return -1, fmt.Errorf("block end {{%s}} not found", endTag)
}

func (t *DocxTemplate) executeLoop(block []interface{}, variable, sliceExpr string, data interface{}) ([]interface{}, error) {
	slice, err := t.evaluateExpression(sliceExpr, data)
	if err != nil {
		return nil, err
	}
	if slice == nil {
		return nil, nil
	}

	sliceVal := reflect.ValueOf(slice)
	if sliceVal.Kind() != reflect.Slice && sliceVal.Kind() != reflect.Array {
		return nil, fmt.Errorf("%s is %T, not a list", sliceExpr, slice)
	}

	var result []interface{}
	for i := 0; i < sliceVal.Len(); i++ {
		ctx := loopContext(data, variable, sliceVal.Index(i).Interface())

		clonedBlock := t.cloneBlock(block)
		processedBlock, err := t.traverseItems(clonedBlock, ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, processedBlock...)
	}
	return result, nil
}

// loopContext exposes the loop variable next to the enclosing keys.
func loopContext(data interface{}, variable string, item interface{}) map[string]interface{} {
	ctx := make(map[string]interface{})
	if parent, ok := data.(map[string]interface{}); ok {
		for k, v := range parent {
			ctx[k] = v
		}
	}
	ctx[variable] = item
	return ctx
}

func (t *DocxTemplate) executeIf(block []interface{}, condExpr string, data interface{}) ([]interface{}, error) {
	val, err := t.evaluateExpression(condExpr, data)
	if err != nil {
		return nil, err
	}
	if !truthy(val) {
		return nil, nil
	}
	return t.traverseItems(t.cloneBlock(block), data)
}

func truthy(val interface{}) bool {
	if val == nil {
		return false
	}
	if n, ok := val.(json.Number); ok {
		f, err := n.Float64()
		return err == nil && f != 0
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.String() != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !v.IsNil()
	default:
		return true
	}
}

func (t *DocxTemplate) cloneBlock(items []interface{}) []interface{} {
	newItems := make([]interface{}, len(items))
	for i, it := range items {
		switch item := it.(type) {
		case *docx.Paragraph:
			newItems[i] = cloneParagraph(item)
		case *docx.Table:
			newItems[i] = cloneTable(item)
		default:
			newItems[i] = item
		}
	}
	return newItems
}

func cloneTable(tbl *docx.Table) *docx.Table {
	newT := *tbl
	newT.TableRows = make([]*docx.WTableRow, len(tbl.TableRows))
	for i, row := range tbl.TableRows {
		newT.TableRows[i] = cloneRow(row)
	}
	return &newT
}

func cloneRow(row *docx.WTableRow) *docx.WTableRow {
	newRow := *row
	newRow.TableCells = make([]*docx.WTableCell, len(row.TableCells))
	for i, cell := range row.TableCells {
		newRow.TableCells[i] = cloneCell(cell)
	}
	if row.TableRowProperties != nil {
		p := *row.TableRowProperties
		newRow.TableRowProperties = &p
	}
	return &newRow
}

func cloneCell(cell *docx.WTableCell) *docx.WTableCell {
	newCell := *cell
	newCell.Paragraphs = make([]*docx.Paragraph, len(cell.Paragraphs))
	for i, p := range cell.Paragraphs {
		newCell.Paragraphs[i] = cloneParagraph(p)
	}
	newCell.Tables = make([]*docx.Table, len(cell.Tables))
	for i, tbl := range cell.Tables {
		newCell.Tables[i] = cloneTable(tbl)
	}
	return &newCell
}

func cloneParagraph(p *docx.Paragraph) *docx.Paragraph {
	newP := *p
	newP.Children = make([]interface{}, len(p.Children))
	for i, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			newP.Children[i] = child
			continue
		}
		newRun := *run
		newRun.Children = make([]interface{}, len(run.Children))
		for j, rc := range run.Children {
			if txt, ok := rc.(*docx.Text); ok {
				newTxt := *txt
				newRun.Children[j] = &newTxt
			} else {
				newRun.Children[j] = rc
			}
		}
		newP.Children[i] = &newRun
	}
	return &newP
}

func (t *DocxTemplate) processTable(table *docx.Table, data interface{}) error {
	var newRows []*docx.WTableRow

	for _, row := range table.TableRows {
		rangeExpr, rangeTag, hasRange := t.checkRowRange(row)
		if !hasRange {
			if err := t.processRow(row, data); err != nil {
				return err
			}
			newRows = append(newRows, row)
			continue
		}

		slice, err := t.evaluateExpression(rangeExpr, data)
		if err != nil {
			return &RenderError{Text: rangeTag, Err: err}
		}
		if slice == nil {
			continue
		}
		sliceVal := reflect.ValueOf(slice)
		if sliceVal.Kind() != reflect.Slice && sliceVal.Kind() != reflect.Array {
			return &RenderError{Text: rangeTag, Err: fmt.Errorf("%s is %T, not a list", rangeExpr, slice)}
		}
		for i := 0; i < sliceVal.Len(); i++ {
			clonedRow := cloneRow(row)
			t.cleanRowRangeTag(clonedRow, rangeTag)
			if err := t.processRow(clonedRow, sliceVal.Index(i).Interface()); err != nil {
				return err
			}
			newRows = append(newRows, clonedRow)
		}
	}

	table.TableRows = newRows
	return nil
}

func (t *DocxTemplate) processRow(row *docx.WTableRow, data interface{}) error {
	for _, cell := range row.TableCells {
		var newParagraphs []*docx.Paragraph
		for _, p := range cell.Paragraphs {
			items, err := t.processParagraph(p, data)
			if err != nil {
				return err
			}
			if items == nil {
				newParagraphs = append(newParagraphs, p)
				continue
			}
			for _, item := range items {
				if np, ok := item.(*docx.Paragraph); ok {
					newParagraphs = append(newParagraphs, np)
				}
			}
		}
		cell.Paragraphs = newParagraphs
		for _, tbl := range cell.Tables {
			if err := t.processTable(tbl, data); err != nil {
				return err
			}
		}
	}
	return nil
}

var rowRangeTag = regexp.MustCompile(`^\s*(\{\{-?\s*range\s+(.+?)\s*-?\}\})`)

// checkRowRange reports whether the row's first paragraph opens with a
// {{ range expr }} tag, which repeats the row once per element.
func (t *DocxTemplate) checkRowRange(row *docx.WTableRow) (string, string, bool) {
	if len(row.TableCells) == 0 || len(row.TableCells[0].Paragraphs) == 0 {
		return "", "", false
	}
	text := t.getParagraphText(row.TableCells[0].Paragraphs[0])
	m := rowRangeTag.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[2], m[1], true
}

func (t *DocxTemplate) cleanRowRangeTag(row *docx.WTableRow, tag string) {
	p := row.TableCells[0].Paragraphs[0]
	text := t.getParagraphText(p)
	t.replaceTextInParagraph(p, strings.Replace(text, tag, "", 1))
}

// evaluateExpression resolves a dotted path such as .datos.grado against
// data. Under MissingKeyZero an unknown path yields nil.
func (t *DocxTemplate) evaluateExpression(expr string, data interface{}) (interface{}, error) {
	path := strings.TrimPrefix(strings.TrimSpace(expr), ".")
	val := reflect.ValueOf(data)

	for _, part := range strings.Split(path, ".") {
		if part == "" {
			continue
		}
		for val.IsValid() && (val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface) {
			val = val.Elem()
		}
		switch val.Kind() {
		case reflect.Struct:
			val = val.FieldByName(part)
		case reflect.Map:
			val = val.MapIndex(reflect.ValueOf(part))
		default:
			val = reflect.Value{}
		}
		if !val.IsValid() {
			if t.missingKey == MissingKeyZero {
				return nil, nil
			}
			return nil, fmt.Errorf("field %s not found", part)
		}
	}

	if !val.IsValid() {
		return nil, nil
	}
	return val.Interface(), nil
}

func (t *DocxTemplate) processParagraph(p *docx.Paragraph, data interface{}) ([]interface{}, error) {
	fullText := t.getParagraphText(p)
	if !strings.Contains(fullText, "{{") {
		return nil, nil
	}
	// Markers only mean something inside the paragraph that produced them.
	defer clear(t.injectors)

	renderedText, err := t.execute(fullText, data)
	if err != nil {
		return nil, &RenderError{Text: fullText, Err: err}
	}

	var inline []inlineRuns
	for _, id := range injectMarker.FindAllString(renderedText, -1) {
		injector, ok := t.injectors[id]
		if !ok {
			continue
		}
		delete(t.injectors, id)

		before := len(p.Children)
		items, err := injector.Inject(t.doc, p)
		if err != nil {
			return nil, &RenderError{Text: fullText, Err: err}
		}
		if items != nil {
			return items, nil
		}
		// Runs the injector appended go where its marker was.
		added := append([]interface{}(nil), p.Children[before:]...)
		p.Children = p.Children[:before]
		inline = append(inline, inlineRuns{marker: id, runs: added})
	}

	t.replaceTextInParagraph(p, renderedText, inline...)
	return nil, nil
}

var injectMarker = regexp.MustCompile(`__INJECT_\d+__`)

// inlineRuns are runs an injector added to a paragraph, placed at marker.
type inlineRuns struct {
	marker string
	runs   []interface{}
}

// emptyIfNil is appended to every printing action so nil values and, under
// MissingKeyZero, missing keys render as empty text.
const emptyIfNil = "emptyIfNil"

// execute runs one paragraph's text through text/template.
func (t *DocxTemplate) execute(text string, data interface{}) (string, error) {
	funcs := t.builtinFuncs()
	for k, v := range t.funcs {
		funcs[k] = v
	}
	funcs[emptyIfNil] = func(v interface{}) interface{} {
		if v == nil {
			return ""
		}
		return v
	}

	tmpl := template.New("paragraph").Funcs(funcs)
	if t.missingKey == MissingKeyError {
		tmpl.Option("missingkey=error")
	}

	tmpl, err := tmpl.Parse(bareToField(text, funcs, data))
	if err != nil {
		return "", err
	}
	for _, tt := range tmpl.Templates() {
		if tt.Tree != nil {
			blankNils(tt.Tree.Root)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// blankNils pipes the result of every printing action through emptyIfNil.
func blankNils(n parse.Node) {
	switch n := n.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, c := range n.Nodes {
			blankNils(c)
		}
	case *parse.ActionNode:
		if n.Pipe == nil || len(n.Pipe.Decl) > 0 {
			return
		}
		cmd := &parse.CommandNode{NodeType: parse.NodeCommand, Pos: n.Pipe.Pos}
		cmd.Args = []parse.Node{parse.NewIdentifier(emptyIfNil).SetPos(n.Pipe.Pos)}
		n.Pipe.Cmds = append(n.Pipe.Cmds, cmd)
	case *parse.IfNode:
		blankNils(n.List)
		blankNils(n.ElseList)
	case *parse.RangeNode:
		blankNils(n.List)
		blankNils(n.ElseList)
	case *parse.WithNode:
		blankNils(n.List)
		blankNils(n.ElseList)
	}
}

var bareAction = regexp.MustCompile(`\{\{(-?\s*)([\p{L}_][\p{L}\p{N}_]*(?:\.[\p{L}_][\p{L}\p{N}_]*)*)(\s*-?)\}\}`)

// templateKeywords are never read as data keys.
var templateKeywords = map[string]bool{
	"end": true, "else": true, "break": true, "continue": true,
	"if": true, "range": true, "with": true, "define": true,
	"template": true, "block": true,
	"nil": true, "true": true, "false": true,
}

// builtinTemplateFuncs are the functions text/template predefines.
var builtinTemplateFuncs = map[string]bool{
	"and": true, "call": true, "html": true, "index": true, "slice": true,
	"js": true, "len": true, "not": true, "or": true, "print": true,
	"printf": true, "println": true, "urlquery": true,
	"eq": true, "ge": true, "gt": true, "le": true, "lt": true, "ne": true,
}

// bareToField turns {{name}} and {{a.b}} into {{.name}} and {{.a.b}} so
// placeholders can be written without the leading dot. A key of data wins
// over a function of the same name; otherwise function names and template
// keywords are left alone.
func bareToField(text string, funcs template.FuncMap, data interface{}) string {
	keys, _ := data.(map[string]interface{})
	return bareAction.ReplaceAllStringFunc(text, func(action string) string {
		m := bareAction.FindStringSubmatch(action)
		head, _, _ := strings.Cut(m[2], ".")
		field := "{{" + m[1] + "." + m[2] + m[3] + "}}"
		if templateKeywords[head] {
			return action
		}
		if _, ok := keys[head]; ok {
			return field
		}
		if _, ok := funcs[head]; ok || builtinTemplateFuncs[head] {
			return action
		}
		return field
	})
}

// getParagraphText joins the text of all runs. Breaks and tabs come back as
// \n and \t so they survive a rewrite.
func (t *DocxTemplate) getParagraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, runChild := range run.Children {
			switch c := runChild.(type) {
			case *docx.Text:
				sb.WriteString(c.Text)
			case *docx.Tab:
				sb.WriteByte('\t')
			case *docx.BarterRabbet:
				if c.Type == "" {
					sb.WriteByte('\n')
				}
			}
		}
	}
	return sb.String()
}

// replaceTextInParagraph puts newText in the first run that carried text
// (keeping that run's formatting) and drops text from the other runs. The
// runs of each inline injection are placed where its marker sits in newText.
func (t *DocxTemplate) replaceTextInParagraph(p *docx.Paragraph, newText string, inline ...inlineRuns) {
	segments := make([]string, 0, len(inline)+1)
	rest := newText
	for _, in := range inline {
		before, after, _ := strings.Cut(rest, in.marker)
		segments = append(segments, before)
		rest = after
	}
	segments = append(segments, rest)

	children := make([]interface{}, 0, len(p.Children)+2*len(inline))
	placed := false
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok || !hasText(run) {
			children = append(children, child)
			continue
		}
		kept := make([]interface{}, 0, len(run.Children))
		for _, rc := range run.Children {
			if !isTextual(rc) {
				kept = append(kept, rc)
			}
		}
		run.Children = kept
		children = append(children, run)
		if placed {
			continue
		}
		placed = true

		run.Children = append(run.Children, textChildren(segments[0])...)
		for i, in := range inline {
			children = append(children, in.runs...)
			if segments[i+1] != "" {
				r := *run
				r.Children = textChildren(segments[i+1])
				children = append(children, &r)
			}
		}
	}
	if !placed {
		for _, in := range inline {
			children = append(children, in.runs...)
		}
	}
	p.Children = children
}

func hasText(run *docx.Run) bool {
	for _, rc := range run.Children {
		if isTextual(rc) {
			return true
		}
	}
	return false
}

func isTextual(v interface{}) bool {
	switch c := v.(type) {
	case *docx.Text, *docx.Tab:
		return true
	case *docx.BarterRabbet:
		return c.Type == ""
	}
	return false
}

// textChildren converts text into run children, turning \n into line breaks
// and \t into tabs.
func textChildren(text string) []interface{} {
	var c []interface{}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			c = append(c, &docx.BarterRabbet{})
		}
		for j, s := range strings.Split(line, "\t") {
			if j > 0 {
				c = append(c, &docx.Tab{})
			}
			if s == "" {
				continue
			}
			txt := &docx.Text{Text: s}
			if strings.TrimSpace(s) != s {
				txt.XMLSpace = "preserve"
			}
			c = append(c, txt)
		}
	}
	return c
}
