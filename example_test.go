package docxrender_test

import (
	"bytes"
	"fmt"

	docxrender "github.com/little-yangyang/docx-render"
	"github.com/little-yangyang/docx-render/internal/sample"
)

func openSample(body ...sample.Block) *docxrender.DocxTemplate {
	var buf bytes.Buffer
	if err := sample.Write(&buf, body...); err != nil {
		panic(err)
	}
	tpl, err := docxrender.New(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		panic(err)
	}
	return tpl
}

func ExampleDocxTemplate_Render() {
	tpl := openSample(sample.Text("Nombre: {{name}}", "Fecha: {{date}}")...)

	if err := tpl.Render(docxrender.Context{"name": "Ana", "date": "2024-01-01"}); err != nil {
		panic(err)
	}
	fmt.Print(tpl.Text())
	// Output:
	// Nombre: Ana
	// Fecha: 2024-01-01
}

func ExampleDocxTemplate_Render_blocks() {
	tpl := openSample(sample.Text(
		"{{for v in .vulns}}",
		"{{v.Name}}",
		"{{if v.HasRetest}}",
		"Retest: {{v.Desc}}",
		"{{endif}}",
		"{{endfor}}",
	)...)

	data := map[string]interface{}{
		"vulns": []map[string]interface{}{
			{"Name": "SQL Injection", "HasRetest": true, "Desc": "Bad SQL"},
			{"Name": "XSS", "HasRetest": false, "Desc": "Bad Script"},
		},
	}
	if err := tpl.Render(data); err != nil {
		panic(err)
	}
	fmt.Print(tpl.Text())
	// Output:
	// SQL Injection
	// Retest: Bad SQL
	// XSS
}

func ExampleDocxTemplate_Render_table() {
	tpl := openSample(
		sample.Paragraph{"{{ProjectName}}"},
		sample.Table{
			{"Name", "Severity"},
			{"{{ range .Vulns }}{{.Name}}", "{{.Severity}}"},
		},
	)

	data := map[string]interface{}{
		"ProjectName": "Test Project",
		"Vulns": []map[string]interface{}{
			{"Name": "Vuln 1", "Severity": "High"},
			{"Name": "Vuln 2", "Severity": "Medium"},
		},
	}
	if err := tpl.Render(data); err != nil {
		panic(err)
	}
	fmt.Print(tpl.Text())
	// Output:
	// Test Project
	// | Name | Severity |
	// | Vuln 1 | High |
	// | Vuln 2 | Medium |
}

func ExampleHTMLInjector() {
	tpl := openSample(sample.Text("{{inject .Body}}")...)

	data := map[string]interface{}{
		"Body": docxrender.HTMLInjector{Content: `
			<h1>Title Level 1</h1>
			<p>This is a paragraph.</p>
			<h2>Subtitle Level 2</h2>
			<p>Another paragraph.</p>
		`},
	}
	if err := tpl.Render(data); err != nil {
		panic(err)
	}
	fmt.Print(tpl.Text())
	// Output:
	// Title Level 1
	// This is a paragraph.
	// Subtitle Level 2
	// Another paragraph.
}
