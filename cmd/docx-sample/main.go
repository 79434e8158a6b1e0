// Command docx-sample writes a starter template and a matching data file so
// docx-render can be tried without Word.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/little-yangyang/docx-render/internal/sample"
)

const sampleData = `{
  "name": "Ana",
  "date": "2024-01-01",
  "datos": {
    "grado": "4to",
    "capacidades": ["Resuelve problemas", "Comunica ideas"]
  },
  "filas": [
    {"secuencia": "Inicio", "tiempo": "10 min"},
    {"secuencia": "Desarrollo", "tiempo": "60 min"}
  ]
}
`

// sampleBody exercises plain placeholders, dotted paths, the list helpers
// and a repeated table row.
var sampleBody = []sample.Block{
	sample.Paragraph{"Nombre: {{name}}"},
	sample.Paragraph{"Fecha: {{date}}"},
	sample.Paragraph{"Grado: {{datos.grado}}"},
	sample.Paragraph{"{{bullets .datos.capacidades}}"},
	sample.Table{
		{"Secuencia", "Tiempo"},
		{"{{ range .filas }}{{ .secuencia }}", "{{ .tiempo }}"},
	},
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("docx-sample", flag.ContinueOnError)
	dir := fs.String("dir", ".", "directory to write the sample files to")
	force := fs.Bool("force", false, "overwrite existing files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dataPath := filepath.Join(*dir, "datos.json")
	templatePath := filepath.Join(*dir, "plantilla-final.docx")
	if !*force {
		for _, p := range []string{dataPath, templatePath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists (use -force to overwrite)", p)
			}
		}
	}

	if err := os.WriteFile(dataPath, []byte(sampleData), 0o644); err != nil {
		return err
	}
	if err := sample.WriteFile(templatePath, sampleBody...); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s and %s\n", templatePath, dataPath)
	return nil
}
