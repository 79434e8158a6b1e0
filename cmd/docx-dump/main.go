// Command docx-dump prints the text of a .docx file, one line per paragraph
// and table rows as "| a | b |". With -parts it lists the package entries
// and prints word/document.xml instead.
package main

import (
	"archive/zip"
	"flag"
	"fmt"
	"io"
	"os"

	docxrender "github.com/little-yangyang/docx-render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("docx-dump", flag.ContinueOnError)
	parts := fs.Bool("parts", false, "list zip entries and print word/document.xml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: docx-dump [-parts] file.docx")
	}
	path := fs.Arg(0)

	if *parts {
		return dumpParts(path, stdout)
	}
	tpl, err := docxrender.Open(path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, tpl.Text())
	return err
}

func dumpParts(path string, stdout io.Writer) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		fmt.Fprintln(stdout, f.Name)
		if f.Name == "word/document.xml" {
			doc = f
		}
	}
	if doc == nil {
		return fmt.Errorf("%s: word/document.xml not found", path)
	}

	rc, err := doc.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	fmt.Fprintln(stdout, "---")
	if _, err := io.Copy(stdout, rc); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	return nil
}
