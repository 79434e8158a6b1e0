// Command docx-render fills the placeholders of a Word template with the
// values of a JSON file and writes the result as a new document.
//
// With no flags it reads datos.json and plantilla-final.docx from the working
// directory and writes documento_final.docx.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	docxrender "github.com/little-yangyang/docx-render"
	"github.com/little-yangyang/docx-render/internal/config"
)

const (
	defaultData     = "datos.json"
	defaultTemplate = "plantilla-final.docx"
	defaultOutput   = "documento_final.docx"

	// templateEnv overrides the template path.
	templateEnv = "DOCX_TEMPLATE_PATH"
)

// version is set at build time.
var version = "dev"

// CLI flags parsed from command line.
type cliFlags struct {
	Data       string
	Template   string
	Output     string
	Config     string
	MissingKey string
	Sanitize   bool
	Verbose    bool
	Version    bool
}

// options are the settings of one run after flags, environment and config
// file have been merged.
type options struct {
	Data       string
	Template   string
	Output     string
	MissingKey docxrender.MissingKeyPolicy
	Sanitize   bool
	Verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		panic(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("docx-render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.Data, "data", defaultData, "JSON file with the placeholder values")
	fs.StringVar(&flags.Template, "template", defaultTemplate, "Word template (.docx)")
	fs.StringVar(&flags.Output, "out", defaultOutput, "output document (.docx)")
	fs.StringVar(&flags.Config, "config", "", "config file (default docx-render.yml in the working directory)")
	fs.StringVar(&flags.MissingKey, "missing-key", "error", "unknown placeholders: error or zero")
	fs.BoolVar(&flags.Sanitize, "sanitize", false, "clean up mis-encoded text and stray whitespace in the data")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	var cfg *config.Config
	var err error
	if flags.Config != "" {
		cfg, err = config.LoadFile(flags.Config)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts, err := resolve(flags, set, cfg, os.Getenv(templateEnv))
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "docx-render: ", log.LstdFlags)
	if opts.Verbose {
		logger.SetOutput(stderr)
	}

	if err := generate(opts, logger); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✅ Documento generado correctamente como %s\n", opts.Output)
	return nil
}

// resolve merges the settings of one run. A flag given on the command line
// wins over the environment, which wins over the config file, which wins
// over the defaults.
func resolve(flags cliFlags, set map[string]bool, cfg *config.Config, envTemplate string) (options, error) {
	opts := options{
		Data:     pick(flags.Data, set["data"], cfg.Data),
		Template: pick(flags.Template, set["template"], envTemplate, cfg.Template),
		Output:   pick(flags.Output, set["out"], cfg.Output),
		Sanitize: pickBool(flags.Sanitize, set["sanitize"], cfg.Sanitize),
		Verbose:  pickBool(flags.Verbose, set["verbose"], cfg.Verbose),
	}

	policy, err := docxrender.ParseMissingKeyPolicy(pick(flags.MissingKey, set["missing-key"], cfg.MissingKey))
	if err != nil {
		return options{}, err
	}
	opts.MissingKey = policy
	return opts, nil
}

// pick returns the flag value when it was set explicitly, else the first
// non-empty fallback, else the flag's default.
func pick(flagValue string, flagSet bool, fallbacks ...string) string {
	if flagSet {
		return flagValue
	}
	for _, v := range fallbacks {
		if v != "" {
			return v
		}
	}
	return flagValue
}

// pickBool is pick for boolean flags: an explicit -flag=false still wins
// over the config file.
func pickBool(flagValue, flagSet, fallback bool) bool {
	if flagSet {
		return flagValue
	}
	return flagValue || fallback
}

// generate loads the data, renders the template and saves the document. The
// output file is only touched once rendering has succeeded.
func generate(opts options, logger *log.Logger) error {
	start := time.Now()
	ctx, err := docxrender.LoadContext(opts.Data)
	if err != nil {
		return err
	}
	if opts.Sanitize {
		ctx = docxrender.Sanitize(ctx)
	}
	logger.Printf("load %s took: %s", opts.Data, time.Since(start))

	start = time.Now()
	tpl, err := docxrender.Open(opts.Template, docxrender.WithMissingKey(opts.MissingKey))
	if err != nil {
		return err
	}
	logger.Printf("open %s took: %s", opts.Template, time.Since(start))

	start = time.Now()
	if err := tpl.Render(ctx); err != nil {
		return err
	}
	logger.Printf("render took: %s (missing keys: %s)", time.Since(start), opts.MissingKey)

	start = time.Now()
	if err := tpl.SaveFile(opts.Output); err != nil {
		return err
	}
	logger.Printf("save %s took: %s", opts.Output, time.Since(start))
	return nil
}
