// Command wgslspec prints the WGSL builtin function catalogue extracted from
// the WGSL specification source.
//
// Usage:
//
//	wgslspec [options]
//
// Examples:
//
//	wgslspec                             # Download the specification, print overloads
//	wgslspec -file index.bs              # Use a local copy
//	wgslspec -mode functions             # Print every signature found
//	wgslspec -format yaml -o builtins.yaml
//	wgslspec -config wgslspec.yaml -strict
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/wgslspec"
	"github.com/gogpu/wgslspec/internal/config"
	"github.com/gogpu/wgslspec/wgsl"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	sourceURL  = flag.String("url", "", "specification source URL (overrides config)")
	inputPath  = flag.String("file", "", "read the specification from a local file instead of downloading it")
	output     = flag.String("o", "", "output file (default: stdout)")
	mode       = flag.String("mode", "overloads", "what to print: functions, rows or overloads")
	format     = flag.String("format", "text", "output format for overloads: text or yaml")
	strict     = flag.Bool("strict", false, "abort on the first malformed signature or row")
	exclude    = flag.String("exclude", "", "comma-separated function names to leave out")
	dump       = flag.Bool("dump", false, "dump parsed values instead of rendering them")
	verbose    = flag.Bool("v", false, "log progress to stderr")
	version    = flag.Bool("version", false, "print version")
)

const toolVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("wgslspec version %s\n", toolVersion)
		return
	}

	if err := run(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}

	opts := cfg.Options()
	if *sourceURL != "" {
		opts.SourceURL = *sourceURL
	}
	if *strict {
		opts.Strict = true
	}
	if *exclude != "" {
		opts.Exclude = append(opts.Exclude, strings.Split(*exclude, ",")...)
	}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "wgslspec: ", log.LstdFlags)
	}

	doc, err := loadDocument(opts)
	if err != nil {
		return err
	}
	if doc.Diagnostics.HasErrors() && *verbose {
		fmt.Fprintln(os.Stderr, colorize("warning:", colorYellow),
			fmt.Sprintf("skipped %d malformed occurrences", doc.Diagnostics.Len()))
		fmt.Fprintln(os.Stderr, doc.Diagnostics.FormatAll())
	}

	out := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		out = f
	}

	return write(out, doc, opts)
}

func loadDocument(opts wgslspec.Options) (*wgslspec.Document, error) {
	if *inputPath == "" {
		return wgslspec.LoadWithOptions(context.Background(), opts)
	}
	source, err := os.ReadFile(*inputPath)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return wgslspec.ParseWithOptions(string(source), opts)
}

func write(w io.Writer, doc *wgslspec.Document, opts wgslspec.Options) error {
	switch *mode {
	case "functions":
		if *dump {
			spew.Fdump(w, doc.Functions)
			return nil
		}
		for _, f := range doc.Functions {
			fmt.Fprintf(w, "%s\n\n", f)
		}
	case "rows":
		if *dump {
			spew.Fdump(w, doc.Overloads)
			return nil
		}
		for _, r := range doc.Overloads {
			fmt.Fprintf(w, "%s\n\n", r)
		}
	case "overloads":
		catalog := doc.Catalog(wgslspec.NewExclusions(opts.Exclude...))
		if *dump {
			spew.Fdump(w, catalog.Rows())
			return nil
		}
		if *format == "yaml" {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(catalog); err != nil {
				return errors.Wrap(err, "encode yaml")
			}
			return enc.Close()
		}
		for _, r := range catalog.Rows() {
			fmt.Fprintf(w, "%s\n\n", r)
		}
	default:
		return errors.Errorf("unknown mode %q", *mode)
	}
	return nil
}

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

// colorize wraps s in an ANSI color when stderr is a terminal.
func colorize(s, color string) string {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return s
	}
	return color + s + colorReset
}

func reportError(err error) {
	var ge *wgsl.GrammarError
	if errors.As(err, &ge) {
		fmt.Fprintln(os.Stderr, colorize("error:", colorRed), err)
		fmt.Fprint(os.Stderr, ge.FormatWithContext())
		return
	}
	var fe *wgslspec.FetchError
	if errors.As(err, &fe) {
		fmt.Fprintln(os.Stderr, colorize("error:", colorRed), fe)
		return
	}
	fmt.Fprintln(os.Stderr, colorize("error:", colorRed), err)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: wgslspec [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  wgslspec                          Download and print overloads\n")
	fmt.Fprintf(os.Stderr, "  wgslspec -file index.bs           Use a local copy\n")
	fmt.Fprintf(os.Stderr, "  wgslspec -format yaml -o out.yaml Export the catalogue\n")
}
