// Package wgslspec extracts the catalogue of WGSL builtin function
// signatures from the WGSL specification source.
//
// The specification is a bikeshed document: prose and markup with builtin
// signatures and overload tables embedded in it. wgslspec locates every
// function signature and every overload table row in the document, and can
// expand the rows into concrete overloads:
//
//	doc, err := wgslspec.Load(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range doc.Instantiate() {
//	    fmt.Println(row)
//	}
//
// To work on a local copy of the document, use Parse:
//
//	doc, err := wgslspec.Parse(text)
//
// Lower-level access is available in the wgsl (type and signature grammar),
// overload (constraint grammar and instantiation) and scan (document
// scanner) packages.
package wgslspec

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/gogpu/wgslspec/overload"
	"github.com/gogpu/wgslspec/scan"
	"github.com/gogpu/wgslspec/wgsl"
)

// DefaultSourceURL is the canonical WGSL specification source.
const DefaultSourceURL = "https://raw.githubusercontent.com/gpuweb/gpuweb/main/wgsl/index.bs"

// DefaultTimeout bounds the document download.
const DefaultTimeout = 5 * time.Second

// Options configures loading and parsing.
type Options struct {
	// SourceURL is the document to download (default: DefaultSourceURL)
	SourceURL string

	// Timeout bounds the whole download (default: 5s)
	Timeout time.Duration

	// Strict aborts parsing on the first malformed signature or row instead
	// of recording it in Document.Diagnostics and moving on.
	Strict bool

	// Exclude lists function names left out of the catalogue, such as
	// illustrative examples that are not real builtins.
	Exclude []string

	// Logger receives progress messages. Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		SourceURL: DefaultSourceURL,
		Timeout:   DefaultTimeout,
		Strict:    false,
	}
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// Document is the result of parsing a specification source.
type Document struct {
	// Text is the raw document.
	Text string

	// Functions holds every function signature found anywhere in the
	// document, in document order. Signatures inside overload rows are
	// included.
	Functions []wgsl.FnDecl

	// Overloads holds every overload table row, in document order.
	Overloads []overload.Row

	// Diagnostics lists malformed signatures and rows that were skipped.
	// Always empty in strict mode.
	Diagnostics wgsl.GrammarErrors
}

// FunctionGrammar locates function signatures.
var FunctionGrammar = scan.Grammar[wgsl.FnDecl]{
	Name:   "functions",
	Prefix: wgsl.TokenFn,
	Parse:  wgsl.ParseFnDecl,
}

// OverloadGrammar locates overload table rows.
var OverloadGrammar = scan.Grammar[overload.Row]{
	Name:   "overloads",
	Prefix: overload.MarkupRowOpen,
	Parse:  overload.ParseRow,
}

// Parse parses a specification document using default options.
func Parse(text string) (*Document, error) {
	return ParseWithOptions(text, DefaultOptions())
}

// ParseWithOptions parses a specification document.
//
// The document is scanned twice, once for function signatures and once for
// overload rows. Either the whole document parses or an error is returned;
// no partial Document is exposed.
func ParseWithOptions(text string, opts Options) (*Document, error) {
	scanOpts := scan.Options{Strict: opts.Strict}

	fns, fnDiags, err := scan.All(text, FunctionGrammar, scanOpts)
	if err != nil {
		return nil, errors.Wrap(err, "scan function signatures")
	}

	rows, rowDiags, err := scan.All(text, OverloadGrammar, scanOpts)
	if err != nil {
		return nil, errors.Wrap(err, "scan overload rows")
	}

	doc := &Document{
		Text:      text,
		Functions: fns,
		Overloads: rows,
	}
	doc.Diagnostics = append(doc.Diagnostics, fnDiags...)
	doc.Diagnostics = append(doc.Diagnostics, rowDiags...)

	opts.logf("parsed %d function signatures and %d overload rows", len(fns), len(rows))
	if doc.Diagnostics.HasErrors() {
		opts.logf("skipped %d malformed occurrences", doc.Diagnostics.Len())
	}
	return doc, nil
}

// Load downloads and parses the canonical specification using default
// options.
func Load(ctx context.Context) (*Document, error) {
	return LoadWithOptions(ctx, DefaultOptions())
}

// LoadWithOptions downloads opts.SourceURL and parses it.
//
// The pipeline is:
//  1. Fetch the document (a failure is a *FetchError)
//  2. Scan it for function signatures
//  3. Scan it for overload table rows
func LoadWithOptions(ctx context.Context, opts Options) (*Document, error) {
	if opts.SourceURL == "" {
		opts.SourceURL = DefaultSourceURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	start := time.Now()
	text, err := Fetch(ctx, opts.SourceURL, opts.Timeout)
	if err != nil {
		return nil, err
	}
	opts.logf("fetched %s (%d bytes) in %s", opts.SourceURL, len(text), time.Since(start).Round(time.Millisecond))

	return ParseWithOptions(text, opts)
}

// Instantiate expands every overload row, in row order.
func (d *Document) Instantiate() []overload.Row {
	var out []overload.Row
	for _, row := range d.Overloads {
		out = append(out, row.Instantiate()...)
	}
	return out
}

// Catalog builds the deduplicated catalogue of instantiated overloads,
// leaving out the excluded function names.
func (d *Document) Catalog(exclude Exclusions) *Catalog {
	c := NewCatalog(exclude)
	for _, row := range d.Instantiate() {
		c.Add(row)
	}
	return c
}
