// Package scan finds every occurrence of a grammar inside a larger text,
// skipping whatever lies between occurrences.
package scan

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/wgslspec/wgsl"
)

// Grammar describes what to look for.
type Grammar[T any] struct {
	// Name is pushed onto the rule stack of errors the scanner reports.
	Name string

	// Prefix is a literal every match starts with. When set, only offsets
	// where Prefix occurs are tried. Empty means every offset is tried.
	Prefix string

	// Parse attempts the grammar at the cursor. An uncommitted error means
	// there is no match at this offset.
	Parse func(c *wgsl.Cursor) (T, error)
}

// Match is one located occurrence.
type Match[T any] struct {
	// Skipped is the text between the previous match (or the start) and
	// this one.
	Skipped string
	Offset  int
	Value   T
}

// Options controls how malformed occurrences are handled.
type Options struct {
	// Strict makes a committed grammar failure abort the scan. Otherwise the
	// failure is recorded as a diagnostic and scanning resumes at the next
	// offset.
	Strict bool
}

// Scanner yields successive matches of a grammar.
type Scanner[T any] struct {
	source  string
	pos     int
	grammar Grammar[T]
	opts    Options
	diags   wgsl.GrammarErrors
}

// New creates a scanner over source.
func New[T any](source string, g Grammar[T], opts Options) *Scanner[T] {
	return &Scanner[T]{
		source:  source,
		grammar: g,
		opts:    opts,
	}
}

// Next returns the next match. ok is false once no further offset matches;
// running out of matches is not an error.
func (s *Scanner[T]) Next() (m Match[T], ok bool, err error) {
	from := s.pos
	for off := s.pos; off <= len(s.source); {
		cand := off
		if s.grammar.Prefix != "" {
			i := strings.Index(s.source[off:], s.grammar.Prefix)
			if i < 0 {
				break
			}
			cand = off + i
		}

		c := wgsl.NewCursorAt(s.source, cand)
		v, perr := s.grammar.Parse(c)
		if perr == nil {
			s.pos = c.Offset()
			if s.pos <= cand {
				s.pos = cand + 1
			}
			return Match[T]{Skipped: s.source[from:cand], Offset: cand, Value: v}, true, nil
		}

		if wgsl.IsCommitted(perr) {
			perr = wgsl.InRule(s.grammar.Name, perr)
			if s.opts.Strict {
				s.pos = len(s.source)
				return Match[T]{}, false, perr
			}
			var ge *wgsl.GrammarError
			if errors.As(perr, &ge) {
				s.diags.Add(ge)
			}
		}

		off = cand + runeSize(s.source, cand)
	}

	s.pos = len(s.source)
	return Match[T]{}, false, nil
}

// Diagnostics returns the committed failures skipped so far.
func (s *Scanner[T]) Diagnostics() wgsl.GrammarErrors {
	return s.diags
}

// All collects every match value in document order.
func All[T any](source string, g Grammar[T], opts Options) ([]T, wgsl.GrammarErrors, error) {
	s := New(source, g, opts)
	var out []T
	for {
		m, ok, err := s.Next()
		if err != nil {
			return nil, s.Diagnostics(), err
		}
		if !ok {
			return out, s.Diagnostics(), nil
		}
		out = append(out, m.Value)
	}
}

func runeSize(s string, off int) int {
	if off >= len(s) {
		return 1
	}
	_, size := utf8.DecodeRuneInString(s[off:])
	return size
}
