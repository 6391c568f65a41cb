package wgsl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cursor walks a source string for the hand-written grammars in this
// module. Backtracking is done by saving Offset and restoring it with Seek.
type Cursor struct {
	source string
	pos    int
}

// NewCursor creates a cursor at the start of source.
func NewCursor(source string) *Cursor {
	return &Cursor{source: source}
}

// NewCursorAt creates a cursor positioned at offset inside source.
func NewCursorAt(source string, offset int) *Cursor {
	c := &Cursor{source: source}
	c.Seek(offset)
	return c
}

// Source returns the whole text the cursor walks.
func (c *Cursor) Source() string {
	return c.source
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.pos
}

// Seek moves the cursor to offset, clamped to the source bounds.
func (c *Cursor) Seek(offset int) {
	switch {
	case offset < 0:
		c.pos = 0
	case offset > len(c.source):
		c.pos = len(c.source)
	default:
		c.pos = offset
	}
}

// Rest returns the unconsumed input.
func (c *Cursor) Rest() string {
	return c.source[c.pos:]
}

// IsAtEnd reports whether all input has been consumed.
func (c *Cursor) IsAtEnd() bool {
	return c.pos >= len(c.source)
}

// Peek returns the next rune without consuming it, or 0 at the end.
func (c *Cursor) Peek() rune {
	if c.IsAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.pos:])
	return r
}

// Advance consumes and returns the next rune, or 0 at the end.
func (c *Cursor) Advance() rune {
	if c.IsAtEnd() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(c.source[c.pos:])
	c.pos += size
	return r
}

// HasPrefix reports whether the unconsumed input starts with lit.
func (c *Cursor) HasPrefix(lit string) bool {
	return strings.HasPrefix(c.source[c.pos:], lit)
}

// Match consumes lit if the unconsumed input starts with it.
func (c *Cursor) Match(lit string) bool {
	if !c.HasPrefix(lit) {
		return false
	}
	c.pos += len(lit)
	return true
}

// Expect consumes lit or returns an uncommitted error at the current offset.
func (c *Cursor) Expect(lit string) error {
	if c.Match(lit) {
		return nil
	}
	return c.Errorf("expected %q, found %s", lit, c.describeNext())
}

// SkipSpace consumes any run of whitespace and returns its length in bytes.
func (c *Cursor) SkipSpace() int {
	start := c.pos
	for !c.IsAtEnd() {
		r, size := utf8.DecodeRuneInString(c.source[c.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		c.pos += size
	}
	return c.pos - start
}

// ExpectSpace consumes at least one whitespace rune.
func (c *Cursor) ExpectSpace() error {
	if c.SkipSpace() == 0 {
		return c.Errorf("expected whitespace, found %s", c.describeNext())
	}
	return nil
}

// TakeWhile consumes runes while pred holds and returns them.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	start := c.pos
	for !c.IsAtEnd() {
		r, size := utf8.DecodeRuneInString(c.source[c.pos:])
		if !pred(r) {
			break
		}
		c.pos += size
	}
	return c.source[start:c.pos]
}

// TakeUntil consumes input up to the earliest occurrence of any stop literal,
// leaving the stop itself unconsumed. It fails without consuming anything
// when no stop occurs in the rest of the input.
func (c *Cursor) TakeUntil(stops ...string) (string, error) {
	rest := c.Rest()
	end := -1
	for _, stop := range stops {
		if i := strings.Index(rest, stop); i >= 0 && (end < 0 || i < end) {
			end = i
		}
	}
	if end < 0 {
		return "", c.Errorf("expected one of %q before end of input", stops)
	}
	c.pos += end
	return rest[:end], nil
}

// Errorf creates an uncommitted GrammarError at the current offset.
func (c *Cursor) Errorf(format string, args ...interface{}) *GrammarError {
	return NewGrammarErrorf(c.pos, c.source, format, args...)
}

func (c *Cursor) describeNext() string {
	if c.IsAtEnd() {
		return "end of input"
	}
	r := c.Peek()
	if unicode.IsSpace(r) {
		return "whitespace"
	}
	return "'" + string(r) + "'"
}

// PositionOf converts a byte offset in source to a 1-based line and column.
func PositionOf(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}
	line := 1 + strings.Count(source[:offset], "\n")
	lineStart := strings.LastIndexByte(source[:offset], '\n') + 1
	column := utf8.RuneCountInString(source[lineStart:offset]) + 1
	return Position{Line: line, Column: column, Offset: offset}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
