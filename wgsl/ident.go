package wgsl

import (
	"fmt"
	"strings"
)

// Ident is an identifier matching [A-Za-z_][A-Za-z0-9_]*.
// The zero value is not a valid identifier; use NewIdent or ParseIdent.
type Ident struct {
	name string
}

// NewIdent validates s and wraps it as an Ident.
func NewIdent(s string) (Ident, error) {
	if !isIdent(s) {
		return Ident{}, fmt.Errorf("invalid identifier %q", s)
	}
	return Ident{name: s}, nil
}

// MustIdent is like NewIdent but panics on invalid input.
func MustIdent(s string) Ident {
	id, err := NewIdent(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the identifier text.
func (id Ident) String() string {
	return id.name
}

// IsZero reports whether id is the zero value.
func (id Ident) IsZero() bool {
	return id.name == ""
}

// Compare orders identifiers lexically.
func (id Ident) Compare(other Ident) int {
	return strings.Compare(id.name, other.name)
}

// ParseIdent parses an identifier at the cursor.
func ParseIdent(c *Cursor) (Ident, error) {
	rest := c.Rest()
	if rest == "" || !isIdentStart(rest[0]) {
		return Ident{}, InRule(RuleIdent, c.Errorf("expected identifier, found %s", c.describeNext()))
	}
	n := 1
	for n < len(rest) && isIdentPart(rest[n]) {
		n++
	}
	c.Seek(c.Offset() + n)
	return Ident{name: rest[:n]}, nil
}

func isIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}
