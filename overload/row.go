package overload

import (
	"strings"

	"github.com/gogpu/wgslspec/wgsl"
)

// Parametrization is the ordered list of constraints of one overload row.
type Parametrization []Bound

// ParseParametrization parses one or more bounds, each optionally followed
// by <br> tokens.
func ParseParametrization(c *wgsl.Cursor) (Parametrization, error) {
	var params Parametrization
	for {
		b, err := ParseBound(c)
		if err != nil {
			if wgsl.IsCommitted(err) || len(params) == 0 {
				return nil, wgsl.InRule(RuleParametrization, err)
			}
			return params, nil
		}
		params = append(params, b)

		for {
			beforeBreak := c.Offset()
			c.SkipSpace()
			if !c.Match(MarkupBreak) {
				c.Seek(beforeBreak)
				break
			}
		}
	}
}

// Unions returns the union bounds in source order.
func (p Parametrization) Unions() []Bound {
	var out []Bound
	for _, b := range p {
		if _, ok := b.Kind.(UnionBound); ok {
			out = append(out, b)
		}
	}
	return out
}

// Leftover returns the bounds that instantiation cannot resolve (trait and
// prose bounds) in source order.
func (p Parametrization) Leftover() Parametrization {
	out := Parametrization{}
	for _, b := range p {
		if _, ok := b.Kind.(UnionBound); !ok {
			out = append(out, b)
		}
	}
	return out
}

// Equal reports structural equality.
func (p Parametrization) Equal(other Parametrization) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Row is one entry of a builtin overload table.
type Row struct {
	// Algorithm is the row's algorithm attribute, e.g. "textureLoad 2d".
	// It identifies the row and need not equal the function name.
	Algorithm string
	Params    Parametrization
	Decl      wgsl.FnDecl
}

// ParseRow parses an overload table row:
//
//	<tr algorithm="label"><td>bounds<td><xmp highlight=rust>fn ...</xmp>
func ParseRow(c *wgsl.Cursor) (Row, error) {
	start := c.Offset()
	fail := func(err error) (Row, error) {
		if !wgsl.IsCommitted(err) {
			c.Seek(start)
		}
		return Row{}, wgsl.InRule(RuleRow, err)
	}

	if err := c.Expect(MarkupRowOpen); err != nil {
		return fail(err)
	}
	algorithm := c.TakeWhile(func(r rune) bool { return r != '"' })
	if err := c.Expect(MarkupAttrClose); err != nil {
		return fail(err)
	}

	c.SkipSpace()
	if err := c.Expect(MarkupCell); err != nil {
		return fail(err)
	}
	c.SkipSpace()
	params, err := ParseParametrization(c)
	if err != nil {
		return fail(err)
	}

	c.SkipSpace()
	if err := c.Expect(MarkupCell); err != nil {
		return fail(err)
	}
	c.SkipSpace()
	if err := c.Expect(MarkupCodeOpen); err != nil {
		return fail(err)
	}
	c.SkipSpace()
	decl, err := wgsl.ParseFnDecl(c)
	if err != nil {
		return fail(err)
	}
	c.SkipSpace()
	if err := c.Expect(MarkupCodeClose); err != nil {
		return fail(err)
	}

	return Row{Algorithm: algorithm, Params: params, Decl: decl}, nil
}

// ParseRowString parses s as exactly one overload row, allowing surrounding
// whitespace.
func ParseRowString(s string) (Row, error) {
	c := wgsl.NewCursor(s)
	c.SkipSpace()
	r, err := ParseRow(c)
	if err != nil {
		return Row{}, err
	}
	c.SkipSpace()
	if !c.IsAtEnd() {
		return Row{}, wgsl.InRule(RuleRow, c.Errorf("unexpected trailing input"))
	}
	return r, nil
}

// Equal reports structural equality.
func (r Row) Equal(other Row) bool {
	return r.Algorithm == other.Algorithm &&
		r.Params.Equal(other.Params) &&
		r.Decl.Equal(other.Decl)
}

// String renders the row as
//
//	#[algorithm]
//	fn name(
//	    arg: T
//	) -> T
//	where
//	    T: is a `texel format`;
//
// The where clause is omitted when the row has no bounds.
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteString("#[")
	sb.WriteString(r.Algorithm)
	sb.WriteString("]\n")
	sb.WriteString(r.Decl.String())
	if len(r.Params) > 0 {
		sb.WriteString("\nwhere")
		for i, b := range r.Params {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
			sb.WriteString(renderIndent)
			sb.WriteString(b.String())
		}
	}
	sb.WriteByte(';')
	return sb.String()
}
