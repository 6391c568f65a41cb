package wgsl

import (
	"strings"
)

// Arg is one named parameter of a function signature.
type Arg struct {
	Name Ident
	Type Type
}

// FnDecl is a function signature such as
//
//	fn foo(a: vec3<f32>, b: vec4<f32>) -> vec3<f32>
//
// Out is void when the signature has no return type.
type FnDecl struct {
	Name Ident
	Args []Arg
	Out  Type
}

// ParseFnDecl parses a function signature at the cursor.
//
// The grammar commits once "fn" and the function name have been read: a
// malformed argument list after that point is a committed error.
func ParseFnDecl(c *Cursor) (FnDecl, error) {
	var f FnDecl

	if err := c.Expect(TokenFn); err != nil {
		return f, InRule(RuleFnDecl, err)
	}
	if err := c.ExpectSpace(); err != nil {
		return f, InRule(RuleFnDecl, err)
	}
	name, err := ParseIdent(c)
	if err != nil {
		return f, InRule(RuleFnDecl, err)
	}
	f.Name = name

	args, err := parseArgs(c)
	if err != nil {
		return FnDecl{}, InRule(RuleFnDecl, Commit(err))
	}
	f.Args = args

	f.Out = Void()
	afterArgs := c.Offset()
	c.SkipSpace()
	if c.Match(TokenArrow) {
		c.SkipSpace()
		out, err := ParseType(c)
		if err == nil {
			f.Out = out
			return f, nil
		}
		if IsCommitted(err) {
			return FnDecl{}, InRule(RuleFnDecl, err)
		}
	}
	c.Seek(afterArgs)
	return f, nil
}

func parseArgs(c *Cursor) ([]Arg, error) {
	c.SkipSpace()
	if err := c.Expect(TokenLeftParen); err != nil {
		return nil, err
	}

	var args []Arg
	for {
		c.SkipSpace()
		if c.Match(TokenRightParen) {
			return args, nil
		}
		if len(args) > 0 {
			if err := c.Expect(TokenComma); err != nil {
				return nil, err
			}
			c.SkipSpace()
			// trailing comma
			if c.Match(TokenRightParen) {
				return args, nil
			}
		}

		name, err := ParseIdent(c)
		if err != nil {
			return nil, err
		}
		c.SkipSpace()
		if err := c.Expect(TokenColon); err != nil {
			return nil, err
		}
		c.SkipSpace()
		ty, err := ParseType(c)
		if err != nil {
			return nil, err
		}
		args = append(args, Arg{Name: name, Type: ty})
	}
}

// ParseFnDeclString parses s as exactly one function signature, allowing
// surrounding whitespace.
func ParseFnDeclString(s string) (FnDecl, error) {
	c := NewCursor(s)
	c.SkipSpace()
	f, err := ParseFnDecl(c)
	if err != nil {
		return FnDecl{}, err
	}
	if err := expectEnd(c); err != nil {
		return FnDecl{}, InRule(RuleFnDecl, err)
	}
	return f, nil
}

// Types returns every type the signature mentions: the return type first,
// then the argument types in order.
func (f FnDecl) Types() []Type {
	tys := make([]Type, 0, len(f.Args)+1)
	tys = append(tys, f.Out)
	for _, a := range f.Args {
		tys = append(tys, a.Type)
	}
	return tys
}

// Mentions reports whether t occurs in any argument type or the return type.
func (f FnDecl) Mentions(t Type) bool {
	for _, ty := range f.Types() {
		if ty.Contains(t) {
			return true
		}
	}
	return false
}

// Substitute returns a copy of f with every occurrence of target replaced by
// with.
func (f FnDecl) Substitute(target, with Type) FnDecl {
	out := FnDecl{
		Name: f.Name,
		Out:  f.Out.Replace(target, with),
	}
	if len(f.Args) > 0 {
		out.Args = make([]Arg, len(f.Args))
		for i, a := range f.Args {
			out.Args[i] = Arg{Name: a.Name, Type: a.Type.Replace(target, with)}
		}
	}
	return out
}

// Equal reports structural equality.
func (f FnDecl) Equal(other FnDecl) bool {
	if f.Name != other.Name || len(f.Args) != len(other.Args) || !f.Out.Equal(other.Out) {
		return false
	}
	for i := range f.Args {
		if f.Args[i].Name != other.Args[i].Name || !f.Args[i].Type.Equal(other.Args[i].Type) {
			return false
		}
	}
	return true
}

// String renders the canonical multi-line form with argument names padded
// to the widest name:
//
//	fn textureLoad(
//	    t     : texture_2d<T>,
//	    coords: vec2<C>,
//	    level : L
//	) -> vec4<T>
//
// A signature without arguments renders on one line.
func (f FnDecl) String() string {
	var sb strings.Builder
	sb.WriteString("fn ")
	sb.WriteString(f.Name.String())
	sb.WriteByte('(')

	if len(f.Args) > 0 {
		width := 0
		for _, a := range f.Args {
			if n := len(a.Name.String()); n > width {
				width = n
			}
		}
		sb.WriteByte('\n')
		for i, a := range f.Args {
			name := a.Name.String()
			sb.WriteString("    ")
			sb.WriteString(name)
			sb.WriteString(strings.Repeat(" ", width-len(name)))
			sb.WriteString(": ")
			a.Type.writeTo(&sb)
			if i+1 < len(f.Args) {
				sb.WriteByte(',')
			}
			sb.WriteByte('\n')
		}
	}

	sb.WriteString(") -> ")
	f.Out.writeTo(&sb)
	return sb.String()
}
