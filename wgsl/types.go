package wgsl

import (
	"fmt"
	"strings"
)

// TypeKind is the part of a type expression before the angle brackets.
// Implementations are comparable values: VoidKind, VectorKind, MatrixKind,
// TextureKind and NamedKind.
type TypeKind interface {
	String() string
	kindNode()
}

// VoidKind is the return type of a function that returns nothing.
type VoidKind struct{}

func (VoidKind) String() string { return KeywordVoid }
func (VoidKind) kindNode()      {}

// VectorKind is vec2, vec3, vec4 or a symbolic vecN.
type VectorKind struct {
	Size rune
}

func (v VectorKind) String() string { return PrefixVector + string(v.Size) }
func (VectorKind) kindNode()        {}

// MatrixKind is matCxR with concrete or symbolic dimensions.
type MatrixKind struct {
	Columns rune
	Rows    rune
}

func (m MatrixKind) String() string {
	return PrefixMatrix + string(m.Columns) + "x" + string(m.Rows)
}
func (MatrixKind) kindNode() {}

// TextureKind is any texture type.
type TextureKind struct {
	Name TextureName
}

func (t TextureKind) String() string { return t.Name.String() }
func (TextureKind) kindNode()        {}

// NamedKind covers scalars, type variables and every other identifier.
type NamedKind struct {
	Name Ident
}

func (n NamedKind) String() string { return n.Name.String() }
func (NamedKind) kindNode()        {}

// Type is a type expression: a kind plus optional generic parameters,
// e.g. vec4<f32> or texture_storage_2d<F, A>.
type Type struct {
	Kind   TypeKind
	Params []Type
}

// Void returns the void type.
func Void() Type {
	return Type{Kind: VoidKind{}}
}

// Named returns a parameterless type named by id, without kind
// classification. Type parameters are looked up this way.
func Named(id Ident) Type {
	return Type{Kind: NamedKind{Name: id}}
}

// NewType builds a type from a name, classifying the name the same way the
// grammar does. It panics if name is not an identifier.
func NewType(name string, params ...Type) Type {
	return Type{Kind: ClassifyKind(MustIdent(name)), Params: params}
}

// ClassifyKind maps a type-kind identifier to its TypeKind.
func ClassifyKind(id Ident) TypeKind {
	name := id.String()
	switch {
	case name == KeywordVoid:
		return VoidKind{}
	case len(name) == len(PrefixVector)+1 && strings.HasPrefix(name, PrefixVector):
		return VectorKind{Size: rune(name[3])}
	case len(name) == len(PrefixMatrix)+3 && strings.HasPrefix(name, PrefixMatrix) && name[4] == 'x':
		return MatrixKind{Columns: rune(name[3]), Rows: rune(name[5])}
	}
	if t, ok := decodeTextureName(name); ok {
		return TextureKind{Name: t}
	}
	return NamedKind{Name: id}
}

// IsVoid reports whether t is the void type.
func (t Type) IsVoid() bool {
	_, ok := t.Kind.(VoidKind)
	return ok && len(t.Params) == 0
}

// Equal reports structural equality.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || len(t.Params) != len(other.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(other.Params[i]) {
			return false
		}
	}
	return true
}

// Find traverses t and its nested parameters in pre-order and returns the
// first node structurally equal to target.
func (t Type) Find(target Type) (Type, bool) {
	if t.Equal(target) {
		return t, true
	}
	for _, p := range t.Params {
		if found, ok := p.Find(target); ok {
			return found, true
		}
	}
	return Type{}, false
}

// Contains reports whether target occurs anywhere in t.
func (t Type) Contains(target Type) bool {
	_, ok := t.Find(target)
	return ok
}

// Replace returns a copy of t with every node equal to target replaced by
// with, including occurrences nested in parameter lists. t is not modified.
func (t Type) Replace(target, with Type) Type {
	if t.Equal(target) {
		return with.Clone()
	}
	out := Type{Kind: t.Kind}
	if len(t.Params) > 0 {
		out.Params = make([]Type, len(t.Params))
		for i, p := range t.Params {
			out.Params[i] = p.Replace(target, with)
		}
	}
	return out
}

// Clone returns a deep copy of t.
func (t Type) Clone() Type {
	out := Type{Kind: t.Kind}
	if len(t.Params) > 0 {
		out.Params = make([]Type, len(t.Params))
		for i, p := range t.Params {
			out.Params[i] = p.Clone()
		}
	}
	return out
}

// String renders the canonical form: kind, then <p1, p2, ...> when there
// are parameters.
func (t Type) String() string {
	var sb strings.Builder
	t.writeTo(&sb)
	return sb.String()
}

func (t Type) writeTo(sb *strings.Builder) {
	if t.Kind == nil {
		sb.WriteString("<invalid>")
	} else {
		sb.WriteString(t.Kind.String())
	}
	if len(t.Params) == 0 {
		return
	}
	sb.WriteByte('<')
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		p.writeTo(sb)
	}
	sb.WriteByte('>')
}

// ParseType parses a type expression at the cursor. Whitespace is allowed
// around '<', ',' and '>', but not before the kind identifier.
//
// A parameter list that fails to parse is not part of the type: the cursor
// is left just after the kind, as for a parameterless type.
func ParseType(c *Cursor) (Type, error) {
	id, err := ParseIdent(c)
	if err != nil {
		return Type{}, InRule(RuleType, err)
	}
	t := Type{Kind: ClassifyKind(id)}

	afterKind := c.Offset()
	c.SkipSpace()
	if !c.Match(TokenLess) {
		c.Seek(afterKind)
		return t, nil
	}
	params, err := parseTypeParams(c)
	if err != nil {
		if IsCommitted(err) {
			return Type{}, InRule(RuleType, err)
		}
		c.Seek(afterKind)
		return t, nil
	}
	t.Params = params
	return t, nil
}

func parseTypeParams(c *Cursor) ([]Type, error) {
	var params []Type
	for {
		c.SkipSpace()
		p, err := ParseType(c)
		if err != nil {
			return nil, err
		}
		params = append(params, p)

		c.SkipSpace()
		switch {
		case c.Match(TokenComma):
		case c.Match(TokenGreater):
			return params, nil
		default:
			return nil, c.Errorf("expected ',' or '>' in type parameter list, found %s", c.describeNext())
		}
	}
}

// ParseTypeString parses s as exactly one type expression, allowing
// surrounding whitespace.
func ParseTypeString(s string) (Type, error) {
	c := NewCursor(s)
	c.SkipSpace()
	t, err := ParseType(c)
	if err != nil {
		return Type{}, err
	}
	if err := expectEnd(c); err != nil {
		return Type{}, InRule(RuleType, err)
	}
	return t, nil
}

func expectEnd(c *Cursor) error {
	c.SkipSpace()
	if !c.IsAtEnd() {
		return c.Errorf("unexpected trailing input %s", c.describeNext())
	}
	return nil
}

// GoString implements fmt.GoStringer for readable test failures.
func (t Type) GoString() string {
	return fmt.Sprintf("wgsl.Type(%s)", t.String())
}
