package overload

import (
	"strings"
	"unicode"

	"github.com/gogpu/wgslspec/wgsl"
)

// BoundKind is the constraint placed on a type parameter: UnionBound,
// TraitBound or ProseBound.
type BoundKind interface {
	String() string
	boundNode()
}

// UnionBound says a type parameter is one of an explicit list of types.
// Order is kept from the source and duplicates are not removed.
type UnionBound struct {
	Types []wgsl.Type
}

func (UnionBound) boundNode() {}

// String renders "is i32 | u32".
func (u UnionBound) String() string {
	var sb strings.Builder
	sb.WriteString(wordIs)
	sb.WriteByte(' ')
	for i, t := range u.Types {
		if i > 0 {
			sb.WriteString(renderUnionSep)
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// TraitBound refers to a named category of types, e.g. "texel format".
type TraitBound struct {
	Name string
}

func (TraitBound) boundNode() {}

// String renders "is a `texel format`".
func (t TraitBound) String() string {
	return wordIs + " " + wordA + " `" + t.Name + "`"
}

// ProseBound is a constraint described in free text. Whitespace runs are
// collapsed to single spaces.
type ProseBound struct {
	Text string
}

func (ProseBound) boundNode() {}

func (p ProseBound) String() string {
	return `"` + p.Text + `"`
}

// Bound constrains one type parameter.
type Bound struct {
	Param wgsl.Ident
	Kind  BoundKind
}

// String renders "T: is i32 | u32".
func (b Bound) String() string {
	return b.Param.String() + ": " + b.Kind.String()
}

// Equal reports structural equality.
func (b Bound) Equal(other Bound) bool {
	if b.Param != other.Param {
		return false
	}
	switch k := b.Kind.(type) {
	case UnionBound:
		o, ok := other.Kind.(UnionBound)
		if !ok || len(k.Types) != len(o.Types) {
			return false
		}
		for i := range k.Types {
			if !k.Types[i].Equal(o.Types[i]) {
				return false
			}
		}
		return true
	default:
		return b.Kind == other.Kind
	}
}

// ParseGenericArg parses a type parameter reference: a bare identifier,
// |T|, or either of those wrapped in <var ignore>...</var>.
func ParseGenericArg(c *wgsl.Cursor) (wgsl.Ident, error) {
	start := c.Offset()
	c.SkipSpace()

	if c.Match(MarkupVarOpen) {
		c.SkipSpace()
		id, err := parsePipedIdent(c)
		if err != nil {
			return wgsl.Ident{}, wgsl.InRule(RuleGenericArg, wgsl.Commit(err))
		}
		c.SkipSpace()
		if err := c.Expect(MarkupVarClose); err != nil {
			c.Seek(start)
			return wgsl.Ident{}, wgsl.InRule(RuleGenericArg, err)
		}
		return id, nil
	}

	id, err := parsePipedIdent(c)
	if err != nil {
		if !wgsl.IsCommitted(err) {
			c.Seek(start)
		}
		return wgsl.Ident{}, wgsl.InRule(RuleGenericArg, err)
	}
	return id, nil
}

func parsePipedIdent(c *wgsl.Cursor) (wgsl.Ident, error) {
	start := c.Offset()
	if c.Match(MarkupPipe) {
		c.SkipSpace()
		id, err := wgsl.ParseIdent(c)
		if err != nil {
			return wgsl.Ident{}, wgsl.Commit(err)
		}
		if err := c.Expect(MarkupPipe); err != nil {
			c.Seek(start)
			return wgsl.Ident{}, err
		}
		return id, nil
	}
	return wgsl.ParseIdent(c)
}

// ParseTraitName parses a [=term=] reference made of letters, digits and
// whitespace.
func ParseTraitName(c *wgsl.Cursor) (string, error) {
	start := c.Offset()
	if err := c.Expect(MarkupTermOpen); err != nil {
		return "", wgsl.InRule(RuleTraitName, err)
	}
	name := c.TakeWhile(func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsLetter(r) || unicode.IsNumber(r)
	})
	if name == "" {
		return "", wgsl.InRule(RuleTraitName, wgsl.Commit(c.Errorf("expected trait name")))
	}
	if err := c.Expect(MarkupTermClose); err != nil {
		c.Seek(start)
		return "", wgsl.InRule(RuleTraitName, err)
	}
	return name, nil
}

// ParseUnion parses a list of types such as
//
//	[=i32=], [=u32=], or [=f32=]
//	`texture_1d<ST>` or `texture_storage_1d<F,A>`
//
// Items are separated by ",", ", or" or "or".
func ParseUnion(c *wgsl.Cursor) (UnionBound, error) {
	first, err := parseUnionItem(c)
	if err != nil {
		return UnionBound{}, wgsl.InRule(RuleUnion, err)
	}
	u := UnionBound{Types: []wgsl.Type{first}}

	for {
		beforeSep := c.Offset()
		if !skipUnionSeparator(c) {
			break
		}
		item, err := parseUnionItem(c)
		if err != nil {
			if wgsl.IsCommitted(err) {
				return UnionBound{}, wgsl.InRule(RuleUnion, err)
			}
			c.Seek(beforeSep)
			break
		}
		u.Types = append(u.Types, item)
	}
	return u, nil
}

func parseUnionItem(c *wgsl.Cursor) (wgsl.Type, error) {
	start := c.Offset()
	c.SkipSpace()

	switch {
	case c.Match(MarkupTermOpen):
		t, err := wgsl.ParseType(c)
		if err != nil {
			return wgsl.Type{}, wgsl.Commit(err)
		}
		if err := c.Expect(MarkupTermClose); err != nil {
			c.Seek(start)
			return wgsl.Type{}, err
		}
		return t, nil
	case c.Match(MarkupBacktick):
		t, err := wgsl.ParseType(c)
		if err == nil {
			err = c.Expect(MarkupBacktick)
		}
		if err != nil {
			c.Seek(start)
			return wgsl.Type{}, err
		}
		return t, nil
	default:
		err := c.Errorf("expected %q or %q", MarkupTermOpen, MarkupBacktick)
		c.Seek(start)
		return wgsl.Type{}, err
	}
}

// skipUnionSeparator consumes ", or", "," or "or" with surrounding space.
func skipUnionSeparator(c *wgsl.Cursor) bool {
	start := c.Offset()
	c.SkipSpace()
	if c.Match(unionSeparator) {
		afterComma := c.Offset()
		c.SkipSpace()
		if !matchWord(c, wordOr) {
			c.Seek(afterComma)
		}
		return true
	}
	if matchWord(c, wordOr) {
		return true
	}
	c.Seek(start)
	return false
}

// matchWord consumes word followed by at least one whitespace rune.
func matchWord(c *wgsl.Cursor, word string) bool {
	start := c.Offset()
	if c.Match(word) && c.ExpectSpace() == nil {
		return true
	}
	c.Seek(start)
	return false
}

// ParseBound parses one constraint:
//
//	T is a [=trait=]
//	T is [=i32=] or [=u32=]
//	T <free text up to the next <br> or <td>>
func ParseBound(c *wgsl.Cursor) (Bound, error) {
	start := c.Offset()
	c.SkipSpace()
	param, err := ParseGenericArg(c)
	if err != nil {
		if !wgsl.IsCommitted(err) {
			c.Seek(start)
		}
		return Bound{}, wgsl.InRule(RuleBound, err)
	}

	c.SkipSpace()
	afterParam := c.Offset()
	if matchWord(c, wordIs) {
		kind, err := parseIsClause(c)
		if err == nil {
			return Bound{Param: param, Kind: kind}, nil
		}
		if wgsl.IsCommitted(err) {
			return Bound{}, wgsl.InRule(RuleBound, err)
		}
		c.Seek(afterParam)
	}

	text, err := c.TakeUntil(MarkupBreak, MarkupCell)
	if err != nil {
		c.Seek(start)
		return Bound{}, wgsl.InRule(RuleBound, wgsl.InRule(RuleProse, err))
	}
	return Bound{Param: param, Kind: ProseBound{Text: normalizeWhitespace(text)}}, nil
}

// parseIsClause parses what follows "is ": a trait or a union.
func parseIsClause(c *wgsl.Cursor) (BoundKind, error) {
	start := c.Offset()
	c.SkipSpace()
	if matchWord(c, wordAn) || matchWord(c, wordA) {
		if name, err := ParseTraitName(c); err == nil {
			return TraitBound{Name: name}, nil
		} else if wgsl.IsCommitted(err) {
			return nil, err
		}
		c.Seek(start)
	}

	u, err := ParseUnion(c)
	if err != nil {
		if !wgsl.IsCommitted(err) {
			c.Seek(start)
		}
		return nil, err
	}
	return u, nil
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
