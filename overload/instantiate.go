package overload

import (
	"errors"

	"github.com/gogpu/wgslspec/wgsl"
)

// ErrNotApplicable is returned by UnionBound.InstantiateParam when the type
// parameter does not occur in the signature.
var ErrNotApplicable = errors.New("type parameter not mentioned by signature")

// InstantiateParam returns one copy of f per union variant, each with every
// occurrence of param replaced by that variant.
func (u UnionBound) InstantiateParam(param wgsl.Ident, f wgsl.FnDecl) ([]wgsl.FnDecl, error) {
	t := wgsl.Named(param)
	if !f.Mentions(t) {
		return nil, ErrNotApplicable
	}

	out := make([]wgsl.FnDecl, 0, len(u.Types))
	for _, variant := range u.Types {
		out = append(out, f.Substitute(t, variant))
	}
	return out, nil
}

// InstantiateAll applies the bound to every signature in fs, keeping
// signatures that do not mention param unchanged.
func (u UnionBound) InstantiateAll(param wgsl.Ident, fs []wgsl.FnDecl) []wgsl.FnDecl {
	out := make([]wgsl.FnDecl, 0, len(fs)*len(u.Types))
	for _, f := range fs {
		instances, err := u.InstantiateParam(param, f)
		if errors.Is(err, ErrNotApplicable) {
			out = append(out, f)
			continue
		}
		out = append(out, instances...)
	}
	return out
}

// Instantiate resolves the union bounds of r.
//
// Union bounds like `T is i32 or u32` are applied by replacing every T in the
// signature with i32 and with u32, yielding two overloads. Bounds are applied
// in source order, so the last union bound varies fastest. Trait and prose
// bounds cannot be resolved and are attached to every result.
func (r Row) Instantiate() []Row {
	decls := []wgsl.FnDecl{r.Decl}
	for _, b := range r.Params.Unions() {
		decls = b.Kind.(UnionBound).InstantiateAll(b.Param, decls)
	}

	leftover := r.Params.Leftover()
	rows := make([]Row, len(decls))
	for i, d := range decls {
		rows[i] = Row{
			Algorithm: r.Algorithm,
			Params:    append(Parametrization{}, leftover...),
			Decl:      d,
		}
	}
	return rows
}
