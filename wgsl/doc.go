// Package wgsl provides the WGSL type and function-signature grammar used to
// read builtin declarations out of the WGSL specification source.
//
// # Components
//
//   - Cursor: a byte cursor over source text with backtracking by offset
//   - Ident: validated identifiers
//   - Type: type expressions (void, vecN, matCxR, texture_*, named) with
//     generic parameters, structural search and substitution
//   - TextureName: decoder for composite texture type names
//   - FnDecl: function signatures and their canonical rendering
//   - GrammarError: failures carrying an offset and a rule-context stack
//
// # Usage
//
//	decl, err := wgsl.ParseFnDeclString("fn abs(e: T) -> T")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(decl)
//
// Parsers take a *Cursor and leave it just past the parsed construct. An
// uncommitted GrammarError means the construct is simply not present; a
// committed one means it started but is malformed.
//
// # Rendering
//
// Type.String and FnDecl.String produce a canonical form that parses back to
// an equal value. Downstream code generators rely on this format.
package wgsl
