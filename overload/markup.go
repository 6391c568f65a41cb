// Package overload reads the builtin overload tables of the WGSL
// specification source and expands them into concrete signatures.
//
// A table row pairs a generic signature with constraints on its type
// parameters, written in bikeshed markup:
//
//	<tr algorithm="textureLoad 2d">
//	  <td><var ignore>C</var> is [=i32=], or [=u32=]<br>
//	      <var ignore>F</var> is a [=texel format=]
//	  <td><xmp highlight=rust>fn textureLoad(t: texture_2d<T>, coords: vec2<C>) -> vec4<T></xmp>
//
// ParseRow reads one such row, and Row.Instantiate resolves every union
// constraint into one concrete overload per combination of variants.
package overload

// Bikeshed markup tokens recognised by the constraint and row grammars.
const (
	MarkupVarOpen   = "<var ignore>"
	MarkupVarClose  = "</var>"
	MarkupPipe      = "|"
	MarkupTermOpen  = "[="
	MarkupTermClose = "=]"
	MarkupBacktick  = "`"
	MarkupBreak     = "<br>"
	MarkupCell      = "<td>"
	MarkupRowOpen   = `<tr algorithm="`
	MarkupAttrClose = `">`
	MarkupCodeOpen  = "<xmp highlight=rust>"
	MarkupCodeClose = "</xmp>"
)

const (
	wordIs = "is"
	wordOr = "or"
	wordA  = "a"
	wordAn = "an"

	unionSeparator = ","
	renderUnionSep = " | "
	renderIndent   = "    "
)

// Rule names pushed onto GrammarError context stacks.
const (
	RuleGenericArg      = "generic_arg"
	RuleTraitName       = "trait_name"
	RuleUnion           = "union_bound"
	RuleProse           = "prose_bound"
	RuleBound           = "bound"
	RuleParametrization = "parametrization"
	RuleRow             = "overload_row"
)
