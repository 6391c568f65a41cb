package wgsl

// Literal tokens of the signature grammar.
const (
	TokenFn         = "fn"
	TokenArrow      = "->"
	TokenLeftParen  = "("
	TokenRightParen = ")"
	TokenLess       = "<"
	TokenGreater    = ">"
	TokenComma      = ","
	TokenColon      = ":"
)

// Type-kind keywords and prefixes.
const (
	KeywordVoid   = "void"
	PrefixVector  = "vec"
	PrefixMatrix  = "mat"
	PrefixTexture = "texture"
)

// Rule names pushed onto GrammarError context stacks.
const (
	RuleIdent       = "identifier"
	RuleType        = "type"
	RuleTextureName = "texture_name"
	RuleFnDecl      = "fn_decl"
)

// Position represents a position in source code.
type Position struct {
	Line   int
	Column int
	Offset int
}
