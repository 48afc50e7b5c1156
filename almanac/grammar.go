package almanac

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// almanacLexer tokenizes the almanac. Newlines are significant: they end
// rows. Map names lex as one Ident, hyphens included.
var almanacLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\r\n]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},
	{Name: "Punct", Pattern: `:`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

//nolint:govet // participle grammar tags are not standard struct tags
type almanacGrammar struct {
	Pos   lexer.Position
	Seeds []string      `Newline* "seeds" ":" @Int* Newline+`
	Maps  []*mapGrammar `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type mapGrammar struct {
	Pos  lexer.Position
	Name string        `@Ident "map" ":" Newline+`
	Rows []*rowGrammar `@@*`
}

// rowGrammar accepts any count of integers; the triple shape is checked
// later so the error can name the row.
//
//nolint:govet // participle grammar tags are not standard struct tags
type rowGrammar struct {
	Pos    lexer.Position
	Values []string `@Int+ Newline+`
}

var almanacParser = participle.MustBuild[almanacGrammar](
	participle.Lexer(almanacLexer),
	participle.Elide("Comment", "Whitespace"),
)
