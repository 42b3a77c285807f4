package lexrule_test

import (
	"fmt"

	"github.com/lexrule/lexrule"
	"github.com/lexrule/lexrule/action"
	"github.com/lexrule/lexrule/formatter"
	"github.com/lexrule/lexrule/lexer"
	"github.com/lexrule/lexrule/rule"
)

// Example lexes a tiny arithmetic input and groups every
// number-operator-number triple into one composite token.
func Example() {
	lex := lexer.New([]lexer.Class{
		lexer.MustClass("number", `\d+`),
		lexer.MustClass("op", `[+*/-]`),
	})
	toks := lex.Tokenize("1+2*3")

	b := lexrule.NewGrammarBuilder()
	b.Add(
		rule.Sequence(rule.MustPattern(`\d+`), rule.MustPattern(`[+*/-]`), rule.MustPattern(`\d+`)),
		action.Grouping(action.GroupPreserve),
	)
	g := b.Build()

	out := g.Parse(toks)
	fmt.Print(formatter.NewPlain().Tokens(out))
	// Output:
	// group 1:1..1:4
	//   number "1" 1:1
	//   op "+" 1:2
	//   number "2" 1:3
	// op "*" 1:4
	// number "3" 1:5
}
