// Package lexrule is a token-rule matching and grammar-composition
// engine. An already-lexed token list is run through an ordered set of
// composable matching rules (see the rule package); each successful
// match is rewritten by a pluggable action (see the action package).
// Grammars are assembled programmatically with a GrammarBuilder and
// sealed into an immutable Grammar whose Parse method is the public
// entry point.
package lexrule

import (
	"github.com/lexrule/lexrule/action"
	"github.com/lexrule/lexrule/rule"
	"github.com/lexrule/lexrule/token"
)

// Entry pairs a rule with the action applied to its matches.
type Entry struct {
	Rule   rule.Rule
	Action action.Action
}

// Engine performs one linear pass over a token list, trying its entries
// in registration order at every position and rewriting the first match.
// An Engine is cheap and single-use by convention: Grammar.Parse builds
// a fresh one per call.
type Engine struct {
	entries []Entry
	ctx     *rule.Context
}

// NewEngine builds an engine resolving recursive references through ctx.
// A nil ctx is allowed for grammars without named references.
func NewEngine(ctx *rule.Context) *Engine {
	return &Engine{ctx: ctx}
}

// Register appends a rule-action pair. A nil rule panics; a nil action
// defaults to Identity.
func (e *Engine) Register(r rule.Rule, a action.Action) {
	if r == nil {
		panic("lexrule: Register with nil rule")
	}
	if a == nil {
		a = action.Identity()
	}
	e.entries = append(e.entries, Entry{Rule: r, Action: a})
}

// Process runs the pass and returns the rewritten token list. The result
// is always a fresh allocation, never the input slice, even when no rule
// matched anywhere.
//
// A zero-width top-level match applies its action output and then copies
// the current token unchanged, advancing one position. Without the
// forced advance a zero-width rule would match the same position
// forever.
func (e *Engine) Process(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	s := rule.NewStream(tokens)

	for s.HasMore() {
		m, act := e.matchAt(s)
		if m == nil {
			out = append(out, s.Current())
			s.Advance(1)
			continue
		}
		out = append(out, act.Apply(m)...)
		s.Advance(m.Width())
		if m.ZeroWidth() {
			out = append(out, s.Current())
			s.Advance(1)
		}
	}
	return out
}

// matchAt tries every entry at the stream's current position and returns
// the first match with its action.
func (e *Engine) matchAt(s *rule.Stream) (*rule.Match, action.Action) {
	for _, ent := range e.entries {
		if m := ent.Rule.Match(s, e.ctx); m != nil {
			return m, ent.Action
		}
	}
	return nil, nil
}
