package lexrule

import (
	"github.com/lexrule/lexrule/action"
	"github.com/lexrule/lexrule/rule"
	"github.com/lexrule/lexrule/token"
)

// GrammarBuilder registers named and active rules, then seals them into
// an immutable Grammar. The builder is a single-owner, mutate-then-seal
// object: it is not safe for concurrent registration, and it stops
// accepting registrations once Build has run.
type GrammarBuilder struct {
	ctx     *rule.Context
	entries []Entry
	built   bool
}

// NewGrammarBuilder creates an empty builder.
func NewGrammarBuilder() *GrammarBuilder {
	return &GrammarBuilder{ctx: rule.NewContext()}
}

// Define registers a named rule in the context without activating it.
// Named-but-inactive rules are reachable only through Recursive
// references, never applied directly by the engine. Empty and duplicate
// names are rejected immediately.
func (b *GrammarBuilder) Define(name string, r rule.Rule) error {
	return b.ctx.BindRule(name, r)
}

// DefineTokens records a token list under a name, exposed through the
// context's token references.
func (b *GrammarBuilder) DefineTokens(name string, toks []token.Token) error {
	return b.ctx.BindTokens(name, toks)
}

// DefineDynamic registers a reference whose rule is computed at match
// time.
func (b *GrammarBuilder) DefineDynamic(name string, resolve func(*rule.Context) rule.Rule) error {
	return b.ctx.BindDynamic(name, resolve)
}

// Add appends an active rule-action pair, returning the builder for
// chaining. A nil rule, or adding after Build, panics; a nil action
// defaults to Identity.
//
// Auto-wrap heuristic: when the action is a grouping action and the rule
// is an ordered choice with two or more Group-marked alternatives, the
// whole choice is wrapped in a Group marker so the grouping applies
// uniformly to whichever alternative matched, instead of only to the
// alternatives carrying their own marker. No other configuration is
// rewritten.
func (b *GrammarBuilder) Add(r rule.Rule, a action.Action) *GrammarBuilder {
	if b.built {
		panic("lexrule: Add after Build")
	}
	if r == nil {
		panic("lexrule: Add with nil rule")
	}
	if a == nil {
		a = action.Identity()
	}
	if action.IsGrouping(a) {
		r = autoWrap(r)
	}
	b.entries = append(b.entries, Entry{Rule: r, Action: a})
	return b
}

// autoWrap applies the grouping heuristic described on Add.
func autoWrap(r rule.Rule) rule.Rule {
	alts, ok := rule.Alternatives(r)
	if !ok {
		return r
	}
	grouped := 0
	for _, alt := range alts {
		if rule.IsGrouped(alt) {
			grouped++
		}
	}
	if grouped >= 2 {
		return rule.Group(r)
	}
	return r
}

// Build seals the context and moves the active list into an immutable
// Grammar. The builder accepts no further registrations afterwards.
func (b *GrammarBuilder) Build() *Grammar {
	if b.built {
		panic("lexrule: Build called twice")
	}
	b.built = true
	b.ctx.Seal()
	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)
	b.entries = nil
	return &Grammar{ctx: b.ctx, entries: entries}
}

// Grammar is a sealed, immutable set of active rule-action pairs plus
// the named-rule context. It may be shared and invoked concurrently:
// every Parse call allocates its own engine and stream state.
type Grammar struct {
	ctx     *rule.Context
	entries []Entry
}

// Parse runs one engine pass over tokens and returns the rewritten list.
func (g *Grammar) Parse(tokens []token.Token) []token.Token {
	e := NewEngine(g.ctx)
	for _, ent := range g.entries {
		e.Register(ent.Rule, ent.Action)
	}
	return e.Process(tokens)
}

// Context exposes the sealed named-rule context, mainly for inspecting
// token references recorded during construction.
func (g *Grammar) Context() *rule.Context { return g.ctx }

// Entries returns a copy of the active rule-action list.
func (g *Grammar) Entries() []Entry {
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}
