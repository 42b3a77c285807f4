// Package rule implements the composable token matchers at the core of
// the engine: single-token predicates, sequencing, ordered choice,
// repetition, zero-width assertions (lookahead and anchors), delimited
// spans, and named recursive references resolved through a Context.
//
// Rules are immutable once constructed and never move the caller's
// cursor: they probe on Lookahead copies and report consumption through
// the returned Match, which the caller applies. A nil Match is the
// ordinary non-match outcome, never an error.
//
// Matching is plain recursive descent without memoization, so deeply
// nested ordered choices can backtrack in exponential time and deeply
// self-referential grammars are bounded by the goroutine stack.
package rule

import (
	"github.com/lexrule/lexrule/token"
)

// Rule is a single matcher. Implementations outside this package are
// allowed; the engine treats any Rule uniformly.
type Rule interface {
	// Match attempts the rule at the stream's current position and
	// returns nil on non-match. The stream the caller passed is left at
	// its original position in every case.
	Match(s *Stream, ctx *Context) *Match
}

// Match is the result of a successful rule application: a half-open span
// [Start, End) of absolute stream indices, the tokens inside it, and the
// rule that produced it. Zero-width matches have Start == End and no
// tokens.
type Match struct {
	Start  int
	End    int
	Tokens []token.Token
	Rule   Rule
}

// Width is the number of tokens the match consumed.
func (m *Match) Width() int { return m.End - m.Start }

// ZeroWidth reports whether the match consumed nothing.
func (m *Match) ZeroWidth() bool { return m.Start == m.End }

// zeroWidthAt builds the canonical zero-width success at the stream's
// current position.
func zeroWidthAt(s *Stream, r Rule) *Match {
	return &Match{Start: s.Pos(), End: s.Pos(), Rule: r}
}

// spanMatch builds a consuming match over [start, end) of s.
func spanMatch(s *Stream, start, end int, r Rule) *Match {
	return &Match{Start: start, End: end, Tokens: s.Range(start, end), Rule: r}
}

// alwaysRule is the trivial zero-width success.
type alwaysRule struct{}

// Always matches at every position without consuming anything.
func Always() Rule { return theAlways }

var theAlways = &alwaysRule{}

func (r *alwaysRule) Match(s *Stream, _ *Context) *Match {
	return zeroWidthAt(s, r)
}

// neverRule is the permanent failure.
type neverRule struct{}

// Never fails at every position.
func Never() Rule { return theNever }

var theNever = &neverRule{}

func (r *neverRule) Match(*Stream, *Context) *Match { return nil }
