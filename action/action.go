// Package action implements the rewrites applied to successful matches:
// identity, arbitrary transformation, filtering, grouping into composite
// tokens, wrapping, and extraction into a side collection.
//
// Every action returns a freshly allocated token list; the engine's
// output never aliases its input.
package action

import (
	"github.com/lexrule/lexrule/rule"
	"github.com/lexrule/lexrule/token"
)

// Action rewrites the token span of a successful match into its
// replacement. Implementations outside this package are allowed.
type Action interface {
	Apply(m *rule.Match) []token.Token
}

var (
	_ Action = (*identityAction)(nil)
	_ Action = (*transformAction)(nil)
	_ Action = (*filterAction)(nil)
	_ Action = (*groupingAction)(nil)
	_ Action = (*wrapAction)(nil)
	_ Action = (*extractAction)(nil)
)

// copyTokens returns a fresh slice with the same elements.
func copyTokens(toks []token.Token) []token.Token {
	out := make([]token.Token, len(toks))
	copy(out, toks)
	return out
}

// identityAction passes the matched tokens through unchanged.
type identityAction struct{}

// Identity returns the matched tokens as they were.
func Identity() Action { return theIdentity }

var theIdentity = &identityAction{}

func (*identityAction) Apply(m *rule.Match) []token.Token {
	return copyTokens(m.Tokens)
}

// transformAction applies an arbitrary list-to-list mapper.
type transformAction struct {
	fn func([]token.Token) []token.Token
}

// Transform rewrites the matched tokens through fn. The function
// receives a copy, so it may mutate its argument freely. A nil fn
// panics.
func Transform(fn func([]token.Token) []token.Token) Action {
	if fn == nil {
		panic("action: Transform with nil function")
	}
	return &transformAction{fn: fn}
}

func (a *transformAction) Apply(m *rule.Match) []token.Token {
	out := a.fn(copyTokens(m.Tokens))
	if out == nil {
		return []token.Token{}
	}
	return out
}

// filterAction keeps only the matched tokens satisfying a predicate,
// order preserved.
type filterAction struct {
	pred func(token.Token) bool
}

// Filter keeps the matched tokens pred accepts. A nil pred panics.
func Filter(pred func(token.Token) bool) Action {
	if pred == nil {
		panic("action: Filter with nil predicate")
	}
	return &filterAction{pred: pred}
}

func (a *filterAction) Apply(m *rule.Match) []token.Token {
	out := make([]token.Token, 0, len(m.Tokens))
	for _, t := range m.Tokens {
		if a.pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// wrapAction emits a prefix and suffix token around the matched span.
type wrapAction struct {
	prefix, suffix token.Token
}

// Wrap surrounds the matched tokens with prefix and suffix. Nil tokens
// panic.
func Wrap(prefix, suffix token.Token) Action {
	if prefix == nil || suffix == nil {
		panic("action: Wrap with nil token")
	}
	return &wrapAction{prefix: prefix, suffix: suffix}
}

func (a *wrapAction) Apply(m *rule.Match) []token.Token {
	out := make([]token.Token, 0, len(m.Tokens)+2)
	out = append(out, a.prefix)
	out = append(out, m.Tokens...)
	out = append(out, a.suffix)
	return out
}

// extractAction removes tokens matching a predicate from the output
// while appending them to an external sink. It pulls spans like comments
// out of the stream without losing them.
type extractAction struct {
	pred func(token.Token) bool
	sink *[]token.Token
}

// Extract drops the matched tokens pred accepts from the output and
// appends them to sink. Nil arguments panic.
func Extract(pred func(token.Token) bool, sink *[]token.Token) Action {
	if pred == nil || sink == nil {
		panic("action: Extract with nil predicate or sink")
	}
	return &extractAction{pred: pred, sink: sink}
}

func (a *extractAction) Apply(m *rule.Match) []token.Token {
	out := make([]token.Token, 0, len(m.Tokens))
	for _, t := range m.Tokens {
		if a.pred(t) {
			*a.sink = append(*a.sink, t)
		} else {
			out = append(out, t)
		}
	}
	return out
}
