package rule

import "fmt"

// negatable is implemented by the assertion-like rules whose outcome can
// be inverted algebraically: Pattern, Length, Anchor, Lookahead,
// Repeated, and Optional. matchNegated is the inverted branch; its
// consumption follows the underlying variant (one token for the
// single-token rules, zero for the zero-width assertions, the probed
// span for repetition).
type negatable interface {
	Rule
	matchNegated(s *Stream, ctx *Context) *Match
}

var (
	_ negatable = (*patternRule)(nil)
	_ negatable = (*lengthRule)(nil)
	_ negatable = (*anchorRule)(nil)
	_ negatable = (*lookaheadRule)(nil)
	_ negatable = (*repeatRule)(nil)
	_ negatable = (*optionalRule)(nil)
)

// notRule inverts the outcome of the rule it wraps.
type notRule struct {
	inner negatable
}

// Not inverts the match outcome of an assertion-like rule. Applying Not
// twice returns the original rule instance, not merely an equivalent
// one. Negating a rule outside the negatable set is a construction
// contract violation and panics.
func Not(r Rule) Rule {
	if n, ok := r.(*notRule); ok {
		return n.inner
	}
	n, ok := r.(negatable)
	if !ok {
		panic(fmt.Sprintf("rule: %v is not negatable", r))
	}
	return &notRule{inner: n}
}

func (r *notRule) Match(s *Stream, ctx *Context) *Match {
	m := r.inner.matchNegated(s, ctx)
	if m == nil {
		return nil
	}
	m.Rule = r
	return m
}

func (r *notRule) String() string { return fmt.Sprintf("not(%v)", r.inner) }
