package rule

import (
	"fmt"
	"math"
	"strings"
)

// requireSubRules panics when a combinator receives a nil sub-rule.
// Passing nil is a usage contract violation, not a soft failure.
func requireSubRules(kind string, subs []Rule) {
	for i, sub := range subs {
		if sub == nil {
			panic(fmt.Sprintf("rule: nil sub-rule at index %d in %s", i, kind))
		}
	}
}

// sequenceRule matches its sub-rules at consecutive positions. The match
// is atomic: if any sub-rule fails the whole attempt fails and the
// caller's stream is untouched.
type sequenceRule struct {
	subs []Rule
}

// Sequence matches each sub-rule in order at consecutive positions.
func Sequence(subs ...Rule) Rule {
	requireSubRules("Sequence", subs)
	owned := make([]Rule, len(subs))
	copy(owned, subs)
	return &sequenceRule{subs: owned}
}

func (r *sequenceRule) Match(s *Stream, ctx *Context) *Match {
	scratch := s.Lookahead()
	for _, sub := range r.subs {
		m := sub.Match(scratch, ctx)
		if m == nil {
			return nil
		}
		scratch.Advance(m.Width())
	}
	return spanMatch(s, s.Pos(), scratch.Pos(), r)
}

func (r *sequenceRule) String() string { return describeList("sequence", r.subs) }

// anyOfRule is ordered choice: alternatives are tried in declaration
// order and the first success wins, regardless of length.
type anyOfRule struct {
	alts []Rule
}

// AnyOf tries each alternative in order and returns the first success.
// The returned match keeps the alternative as its producing rule.
func AnyOf(alts ...Rule) Rule {
	requireSubRules("AnyOf", alts)
	owned := make([]Rule, len(alts))
	copy(owned, alts)
	return &anyOfRule{alts: owned}
}

func (r *anyOfRule) Match(s *Stream, ctx *Context) *Match {
	for _, alt := range r.alts {
		if m := alt.Match(s, ctx); m != nil {
			return m
		}
	}
	return nil
}

// Alternatives exposes an AnyOf's alternative list for build-time
// inspection, such as the grammar builder's grouping heuristic.
func Alternatives(r Rule) ([]Rule, bool) {
	any, ok := r.(*anyOfRule)
	if !ok {
		return nil, false
	}
	out := make([]Rule, len(any.alts))
	copy(out, any.alts)
	return out, true
}

func (r *anyOfRule) String() string { return describeList("anyOf", r.alts) }

// optionalRule tries its sub-rule and degrades failure into a zero-width
// success. It is total: Match never returns nil.
type optionalRule struct {
	sub Rule
}

// Optional tries sub and returns a zero-width success when it fails.
func Optional(sub Rule) Rule {
	requireSubRules("Optional", []Rule{sub})
	return &optionalRule{sub: sub}
}

func (r *optionalRule) Match(s *Stream, ctx *Context) *Match {
	if m := r.sub.Match(s, ctx); m != nil {
		return m
	}
	return zeroWidthAt(s, r)
}

// matchNegated of an Optional never succeeds, since the original never
// fails. It exists so double negation can round-trip the original rule.
func (r *optionalRule) matchNegated(*Stream, *Context) *Match { return nil }

func (r *optionalRule) String() string { return fmt.Sprintf("optional(%v)", r.sub) }

// Unbounded removes the upper repetition limit of Repeat.
const Unbounded = math.MaxInt

// repeatRule matches its sub-rule greedily up to max times and succeeds
// iff at least min repetitions matched. Rollback is atomic.
type repeatRule struct {
	sub      Rule
	min, max int
}

// Repeat matches sub between min and max times, greedily. A negative min
// or max < min is a construction error; pass Unbounded for no upper
// limit.
func Repeat(sub Rule, min, max int) (Rule, error) {
	requireSubRules("Repeat", []Rule{sub})
	if min < 0 || max < min {
		return nil, fmt.Errorf("rule: invalid repetition bounds [%d, %d]", min, max)
	}
	return &repeatRule{sub: sub, min: min, max: max}, nil
}

// MustRepeat is Repeat that panics on invalid bounds.
func MustRepeat(sub Rule, min, max int) Rule {
	r, err := Repeat(sub, min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// count probes greedy repetitions on a scratch cursor and returns how
// many matched. A zero-width sub-match is counted once and stops the
// loop; repeating it can never make progress.
func (r *repeatRule) count(scratch *Stream, ctx *Context) int {
	n := 0
	for n < r.max {
		m := r.sub.Match(scratch, ctx)
		if m == nil {
			break
		}
		scratch.Advance(m.Width())
		n++
		if m.ZeroWidth() {
			break
		}
	}
	return n
}

func (r *repeatRule) Match(s *Stream, ctx *Context) *Match {
	scratch := s.Lookahead()
	if r.count(scratch, ctx) < r.min {
		return nil
	}
	return spanMatch(s, s.Pos(), scratch.Pos(), r)
}

// matchNegated succeeds exactly when the greedy attempt falls short of
// min, consuming whatever the attempt consumed.
func (r *repeatRule) matchNegated(s *Stream, ctx *Context) *Match {
	scratch := s.Lookahead()
	if r.count(scratch, ctx) >= r.min {
		return nil
	}
	return spanMatch(s, s.Pos(), scratch.Pos(), nil)
}

func (r *repeatRule) String() string {
	if r.max == Unbounded {
		return fmt.Sprintf("repeat(%v)[%d,]", r.sub, r.min)
	}
	return fmt.Sprintf("repeat(%v)[%d,%d]", r.sub, r.min, r.max)
}

func describeList(kind string, subs []Rule) string {
	parts := make([]string, len(subs))
	for i, sub := range subs {
		parts[i] = fmt.Sprint(sub)
	}
	return kind + "(" + strings.Join(parts, ", ") + ")"
}
