package rule

import (
	"fmt"
	"strings"
)

// Polarity selects whether a lookahead asserts the presence or absence
// of its sub-rule.
type Polarity int

const (
	Positive Polarity = iota
	Negative
)

func (p Polarity) String() string {
	if p == Negative {
		return "negative"
	}
	return "positive"
}

// lookaheadRule probes its sub-rule on a throwaway cursor and never
// consumes anything.
type lookaheadRule struct {
	sub Rule
	pol Polarity
}

// Lookahead builds a zero-width probe of sub. Positive succeeds iff sub
// matches at the current position, Negative iff it fails.
func Lookahead(sub Rule, pol Polarity) Rule {
	requireSubRules("Lookahead", []Rule{sub})
	return &lookaheadRule{sub: sub, pol: pol}
}

func (r *lookaheadRule) holds(s *Stream, ctx *Context) bool {
	m := r.sub.Match(s.Lookahead(), ctx)
	return (m != nil) == (r.pol == Positive)
}

func (r *lookaheadRule) Match(s *Stream, ctx *Context) *Match {
	if !r.holds(s, ctx) {
		return nil
	}
	return zeroWidthAt(s, r)
}

func (r *lookaheadRule) matchNegated(s *Stream, ctx *Context) *Match {
	if r.holds(s, ctx) {
		return nil
	}
	return zeroWidthAt(s, nil)
}

func (r *lookaheadRule) String() string {
	return fmt.Sprintf("lookahead[%s](%v)", r.pol, r.sub)
}

// Edge selects which side of the scope an anchor asserts.
type Edge int

const (
	Start Edge = iota
	End
)

// Scope selects whether an anchor is relative to the whole document or
// to line boundaries inside it.
type Scope int

const (
	Document Scope = iota
	Line
)

// anchorRule is a zero-width assertion about the cursor's position.
type anchorRule struct {
	edge  Edge
	scope Scope
}

// Anchor builds a zero-width positional assertion. Document anchors
// check the absolute stream boundary; Line anchors consult the token
// values around the cursor, where "\n" and "\r\n" count as line breaks
// and a bare "\r" does not.
func Anchor(edge Edge, scope Scope) Rule {
	return &anchorRule{edge: edge, scope: scope}
}

func (r *anchorRule) holds(s *Stream) bool {
	switch {
	case r.scope == Document && r.edge == Start:
		return s.Pos() == 0
	case r.scope == Document && r.edge == End:
		return !s.HasMore()
	case r.edge == Start:
		// Line start: document start, or previous token ends with a
		// line break.
		return s.Pos() == 0 || endsWithLineBreak(s.At(s.Pos()-1).Value())
	default:
		// Line end: document end, or current token begins with a line
		// break.
		return !s.HasMore() || startsWithLineBreak(s.Current().Value())
	}
}

func (r *anchorRule) Match(s *Stream, _ *Context) *Match {
	if !r.holds(s) {
		return nil
	}
	return zeroWidthAt(s, r)
}

func (r *anchorRule) matchNegated(s *Stream, _ *Context) *Match {
	if r.holds(s) {
		return nil
	}
	return zeroWidthAt(s, nil)
}

func (r *anchorRule) String() string {
	edge, scope := "start", "document"
	if r.edge == End {
		edge = "end"
	}
	if r.scope == Line {
		scope = "line"
	}
	return fmt.Sprintf("anchor[%s-of-%s]", edge, scope)
}

// endsWithLineBreak reports whether v terminates a line. A trailing "\n"
// covers "\r\n" as well; a bare "\r" is not a break.
func endsWithLineBreak(v string) bool {
	return strings.HasSuffix(v, "\n")
}

// startsWithLineBreak reports whether v opens with a line break.
func startsWithLineBreak(v string) bool {
	return strings.HasPrefix(v, "\n") || strings.HasPrefix(v, "\r\n")
}
