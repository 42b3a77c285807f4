package rule

import "fmt"

// groupMarker tags a rule's matches as "already grouped". It changes no
// matching behavior; the grammar builder inspects the marker when
// deciding whether to wrap an ordered choice for a grouping action.
type groupMarker struct {
	sub Rule
}

// Group marks sub as producing grouped output. The returned rule matches
// exactly like sub, but the match reports the marker as its producing
// rule so the marking survives into results.
func Group(sub Rule) Rule {
	requireSubRules("Group", []Rule{sub})
	return &groupMarker{sub: sub}
}

// IsGrouped reports whether r carries the Group marker.
func IsGrouped(r Rule) bool {
	_, ok := r.(*groupMarker)
	return ok
}

// Unmark returns the rule inside a Group marker, or r itself when it is
// not marked.
func Unmark(r Rule) Rule {
	if g, ok := r.(*groupMarker); ok {
		return g.sub
	}
	return r
}

func (r *groupMarker) Match(s *Stream, ctx *Context) *Match {
	m := r.sub.Match(s, ctx)
	if m == nil {
		return nil
	}
	return &Match{Start: m.Start, End: m.End, Tokens: m.Tokens, Rule: r}
}

func (r *groupMarker) String() string { return fmt.Sprintf("group(%v)", r.sub) }
