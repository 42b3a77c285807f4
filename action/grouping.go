package action

import (
	"github.com/lexrule/lexrule/rule"
	"github.com/lexrule/lexrule/token"
)

// GroupingMode controls how grouping treats sub-tokens that are already
// groups.
type GroupingMode int

const (
	// GroupPreserve keeps nested groups intact as single sub-tokens.
	GroupPreserve GroupingMode = iota
	// GroupFlatten splices nested groups' children into the new group
	// before wrapping.
	GroupFlatten
)

// groupingAction merges the whole matched span into one composite Group
// with a derived classifying definition.
type groupingAction struct {
	mode GroupingMode
}

// Grouping wraps the matched span into a single Group token. Spans of
// fewer than two tokens pass through unchanged, since a group requires
// at least two sub-tokens.
func Grouping(mode GroupingMode) Action {
	return &groupingAction{mode: mode}
}

// IsGrouping reports whether a carries grouping semantics. The grammar
// builder consults it for its auto-wrap heuristic.
func IsGrouping(a Action) bool {
	_, ok := a.(*groupingAction)
	return ok
}

func (a *groupingAction) Apply(m *rule.Match) []token.Token {
	subs := m.Tokens
	if a.mode == GroupFlatten {
		subs = flatten(subs)
	}
	if len(subs) < 2 {
		return copyTokens(subs)
	}
	g, err := token.NewGroup(subs)
	if err != nil {
		// NewGroup only fails on short or nil input, both excluded above.
		panic(err)
	}
	return []token.Token{g}
}

// flatten splices group sub-tokens recursively, bottom-up.
func flatten(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if g, ok := t.(*token.Group); ok {
			out = append(out, flatten(g.Tokens())...)
			continue
		}
		out = append(out, t)
	}
	return out
}
