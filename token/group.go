package token

import (
	"fmt"
	"strings"
)

// Group is a composite token owning an ordered, immutable list of at
// least two sub-tokens. Its value is the concatenation of the sub-token
// values and its positions derive from the first and last sub-token.
type Group struct {
	def   Definition
	subs  []Token
	value string
}

// NewGroup builds a group over a copy of subs, deriving a synthetic
// definition that accepts the concatenated value. Fewer than two
// sub-tokens, or a nil sub-token, is a construction error.
func NewGroup(subs []Token) (*Group, error) {
	if len(subs) < 2 {
		return nil, fmt.Errorf("token: group needs at least 2 sub-tokens, got %d", len(subs))
	}
	var sb strings.Builder
	owned := make([]Token, len(subs))
	for i, sub := range subs {
		if sub == nil {
			return nil, fmt.Errorf("token: nil sub-token at index %d", i)
		}
		owned[i] = sub
		sb.WriteString(sub.Value())
	}
	value := sb.String()
	return &Group{
		def:   deriveGroupDefinition(owned, value),
		subs:  owned,
		value: value,
	}, nil
}

// MustGroup is NewGroup for fixture code; it panics on a construction error.
func MustGroup(subs ...Token) *Group {
	g, err := NewGroup(subs)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Group) Value() string          { return g.value }
func (g *Group) Definition() Definition { return g.def }

// Pos is the start of the first sub-token, which may itself be unpositioned.
func (g *Group) Pos() Position { return g.subs[0].Pos() }

// EndPos is the end of the last sub-token.
func (g *Group) EndPos() Position { return g.subs[len(g.subs)-1].EndPos() }

// Tokens returns a copy of the sub-token list.
func (g *Group) Tokens() []Token {
	out := make([]Token, len(g.subs))
	copy(out, g.subs)
	return out
}

// Len is the number of direct sub-tokens.
func (g *Group) Len() int { return len(g.subs) }

// At returns the i-th sub-token.
func (g *Group) At(i int) Token { return g.subs[i] }

func (g *Group) String() string {
	parts := make([]string, len(g.subs))
	for i, sub := range g.subs {
		parts[i] = fmt.Sprint(sub)
	}
	return "group[" + strings.Join(parts, " ") + "]"
}
