// Package token defines the immutable lexical units the matching engine
// operates on: positioned values classified by a Definition, either simple,
// escaped, or composed into groups by rewrite actions.
package token

import "fmt"

// Token is the unit the matching engine consumes and produces.
type Token interface {
	// Value is the effective text of the token.
	Value() string
	// Definition is the classifying predicate that accepted Value.
	Definition() Definition
	// Pos is the start position, possibly Unpositioned.
	Pos() Position
	// EndPos is the position just past the token, possibly Unpositioned.
	EndPos() Position
}

var (
	_ Token = (*Simple)(nil)
	_ Token = (*Group)(nil)
	_ Token = (*Escaped)(nil)
)

// Simple is a single lexed token.
type Simple struct {
	def   Definition
	value string
	pos   Position
}

// NewSimple builds a positioned token. The definition must accept the
// value: a rejected value is a construction error, not a deferred match
// failure.
func NewSimple(def Definition, value string, pos Position) (*Simple, error) {
	if def == nil {
		return nil, fmt.Errorf("token: nil definition")
	}
	if !def.Matches(value) {
		return nil, fmt.Errorf("token: definition %q rejects value %q", def.Name(), value)
	}
	return &Simple{def: def, value: value, pos: pos}, nil
}

// MustSimple is NewSimple for fixture and grammar-authoring code; it
// panics on a rejected value.
func MustSimple(def Definition, value string, pos Position) *Simple {
	t, err := NewSimple(def, value, pos)
	if err != nil {
		panic(err)
	}
	return t
}

// Text builds an unpositioned token classified by Any. Mostly useful for
// synthetic rewrites and tests.
func Text(value string) *Simple {
	return &Simple{def: Any, value: value, pos: Unpositioned}
}

func (t *Simple) Value() string          { return t.value }
func (t *Simple) Definition() Definition { return t.def }
func (t *Simple) Pos() Position          { return t.pos }
func (t *Simple) EndPos() Position       { return t.pos.Advance(t.value) }

func (t *Simple) String() string {
	return fmt.Sprintf("%s(%q)", t.def.Name(), t.value)
}

// Escaped is a token whose spelling in the input differs from its
// effective value, e.g. the two characters `\n` lexed into one newline.
type Escaped struct {
	def   Definition
	value string
	raw   string
	pos   Position
}

// NewEscaped builds an escaped token. The definition classifies the
// effective value, not the raw spelling.
func NewEscaped(def Definition, value, raw string, pos Position) (*Escaped, error) {
	if def == nil {
		return nil, fmt.Errorf("token: nil definition")
	}
	if !def.Matches(value) {
		return nil, fmt.Errorf("token: definition %q rejects unescaped value %q", def.Name(), value)
	}
	return &Escaped{def: def, value: value, raw: raw, pos: pos}, nil
}

func (t *Escaped) Value() string          { return t.value }
func (t *Escaped) Definition() Definition { return t.def }
func (t *Escaped) Pos() Position          { return t.pos }

// EndPos advances over the raw spelling, which is what occupied the input.
func (t *Escaped) EndPos() Position { return t.pos.Advance(t.raw) }

// Raw is the escaped spelling as it appeared in the input.
func (t *Escaped) Raw() string { return t.raw }

func (t *Escaped) String() string {
	return fmt.Sprintf("%s(%q<-%q)", t.def.Name(), t.value, t.raw)
}
