package token

import (
	"fmt"
	"regexp"
	"strings"
)

// Definition classifies token values. Every token carries the definition
// that produced it, and the definition must accept the token's value at
// construction time.
type Definition interface {
	Name() string
	Matches(value string) bool
}

var (
	_ Definition = (*classDefinition)(nil)
	_ Definition = (*exactDefinition)(nil)
	_ Definition = (*patternDefinition)(nil)
	_ Definition = (*groupDefinition)(nil)
)

// Any accepts every value. It classifies synthetic tokens and test
// fixtures that have no meaningful lexical class.
var Any Definition = Classify("any", func(string) bool { return true })

// classDefinition backs Classify: an arbitrary predicate with a name.
type classDefinition struct {
	name string
	pred func(string) bool
}

// Classify builds a definition from a predicate. A nil predicate panics;
// there is no sensible classification without one.
func Classify(name string, pred func(string) bool) Definition {
	if pred == nil {
		panic("token: Classify called with nil predicate")
	}
	return &classDefinition{name: name, pred: pred}
}

func (d *classDefinition) Name() string          { return d.name }
func (d *classDefinition) Matches(v string) bool { return d.pred(v) }

// exactDefinition matches one literal spelling.
type exactDefinition struct {
	name    string
	literal string
}

// Exact builds a definition accepting exactly one literal value.
func Exact(name, literal string) Definition {
	return &exactDefinition{name: name, literal: literal}
}

func (d *exactDefinition) Name() string          { return d.name }
func (d *exactDefinition) Matches(v string) bool { return v == d.literal }

// patternDefinition matches values that fully match a regular expression.
type patternDefinition struct {
	name string
	re   *regexp.Regexp
}

// ByPattern builds a definition accepting values that match expr in full.
func ByPattern(name, expr string) (Definition, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("token: invalid pattern for definition %q: %w", name, err)
	}
	return &patternDefinition{name: name, re: re}, nil
}

// MustByPattern is ByPattern that panics on a malformed expression.
func MustByPattern(name, expr string) Definition {
	def, err := ByPattern(name, expr)
	if err != nil {
		panic(err)
	}
	return def
}

func (d *patternDefinition) Name() string          { return d.name }
func (d *patternDefinition) Matches(v string) bool { return d.re.MatchString(v) }

// groupDefinition is the synthetic definition derived for a Group: it
// accepts exactly the concatenation of the sub-token values and names
// itself after the sub-token definitions.
type groupDefinition struct {
	name  string
	value string
}

func deriveGroupDefinition(subs []Token, value string) Definition {
	names := make([]string, len(subs))
	for i, sub := range subs {
		names[i] = sub.Definition().Name()
	}
	return &groupDefinition{
		name:  "group(" + strings.Join(names, "+") + ")",
		value: value,
	}
}

func (d *groupDefinition) Name() string          { return d.name }
func (d *groupDefinition) Matches(v string) bool { return v == d.value }
