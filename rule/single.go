package rule

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/lexrule/lexrule/token"
)

// patternRule consumes exactly one token whose value fully matches a
// regular expression.
type patternRule struct {
	expr string
	re   *regexp.Regexp
}

// Pattern builds a single-token matcher from a regular expression. The
// token's whole value must match, not just a substring. A malformed
// expression is a construction error.
func Pattern(expr string) (Rule, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("rule: invalid pattern %q: %w", expr, err)
	}
	return &patternRule{expr: expr, re: re}, nil
}

// MustPattern is Pattern that panics on a malformed expression.
func MustPattern(expr string) Rule {
	r, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *patternRule) Match(s *Stream, _ *Context) *Match {
	if !s.HasMore() || !r.re.MatchString(s.Current().Value()) {
		return nil
	}
	return spanMatch(s, s.Pos(), s.Pos()+1, r)
}

func (r *patternRule) matchNegated(s *Stream, _ *Context) *Match {
	return negateSingle(s, func(t token.Token) bool {
		return r.re.MatchString(t.Value())
	})
}

func (r *patternRule) String() string { return fmt.Sprintf("pattern(%s)", r.expr) }

// lengthRule consumes exactly one token whose value length, in runes,
// lies in [min, max].
type lengthRule struct {
	min, max int
}

// Length builds a single-token matcher on value length in runes.
// Negative bounds or max < min are construction errors.
func Length(min, max int) (Rule, error) {
	if min < 0 || max < min {
		return nil, fmt.Errorf("rule: invalid length bounds [%d, %d]", min, max)
	}
	return &lengthRule{min: min, max: max}, nil
}

// MustLength is Length that panics on invalid bounds.
func MustLength(min, max int) Rule {
	r, err := Length(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *lengthRule) accepts(t token.Token) bool {
	n := utf8.RuneCountInString(t.Value())
	return n >= r.min && n <= r.max
}

func (r *lengthRule) Match(s *Stream, _ *Context) *Match {
	if !s.HasMore() || !r.accepts(s.Current()) {
		return nil
	}
	return spanMatch(s, s.Pos(), s.Pos()+1, r)
}

func (r *lengthRule) matchNegated(s *Stream, _ *Context) *Match {
	return negateSingle(s, r.accepts)
}

func (r *lengthRule) String() string { return fmt.Sprintf("length[%d,%d]", r.min, r.max) }

// negateSingle is the shared inverted branch for one-token rules: it
// consumes the current token iff the original predicate rejects it.
// Consumption stays one token wide, matching the underlying rule.
func negateSingle(s *Stream, accepts func(token.Token) bool) *Match {
	if !s.HasMore() || accepts(s.Current()) {
		return nil
	}
	return spanMatch(s, s.Pos(), s.Pos()+1, nil)
}
