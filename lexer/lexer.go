// Package lexer turns raw text into the flat token list the matching
// engine consumes. The classification policy is entirely caller-supplied
// as an ordered list of classes; the lexer only walks the input, tracks
// positions, resolves escape sequences, and falls back to single-rune
// tokens so it never fails mid-input.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/lexrule/lexrule/token"
)

// Class pairs a prefix scanner with the definition that classifies the
// scanned text. Classes are tried in declaration order; the first one
// whose expression matches a non-empty prefix wins.
type Class struct {
	def    token.Definition
	prefix *regexp.Regexp
}

// NewClass builds a class from a regular expression. The same expression
// both scans a prefix of the remaining input and, anchored on both
// sides, classifies the produced token values.
func NewClass(name, expr string) (Class, error) {
	prefix, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return Class{}, fmt.Errorf("lexer: invalid class %q: %w", name, err)
	}
	def, err := token.ByPattern(name, expr)
	if err != nil {
		return Class{}, err
	}
	return Class{def: def, prefix: prefix}, nil
}

// MustClass is NewClass that panics on a malformed expression.
func MustClass(name, expr string) Class {
	c, err := NewClass(name, expr)
	if err != nil {
		panic(err)
	}
	return c
}

// Definition exposes the class's token definition, for codec registries
// and grammar rules that want to reuse it.
func (c Class) Definition() token.Definition { return c.def }

// Lexer scans input strings into token lists.
type Lexer struct {
	classes   []Class
	fallback  token.Definition
	escapeDef token.Definition
}

// Option adjusts lexer behavior.
type Option func(*Lexer)

// WithFallback sets the definition attached to unclassified single-rune
// tokens. The default is token.Any.
func WithFallback(def token.Definition) Option {
	return func(l *Lexer) { l.fallback = def }
}

// WithEscapes enables backslash escape sequences. A backslash followed
// by any rune becomes one Escaped token carrying the effective value
// (\n, \t and \r map to their control characters, everything else to
// the rune itself) classified by def.
func WithEscapes(def token.Definition) Option {
	return func(l *Lexer) { l.escapeDef = def }
}

// New builds a lexer over an ordered class list.
func New(classes []Class, opts ...Option) *Lexer {
	l := &Lexer{
		classes:  append([]Class(nil), classes...),
		fallback: token.Any,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans the whole input. Every produced token carries its
// source position; the scan cannot fail because unclassified runes fall
// back to single-rune tokens.
func (l *Lexer) Tokenize(input string) []token.Token {
	var out []token.Token
	pos := token.Position{Line: 1, Column: 1, Offset: 0}

	for i := 0; i < len(input); {
		rest := input[i:]

		if tok, consumed := l.scanEscape(rest, pos); tok != nil {
			out = append(out, tok)
			pos = pos.Advance(consumed)
			i += len(consumed)
			continue
		}

		if tok, consumed := l.scanClass(rest, pos); tok != nil {
			out = append(out, tok)
			pos = pos.Advance(consumed)
			i += len(consumed)
			continue
		}

		// unclassified: emit a single rune under the fallback definition,
		// or under Any when the fallback rejects it
		_, size := utf8.DecodeRuneInString(rest)
		consumed := rest[:size]
		tok, err := token.NewSimple(l.fallback, consumed, pos)
		if err != nil {
			tok = token.MustSimple(token.Any, consumed, pos)
		}
		out = append(out, tok)
		pos = pos.Advance(consumed)
		i += len(consumed)
	}
	return out
}

// scanClass tries every class in order against the remaining input.
func (l *Lexer) scanClass(rest string, pos token.Position) (token.Token, string) {
	for _, c := range l.classes {
		value := c.prefix.FindString(rest)
		if value == "" {
			continue
		}
		return token.MustSimple(c.def, value, pos), value
	}
	return nil, ""
}

// scanEscape consumes a backslash escape when escapes are enabled.
func (l *Lexer) scanEscape(rest string, pos token.Position) (token.Token, string) {
	if l.escapeDef == nil || len(rest) < 2 || rest[0] != '\\' {
		return nil, ""
	}
	r, size := utf8.DecodeRuneInString(rest[1:])
	raw := rest[:1+size]
	value := unescape(r)

	tok, err := token.NewEscaped(l.escapeDef, value, raw, pos)
	if err != nil {
		// the escape definition rejects this value: let the ordinary
		// classes have a go at the backslash instead
		return nil, ""
	}
	return tok, raw
}

// unescape maps an escaped rune to its effective value.
func unescape(r rune) string {
	switch r {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	default:
		return string(r)
	}
}
