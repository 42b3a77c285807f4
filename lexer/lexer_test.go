package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexrule/lexrule/token"
)

func defaultClasses(t *testing.T) []Class {
	t.Helper()
	return []Class{
		MustClass("number", `\d+`),
		MustClass("word", `[a-zA-Z]+`),
		MustClass("space", `[ \t]+`),
	}
}

func TestTokenizeClassifiesInOrder(t *testing.T) {
	l := New(defaultClasses(t))

	toks := l.Tokenize("abc 123")

	require.Len(t, toks, 3)
	assert.Equal(t, "abc", toks[0].Value())
	assert.Equal(t, "word", toks[0].Definition().Name())
	assert.Equal(t, " ", toks[1].Value())
	assert.Equal(t, "123", toks[2].Value())
	assert.Equal(t, "number", toks[2].Definition().Name())
}

func TestTokenizePositions(t *testing.T) {
	l := New([]Class{
		MustClass("word", `[a-z]+`),
		MustClass("newline", `\n`),
	})

	toks := l.Tokenize("ab\ncd")

	require.Len(t, toks, 3)
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos())
	assert.Equal(t, token.Position{Line: 1, Column: 3, Offset: 2}, toks[1].Pos())
	assert.Equal(t, token.Position{Line: 2, Column: 1, Offset: 3}, toks[2].Pos())
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 5}, toks[2].EndPos())
}

func TestTokenizeClassOrderIsPriority(t *testing.T) {
	// "if" is both a keyword and a word; the earlier class wins
	l := New([]Class{
		MustClass("keyword", `if|else`),
		MustClass("word", `[a-z]+`),
	})

	toks := l.Tokenize("if")
	require.Len(t, toks, 1)
	assert.Equal(t, "keyword", toks[0].Definition().Name())
}

func TestTokenizeFallback(t *testing.T) {
	l := New(defaultClasses(t))

	toks := l.Tokenize("a?b")

	require.Len(t, toks, 3)
	assert.Equal(t, "?", toks[1].Value())
	assert.Equal(t, token.Any, toks[1].Definition())

	t.Run("custom fallback", func(t *testing.T) {
		other := token.Classify("other", func(string) bool { return true })
		l := New(defaultClasses(t), WithFallback(other))
		toks := l.Tokenize("?")
		require.Len(t, toks, 1)
		assert.Equal(t, "other", toks[0].Definition().Name())
	})

	t.Run("multibyte runes stay whole", func(t *testing.T) {
		toks := l.Tokenize("é")
		require.Len(t, toks, 1)
		assert.Equal(t, "é", toks[0].Value())
	})
}

func TestTokenizeEscapes(t *testing.T) {
	l := New(defaultClasses(t), WithEscapes(token.Any))

	toks := l.Tokenize(`a\nb`)

	require.Len(t, toks, 3)
	esc, ok := toks[1].(*token.Escaped)
	require.True(t, ok)
	assert.Equal(t, "\n", esc.Value())
	assert.Equal(t, `\n`, esc.Raw())

	// the raw spelling occupies two input columns
	assert.Equal(t, token.Position{Line: 1, Column: 2, Offset: 1}, esc.Pos())
	assert.Equal(t, token.Position{Line: 1, Column: 4, Offset: 3}, toks[2].Pos())

	t.Run("literal escape", func(t *testing.T) {
		toks := l.Tokenize(`\\`)
		require.Len(t, toks, 1)
		esc := toks[0].(*token.Escaped)
		assert.Equal(t, `\`, esc.Value())
	})

	t.Run("escapes disabled by default", func(t *testing.T) {
		l := New(defaultClasses(t))
		toks := l.Tokenize(`\n`)
		require.Len(t, toks, 2)
		assert.Equal(t, `\`, toks[0].Value())
		assert.Equal(t, "n", toks[1].Value())
	})
}

func TestTokenizeEmptyInput(t *testing.T) {
	l := New(defaultClasses(t))
	assert.Empty(t, l.Tokenize(""))
}

func TestNewClassValidation(t *testing.T) {
	_, err := NewClass("broken", `(`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustClass("broken", `(`) })
}
