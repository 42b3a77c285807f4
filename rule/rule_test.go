package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysAndNever(t *testing.T) {
	s := NewStream(tokens("a"))

	m := Always().Match(s, nil)
	require.NotNil(t, m)
	assert.True(t, m.ZeroWidth())
	assert.Empty(t, m.Tokens)

	assert.Nil(t, Never().Match(s, nil))
	assert.Equal(t, 0, s.Pos())
}

func TestPattern(t *testing.T) {
	digits := MustPattern(`\d+`)

	t.Run("matching token", func(t *testing.T) {
		s := NewStream(tokens("123", "abc"))
		m := digits.Match(s, nil)
		require.NotNil(t, m)
		assert.Equal(t, 0, m.Start)
		assert.Equal(t, 1, m.End)
		require.Len(t, m.Tokens, 1)
		assert.Equal(t, "123", m.Tokens[0].Value())
		// the caller's cursor is never moved by a rule
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("non-matching token", func(t *testing.T) {
		s := NewStream(tokens("abc"))
		assert.Nil(t, digits.Match(s, nil))
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("whole value must match", func(t *testing.T) {
		s := NewStream(tokens("123x"))
		assert.Nil(t, digits.Match(s, nil))
	})

	t.Run("exhausted stream", func(t *testing.T) {
		s := NewStreamAt(tokens("123"), 1)
		assert.Nil(t, digits.Match(s, nil))
	})

	t.Run("malformed expression", func(t *testing.T) {
		_, err := Pattern(`(`)
		assert.Error(t, err)
		assert.Panics(t, func() { MustPattern(`(`) })
	})
}

func TestLength(t *testing.T) {
	r := MustLength(2, 3)

	s := NewStream(tokens("ab"))
	require.NotNil(t, r.Match(s, nil))

	s = NewStream(tokens("abcd"))
	assert.Nil(t, r.Match(s, nil))

	s = NewStream(tokens("a"))
	assert.Nil(t, r.Match(s, nil))

	// length counts runes, not bytes
	s = NewStream(tokens("äö"))
	require.NotNil(t, r.Match(s, nil))

	_, err := Length(-1, 2)
	assert.Error(t, err)
	_, err = Length(3, 2)
	assert.Error(t, err)
}

func TestSequence(t *testing.T) {
	a := MustPattern("a")
	b := MustPattern("b")

	t.Run("consumes the combined span", func(t *testing.T) {
		s := NewStream(tokens("a", "b", "c"))
		m := Sequence(a, b).Match(s, nil)
		require.NotNil(t, m)
		assert.Equal(t, 0, m.Start)
		assert.Equal(t, 2, m.End)
		require.Len(t, m.Tokens, 2)
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("atomic rollback on failure", func(t *testing.T) {
		s := NewStream(tokens("a", "x"))
		assert.Nil(t, Sequence(a, b).Match(s, nil))
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("empty sequence is a zero-width success", func(t *testing.T) {
		m := Sequence().Match(NewStream(tokens("a")), nil)
		require.NotNil(t, m)
		assert.True(t, m.ZeroWidth())
	})

	t.Run("nil sub-rule panics", func(t *testing.T) {
		assert.Panics(t, func() { Sequence(a, nil) })
	})
}

func TestAnyOfDeclarationOrder(t *testing.T) {
	// both alternatives match "ab"; the first one declared wins even
	// though the second consumes more
	short := MustPattern("ab")
	long := Sequence(MustPattern("ab"), MustPattern("c"))

	s := NewStream(tokens("ab", "c"))
	m := AnyOf(short, long).Match(s, nil)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.End)
	assert.Same(t, short, m.Rule)

	assert.Nil(t, AnyOf().Match(s, nil))

	alts, ok := Alternatives(AnyOf(short, long))
	require.True(t, ok)
	assert.Len(t, alts, 2)
	_, ok = Alternatives(short)
	assert.False(t, ok)
}

func TestOptionalNeverFails(t *testing.T) {
	digits := MustPattern(`\d+`)
	opt := Optional(digits)

	s := NewStream(tokens("123"))
	m := opt.Match(s, nil)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.End)

	s = NewStream(tokens("abc"))
	m = opt.Match(s, nil)
	require.NotNil(t, m)
	assert.True(t, m.ZeroWidth())

	// total even on an exhausted stream
	s = NewStreamAt(tokens("abc"), 1)
	require.NotNil(t, opt.Match(s, nil))
}

func TestRepeat(t *testing.T) {
	digits := MustPattern(`\d+`)

	t.Run("greedy within bounds", func(t *testing.T) {
		r := MustRepeat(digits, 2, 4)
		s := NewStream(tokens("1", "2", "3", "x"))
		m := r.Match(s, nil)
		require.NotNil(t, m)
		assert.Equal(t, 3, m.End)
		assert.Len(t, m.Tokens, 3)
	})

	t.Run("stops at max", func(t *testing.T) {
		r := MustRepeat(digits, 0, 2)
		s := NewStream(tokens("1", "2", "3"))
		m := r.Match(s, nil)
		require.NotNil(t, m)
		assert.Equal(t, 2, m.End)
	})

	t.Run("fails below min with no consumption", func(t *testing.T) {
		r := MustRepeat(digits, 2, 4)
		s := NewStream(tokens("1", "x"))
		assert.Nil(t, r.Match(s, nil))
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("zero minimum is a zero-width success", func(t *testing.T) {
		r := MustRepeat(digits, 0, Unbounded)
		m := r.Match(NewStream(tokens("x")), nil)
		require.NotNil(t, m)
		assert.True(t, m.ZeroWidth())
	})

	t.Run("zero-width sub-rule terminates", func(t *testing.T) {
		r := MustRepeat(Always(), 0, Unbounded)
		m := r.Match(NewStream(tokens("a", "b")), nil)
		require.NotNil(t, m)
		assert.True(t, m.ZeroWidth())
	})

	t.Run("invalid bounds", func(t *testing.T) {
		_, err := Repeat(digits, -1, 2)
		assert.Error(t, err)
		_, err = Repeat(digits, 3, 2)
		assert.Error(t, err)
	})
}

func TestBoundary(t *testing.T) {
	open := MustPattern(`/\*`)
	body := MustLength(0, Unbounded)
	closing := MustPattern(`\*/`)
	comment := Boundary(open, body, closing)

	t.Run("delimited span", func(t *testing.T) {
		s := NewStream(tokens("/*", "a", "b", "*/", "c"))
		m := comment.Match(s, nil)
		require.NotNil(t, m)
		assert.Equal(t, 0, m.Start)
		assert.Equal(t, 4, m.End)
	})

	t.Run("empty span", func(t *testing.T) {
		s := NewStream(tokens("/*", "*/"))
		m := comment.Match(s, nil)
		require.NotNil(t, m)
		assert.Equal(t, 2, m.End)
	})

	t.Run("unterminated", func(t *testing.T) {
		s := NewStream(tokens("/*", "a", "b"))
		assert.Nil(t, comment.Match(s, nil))
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("no open", func(t *testing.T) {
		s := NewStream(tokens("a", "*/"))
		assert.Nil(t, comment.Match(s, nil))
	})
}

func TestGroupMarker(t *testing.T) {
	digits := MustPattern(`\d+`)
	marked := Group(digits)

	assert.True(t, IsGrouped(marked))
	assert.False(t, IsGrouped(digits))
	assert.Same(t, digits, Unmark(marked))
	assert.Same(t, digits, Unmark(digits))

	s := NewStream(tokens("42"))
	m := marked.Match(s, nil)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.End)
	// the marker reports itself as the producing rule
	assert.Same(t, marked, m.Rule)

	assert.Nil(t, marked.Match(NewStream(tokens("x")), nil))
}
