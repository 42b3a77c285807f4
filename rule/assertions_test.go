package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookahead(t *testing.T) {
	target := MustPattern("target")

	t.Run("positive probe is zero-width", func(t *testing.T) {
		s := NewStream(tokens("target", "x"))
		m := Lookahead(target, Positive).Match(s, nil)
		require.NotNil(t, m)
		assert.True(t, m.ZeroWidth())
		assert.Empty(t, m.Tokens)
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("positive probe fails on mismatch", func(t *testing.T) {
		s := NewStream(tokens("other"))
		assert.Nil(t, Lookahead(target, Positive).Match(s, nil))
		assert.Equal(t, 0, s.Pos())
	})

	t.Run("negative probe inverts", func(t *testing.T) {
		s := NewStream(tokens("other"))
		m := Lookahead(target, Negative).Match(s, nil)
		require.NotNil(t, m)
		assert.True(t, m.ZeroWidth())

		s = NewStream(tokens("target"))
		assert.Nil(t, Lookahead(target, Negative).Match(s, nil))
	})

	t.Run("probe never consumes through a sequence", func(t *testing.T) {
		seq := Sequence(MustPattern("a"), MustPattern("b"))
		s := NewStream(tokens("a", "b"))
		m := Lookahead(seq, Positive).Match(s, nil)
		require.NotNil(t, m)
		assert.Equal(t, 0, m.End)
	})
}

func TestDocumentAnchors(t *testing.T) {
	startDoc := Anchor(Start, Document)
	endDoc := Anchor(End, Document)

	t.Run("empty stream matches both edges at index 0", func(t *testing.T) {
		s := NewStream(nil)
		require.NotNil(t, startDoc.Match(s, nil))
		m := endDoc.Match(s, nil)
		require.NotNil(t, m)
		assert.Equal(t, 0, m.Start)
		assert.Equal(t, 0, m.End)
	})

	t.Run("start only at position zero", func(t *testing.T) {
		s := NewStream(tokens("a", "b"))
		require.NotNil(t, startDoc.Match(s, nil))
		s.Advance(1)
		assert.Nil(t, startDoc.Match(s, nil))
	})

	t.Run("end only past the last token", func(t *testing.T) {
		s := NewStream(tokens("a", "b"))
		s.Advance(1) // positioned before the last token
		assert.Nil(t, endDoc.Match(s, nil))
		s.Advance(1)
		require.NotNil(t, endDoc.Match(s, nil))
	})
}

func TestLineAnchors(t *testing.T) {
	startLine := Anchor(Start, Line)
	endLine := Anchor(End, Line)

	t.Run("document edges count as line edges", func(t *testing.T) {
		s := NewStream(tokens("a"))
		require.NotNil(t, startLine.Match(s, nil))
		s.Advance(1)
		require.NotNil(t, endLine.Match(s, nil))
	})

	t.Run("newline-terminated previous token starts a line", func(t *testing.T) {
		s := NewStreamAt(tokens("a\n", "b"), 1)
		require.NotNil(t, startLine.Match(s, nil))

		s = NewStreamAt(tokens("a", "b"), 1)
		assert.Nil(t, startLine.Match(s, nil))
	})

	t.Run("crlf counts as a line break", func(t *testing.T) {
		s := NewStreamAt(tokens("a\r\n", "b"), 1)
		require.NotNil(t, startLine.Match(s, nil))
	})

	t.Run("bare carriage return is not a line break", func(t *testing.T) {
		s := NewStreamAt(tokens("a\r", "b"), 1)
		assert.Nil(t, startLine.Match(s, nil))
	})

	t.Run("newline-leading current token ends a line", func(t *testing.T) {
		s := NewStreamAt(tokens("a", "\nb"), 1)
		require.NotNil(t, endLine.Match(s, nil))

		s = NewStreamAt(tokens("a", "b"), 1)
		assert.Nil(t, endLine.Match(s, nil))

		s = NewStreamAt(tokens("a", "\r\nb"), 1)
		require.NotNil(t, endLine.Match(s, nil))
	})
}
