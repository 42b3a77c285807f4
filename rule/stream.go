package rule

import (
	"fmt"

	"github.com/lexrule/lexrule/token"
)

// Stream is a cursor over a read-only token slice. Two usage modes share
// the type: an engine-owned cursor mutated across a whole pass, and a
// rule's scratch cursor obtained from Lookahead, mutated locally and
// discarded on failure. Backtracking falls out of the second mode since
// the outer cursor is never touched.
type Stream struct {
	tokens []token.Token
	pos    int
}

// NewStream builds a cursor positioned at the start of tokens. The slice
// is shared, not copied; callers must not mutate it during a pass.
func NewStream(tokens []token.Token) *Stream {
	return &Stream{tokens: tokens}
}

// NewStreamAt builds a cursor at an explicit position. A position outside
// [0, len(tokens)] is a usage contract violation and panics.
func NewStreamAt(tokens []token.Token, pos int) *Stream {
	if pos < 0 || pos > len(tokens) {
		panic(fmt.Sprintf("rule: stream position %d outside [0, %d]", pos, len(tokens)))
	}
	return &Stream{tokens: tokens, pos: pos}
}

// HasMore reports whether the cursor is before the end of the slice.
func (s *Stream) HasMore() bool {
	return s.pos < len(s.tokens)
}

// Current returns the token under the cursor. Reading past the end is a
// usage contract violation and panics; it is never a soft non-match.
func (s *Stream) Current() token.Token {
	if !s.HasMore() {
		panic(fmt.Sprintf("rule: current position %d out of bounds (len %d)", s.pos, len(s.tokens)))
	}
	return s.tokens[s.pos]
}

// Advance moves the cursor n tokens forward. The cursor only ever moves
// forward: a negative n, or moving past the end of the slice, panics.
func (s *Stream) Advance(n int) {
	if n < 0 {
		panic(fmt.Sprintf("rule: negative advance %d", n))
	}
	if s.pos+n > len(s.tokens) {
		panic(fmt.Sprintf("rule: advance to %d past end of stream (len %d)", s.pos+n, len(s.tokens)))
	}
	s.pos += n
}

// Lookahead returns an independent cursor sharing the same underlying
// slice, for probing without mutating the receiver.
func (s *Stream) Lookahead() *Stream {
	return &Stream{tokens: s.tokens, pos: s.pos}
}

// ResetToStart rewinds the cursor to position 0.
func (s *Stream) ResetToStart() {
	s.pos = 0
}

// Pos is the current cursor position.
func (s *Stream) Pos() int { return s.pos }

// Len is the length of the underlying slice.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at an absolute index, independent of the cursor.
func (s *Stream) At(i int) token.Token {
	if i < 0 || i >= len(s.tokens) {
		panic(fmt.Sprintf("rule: index %d out of bounds (len %d)", i, len(s.tokens)))
	}
	return s.tokens[i]
}

// Range returns a fresh copy of the tokens in [start, end).
func (s *Stream) Range(start, end int) []token.Token {
	if start < 0 || end > len(s.tokens) || end < start {
		panic(fmt.Sprintf("rule: range [%d, %d) out of bounds (len %d)", start, end, len(s.tokens)))
	}
	out := make([]token.Token, end-start)
	copy(out, s.tokens[start:end])
	return out
}
