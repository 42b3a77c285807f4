package token

import "fmt"

// Position locates a token in the original input. Line and Column are
// 1-based; Offset is the 0-based rune offset from the start of the input.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Unpositioned is the sentinel for tokens that carry no source location,
// such as synthetic tokens emitted by rewrite actions.
var Unpositioned = Position{Line: 0, Column: 0, Offset: -1}

// IsPositioned reports whether p refers to an actual input location.
func (p Position) IsPositioned() bool {
	return p.Offset >= 0
}

// Advance returns the position immediately after consuming s starting at p.
// Line breaks inside s bump the line counter and reset the column.
// Advancing Unpositioned yields Unpositioned.
func (p Position) Advance(s string) Position {
	if !p.IsPositioned() {
		return p
	}
	for _, r := range s {
		p.Offset++
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	return p
}

func (p Position) String() string {
	if !p.IsPositioned() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
