package rule

import "fmt"

// boundaryRule matches a delimited span: an opening rule, then the body
// rule repeated until the closing rule matches, then the close. Typical
// use is comments and other bracketed regions.
type boundaryRule struct {
	open, body, close Rule
}

// Boundary builds a delimited-span matcher. The close rule is probed
// before each body repetition, so the body never swallows the closing
// delimiter.
func Boundary(open, body, close Rule) Rule {
	requireSubRules("Boundary", []Rule{open, body, close})
	return &boundaryRule{open: open, body: body, close: close}
}

func (r *boundaryRule) Match(s *Stream, ctx *Context) *Match {
	scratch := s.Lookahead()

	m := r.open.Match(scratch, ctx)
	if m == nil {
		return nil
	}
	scratch.Advance(m.Width())

	for {
		if mc := r.close.Match(scratch, ctx); mc != nil {
			scratch.Advance(mc.Width())
			return spanMatch(s, s.Pos(), scratch.Pos(), r)
		}
		mb := r.body.Match(scratch, ctx)
		if mb == nil {
			return nil
		}
		if mb.ZeroWidth() {
			// A zero-width body can never reach the close.
			return nil
		}
		scratch.Advance(mb.Width())
	}
}

func (r *boundaryRule) String() string {
	return fmt.Sprintf("boundary(%v, %v, %v)", r.open, r.body, r.close)
}
