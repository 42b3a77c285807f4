// Package formatter renders token streams and match results into
// human-readable text, mostly for debugging grammars and inspecting what
// a pass produced.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lexrule/lexrule/rule"
	"github.com/lexrule/lexrule/token"
)

var (
	defStyle     = color.New(color.FgYellow, color.Bold)
	valueStyle   = color.New(color.FgCyan)
	escapedStyle = color.New(color.FgMagenta)
	groupStyle   = color.New(color.FgGreen, color.Bold)
	posStyle     = color.New(color.FgHiBlue)
)

// Formatter writes token dumps. The zero value is not usable; construct
// with New or NewPlain.
type Formatter struct {
	colorized bool
}

// New builds a colorizing formatter.
func New() *Formatter { return &Formatter{colorized: true} }

// NewPlain builds a formatter without color codes, for logs and tests.
func NewPlain() *Formatter { return &Formatter{} }

func (f *Formatter) paint(style *color.Color, s string) string {
	if !f.colorized {
		return s
	}
	return style.Sprint(s)
}

// Tokens renders one token per line, indenting group members under
// their group.
func (f *Formatter) Tokens(toks []token.Token) string {
	var sb strings.Builder
	for _, tk := range toks {
		f.writeToken(&sb, tk, 0)
	}
	return sb.String()
}

func (f *Formatter) writeToken(sb *strings.Builder, tk token.Token, depth int) {
	indent := strings.Repeat("  ", depth)

	switch t := tk.(type) {
	case *token.Group:
		fmt.Fprintf(sb, "%s%s %s\n",
			indent,
			f.paint(groupStyle, "group"),
			f.paint(posStyle, f.span(t)))
		for _, sub := range t.Tokens() {
			f.writeToken(sb, sub, depth+1)
		}
	case *token.Escaped:
		fmt.Fprintf(sb, "%s%s %s %s\n",
			indent,
			f.paint(defStyle, t.Definition().Name()),
			f.paint(escapedStyle, fmt.Sprintf("%q<-%q", t.Value(), t.Raw())),
			f.paint(posStyle, t.Pos().String()))
	default:
		fmt.Fprintf(sb, "%s%s %s %s\n",
			indent,
			f.paint(defStyle, tk.Definition().Name()),
			f.paint(valueStyle, fmt.Sprintf("%q", tk.Value())),
			f.paint(posStyle, tk.Pos().String()))
	}
}

func (f *Formatter) span(g *token.Group) string {
	return fmt.Sprintf("%s..%s", g.Pos(), g.EndPos())
}

// Match renders a match result: span indices, the producing rule, and
// the consumed tokens.
func (f *Formatter) Match(m *rule.Match) string {
	if m == nil {
		return "no match\n"
	}
	header := fmt.Sprintf("match [%d, %d) by %v", m.Start, m.End, m.Rule)
	if m.ZeroWidth() {
		header = fmt.Sprintf("match [%d, %d) zero-width by %v", m.Start, m.End, m.Rule)
	}
	var sb strings.Builder
	sb.WriteString(f.paint(groupStyle, header))
	sb.WriteByte('\n')
	for _, tk := range m.Tokens {
		f.writeToken(&sb, tk, 1)
	}
	return sb.String()
}
