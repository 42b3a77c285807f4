package rule

import (
	"errors"
	"fmt"

	"github.com/lexrule/lexrule/token"
)

// Registration errors shared by the context and the grammar builder.
var (
	ErrEmptyName     = errors.New("rule: empty reference name")
	ErrDuplicateName = errors.New("rule: duplicate reference name")
	ErrSealedContext = errors.New("rule: context is sealed")
)

// RefKind tags the three reference forms a context can hold.
type RefKind int

const (
	// RuleRef resolves to a concrete rule, used by Recursive.
	RuleRef RefKind = iota
	// TokensRef exposes a recorded token list under a name.
	TokensRef
	// DynamicRef computes its rule lazily at match time.
	DynamicRef
)

// reference is one arena slot. Exactly one of the payload fields is set,
// according to kind.
type reference struct {
	kind    RefKind
	rule    Rule
	tokens  []token.Token
	resolve func(*Context) Rule
}

// Context is the named-reference registry rules consult at match time.
// References live in a flat arena addressed by integer id, with a
// name-to-id index built up during registration; Recursive rules hold
// names, not pointers, so reference cycles never form.
//
// Registration is append-only and stops once the context is sealed by
// the grammar builder.
type Context struct {
	refs   []reference
	index  map[string]int
	sealed bool
}

// NewContext builds an empty, unsealed context.
func NewContext() *Context {
	return &Context{index: make(map[string]int)}
}

func (c *Context) register(name string, ref reference) error {
	if c.sealed {
		return ErrSealedContext
	}
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := c.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.index[name] = len(c.refs)
	c.refs = append(c.refs, ref)
	return nil
}

// BindRule registers a concrete rule under name.
func (c *Context) BindRule(name string, r Rule) error {
	if r == nil {
		return fmt.Errorf("rule: nil rule for reference %q", name)
	}
	return c.register(name, reference{kind: RuleRef, rule: r})
}

// BindTokens records a token list under name, copied in.
func (c *Context) BindTokens(name string, toks []token.Token) error {
	owned := make([]token.Token, len(toks))
	copy(owned, toks)
	return c.register(name, reference{kind: TokensRef, tokens: owned})
}

// BindDynamic registers a reference resolved through a callback each
// time it is consulted.
func (c *Context) BindDynamic(name string, resolve func(*Context) Rule) error {
	if resolve == nil {
		return fmt.Errorf("rule: nil resolver for reference %q", name)
	}
	return c.register(name, reference{kind: DynamicRef, resolve: resolve})
}

// Resolve looks up the rule bound to name. Dynamic references are
// computed on every call; token references do not resolve to a rule.
func (c *Context) Resolve(name string) (Rule, bool) {
	id, ok := c.index[name]
	if !ok {
		return nil, false
	}
	ref := c.refs[id]
	switch ref.kind {
	case RuleRef:
		return ref.rule, true
	case DynamicRef:
		r := ref.resolve(c)
		return r, r != nil
	default:
		return nil, false
	}
}

// Tokens looks up the token list recorded under name.
func (c *Context) Tokens(name string) ([]token.Token, bool) {
	id, ok := c.index[name]
	if !ok || c.refs[id].kind != TokensRef {
		return nil, false
	}
	ref := c.refs[id]
	out := make([]token.Token, len(ref.tokens))
	copy(out, ref.tokens)
	return out, true
}

// Kind reports the reference form registered under name.
func (c *Context) Kind(name string) (RefKind, bool) {
	id, ok := c.index[name]
	if !ok {
		return 0, false
	}
	return c.refs[id].kind, true
}

// Seal makes the context immutable. Further registrations fail with
// ErrSealedContext.
func (c *Context) Seal() {
	c.sealed = true
}

// Sealed reports whether the context has been sealed.
func (c *Context) Sealed() bool { return c.sealed }

// recursiveRule defers to a named rule looked up at match time, which is
// what makes self-referential grammars possible.
type recursiveRule struct {
	name string
}

// Recursive builds a rule that resolves name through the context on
// every match attempt. An empty name panics.
func Recursive(name string) Rule {
	if name == "" {
		panic("rule: Recursive with empty name")
	}
	return &recursiveRule{name: name}
}

func (r *recursiveRule) Match(s *Stream, ctx *Context) *Match {
	if ctx == nil {
		panic(fmt.Sprintf("rule: recursive reference %q matched without a context", r.name))
	}
	resolved, ok := ctx.Resolve(r.name)
	if !ok {
		panic(fmt.Sprintf("rule: unresolved recursive reference %q", r.name))
	}
	return resolved.Match(s, ctx)
}

func (r *recursiveRule) String() string { return fmt.Sprintf("recursive(%s)", r.name) }
