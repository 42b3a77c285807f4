package codec

import (
	"errors"
	"fmt"

	"github.com/lexrule/lexrule/token"
)

// Registry errors.
var (
	ErrDuplicateDefinition = errors.New("codec: duplicate definition name")
	ErrUnknownDefinition   = errors.New("codec: unknown definition name")
)

// Registry maps definition names back to live definitions, which is what
// decoding needs: predicates do not serialize, so records carry names
// and the registry supplies the behavior.
type Registry struct {
	defs map[string]token.Definition
}

// NewRegistry builds a registry preloaded with token.Any.
func NewRegistry() *Registry {
	return &Registry{defs: map[string]token.Definition{
		token.Any.Name(): token.Any,
	}}
}

// Register adds a definition under its own name. Registering a second
// definition with the same name is an error.
func (r *Registry) Register(def token.Definition) error {
	if def == nil {
		return fmt.Errorf("codec: nil definition")
	}
	name := def.Name()
	if _, exists := r.defs[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateDefinition, name)
	}
	r.defs[name] = def
	return nil
}

// Lookup resolves a definition by name.
func (r *Registry) Lookup(name string) (token.Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}
