// Package codec serializes token lists for fixtures and tooling. Tokens
// flatten into records carrying kind, definition name, value, raw
// spelling, position, and children; records encode as YAML or
// MessagePack. Decoding resolves definition names through a Registry.
package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/lexrule/lexrule/token"
)

// Record kinds.
const (
	KindSimple  = "simple"
	KindGroup   = "group"
	KindEscaped = "escaped"
)

// PositionRecord is the serialized form of a token.Position.
type PositionRecord struct {
	Line   int `yaml:"line" msgpack:"line"`
	Column int `yaml:"column" msgpack:"column"`
	Offset int `yaml:"offset" msgpack:"offset"`
}

// Record is the flat serialized form of one token. Group records carry
// children and no definition name: their synthetic definition is derived
// again at decode time.
type Record struct {
	Kind     string          `yaml:"kind" msgpack:"kind"`
	Def      string          `yaml:"def,omitempty" msgpack:"def,omitempty"`
	Value    string          `yaml:"value,omitempty" msgpack:"value,omitempty"`
	Raw      string          `yaml:"raw,omitempty" msgpack:"raw,omitempty"`
	Pos      *PositionRecord `yaml:"pos,omitempty" msgpack:"pos,omitempty"`
	Children []Record        `yaml:"children,omitempty" msgpack:"children,omitempty"`
}

// document is the top-level encoding envelope.
type document struct {
	Tokens []Record `yaml:"tokens" msgpack:"tokens"`
}

// Encode flattens a token list into records.
func Encode(toks []token.Token) []Record {
	out := make([]Record, len(toks))
	for i, tk := range toks {
		out[i] = encodeToken(tk)
	}
	return out
}

func encodeToken(tk token.Token) Record {
	rec := Record{Pos: encodePos(tk.Pos())}
	switch t := tk.(type) {
	case *token.Group:
		rec.Kind = KindGroup
		rec.Children = Encode(t.Tokens())
		rec.Pos = nil
	case *token.Escaped:
		rec.Kind = KindEscaped
		rec.Def = t.Definition().Name()
		rec.Value = t.Value()
		rec.Raw = t.Raw()
	default:
		rec.Kind = KindSimple
		rec.Def = tk.Definition().Name()
		rec.Value = tk.Value()
	}
	return rec
}

func encodePos(p token.Position) *PositionRecord {
	if !p.IsPositioned() {
		return nil
	}
	return &PositionRecord{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// Decode rebuilds a token list from records, resolving definition names
// through reg.
func Decode(records []Record, reg *Registry) ([]token.Token, error) {
	out := make([]token.Token, len(records))
	for i, rec := range records {
		tk, err := decodeRecord(rec, reg)
		if err != nil {
			return nil, err
		}
		out[i] = tk
	}
	return out, nil
}

func decodeRecord(rec Record, reg *Registry) (token.Token, error) {
	pos := decodePos(rec.Pos)
	switch rec.Kind {
	case KindGroup:
		subs, err := Decode(rec.Children, reg)
		if err != nil {
			return nil, err
		}
		return token.NewGroup(subs)
	case KindEscaped:
		def, err := lookup(reg, rec.Def)
		if err != nil {
			return nil, err
		}
		return token.NewEscaped(def, rec.Value, rec.Raw, pos)
	case KindSimple:
		def, err := lookup(reg, rec.Def)
		if err != nil {
			return nil, err
		}
		return token.NewSimple(def, rec.Value, pos)
	default:
		return nil, fmt.Errorf("codec: unknown record kind %q", rec.Kind)
	}
}

func lookup(reg *Registry, name string) (token.Definition, error) {
	def, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefinition, name)
	}
	return def, nil
}

func decodePos(p *PositionRecord) token.Position {
	if p == nil {
		return token.Unpositioned
	}
	return token.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// MarshalYAML encodes a token list as a YAML document.
func MarshalYAML(toks []token.Token) ([]byte, error) {
	return yaml.Marshal(document{Tokens: Encode(toks)})
}

// UnmarshalYAML decodes a YAML document produced by MarshalYAML.
func UnmarshalYAML(data []byte, reg *Registry) ([]token.Token, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return Decode(doc.Tokens, reg)
}

// MarshalMsgpack encodes a token list in MessagePack.
func MarshalMsgpack(toks []token.Token) ([]byte, error) {
	return msgpack.Marshal(document{Tokens: Encode(toks)})
}

// UnmarshalMsgpack decodes a MessagePack payload produced by
// MarshalMsgpack.
func UnmarshalMsgpack(data []byte, reg *Registry) ([]token.Token, error) {
	var doc document
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return Decode(doc.Tokens, reg)
}
