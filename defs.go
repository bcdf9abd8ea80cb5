package qcalc

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Definitions is a table of named units and constants, plus metric prefixes
// that may be applied to some of the units. A Definitions is immutable once
// created and safe for concurrent use.
type Definitions struct {
	names    map[string]definition
	prefixes map[rune]AutoNum
}

type definition struct {
	q      Quantity
	prefix bool
}

// Lookup finds the quantity named by word. Names in the table match exactly;
// otherwise, a metric prefix followed by the name of a unit that accepts
// prefixes matches the prefixed unit.
func (d *Definitions) Lookup(word string) (Quantity, bool) {
	if def, ok := d.names[word]; ok {
		return def.q, true
	}
	r, sz := utf8.DecodeRuneInString(word)
	f, ok := d.prefixes[r]
	if !ok || sz == len(word) {
		return Quantity{}, false
	}
	def, ok := d.names[word[sz:]]
	if !ok || !def.prefix {
		return Quantity{}, false
	}
	return Quantity{Value: f.Mul(def.q.Value), Dim: def.q.Dim}, true
}

// Len returns the number of names in the table, not counting prefixed forms.
func (d *Definitions) Len() int {
	return len(d.names)
}

//go:embed units.yaml
var builtinYAML []byte

// Builtin returns the default definitions.
var Builtin = sync.OnceValue(func() *Definitions {
	d, err := LoadDefinitions(bytes.NewReader(builtinYAML))
	if err != nil {
		panic("qcalc: invalid builtin definitions: " + err.Error())
	}
	return d
})

type defsdoc struct {
	Prefixes  map[string]AutoNum  `yaml:"prefixes"`
	Units     map[string]defentry `yaml:"units"`
	Constants map[string]defentry `yaml:"constants"`
}

type defentry struct {
	Value  AutoNum         `yaml:"value"`
	Dim    map[string]int8 `yaml:"dim"`
	Prefix bool            `yaml:"prefix"`
}

// LoadDefinitions reads a definitions table from YAML. The document has three
// mappings: prefixes maps single characters to factors; units and constants
// map names to entries with a value, a dim mapping of SI base unit symbols to
// exponents, and for units, whether the unit accepts prefixes.
func LoadDefinitions(r io.Reader) (*Definitions, error) {
	var doc defsdoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("couldn't decode definitions: %w", err)
	}
	d := Definitions{
		names:    make(map[string]definition, len(doc.Units)+len(doc.Constants)),
		prefixes: make(map[rune]AutoNum, len(doc.Prefixes)),
	}
	for p, f := range doc.Prefixes {
		r, sz := utf8.DecodeRuneInString(p)
		if sz == 0 || sz != len(p) {
			return nil, fmt.Errorf("prefix %q is not a single character", p)
		}
		d.prefixes[r] = f
	}
	add := func(name string, e defentry, prefix bool) error {
		if _, ok := d.names[name]; ok {
			return fmt.Errorf("%q is defined twice", name)
		}
		if reserved(name) {
			return fmt.Errorf("%q is a reserved word", name)
		}
		if e.Value.Float64() == 0 {
			return fmt.Errorf("%q has no value", name)
		}
		var dim Dimension
		for sym, x := range e.Dim {
			k := baseIndex(sym)
			if k < 0 {
				return fmt.Errorf("%q has unknown base unit %q", name, sym)
			}
			dim.exp[k] = x
		}
		d.names[name] = definition{q: Quantity{Value: e.Value, Dim: dim}, prefix: prefix}
		return nil
	}
	for name, e := range doc.Units {
		if err := add(name, e, e.Prefix); err != nil {
			return nil, err
		}
	}
	for name, e := range doc.Constants {
		if e.Prefix {
			return nil, fmt.Errorf("constant %q cannot take prefixes", name)
		}
		if err := add(name, e, false); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

// baseIndex returns the index of the base quantity with the given SI unit
// symbol, or -1 if there is none.
func baseIndex(sym string) int {
	for k, s := range baseSymbols {
		if s == sym {
			return k
		}
	}
	return -1
}

// UnmarshalYAML decodes a scalar as an integer if it is one and as a float
// otherwise.
func (a *AutoNum) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", value.Line)
	}
	x, err := ParseNum(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %q is not a number", value.Line, value.Value)
	}
	*a = x
	return nil
}
