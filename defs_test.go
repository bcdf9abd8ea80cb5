package qcalc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLookup(t *testing.T) {
	d := Builtin()
	require.Greater(t, d.Len(), 50)
	cases := []struct {
		word string
		want Quantity
	}{
		{"m", Quantity{Value: Int(1), Dim: BaseDimension(Length)}},
		{"km", Quantity{Value: Int(1000), Dim: BaseDimension(Length)}},
		{"kg", Quantity{Value: Int(1), Dim: BaseDimension(Mass)}},
		{"g", Quantity{Value: Float(0.001), Dim: BaseDimension(Mass)}},
		{"mol", Quantity{Value: Int(1), Dim: BaseDimension(Amount)}},
		{"cd", Quantity{Value: Int(1), Dim: BaseDimension(Luminosity)}},
		{"min", Quantity{Value: Int(60), Dim: BaseDimension(Time)}},
		{"h", Quantity{Value: Int(3600), Dim: BaseDimension(Time)}},
		{"ms", Quantity{Value: Float(0.001), Dim: BaseDimension(Time)}},
		{"µs", Quantity{Value: Float(1e-6), Dim: BaseDimension(Time)}},
		{"GHz", Quantity{Value: Int(1000000000), Dim: NewDimension(0, 0, -1, 0, 0, 0, 0, 1)}},
		{"J", Quantity{Value: Int(1), Dim: NewDimension(1, 2, -2, 0, 0, 0, 0, 1)}},
		{"pi", Dimensionless(Float(3.141592653589793))},
		{"c", Quantity{Value: Int(299792458), Dim: NewDimension(0, 1, -1, 0, 0, 0, 0, 1)}},
	}
	for _, c := range cases {
		got, ok := d.Lookup(c.word)
		if assert.True(t, ok, c.word) {
			assert.Equal(t, c.want, got, c.word)
		}
	}
	// Unprefixable units, constants, and unknown names.
	for _, w := range []string{"kmin", "kft", "kpi", "kc", "k", "furlong", "mmm", ""} {
		_, ok := d.Lookup(w)
		assert.False(t, ok, w)
	}
}

func TestLoadDefinitions(t *testing.T) {
	d, err := LoadDefinitions(strings.NewReader(`
prefixes:
  k: 1000
units:
  lea: {value: 4828.032, dim: {m: 1}, prefix: true}
constants:
  dozen: {value: 12}
`))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	q, ok := d.Lookup("klea")
	require.True(t, ok)
	assert.InDelta(t, 4828032, q.Value.Float64(), 1e-6)
	q, ok = d.Lookup("dozen")
	require.True(t, ok)
	assert.Equal(t, Dimensionless(Int(12)), q)

	empty, err := LoadDefinitions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestLoadDefinitionsErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", "units: [1, 2"},
		{"unknown-field", "unit: {}"},
		{"entry-field", "units: {m: {value: 1, scale: 2}}"},
		{"prefix-long", "prefixes: {kk: 1000}"},
		{"prefix-number", "prefixes: {k: lots}"},
		{"duplicate", "units: {x: {value: 1}}\nconstants: {x: {value: 2}}"},
		{"reserved", "units: {per: {value: 1}}"},
		{"function", "constants: {sqrt: {value: 1}}"},
		{"zero", "constants: {nothing: {value: 0}}"},
		{"missing-value", "constants: {nothing: {}}"},
		{"base", "units: {x: {value: 1, dim: {ft: 1}}}"},
		{"prefixed-constant", "constants: {x: {value: 1, prefix: true}}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadDefinitions(strings.NewReader(c.src))
			assert.Error(t, err)
		})
	}
}

func TestDefinitionsInParse(t *testing.T) {
	d, err := LoadDefinitions(strings.NewReader("constants: {dozen: {value: 12}}"))
	require.NoError(t, err)
	got, err := Eval("2 dozen", UseDefinitions(d))
	require.NoError(t, err)
	assert.Equal(t, "24", got)
	_, err = Eval("1 m", UseDefinitions(d))
	var ne *NameError
	assert.ErrorAs(t, err, &ne)
}
