package qcalc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionNormalized(t *testing.T) {
	cases := []struct {
		name string
		got  Dimension
		want Dimension
	}{
		{"zero", NewDimension(0, 0, 0, 0, 0, 0, 0, 5), Dimension{}},
		{"halves", NewDimension(2, 4, 0, 0, 0, 0, 0, 2), NewDimension(1, 2, 0, 0, 0, 0, 0, 1)},
		{"partial", NewDimension(0, 2, 3, 0, 0, 0, 0, 6), NewDimension(0, 2, 3, 0, 0, 0, 0, 6)},
		{"neg", NewDimension(0, -4, 0, 0, 0, 0, 0, 4), NewDimension(0, -1, 0, 0, 0, 0, 0, 1)},
		{"base", BaseDimension(Length), NewDimension(0, 1, 0, 0, 0, 0, 0, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.got)
		})
	}
	assert.Panics(t, func() { NewDimension(1, 0, 0, 0, 0, 0, 0, 0) })
}

func TestDimensionMulDiv(t *testing.T) {
	m := BaseDimension(Length)
	s := BaseDimension(Time)
	speed, err := m.Div(s)
	require.NoError(t, err)
	assert.Equal(t, NewDimension(0, 1, -1, 0, 0, 0, 0, 1), speed)

	ms, err := m.Mul(s)
	require.NoError(t, err)
	sm, err := s.Mul(m)
	require.NoError(t, err)
	assert.Equal(t, ms, sm)

	none, err := speed.Div(speed)
	require.NoError(t, err)
	assert.True(t, none.Dimensionless())
	assert.Equal(t, Dimension{}, none)

	half := NewDimension(0, 1, 0, 0, 0, 0, 0, 2)
	third := NewDimension(0, 1, 0, 0, 0, 0, 0, 3)
	sum, err := half.Mul(third)
	require.NoError(t, err)
	assert.Equal(t, NewDimension(0, 5, 0, 0, 0, 0, 0, 6), sum)
	whole, err := half.Mul(half)
	require.NoError(t, err)
	assert.Equal(t, m, whole)
}

func TestDimensionRootPow(t *testing.T) {
	d := NewDimension(1, 2, -2, 0, 0, 0, 0, 1)
	for _, n := range []int8{1, 2, 3, 5, 7} {
		p, err := d.Pow(n)
		require.NoError(t, err)
		r, err := p.Root(n)
		require.NoError(t, err)
		assert.Equal(t, d, r, "pow/root %d", n)
	}
	r, err := BaseDimension(Length).Root(2)
	require.NoError(t, err)
	num, den := r.Exponent(Length)
	assert.Equal(t, int8(1), num)
	assert.Equal(t, int8(2), den)
	z, err := d.Pow(0)
	require.NoError(t, err)
	assert.True(t, z.Dimensionless())
}

func TestDimensionOverflow(t *testing.T) {
	big := NewDimension(0, 100, 0, 0, 0, 0, 0, 1)
	var oe *OverflowError
	_, err := big.Mul(big)
	assert.True(t, errors.As(err, &oe), "mul: %v", err)
	_, err = big.Pow(2)
	assert.True(t, errors.As(err, &oe), "pow: %v", err)
	_, err = NewDimension(0, 1, 0, 0, 0, 0, 0, 100).Root(2)
	assert.True(t, errors.As(err, &oe), "root: %v", err)
	_, err = big.Div(NewDimension(0, -100, 0, 0, 0, 0, 0, 1))
	assert.True(t, errors.As(err, &oe), "div: %v", err)
}

func TestDimensionString(t *testing.T) {
	cases := []struct {
		d    Dimension
		want string
	}{
		{Dimension{}, ""},
		{BaseDimension(Mass), "kg"},
		{NewDimension(1, 2, -2, 0, 0, 0, 0, 1), "kg m^2 s^-2"},
		{NewDimension(0, 1, 0, 0, 0, 0, 0, 2), "m^1/2"},
		{NewDimension(0, 2, -3, 0, 0, 0, 0, 6), "m^1/3 s^-1/2"},
		{NewDimension(0, 0, 0, 1, 1, 1, 1, 1), "A K mol cd"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.d.String())
	}
}
