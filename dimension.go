package qcalc

import (
	"strconv"
	"strings"

	"github.com/JohnCGriffin/overflow"
)

// Base quantities, in the order their exponents are stored.
const (
	Mass = iota
	Length
	Time
	Current
	Temperature
	Amount
	Luminosity

	numBase
)

// baseSymbols are the SI base unit symbols for each base quantity.
var baseSymbols = [numBase]string{"kg", "m", "s", "A", "K", "mol", "cd"}

// Dimension is the physical dimension of a quantity: a rational exponent for
// each base quantity, sharing one denominator. Dimensions are always in
// lowest terms, so two Dimensions are the same exactly when they are ==. The
// zero value is dimensionless.
type Dimension struct {
	exp [numBase]int8
	// dm is the denominator minus one.
	dm int8
}

// NewDimension creates a Dimension with exponents mass/denom, length/denom,
// and so on. Panics if denom is not positive.
func NewDimension(mass, length, time, current, temp, amount, lum, denom int8) Dimension {
	if denom < 1 {
		panic("qcalc: dimension denominator " + strconv.Itoa(int(denom)))
	}
	return simplify([numBase]int8{mass, length, time, current, temp, amount, lum}, denom)
}

// BaseDimension returns the dimension of the base quantity k raised to the
// first power.
func BaseDimension(k int) Dimension {
	var d Dimension
	d.exp[k] = 1
	return d
}

// simplify divides the exponents and denominator by their common factor.
func simplify(exp [numBase]int8, denom int8) Dimension {
	g := int(denom)
	for _, e := range exp {
		g = gcd(g, int(e))
	}
	for i := range exp {
		exp[i] /= int8(g)
	}
	return Dimension{exp: exp, dm: denom/int8(g) - 1}
}

// gcd returns the greatest common divisor of |a| and |b|.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (d Dimension) denom() int8 {
	return d.dm + 1
}

// Exponent returns the exponent of base quantity k as a numerator and
// denominator in lowest terms.
func (d Dimension) Exponent(k int) (num, den int8) {
	e, q := int(d.exp[k]), int(d.denom())
	g := gcd(e, q)
	return int8(e / g), int8(q / g)
}

// Dimensionless returns whether every exponent of d is zero.
func (d Dimension) Dimensionless() bool {
	return d.exp == [numBase]int8{}
}

// Mul returns the dimension of a product of quantities with dimensions d and
// o.
func (d Dimension) Mul(o Dimension) (Dimension, error) {
	return d.combine(o, false)
}

// Div returns the dimension of a quotient of quantities with dimensions d and
// o.
func (d Dimension) Div(o Dimension) (Dimension, error) {
	return d.combine(o, true)
}

func (d Dimension) combine(o Dimension, divide bool) (Dimension, error) {
	op := "*"
	if divide {
		op = "/"
	}
	g := gcd(int(d.denom()), int(o.denom()))
	fd := int8(int(o.denom()) / g)
	fo := int8(int(d.denom()) / g)
	den, ok := overflow.Mul8(d.denom(), fd)
	if !ok {
		return Dimension{}, &OverflowError{Op: op}
	}
	var exp [numBase]int8
	for i := range exp {
		a, ok := overflow.Mul8(d.exp[i], fd)
		if !ok {
			return Dimension{}, &OverflowError{Op: op}
		}
		b, ok := overflow.Mul8(o.exp[i], fo)
		if !ok {
			return Dimension{}, &OverflowError{Op: op}
		}
		if divide {
			exp[i], ok = overflow.Sub8(a, b)
		} else {
			exp[i], ok = overflow.Add8(a, b)
		}
		if !ok {
			return Dimension{}, &OverflowError{Op: op}
		}
	}
	return simplify(exp, den), nil
}

// Root returns the dimension of the n-th root of a quantity with dimension d.
// Panics if n is not positive.
func (d Dimension) Root(n int8) (Dimension, error) {
	if n <= 0 {
		panic("qcalc: root of degree " + strconv.Itoa(int(n)))
	}
	den, ok := overflow.Mul8(d.denom(), n)
	if !ok {
		return Dimension{}, &OverflowError{Op: rootname(n)}
	}
	return simplify(d.exp, den), nil
}

// Pow returns the dimension of a quantity with dimension d raised to the n.
func (d Dimension) Pow(n int8) (Dimension, error) {
	var exp [numBase]int8
	for i, e := range d.exp {
		r, ok := overflow.Mul8(e, n)
		if !ok {
			return Dimension{}, &OverflowError{Op: "^"}
		}
		exp[i] = r
	}
	return simplify(exp, d.denom()), nil
}

// String formats d in terms of SI base units, e.g. "kg m^2 s^-2" or "m^1/2".
// A dimensionless d formats as the empty string.
func (d Dimension) String() string {
	var b strings.Builder
	for k, sym := range baseSymbols {
		num, den := d.Exponent(k)
		if num == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym)
		if num == 1 && den == 1 {
			continue
		}
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(int(num)))
		if den != 1 {
			b.WriteByte('/')
			b.WriteString(strconv.Itoa(int(den)))
		}
	}
	return b.String()
}

// OverflowError is an error from a dimension exponent or denominator leaving
// the representable range.
type OverflowError struct {
	// Op is the operation that overflowed.
	Op string
}

func (err *OverflowError) Error() string {
	return "unit exponent overflow in " + err.Op
}
