package qcalc

import (
	"math"
	"strconv"

	"github.com/JohnCGriffin/overflow"
)

// AutoNum is a number that stays an exact 64-bit integer for as long as
// arithmetic allows and becomes a float64 permanently once it cannot. The zero
// value is the integer 0.
type AutoNum struct {
	i     int64
	f     float64
	float bool
}

// Int returns an integer AutoNum.
func Int(n int64) AutoNum {
	return AutoNum{i: n}
}

// Float returns a float AutoNum. The result is a float even if x is integral.
func Float(x float64) AutoNum {
	return AutoNum{f: x, float: true}
}

// ParseNum parses a numeric literal. Text that is a valid int64 is an integer;
// otherwise it must be a valid float64.
func ParseNum(s string) (AutoNum, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports out of range values as ±Inf with an error. A
		// literal that large is still a number.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return Float(x), nil
		}
		return AutoNum{}, err
	}
	return Float(x), nil
}

// IsInt returns whether a is an integer.
func (a AutoNum) IsInt() bool {
	return !a.float
}

// Int64 returns the integer value of a, if it is an integer.
func (a AutoNum) Int64() (int64, bool) {
	return a.i, !a.float
}

// Float64 returns the value of a as a float64, rounding if necessary.
func (a AutoNum) Float64() float64 {
	if a.float {
		return a.f
	}
	return float64(a.i)
}

func (a AutoNum) String() string {
	if a.float {
		return strconv.FormatFloat(a.f, 'g', -1, 64)
	}
	return strconv.FormatInt(a.i, 10)
}

// Add returns a+b.
func (a AutoNum) Add(b AutoNum) AutoNum {
	if !a.float && !b.float {
		if r, ok := overflow.Add64(a.i, b.i); ok {
			return Int(r)
		}
	}
	return Float(a.Float64() + b.Float64())
}

// Sub returns a-b.
func (a AutoNum) Sub(b AutoNum) AutoNum {
	if !a.float && !b.float {
		if r, ok := overflow.Sub64(a.i, b.i); ok {
			return Int(r)
		}
	}
	return Float(a.Float64() - b.Float64())
}

// Mul returns a*b.
func (a AutoNum) Mul(b AutoNum) AutoNum {
	if !a.float && !b.float {
		if r, ok := overflow.Mul64(a.i, b.i); ok {
			return Int(r)
		}
	}
	return Float(a.Float64() * b.Float64())
}

// Div returns a/b. The result is an integer only if both operands are
// integers and b divides a exactly. Division by an integer or float zero is a
// DomainError.
func (a AutoNum) Div(b AutoNum) (AutoNum, error) {
	if b.Float64() == 0 {
		return AutoNum{}, &DomainError{Func: "/", X: b, Reason: "division by zero"}
	}
	if !a.float && !b.float {
		if a.i == math.MinInt64 && b.i == -1 {
			return Float(-float64(a.i)), nil
		}
		if a.i%b.i == 0 {
			return Int(a.i / b.i), nil
		}
	}
	return Float(a.Float64() / b.Float64()), nil
}

// Neg returns -a.
func (a AutoNum) Neg() AutoNum {
	if !a.float {
		if r, ok := overflow.Sub64(0, a.i); ok {
			return Int(r)
		}
		return Float(-float64(a.i))
	}
	return Float(-a.f)
}

// Pow returns a^b. Small integer exponents are computed by repeated
// multiplication, so integer bases stay exact while the product fits. A
// negative integer exponent always gives a float.
func (a AutoNum) Pow(b AutoNum) AutoNum {
	if n, ok := b.Int64(); ok && n > -64 && n < 64 {
		r := Int(1)
		k := n
		if k < 0 {
			k = -k
		}
		for ; k > 0; k-- {
			r = r.Mul(a)
		}
		if n < 0 {
			return Float(1 / r.Float64())
		}
		return r
	}
	return Float(math.Pow(a.Float64(), b.Float64()))
}

// maxFactorial is the largest n for which n! is finite as a float64.
const maxFactorial = 170

// Factorial returns a!. a must be a non-negative integer.
func (a AutoNum) Factorial() (AutoNum, error) {
	if a.float {
		return AutoNum{}, &DomainError{Func: "!", X: a, Reason: "non-integer operand"}
	}
	if a.i < 0 {
		return AutoNum{}, &DomainError{Func: "!", X: a, Reason: "negative operand"}
	}
	if a.i > maxFactorial {
		return Float(math.Inf(1)), nil
	}
	r := Int(1)
	for k := int64(2); k <= a.i; k++ {
		r = r.Mul(Int(k))
	}
	return r, nil
}

// Root returns the n-th root of a. Even roots of negative numbers are a
// DomainError. When a is an integer with an exact integer root, the result is
// an integer. Panics if n is not positive.
func (a AutoNum) Root(n int8) (AutoNum, error) {
	if n <= 0 {
		panic("qcalc: root of degree " + strconv.Itoa(int(n)))
	}
	x := a.Float64()
	if n%2 == 0 && x < 0 {
		return AutoNum{}, &DomainError{Func: rootname(n), X: a, Reason: "even root of negative number"}
	}
	var r float64
	switch n {
	case 1:
		return a, nil
	case 2:
		r = math.Sqrt(x)
	case 3:
		r = math.Cbrt(x)
	default:
		r = math.Pow(math.Abs(x), 1/float64(n))
		if x < 0 {
			r = -r
		}
	}
	if i, ok := a.Int64(); ok {
		if k, ok := exactroot(i, r, n); ok {
			return Int(k), nil
		}
	}
	return Float(r), nil
}

// exactroot checks the integers nearest to approx for one whose n-th power is
// exactly x.
func exactroot(x int64, approx float64, n int8) (int64, bool) {
	if math.IsNaN(approx) || math.Abs(approx) > 1<<62 {
		return 0, false
	}
	c := int64(math.Round(approx))
	for r := c - 1; r <= c+1; r++ {
		p, ok := int64(1), true
		for k := int8(0); k < n && ok; k++ {
			p, ok = overflow.Mul64(p, r)
		}
		if ok && p == x {
			return r, true
		}
	}
	return 0, false
}

func rootname(n int8) string {
	switch n {
	case 2:
		return "sqrt"
	case 3:
		return "cbrt"
	default:
		return "root " + strconv.Itoa(int(n))
	}
}

// Ln returns the natural logarithm of a, which must be positive.
func (a AutoNum) Ln() (AutoNum, error) {
	x := a.Float64()
	if x <= 0 {
		return AutoNum{}, &DomainError{Func: "ln", X: a, Reason: "non-positive operand"}
	}
	return Float(math.Log(x)), nil
}

// Log10 returns the base-10 logarithm of a, which must be positive.
func (a AutoNum) Log10() (AutoNum, error) {
	x := a.Float64()
	if x <= 0 {
		return AutoNum{}, &DomainError{Func: "log", X: a, Reason: "non-positive operand"}
	}
	return Float(math.Log10(x)), nil
}

// Exp returns e^a.
func (a AutoNum) Exp() AutoNum {
	return Float(math.Exp(a.Float64()))
}

// Sin returns the sine of a radians.
func (a AutoNum) Sin() AutoNum {
	return Float(math.Sin(a.Float64()))
}

// Cos returns the cosine of a radians.
func (a AutoNum) Cos() AutoNum {
	return Float(math.Cos(a.Float64()))
}

// Tan returns the tangent of a radians.
func (a AutoNum) Tan() AutoNum {
	return Float(math.Tan(a.Float64()))
}

// DomainError is an error from an operation applied to a value outside the
// operation's domain.
type DomainError struct {
	// Func is the name of the operation.
	Func string
	// X is the offending operand.
	X AutoNum
	// Reason describes the violated condition.
	Reason string
}

func (err *DomainError) Error() string {
	return err.X.String() + " outside domain of " + err.Func + ": " + err.Reason
}
