package qcalc

import "math"

// Quantity is a value with a physical dimension.
type Quantity struct {
	Value AutoNum
	Dim   Dimension
}

// Dimensionless returns a dimensionless quantity with value v.
func Dimensionless(v AutoNum) Quantity {
	return Quantity{Value: v}
}

func (q Quantity) String() string {
	if q.Dim.Dimensionless() {
		return q.Value.String()
	}
	return q.Value.String() + " " + q.Dim.String()
}

// Add returns q+r. Both must have the same dimension.
func (q Quantity) Add(r Quantity) (Quantity, error) {
	if q.Dim != r.Dim {
		return Quantity{}, &DimensionError{Op: "add", Left: q.Dim, Right: r.Dim}
	}
	return Quantity{Value: q.Value.Add(r.Value), Dim: q.Dim}, nil
}

// Sub returns q-r. Both must have the same dimension.
func (q Quantity) Sub(r Quantity) (Quantity, error) {
	if q.Dim != r.Dim {
		return Quantity{}, &DimensionError{Op: "subtract", Left: q.Dim, Right: r.Dim}
	}
	return Quantity{Value: q.Value.Sub(r.Value), Dim: q.Dim}, nil
}

// Mul returns q*r.
func (q Quantity) Mul(r Quantity) (Quantity, error) {
	d, err := q.Dim.Mul(r.Dim)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value.Mul(r.Value), Dim: d}, nil
}

// Div returns q/r.
func (q Quantity) Div(r Quantity) (Quantity, error) {
	d, err := q.Dim.Div(r.Dim)
	if err != nil {
		return Quantity{}, err
	}
	v, err := q.Value.Div(r.Value)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Dim: d}, nil
}

// Pow returns q^r. r must be dimensionless. If q has a dimension, then r must
// be an integer that fits in an int8.
func (q Quantity) Pow(r Quantity) (Quantity, error) {
	if !r.Dim.Dimensionless() {
		return Quantity{}, &UnitsError{Func: "^", Dim: r.Dim}
	}
	if q.Dim.Dimensionless() {
		return Dimensionless(q.Value.Pow(r.Value)), nil
	}
	n, ok := r.Value.Int64()
	if !ok {
		return Quantity{}, &PowerError{Dim: q.Dim, Exp: r.Value, Reason: "non-integer power of dimensioned quantity"}
	}
	if n < math.MinInt8 || n > math.MaxInt8 {
		return Quantity{}, &PowerError{Dim: q.Dim, Exp: r.Value, Reason: "power magnitude exceeds range"}
	}
	d, err := q.Dim.Pow(int8(n))
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value.Pow(r.Value), Dim: d}, nil
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return Quantity{Value: q.Value.Neg(), Dim: q.Dim}
}

// Root returns the n-th root of q.
func (q Quantity) Root(n int8) (Quantity, error) {
	d, err := q.Dim.Root(n)
	if err != nil {
		return Quantity{}, err
	}
	v, err := q.Value.Root(n)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Dim: d}, nil
}

// Undim returns q's value without its dimension.
func (q Quantity) Undim() Quantity {
	return Dimensionless(q.Value)
}

// unitless checks that q is dimensionless as the operand of fn.
func (q Quantity) unitless(fn string) error {
	if !q.Dim.Dimensionless() {
		return &UnitsError{Func: fn, Dim: q.Dim}
	}
	return nil
}

// Percent returns q/100. q must be dimensionless.
func (q Quantity) Percent() (Quantity, error) {
	if err := q.unitless("%"); err != nil {
		return Quantity{}, err
	}
	return Dimensionless(Float(q.Value.Float64() / 100)), nil
}

// Factorial returns q!. q must be a dimensionless non-negative integer.
func (q Quantity) Factorial() (Quantity, error) {
	if err := q.unitless("!"); err != nil {
		return Quantity{}, err
	}
	v, err := q.Value.Factorial()
	if err != nil {
		return Quantity{}, err
	}
	return Dimensionless(v), nil
}

// Sin returns the sine of q. q must be dimensionless.
func (q Quantity) Sin() (Quantity, error) {
	if err := q.unitless("sin"); err != nil {
		return Quantity{}, err
	}
	return Dimensionless(q.Value.Sin()), nil
}

// Cos returns the cosine of q. q must be dimensionless.
func (q Quantity) Cos() (Quantity, error) {
	if err := q.unitless("cos"); err != nil {
		return Quantity{}, err
	}
	return Dimensionless(q.Value.Cos()), nil
}

// Tan returns the tangent of q. q must be dimensionless.
func (q Quantity) Tan() (Quantity, error) {
	if err := q.unitless("tan"); err != nil {
		return Quantity{}, err
	}
	return Dimensionless(q.Value.Tan()), nil
}

// Exp returns e^q. q must be dimensionless.
func (q Quantity) Exp() (Quantity, error) {
	if err := q.unitless("exp"); err != nil {
		return Quantity{}, err
	}
	return Dimensionless(q.Value.Exp()), nil
}

// Ln returns the natural logarithm of q. q must be dimensionless and
// positive.
func (q Quantity) Ln() (Quantity, error) {
	if err := q.unitless("ln"); err != nil {
		return Quantity{}, err
	}
	v, err := q.Value.Ln()
	if err != nil {
		return Quantity{}, err
	}
	return Dimensionless(v), nil
}

// Log returns the base-10 logarithm of q. q must be dimensionless and
// positive.
func (q Quantity) Log() (Quantity, error) {
	if err := q.unitless("log"); err != nil {
		return Quantity{}, err
	}
	v, err := q.Value.Log10()
	if err != nil {
		return Quantity{}, err
	}
	return Dimensionless(v), nil
}

// dimname names a dimension in error messages.
func dimname(d Dimension) string {
	if d.Dimensionless() {
		return "dimensionless"
	}
	return d.String()
}

// DimensionError is an error from adding or subtracting quantities with
// different dimensions.
type DimensionError struct {
	// Op is the operation, "add" or "subtract".
	Op string
	// Left and Right are the dimensions of the operands.
	Left, Right Dimension
}

func (err *DimensionError) Error() string {
	return "cannot " + err.Op + " " + dimname(err.Left) + " and " + dimname(err.Right)
}

// UnitsError is an error from applying an operation that requires a
// dimensionless operand to a dimensioned quantity.
type UnitsError struct {
	// Func is the operation.
	Func string
	// Dim is the dimension of the operand.
	Dim Dimension
}

func (err *UnitsError) Error() string {
	return err.Func + " requires a dimensionless operand, not " + err.Dim.String()
}

// PowerError is an error from raising a dimensioned quantity to a power that
// would not give a representable dimension.
type PowerError struct {
	// Dim is the dimension of the base.
	Dim Dimension
	// Exp is the exponent.
	Exp AutoNum
	// Reason describes the problem.
	Reason string
}

func (err *PowerError) Error() string {
	return err.Reason + ": (" + err.Dim.String() + ")^" + err.Exp.String()
}
