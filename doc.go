// Package qcalc implements a calculator for quantities with physical units.
//
// Arithmetic stays in exact 64-bit integers for as long as it can and moves to
// float64 only when a result overflows or is not an integer, so "2^62 * 2"
// is exact and "7/2" is 3.5. Every value carries a dimension in terms of the
// SI base units, and units multiply through expressions: "3 m * 4 m" is
// 12 m^2, "sqrt(9 m^2)" is 3 m, and "1 m + 1 s" is an error.
//
// Units follow the number they apply to, "9.8 m s^-2", and a trailing
// "per h" divides the whole expression. A query appends display clauses to
// the expression: "60 mph in km h^-1 round 2".
package qcalc
