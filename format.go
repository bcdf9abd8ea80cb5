package qcalc

import (
	"math"
	"strconv"
	"strings"
)

// Style holds the display defaults that query clauses override.
type Style struct {
	// Digits is the number of digits after the point for ordinary notation.
	Digits int
	// SciDigits is the number of mantissa digits after the point for
	// scientific notation.
	SciDigits int
	// Over and Under are the magnitudes at or beyond which results switch to
	// scientific notation. Zero never does.
	Over, Under float64
}

// DefaultStyle is the style used when none is given.
var DefaultStyle = Style{
	Digits:    8,
	SciDigits: 4,
	Over:      1e10,
	Under:     1e-5,
}

// plain formats x with the given digits after the point. Unless fixed,
// trailing zeros and a trailing point are removed.
func plain(x float64, digits int, fixed bool) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return nonfinite(x)
	}
	s := strconv.FormatFloat(x, 'f', digits, 64)
	if !fixed && strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// scientific formats x as a mantissa with the given digits after the point
// and a five character exponent field like e+010. When aligned, the mantissa
// always has a sign, and infinities and NaN are padded to the width of finite
// results so that columns of answers line up.
func scientific(x float64, digits int, aligned bool) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		s := nonfinite(x)
		if !aligned {
			return s
		}
		// sign, leading digit, point, digits, exponent
		w := 2 + digits + 5
		if digits > 0 {
			w++
		}
		return strings.Repeat(" ", w-len(s)) + s
	}
	s := strconv.FormatFloat(x, 'e', digits, 64)
	k := strings.LastIndexByte(s, 'e')
	mant, sign, exp := s[:k], s[k+1], s[k+2:]
	if aligned && mant[0] != '-' {
		mant = "+" + mant
	}
	for len(exp) < 3 {
		exp = "0" + exp
	}
	return mant + "e" + string(sign) + exp
}

func nonfinite(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	default:
		return "NaN"
	}
}
