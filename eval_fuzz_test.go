//go:build go1.18
// +build go1.18

package qcalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/qcalc"
)

func FuzzEval(f *testing.F) {
	f.Add("1 + 2")
	f.Add("2^64 m in km rd 3")
	f.Add("5! / 0")
	f.Add("(1 m)^0.5")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := qcalc.Eval(s)
		if err == nil {
			return
		}
		var ie qcalc.InputError
		if !errors.As(err, &ie) {
			t.Errorf("%q: error without position: %v", s, err)
			return
		}
		start, end := ie.Span()
		if start < 1 || end <= start {
			t.Errorf("%q: bad span %d..%d for %v", s, start, end, err)
		}
	})
}
