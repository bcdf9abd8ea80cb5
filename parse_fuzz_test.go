//go:build go1.18
// +build go1.18

package qcalc_test

import (
	"testing"

	"github.com/zephyrtronium/qcalc"
)

func FuzzParse(f *testing.F) {
	f.Add("1 + 2")
	f.Add("10^3 m per s")
	f.Add(":root 3(8 m^3) in km sc al fd")
	f.Add("sqrt(-(1")
	f.Fuzz(func(t *testing.T, s string) {
		qcalc.ParseQuery(s)
	})
}
