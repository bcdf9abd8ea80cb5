// Command qcalc evaluates an expression with units and prints the answer.
//
// Usage:
//
//	qcalc [flags] [--] expression...
//
// The arguments are joined with spaces, so quoting the expression is optional.
// Flags must come before the expression; use -- if the expression begins
// with a minus sign.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "qcalc:", err)
		}
		os.Exit(1)
	}
}
