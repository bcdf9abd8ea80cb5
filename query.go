package qcalc

import (
	"strconv"
)

// Query is a parsed expression with directives controlling how its result is
// displayed.
type Query struct {
	expr *Expr
	// unit is the target of an in clause.
	unit *target
	// round is the rounding from a round or fixed clause.
	round *rounding
	// sci is the policy from a scientific clause.
	sci *sciPolicy
	// hide suppresses units in the answer.
	hide  bool
	style Style
}

type target struct {
	label    string
	q        Quantity
	pos, end int
}

type rounding struct {
	digits int
	fixed  bool
}

type sciMode int8

const (
	sciExceeds sciMode = iota
	sciNever
	sciAlways
)

type sciPolicy struct {
	mode sciMode
	// fixed selects aligned output for sciAlways.
	fixed bool
	// under and over are the thresholds for sciExceeds.
	under, over float64
}

// maxDigits is the largest digit count a round or fixed clause accepts.
const maxDigits = 100

// keywords are the words that begin query clauses.
var keywords = map[string]string{
	"in":         "in",
	"round":      "round",
	"rd":         "round",
	"fixed":      "fixed",
	"fd":         "fixed",
	"scientific": "scientific",
	"sc":         "scientific",
	"hideunits":  "hideunits",
	"hide":       "hideunits",
}

func isKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// ParseQuery parses an expression followed by any query clauses:
//
//	in <units>                  convert the answer to the given units
//	round N, rd N               round to N digits after the point
//	fixed N, fd N               the same, keeping trailing zeros
//	scientific never, sc ne     never use scientific notation
//	scientific always, sc al    always use scientific notation
//	sc always fixed, sc al fd   the same, with signs and alignment
//	sc if over X under Y        use scientific notation when |x| >= X or
//	                            0 < |x| <= Y; > and < may replace over and under
//	hideunits, hide             omit units from the answer
//
// Each clause may appear at most once, and round and fixed share one slot.
// The expression may begin with a colon to discard the dimension of its result
// and may end with per <units> to divide by units.
func ParseQuery(src string, opts ...ParseOption) (*Query, error) {
	p := newparsectx(opts)
	scan, err := lex(src)
	if err != nil {
		return nil, err
	}
	n, err := parsetop(scan, &p)
	if err != nil {
		return nil, err
	}
	q := Query{expr: &Expr{n: n}, style: p.style}
	for {
		tok := scan.next()
		switch tok.kind {
		case tokenEOF:
			return &q, nil
		case tokenWord:
			if err := q.clause(scan, &p, tok); err != nil {
				return nil, err
			}
		default:
			return nil, itShouldNotHaveEndedThisWay(tok)
		}
	}
}

// clause parses one query clause after its keyword.
func (q *Query) clause(scan *lexer, p *parsectx, kw lexToken) error {
	name, ok := keywords[kw.text]
	if !ok {
		return &QueryError{Col: kw.pos, End: kw.end, Msg: "unknown query keyword " + strconv.Quote(kw.text)}
	}
	dup := func() error {
		return &QueryError{Col: kw.pos, End: kw.end, Msg: strconv.Quote(name) + " query already specified"}
	}
	switch name {
	case "in":
		if q.unit != nil {
			return dup()
		}
		u, label, err := parseunits(scan, p)
		if err != nil {
			return err
		}
		if u == nil {
			tok := scan.peek()
			return &TokenError{Col: tok.pos, End: tok.end, Text: tok.text, Want: "a unit"}
		}
		v, err := u.eval()
		if err != nil {
			return err
		}
		q.unit = &target{label: label, q: v, pos: u.pos, end: u.end}
	case "round", "fixed":
		if q.round != nil {
			return &QueryError{Col: kw.pos, End: kw.end, Msg: "rounding query already specified"}
		}
		tok := scan.next()
		d, ok := tok.num.Int64()
		if tok.kind != tokenNum || !ok {
			return &TokenError{Col: tok.pos, End: tok.end, Text: tok.text, Want: "an integer digit count"}
		}
		if d > maxDigits {
			return &RangeError{Col: tok.pos, End: tok.end, Text: tok.text, What: "digit count", Min: 0, Max: maxDigits}
		}
		q.round = &rounding{digits: int(d), fixed: name == "fixed"}
	case "scientific":
		if q.sci != nil {
			return dup()
		}
		return q.sciclause(scan, kw)
	case "hideunits":
		if q.hide {
			return dup()
		}
		q.hide = true
	}
	return nil
}

// sciclause parses the mode of a scientific clause.
func (q *Query) sciclause(scan *lexer, kw lexToken) error {
	tok := scan.next()
	switch {
	case tok.kind == tokenWord && (tok.text == "never" || tok.text == "ne"):
		q.sci = &sciPolicy{mode: sciNever}
	case tok.kind == tokenWord && (tok.text == "always" || tok.text == "al"):
		pol := sciPolicy{mode: sciAlways}
		if t := scan.peek(); t.kind == tokenWord && (t.text == "fixed" || t.text == "fd") {
			scan.next()
			pol.fixed = true
		}
		q.sci = &pol
	case tok.kind == tokenWord && tok.text == "if":
		pol := sciPolicy{mode: sciExceeds, under: q.style.Under, over: q.style.Over}
		var over, under bool
		for {
			t := scan.peek()
			var bound *float64
			var seen *bool
			switch {
			case t.is(">"), t.kind == tokenWord && t.text == "over":
				bound, seen = &pol.over, &over
			case t.is("<"), t.kind == tokenWord && t.text == "under":
				bound, seen = &pol.under, &under
			}
			if bound == nil {
				break
			}
			scan.next()
			if *seen {
				return &QueryError{Col: t.pos, End: t.end, Msg: strconv.Quote(t.text) + " bound already specified"}
			}
			*seen = true
			x := scan.next()
			if x.kind != tokenNum {
				return &TokenError{Col: x.pos, End: x.end, Text: x.text, Want: "a number bound"}
			}
			*bound = x.num.Float64()
		}
		if !over && !under {
			t := scan.peek()
			return &QueryError{Col: t.pos, End: t.end, Msg: `expected "over" or "under" for "scientific if" query`}
		}
		q.sci = &pol
	default:
		return &QueryError{Col: tok.pos, End: tok.end, Msg: `expected "never", "always", or "if" for "scientific" query`}
	}
	return nil
}

// Expr returns the query's expression.
func (q *Query) Expr() *Expr {
	return q.expr
}

// Eval evaluates the query's expression.
func (q *Query) Eval() (Quantity, error) {
	return q.expr.Eval()
}

// Answer evaluates the query and formats the result according to its
// clauses.
func (q *Query) Answer() (string, error) {
	v, err := q.Eval()
	if err != nil {
		return "", err
	}
	return q.Format(v)
}

// Format formats a quantity according to the query's clauses. If the query
// has an in clause, the quantity must have the same dimension as the target
// units.
func (q *Query) Format(v Quantity) (string, error) {
	if u := q.unit; u != nil {
		if v.Dim != u.q.Dim {
			return "", &EvalError{Col: u.pos, End: u.end, Err: &ConversionError{From: v.Dim, To: u.label}}
		}
		s := q.float(v.Value.Float64() / u.q.Value.Float64())
		if !q.hide {
			s += " " + u.label
		}
		return s, nil
	}
	var s string
	if i, ok := v.Value.Int64(); ok && !q.policy().scientific(float64(i)) {
		s = strconv.FormatInt(i, 10)
	} else {
		s = q.float(v.Value.Float64())
	}
	if !q.hide && !v.Dim.Dimensionless() {
		s += " " + v.Dim.String()
	}
	return s, nil
}

// policy returns the effective scientific notation policy.
func (q *Query) policy() sciPolicy {
	if q.sci != nil {
		return *q.sci
	}
	return sciPolicy{mode: sciExceeds, under: q.style.Under, over: q.style.Over}
}

func (p sciPolicy) scientific(x float64) bool {
	switch p.mode {
	case sciNever:
		return false
	case sciAlways:
		return true
	}
	a := x
	if a < 0 {
		a = -a
	}
	return a >= p.over || (a <= p.under && a != 0)
}

// float formats a float according to the query's rounding and scientific
// notation policy.
func (q *Query) float(x float64) string {
	pol := q.policy()
	sci := pol.scientific(x)
	digits, fixed := q.style.Digits, false
	if sci {
		digits = q.style.SciDigits
	}
	if q.round != nil {
		digits, fixed = q.round.digits, q.round.fixed
	}
	if sci {
		return scientific(x, digits, pol.mode == sciAlways && pol.fixed)
	}
	return plain(x, digits, fixed)
}

// ConversionError is an error from converting a quantity to units of a
// different dimension.
type ConversionError struct {
	// From is the dimension of the quantity.
	From Dimension
	// To is the target units as written.
	To string
}

func (err *ConversionError) Error() string {
	return "cannot convert to given units: " + dimname(err.From) + " -> " + err.To
}
