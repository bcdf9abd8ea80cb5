package qcalc

import (
	"math"
	"strconv"
	"strings"
)

// Query = [':'] Expr ['per' Units] { Clause }
// Expr = Prefixed { BinOp Prefixed }
// BinOp = '+' | '-' | '*' | '/'
// Prefixed = ('+' | '-') Prefixed | Postfixed
// Postfixed = Atom { '%' | '!' | '^' Power } [Units]
// Power = ('+' | '-') Power | Atom { '%' | '!' | '^' Power }
// Atom = num | name | '(' Expr ')' | func '(' Expr ')' | 'root' int '(' Expr ')'
// Units = unit ['^' ['-'] int] { unit ['^' ['-'] int] }

// Parse parses a bare expression, without a leading colon, per suffix, or
// query clauses. The given options are applied in order.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := newparsectx(opts)
	scan, err := lex(src)
	if err != nil {
		return nil, err
	}
	n, err := parsebinary(scan, &p, 0)
	if err != nil {
		return nil, err
	}
	if tok := scan.next(); tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok)
	}
	return &Expr{n: n}, nil
}

// parsetop parses the expression part of a query: an optional leading colon
// that strips the dimension of the result, the expression, and an optional
// per suffix dividing by units.
func parsetop(scan *lexer, p *parsectx) (*node, error) {
	colon := scan.peek()
	if colon.is(":") {
		scan.next()
	}
	n, err := parsebinary(scan, p, 0)
	if err != nil {
		return nil, err
	}
	if tok := scan.peek(); tok.kind == tokenWord && tok.text == "per" {
		scan.next()
		u, _, err := parseunits(scan, p)
		if err != nil {
			return nil, err
		}
		if u == nil {
			nt := scan.peek()
			return nil, &TokenError{Col: nt.pos, End: nt.end, Text: nt.text, Want: "a unit after per"}
		}
		n = &node{kind: nodeDiv, left: n, right: u, pos: n.pos, end: u.end}
	}
	if colon.is(":") {
		n = &node{kind: nodeUndim, left: n, pos: colon.pos, end: n.end}
	}
	return n, nil
}

// parsebinary parses a sequence of prefixed terms joined by binary operators
// binding more tightly than min.
func parsebinary(scan *lexer, p *parsectx, min int8) (*node, error) {
	lhs, err := parseprefixed(scan, p, true)
	if err != nil {
		return nil, err
	}
	for {
		op := binop(scan.peek())
		if op.op == nodeNone || !op.moreBinding(min) {
			return lhs, nil
		}
		scan.next()
		rhs, err := parsebinary(scan, p, op.prec)
		if err != nil {
			return nil, err
		}
		lhs = &node{kind: op.op, left: lhs, right: rhs, pos: lhs.pos, end: rhs.end}
	}
}

// parseprefixed parses a term with any number of leading signs. If units is
// false, the term does not take a unit suffix; this is the case for
// exponents, so that 10^3 m is (10^3) m.
func parseprefixed(scan *lexer, p *parsectx, units bool) (*node, error) {
	tok := scan.peek()
	var kind nodeKind
	switch {
	case tok.is("-"):
		kind = nodeNeg
	case tok.is("+"):
		kind = nodeNop
	default:
		return parsepostfixed(scan, p, units)
	}
	scan.next()
	x, err := parseprefixed(scan, p, units)
	if err != nil {
		return nil, err
	}
	return &node{kind: kind, left: x, pos: tok.pos, end: x.end}, nil
}

// parsepostfixed parses an atom followed by postfix operators and powers,
// then an optional run of units.
func parsepostfixed(scan *lexer, p *parsectx, units bool) (*node, error) {
	n, err := parseatom(scan, p)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.peek()
		switch {
		case tok.is("%"):
			scan.next()
			n = &node{kind: nodePercent, left: n, pos: n.pos, end: tok.end}
			continue
		case tok.is("!"):
			scan.next()
			n = &node{kind: nodeFactorial, left: n, pos: n.pos, end: tok.end}
			continue
		case tok.is("^"):
			scan.next()
			rhs, err := parseprefixed(scan, p, false)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodePow, left: n, right: rhs, pos: n.pos, end: rhs.end}
			continue
		}
		break
	}
	if !units {
		return n, nil
	}
	u, _, err := parseunits(scan, p)
	if err != nil {
		return nil, err
	}
	if u != nil {
		n = &node{kind: nodeMul, left: n, right: u, pos: n.pos, end: u.end}
	}
	return n, nil
}

// funcs maps function names to their node kinds. Roots also have degrees.
var funcs = map[string]struct {
	kind nodeKind
	deg  int8
}{
	"sqrt": {nodeRoot, 2},
	"cbrt": {nodeRoot, 3},
	"sin":  {nodeSin, 0},
	"cos":  {nodeCos, 0},
	"tan":  {nodeTan, 0},
	"exp":  {nodeExp, 0},
	"ln":   {nodeLn, 0},
	"log":  {nodeLog, 0},
}

// parseatom parses a number, a name, a bracketed expression, or a function
// call.
func parseatom(scan *lexer, p *parsectx) (*node, error) {
	tok := scan.next()
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeQuantity, q: Dimensionless(tok.num), text: tok.text, pos: tok.pos, end: tok.end}, nil
	case tokenOpen:
		return parsebracketed(scan, p, tok)
	case tokenWord:
		if fn, ok := funcs[tok.text]; ok {
			open, err := expectopen(scan, tok.text)
			if err != nil {
				return nil, err
			}
			arg, err := parsebracketed(scan, p, open)
			if err != nil {
				return nil, err
			}
			return &node{kind: fn.kind, deg: fn.deg, left: arg, pos: tok.pos, end: arg.end}, nil
		}
		if tok.text == "root" {
			return parseroot(scan, p, tok)
		}
		if reserved(tok.text) {
			return nil, &TokenError{Col: tok.pos, End: tok.end, Text: tok.text, Want: "a number, name, or bracket"}
		}
		q, ok := p.defs.Lookup(tok.text)
		if !ok {
			return nil, &NameError{Col: tok.pos, End: tok.end, Name: tok.text, Kind: "unit or constant"}
		}
		return &node{kind: nodeQuantity, q: q, text: tok.text, pos: tok.pos, end: tok.end}, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.end}
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.end, Text: tok.text}
	case tokenOp:
		return nil, &TokenError{Col: tok.pos, End: tok.end, Text: tok.text, Want: "a number, name, or bracket"}
	default:
		panic("qcalc: unknown token: " + tok.String())
	}
}

// expectopen scans the open bracket that must follow a function name.
func expectopen(scan *lexer, fn string) (lexToken, error) {
	open := scan.next()
	if open.kind != tokenOpen {
		return open, &TokenError{Col: open.pos, End: open.end, Text: open.text, Want: "an open bracket after " + fn}
	}
	return open, nil
}

// parsebracketed parses the rest of a parenthesized expression after its open
// bracket. The resulting node's span includes the brackets.
func parsebracketed(scan *lexer, p *parsectx, open lexToken) (*node, error) {
	if c := scan.peek(); c.kind == tokenClose {
		return nil, &EmptyExpressionError{Col: c.pos, End: c.end, Text: c.text}
	}
	n, err := parsebinary(scan, p, 0)
	if err != nil {
		return nil, err
	}
	end := scan.next()
	switch end.kind {
	case tokenClose:
	case tokenEOF:
		return nil, &BracketError{Col: open.pos, End: open.end, Left: open.text}
	default:
		return nil, &TokenError{Col: end.pos, End: end.end, Text: end.text, Want: "an operator or close bracket"}
	}
	n.pos, n.end = open.pos, end.end
	return n, nil
}

// parseroot parses the degree and argument of root N(x). The root keyword has
// already been scanned.
func parseroot(scan *lexer, p *parsectx, kw lexToken) (*node, error) {
	tok := scan.next()
	deg, ok := tok.num.Int64()
	if tok.kind != tokenNum || !ok {
		return nil, &TokenError{Col: tok.pos, End: tok.end, Text: tok.text, Want: "an integer root degree"}
	}
	if deg < 1 || deg > math.MaxInt8 {
		return nil, &RangeError{Col: tok.pos, End: tok.end, Text: tok.text, What: "root degree", Min: 1, Max: math.MaxInt8}
	}
	open, err := expectopen(scan, "root "+tok.text)
	if err != nil {
		return nil, err
	}
	arg, err := parsebracketed(scan, p, open)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeRoot, deg: int8(deg), left: arg, pos: kw.pos, end: arg.end}, nil
}

// parseunits parses a run of unit names, each with an optional integer
// exponent, into their product. The second result is the run as written,
// normalized to single spaces. If the next token does not start a unit, the
// result is nil with no error.
func parseunits(scan *lexer, p *parsectx) (*node, string, error) {
	var n *node
	var label strings.Builder
	for {
		tok := scan.peek()
		if tok.kind != tokenWord || reserved(tok.text) {
			return n, label.String(), nil
		}
		scan.next()
		q, ok := p.defs.Lookup(tok.text)
		if !ok {
			return nil, "", &NameError{Col: tok.pos, End: tok.end, Name: tok.text, Kind: "unit"}
		}
		if label.Len() > 0 {
			label.WriteByte(' ')
		}
		label.WriteString(tok.text)
		u := &node{kind: nodeQuantity, q: q, text: tok.text, pos: tok.pos, end: tok.end}
		if scan.peek().is("^") {
			e, err := parseunitexp(scan)
			if err != nil {
				return nil, "", err
			}
			label.WriteByte('^')
			label.WriteString(e.text)
			u = &node{kind: nodePow, left: u, right: e, pos: u.pos, end: e.end}
		}
		if n == nil {
			n = u
		} else {
			n = &node{kind: nodeMul, left: n, right: u, pos: n.pos, end: u.end}
		}
	}
}

// parseunitexp parses ^ followed by an optionally negative integer that fits
// in an int8.
func parseunitexp(scan *lexer) (*node, error) {
	scan.next()
	sign := scan.peek()
	neg := sign.is("-")
	if neg {
		scan.next()
	}
	tok := scan.next()
	v, ok := tok.num.Int64()
	if tok.kind != tokenNum || !ok {
		return nil, &TokenError{Col: tok.pos, End: tok.end, Text: tok.text, Want: "an integer unit exponent"}
	}
	text := tok.text
	pos := tok.pos
	if neg {
		v = -v
		text = "-" + text
		pos = sign.pos
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return nil, &RangeError{Col: pos, End: tok.end, Text: text, What: "unit exponent", Min: math.MinInt8, Max: math.MaxInt8}
	}
	return &node{kind: nodeQuantity, q: Dimensionless(Int(v)), text: strconv.FormatInt(v, 10), pos: pos, end: tok.end}, nil
}

// reserved returns whether a word cannot name a unit or constant.
func reserved(word string) bool {
	if _, ok := funcs[word]; ok {
		return true
	}
	switch word {
	case "root", "per":
		return true
	}
	return isKeyword(word)
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token after a complete expression.
func itShouldNotHaveEndedThisWay(tok lexToken) error {
	switch tok.kind {
	case tokenClose:
		return &BracketError{Col: tok.pos, End: tok.end, Right: tok.text}
	default:
		return &TokenError{Col: tok.pos, End: tok.end, Text: tok.text}
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

// moreBinding returns whether an operator continues an expression whose
// operands bind at least as tightly as min.
func (p operator) moreBinding(min int8) bool {
	if p.prec != min {
		return p.prec > min
	}
	return p.right
}

// binop gets the binary operator for a token. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(tok lexToken) operator {
	if tok.kind != tokenOp {
		return operator{}
	}
	switch tok.text {
	case "+":
		return operator{10, false, nodeAdd}
	case "-":
		return operator{10, false, nodeSub}
	case "*":
		return operator{20, false, nodeMul}
	case "/":
		return operator{20, false, nodeDiv}
	default:
		return operator{}
	}
}
