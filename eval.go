package qcalc

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Eval evaluates the expression. If an operation fails, e.g. adding
// quantities of different dimensions or dividing by zero, the error is an
// *EvalError locating the subexpression that failed.
func (e *Expr) Eval() (Quantity, error) {
	return e.n.eval()
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

// eval computes the node's value. Errors from operations on this node are
// wrapped with its span; errors from children pass through unchanged.
func (n *node) eval() (Quantity, error) {
	switch n.kind {
	case nodeQuantity:
		return n.q, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return Quantity{}, err
		}
		r, err := n.right.eval()
		if err != nil {
			return Quantity{}, err
		}
		var q Quantity
		switch n.kind {
		case nodeAdd:
			q, err = l.Add(r)
		case nodeSub:
			q, err = l.Sub(r)
		case nodeMul:
			q, err = l.Mul(r)
		case nodeDiv:
			q, err = l.Div(r)
		case nodePow:
			q, err = l.Pow(r)
		}
		return q, n.fail(err)
	case nodeNone:
		panic("qcalc: eval on invalid node")
	}
	x, err := n.left.eval()
	if err != nil {
		return Quantity{}, err
	}
	var q Quantity
	switch n.kind {
	case nodeNeg:
		q = x.Neg()
	case nodeNop:
		q = x
	case nodePercent:
		q, err = x.Percent()
	case nodeFactorial:
		q, err = x.Factorial()
	case nodeRoot:
		q, err = x.Root(n.deg)
	case nodeSin:
		q, err = x.Sin()
	case nodeCos:
		q, err = x.Cos()
	case nodeTan:
		q, err = x.Tan()
	case nodeExp:
		q, err = x.Exp()
	case nodeLn:
		q, err = x.Ln()
	case nodeLog:
		q, err = x.Log()
	case nodeUndim:
		q = x.Undim()
	default:
		panic("qcalc: invalid AST node " + n.kind.String())
	}
	return q, n.fail(err)
}

// fail attaches the node's span to an error from its own operation.
func (n *node) fail(err error) error {
	if err == nil {
		return nil
	}
	return &EvalError{Col: n.pos, End: n.end, Err: err}
}

// Eval is a shortcut to parse a query, evaluate it, and format the answer.
func Eval(src string, opts ...ParseOption) (string, error) {
	q, err := ParseQuery(src, opts...)
	if err != nil {
		return "", err
	}
	return q.Answer()
}
