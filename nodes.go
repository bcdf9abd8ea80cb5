package qcalc

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// q is the value of a quantity node, and text is its source text.
	q    Quantity
	text string
	// deg is the degree of a root node.
	deg int8

	left  *node
	right *node

	// pos and end are the span of source text the node was parsed from.
	pos, end int
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeQuantity // push q

	nodeNeg       // evaluate left, then negate
	nodeNop       // evaluate left
	nodeAdd       // evaluate left, add right
	nodeSub       // evaluate left, sub right
	nodeMul       // evaluate left, mul right
	nodeDiv       // evaluate left, div by right
	nodePow       // evaluate left, exp by right
	nodePercent   // evaluate left, divide by 100
	nodeFactorial // evaluate left, factorial
	nodeRoot      // evaluate left, take the deg-th root
	nodeSin       // evaluate left, sine
	nodeCos       // evaluate left, cosine
	nodeTan       // evaluate left, tangent
	nodeExp       // evaluate left, exponential
	nodeLn        // evaluate left, natural log
	nodeLog       // evaluate left, common log
	nodeUndim     // evaluate left, drop dimension
)

//go:generate stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, square)
		}
		b.WriteByte('$')
	case nodeQuantity:
		b.WriteString(n.text)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeAdd:
		n.binfmt(b, square, " + ")
	case nodeSub:
		n.binfmt(b, square, " - ")
	case nodeMul:
		n.binfmt(b, square, " * ")
	case nodeDiv:
		n.binfmt(b, square, " / ")
	case nodePow:
		n.binfmt(b, square, " ^ ")
	case nodePercent:
		n.left.fmt(b, !square)
		b.WriteByte('%')
	case nodeFactorial:
		n.left.fmt(b, !square)
		b.WriteByte('!')
	case nodeRoot:
		b.WriteString(rootname(n.deg))
		n.left.fmt(b, !square)
	case nodeSin, nodeCos, nodeTan, nodeExp, nodeLn, nodeLog:
		b.WriteString(strings.ToLower(n.kind.String()))
		n.left.fmt(b, !square)
	case nodeUndim:
		b.WriteByte(':')
		n.left.fmt(b, !square)
	default:
		panic("qcalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binfmt(b *strings.Builder, square bool, op string) {
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}
