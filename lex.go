package qcalc

import (
	"strconv"
	"strings"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos and end are the rune positions of the token's first rune and just
	// past its last, counting from 1.
	pos, end int
	// num is the value of a number token.
	num AutoNum
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// is returns whether t is an operator token with the given text.
func (t lexToken) is(op string) bool {
	return t.kind == tokenOp && t.text == op
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer or real literal.
	tokenNum
	// tokenWord is a unit, constant, function, or keyword.
	tokenWord
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
)

//go:generate stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^%!:<>"

// eoftext is the text of the EOF token, used in error messages.
const eoftext = "end of input"

var ruleset = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Space", Pattern: `\s+`},
	{Name: "Num", Pattern: `(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`},
	{Name: "Word", Pattern: `[A-Za-z_µμ]+`},
	{Name: "Open", Pattern: `\(`},
	{Name: "Close", Pattern: `\)`},
	{Name: "Sym", Pattern: `.`},
})

// rulekinds maps lexing rules to token kinds. Space maps to tokenNone, so it
// is dropped.
var rulekinds = func() map[plexer.TokenType]tokenKind {
	m := map[plexer.TokenType]tokenKind{plexer.EOF: tokenEOF}
	kinds := map[string]tokenKind{
		"Num":   tokenNum,
		"Word":  tokenWord,
		"Open":  tokenOpen,
		"Close": tokenClose,
		"Sym":   tokenOp,
	}
	for name, typ := range ruleset.Symbols() {
		if k, ok := kinds[name]; ok {
			m[typ] = k
		}
	}
	return m
}()

type lexer struct {
	toks []lexToken
	k    int
}

// lex scans all of src. The final token is always EOF.
func lex(src string) (*lexer, error) {
	lx, err := ruleset.LexString("", src)
	if err != nil {
		return nil, err
	}
	raw, err := plexer.ConsumeAll(lx)
	if err != nil {
		if le, ok := err.(*plexer.Error); ok {
			col := runepos(src, le.Pos.Offset)
			return nil, &LexError{Text: src[le.Pos.Offset:], Col: col, End: col + 1}
		}
		return nil, err
	}
	l := lexer{toks: make([]lexToken, 0, len(raw))}
	for _, r := range raw {
		kind := rulekinds[r.Type]
		if kind == tokenNone {
			continue
		}
		pos := runepos(src, r.Pos.Offset)
		tok := lexToken{
			text: r.Value,
			kind: kind,
			pos:  pos,
			end:  pos + utf8.RuneCountInString(r.Value),
		}
		switch kind {
		case tokenEOF:
			tok.text = eoftext
			tok.end = pos + 1
		case tokenNum:
			tok.num, err = ParseNum(r.Value)
			if err != nil {
				return nil, &LexError{Text: r.Value, Kind: "number", Col: tok.pos, End: tok.end}
			}
		case tokenOp:
			if !strings.Contains(Operators, r.Value) {
				return nil, &LexError{Text: r.Value, Col: tok.pos, End: tok.end}
			}
		}
		l.toks = append(l.toks, tok)
	}
	return &l, nil
}

// runepos converts a byte offset in src to a rune position counting from 1.
func runepos(src string, off int) int {
	if off > len(src) {
		off = len(src)
	}
	return utf8.RuneCountInString(src[:off]) + 1
}

// next scans the next token. After the end of input, next continues to
// return the EOF token.
func (l *lexer) next() lexToken {
	tok := l.toks[l.k]
	if tok.kind != tokenEOF {
		l.k++
	}
	return tok
}

// peek returns the next token without scanning it.
func (l *lexer) peek() lexToken {
	return l.toks[l.k]
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the invalid token.
	Text string
	// Kind is the type of token the lexer was scanning, "number" or the empty
	// string for an unknown symbol.
	Kind string
	// Col and End are the span of the token.
	Col, End int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, strconv.Quote(err.Text)+" is an unknown symbol")
	}
	return errpos(err.Col, "unable to parse "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int { return err.Col }
func (err *LexError) Span() (start, end int) { return err.Col, err.End }
