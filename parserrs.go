package qcalc

import "strconv"

// TokenError is an error indicating a token the parser did not expect. It
// implements InputError.
type TokenError struct {
	// Col and End are the span of the token.
	Col, End int
	// Text is the token's text.
	Text string
	// Want describes what the parser expected instead, if anything.
	Want string
}

func (err *TokenError) Error() string {
	if err.Want == "" {
		return errpos(err.Col, "unexpected "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, strconv.Quote(err.Text)+" is not "+err.Want)
}

func (err *TokenError) Pos() int { return err.Col }
func (err *TokenError) Span() (start, end int) { return err.Col, err.End }

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col and End are the span of the offending token.
	Col, End int
	// Left is the opening bracket, if there is one.
	Left string
	// Right is the closing bracket, if there is one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int { return err.Col }
func (err *BracketError) Span() (start, end int) { return err.Col, err.End }

// EmptyExpressionError is an error indicating an empty subexpression. It
// implements InputError.
type EmptyExpressionError struct {
	// Col and End are the span of the token that ended the subexpression.
	Col, End int
	// Text is the token that ended the subexpression, or the empty string at
	// the end of input.
	Text string
}

func (err *EmptyExpressionError) Error() string {
	if err.Text == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.Text))
}

func (err *EmptyExpressionError) Pos() int { return err.Col }
func (err *EmptyExpressionError) Span() (start, end int) { return err.Col, err.End }

// NameError is an error indicating a word that is not a known unit,
// constant, or function. It implements InputError.
type NameError struct {
	// Col and End are the span of the word.
	Col, End int
	// Name is the unknown word.
	Name string
	// Kind is what the word was expected to be, e.g. "unit".
	Kind string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown "+err.Kind+" "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int { return err.Col }
func (err *NameError) Span() (start, end int) { return err.Col, err.End }

// RangeError is an error indicating an integer literal that is out of range
// for its use, e.g. a unit exponent or a root degree. It implements
// InputError.
type RangeError struct {
	// Col and End are the span of the literal.
	Col, End int
	// Text is the literal.
	Text string
	// What is the use of the literal.
	What string
	// Min and Max are the allowed range, inclusive.
	Min, Max int
}

func (err *RangeError) Error() string {
	return errpos(err.Col, err.What+" "+err.Text+" outside range "+strconv.Itoa(err.Min)+" to "+strconv.Itoa(err.Max))
}

func (err *RangeError) Pos() int { return err.Col }
func (err *RangeError) Span() (start, end int) { return err.Col, err.End }

// QueryError is an error indicating a malformed or repeated query clause. It
// implements InputError.
type QueryError struct {
	// Col and End are the span of the offending token.
	Col, End int
	// Msg describes the problem.
	Msg string
}

func (err *QueryError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *QueryError) Pos() int { return err.Col }
func (err *QueryError) Span() (start, end int) { return err.Col, err.End }

// EvalError is an error from evaluating a subexpression. It carries the span
// of the subexpression that failed and implements InputError. Use errors.As
// to recover the underlying DomainError, DimensionError, UnitsError,
// PowerError, or OverflowError.
type EvalError struct {
	// Col and End are the span of the failing subexpression.
	Col, End int
	// Err is the cause.
	Err error
}

func (err *EvalError) Error() string {
	return errpos(err.Col, err.Err.Error())
}

func (err *EvalError) Unwrap() error { return err.Err }
func (err *EvalError) Pos() int { return err.Col }
func (err *EvalError) Span() (start, end int) { return err.Col, err.End }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
	// Span returns the rune positions of the start of the offending input
	// and just past its end. Positions count from 1.
	Span() (start, end int)
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*RangeError)(nil)
	_ InputError = (*QueryError)(nil)
	_ InputError = (*EvalError)(nil)
	_ InputError = (*LexError)(nil)
)
