package lang

import (
	"log/slog"
	"strconv"
)

// ErrorKind classifies an [Error].
type ErrorKind int

const (
	ErrorSyntax          ErrorKind = iota // syntax
	ErrorExpectToken                      // expect token
	ErrorExpectNode                       // expect node
	ErrorUnexpectedToken                  // unexpected token
	ErrorNotImplemented                   // not implemented
	ErrorBinaryOperation                  // binary operation
	ErrorUnaryOperation                   // unary operation
	ErrorIndex                            // index
	ErrorIllegalValue                     // illegal value
	ErrorVariable                         // variable
)

// Sentinel errors, one per [ErrorKind].
// Any [Error] matches the sentinel of its kind with errors.Is.
var (
	ErrSyntax          = &Error{Kind: ErrorSyntax}
	ErrExpectToken     = &Error{Kind: ErrorExpectToken}
	ErrExpectNode      = &Error{Kind: ErrorExpectNode}
	ErrUnexpectedToken = &Error{Kind: ErrorUnexpectedToken}
	ErrNotImplemented  = &Error{Kind: ErrorNotImplemented}
	ErrBinaryOperation = &Error{Kind: ErrorBinaryOperation}
	ErrUnaryOperation  = &Error{Kind: ErrorUnaryOperation}
	ErrIndex           = &Error{Kind: ErrorIndex}
	ErrIllegalValue    = &Error{Kind: ErrorIllegalValue}
	ErrVariable        = &Error{Kind: ErrorVariable}
)

// Error is a diagnostic produced by any stage of the pipeline.
//
// It renders as
//
//	ERROR: <detail> - <label> <ln: L, column: C>
//
// and implements slog.LogValuer for structured logging.
type Error struct {
	Kind   ErrorKind
	Pos    Position
	Label  string
	detail string
	err    error       // Wrapped error (for errors.Unwrap)
	attrs  []slog.Attr // Attributes for structured logging
}

func newError(kind ErrorKind, pos Position, label, detail string) *Error {
	return &Error{Kind: kind, Pos: pos, Label: label, detail: detail}
}

// Detail returns the kind-specific part of the message.
func (e *Error) Detail() string { return e.detail }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.detail == "" {
		return e.Kind.String() + " error"
	}

	return "ERROR: " + e.detail + " - " + e.Label + " " + e.Pos.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel of e's kind, or an identical
// diagnostic.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}

	return t.detail == "" || (t.detail == e.detail && t.Pos == e.Pos)
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+5)
	attrs = append(attrs,
		slog.String("kind", e.Kind.String()),
		slog.String("error", e.detail),
		slog.String("label", e.Label),
		slog.Any("position", e.Pos),
	)

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e that wraps err.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With returns a copy of e with attrs added.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	c.attrs = append(append(c.attrs, e.attrs...), attrs...)

	return &c
}

func errExpectToken(want Kind, got Lexeme, label string) *Error {
	return newError(ErrorExpectToken, got.Pos, label,
		"expected "+want.String()+" got "+got.String()).
		With(slog.String("expected", want.String()), slog.Any("got", got.Token))
}

func errExpectNode(want string, got Spanned, label string) *Error {
	return newError(ErrorExpectNode, got.Pos, label,
		"expected "+want+" got "+got.Node.Name())
}

func errUnexpectedToken(got Lexeme, label string) *Error {
	return newError(ErrorUnexpectedToken, got.Pos, label,
		"unexpected "+got.String()).
		With(slog.Any("token", got.Token))
}

func errNotImplemented(what string, pos Position, label string) *Error {
	return newError(ErrorNotImplemented, pos, label, "not implemented -> "+what)
}

func errBinaryOperation(op Token, l, r Value, pos Position, label string) *Error {
	return newError(ErrorBinaryOperation, pos, label,
		"operation "+op.String()+" cannot be performed on "+
			l.Type().String()+" and "+r.Type().String())
}

func errUnaryOperation(op string, v Value, pos Position, label string) *Error {
	return newError(ErrorUnaryOperation, pos, label,
		"operation "+op+" cannot be performed on "+v.Type().String())
}

func errIndex(maxIndex, index int64, pos Position, label string) *Error {
	return newError(ErrorIndex, pos, label,
		"index "+strconv.FormatInt(index, 10)+" out of range, max "+
			strconv.FormatInt(maxIndex, 10)).
		With(slog.Int64("index", index), slog.Int64("max", maxIndex))
}

func errIllegalValue(v Value, t Type, pos Position, label string) *Error {
	return newError(ErrorIllegalValue, pos, label,
		v.Type().String()+" illegal for "+t.String())
}

func errVariable(name string, pos Position, label string) *Error {
	return newError(ErrorVariable, pos, label,
		"variable '"+name+"' is not defined").
		With(slog.String("name", name))
}
