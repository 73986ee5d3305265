package cmd

import (
	"log/slog"
	"slices"
	"strings"
)

// Error is the failure of a vcalc subcommand. It names the step that failed
// (loading a script, evaluating, formatting) and wraps the cause, which is
// often a [*lang.Error] diagnostic that main prints as is.
//
// Errors are immutable; Wrap and With return copies, so the sentinels below
// can be shared.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns a sentinel for the step described by msg.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error renders "<step>: <cause>", omitting whichever part is empty.
func (e *Error) Error() string {
	var part []string

	for _, s := range []string{e.msg, e.cause()} {
		if s != "" {
			part = append(part, s)
		}
	}

	return strings.Join(part, ": ")
}

func (e *Error) cause() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel of e's step.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.err == nil && t.msg == e.msg
}

// Attrs returns the attributes added by With, such as the script file.
func (e *Error) Attrs() []slog.Attr { return e.attrs }

// LogValue groups the step, the cause and the attributes. A diagnostic
// cause logs through its own LogValue.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = slices.Concat(e.attrs, attrs)

	return &c
}

// Steps that a subcommand reports failure for.
var (
	ErrEvaluate    = NewError("evaluate")
	ErrLoadScript  = NewError("load script")
	ErrFormat      = NewError("format")
	ErrWriteConfig = NewError("write configuration file")
	ErrFileExists  = NewError("file exists (use --force to overwrite)")
	ErrSession     = NewError("interactive session")
)
