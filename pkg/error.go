package pkg

import (
	"fmt"
	"strings"
)

// Error represents a chain of errors, innermost first.
//
// Sentinels below are matched with errors.Is and are wrapped with the
// underlying cause before being returned.
type Error []error

var (
	// ErrReadInput is returned when reading a source file fails.
	ErrReadInput = MakeErrorf("failed to read input")
	// ErrReadStdin is returned when reading standard input fails.
	ErrReadStdin = MakeErrorf("failed to read stdin")
	// ErrNotFound is returned when a script is not found on the search path.
	ErrNotFound = MakeErrorf("script not found")
	// ErrJSONMarshal is returned when JSON encoding fails.
	ErrJSONMarshal = MakeErrorf("JSON marshal error")
	// ErrYAMLMarshal is returned when YAML encoding fails.
	ErrYAMLMarshal = MakeErrorf("YAML marshal error")
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = MakeErrorf("invalid format")
)

// MakeError constructs an Error from the given errors, flattening any
// chains they contain. Nil errors are skipped.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error joins the messages of the chain with ": ".
func (e Error) Error() string {
	msg := make([]string, len(e))
	for i, err := range e {
		msg[i] = err.Error()
	}

	return strings.Join(msg, ": ")
}

// Wrap returns a new chain with err appended.
func (e Error) Wrap(err ...error) Error {
	return append(e[:len(e):len(e)], err...)
}

// Wrapf returns a new chain with a formatted error appended.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Unwrap returns the errors of the chain.
func (e Error) Unwrap() []error { return e }

// Is reports whether target is a prefix of e, so a wrapped sentinel still
// matches the sentinel itself.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if t[i] != e[i] {
			return false
		}
	}

	return true
}

// UnwrapErrors flattens err and everything it wraps into a chain, innermost
// first.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	var chain Error

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, wrapped := range u.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	case interface{ Unwrap() error }:
		chain = append(chain, UnwrapErrors(u.Unwrap())...)
	}

	return append(chain, err)
}
