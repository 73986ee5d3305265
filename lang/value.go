package lang

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// TypeKind is the runtime type tag of a [Value].
type TypeKind int

const (
	TypeInt      TypeKind = iota // int
	TypeFloat                    // float
	TypeVector                   // vector
	TypeFunction                 // function
)

// Type describes a runtime value. Function types carry their parameter
// name, so two functions have the same type only if their parameters match.
type Type struct {
	Kind  TypeKind
	Param string
}

func (t Type) String() string {
	if t.Kind == TypeFunction && t.Param != "" {
		return t.Kind.String() + "(" + t.Param + ")"
	}

	return t.Kind.String()
}

// Value is a runtime value. Values are never modified after construction.
type Value interface {
	Type() Type
	String() string

	value()
}

// Int is a 64-bit signed integer.
type Int int64

// Float is a 64-bit float.
type Float float64

// Vector is an ordered sequence of values. Vectors may nest.
type Vector []Value

// Function is a single-parameter function value. It holds no bindings from
// the scope where it was defined.
type Function struct {
	Param string
	Body  Spanned
}

func (Int) Type() Type         { return Type{Kind: TypeInt} }
func (Float) Type() Type       { return Type{Kind: TypeFloat} }
func (Vector) Type() Type      { return Type{Kind: TypeVector} }
func (f *Function) Type() Type { return Type{Kind: TypeFunction, Param: f.Param} }

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Float) String() string {
	f := float64(v)

	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (v Vector) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, e := range v {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(e.String())
	}

	sb.WriteByte(']')

	return sb.String()
}

func (f *Function) String() string {
	return "function(" + f.Param + ") = " + f.Body.String()
}

func (Int) value()       {}
func (Float) value()     {}
func (Vector) value()    {}
func (*Function) value() {}

// LogValue implements slog.LogValuer.
func (v Vector) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", len(v)),
		slog.String("value", v.String()),
	)
}

// isScalar reports whether v is an Int or a Float.
func isScalar(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	}

	return false
}
