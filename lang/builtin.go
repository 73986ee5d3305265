package lang

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Builtin describes a function available to every program unless a
// variable of the same name shadows it.
type Builtin struct {
	Name  string
	Param string
	Doc   string

	source string // expr-lang program applied to the argument
}

// Signature returns the call form of b, e.g. "abs(x)".
func (b Builtin) Signature() string { return b.Name + "(" + b.Param + ")" }

// builtinParam is the expr-lang variable holding the call argument.
const builtinParam = "x"

//nolint:gochecknoglobals
var builtins = []Builtin{
	{Name: "abs", Param: "x", Doc: "absolute value", source: "abs(x)"},
	{Name: "ceil", Param: "x", Doc: "round up", source: "ceil(x)"},
	{Name: "floor", Param: "x", Doc: "round down", source: "floor(x)"},
	{Name: "round", Param: "x", Doc: "round half away from zero", source: "round(x)"},
	{Name: "sqrt", Param: "x", Doc: "square root", source: "sqrt(x)"},
	{Name: "exp", Param: "x", Doc: "e raised to x", source: "exp(x)"},
	{Name: "ln", Param: "x", Doc: "natural logarithm", source: "ln(x)"},
	{Name: "sin", Param: "x", Doc: "sine (radians)", source: "sin(x)"},
	{Name: "cos", Param: "x", Doc: "cosine (radians)", source: "cos(x)"},
	{Name: "tan", Param: "x", Doc: "tangent (radians)", source: "tan(x)"},
	{Name: "int", Param: "x", Doc: "truncate to int", source: "int(x)"},
	{Name: "float", Param: "x", Doc: "convert to float", source: "float(x)"},
	{Name: "len", Param: "v", Doc: "vector length", source: "len(x)"},
	{Name: "sum", Param: "v", Doc: "sum of elements", source: "sum(x)"},
	{Name: "max", Param: "v", Doc: "largest element", source: "max(x)"},
	{Name: "min", Param: "v", Doc: "smallest element", source: "min(x)"},
	{Name: "mean", Param: "v", Doc: "arithmetic mean", source: "mean(x)"},
	{Name: "median", Param: "v", Doc: "median element", source: "median(x)"},
	{Name: "first", Param: "v", Doc: "first element", source: "first(x)"},
	{Name: "last", Param: "v", Doc: "last element", source: "last(x)"},
	{Name: "reverse", Param: "v", Doc: "elements in reverse order", source: "reverse(x)"},
	{Name: "sort", Param: "v", Doc: "elements in ascending order", source: "sort(x)"},
}

// Builtins returns the builtin functions ordered by name.
func Builtins() []Builtin {
	out := slices.Clone(builtins)
	slices.SortFunc(out, func(a, b Builtin) int { return cmp.Compare(a.Name, b.Name) })

	return out
}

// LookupBuiltin returns the builtin function with the given name.
func LookupBuiltin(name string) (Builtin, bool) {
	i := slices.IndexFunc(builtins, func(b Builtin) bool { return b.Name == name })
	if i < 0 {
		return Builtin{}, false
	}

	return builtins[i], true
}

var errUnsupported = errors.New("unsupported value")

// programs compiles every builtin once per process.
//
//nolint:gochecknoglobals
var programs = sync.OnceValues(func() (map[string]*vm.Program, error) {
	opts := []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("sqrt", mathFunc(math.Sqrt)),
		expr.Function("exp", mathFunc(math.Exp)),
		expr.Function("ln", mathFunc(math.Log)),
		expr.Function("sin", mathFunc(math.Sin)),
		expr.Function("cos", mathFunc(math.Cos)),
		expr.Function("tan", mathFunc(math.Tan)),
	}

	out := make(map[string]*vm.Program, len(builtins))

	for _, b := range builtins {
		prog, err := expr.Compile(b.source, opts...)
		if err != nil {
			return nil, fmt.Errorf("compile builtin %s: %w", b.Name, err)
		}

		out[b.Name] = prog
	}

	return out, nil
})

// apply runs b with arg bound to its parameter.
func (b Builtin) apply(arg Value) (Value, error) {
	progs, err := programs()
	if err != nil {
		return nil, err
	}

	in, err := toNative(arg)
	if err != nil {
		return nil, err
	}

	out, err := expr.Run(progs[b.Name], map[string]any{builtinParam: in})
	if err != nil {
		return nil, err
	}

	return fromNative(out)
}

// mathFunc adapts a float function to expr-lang, mapping over arrays.
func mathFunc(fn func(float64) float64) func(...any) (any, error) {
	var apply func(any) (any, error)

	apply = func(v any) (any, error) {
		switch v := v.(type) {
		case int:
			return fn(float64(v)), nil
		case float64:
			return fn(v), nil
		case []any:
			out := make([]any, len(v))

			for i, e := range v {
				r, err := apply(e)
				if err != nil {
					return nil, err
				}

				out[i] = r
			}

			return out, nil
		}

		return nil, fmt.Errorf("%w: %T", errUnsupported, v)
	}

	return func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf(
				"invalid number of arguments (expected 1, got %d)", len(params))
		}

		return apply(params[0])
	}
}

// toNative converts v to the representation expr-lang operates on.
func toNative(v Value) (any, error) {
	switch v := v.(type) {
	case Int:
		return int(v), nil
	case Float:
		return float64(v), nil
	case Vector:
		out := make([]any, len(v))

		for i, e := range v {
			n, err := toNative(e)
			if err != nil {
				return nil, err
			}

			out[i] = n
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %s", errUnsupported, v.Type())
}

// fromNative converts an expr-lang result back to a [Value].
func fromNative(v any) (Value, error) {
	switch v := v.(type) {
	case int:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case uint:
		return Int(int64(v)), nil //nolint:gosec
	case float64:
		return Float(v), nil
	case float32:
		return Float(v), nil
	case bool:
		return boolInt(v), nil
	case []any:
		out := make(Vector, len(v))

		for i, e := range v {
			r, err := fromNative(e)
			if err != nil {
				return nil, err
			}

			out[i] = r
		}

		return out, nil
	case []int:
		out := make(Vector, len(v))
		for i, e := range v {
			out[i] = Int(e)
		}

		return out, nil
	case []float64:
		out := make(Vector, len(v))
		for i, e := range v {
			out[i] = Float(e)
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %T", errUnsupported, v)
}

func builtinAttrs(b Builtin) slog.Attr {
	return slog.String("builtin", b.Signature())
}
