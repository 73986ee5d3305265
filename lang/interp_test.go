package lang

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"testing/quick"

	"github.com/ardnew/vcalc/log"
)

// eval runs each line of sources against env and returns the result of the
// last one.
func eval(t *testing.T, env *Env, sources ...string) (Value, error) {
	t.Helper()

	var (
		v   Value
		err error
	)

	for _, src := range sources {
		v, err = Run(t.Context(), src, "test", env)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func TestInterpret_Values(t *testing.T) {
	inf := Float(math.Inf(1))

	tests := []struct {
		name    string
		sources []string
		want    Value
	}{
		{"int", []string{"42"}, Int(42)},
		{"float", []string{"0.5"}, Float(0.5)},
		{"pi", []string{"pi"}, Float(math.Pi)},
		{"infinity", []string{"infinity"}, inf},
		{"int addition", []string{"1 + 2"}, Int(3)},
		{"int multiplication", []string{"6 * 7"}, Int(42)},
		{"float promotion", []string{"1 + 2.5"}, Float(3.5)},
		{"float promotion right", []string{"2.5 - 1"}, Float(1.5)},
		{"true division", []string{"7 / 2"}, Float(3.5)},
		{"exact division", []string{"6 / 3"}, Float(2)},
		{"int power", []string{"2 ^ 10"}, Int(1024)},
		{"negative power", []string{"2 ^ -1"}, Float(0.5)},
		{"float power", []string{"4 ^ 0.5"}, Float(2)},
		{"int modulo", []string{"7 % 3"}, Int(1)},
		{"float modulo", []string{"7.5 % 2"}, Float(1.5)},
		{"unary binds tighter than power", []string{"-2 ^ 2"}, Int(4)},
		{"double negation", []string{"--3"}, Int(3)},
		{"inf divided by inf", []string{"inf / inf"}, inf},
		{"inf minus inf", []string{"inf - inf"}, Float(math.NaN())},
		{"broadcast", []string{"[1 2 3] + 1"}, Vector{Int(2), Int(3), Int(4)}},
		{"broadcast float", []string{"[1 2] * 0.5"}, Vector{Float(0.5), Float(1)}},
		{"truncating zip", []string{"[1 2 3] + [10 20]"}, Vector{Int(11), Int(22)}},
		{"negate vector", []string{"-[1 -2.5]"}, Vector{Float(1.5)}},
		{"negate vector items", []string{"-[1 (-2.5)]"}, Vector{Int(-1), Float(2.5)}},
		{"empty vector", []string{"[]"}, Vector{}},
		{"index", []string{"[10 20 30] # 1"}, Int(20)},
		{"index expression", []string{"v = [4 5]", "v # (1 - 1)"}, Int(4)},
		{"less", []string{"1 < 2"}, Int(1)},
		{"greater equal", []string{"1 >= 2.0"}, Int(0)},
		{"mixed equality", []string{"1 = 1.0"}, Int(1)},
		{"not equal", []string{"1 != 1"}, Int(0)},
		{"comparison chain", []string{"1 = 1 = 1"}, Int(1)},
		{"vector equal", []string{"[1 2] = [1 2]"}, Int(1)},
		{"vector equal length", []string{"[1 2] = [1 2 3]"}, Int(0)},
		{"vector not equal length", []string{"[1 2] != [1 2 3]"}, Int(1)},
		{"vector not equal", []string{"[1 2] != [1 3]"}, Int(1)},
		{"vector less short circuit", []string{"[1 2] < [2 1]"}, Int(0)},
		{"vector less prefix", []string{"[1 2] < [2 3 0]"}, Int(1)},
		{"is same type", []string{"[1] is [2 3]"}, Int(1)},
		{"is different type", []string{"2 is 2.0"}, Int(0)},
		{"is function params", []string{"f(x) = x", "g(y) = y", "f is g"}, Int(0)},
		{"assignment value", []string{"x = 5"}, Int(5)},
		{"assignment persists", []string{"x = 5", "x + 1"}, Int(6)},
		{"reassignment", []string{"x = 5", "x = x * 2", "x"}, Int(10)},
		{"chained assignment", []string{"x = y = 3", "x + y"}, Int(6)},
		{"identity function", []string{"f(x) = x", "f(7)"}, Int(7)},
		{"function on vector", []string{"sq(x) = x * x", "sq([1 2 3])"}, Vector{Int(1), Int(4), Int(9)}},
		{"function argument expression", []string{"a = 2", "f(x) = x + 1", "f(a * 3)"}, Int(7)},
		{"nested calls", []string{"f(x) = x + 1", "f(f(f(0)))"}, Int(3)},
		{"builtin", []string{"abs(-3)"}, Int(3)},
		{"builtin float", []string{"sqrt(16)"}, Float(4)},
		{"builtin vector", []string{"len([1 2 3])"}, Int(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval(t, NewEnv(), tt.sources...)
			if err != nil {
				t.Fatalf("eval(%q): %v", tt.sources, err)
			}

			if !sameValue(got, tt.want) {
				t.Errorf("eval(%q) = %#v, want %#v", tt.sources, got, tt.want)
			}
		})
	}
}

// sameValue compares values by type and content, treating NaN as equal to
// itself.
func sameValue(a, b Value) bool {
	if fa, ok := a.(Float); ok {
		fb, ok := b.(Float)

		return ok && (fa == fb || (math.IsNaN(float64(fa)) && math.IsNaN(float64(fb))))
	}

	return reflect.DeepEqual(a, b)
}

func TestInterpret_FunctionValues(t *testing.T) {
	env := NewEnv()

	v, err := eval(t, env, "f(x) = x ^ 2")
	if err != nil {
		t.Fatal(err)
	}

	fn, ok := v.(*Function)
	if !ok {
		t.Fatalf("f(x) = ... returned %T, want *Function", v)
	}

	if fn.Param != "x" || fn.Body.String() != "x ^ 2" {
		t.Errorf("function = %v", fn)
	}

	if got := fn.String(); got != "function(x) = x ^ 2" {
		t.Errorf("String() = %q", got)
	}

	if got := fn.Type().String(); got != "function(x)" {
		t.Errorf("Type() = %q", got)
	}

	if bound, _ := env.Get("f"); bound != v {
		t.Error("f is not bound to the returned function")
	}
}

func TestInterpret_SelfReference(t *testing.T) {
	// A call frame binds the function's own name, so the body may refer to it.
	v, err := eval(t, NewEnv(), "f(x) = f", "f(1)")
	if err != nil {
		t.Fatal(err)
	}

	fn, ok := v.(*Function)
	if !ok || fn.Param != "x" {
		t.Errorf("f(1) = %v, want the function itself", v)
	}
}

func TestInterpret_CallIsolation(t *testing.T) {
	env := NewEnv()

	_, err := eval(t, env, "y = 3", "g(x) = x + y", "g(1)")
	if !errors.Is(err, ErrVariable) {
		t.Fatalf("error = %v, want ErrVariable", err)
	}

	if _, err := eval(t, env, "h(x) = z = x", "h(5)"); err != nil {
		t.Fatal(err)
	}

	if _, ok := env.Get("z"); ok {
		t.Error("assignment inside a call leaked into the caller")
	}

	if _, ok := env.Get("x"); ok {
		t.Error("parameter leaked into the caller")
	}
}

func TestInterpret_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		kind    error
		want    string
	}{
		{
			"unbound variable", []string{"y"}, ErrVariable,
			"ERROR: variable 'y' is not defined - test <ln: 0, column: 0>",
		},
		{
			"unbound operand", []string{"1 + y"}, ErrVariable,
			"ERROR: variable 'y' is not defined - test <ln: 0, column: 4>",
		},
		{
			"unbound callee", []string{"nope(1)"}, ErrVariable,
			"ERROR: variable 'nope' is not defined - test <ln: 0, column: 0>",
		},
		{
			"global in function body", []string{"g(y) = y", "k(x) = g(x)", "k(1)"}, ErrVariable,
			"ERROR: variable 'g' is not defined - test <ln: 0, column: 7>",
		},
		{
			"index out of range", []string{"[1 2] # 5"}, ErrIndex,
			"ERROR: index 5 out of range, max 1 - test <ln: 0, column: 0>",
		},
		{
			"negative index", []string{"[1 2] # (-1)"}, ErrIndex,
			"ERROR: index -1 out of range, max 1 - test <ln: 0, column: 0>",
		},
		{
			"index by float", []string{"[1 2] # 1.0"}, ErrBinaryOperation,
			"ERROR: operation '#' cannot be performed on vector and float - test <ln: 0, column: 0>",
		},
		{
			"index scalar", []string{"1 # 0"}, ErrBinaryOperation,
			"ERROR: operation '#' cannot be performed on int and int - test <ln: 0, column: 0>",
		},
		{
			"scalar plus vector", []string{"1 + [1]"}, ErrBinaryOperation,
			"ERROR: operation '+' cannot be performed on int and vector - test <ln: 0, column: 0>",
		},
		{
			"function arithmetic", []string{"f(x) = x", "f + 1"}, ErrBinaryOperation,
			"ERROR: operation '+' cannot be performed on function(x) and int - test <ln: 0, column: 0>",
		},
		{
			"int modulo zero", []string{"1 % 0"}, ErrBinaryOperation,
			"ERROR: operation '%' cannot be performed on int and int - test <ln: 0, column: 0>",
		},
		{
			"vector compared to scalar", []string{"[1] = 1"}, ErrBinaryOperation,
			"ERROR: operation '=' cannot be performed on vector and int - test <ln: 0, column: 0>",
		},
		{
			"negate function", []string{"f(x) = x", "-f"}, ErrUnaryOperation,
			"ERROR: operation '-' cannot be performed on function(x) - test <ln: 0, column: 0>",
		},
		{
			"nested vector literal", []string{"[1 [2]]"}, ErrIllegalValue,
			"ERROR: vector illegal for vector - test <ln: 0, column: 3>",
		},
		{
			"function in vector literal", []string{"f(x) = x", "[f]"}, ErrIllegalValue,
			"ERROR: function(x) illegal for vector - test <ln: 0, column: 1>",
		},
		{
			"call non-function", []string{"x = 1", "x(2)"}, ErrIllegalValue,
			"ERROR: int illegal for function - test <ln: 0, column: 0>",
		},
		{
			"call literal", []string{"1(2)"}, ErrIllegalValue,
			"ERROR: int illegal for function - test <ln: 0, column: 0>",
		},
		{
			"shadowed builtin", []string{"abs = 2", "abs(3)"}, ErrIllegalValue,
			"ERROR: int illegal for function - test <ln: 0, column: 0>",
		},
		{
			"parameter not a variable", []string{"f(1) = 2"}, ErrExpectNode,
			"ERROR: expected variable got int - test <ln: 0, column: 2>",
		},
		{
			"callee not a variable", []string{"f(x)(y) = 1"}, ErrExpectNode,
			"ERROR: expected variable got call - test <ln: 0, column: 0>",
		},
		{
			"builtin rejects function", []string{"f(x) = x", "sqrt(f)"}, ErrUnaryOperation,
			"ERROR: operation 'sqrt' cannot be performed on function(x) - test <ln: 0, column: 0>",
		},
		{
			"lex error first", []string{"y + $"}, ErrSyntax,
			"ERROR: bad character '$' - test <ln: 0, column: 4>",
		},
		{
			"parse error first", []string{"y +"}, ErrUnexpectedToken,
			"ERROR: unexpected end of file - test <ln: 0, column: 3>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval(t, NewEnv(), tt.sources...)
			if err == nil {
				t.Fatalf("eval(%q) succeeded", tt.sources)
			}

			if !errors.Is(err, tt.kind) {
				t.Errorf("error %v is not %v", err, tt.kind)
			}

			if err.Error() != tt.want {
				t.Errorf("error = %q\n          want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestInterpret_NotImplemented(t *testing.T) {
	one := Spanned{Node: IntLit{Value: 1}}

	tests := []struct {
		name string
		expr Spanned
		want string
	}{
		{
			"unary plus",
			Spanned{Node: Unary{Op: Tok(KindAdd), Operand: one}},
			"ERROR: not implemented -> unary operator '+' - test <ln: 0, column: 0>",
		},
		{
			"binary group",
			Spanned{Node: Binary{Op: Tok(KindGroupIn), Left: one, Right: one}},
			"ERROR: not implemented -> binary operator '(' - test <ln: 0, column: 0>",
		},
		{
			"empty",
			Spanned{},
			"ERROR: not implemented -> empty expression - test <ln: 0, column: 0>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Interpret(t.Context(), tt.expr, "test", NewEnv())
			if !errors.Is(err, ErrNotImplemented) {
				t.Fatalf("error = %v, want ErrNotImplemented", err)
			}

			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestInterpret_SetBadTarget(t *testing.T) {
	expr := Spanned{Node: Set{
		Target: Spanned{Node: IntLit{Value: 1}},
		Value:  Spanned{Node: IntLit{Value: 2}},
	}}

	_, err := Interpret(t.Context(), expr, "test", nil)
	if !errors.Is(err, ErrExpectNode) {
		t.Errorf("error = %v, want ErrExpectNode", err)
	}
}

func TestInterpret_IntRoundTrip(t *testing.T) {
	roundTrip := func(n int64) bool {
		if n == math.MinInt64 {
			return true // its magnitude has no int literal
		}

		v, err := Run(t.Context(), strconv.FormatInt(n, 10), "test", NewEnv())

		return err == nil && v == Int(n)
	}

	if err := quick.Check(roundTrip, nil); err != nil {
		t.Error(err)
	}

	for _, n := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64 + 1} {
		if !roundTrip(n) {
			t.Errorf("round trip of %d failed", n)
		}
	}
}

func TestInterpret_DivisionIsFloat(t *testing.T) {
	divide := func(a, b int64) bool {
		if b == 0 || a == math.MinInt64 || b == math.MinInt64 {
			return true
		}

		src := strconv.FormatInt(a, 10) + "/" + strconv.FormatInt(b, 10)

		v, err := Run(t.Context(), src, "test", NewEnv())

		return err == nil && v == Float(float64(a)/float64(b))
	}

	if err := quick.Check(divide, nil); err != nil {
		t.Error(err)
	}
}

func TestInterpret_Logging(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf, log.WithLevel(log.LevelTrace), log.WithFormat(log.FormatJSON))

	if _, err := Run(t.Context(), "f(x) = x", "test", NewEnv(), WithLogger(logger)); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "function defined") {
		t.Errorf("trace output missing definition: %s", buf.String())
	}
}
