package lang

import (
	"bytes"
	"math"
	"slices"
	"testing"
)

func TestEnv_SetGet(t *testing.T) {
	env := NewEnv()

	env.Set("a", Int(1))
	env.Set("b", Int(2))
	env.Set("a", Float(3))

	if got := env.Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Names() = %q, want [a b]", got)
	}

	if v, ok := env.Get("a"); !ok || v != Float(3) {
		t.Errorf("Get(a) = %v, %v; want 3, true", v, ok)
	}

	if _, ok := env.Get("c"); ok {
		t.Error("Get(c) found an unbound name")
	}

	if env.Len() != 2 {
		t.Errorf("Len() = %d, want 2", env.Len())
	}

	var names []string
	for name, v := range env.All() {
		names = append(names, name+"="+v.String())
	}

	if !slices.Equal(names, []string{"a=3", "b=2"}) {
		t.Errorf("All() = %q", names)
	}
}

func TestEnv_Nil(t *testing.T) {
	var env *Env

	if _, ok := env.Get("x"); ok {
		t.Error("nil Env has a binding")
	}

	if env.Len() != 0 || env.Names() != nil {
		t.Error("nil Env is not empty")
	}

	for range env.All() {
		t.Error("nil Env yielded a binding")
	}

	var zero Env
	zero.Set("x", Int(1))

	if v, ok := zero.Get("x"); !ok || v != Int(1) {
		t.Errorf("zero Env Get(x) = %v, %v", v, ok)
	}
}

func TestEnv_Program(t *testing.T) {
	env := NewEnv()

	if _, err := Exec(t.Context(), "sq(y) = y ^ 2\nv = [1 (-2) 0.5]\nw = v * 2.0", "test", env); err != nil {
		t.Fatal(err)
	}

	env.Set("hi", Float(math.Inf(1)))
	env.Set("lo", Float(math.Inf(-1)))
	env.Set("nan", Float(math.NaN()))
	env.Set("whole", Float(2))
	env.Set("neg", Int(-7))

	var buf bytes.Buffer
	if err := env.Program("test").Format(t.Context(), &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	want := "sq(y) = y ^ 2\n" +
		"v = [1 (-2) 0.5]\n" +
		"w = [2.0 (-4.0) 1.0]\n" +
		"hi = inf\n" +
		"lo = -inf\n" +
		"nan = inf - inf\n" +
		"whole = 2.0\n" +
		"neg = -7\n"

	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}

	restored := NewEnv()
	if _, err := Exec(t.Context(), buf.String(), "restored", restored); err != nil {
		t.Fatalf("Exec(restored): %v", err)
	}

	if !slices.Equal(restored.Names(), env.Names()) {
		t.Fatalf("restored names = %q, want %q", restored.Names(), env.Names())
	}

	for name, v := range env.All() {
		r, _ := restored.Get(name)

		if r.Type() != v.Type() || r.String() != v.String() {
			t.Errorf("%s: restored %s %v, want %s %v", name, r.Type(), r, v.Type(), v)
		}
	}
}

func TestValueNode(t *testing.T) {
	fn := &Function{Param: "x", Body: Spanned{Node: Ident{Var: "x"}}}

	tests := []struct {
		v    Value
		want string
	}{
		{Int(3), "3"},
		{Float(0.5), "0.5"},
		{Float(3), "3.0"},
		{Float(math.Inf(1)), "inf"},
		{Float(math.Inf(-1)), "-inf"},
		{Float(math.NaN()), "inf - inf"},
		{Vector{}, "[]"},
		{Vector{Int(-1), Int(-2)}, "[-1 (-2)]"},
		{fn, "x"},
	}

	for _, tt := range tests {
		if got := ValueNode(tt.v).String(); got != tt.want {
			t.Errorf("ValueNode(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
