package lang

import (
	"iter"
	"math"
	"slices"
)

// Env is an insertion-ordered set of variable bindings.
//
// An Env is owned by a single evaluation at a time and is not safe for
// concurrent use.
type Env struct {
	names  []string
	values []Value
	index  map[string]int
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{index: make(map[string]int)}
}

// Get returns the value bound to name.
func (e *Env) Get(name string) (Value, bool) {
	if e == nil {
		return nil, false
	}

	i, ok := e.index[name]
	if !ok {
		return nil, false
	}

	return e.values[i], true
}

// Set binds name to v, replacing an existing binding in place.
func (e *Env) Set(name string, v Value) {
	if e.index == nil {
		e.index = make(map[string]int)
	}

	if i, ok := e.index[name]; ok {
		e.values[i] = v

		return
	}

	e.index[name] = len(e.names)
	e.names = append(e.names, name)
	e.values = append(e.values, v)
}

// Len returns the number of bindings.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}

	return len(e.names)
}

// Names returns the bound names in insertion order.
func (e *Env) Names() []string {
	if e == nil {
		return nil
	}

	return slices.Clone(e.names)
}

// All returns an iterator over the bindings in insertion order.
func (e *Env) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i := range e.Len() {
			if !yield(e.names[i], e.values[i]) {
				return
			}
		}
	}
}

// Program returns a program that recreates the bindings of e, in order,
// when executed against an empty environment.
func (e *Env) Program(label string) *Program {
	prog := &Program{Label: label}

	for name, v := range e.All() {
		prog.Statements = append(prog.Statements, Spanned{Node: bindingNode(name, v)})
	}

	return prog
}

func bindingNode(name string, v Value) Node {
	if fn, ok := v.(*Function); ok {
		return Set{
			Target: Spanned{Node: Call{
				Callee: Spanned{Node: Ident{Var: name}},
				Arg:    Spanned{Node: Ident{Var: fn.Param}},
			}},
			Value: fn.Body,
		}
	}

	return Set{
		Target: Spanned{Node: Ident{Var: name}},
		Value:  Spanned{Node: ValueNode(v)},
	}
}

// ValueNode returns an expression that evaluates to v. A function has no
// literal form and yields its body.
func ValueNode(v Value) Node {
	switch v := v.(type) {
	case Int:
		return IntLit{Value: int64(v)}

	case Float:
		f := float64(v)

		switch {
		case math.IsInf(f, 1):
			return InfLit{}
		case math.IsInf(f, -1):
			return Unary{Op: Tok(KindSubtract), Operand: Spanned{Node: InfLit{}}}
		case math.IsNaN(f):
			return Binary{
				Op:    Tok(KindSubtract),
				Left:  Spanned{Node: InfLit{}},
				Right: Spanned{Node: InfLit{}},
			}
		}

		return FloatLit{Value: f}

	case Vector:
		items := make([]Spanned, len(v))
		for i, e := range v {
			items[i] = Spanned{Node: ValueNode(e)}
		}

		return VectorLit{Items: items}

	case *Function:
		return v.Body.Node
	}

	return nil
}
