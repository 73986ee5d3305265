package lang

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/ardnew/vcalc/log"
)

// Interpret evaluates expr against env.
//
// Assignments and function definitions modify env. A function call runs in
// a fresh environment that holds only the function itself and its argument.
func Interpret(
	ctx context.Context,
	expr Spanned,
	label string,
	env *Env,
	opts ...Option,
) (Value, error) {
	cfg := makeConfig(opts...)

	if env == nil {
		env = NewEnv()
	}

	in := &interpreter{label: label, logger: cfg.logger}

	v, err := in.eval(ctx, expr, env)
	if err != nil {
		in.logger.TraceContext(ctx, "evaluation failed", slog.Any("error", err))

		return nil, err
	}

	in.logger.TraceContext(ctx, "evaluation complete",
		slog.String("type", v.Type().String()),
		slog.Int("calls", in.calls))

	return v, nil
}

// interpreter holds the state of one evaluation.
type interpreter struct {
	label  string
	logger log.Logger
	depth  int
	calls  int
}

func (in *interpreter) eval(ctx context.Context, s Spanned, env *Env) (Value, error) {
	switch n := s.Node.(type) {
	case IntLit:
		return Int(n.Value), nil

	case FloatLit:
		return Float(n.Value), nil

	case InfLit:
		return Float(math.Inf(1)), nil

	case PiLit:
		return Float(math.Pi), nil

	case Ident:
		v, ok := env.Get(n.Var)
		if !ok {
			return nil, errVariable(n.Var, s.Pos, in.label)
		}

		return v, nil

	case VectorLit:
		return in.vector(ctx, n, env)

	case Set:
		return in.set(ctx, n, env)

	case Call:
		return in.call(ctx, s, n, env)

	case Binary:
		return in.binary(ctx, s, n, env)

	case Unary:
		v, err := in.eval(ctx, n.Operand, env)
		if err != nil {
			return nil, err
		}

		r, err := unary(n.Op.Kind, v)
		if err == nil {
			return r, nil
		}

		if errors.Is(err, errNoRule) {
			return nil, errNotImplemented("unary operator "+n.Op.String(), s.Pos, in.label)
		}

		return nil, errUnaryOperation(n.Op.String(), v, s.Pos, in.label)

	case nil:
		return nil, errNotImplemented("empty expression", s.Pos, in.label)
	}

	return nil, errNotImplemented(s.Node.Name(), s.Pos, in.label)
}

// vector evaluates a vector literal. Its items must be scalars, even though
// the operators accept nested vectors.
func (in *interpreter) vector(ctx context.Context, n VectorLit, env *Env) (Value, error) {
	out := make(Vector, len(n.Items))

	for i, item := range n.Items {
		v, err := in.eval(ctx, item, env)
		if err != nil {
			return nil, err
		}

		if !isScalar(v) {
			return nil, errIllegalValue(v, Type{Kind: TypeVector}, item.Pos, in.label)
		}

		out[i] = v
	}

	return out, nil
}

// set binds a variable, or defines a function for the pattern f(x) = body.
// A function body is stored unevaluated.
func (in *interpreter) set(ctx context.Context, n Set, env *Env) (Value, error) {
	switch target := n.Target.Node.(type) {
	case Ident:
		v, err := in.eval(ctx, n.Value, env)
		if err != nil {
			return nil, err
		}

		env.Set(target.Var, v)

		return v, nil

	case Call:
		name, ok := target.Callee.Node.(Ident)
		if !ok {
			return nil, errExpectNode("variable", target.Callee, in.label)
		}

		param, ok := target.Arg.Node.(Ident)
		if !ok {
			return nil, errExpectNode("variable", target.Arg, in.label)
		}

		fn := &Function{Param: param.Var, Body: n.Value}
		env.Set(name.Var, fn)

		in.logger.TraceContext(ctx, "function defined",
			slog.String("name", name.Var),
			slog.String("param", param.Var))

		return fn, nil
	}

	return nil, errExpectNode("variable or call pattern", n.Target, in.label)
}

// call applies a function to its argument. An unbound callee name falls
// back to the builtin of that name.
func (in *interpreter) call(ctx context.Context, s Spanned, n Call, env *Env) (Value, error) {
	arg, err := in.eval(ctx, n.Arg, env)
	if err != nil {
		return nil, err
	}

	var (
		name   string
		callee Value
	)

	if id, ok := n.Callee.Node.(Ident); ok {
		name = id.Var

		v, bound := env.Get(name)
		if !bound {
			if b, ok := LookupBuiltin(name); ok {
				return in.builtin(ctx, b, arg, s.Pos)
			}

			return nil, errVariable(name, n.Callee.Pos, in.label)
		}

		callee = v
	} else {
		callee, err = in.eval(ctx, n.Callee, env)
		if err != nil {
			return nil, err
		}
	}

	fn, ok := callee.(*Function)
	if !ok {
		return nil, errIllegalValue(callee, Type{Kind: TypeFunction}, n.Callee.Pos, in.label)
	}

	frame := NewEnv()
	if name != "" {
		frame.Set(name, fn)
	}

	frame.Set(fn.Param, arg)

	in.calls++
	in.depth++
	defer func() { in.depth-- }()

	in.logger.TraceContext(ctx, "call",
		slog.String("function", name),
		slog.Int("depth", in.depth))

	return in.eval(ctx, fn.Body, frame)
}

func (in *interpreter) builtin(ctx context.Context, b Builtin, arg Value, pos Position) (Value, error) {
	in.calls++

	v, err := b.apply(arg)
	if err != nil {
		in.logger.TraceContext(ctx, "builtin failed",
			builtinAttrs(b), slog.String("error", err.Error()))

		return nil, errUnaryOperation("'"+b.Name+"'", arg, pos, in.label).
			Wrap(err).With(builtinAttrs(b))
	}

	return v, nil
}

// binary evaluates both operands, left first, and dispatches on their types.
func (in *interpreter) binary(ctx context.Context, s Spanned, n Binary, env *Env) (Value, error) {
	l, err := in.eval(ctx, n.Left, env)
	if err != nil {
		return nil, err
	}

	r, err := in.eval(ctx, n.Right, env)
	if err != nil {
		return nil, err
	}

	v, err := binary(n.Op.Kind, l, r)
	if err == nil {
		return v, nil
	}

	if errors.Is(err, errNoRule) {
		return nil, errNotImplemented("binary operator "+n.Op.String(), s.Pos, in.label)
	}

	if n.Op.Kind == KindHash {
		vec, isVec := l.(Vector)
		i, isInt := r.(Int)

		if isVec && isInt {
			return nil, errIndex(int64(len(vec))-1, int64(i), s.Pos, in.label)
		}
	}

	return nil, errBinaryOperation(n.Op, l, r, s.Pos, in.label)
}
