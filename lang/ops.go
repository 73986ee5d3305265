package lang

import (
	"errors"
	"math"
)

// Dispatch failures. The interpreter turns them into diagnostics.
var (
	errOperand = errors.New("operand types not supported")
	errNoRule  = errors.New("operator has no evaluation rule")
	errRange   = errors.New("index out of range")
)

func boolInt(b bool) Int {
	if b {
		return 1
	}

	return 0
}

// binary applies an infix operator to two values.
func binary(op Kind, l, r Value) (Value, error) {
	switch op {
	case KindAdd, KindSubtract, KindMultiply, KindDivide, KindPower, KindModulo:
		return arith(op, l, r)

	case KindEqual, KindNotEqual, KindLess, KindGreater, KindLessEqual,
		KindGreaterEqual:
		return compare(op, l, r)

	case KindIs:
		return boolInt(l.Type() == r.Type()), nil

	case KindHash:
		return index(l, r)
	}

	return nil, errNoRule
}

// arith applies an arithmetic operator. Int operands are promoted to Float
// when the other operand is a Float. A vector on the left is broadcast over a
// scalar, or zipped with another vector up to the shorter length.
func arith(op Kind, l, r Value) (Value, error) {
	switch l := l.(type) {
	case Int:
		switch r := r.(type) {
		case Int:
			return arithInt(op, l, r)
		case Float:
			return arithFloat(op, Float(l), r)
		}

	case Float:
		switch r := r.(type) {
		case Int:
			return arithFloat(op, l, Float(r))
		case Float:
			return arithFloat(op, l, r)
		}

	case Vector:
		switch r := r.(type) {
		case Int, Float:
			return mapVector(l, func(e Value) (Value, error) {
				return arith(op, e, r)
			})

		case Vector:
			n := min(len(l), len(r))
			out := make(Vector, n)

			for i := range n {
				v, err := arith(op, l[i], r[i])
				if err != nil {
					return nil, err
				}

				out[i] = v
			}

			return out, nil
		}
	}

	return nil, errOperand
}

func arithInt(op Kind, l, r Int) (Value, error) {
	switch op {
	case KindAdd:
		return l + r, nil
	case KindSubtract:
		return l - r, nil
	case KindMultiply:
		return l * r, nil
	case KindDivide:
		return Float(float64(l) / float64(r)), nil
	case KindModulo:
		if r == 0 {
			return nil, errOperand
		}

		return l % r, nil
	case KindPower:
		if r < 0 {
			return Float(math.Pow(float64(l), float64(r))), nil
		}

		return intPow(l, r), nil
	}

	return nil, errNoRule
}

func arithFloat(op Kind, l, r Float) (Value, error) {
	switch op {
	case KindAdd:
		return l + r, nil
	case KindSubtract:
		return l - r, nil
	case KindMultiply:
		return l * r, nil
	case KindDivide:
		if math.IsInf(float64(l), 1) && math.IsInf(float64(r), 1) {
			return Float(math.Inf(1)), nil
		}

		return l / r, nil
	case KindModulo:
		return Float(math.Mod(float64(l), float64(r))), nil
	case KindPower:
		return Float(math.Pow(float64(l), float64(r))), nil
	}

	return nil, errNoRule
}

// intPow computes b**e for e >= 0 by squaring. Overflow wraps.
func intPow(b, e Int) Int {
	result := Int(1)

	for e > 0 {
		if e&1 == 1 {
			result *= b
		}

		b *= b
		e >>= 1
	}

	return result
}

// compare applies a comparison operator, yielding Int 1 or 0.
//
// Vectors compare elementwise and stop at the first pair that fails. Only
// '=' and '!=' check lengths first; the ordering operators consider the
// common prefix.
func compare(op Kind, l, r Value) (Value, error) {
	if lv, ok := l.(Vector); ok {
		rv, ok := r.(Vector)
		if !ok {
			return nil, errOperand
		}

		return compareVector(op, lv, rv)
	}

	switch l := l.(type) {
	case Int:
		switch r := r.(type) {
		case Int:
			return compareOrdered(op, l, r)
		case Float:
			return compareOrdered(op, Float(l), r)
		}

	case Float:
		switch r := r.(type) {
		case Int:
			return compareOrdered(op, l, Float(r))
		case Float:
			return compareOrdered(op, l, r)
		}
	}

	return nil, errOperand
}

func compareVector(op Kind, l, r Vector) (Value, error) {
	elem := op

	switch op {
	case KindEqual:
		if len(l) != len(r) {
			return Int(0), nil
		}
	case KindNotEqual:
		if len(l) != len(r) {
			return Int(1), nil
		}

		elem = KindEqual
	}

	for i := range min(len(l), len(r)) {
		v, err := compare(elem, l[i], r[i])
		if err != nil {
			return nil, err
		}

		if v == Int(0) {
			return boolInt(op == KindNotEqual), nil
		}
	}

	return boolInt(op != KindNotEqual), nil
}

func compareOrdered[T Int | Float](op Kind, l, r T) (Value, error) {
	switch op {
	case KindEqual:
		return boolInt(l == r), nil
	case KindNotEqual:
		return boolInt(l != r), nil
	case KindLess:
		return boolInt(l < r), nil
	case KindGreater:
		return boolInt(l > r), nil
	case KindLessEqual:
		return boolInt(l <= r), nil
	case KindGreaterEqual:
		return boolInt(l >= r), nil
	}

	return nil, errNoRule
}

// index returns the element of a vector at a 0-based position.
func index(l, r Value) (Value, error) {
	v, ok := l.(Vector)
	if !ok {
		return nil, errOperand
	}

	i, ok := r.(Int)
	if !ok {
		return nil, errOperand
	}

	if i < 0 || int64(i) >= int64(len(v)) {
		return nil, errRange
	}

	return v[i], nil
}

// unary applies a prefix operator.
func unary(op Kind, v Value) (Value, error) {
	if op != KindSubtract {
		return nil, errNoRule
	}

	switch v := v.(type) {
	case Int:
		return -v, nil
	case Float:
		return -v, nil
	case Vector:
		return mapVector(v, func(e Value) (Value, error) {
			return unary(op, e)
		})
	}

	return nil, errOperand
}

func mapVector(v Vector, fn func(Value) (Value, error)) (Vector, error) {
	out := make(Vector, len(v))

	for i, e := range v {
		r, err := fn(e)
		if err != nil {
			return nil, err
		}

		out[i] = r
	}

	return out, nil
}
