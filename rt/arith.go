package rt

import "math"

// ---------------------------------------------------------------------------
// Arithmetic Dispatcher
// ---------------------------------------------------------------------------
//
// All four operations share one dispatch order. Two Integer operands stay in
// native integer arithmetic. Otherwise a single Float operand is enough to
// move the operation to doubles, with the other side's payload widened
// numerically. Every remaining pairing yields the null sentinel: no error is
// signaled, no panic raised, and null itself is never a valid operand, so
// failures propagate silently through further arithmetic.

// Add returns left + right. Integer addition wraps on overflow.
func Add(left, right Value) Value {
	if left.kind == KindInteger && right.kind == KindInteger {
		return FromInt64(left.payload + right.payload)
	}
	if left.kind == KindFloat || right.kind == KindFloat {
		return FromFloat64(asDouble(left) + asDouble(right))
	}
	return Null()
}

// Subtract returns left - right. Integer subtraction wraps on overflow.
func Subtract(left, right Value) Value {
	if left.kind == KindInteger && right.kind == KindInteger {
		return FromInt64(left.payload - right.payload)
	}
	if left.kind == KindFloat || right.kind == KindFloat {
		return FromFloat64(asDouble(left) - asDouble(right))
	}
	return Null()
}

// Multiply returns left * right. Integer multiplication wraps on overflow.
func Multiply(left, right Value) Value {
	if left.kind == KindInteger && right.kind == KindInteger {
		return FromInt64(left.payload * right.payload)
	}
	if left.kind == KindFloat || right.kind == KindFloat {
		return FromFloat64(asDouble(left) * asDouble(right))
	}
	return Null()
}

// Divide returns left / right. A zero divisor (integer zero on the integer
// path, double 0.0 of either sign on the float path) yields null instead of
// a fault or an infinity. Integer division truncates toward zero.
func Divide(left, right Value) Value {
	if left.kind == KindInteger && right.kind == KindInteger {
		if right.payload == 0 {
			return Null()
		}
		return FromInt64(left.payload / right.payload)
	}
	if left.kind == KindFloat || right.kind == KindFloat {
		rv := asDouble(right)
		if rv == 0.0 {
			return Null()
		}
		return FromFloat64(asDouble(left) / rv)
	}
	return Null()
}

// asDouble coerces an operand for the float path: a Float payload is its
// bit pattern reinterpreted, any other payload widens numerically.
func asDouble(v Value) float64 {
	if v.kind == KindFloat {
		return math.Float64frombits(uint64(v.payload))
	}
	return float64(v.payload)
}
