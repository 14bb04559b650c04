package ago

// Primitive operations over signed 64-bit integers and booleans.
// Overflow wraps with two's-complement semantics. Divide and Modulo are the
// only operations that can fault.

func Add(a, b int64) int64 {
	return a + b
}

func Subtract(a, b int64) int64 {
	return a - b
}

func Multiply(a, b int64) int64 {
	return a * b
}

// Divide truncates toward zero. A zero divisor is an ArithmeticFault.
// MinInt64 / -1 wraps to MinInt64.
func Divide(a, b int64) int64 {
	if b == 0 {
		Fail(ArithmeticFault, "division by zero")
	}
	return a / b
}

// Modulo has the sign of the dividend, so that
// Divide(a, b)*b + Modulo(a, b) == a. A zero divisor is an ArithmeticFault.
func Modulo(a, b int64) int64 {
	if b == 0 {
		Fail(ArithmeticFault, "modulo by zero")
	}
	return a % b
}

// Negate is unary minus; -MinInt64 wraps to MinInt64
func Negate(a int64) int64 {
	return -a
}

func BitAnd(a, b int64) int64 {
	return a & b
}

func BitOr(a, b int64) int64 {
	return a | b
}

func BitXor(a, b int64) int64 {
	return a ^ b
}

func Equal(a, b int64) bool {
	return a == b
}

func NotEqual(a, b int64) bool {
	return a != b
}

func LessThan(a, b int64) bool {
	return a < b
}

func GreaterThan(a, b int64) bool {
	return a > b
}

func LessEqual(a, b int64) bool {
	return a <= b
}

func GreaterEqual(a, b int64) bool {
	return a >= b
}

func And(a, b bool) bool {
	return a && b
}

func Or(a, b bool) bool {
	return a || b
}

func Not(a bool) bool {
	return !a
}
