// Package mathlib provides basic arithmetic on 32-bit signed integers.
//
// Every function is pure and safe for concurrent use. Overflow wraps around
// using two's-complement arithmetic, as Go defines for signed integers; no
// function checks for it or reports it.
package mathlib

// DivByZero is the value Divide returns when the divisor is zero.
const DivByZero int32 = 0

// Add returns the sum of two integers.
func Add(a, b int32) int32 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int32) int32 {
	return a - b
}

// Multiply returns the product of two integers.
func Multiply(a, b int32) int32 {
	return a * b
}

// Divide returns the quotient a / b truncated toward zero.
//
// A zero divisor does not panic; Divide returns DivByZero instead. Dividing
// math.MinInt32 by -1 wraps and yields math.MinInt32.
func Divide(a, b int32) int32 {
	if b == 0 {
		return DivByZero
	}
	return a / b
}

// Abs returns the absolute value of an integer.
// Abs(math.MinInt32) has no positive counterpart and returns math.MinInt32.
func Abs(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// Max returns the larger of two integers.
func Max(a, b int32) int32 {
	if b > a {
		return b
	}
	return a
}

// Min returns the smaller of two integers.
func Min(a, b int32) int32 {
	if b < a {
		return b
	}
	return a
}
