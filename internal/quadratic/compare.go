package quadratic

import "math"

// DefaultEpsilon is the tolerance used when comparing with zero
const DefaultEpsilon = 1e-9

// Comparison is the result of comparing a value with zero
type Comparison int

const (
	Less Comparison = iota - 1
	Equal
	Greater
)

// IsZero reports whether |x| <= epsilon
func IsZero(x, epsilon float64) bool {
	return math.Abs(x) <= epsilon
}

// CompareWithZero compares x with zero within epsilon
func CompareWithZero(x, epsilon float64) Comparison {
	if IsZero(x, epsilon) {
		return Equal
	}
	if x > 0 {
		return Greater
	}
	return Less
}

// AlmostEqual reports whether x and y differ by at most epsilon
func AlmostEqual(x, y, epsilon float64) bool {
	return IsZero(x-y, epsilon)
}
