// Package quadratic solves ax^2 + bx + c == 0 including its linear and identity degenerations.
package quadratic

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

var (
	ErrInvalidCoefficients = errors.New("invalid coefficients")
	ErrSolving             = errors.New("solving error")
)

// Solver solves equations in place.
// Every comparison with zero uses its epsilon.
type Solver struct {
	epsilon               float64
	normalizeNegativeZero bool
}

type Option func(*Solver)

// WithEpsilon overrides DefaultEpsilon. Non-positive values are ignored.
func WithEpsilon(epsilon float64) Option {
	return func(s *Solver) {
		if epsilon > 0 {
			s.epsilon = epsilon
		}
	}
}

// WithNegativeZeroNormalization turns -0 roots into +0 when enabled
func WithNegativeZeroNormalization(enabled bool) Option {
	return func(s *Solver) {
		s.normalizeNegativeZero = enabled
	}
}

func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		epsilon:               DefaultEpsilon,
		normalizeNegativeZero: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve fills the roots and the count of eq.
// It panics when eq is nil.
func (s *Solver) Solve(eq *Equation) error {
	if eq == nil {
		panic("quadratic: Solve called with a nil equation")
	}
	eq.reset()

	coefficients := []struct {
		name  string
		value float64
	}{
		{"a", eq.A},
		{"b", eq.B},
		{"c", eq.C},
	}
	for _, coefficient := range coefficients {
		if math.IsNaN(coefficient.value) || math.IsInf(coefficient.value, 0) {
			return fmt.Errorf("%w: %s = %g", ErrInvalidCoefficients, coefficient.name, coefficient.value)
		}
	}

	var err error
	if IsZero(eq.A, s.epsilon) {
		err = s.solveLinear(eq)
	} else {
		err = s.solveQuadratic(eq)
	}
	if err != nil {
		eq.reset()
		return err
	}

	if s.normalizeNegativeZero {
		eq.X1 = normalizeZero(eq.X1)
		eq.X2 = normalizeZero(eq.X2)
	}
	slog.Default().Debug("solved equation",
		slog.String("equation", eq.String()),
		slog.String("roots", eq.Count.String()),
		slog.Float64("x1", eq.X1),
		slog.Float64("x2", eq.X2),
	)
	return nil
}

func (s *Solver) solveLinear(eq *Equation) error {
	if IsZero(eq.B, s.epsilon) {
		if IsZero(eq.C, s.epsilon) {
			eq.Count = InfiniteRoots
		} else {
			eq.Count = NoRoots
		}
		return nil
	}

	eq.Count = OneRoot
	eq.X1 = -eq.C / eq.B
	eq.X2 = eq.X1
	return checkRoots(eq)
}

// solveQuadratic compares the discriminant of the coefficients scaled by a
// power of two so that the largest one lies in [0.5, 1). The scaling is exact
// and keeps b^2 and 4ac from overflowing.
func (s *Solver) solveQuadratic(eq *Equation) error {
	a, b, c := scaleCoefficients(eq.A, eq.B, eq.C)
	discriminant := b*b - 4*a*c
	if math.IsNaN(discriminant) || math.IsInf(discriminant, 0) {
		return fmt.Errorf("%w: unexpected discriminant %g", ErrSolving, discriminant)
	}

	switch CompareWithZero(discriminant, s.epsilon) {
	case Greater:
		// q has the sign of -b, so -b and the root never cancel
		q := -(b + math.Copysign(math.Sqrt(discriminant), b)) / 2
		x1, x2 := q/a, c/q
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		eq.Count = TwoRoots
		eq.X1, eq.X2 = x1, x2
	case Equal:
		eq.Count = OneRoot
		eq.X1 = -b / (2 * a)
		eq.X2 = eq.X1
	case Less:
		eq.Count = NoRoots
		return nil
	default:
		return fmt.Errorf("%w: unexpected discriminant %g", ErrSolving, discriminant)
	}
	return checkRoots(eq)
}

func scaleCoefficients(a, b, c float64) (float64, float64, float64) {
	largest := math.Max(math.Abs(a), math.Max(math.Abs(b), math.Abs(c)))
	_, exp := math.Frexp(largest)
	return math.Ldexp(a, -exp), math.Ldexp(b, -exp), math.Ldexp(c, -exp)
}

// checkRoots rejects roots of finite coefficients that do not fit into a float64
func checkRoots(eq *Equation) error {
	for _, root := range eq.Roots() {
		if math.IsInf(root, 0) || math.IsNaN(root) {
			return fmt.Errorf("%w: root of %s is out of range", ErrSolving, eq.String())
		}
	}
	return nil
}

func normalizeZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}
