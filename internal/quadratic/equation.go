package quadratic

import (
	"fmt"
)

// RootCount classifies how many real roots an equation has
type RootCount int

const (
	NotSolved RootCount = iota
	NoRoots
	OneRoot
	TwoRoots
	InfiniteRoots
)

// Codes used by regression test files
const (
	codeInfiniteRoots = -2
	codeNotSolved     = -1
	codeNoRoots       = 0
	codeOneRoot       = 1
	codeTwoRoots      = 2
)

func (count RootCount) String() string {
	switch count {
	case NotSolved:
		return "NOT SOLVED"
	case NoRoots:
		return "0"
	case OneRoot:
		return "1"
	case TwoRoots:
		return "2"
	case InfiniteRoots:
		return "INF"
	default:
		return "ERROR"
	}
}

// Code returns the integer used for the count in regression test files
func (count RootCount) Code() int {
	switch count {
	case NoRoots:
		return codeNoRoots
	case OneRoot:
		return codeOneRoot
	case TwoRoots:
		return codeTwoRoots
	case InfiniteRoots:
		return codeInfiniteRoots
	default:
		return codeNotSolved
	}
}

// RootCountFromCode maps a regression test file code back to a RootCount.
// The not-solved code is rejected because an expectation must be a solved state.
func RootCountFromCode(code int) (RootCount, error) {
	switch code {
	case codeInfiniteRoots:
		return InfiniteRoots, nil
	case codeNoRoots:
		return NoRoots, nil
	case codeOneRoot:
		return OneRoot, nil
	case codeTwoRoots:
		return TwoRoots, nil
	case codeNotSolved:
		return NotSolved, fmt.Errorf("root count code %d means not solved", code)
	default:
		return NotSolved, fmt.Errorf("root count code %d is out of range [-2, 2]", code)
	}
}

// Equation is ax^2 + bx + c == 0 together with its solution.
// X1 and X2 are meaningful only when Count is OneRoot or TwoRoots.
type Equation struct {
	A, B, C float64

	X1, X2 float64
	Count  RootCount
}

// NewEquation returns a not solved equation with the given coefficients
func NewEquation(a, b, c float64) Equation {
	return Equation{A: a, B: b, C: c, Count: NotSolved}
}

func (eq Equation) String() string {
	return fmt.Sprintf("%gx^2 + %gx + %g", eq.A, eq.B, eq.C)
}

// Roots returns the roots the equation holds for its count
func (eq Equation) Roots() []float64 {
	switch eq.Count {
	case OneRoot:
		return []float64{eq.X1}
	case TwoRoots:
		return []float64{eq.X1, eq.X2}
	default:
		return nil
	}
}

func (eq *Equation) reset() {
	eq.X1 = 0
	eq.X2 = 0
	eq.Count = NotSolved
}
