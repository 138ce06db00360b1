package oracle

import (
	"log/slog"

	"github.com/at-ishikawa/vietta/internal/quadratic"
	"github.com/google/uuid"
)

// DefaultTolerance is the largest accepted difference between an expected and an actual root
const DefaultTolerance = 1e-6

type Verdict int

const (
	Pass Verdict = iota
	WrongRootCount
	WrongRoots
	UnexpectedSolverError
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case WrongRootCount:
		return "wrong root count"
	case WrongRoots:
		return "wrong roots"
	case UnexpectedSolverError:
		return "unexpected solver error"
	default:
		return "unknown"
	}
}

type Result struct {
	Case    Case
	Actual  quadratic.Equation
	Verdict Verdict
	Err     error
}

type Report struct {
	RunID   string
	Results []Result
	Total   int
	Errors  int
}

func (r Report) Passed() int {
	return r.Total - r.Errors
}

type Runner struct {
	solver    *quadratic.Solver
	tolerance float64
}

// NewRunner creates a runner. A non-positive tolerance falls back to DefaultTolerance.
func NewRunner(solver *quadratic.Solver, tolerance float64) *Runner {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Runner{
		solver:    solver,
		tolerance: tolerance,
	}
}

// Run solves every case again and compares the result with its expectation
func (runner *Runner) Run(cases []Case) Report {
	report := Report{
		RunID:   uuid.NewString(),
		Results: make([]Result, 0, len(cases)),
	}

	for _, c := range cases {
		result := runner.check(c)
		report.Results = append(report.Results, result)
		report.Total++
		if result.Verdict != Pass {
			report.Errors++
		}

		slog.Default().Debug("checked test case",
			slog.String("runID", report.RunID),
			slog.Int("line", c.Line),
			slog.String("equation", c.Expected.String()),
			slog.String("verdict", result.Verdict.String()),
		)
	}
	return report
}

func (runner *Runner) check(c Case) Result {
	actual := quadratic.NewEquation(c.Expected.A, c.Expected.B, c.Expected.C)
	err := runner.solver.Solve(&actual)
	result := Result{
		Case:   c,
		Actual: actual,
	}
	if err != nil {
		result.Verdict = UnexpectedSolverError
		result.Err = err
		return result
	}

	switch {
	case actual.Count != c.Expected.Count:
		result.Verdict = WrongRootCount
	case !runner.sameRoots(c.Expected, actual):
		result.Verdict = WrongRoots
	default:
		result.Verdict = Pass
	}
	return result
}

// sameRoots compares roots for the count both equations share.
// A pair of roots matches in either order.
func (runner *Runner) sameRoots(expected, actual quadratic.Equation) bool {
	eq := func(x, y float64) bool {
		return quadratic.AlmostEqual(x, y, runner.tolerance)
	}

	switch expected.Count {
	case quadratic.OneRoot:
		return eq(expected.X1, actual.X1)
	case quadratic.TwoRoots:
		if eq(expected.X1, actual.X1) && eq(expected.X2, actual.X2) {
			return true
		}
		return eq(expected.X1, actual.X2) && eq(expected.X2, actual.X1)
	default:
		return true
	}
}
