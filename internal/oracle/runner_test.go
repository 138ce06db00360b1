package oracle

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/at-ishikawa/vietta/internal/console"
	"github.com/at-ishikawa/vietta/internal/quadratic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name     string
		expected quadratic.Equation
		want     Verdict
	}{
		{
			name:     "two roots in file order",
			expected: quadratic.Equation{A: 2, B: -12, C: 13.5, X1: 1.5, X2: 4.5, Count: quadratic.TwoRoots},
			want:     Pass,
		},
		{
			name:     "two roots in reverse order",
			expected: quadratic.Equation{A: 1, B: -19.96, C: -105.462, X1: 24.3, X2: -4.34, Count: quadratic.TwoRoots},
			want:     Pass,
		},
		{
			name:     "rounded root within tolerance",
			expected: quadratic.Equation{A: 3, B: 5, C: 2, X1: -1, X2: -0.6666667, Count: quadratic.TwoRoots},
			want:     Pass,
		},
		{
			name:     "one root compares x1 only",
			expected: quadratic.Equation{A: 1, B: 2, C: 1, X1: -1, X2: 100, Count: quadratic.OneRoot},
			want:     Pass,
		},
		{
			name:     "no roots ignores values",
			expected: quadratic.Equation{A: 0.5, B: 0.5, C: 0.5, X1: 7, X2: 8, Count: quadratic.NoRoots},
			want:     Pass,
		},
		{
			name:     "infinite roots",
			expected: quadratic.Equation{Count: quadratic.InfiniteRoots},
			want:     Pass,
		},
		{
			name:     "wrong count",
			expected: quadratic.Equation{A: 1, B: 2, C: 1, X1: -1, X2: -1, Count: quadratic.TwoRoots},
			want:     WrongRootCount,
		},
		{
			name:     "wrong roots",
			expected: quadratic.Equation{A: 2, B: -12, C: 13.5, X1: 1.5, X2: 4.4, Count: quadratic.TwoRoots},
			want:     WrongRoots,
		},
		{
			name:     "wrong single root",
			expected: quadratic.Equation{A: 0, B: 2, C: -3, X1: 2, Count: quadratic.OneRoot},
			want:     WrongRoots,
		},
		{
			name:     "solver error",
			expected: quadratic.Equation{A: math.Inf(1), B: 1, C: 1, Count: quadratic.NoRoots},
			want:     UnexpectedSolverError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(quadratic.NewSolver(), DefaultTolerance)
			report := runner.Run([]Case{{Line: 1, Expected: tt.expected}})

			require.Len(t, report.Results, 1)
			assert.Equal(t, tt.want, report.Results[0].Verdict)
			assert.Equal(t, 1, report.Total)
			if tt.want == Pass {
				assert.Equal(t, 0, report.Errors)
			} else {
				assert.Equal(t, 1, report.Errors)
			}
			if tt.want == UnexpectedSolverError {
				assert.ErrorIs(t, report.Results[0].Err, quadratic.ErrInvalidCoefficients)
			}
		})
	}
}

func TestRunner_Run_Totals(t *testing.T) {
	cases, err := ParseCases(strings.NewReader(`1 2 1 -1 -1 1
0.5 0.5 0.5 0 0 0
3 5 2 -1 -0.66666666667 2
2 -12 13.5 1.5 4.5 2
0 0 0 0 0 -2
1 -19.96 -105.462 24.3 -4.34 2
1 -19.96 -105.462 -4.34 24.3 2
1 0 -1 1 1 1
`))
	require.NoError(t, err)

	report := NewRunner(quadratic.NewSolver(), 0).Run(cases)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 8, report.Total)
	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, 7, report.Passed())
	assert.Equal(t, WrongRootCount, report.Results[7].Verdict)
}

func TestPrintReport(t *testing.T) {
	report := Report{
		Results: []Result{
			{
				Case:    Case{Line: 1, Expected: quadratic.Equation{A: 1, B: 2, C: 1, X1: -1, X2: -1, Count: quadratic.OneRoot}},
				Actual:  quadratic.Equation{A: 1, B: 2, C: 1, X1: -1, X2: -1, Count: quadratic.OneRoot},
				Verdict: Pass,
			},
			{
				Case:    Case{Line: 2, Expected: quadratic.Equation{A: 1, B: 2, C: 1, Count: quadratic.NoRoots}},
				Actual:  quadratic.Equation{A: 1, B: 2, C: 1, X1: -1, X2: -1, Count: quadratic.OneRoot},
				Verdict: WrongRootCount,
			},
			{
				Case:    Case{Line: 3, Expected: quadratic.Equation{A: 2, B: -12, C: 13.5, X1: 1.5, X2: 4.4, Count: quadratic.TwoRoots}},
				Actual:  quadratic.Equation{A: 2, B: -12, C: 13.5, X1: 1.5, X2: 4.5, Count: quadratic.TwoRoots},
				Verdict: WrongRoots,
			},
		},
		Total:  3,
		Errors: 2,
	}

	var output bytes.Buffer
	PrintReport(console.NewPrinter(&output, console.ModeNever), report)

	got := output.String()
	for _, want := range []string{
		"For equation 1x^2 + 2x + 1 (line 1):\nTest went successfully\n" + separator,
		"Got different amount of roots\nExpected: 0, actual: 1\n",
		"Got different roots\nExpected: x1 = 1.5, x2 = 4.4,\nActual: x1 = 1.5, x2 = 4.5\n",
		"All tests have been carried out\nTotal: 3, Errors: 2\n",
	} {
		assert.Contains(t, got, want)
	}
}
