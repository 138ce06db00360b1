package oracle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/vietta/internal/quadratic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReport() Report {
	return Report{
		RunID: "c2d7a1b4-0000-4000-8000-000000000000",
		Results: []Result{
			{
				Case:    Case{Line: 1, Expected: quadratic.Equation{A: 2, B: -12, C: 13.5, X1: 4.5, X2: 1.5, Count: quadratic.TwoRoots}},
				Actual:  quadratic.Equation{A: 2, B: -12, C: 13.5, X1: 1.5, X2: 4.5, Count: quadratic.TwoRoots},
				Verdict: Pass,
			},
			{
				Case:    Case{Line: 3, Expected: quadratic.Equation{Count: quadratic.NoRoots}},
				Actual:  quadratic.Equation{Count: quadratic.InfiniteRoots},
				Verdict: WrongRootCount,
			},
		},
		Total:  2,
		Errors: 1,
	}
}

func TestExportReport(t *testing.T) {
	tests := []struct {
		name         string
		outputPath   string
		templatePath func(t *testing.T) string
		wantErr      string
		wantContains []string
	}{
		{
			name:       "markdown with embedded template",
			outputPath: filepath.Join("reports", "report.md"),
			wantContains: []string{
				"- Run: `c2d7a1b4-0000-4000-8000-000000000000`",
				"- Tests file: `tests.txt`",
				"- Passed: 1",
				"| 1 | 2x^2 + -12x + 13.5 | 4.5, 1.5 | 1.5, 4.5 | pass |",
				"| 3 | 0x^2 + 0x + 0 | no roots | infinitely many | wrong root count |",
			},
		},
		{
			name:       "markdown with custom template",
			outputPath: "custom.md",
			templatePath: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				require.NoError(t, os.WriteFile(path, []byte("{{ .Errors }}/{{ .Total }}"), 0644))
				return path
			},
			wantContains: []string{"1/2"},
		},
		{
			name:       "pdf",
			outputPath: "report.pdf",
		},
		{
			name:       "unsupported extension",
			outputPath: "report.html",
			wantErr:    "unsupported report file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(t.TempDir(), tt.outputPath)
			templatePath := ""
			if tt.templatePath != nil {
				templatePath = tt.templatePath(t)
			}

			got, err := ExportReport(newTestReport(), "tests.txt", outputPath, templatePath)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			content, err := os.ReadFile(got)
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, string(content), want)
			}
		})
	}
}
