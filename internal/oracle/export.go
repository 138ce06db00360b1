package oracle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/at-ishikawa/vietta/internal/assets"
	"github.com/at-ishikawa/vietta/internal/pdf"
	"github.com/at-ishikawa/vietta/internal/quadratic"
)

type reportView struct {
	RunID     string
	TestsFile string
	Total     int
	Passed    int
	Errors    int
	Rows      []reportRow
}

type reportRow struct {
	Line     int
	Equation string
	Expected []string
	Actual   []string
	Verdict  string
}

// ExportReport renders report as Markdown into outputPath. A .pdf outputPath is
// rendered as a PDF instead. The template at templatePath overrides the embedded one.
func ExportReport(report Report, testsFile, outputPath, templatePath string) (string, error) {
	tmpl, err := assets.ParseReportTemplate(templatePath)
	if err != nil {
		return "", fmt.Errorf("assets.ParseReportTemplate() > %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newReportView(report, testsFile)); err != nil {
		return "", fmt.Errorf("tmpl.Execute() > %w", err)
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".pdf":
		path, err := pdf.WriteMarkdownAsPDF(buf.Bytes(), outputPath)
		if err != nil {
			return "", fmt.Errorf("pdf.WriteMarkdownAsPDF() > %w", err)
		}
		return path, nil
	case ".md":
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", outputPath, err)
		}
		return outputPath, nil
	default:
		return "", fmt.Errorf("unsupported report file extension: %s", outputPath)
	}
}

func newReportView(report Report, testsFile string) reportView {
	view := reportView{
		RunID:     report.RunID,
		TestsFile: testsFile,
		Total:     report.Total,
		Passed:    report.Passed(),
		Errors:    report.Errors,
		Rows:      make([]reportRow, 0, len(report.Results)),
	}
	for _, result := range report.Results {
		verdict := result.Verdict.String()
		if result.Err != nil {
			verdict = fmt.Sprintf("%s: %v", verdict, result.Err)
		}
		view.Rows = append(view.Rows, reportRow{
			Line:     result.Case.Line,
			Equation: result.Case.Expected.String(),
			Expected: formatRoots(result.Case.Expected),
			Actual:   formatRoots(result.Actual),
			Verdict:  verdict,
		})
	}
	return view
}

func formatRoots(eq quadratic.Equation) []string {
	switch eq.Count {
	case quadratic.NoRoots:
		return []string{"no roots"}
	case quadratic.InfiniteRoots:
		return []string{"infinitely many"}
	case quadratic.NotSolved:
		return []string{"not solved"}
	}

	roots := eq.Roots()
	formatted := make([]string, 0, len(roots))
	for _, root := range roots {
		formatted = append(formatted, strconv.FormatFloat(root, 'g', -1, 64))
	}
	return formatted
}
