package oracle

import (
	"github.com/at-ishikawa/vietta/internal/console"
	"github.com/at-ishikawa/vietta/internal/quadratic"
)

const separator = "------------------------"

// PrintReport writes every result followed by the totals
func PrintReport(printer *console.Printer, report Report) {
	for _, result := range report.Results {
		printResult(printer, result)
	}

	printer.Println(console.Warning, "All tests have been carried out")
	summary := console.Success
	if report.Errors > 0 {
		summary = console.Error
	}
	printer.Printf(summary, "Total: %d, Errors: %d\n", report.Total, report.Errors)
}

func printResult(printer *console.Printer, result Result) {
	expected := result.Case.Expected
	printer.Printf(console.Plain, "For equation %s (line %d):\n", expected.String(), result.Case.Line)

	switch result.Verdict {
	case Pass:
		printer.Println(console.Success, "Test went successfully")
	case UnexpectedSolverError:
		printer.Printf(console.Error, "Caught unexpected solving error: %v\n", result.Err)
	case WrongRootCount:
		printer.Println(console.Error, "Got different amount of roots")
		printer.Printf(console.Plain, "Expected: %s, actual: %s\n", expected.Count, result.Actual.Count)
	case WrongRoots:
		printer.Println(console.Error, "Got different roots")
		printDifferentRoots(printer, expected, result.Actual)
	default:
		printer.Println(console.Error, "Test returned unexpected verdict")
	}
	printer.Println(console.Plain, separator)
}

func printDifferentRoots(printer *console.Printer, expected, actual quadratic.Equation) {
	switch expected.Count {
	case quadratic.OneRoot:
		printer.Printf(console.Plain, "Expected: x = %g, actual: x = %g\n", expected.X1, actual.X1)
	case quadratic.TwoRoots:
		printer.Printf(console.Plain, "Expected: x1 = %g, x2 = %g,\nActual: x1 = %g, x2 = %g\n",
			expected.X1, expected.X2, actual.X1, actual.X2)
	}
}
