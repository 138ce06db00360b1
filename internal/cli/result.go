package cli

import (
	"github.com/at-ishikawa/vietta/internal/console"
	"github.com/at-ishikawa/vietta/internal/quadratic"
)

// PrintResult writes a human readable summary of a solved equation
func PrintResult(printer *console.Printer, eq quadratic.Equation) {
	printer.Printf(console.Plain, "Equation %s:\n", eq.String())

	switch eq.Count {
	case quadratic.NotSolved:
		printer.Println(console.Warning, "Not solved yet")
	case quadratic.NoRoots:
		printer.Println(console.Success, "Does not have real roots")
	case quadratic.OneRoot:
		printer.Printf(console.Success, "Has one root: x = %g\n", eq.X1)
	case quadratic.TwoRoots:
		printer.Printf(console.Success, "Has two roots: x1 = %g, x2 = %g\n", eq.X1, eq.X2)
	case quadratic.InfiniteRoots:
		printer.Println(console.Success, "Has infinitely many roots")
	default:
		printer.Println(console.Error, "Something went wrong while trying to print out result")
	}
}
