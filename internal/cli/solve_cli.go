package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/at-ishikawa/vietta/internal/console"
	"github.com/at-ishikawa/vietta/internal/quadratic"
)

// SolveCLI reads one equation from the user, solves it and prints the roots
type SolveCLI struct {
	reader  *CoefficientReader
	solver  *quadratic.Solver
	printer *console.Printer
}

func NewSolveCLI(reader *CoefficientReader, solver *quadratic.Solver, printer *console.Printer) *SolveCLI {
	return &SolveCLI{
		reader:  reader,
		solver:  solver,
		printer: printer,
	}
}

type readResult struct {
	equation quadratic.Equation
	err      error
}

// Run returns nil when the user leaves with "exit" or ctx is canceled while waiting for input
func (cli *SolveCLI) Run(ctx context.Context) error {
	// Reading stdin blocks, so it runs apart from the cancellation of ctx
	resultCh := make(chan readResult, 1)
	go func() {
		var result readResult
		result.err = cli.reader.Read(ctx, &result.equation)
		resultCh <- result
	}()

	var equation quadratic.Equation
	select {
	case <-ctx.Done():
		cli.printInterrupted()
		return nil
	case result := <-resultCh:
		if err := result.err; err != nil {
			if ctx.Err() != nil {
				cli.printInterrupted()
				return nil
			}
			if errors.Is(err, ErrUserExit) {
				cli.printer.Println(console.Info, "Stop using Vietta")
				return nil
			}
			if errors.Is(err, ErrTooManyAttempts) {
				cli.printer.Println(console.Error, "Too many invalid inputs, giving up")
			}
			return fmt.Errorf("reader.Read() > %w", err)
		}
		equation = result.equation
	}

	if err := cli.solver.Solve(&equation); err != nil {
		switch {
		case errors.Is(err, quadratic.ErrInvalidCoefficients):
			cli.printer.Println(console.Error, "Your input was invalid, unable to solve equation :(")
		default:
			cli.printer.Println(console.Error, "Caught unexpected error while solving")
		}
		return fmt.Errorf("solver.Solve() > %w", err)
	}

	PrintResult(cli.printer, equation)
	return nil
}

func (cli *SolveCLI) printInterrupted() {
	cli.printer.Println(console.Info, "\nReceived interrupt signal, stop using Vietta")
}
