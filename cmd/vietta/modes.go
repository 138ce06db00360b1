package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/at-ishikawa/vietta/internal/cli"
	"github.com/at-ishikawa/vietta/internal/config"
	"github.com/at-ishikawa/vietta/internal/console"
	"github.com/at-ishikawa/vietta/internal/mode"
	"github.com/at-ishikawa/vietta/internal/oracle"
	"github.com/at-ishikawa/vietta/internal/quadratic"
)

func newModeRegistry(cfg *config.Config, stdin io.Reader, printer *console.Printer) *mode.Registry {
	solver := quadratic.NewSolver(
		quadratic.WithEpsilon(cfg.Solver.Epsilon),
		quadratic.WithNegativeZeroNormalization(cfg.Solver.NormalizeNegativeZero),
	)

	registry := mode.NewRegistry()
	registry.Register(mode.Mode{
		Short:       "-h",
		Long:        "--help",
		Description: "for help",
		Handler:     &helpHandler{printer: printer, registry: registry},
	})
	registry.Register(mode.Mode{
		Short:       "-s",
		Long:        "--solve",
		Description: "to type in and solve equation",
		Default:     true,
		Handler: &solveHandler{
			cli: cli.NewSolveCLI(
				cli.NewCoefficientReader(stdin, printer, cfg.Input.MaxAttempts),
				solver,
				printer,
			),
		},
	})
	registry.Register(mode.Mode{
		Short:       "-t",
		Long:        "--test",
		Description: "to run tests",
		Handler: &testHandler{
			printer:  printer,
			runner:   oracle.NewRunner(solver, cfg.Oracle.Tolerance),
			settings: cfg.Oracle,
		},
	})
	return registry
}

type helpHandler struct {
	printer  *console.Printer
	registry *mode.Registry
}

func (h *helpHandler) Handle(ctx context.Context) error {
	h.printer.Println(console.Plain, "Usage: vietta [flag]")
	h.printer.Printf(console.Plain, "%s", h.registry.Usage())
	h.printer.Printf(console.Flag, "''")
	h.printer.Printf(console.Plain, " is considered as ")
	for _, m := range h.registry.Modes() {
		if m.Default {
			h.printer.Printf(console.Flag, "'%s'", m.Long)
			break
		}
	}
	h.printer.Printf(console.Plain, "\n")
	return nil
}

type solveHandler struct {
	cli *cli.SolveCLI
}

func (h *solveHandler) Handle(ctx context.Context) error {
	return h.cli.Run(ctx)
}

type testHandler struct {
	printer  *console.Printer
	runner   *oracle.Runner
	settings config.OracleConfig
}

func (h *testHandler) Handle(ctx context.Context) error {
	cases, err := oracle.Load(h.settings.TestsFile)
	if err != nil {
		switch {
		case errors.Is(err, oracle.ErrTestsFileNotFound):
			h.printer.Printf(console.Error, "There is no file \"%s\"\n", h.settings.TestsFile)
		case errors.Is(err, oracle.ErrMalformedLine):
			h.printer.Printf(console.Error, "Tests file is invalid: %v\n", err)
		}
		return fmt.Errorf("oracle.Load() > %w", err)
	}

	report := h.runner.Run(cases)
	oracle.PrintReport(h.printer, report)

	if h.settings.ReportFile != "" {
		path, err := oracle.ExportReport(report, h.settings.TestsFile, h.settings.ReportFile, h.settings.ReportTemplate)
		if err != nil {
			return fmt.Errorf("oracle.ExportReport() > %w", err)
		}
		h.printer.Printf(console.Info, "Report was written to %s\n", path)
	}
	return nil
}
