package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/at-ishikawa/vietta/internal/config"
	"github.com/at-ishikawa/vietta/internal/console"
	"github.com/at-ishikawa/vietta/internal/mode"
	"github.com/spf13/cobra"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCommand := newRootCommand(os.Stdin, os.Stdout)
	err := rootCommand.ExecuteContext(ctx)
	if err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
	}
	cancel()
	os.Exit(exitCode(err))
}

func newRootCommand(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var cfg *config.Config

	return &cobra.Command{
		Use:   "vietta [-h|--help|-s|--solve|-t|--test]",
		Short: "Solve quadratic equations ax^2 + bx + c == 0",
		// The mode registry matches flags itself
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The flag count is checked before a config file can fail to load
			if len(args) > 1 {
				printUsageError(console.NewPrinter(stdout, console.ModeAuto), mode.ErrArgumentCount)
				return fmt.Errorf("%w: got %d", mode.ErrArgumentCount, len(args))
			}

			loaded, err := loadConfig()
			if err != nil {
				return err
			}
			cfg = loaded
			setupLogger(cfg.Log.Debug)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := console.NewPrinter(stdout, console.Mode(cfg.Output.Color))
			registry := newModeRegistry(cfg, stdin, printer)

			err := registry.Dispatch(cmd.Context(), args)
			if errors.Is(err, mode.ErrArgumentCount) || errors.Is(err, mode.ErrUnknownFlag) {
				printUsageError(printer, err)
			}
			return err
		},
	}
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func printUsageError(printer *console.Printer, err error) {
	var unknownFlagErr *mode.UnknownFlagError
	if errors.As(err, &unknownFlagErr) {
		printer.Printf(console.Error, "Unknown flag '%s'\n", unknownFlagErr.Flag)
	} else {
		printer.Println(console.Error, "Unexpected amount of flags, you can use only 0 or 1")
	}
	printer.Printf(console.Plain, "Use flag ")
	printer.Println(console.Flag, "'--help'")
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitCodeSuccess
	case errors.Is(err, mode.ErrArgumentCount), errors.Is(err, mode.ErrUnknownFlag):
		return exitCodeUsage
	default:
		return exitCodeFailure
	}
}
