package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/at-ishikawa/vietta/internal/console"
	"github.com/at-ishikawa/vietta/internal/quadratic"
	"github.com/avast/retry-go"
)

const exitCommand = "exit"

var (
	// ErrUserExit is returned when the user leaves before all coefficients are given
	ErrUserExit        = errors.New("user exit")
	ErrTooManyAttempts = errors.New("too many invalid inputs")

	errInvalidInput = errors.New("invalid input")
)

// CoefficientReader asks the user for the coefficients of an equation.
// A field is read from a single line, which must hold exactly one number or "exit".
type CoefficientReader struct {
	stdinReader *bufio.Reader
	printer     *console.Printer
	maxAttempts uint
}

// NewCoefficientReader creates a reader. maxAttempts of 0 retries a field until it is valid.
func NewCoefficientReader(stdin io.Reader, printer *console.Printer, maxAttempts uint) *CoefficientReader {
	return &CoefficientReader{
		stdinReader: bufio.NewReader(stdin),
		printer:     printer,
		maxAttempts: maxAttempts,
	}
}

// Read fills the coefficients of eq and resets it to the not solved state
func (reader *CoefficientReader) Read(ctx context.Context, eq *quadratic.Equation) error {
	*eq = quadratic.NewEquation(0, 0, 0)

	reader.printer.Printf(console.Info, "(\"%s\" to leave)\n", exitCommand)
	reader.printer.Println(console.Plain, "Type in coefficients for equation ax^2 + bx + c == 0:")

	fields := []struct {
		name string
		dest *float64
	}{
		{"a", &eq.A},
		{"b", &eq.B},
		{"c", &eq.C},
	}
	for _, field := range fields {
		value, err := reader.readNumber(ctx, field.name)
		if err != nil {
			return err
		}
		*field.dest = value
	}
	return nil
}

func (reader *CoefficientReader) readNumber(ctx context.Context, name string) (float64, error) {
	attempts := reader.maxAttempts
	if attempts == 0 {
		attempts = math.MaxUint32
	}

	var value float64
	err := retry.Do(
		func() error {
			reader.printer.Printf(console.Plain, "%s = ", name)
			v, err := reader.readLine()
			if err != nil {
				return err
			}
			value = v
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, errInvalidInput)
		}),
		retry.OnRetry(func(n uint, err error) {
			reader.printer.Println(console.Error, "Invalid input")
		}),
	)
	if errors.Is(err, errInvalidInput) {
		return 0, fmt.Errorf("%w: %s was not given after %d attempts", ErrTooManyAttempts, name, attempts)
	}
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (reader *CoefficientReader) readLine() (float64, error) {
	line, err := reader.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("stdinReader.ReadString() > %w", err)
		}
		if strings.TrimSpace(line) == "" {
			return 0, fmt.Errorf("%w: end of input", ErrUserExit)
		}
	}

	token := strings.TrimSpace(line)
	if token == exitCommand {
		return 0, ErrUserExit
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		// Overflow is kept as an infinity so the solver can reject it
		if errors.Is(err, strconv.ErrRange) {
			return value, nil
		}
		return 0, fmt.Errorf("%w: %q", errInvalidInput, token)
	}
	return value, nil
}
