// Package oracle checks the solver against expected results stored in a tests file.
package oracle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/at-ishikawa/vietta/internal/quadratic"
	"gopkg.in/yaml.v3"
)

const fieldsPerLine = 6

var (
	ErrTestsFileNotFound = errors.New("tests file not found")
	ErrMalformedLine     = errors.New("malformed test line")
)

// ParseError reports the first line of a tests file that could not be parsed
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedLine
}

// Case is one expectation of a tests file
type Case struct {
	Line     int
	Expected quadratic.Equation
}

// yamlCase is a record of the YAML tests file format
type yamlCase struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	C     float64 `yaml:"c"`
	X1    float64 `yaml:"x1"`
	X2    float64 `yaml:"x2"`
	Roots *int    `yaml:"roots"`
}

// Load reads the cases of a tests file.
// Files with a .yml or .yaml extension hold a YAML list, others use the "a b c x1 x2 n" line format.
func Load(path string) ([]Case, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTestsFileNotFound, path)
		}
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return ParseYAMLCases(file)
	default:
		return ParseCases(file)
	}
}

// ParseCases parses the line format. Blank lines are skipped and any other
// malformed line fails the whole parse.
func ParseCases(r io.Reader) ([]Case, error) {
	var cases []Case

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c, err := parseLine(lineNumber, line)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan() > %w", err)
	}
	return cases, nil
}

func parseLine(lineNumber int, line string) (Case, error) {
	fields := strings.Fields(line)
	if len(fields) != fieldsPerLine {
		return Case{}, &ParseError{
			Line:   lineNumber,
			Reason: fmt.Sprintf("expected %d fields 'a b c x1 x2 n' but got %d", fieldsPerLine, len(fields)),
		}
	}

	names := []string{"a", "b", "c", "x1", "x2"}
	values := make([]float64, len(names))
	for i, name := range names {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Case{}, &ParseError{
				Line:   lineNumber,
				Reason: fmt.Sprintf("%s is not a number: %q", name, fields[i]),
			}
		}
		values[i] = value
	}

	code, err := strconv.Atoi(fields[5])
	if err != nil {
		return Case{}, &ParseError{
			Line:   lineNumber,
			Reason: fmt.Sprintf("roots number is not an integer: %q", fields[5]),
		}
	}

	return newCase(lineNumber, values[0], values[1], values[2], values[3], values[4], code)
}

// ParseYAMLCases parses a YAML list of {a, b, c, x1, x2, roots} records.
// The line of a case is the line its record starts at.
func ParseYAMLCases(r io.Reader) ([]Case, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll() > %w", err)
	}

	var records []yamlCase
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: yaml.Decode() > %v", ErrMalformedLine, err)
	}

	var document yaml.Node
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, fmt.Errorf("%w: yaml.Unmarshal() > %v", ErrMalformedLine, err)
	}
	lines := recordLines(&document, len(records))

	cases := make([]Case, 0, len(records))
	for i, record := range records {
		if record.Roots == nil {
			return nil, &ParseError{Line: lines[i], Reason: "roots is required"}
		}
		c, err := newCase(lines[i], record.A, record.B, record.C, record.X1, record.X2, *record.Roots)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// recordLines returns the starting line of every item of the top level sequence.
// It falls back to the record index when the document has another shape.
func recordLines(document *yaml.Node, count int) []int {
	lines := make([]int, count)
	for i := range lines {
		lines[i] = i + 1
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return lines
	}
	sequence := document.Content[0]
	if sequence.Kind != yaml.SequenceNode || len(sequence.Content) != count {
		return lines
	}
	for i, item := range sequence.Content {
		lines[i] = item.Line
	}
	return lines
}

func newCase(line int, a, b, c, x1, x2 float64, code int) (Case, error) {
	count, err := quadratic.RootCountFromCode(code)
	if err != nil {
		return Case{}, &ParseError{Line: line, Reason: err.Error()}
	}

	return Case{
		Line: line,
		Expected: quadratic.Equation{
			A:     a,
			B:     b,
			C:     c,
			X1:    x1,
			X2:    x2,
			Count: count,
		},
	}, nil
}
