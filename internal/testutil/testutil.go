// Package testutil provides shared test helpers for creating config and tests file fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption configures optional fields of the generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	testsFile   string
	reportFile  string
	maxAttempts uint
}

// WithTestsFile sets oracle.tests_file.
func WithTestsFile(path string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.testsFile = path
	}
}

// WithReportFile sets oracle.report_file.
func WithReportFile(path string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.reportFile = path
	}
}

// WithMaxAttempts sets input.max_attempts.
func WithMaxAttempts(attempts uint) ConfigOption {
	return func(cfg *testConfig) {
		cfg.maxAttempts = attempts
	}
}

// SetupTestConfig creates a config file with colors disabled in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		testsFile: filepath.Join(tmpDir, "tests.txt"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var content strings.Builder
	fmt.Fprintf(&content, "input:\n  max_attempts: %d\n", cfg.maxAttempts)
	fmt.Fprintf(&content, "oracle:\n  tests_file: %s\n", cfg.testsFile)
	if cfg.reportFile != "" {
		fmt.Fprintf(&content, "  report_file: %s\n", cfg.reportFile)
	}
	content.WriteString("output:\n  color: never\n")

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content.String()), 0644))
	return cfgPath
}

// WriteTestsFile writes one "a b c x1 x2 n" line per entry and returns the file path.
func WriteTestsFile(t *testing.T, tmpDir string, lines ...string) string {
	t.Helper()

	path := filepath.Join(tmpDir, "tests.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}
