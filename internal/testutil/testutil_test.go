package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfgPath := SetupTestConfig(t, tmpDir, WithMaxAttempts(3), WithReportFile("report.md"))

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), cfgPath)
	assert.Contains(t, string(content), "max_attempts: 3")
	assert.Contains(t, string(content), "tests_file: "+filepath.Join(tmpDir, "tests.txt"))
	assert.Contains(t, string(content), "report_file: report.md")
	assert.Contains(t, string(content), "color: never")
}

func TestWriteTestsFile(t *testing.T) {
	path := WriteTestsFile(t, t.TempDir(), "1 2 1 -1 -1 1", "0 0 0 0 0 -2")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 2 1 -1 -1 1\n0 0 0 0 0 -2\n", string(content))
}
