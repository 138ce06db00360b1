package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdownAsPDF(t *testing.T) {
	tests := []struct {
		name       string
		pdfPath    func(t *testing.T) string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "invalid extension",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "report.md")
			},
			wantErr:    true,
			wantErrMsg: "output file must have .pdf extension",
		},
		{
			name: "successful conversion",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "report.pdf")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath := tt.pdfPath(t)
			content := []byte("# Solver regression report\n\n- Total: 1\n- Errors: 0\n")

			got, err := WriteMarkdownAsPDF(content, pdfPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(got))
			_, err = os.Stat(got)
			assert.NoError(t, err, "PDF file should be created")
		})
	}
}
