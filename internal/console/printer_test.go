package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Printf(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		style  Style
		format string
		args   []any
		want   string

		// escape codes of the style, empty when nothing should be colored
		wantPrefix string
	}{
		{
			name:   "plain style has no escape codes",
			mode:   ModeAlways,
			style:  Plain,
			format: "a = %g\n",
			args:   []any{1.5},
			want:   "a = 1.5\n",
		},
		{
			name:       "red bold",
			mode:       ModeAlways,
			style:      Error,
			format:     "Invalid input",
			want:       "Invalid input",
			wantPrefix: "\x1b[31;1m",
		},
		{
			name:       "color with background",
			mode:       ModeAlways,
			style:      Style{Color: YellowText, Background: BlueBackground},
			format:     "Total: %d",
			args:       []any{3},
			want:       "Total: 3",
			wantPrefix: "\x1b[33;44m",
		},
		{
			name:   "never mode drops escape codes",
			mode:   ModeNever,
			style:  Flag,
			format: "'--help'",
			want:   "'--help'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf, tt.mode).Printf(tt.style, tt.format, tt.args...)

			if tt.wantPrefix == "" {
				assert.Equal(t, tt.want, buf.String())
				return
			}
			got := buf.String()
			assert.True(t, strings.HasPrefix(got, tt.wantPrefix+tt.want), "got %q", got)
			assert.True(t, strings.HasSuffix(got, "m"), "got %q", got)
		})
	}
}

func TestPrinter_Println(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, ModeNever)
	printer.Println(Success, "done")

	assert.Equal(t, "done\n", buf.String())
}
