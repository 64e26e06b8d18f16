package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func newTestPrinter() (*Printer, *bytes.Buffer) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	return NewPrinter(buf), buf
}

func TestPrinterMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{
			name:  "info",
			print: func(p *Printer) { p.Infof("Found %d file(s)", 3) },
			want:  "Found 3 file(s)\n",
		},
		{
			name:  "success has a check mark",
			print: func(p *Printer) { p.Successf("Saved %s", "clip.mp3") },
			want:  "✓ Saved clip.mp3\n",
		},
		{
			name:  "error has a cross",
			print: func(p *Printer) { p.Errorf("File not found: %s", "clip.mp4") },
			want:  "✗ File not found: clip.mp4\n",
		},
		{
			name:  "step has an arrow",
			print: func(p *Printer) { p.Stepf("Converting %s", "clip.mp4") },
			want:  "→ Converting clip.mp4\n",
		},
		{
			name:  "plain is unchanged",
			print: func(p *Printer) { p.Plainf("  output: %s", "clip.mp3") },
			want:  "  output: clip.mp3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestPrinter()
			tt.print(p)
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
