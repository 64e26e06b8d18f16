package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes color-coded console messages to a single destination.
// Colors are dropped automatically when the destination is not a terminal.
type Printer struct {
	out     io.Writer
	info    *color.Color
	success *color.Color
	failure *color.Color
	step    *color.Color
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgHiGreen),
		failure: color.New(color.FgHiRed, color.Bold),
		step:    color.New(color.FgYellow),
	}
}

// Infof prints an informational message
func (p *Printer) Infof(format string, a ...interface{}) {
	p.info.Fprintf(p.out, format+"\n", a...)
}

// Successf prints a success message with a leading check mark
func (p *Printer) Successf(format string, a ...interface{}) {
	p.success.Fprintf(p.out, "✓ "+format+"\n", a...)
}

// Errorf prints a failure message with a leading cross
func (p *Printer) Errorf(format string, a ...interface{}) {
	p.failure.Fprintf(p.out, "✗ "+format+"\n", a...)
}

// Stepf prints a progress message with a leading arrow
func (p *Printer) Stepf(format string, a ...interface{}) {
	p.step.Fprintf(p.out, "→ "+format+"\n", a...)
}

// Plainf prints an uncolored message
func (p *Printer) Plainf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", a...)
}
