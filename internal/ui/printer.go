package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/g5becks/scriptdoc/internal/libdoc"
)

type styles struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	bold   *color.Color
}

func newStyles() styles {
	return styles{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		dim:    color.New(color.Faint),
		bold:   color.New(color.Bold),
	}
}

// Printer renders diagnostics to stderr. Stdout is left for the model.
type Printer struct {
	w       io.Writer
	verbose bool
	s       styles
}

// NewPrinter creates a Printer that writes to stderr.
func NewPrinter(verbose bool) *Printer {
	return NewPrinterWithWriter(os.Stderr, verbose)
}

// NewPrinterWithWriter creates a Printer that writes to the given writer.
func NewPrinterWithWriter(w io.Writer, verbose bool) *Printer {
	return &Printer{
		w:       w,
		verbose: verbose,
		s:       newStyles(),
	}
}

// Error reports a fatal error.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(p.w, "%s %s\n", p.s.red.Sprint("✗"), err)
}

// Issues reports strict-mode findings.
func (p *Printer) Issues(issues []libdoc.Issue) {
	for _, issue := range issues {
		fmt.Fprintf(p.w, "%s %s\n", p.s.yellow.Sprint("!"), issue)
	}
}

// Input reports one parsed input in verbose mode. total is the function
// count after the input was parsed.
func (p *Printer) Input(input string, lines int, total int) {
	if !p.verbose {
		return
	}

	fmt.Fprintf(p.w, "%s %s %s\n",
		p.s.dim.Sprint("⟳"),
		p.s.bold.Sprint(input),
		p.s.dim.Sprintf("(%d lines, %d functions so far)", lines, total),
	)
}

// Summary renders a final line after a successful run in verbose mode.
func (p *Printer) Summary(functions int, inputs int, output string) {
	if !p.verbose {
		return
	}

	destination := "stdout"
	if output != "" {
		destination = output
	}

	fmt.Fprintf(p.w, "%s %d function(s) from %d input(s) %s\n",
		p.s.green.Sprint("✓"),
		functions,
		inputs,
		p.s.dim.Sprint("→ "+destination),
	)
}
