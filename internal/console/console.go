// Package console prints the user-facing lines of a run: errors, results,
// the step summary and the elapsed time. Diagnostics go to the logger instead.
package console

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes user-facing messages to a single writer.
type Printer struct {
	out io.Writer

	errorStyle  lipgloss.Style
	labelStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

// New creates a Printer. Styling is dropped automatically when out is not a terminal.
func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:         out,
		errorStyle:  r.NewStyle().Foreground(lipgloss.Color("9")),
		labelStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		detailStyle: r.NewStyle().Foreground(lipgloss.Color("13")),
	}
}

// Errorf prints "Error: <message>".
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}

// Result prints a labelled block of text, e.g. "Extracted Wisdom: ...".
func (p *Printer) Result(label, text string) {
	fmt.Fprintln(p.out, p.labelStyle.Render(label+":"), text)
}

// Elapsed prints the wall-clock duration of the run in minutes.
func (p *Printer) Elapsed(d time.Duration) {
	fmt.Fprintln(p.out, p.detailStyle.Render(fmt.Sprintf("Estimated time to complete project: %.2f minutes", d.Minutes())))
}
