// Package ui prints the non-interactive CLI output: month grids, day
// listings and diagnostics.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papapumpkin/almanac/internal/ansi"
	"github.com/papapumpkin/almanac/internal/calendar"
)

// NoEvents is printed for a day without images.
const NoEvents = "No events posted."

// Printer writes results to Out and diagnostics to Err.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New returns a colored printer on stdout and stderr.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, Color: true}
}

// NewWriter returns a printer on the given writers.
func NewWriter(out, err io.Writer, color bool) *Printer {
	return &Printer{Out: out, Err: err, Color: color}
}

func (p *Printer) paint(s string, codes ...string) string {
	if !p.Color {
		return s
	}
	return ansi.Paint(s, codes...)
}

// Error prints msg to Err with an "error:" prefix.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, p.paint("error: ", ansi.Red, ansi.Bold)+"%s\n", msg)
}

// Info prints a dimmed status line to Err.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Err, p.paint(msg, ansi.Dim))
}

// monthCellWidth is the column width of one day: three digits and a marker.
const monthCellWidth = 4

// Month prints the grid with past days dimmed, today highlighted and a
// marker after every day that has an image.
func (p *Printer) Month(g calendar.Grid) {
	width := monthCellWidth * 7
	title := g.View.Title()
	pad := max(0, (width-len(title))/2)
	fmt.Fprintln(p.Out, strings.Repeat(" ", pad)+p.paint(title, ansi.Bold))

	var b strings.Builder
	for _, w := range calendar.Weekdays {
		b.WriteString(fmt.Sprintf("%3s ", w))
	}
	fmt.Fprintln(p.Out, p.paint(strings.TrimRight(b.String(), " "), ansi.Dim))

	for row := 0; row < g.Rows(); row++ {
		b.Reset()
		for col := 0; col < 7; col++ {
			b.WriteString(p.cell(g, g.DayAt(col, row)))
		}
		fmt.Fprintln(p.Out, strings.TrimRight(b.String(), " "))
	}
}

func (p *Printer) cell(g calendar.Grid, day int) string {
	c := g.Cell(day)
	if c == nil {
		return strings.Repeat(" ", monthCellWidth)
	}
	num := fmt.Sprintf("%3d", day)
	switch c.Class {
	case calendar.ClassPast:
		num = p.paint(num, ansi.Dim)
	case calendar.ClassToday:
		num = p.paint(num, ansi.Bold, ansi.Blue)
	}
	marker := " "
	if c.HasImage {
		marker = p.paint("•", ansi.Yellow)
	}
	return num + marker
}

// Day prints the title followed by one path per line, or NoEvents.
func (p *Printer) Day(title string, paths []string) {
	fmt.Fprintln(p.Out, p.paint(title, ansi.Bold, ansi.Cyan))
	if len(paths) == 0 {
		fmt.Fprintln(p.Out, "  "+p.paint(NoEvents, ansi.Dim))
		return
	}
	for _, path := range paths {
		fmt.Fprintln(p.Out, "  "+p.paint("◆", ansi.Green)+" "+path)
	}
}
