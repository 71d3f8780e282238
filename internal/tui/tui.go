package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/almanac/internal/calendar"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program showing view. The program uses the
// alternate screen buffer and cell-motion mouse reporting, which delivers
// motion events while a button is held for dragging the popup.
func NewProgram(view calendar.ViewMonth, deps Deps, opts ...tea.ProgramOption) *Program {
	model := NewAppModel(view, deps)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(view calendar.ViewMonth, deps Deps, opts ...tea.ProgramOption) error {
	p := NewProgram(view, deps, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
