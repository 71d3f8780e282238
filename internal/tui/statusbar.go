package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the bottom bar with the asset root and how many days
// of the viewed month have images.
type StatusBar struct {
	Root     string
	Marked   int
	Days     int
	Watching bool
	Width    int
}

// View renders the status bar as a single line. Narrow terminals drop the
// asset root first.
func (s StatusBar) View() string {
	const barPadding = 2
	innerWidth := max(0, s.Width-barPadding)

	right := styleStatusLabel.Render("images ") +
		styleStatusValue.Render(fmt.Sprintf("%d/%d", s.Marked, s.Days))
	if s.Watching {
		right += styleStatusValue.Render("  ") + styleStatusLabel.Render("watching")
	}

	left := ""
	if s.Width >= CompactWidth {
		avail := innerWidth - len("assets ") - len("  ") - lipgloss.Width(right)
		left = styleStatusLabel.Render("assets ") + styleStatusValue.Render(TruncateWithEllipsis(s.Root, avail))
	}

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + styleStatusValue.Render(strings.Repeat(" ", max(1, gap))) + right
	return padToWidth(styleStatusBar.Render(line), s.Width, colorSurface)
}
