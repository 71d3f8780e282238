package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 44
	MinHeight = 16
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth triggers compact mode for the footer and status bar.
	CompactWidth = 60
)

// Calendar grid geometry, in terminal cells. The grid is drawn from the top
// left corner of the screen so mouse coordinates map directly onto it.
const (
	gridLeft   = 1
	cellWidth  = 6
	cellHeight = 2
	gridCols   = 7
	gridWidth  = cellWidth * gridCols

	headerRow  = 0
	weekdayRow = 2
	gridTop    = 3

	// Arrow columns in the month header.
	prevArrowX = gridLeft + 1
	nextArrowX = gridLeft + gridWidth - 2
)

// Popup geometry. popupWidth is the outer width including border and
// padding; the header and body are laid out in popupContentWidth columns.
const (
	popupContentWidth = 40
	popupWidth        = popupContentWidth + 4
	previewCols       = 24
	previewRows       = 6
)

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
// Returns s unchanged if it fits within maxLen runes.
func TruncateWithEllipsis(s string, maxLen int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount <= maxLen {
		return s
	}
	if maxLen < 4 {
		if maxLen <= 0 {
			return ""
		}
		return truncateToNRunes(s, maxLen)
	}
	return truncateToNRunes(s, maxLen-3) + "..."
}

// truncateToNRunes returns the first n runes of s as a string.
func truncateToNRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// padToWidth pads a rendered (possibly ANSI-styled) string with spaces to fill
// the given width, then applies a background color across the entire padded row.
func padToWidth(s string, width int, bg lipgloss.Color) string {
	visible := lipgloss.Width(s)
	if visible < width {
		s += strings.Repeat(" ", width-visible)
	}
	return lipgloss.NewStyle().Background(bg).Render(s)
}

// padLines appends empty lines to s until it has n lines.
func padLines(s string, n int) string {
	have := strings.Count(s, "\n") + 1
	if have >= n {
		return s
	}
	return s + strings.Repeat("\n", n-have)
}
