package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// compositeAt splices fg over bg with its top-left corner at column x,
// row y. Background cells left and right of each overlay line are kept;
// rows past the end of bg are added as needed.
func compositeAt(bg, fg string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, line := range fgLines {
		row := y + i
		base := bgLines[row]
		w := ansi.StringWidth(line)

		left := ansi.Truncate(base, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ""
		if ansi.StringWidth(base) > x+w {
			right = ansi.TruncateLeft(base, x+w, "")
		}
		bgLines[row] = left + ansi.ResetStyle + line + ansi.ResetStyle + right
	}
	return strings.Join(bgLines, "\n")
}
