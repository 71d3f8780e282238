package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/almanac/internal/calendar"
)

// calendarView renders the month header, weekday labels and day grid.
// Each week occupies cellHeight lines.
func (m AppModel) calendarView() string {
	margin := strings.Repeat(" ", gridLeft)

	title := lipgloss.PlaceHorizontal(gridWidth-4, lipgloss.Center, styleMonthTitle.Render(m.Month.Title()))
	header := margin + " " + styleMonthArrow.Render("‹") + title + styleMonthArrow.Render("›")

	var labels strings.Builder
	labels.WriteString(margin)
	for _, w := range calendar.Weekdays {
		labels.WriteString(styleWeekday.Render(fmt.Sprintf(" %-5s", w)))
	}

	lines := []string{header, "", labels.String()}
	for row := 0; row < m.Grid.Rows(); row++ {
		var b strings.Builder
		b.WriteString(margin)
		for col := 0; col < gridCols; col++ {
			b.WriteString(m.renderCell(m.Grid.DayAt(col, row)))
		}
		lines = append(lines, b.String(), "")
	}
	return strings.Join(lines, "\n")
}

// renderCell draws one cellWidth-wide day cell; day 0 is a leading blank.
func (m AppModel) renderCell(day int) string {
	cell := m.Grid.Cell(day)
	if cell == nil {
		return strings.Repeat(" ", cellWidth)
	}

	style := styleDayFuture
	switch cell.Class {
	case calendar.ClassPast:
		style = styleDayPast
	case calendar.ClassToday:
		style = styleDayToday
	}
	if day == m.Cursor {
		style = styleDayCursor.Inherit(style)
	}

	marker := " "
	if cell.HasImage {
		marker = styleHasImage.Render(iconHasImage)
	}
	return " " + style.Render(fmt.Sprintf("%3d", day)) + marker + " "
}

// dayAt maps a screen position to a day of the viewed month, or 0.
func (m AppModel) dayAt(x, y int) int {
	if x < gridLeft || y < gridTop {
		return 0
	}
	return m.Grid.DayAt((x-gridLeft)/cellWidth, (y-gridTop)/cellHeight)
}

// arrowAt reports which month arrow, if any, is at a screen position:
// -1 for previous, +1 for next.
func arrowAt(x, y int) int {
	if y != headerRow {
		return 0
	}
	switch {
	case x >= prevArrowX-1 && x <= prevArrowX+1:
		return -1
	case x >= nextArrowX-1 && x <= nextArrowX+1:
		return 1
	}
	return 0
}
